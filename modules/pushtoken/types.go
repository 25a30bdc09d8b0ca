package pushtoken

// GetTokenRequest is the request for looking up a user's push token.
type GetTokenRequest struct {
	UserID string `json:"user_id"`
}

// GetTokenResponse is the response for a token lookup. Found is false when
// the user has no registered token; that is not an error.
type GetTokenResponse struct {
	Token string `json:"token,omitempty"`
	Found bool   `json:"found"`
}

// RegisterTokenRequest is the request for registering a device token.
type RegisterTokenRequest struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// RegisterTokenResponse is the response after registering a token.
type RegisterTokenResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
}
