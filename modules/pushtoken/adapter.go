package pushtoken

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TokenPort defines the push token lookup interface used by other modules.
type TokenPort interface {
	// TokenByUserID returns the user's push token. The boolean is false
	// when no token is registered; that is not an error.
	TokenByUserID(ctx context.Context, userID string) (string, bool, error)
	RegisterToken(ctx context.Context, userID, token string) (string, error)
}

// tokenAdapter wraps ServiceContainer for type-safe cross-module communication.
type tokenAdapter struct {
	container mono.ServiceContainer
}

// NewTokenAdapter creates a new adapter for push token services.
func NewTokenAdapter(container mono.ServiceContainer) TokenPort {
	if container == nil {
		panic("pushtoken adapter requires non-nil ServiceContainer")
	}
	return &tokenAdapter{container: container}
}

// TokenByUserID looks up a user's push token via the get-token service.
func (a *tokenAdapter) TokenByUserID(ctx context.Context, userID string) (string, bool, error) {
	req := GetTokenRequest{UserID: userID}
	var resp GetTokenResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"get-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return "", false, fmt.Errorf("get-token service call failed: %w", err)
	}
	return resp.Token, resp.Found, nil
}

// RegisterToken registers a device token via the register-token service.
func (a *tokenAdapter) RegisterToken(ctx context.Context, userID, token string) (string, error) {
	req := RegisterTokenRequest{UserID: userID, Token: token}
	var resp RegisterTokenResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"register-token",
		json.Marshal,
		json.Unmarshal,
		&req,
		&resp,
	); err != nil {
		return "", fmt.Errorf("register-token service call failed: %w", err)
	}
	return resp.ID, nil
}
