package push

// Message is the wire payload enqueued for the push delivery worker.
type Message struct {
	Token   string      `json:"token"`
	Message MessageBody `json:"message"`
}

// MessageBody carries the rendered notification text.
type MessageBody struct {
	Body string `json:"body"`
}
