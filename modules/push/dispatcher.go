package push

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/task-tracker/modules/pushtoken"
)

// Queue enqueues serialized push payloads for the delivery worker.
type Queue interface {
	Publish(ctx context.Context, payload []byte) error
}

// Dispatcher resolves the assignee's device token and enqueues a push
// message. Delivery is best effort: every failure is logged and absorbed
// so callers never fail because a notification could not be sent.
type Dispatcher struct {
	tokens pushtoken.TokenPort
	queue  Queue
}

// NewDispatcher creates a dispatcher backed by the given token lookup and queue.
func NewDispatcher(tokens pushtoken.TokenPort, queue Queue) *Dispatcher {
	return &Dispatcher{
		tokens: tokens,
		queue:  queue,
	}
}

// Dispatch notifies the assignee that their task moved to work.
// A task with no assignee or an assignee without a registered device
// token is silently skipped.
func (d *Dispatcher) Dispatch(ctx context.Context, assigneeID, taskTitle string) {
	if err := d.dispatch(ctx, assigneeID, taskTitle); err != nil {
		log.Printf("[push] Dropping notification for user %s: %v", assigneeID, err)
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, assigneeID, taskTitle string) error {
	if assigneeID == "" {
		return nil
	}

	token, found, err := d.tokens.TokenByUserID(ctx, assigneeID)
	if err != nil {
		return fmt.Errorf("failed to resolve device token: %w", err)
	}
	if !found {
		log.Printf("[push] No device token for user %s, skipping notification", assigneeID)
		return nil
	}

	msg := Message{
		Token: token,
		Message: MessageBody{
			Body: fmt.Sprintf("Task %q is now in progress", taskTitle),
		},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal push message: %w", err)
	}

	return d.queue.Publish(ctx, payload)
}
