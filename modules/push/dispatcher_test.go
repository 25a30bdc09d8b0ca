package push

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type fakeTokenPort struct {
	tokens map[string]string
	err    error
}

func (f *fakeTokenPort) TokenByUserID(_ context.Context, userID string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	token, ok := f.tokens[userID]
	return token, ok, nil
}

func (f *fakeTokenPort) RegisterToken(_ context.Context, userID, token string) (string, error) {
	return "", errors.New("not implemented")
}

type fakeQueue struct {
	published [][]byte
	err       error
}

func (f *fakeQueue) Publish(_ context.Context, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, payload)
	return nil
}

func TestDispatchPublishesMessageWithRegisteredToken(t *testing.T) {
	tokens := &fakeTokenPort{tokens: map[string]string{"user-1": "device-abc"}}
	queue := &fakeQueue{}
	d := NewDispatcher(tokens, queue)

	d.Dispatch(context.Background(), "user-1", "Write quarterly report")

	if len(queue.published) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(queue.published))
	}

	var msg Message
	if err := json.Unmarshal(queue.published[0], &msg); err != nil {
		t.Fatalf("failed to unmarshal payload: %v", err)
	}
	if msg.Token != "device-abc" {
		t.Errorf("expected token device-abc, got %s", msg.Token)
	}
	want := `Task "Write quarterly report" is now in progress`
	if msg.Message.Body != want {
		t.Errorf("expected body %q, got %q", want, msg.Message.Body)
	}
}

func TestDispatchSkipsEmptyAssignee(t *testing.T) {
	tokens := &fakeTokenPort{tokens: map[string]string{}}
	queue := &fakeQueue{}
	d := NewDispatcher(tokens, queue)

	d.Dispatch(context.Background(), "", "Unassigned task")

	if len(queue.published) != 0 {
		t.Errorf("expected no published messages, got %d", len(queue.published))
	}
}

func TestDispatchSkipsMissingToken(t *testing.T) {
	tokens := &fakeTokenPort{tokens: map[string]string{}}
	queue := &fakeQueue{}
	d := NewDispatcher(tokens, queue)

	d.Dispatch(context.Background(), "user-2", "Task without token")

	if len(queue.published) != 0 {
		t.Errorf("expected no published messages, got %d", len(queue.published))
	}
}

func TestDispatchAbsorbsTokenLookupFailure(t *testing.T) {
	tokens := &fakeTokenPort{err: errors.New("lookup failed")}
	queue := &fakeQueue{}
	d := NewDispatcher(tokens, queue)

	// Must not panic or publish.
	d.Dispatch(context.Background(), "user-1", "Flaky lookup")

	if len(queue.published) != 0 {
		t.Errorf("expected no published messages, got %d", len(queue.published))
	}
}

func TestDispatchAbsorbsQueueFailure(t *testing.T) {
	tokens := &fakeTokenPort{tokens: map[string]string{"user-1": "device-abc"}}
	queue := &fakeQueue{err: ErrQueueUnavailable}
	d := NewDispatcher(tokens, queue)

	// Enqueue failure is logged and absorbed.
	d.Dispatch(context.Background(), "user-1", "Queue down")
}
