package feed

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/example/task-tracker/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// FeedModule consumes task status events and streams them to WebSocket
// subscribers on a dedicated server.
type FeedModule struct {
	hub       *Hub
	app       *fiber.App
	port      string
	cancelHub context.CancelFunc
}

// Compile-time interface checks.
var _ mono.Module = (*FeedModule)(nil)
var _ mono.EventConsumerModule = (*FeedModule)(nil)
var _ mono.HealthCheckableModule = (*FeedModule)(nil)

// NewModule creates a new FeedModule.
func NewModule() *FeedModule {
	port := os.Getenv("FEED_PORT")
	if port == "" {
		port = "3001"
	}
	return &FeedModule{
		hub:  NewHub(),
		port: port,
	}
}

// Name returns the module name.
func (m *FeedModule) Name() string {
	return "feed"
}

// RegisterEventConsumers registers event handlers.
func (m *FeedModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(
		registry, events.TaskStatusChangedV1, m.handleStatusChanged, m,
	); err != nil {
		return fmt.Errorf("failed to register TaskStatusChanged consumer: %w", err)
	}

	log.Println("[feed] Registered event consumers: TaskStatusChanged")
	return nil
}

// handleStatusChanged broadcasts a status change to all subscribers.
func (m *FeedModule) handleStatusChanged(_ context.Context, event events.TaskStatusChangedEvent, _ *mono.Msg) error {
	log.Printf("[feed] Broadcasting status change for task %s: %s -> %s", event.TaskID, event.Previous, event.Next)
	m.hub.Broadcast(StatusUpdate{
		Type:       "status_changed",
		TaskID:     event.TaskID,
		Title:      event.Title,
		AssigneeID: event.AssigneeID,
		Previous:   event.Previous,
		Next:       event.Next,
		ChangedAt:  event.ChangedAt,
	})
	return nil
}

// Start runs the hub and the WebSocket server.
func (m *FeedModule) Start(_ context.Context) error {
	hubCtx, cancel := context.WithCancel(context.Background())
	m.cancelHub = cancel
	go m.hub.Run(hubCtx)

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	m.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	m.app.Get("/ws/tasks", websocket.New(m.handleConnection))

	errCh := make(chan error, 1)
	go func() {
		if err := m.app.Listen(":" + m.port); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("feed server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
	}

	log.Printf("[feed] WebSocket server started on :%s", m.port)
	return nil
}

// handleConnection keeps a subscriber registered until the socket closes.
// The feed is one-way; inbound frames are read only to detect disconnects.
func (m *FeedModule) handleConnection(c *websocket.Conn) {
	client := &Client{
		ID:   uuid.New().String(),
		Conn: c,
	}
	m.hub.Register(client)

	defer func() {
		m.hub.Unregister(client)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// Stop shuts down the server and the hub.
func (m *FeedModule) Stop(ctx context.Context) error {
	if m.app != nil {
		if err := m.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("[feed] Failed to shutdown server: %v", err)
		}
	}
	if m.cancelHub != nil {
		m.cancelHub()
		m.hub.Wait()
	}
	log.Println("[feed] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *FeedModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port":        m.port,
			"subscribers": m.hub.ClientCount(),
		},
	}
}

// StatusUpdate is the payload sent to feed subscribers.
type StatusUpdate struct {
	Type       string    `json:"type"`
	TaskID     string    `json:"task_id"`
	Title      string    `json:"title"`
	AssigneeID string    `json:"assignee_id,omitempty"`
	Previous   string    `json:"previous"`
	Next       string    `json:"next"`
	ChangedAt  time.Time `json:"changed_at"`
}
