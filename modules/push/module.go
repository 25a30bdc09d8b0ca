package push

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/example/task-tracker/modules/pushtoken"
	"github.com/go-monolith/mono"
)

// PushModule owns the notification queue connection and the dispatcher
// used by the task lifecycle to notify assignees.
type PushModule struct {
	client     *Client
	config     Config
	tokens     pushtoken.TokenPort
	dispatcher *Dispatcher
}

// Compile-time interface checks.
var _ mono.Module = (*PushModule)(nil)
var _ mono.DependentModule = (*PushModule)(nil)
var _ mono.HealthCheckableModule = (*PushModule)(nil)

// NewModule creates a new PushModule.
func NewModule() *PushModule {
	cfg := DefaultConfig()
	if url := os.Getenv("NATS_URL"); url != "" {
		cfg.URL = url
	}
	return &PushModule{
		config: cfg,
		client: NewClient(cfg),
	}
}

// Name returns the module name.
func (m *PushModule) Name() string {
	return "push"
}

// Dependencies declares required modules.
func (m *PushModule) Dependencies() []string {
	return []string{"pushtoken"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *PushModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "pushtoken" {
		m.tokens = pushtoken.NewTokenAdapter(container)
	}
}

// Start connects to the push queue and builds the dispatcher.
func (m *PushModule) Start(ctx context.Context) error {
	if m.tokens == nil {
		return fmt.Errorf("pushtoken dependency not set")
	}

	if err := m.client.Connect(ctx, m.config); err != nil {
		return fmt.Errorf("failed to connect push queue: %w", err)
	}

	m.dispatcher = NewDispatcher(m.tokens, m.client)
	log.Println("[push] Module started")
	return nil
}

// Stop closes the queue connection.
func (m *PushModule) Stop(_ context.Context) error {
	if m.client != nil {
		m.client.Close()
	}
	log.Println("[push] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *PushModule) Health(_ context.Context) mono.HealthStatus {
	if m.client == nil || !m.client.IsConnected() {
		return mono.HealthStatus{Healthy: false, Message: "push queue disconnected"}
	}
	return mono.HealthStatus{Healthy: true, Message: "operational"}
}

// Dispatcher returns the notification dispatcher. Nil until Start.
func (m *PushModule) Dispatcher() *Dispatcher {
	return m.dispatcher
}
