// Package push delivers task notifications to the push queue.
package push

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName is the name of the JetStream stream for push notifications.
	StreamName = "PUSH_NOTIFICATION"
	// SubjectPush is the subject push messages are published on.
	SubjectPush = "push.notification"
)

// ErrQueueUnavailable is returned when the push queue is not connected.
var ErrQueueUnavailable = errors.New("push queue unavailable")

// Client provides JetStream operations for the push notification queue.
type Client struct {
	nc      *nats.Conn
	js      jetstream.JetStream
	stream  jetstream.Stream
	natsURL string
}

// Config holds push queue client configuration.
type Config struct {
	URL    string
	MaxAge time.Duration
}

// DefaultConfig returns the default push queue configuration.
func DefaultConfig() Config {
	return Config{
		URL:    "nats://localhost:4222",
		MaxAge: 24 * time.Hour,
	}
}

// NewClient creates a new push queue client.
func NewClient(cfg Config) *Client {
	return &Client{
		natsURL: cfg.URL,
	}
}

// Connect establishes connection to NATS and ensures the push stream exists.
func (c *Client) Connect(ctx context.Context, cfg Config) error {
	nc, err := nats.Connect(c.natsURL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(10),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	c.nc = nc

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}
	c.js = js

	stream, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Description: "Task push notification queue",
		Subjects:    []string{SubjectPush},
		Retention:   jetstream.WorkQueuePolicy,
		MaxAge:      cfg.MaxAge,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}
	c.stream = stream

	log.Printf("[push] Connected to NATS at %s, stream %s ready", c.natsURL, StreamName)
	return nil
}

// Publish enqueues a raw push payload.
func (c *Client) Publish(ctx context.Context, payload []byte) error {
	if c.js == nil {
		return ErrQueueUnavailable
	}

	ack, err := c.js.Publish(ctx, SubjectPush, payload)
	if err != nil {
		return fmt.Errorf("failed to publish push message: %w", err)
	}

	log.Printf("[push] Published message to stream %s, sequence %d", ack.Stream, ack.Sequence)
	return nil
}

// Close closes the NATS connection.
func (c *Client) Close() error {
	if c.nc != nil {
		c.nc.Close()
		log.Println("[push] Connection closed")
	}
	return nil
}

// IsConnected returns true if connected to NATS.
func (c *Client) IsConnected() bool {
	return c.nc != nil && c.nc.IsConnected()
}

// StreamInfo returns information about the push stream.
func (c *Client) StreamInfo(ctx context.Context) (*jetstream.StreamInfo, error) {
	if c.stream == nil {
		return nil, fmt.Errorf("stream not initialized")
	}
	return c.stream.Info(ctx)
}
