package pushtoken

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TokenModule provides push token lookup and registration services.
type TokenModule struct {
	db     *gorm.DB
	repo   *Repository
	dbPath string
}

// Compile-time interface checks.
var _ mono.Module = (*TokenModule)(nil)
var _ mono.ServiceProviderModule = (*TokenModule)(nil)
var _ mono.HealthCheckableModule = (*TokenModule)(nil)

// NewModule creates a new TokenModule.
func NewModule() *TokenModule {
	dbPath := os.Getenv("PUSH_TOKEN_DB_PATH")
	if dbPath == "" {
		dbPath = "push_tokens.db"
	}
	return &TokenModule{dbPath: dbPath}
}

// Name returns the module name.
func (m *TokenModule) Name() string {
	return "pushtoken"
}

// RegisterServices registers request-reply services in the service container.
func (m *TokenModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "get-token", json.Unmarshal, json.Marshal, m.getToken,
	); err != nil {
		return fmt.Errorf("failed to register get-token service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "register-token", json.Unmarshal, json.Marshal, m.registerToken,
	); err != nil {
		return fmt.Errorf("failed to register register-token service: %w", err)
	}

	log.Printf("[pushtoken] Registered services: get-token, register-token")
	return nil
}

// Start initializes the database connection and runs migrations.
func (m *TokenModule) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&PushToken{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.repo = NewRepository(db)
	log.Printf("[pushtoken] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop closes the database connection.
func (m *TokenModule) Stop(_ context.Context) error {
	if m.db != nil {
		if sqlDB, err := m.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[pushtoken] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *TokenModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{Healthy: false, Message: "database not initialized"}
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("failed to get sql.DB: %v", err)}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("database ping failed: %v", err)}
	}
	return mono.HealthStatus{Healthy: true, Message: "operational"}
}

// getToken handles the get-token service request. A missing token is
// reported via Found=false rather than an error so callers can treat it as
// a no-op condition.
func (m *TokenModule) getToken(_ context.Context, req GetTokenRequest, _ *mono.Msg) (GetTokenResponse, error) {
	if req.UserID == "" {
		return GetTokenResponse{Found: false}, nil
	}

	token, err := m.repo.FindByUserID(req.UserID)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return GetTokenResponse{Found: false}, nil
		}
		return GetTokenResponse{}, err
	}

	return GetTokenResponse{Token: token.Token, Found: true}, nil
}

// registerToken handles the register-token service request.
func (m *TokenModule) registerToken(_ context.Context, req RegisterTokenRequest, _ *mono.Msg) (RegisterTokenResponse, error) {
	if req.UserID == "" {
		return RegisterTokenResponse{}, fmt.Errorf("user_id is required")
	}
	if req.Token == "" {
		return RegisterTokenResponse{}, fmt.Errorf("token is required")
	}

	record, err := m.repo.Upsert(req.UserID, req.Token)
	if err != nil {
		return RegisterTokenResponse{}, err
	}

	return RegisterTokenResponse{ID: record.ID, UserID: record.UserID}, nil
}
