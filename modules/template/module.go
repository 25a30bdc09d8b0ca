package template

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TemplateModule provides template authoring services.
type TemplateModule struct {
	db     *gorm.DB
	repo   *Repository
	dbPath string
}

// Compile-time interface checks.
var _ mono.Module = (*TemplateModule)(nil)
var _ mono.ServiceProviderModule = (*TemplateModule)(nil)
var _ mono.HealthCheckableModule = (*TemplateModule)(nil)

// NewModule creates a new TemplateModule.
func NewModule() *TemplateModule {
	dbPath := os.Getenv("TEMPLATES_DB_PATH")
	if dbPath == "" {
		dbPath = "templates.db"
	}
	return &TemplateModule{dbPath: dbPath}
}

// Name returns the module name.
func (m *TemplateModule) Name() string {
	return "template"
}

// RegisterServices registers request-reply services in the service container.
func (m *TemplateModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-template", json.Unmarshal, json.Marshal, m.createTemplate,
	); err != nil {
		return fmt.Errorf("failed to register create-template service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-template", json.Unmarshal, json.Marshal, m.getTemplate,
	); err != nil {
		return fmt.Errorf("failed to register get-template service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-templates", json.Unmarshal, json.Marshal, m.listTemplates,
	); err != nil {
		return fmt.Errorf("failed to register list-templates service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-template", json.Unmarshal, json.Marshal, m.updateTemplate,
	); err != nil {
		return fmt.Errorf("failed to register update-template service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "delete-template", json.Unmarshal, json.Marshal, m.deleteTemplate,
	); err != nil {
		return fmt.Errorf("failed to register delete-template service: %w", err)
	}

	log.Printf("[template] Registered services: create-template, get-template, list-templates, update-template, delete-template")
	return nil
}

// Start opens the database and runs migrations.
func (m *TemplateModule) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&Template{}, &Section{}, &Puzzle{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.repo = NewRepository(db)
	log.Printf("[template] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop closes the database connection.
func (m *TemplateModule) Stop(_ context.Context) error {
	if m.db != nil {
		if sqlDB, err := m.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[template] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *TemplateModule) Health(ctx context.Context) mono.HealthStatus {
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
