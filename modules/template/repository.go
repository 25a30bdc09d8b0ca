package template

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrTemplateNotFound is returned when a template is not found.
var ErrTemplateNotFound = errors.New("template not found")

// Repository provides access to template storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new template repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new template with its sections and puzzles.
func (r *Repository) Create(tpl *Template) error {
	if err := r.db.Create(tpl).Error; err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// FindByID retrieves a template with nested sections and puzzles, both
// ordered by ordinal.
func (r *Repository) FindByID(id string) (*Template, error) {
	var tpl Template
	err := r.db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal ASC")
		}).
		Preload("Sections.Puzzles", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal ASC")
		}).
		First(&tpl, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to find template: %w", err)
	}
	return &tpl, nil
}

// FindAll retrieves all templates without their nested content.
func (r *Repository) FindAll() ([]*Template, error) {
	var templates []*Template
	if err := r.db.Order("created_at DESC").Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

// Update persists title and description changes.
func (r *Repository) Update(tpl *Template) error {
	result := r.db.Model(&Template{}).Where("id = ?", tpl.ID).Updates(map[string]any{
		"title":       tpl.Title,
		"description": tpl.Description,
	})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

// Delete removes a template by ID (soft delete).
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&Template{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrTemplateNotFound
	}
	return nil
}
