// Package template implements authoring and storage of reusable task
// templates composed of sections and puzzles.
package template

import (
	"time"

	"gorm.io/gorm"
)

// Template is a reusable blueprint tasks can be assembled from.
type Template struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"size:1000" json:"description"`
	Sections    []Section      `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Template entity.
func (Template) TableName() string {
	return "templates"
}

// Section groups puzzles inside a template, ordered by ordinal.
type Section struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	TemplateID string    `gorm:"size:36;not null;index" json:"template_id"`
	Title      string    `gorm:"size:200;not null" json:"title"`
	Ordinal    int       `gorm:"not null;default:0" json:"ordinal"`
	Puzzles    []Puzzle  `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"puzzles,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for the Section entity.
func (Section) TableName() string {
	return "sections"
}

// Puzzle is a single content block. Content holds the type-specific payload
// as raw JSON so the authoring surface can evolve without schema changes.
type Puzzle struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	SectionID string    `gorm:"size:36;not null;index" json:"section_id"`
	Title     string    `gorm:"size:200" json:"title"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Ordinal   int       `gorm:"not null;default:0" json:"ordinal"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Puzzle entity.
func (Puzzle) TableName() string {
	return "puzzles"
}
