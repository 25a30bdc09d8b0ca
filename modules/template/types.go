package template

import "time"

// PuzzleInput describes a puzzle in a create request.
type PuzzleInput struct {
	Title   string `json:"title"`
	Type    string `json:"type"`
	Ordinal int    `json:"ordinal"`
	Content string `json:"content"`
}

// SectionInput describes a section in a create request.
type SectionInput struct {
	Title   string        `json:"title"`
	Ordinal int           `json:"ordinal"`
	Puzzles []PuzzleInput `json:"puzzles,omitempty"`
}

// CreateTemplateRequest is the request for the create-template service.
type CreateTemplateRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Sections    []SectionInput `json:"sections,omitempty"`
}

// GetTemplateRequest is the request for the get-template service.
type GetTemplateRequest struct {
	ID string `json:"id"`
}

// ListTemplatesRequest is the request for the list-templates service.
type ListTemplatesRequest struct{}

// UpdateTemplateRequest is the request for the update-template service.
// Nil fields are left unchanged.
type UpdateTemplateRequest struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DeleteTemplateRequest is the request for the delete-template service.
type DeleteTemplateRequest struct {
	ID string `json:"id"`
}

// DeleteTemplateResponse is the response for the delete-template service.
type DeleteTemplateResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// PuzzleResponse describes a puzzle in template responses.
type PuzzleResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Ordinal int    `json:"ordinal"`
	Content string `json:"content"`
}

// SectionResponse describes a section in template responses.
type SectionResponse struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Ordinal int              `json:"ordinal"`
	Puzzles []PuzzleResponse `json:"puzzles,omitempty"`
}

// TemplateResponse describes a template in service responses.
type TemplateResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Sections    []SectionResponse `json:"sections,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ListTemplatesResponse is the response for the list-templates service.
type ListTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}
