package template

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

// createTemplate handles the create-template service request.
func (m *TemplateModule) createTemplate(_ context.Context, req CreateTemplateRequest, _ *mono.Msg) (TemplateResponse, error) {
	if req.Title == "" {
		return TemplateResponse{}, fmt.Errorf("title is required")
	}

	tpl := &Template{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
	}
	for _, s := range req.Sections {
		section := Section{
			ID:         uuid.New().String(),
			TemplateID: tpl.ID,
			Title:      s.Title,
			Ordinal:    s.Ordinal,
		}
		for _, p := range s.Puzzles {
			if p.Type == "" {
				return TemplateResponse{}, fmt.Errorf("puzzle type is required")
			}
			section.Puzzles = append(section.Puzzles, Puzzle{
				ID:        uuid.New().String(),
				SectionID: section.ID,
				Title:     p.Title,
				Type:      p.Type,
				Ordinal:   p.Ordinal,
				Content:   p.Content,
			})
		}
		tpl.Sections = append(tpl.Sections, section)
	}

	if err := m.repo.Create(tpl); err != nil {
		return TemplateResponse{}, err
	}
	return toTemplateResponse(tpl), nil
}

// getTemplate handles the get-template service request.
func (m *TemplateModule) getTemplate(_ context.Context, req GetTemplateRequest, _ *mono.Msg) (TemplateResponse, error) {
	if req.ID == "" {
		return TemplateResponse{}, fmt.Errorf("id is required")
	}

	tpl, err := m.repo.FindByID(req.ID)
	if err != nil {
		return TemplateResponse{}, err
	}
	return toTemplateResponse(tpl), nil
}

// listTemplates handles the list-templates service request.
func (m *TemplateModule) listTemplates(_ context.Context, _ ListTemplatesRequest, _ *mono.Msg) (ListTemplatesResponse, error) {
	templates, err := m.repo.FindAll()
	if err != nil {
		return ListTemplatesResponse{}, err
	}

	resp := ListTemplatesResponse{
		Templates: make([]TemplateResponse, 0, len(templates)),
		Total:     len(templates),
	}
	for _, tpl := range templates {
		resp.Templates = append(resp.Templates, toTemplateResponse(tpl))
	}
	return resp, nil
}

// updateTemplate handles the update-template service request.
func (m *TemplateModule) updateTemplate(_ context.Context, req UpdateTemplateRequest, _ *mono.Msg) (TemplateResponse, error) {
	if req.ID == "" {
		return TemplateResponse{}, fmt.Errorf("id is required")
	}

	tpl, err := m.repo.FindByID(req.ID)
	if err != nil {
		return TemplateResponse{}, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return TemplateResponse{}, fmt.Errorf("title cannot be empty")
		}
		tpl.Title = *req.Title
	}
	if req.Description != nil {
		tpl.Description = *req.Description
	}

	if err := m.repo.Update(tpl); err != nil {
		return TemplateResponse{}, err
	}
	return toTemplateResponse(tpl), nil
}

// deleteTemplate handles the delete-template service request.
func (m *TemplateModule) deleteTemplate(_ context.Context, req DeleteTemplateRequest, _ *mono.Msg) (DeleteTemplateResponse, error) {
	if req.ID == "" {
		return DeleteTemplateResponse{Deleted: false}, fmt.Errorf("id is required")
	}

	if err := m.repo.Delete(req.ID); err != nil {
		return DeleteTemplateResponse{Deleted: false, ID: req.ID}, err
	}
	return DeleteTemplateResponse{Deleted: true, ID: req.ID}, nil
}

// toTemplateResponse converts a Template entity to a TemplateResponse.
func toTemplateResponse(tpl *Template) TemplateResponse {
	resp := TemplateResponse{
		ID:          tpl.ID,
		Title:       tpl.Title,
		Description: tpl.Description,
		CreatedAt:   tpl.CreatedAt,
		UpdatedAt:   tpl.UpdatedAt,
	}
	for _, s := range tpl.Sections {
		section := SectionResponse{
			ID:      s.ID,
			Title:   s.Title,
			Ordinal: s.Ordinal,
		}
		for _, p := range s.Puzzles {
			section.Puzzles = append(section.Puzzles, PuzzleResponse{
				ID:      p.ID,
				Title:   p.Title,
				Type:    p.Type,
				Ordinal: p.Ordinal,
				Content: p.Content,
			})
		}
		resp.Sections = append(resp.Sections, section)
	}
	return resp
}
