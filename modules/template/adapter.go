package template

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TemplatePort defines the template operations exposed to other modules.
type TemplatePort interface {
	Create(ctx context.Context, req CreateTemplateRequest) (TemplateResponse, error)
	Get(ctx context.Context, id string) (TemplateResponse, error)
	List(ctx context.Context) (ListTemplatesResponse, error)
	Update(ctx context.Context, req UpdateTemplateRequest) (TemplateResponse, error)
	Delete(ctx context.Context, id string) (DeleteTemplateResponse, error)
}

// templateAdapter wraps ServiceContainer for type-safe cross-module communication.
type templateAdapter struct {
	container mono.ServiceContainer
}

// NewTemplateAdapter creates a new adapter for template services.
func NewTemplateAdapter(container mono.ServiceContainer) TemplatePort {
	if container == nil {
		panic("template adapter requires non-nil ServiceContainer")
	}
	return &templateAdapter{container: container}
}

func call[Req any, Resp any](ctx context.Context, container mono.ServiceContainer, service string, req *Req, resp *Resp) error {
	if err := helper.CallRequestReplyService(
		ctx, container, service, json.Marshal, json.Unmarshal, req, resp,
	); err != nil {
		return fmt.Errorf("%s service call failed: %w", service, err)
	}
	return nil
}

func (a *templateAdapter) Create(ctx context.Context, req CreateTemplateRequest) (TemplateResponse, error) {
	var resp TemplateResponse
	err := call(ctx, a.container, "create-template", &req, &resp)
	return resp, err
}

func (a *templateAdapter) Get(ctx context.Context, id string) (TemplateResponse, error) {
	req := GetTemplateRequest{ID: id}
	var resp TemplateResponse
	err := call(ctx, a.container, "get-template", &req, &resp)
	return resp, err
}

func (a *templateAdapter) List(ctx context.Context) (ListTemplatesResponse, error) {
	req := ListTemplatesRequest{}
	var resp ListTemplatesResponse
	err := call(ctx, a.container, "list-templates", &req, &resp)
	return resp, err
}

func (a *templateAdapter) Update(ctx context.Context, req UpdateTemplateRequest) (TemplateResponse, error) {
	var resp TemplateResponse
	err := call(ctx, a.container, "update-template", &req, &resp)
	return resp, err
}

func (a *templateAdapter) Delete(ctx context.Context, id string) (DeleteTemplateResponse, error) {
	req := DeleteTemplateRequest{ID: id}
	var resp DeleteTemplateResponse
	err := call(ctx, a.container, "delete-template", &req, &resp)
	return resp, err
}
