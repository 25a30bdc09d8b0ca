package task

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskPort defines the task operations exposed to other modules.
type TaskPort interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Get(ctx context.Context, id string) (TaskResponse, error)
	List(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error)
	Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (TaskResponse, error)
	Delete(ctx context.Context, id string) (DeleteTaskResponse, error)
	StageHistory(ctx context.Context, stageID string) (StageHistoryResponse, error)
}

// taskAdapter wraps ServiceContainer for type-safe cross-module communication.
type taskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new adapter for task services.
func NewTaskAdapter(container mono.ServiceContainer) TaskPort {
	if container == nil {
		panic("task adapter requires non-nil ServiceContainer")
	}
	return &taskAdapter{container: container}
}

func call[Req any, Resp any](ctx context.Context, container mono.ServiceContainer, service string, req *Req, resp *Resp) error {
	if err := helper.CallRequestReplyService(
		ctx, container, service, json.Marshal, json.Unmarshal, req, resp,
	); err != nil {
		return fmt.Errorf("%s service call failed: %w", service, err)
	}
	return nil
}

func (a *taskAdapter) Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	err := call(ctx, a.container, "create-task", &req, &resp)
	return resp, err
}

func (a *taskAdapter) Get(ctx context.Context, id string) (TaskResponse, error) {
	req := GetTaskRequest{ID: id}
	var resp TaskResponse
	err := call(ctx, a.container, "get-task", &req, &resp)
	return resp, err
}

func (a *taskAdapter) List(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error) {
	var resp ListTasksResponse
	err := call(ctx, a.container, "list-tasks", &req, &resp)
	return resp, err
}

func (a *taskAdapter) Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error) {
	var resp TaskResponse
	err := call(ctx, a.container, "update-task", &req, &resp)
	return resp, err
}

func (a *taskAdapter) UpdateStatus(ctx context.Context, id, status string) (TaskResponse, error) {
	req := UpdateStatusRequest{ID: id, Status: status}
	var resp TaskResponse
	err := call(ctx, a.container, "update-task-status", &req, &resp)
	return resp, err
}

func (a *taskAdapter) Delete(ctx context.Context, id string) (DeleteTaskResponse, error) {
	req := DeleteTaskRequest{ID: id}
	var resp DeleteTaskResponse
	err := call(ctx, a.container, "delete-task", &req, &resp)
	return resp, err
}

func (a *taskAdapter) StageHistory(ctx context.Context, stageID string) (StageHistoryResponse, error) {
	req := StageHistoryRequest{StageID: stageID}
	var resp StageHistoryResponse
	err := call(ctx, a.container, "stage-history", &req, &resp)
	return resp, err
}
