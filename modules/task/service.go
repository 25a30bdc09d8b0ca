package task

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/example/task-tracker/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
)

func cacheKeyByID(id string) string {
	return "task:" + id
}

func cacheKeyList(req ListTasksRequest) string {
	return fmt.Sprintf("list:%d:%d:%s:%s:%s", req.Offset, req.Limit, req.Sort, req.Status, req.Title)
}

// createTask handles the create-task service request.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.Title == "" {
		return TaskResponse{}, fmt.Errorf("title is required")
	}

	newTask := &domain.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.StatusDraft,
		AssigneeID:  req.AssigneeID,
		TemplateID:  req.TemplateID,
		Deadline:    req.Deadline,
	}
	for _, s := range req.Stages {
		newTask.Stages = append(newTask.Stages, domain.Stage{
			ID:       uuid.New().String(),
			TaskID:   newTask.ID,
			Title:    s.Title,
			Ordinal:  s.Ordinal,
			Deadline: s.Deadline,
		})
	}

	if err := m.repo.Create(newTask); err != nil {
		return TaskResponse{}, err
	}

	m.invalidateCache(ctx)
	return toTaskResponse(newTask), nil
}

// getTask handles the get-task service request. Reads go through the cache
// with singleflight guarding concurrent misses for the same task.
func (m *TaskModule) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ID == "" {
		return TaskResponse{}, fmt.Errorf("id is required")
	}

	key := cacheKeyByID(req.ID)
	if m.cache != nil {
		var cached TaskResponse
		found, err := m.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("[task] Cache error for task %s: %v", req.ID, err)
		}
		if found {
			return cached, nil
		}
	}

	val, err, _ := m.sfGroup.Do(key, func() (any, error) {
		t, err := m.repo.FindByID(req.ID)
		if err != nil {
			return nil, err
		}
		resp := toTaskResponse(t)
		if m.cache != nil {
			if err := m.cache.Set(ctx, key, resp); err != nil {
				log.Printf("[task] Failed to cache task %s: %v", req.ID, err)
			}
		}
		return resp, nil
	})
	if err != nil {
		return TaskResponse{}, err
	}
	return val.(TaskResponse), nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	if req.Status != "" && !domain.Status(req.Status).IsValid() {
		return ListTasksResponse{}, fmt.Errorf("unknown status: %s", req.Status)
	}

	key := cacheKeyList(req)
	if m.cache != nil {
		var cached ListTasksResponse
		found, err := m.cache.Get(ctx, key, &cached)
		if err != nil {
			log.Printf("[task] Cache error for list: %v", err)
		}
		if found {
			return cached, nil
		}
	}

	val, err, _ := m.sfGroup.Do(key, func() (any, error) {
		tasks, total, err := m.repo.List(ListQuery{
			Offset: req.Offset,
			Limit:  req.Limit,
			Sort:   req.Sort,
			Status: domain.Status(req.Status),
			Title:  req.Title,
		})
		if err != nil {
			return nil, err
		}

		resp := ListTasksResponse{
			Tasks:  make([]TaskResponse, 0, len(tasks)),
			Total:  total,
			Offset: req.Offset,
			Limit:  req.Limit,
		}
		for _, t := range tasks {
			resp.Tasks = append(resp.Tasks, toTaskResponse(t))
		}

		if m.cache != nil {
			if err := m.cache.Set(ctx, key, resp); err != nil {
				log.Printf("[task] Failed to cache list: %v", err)
			}
		}
		return resp, nil
	})
	if err != nil {
		return ListTasksResponse{}, err
	}
	return val.(ListTasksResponse), nil
}

// updateTask handles the update-task service request for non-status fields.
func (m *TaskModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ID == "" {
		return TaskResponse{}, fmt.Errorf("id is required")
	}

	t, err := m.repo.FindByID(req.ID)
	if err != nil {
		return TaskResponse{}, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return TaskResponse{}, fmt.Errorf("title cannot be empty")
		}
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.AssigneeID != nil {
		t.AssigneeID = *req.AssigneeID
	}
	if req.Deadline != nil {
		t.Deadline = req.Deadline
	}

	if err := m.repo.Update(t); err != nil {
		return TaskResponse{}, err
	}

	m.invalidateCache(ctx)
	return toTaskResponse(t), nil
}

// updateTaskStatus handles the update-task-status service request. The
// repository runs the lifecycle engine inside the status transaction; on
// success a TaskStatusChanged event is published best-effort.
func (m *TaskModule) updateTaskStatus(ctx context.Context, req UpdateStatusRequest, _ *mono.Msg) (TaskResponse, error) {
	if req.ID == "" {
		return TaskResponse{}, fmt.Errorf("id is required")
	}
	next := domain.Status(req.Status)
	if !next.IsValid() {
		return TaskResponse{}, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, req.Status)
	}

	prior, err := m.repo.FindByID(req.ID)
	if err != nil {
		return TaskResponse{}, err
	}
	previous := prior.Status

	updated, err := m.repo.UpdateStatus(ctx, req.ID, next, m.engine)
	if err != nil {
		return TaskResponse{}, err
	}

	m.invalidateCache(ctx)

	if m.eventBus != nil {
		event := events.TaskStatusChangedEvent{
			TaskID:     updated.ID,
			Title:      updated.Title,
			AssigneeID: updated.AssigneeID,
			Previous:   string(previous),
			Next:       string(updated.Status),
			ChangedAt:  time.Now(),
		}
		if err := events.TaskStatusChangedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[task] Warning: failed to publish TaskStatusChanged event for task %s: %v", updated.ID, err)
		}
	}

	return toTaskResponse(updated), nil
}

// deleteTask handles the delete-task service request.
func (m *TaskModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if req.ID == "" {
		return DeleteTaskResponse{Deleted: false}, fmt.Errorf("id is required")
	}

	if err := m.repo.Delete(req.ID); err != nil {
		return DeleteTaskResponse{Deleted: false, ID: req.ID}, err
	}

	m.invalidateCache(ctx)
	return DeleteTaskResponse{Deleted: true, ID: req.ID}, nil
}

// stageHistory handles the stage-history service request.
func (m *TaskModule) stageHistory(_ context.Context, req StageHistoryRequest, _ *mono.Msg) (StageHistoryResponse, error) {
	if req.StageID == "" {
		return StageHistoryResponse{}, fmt.Errorf("stage_id is required")
	}

	entries, err := m.repo.HistoryForStage(req.StageID)
	if err != nil {
		return StageHistoryResponse{}, err
	}

	resp := StageHistoryResponse{
		StageID: req.StageID,
		Entries: make([]StageHistoryEntry, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, StageHistoryEntry{
			ID:          e.ID,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return resp, nil
}

// invalidateCache drops all cached task reads after a write.
func (m *TaskModule) invalidateCache(ctx context.Context) {
	if m.cache == nil {
		return
	}
	if err := m.cache.InvalidateAll(ctx); err != nil {
		log.Printf("[task] Failed to invalidate cache: %v", err)
	}
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(t *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		AssigneeID:  t.AssigneeID,
		TemplateID:  t.TemplateID,
		Deadline:    t.Deadline,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	for _, s := range t.Stages {
		resp.Stages = append(resp.Stages, StageResponse{
			ID:       s.ID,
			Title:    s.Title,
			Ordinal:  s.Ordinal,
			Finished: s.Finished,
			Deadline: s.Deadline,
		})
	}
	return resp
}
