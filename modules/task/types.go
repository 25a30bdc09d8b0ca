package task

import "time"

// StageInput describes one workflow stage of a task being created.
type StageInput struct {
	Title    string     `json:"title"`
	Ordinal  int        `json:"ordinal"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// CreateTaskRequest is the request for the create-task service.
type CreateTaskRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssigneeID  string       `json:"assignee_id,omitempty"`
	TemplateID  string       `json:"template_id,omitempty"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	Stages      []StageInput `json:"stages,omitempty"`
}

// GetTaskRequest is the request for the get-task service.
type GetTaskRequest struct {
	ID string `json:"id"`
}

// ListTasksRequest is the request for the list-tasks service.
type ListTasksRequest struct {
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
	Sort   string `json:"sort,omitempty"`
	Status string `json:"status,omitempty"`
	Title  string `json:"title,omitempty"`
}

// UpdateTaskRequest is the request for the update-task service. Nil fields
// are left unchanged.
type UpdateTaskRequest struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	AssigneeID  *string    `json:"assignee_id,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// UpdateStatusRequest is the request for the update-task-status service.
type UpdateStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// DeleteTaskRequest is the request for the delete-task service.
type DeleteTaskRequest struct {
	ID string `json:"id"`
}

// DeleteTaskResponse is the response for the delete-task service.
type DeleteTaskResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// StageHistoryRequest is the request for the stage-history service.
type StageHistoryRequest struct {
	StageID string `json:"stage_id"`
}

// StageHistoryEntry is one audit record in a stage-history response.
type StageHistoryEntry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// StageHistoryResponse is the response for the stage-history service.
type StageHistoryResponse struct {
	StageID string              `json:"stage_id"`
	Entries []StageHistoryEntry `json:"entries"`
}

// StageResponse describes a stage in task responses.
type StageResponse struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Ordinal  int        `json:"ordinal"`
	Finished bool       `json:"finished"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// TaskResponse describes a task in service responses.
type TaskResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	AssigneeID  string          `json:"assignee_id,omitempty"`
	TemplateID  string          `json:"template_id,omitempty"`
	Stages      []StageResponse `json:"stages,omitempty"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ListTasksResponse is the response for the list-tasks service.
type ListTasksResponse struct {
	Tasks  []TaskResponse `json:"tasks"`
	Total  int64          `json:"total"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}
