// Package events defines the typed domain events emitted by the task module.
package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// TaskStatusChangedEvent is emitted after a task's status mutation commits.
type TaskStatusChangedEvent struct {
	TaskID     string    `json:"task_id"`
	Title      string    `json:"title"`
	AssigneeID string    `json:"assignee_id,omitempty"`
	Previous   string    `json:"previous"`
	Next       string    `json:"next"`
	ChangedAt  time.Time `json:"changed_at"`
}

// TaskStatusChangedV1 is the typed event definition for status changes.
// Subject: events.task.v1.task-status-changed
var TaskStatusChangedV1 = helper.EventDefinition[TaskStatusChangedEvent](
	"task", "TaskStatusChanged", "v1",
)
