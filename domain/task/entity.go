// Package task provides domain types for tasks, their workflow stages and
// the append-only stage audit log.
package task

import (
	"time"

	"gorm.io/gorm"
)

// Status represents the lifecycle state of a task.
type Status string

const (
	// StatusDraft is the initial state of a newly authored task.
	StatusDraft Status = "DRAFT"
	// StatusInProgress indicates the task has been handed to its assignee.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusOnCheck indicates the task is awaiting review.
	StatusOnCheck Status = "ON_CHECK"
	// StatusExpired indicates the task missed its deadline. Terminal.
	StatusExpired Status = "EXPIRED"
	// StatusCompleted indicates the task passed review. Terminal.
	StatusCompleted Status = "COMPLETED"
)

// IsValid returns true if the status is a known lifecycle state.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusOnCheck, StatusExpired, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if no further transition is defined from the status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusExpired
}

// Task is a unit of assignable work moving through the status lifecycle.
type Task struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"size:1000" json:"description"`
	Status      Status         `gorm:"size:20;not null;default:DRAFT;index" json:"status"`
	AssigneeID  string         `gorm:"size:36;index" json:"assignee_id,omitempty"`
	TemplateID  string         `gorm:"size:36;index" json:"template_id,omitempty"`
	Stages      []Stage        `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"stages,omitempty"`
	Deadline    *time.Time     `json:"deadline,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the Task entity.
func (Task) TableName() string {
	return "tasks"
}

// Stage is a sequential phase of a task's workflow. Under normal operation
// at most one stage per activated task is unfinished.
type Stage struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string     `gorm:"size:36;not null;index" json:"task_id"`
	Title     string     `gorm:"size:200" json:"title"`
	Ordinal   int        `gorm:"not null;default:0" json:"ordinal"`
	Finished  bool       `gorm:"not null;default:false" json:"finished"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TableName returns the table name for the Stage entity.
func (Stage) TableName() string {
	return "stages"
}

// Finalize marks the stage finished. Calling it on an already finished
// stage is a no-op.
func (s *Stage) Finalize() {
	s.Finished = true
}

// StageHistory is an immutable audit record describing a status transition
// observed while the stage was active. Rows are only ever appended.
type StageHistory struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	StageID     string    `gorm:"size:36;not null;index" json:"stage_id"`
	Description string    `gorm:"size:500;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for the StageHistory entity.
func (StageHistory) TableName() string {
	return "stage_history"
}
