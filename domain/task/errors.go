package task

import "errors"

var (
	// ErrTaskNotFound indicates the task was not found.
	ErrTaskNotFound = errors.New("task not found")
	// ErrStageNotFound indicates the stage was not found.
	ErrStageNotFound = errors.New("stage not found")
	// ErrInvalidStatus indicates an unknown lifecycle status was provided.
	ErrInvalidStatus = errors.New("invalid task status")
)
