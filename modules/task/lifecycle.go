package task

import (
	"context"
	"fmt"
	"log"
	"time"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/google/uuid"
)

// TransitionWriter persists lifecycle side effects. The repository binds it
// to the transaction carrying the status mutation so stage and history
// writes commit or roll back together with the status itself.
type TransitionWriter interface {
	SaveStage(stage *domain.Stage) error
	SaveHistory(history *domain.StageHistory) error
}

// Notifier delivers a push notification to a task's assignee. Delivery is
// best effort and never returns an error.
type Notifier interface {
	Dispatch(ctx context.Context, assigneeID, taskTitle string)
}

// LifecycleEngine runs the side effects of a task status change before the
// new status commits. It does not gatekeep transition legality; it reacts
// to whatever status change is being persisted.
type LifecycleEngine struct {
	notifier Notifier
}

// NewLifecycleEngine creates a lifecycle engine.
func NewLifecycleEngine(notifier Notifier) *LifecycleEngine {
	return &LifecycleEngine{notifier: notifier}
}

// Run applies the lifecycle hooks for the transition from prior.Status to
// next, in order:
//
//  1. moving to COMPLETED finalizes the active stage,
//  2. moving to IN_PROGRESS notifies the assignee,
//  3. audit-worthy transitions append a StageHistory row for the active stage.
//
// Stage and history write failures are fatal and abort the transaction.
// Notification failures are absorbed by the notifier. A task with no active
// stage skips the stage-bound effects.
func (e *LifecycleEngine) Run(ctx context.Context, w TransitionWriter, prior *domain.Task, next domain.Status) error {
	description, audited := domain.DescribeTransition(prior.Status, next)
	active := domain.ActiveStage(prior.Stages)

	if next == domain.StatusCompleted && active != nil {
		active.Finalize()
		if err := w.SaveStage(active); err != nil {
			return fmt.Errorf("failed to finalize stage %s: %w", active.ID, err)
		}
	}

	if next == domain.StatusInProgress && e.notifier != nil {
		e.notifier.Dispatch(ctx, prior.AssigneeID, prior.Title)
	}

	if active != nil && audited {
		entry := &domain.StageHistory{
			ID:          uuid.New().String(),
			StageID:     active.ID,
			Description: description,
			CreatedAt:   time.Now(),
		}
		if err := w.SaveHistory(entry); err != nil {
			return fmt.Errorf("failed to append stage history: %w", err)
		}
	}

	log.Printf("[task] Lifecycle hooks applied for task %s: %s -> %s", prior.ID, prior.Status, next)
	return nil
}
