package task

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domain "github.com/example/task-tracker/domain/task"
	"gorm.io/gorm"
)

// ListQuery describes pagination, sorting and filtering for task listings.
type ListQuery struct {
	Offset int
	Limit  int
	// Sort orders by title, "asc" or "desc". Empty means no explicit order.
	Sort string
	// Status filters to a single lifecycle state when set.
	Status domain.Status
	// Title filters by case-insensitive substring match when set.
	Title string
}

// Repository provides access to task storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task with its stages.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task with its stages ordered by ordinal.
func (r *Repository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal ASC")
		}).
		First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// List retrieves tasks matching the query plus the total count before
// pagination.
func (r *Repository) List(q ListQuery) ([]*domain.Task, int64, error) {
	query := r.db.Model(&domain.Task{})

	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Title != "" {
		query = query.Where("title LIKE ?", "%"+q.Title+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	switch strings.ToLower(q.Sort) {
	case "asc":
		query = query.Order("title ASC")
	case "desc":
		query = query.Order("title DESC")
	}

	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	var tasks []*domain.Task
	err := query.
		Preload("Stages", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal ASC")
		}).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// Update persists changes to a task's non-status fields.
func (r *Repository) Update(task *domain.Task) error {
	result := r.db.Model(&domain.Task{}).Where("id = ?", task.ID).Updates(map[string]any{
		"title":       task.Title,
		"description": task.Description,
		"assignee_id": task.AssigneeID,
		"deadline":    task.Deadline,
	})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// UpdateStatus transitions a task to the given status. The prior snapshot
// is loaded, the lifecycle engine runs, and the new status is written, all
// inside one transaction. A missing task or a failed stage or history write
// rolls the whole transition back.
func (r *Repository) UpdateStatus(ctx context.Context, id string, next domain.Status, engine *LifecycleEngine) (*domain.Task, error) {
	var updated *domain.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prior domain.Task
		err := tx.
			Preload("Stages", func(db *gorm.DB) *gorm.DB {
				return db.Order("ordinal ASC")
			}).
			First(&prior, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTaskNotFound
			}
			return fmt.Errorf("failed to load task snapshot: %w", err)
		}

		if err := engine.Run(ctx, &txWriter{tx: tx}, &prior, next); err != nil {
			return err
		}

		if err := tx.Model(&domain.Task{}).Where("id = ?", id).Update("status", next).Error; err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		prior.Status = next
		updated = &prior
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a task by ID (soft delete).
func (r *Repository) Delete(id string) error {
	result := r.db.Delete(&domain.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// HistoryForStage retrieves the audit log for a stage, oldest first.
func (r *Repository) HistoryForStage(stageID string) ([]domain.StageHistory, error) {
	var exists int64
	if err := r.db.Model(&domain.Stage{}).Where("id = ?", stageID).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("failed to check stage: %w", err)
	}
	if exists == 0 {
		return nil, domain.ErrStageNotFound
	}

	var entries []domain.StageHistory
	err := r.db.
		Where("stage_id = ?", stageID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load stage history: %w", err)
	}
	return entries, nil
}

// txWriter binds lifecycle side-effect writes to the enclosing transaction.
type txWriter struct {
	tx *gorm.DB
}

func (w *txWriter) SaveStage(stage *domain.Stage) error {
	return w.tx.Save(stage).Error
}

func (w *txWriter) SaveHistory(history *domain.StageHistory) error {
	return w.tx.Create(history).Error
}
