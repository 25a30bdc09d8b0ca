package task

import (
	"errors"
	"testing"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/google/uuid"
)

func TestCreateAndFindByIDReturnsOrderedStages(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	created := &domain.Task{
		ID:    uuid.New().String(),
		Title: "Onboard new hire",
		Stages: []domain.Stage{
			{ID: uuid.New().String(), Title: "Accounts", Ordinal: 2},
			{ID: uuid.New().String(), Title: "Paperwork", Ordinal: 0},
			{ID: uuid.New().String(), Title: "Intro meeting", Ordinal: 1},
		},
	}
	for i := range created.Stages {
		created.Stages[i].TaskID = created.ID
	}
	if err := repo.Create(created); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if len(found.Stages) != 3 {
		t.Fatalf("expected 3 stages, got %d", len(found.Stages))
	}
	for i, want := range []string{"Paperwork", "Intro meeting", "Accounts"} {
		if found.Stages[i].Title != want {
			t.Errorf("stage %d: expected %s, got %s", i, want, found.Stages[i].Title)
		}
	}
}

func TestFindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(uuid.New().String())
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestListFiltersAndPaginates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	titles := []struct {
		title  string
		status domain.Status
	}{
		{"Alpha report", domain.StatusDraft},
		{"Beta review", domain.StatusInProgress},
		{"Gamma review", domain.StatusInProgress},
		{"Delta cleanup", domain.StatusCompleted},
	}
	for _, tt := range titles {
		task := &domain.Task{ID: uuid.New().String(), Title: tt.title, Status: tt.status}
		if err := repo.Create(task); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("status filter", func(t *testing.T) {
		tasks, total, err := repo.List(ListQuery{Status: domain.StatusInProgress})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 2 || len(tasks) != 2 {
			t.Errorf("expected 2 in-progress tasks, got total=%d len=%d", total, len(tasks))
		}
	})

	t.Run("title substring", func(t *testing.T) {
		tasks, total, err := repo.List(ListQuery{Title: "review"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 2 {
			t.Errorf("expected 2 matches, got %d", total)
		}
		for _, task := range tasks {
			if task.Title != "Beta review" && task.Title != "Gamma review" {
				t.Errorf("unexpected task in results: %s", task.Title)
			}
		}
	})

	t.Run("sort desc with pagination", func(t *testing.T) {
		tasks, total, err := repo.List(ListQuery{Sort: "desc", Offset: 1, Limit: 2})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if total != 4 {
			t.Errorf("expected total 4 before pagination, got %d", total)
		}
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks in page, got %d", len(tasks))
		}
		if tasks[0].Title != "Delta cleanup" || tasks[1].Title != "Beta review" {
			t.Errorf("unexpected page order: %s, %s", tasks[0].Title, tasks[1].Title)
		}
	})
}

func TestUpdatePersistsFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := &domain.Task{ID: uuid.New().String(), Title: "Initial", Status: domain.StatusDraft}
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	task.Title = "Renamed"
	task.AssigneeID = "user-9"
	if err := repo.Update(task); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByID(task.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Title != "Renamed" || found.AssigneeID != "user-9" {
		t.Errorf("update not persisted: title=%s assignee=%s", found.Title, found.AssigneeID)
	}
	if found.Status != domain.StatusDraft {
		t.Errorf("Update must not touch status, got %s", found.Status)
	}
}

func TestDeleteIsSoft(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := &domain.Task{ID: uuid.New().String(), Title: "Ephemeral"}
	if err := repo.Create(task); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(task.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.FindByID(task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}

	// The row survives with a deletion marker.
	var count int64
	if err := db.Unscoped().Model(&domain.Task{}).Where("id = ?", task.ID).Count(&count).Error; err != nil {
		t.Fatalf("unscoped count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected soft-deleted row to remain, got %d", count)
	}

	if err := repo.Delete(task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestHistoryForStageUnknownStage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.HistoryForStage(uuid.New().String())
	if !errors.Is(err, domain.ErrStageNotFound) {
		t.Fatalf("expected ErrStageNotFound, got %v", err)
	}
}
