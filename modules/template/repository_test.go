package template

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&Template{}, &Section{}, &Puzzle{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestCreateAndFindByIDLoadsNestedContent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	tpl := &Template{
		ID:    uuid.New().String(),
		Title: "Release checklist",
		Sections: []Section{
			{
				ID:      uuid.New().String(),
				Title:   "Verification",
				Ordinal: 1,
				Puzzles: []Puzzle{
					{ID: uuid.New().String(), Title: "Smoke test", Type: "checkbox", Ordinal: 0, Content: `{"checked":false}`},
				},
			},
			{
				ID:      uuid.New().String(),
				Title:   "Preparation",
				Ordinal: 0,
			},
		},
	}
	for i := range tpl.Sections {
		tpl.Sections[i].TemplateID = tpl.ID
		for j := range tpl.Sections[i].Puzzles {
			tpl.Sections[i].Puzzles[j].SectionID = tpl.Sections[i].ID
		}
	}
	if err := repo.Create(tpl); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.FindByID(tpl.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if len(found.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(found.Sections))
	}
	if found.Sections[0].Title != "Preparation" {
		t.Errorf("sections must be ordered by ordinal, got %s first", found.Sections[0].Title)
	}
	if len(found.Sections[1].Puzzles) != 1 {
		t.Fatalf("expected 1 puzzle in Verification, got %d", len(found.Sections[1].Puzzles))
	}
	if found.Sections[1].Puzzles[0].Content != `{"checked":false}` {
		t.Errorf("puzzle content not preserved: %s", found.Sections[1].Puzzles[0].Content)
	}
}

func TestFindByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(uuid.New().String())
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	tpl := &Template{ID: uuid.New().String(), Title: "Old title"}
	if err := repo.Create(tpl); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tpl.Title = "New title"
	tpl.Description = "Updated"
	if err := repo.Update(tpl); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByID(tpl.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Title != "New title" || found.Description != "Updated" {
		t.Errorf("update not persisted: %+v", found)
	}

	if err := repo.Delete(tpl.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID(tpl.ID); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound after delete, got %v", err)
	}
	if err := repo.Delete(tpl.ID); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound on second delete, got %v", err)
	}
}
