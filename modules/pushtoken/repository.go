package pushtoken

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrTokenNotFound is returned when no push token is registered for a user.
var ErrTokenNotFound = errors.New("push token not found")

// Repository provides access to push token storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new push token repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByUserID retrieves the push token registered for a user.
func (r *Repository) FindByUserID(userID string) (*PushToken, error) {
	var token PushToken
	if err := r.db.First(&token, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to find push token: %w", err)
	}
	return &token, nil
}

// Upsert registers a token for a user, replacing any previous one.
func (r *Repository) Upsert(userID, token string) (*PushToken, error) {
	record := &PushToken{
		ID:     uuid.New().String(),
		UserID: userID,
		Token:  token,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
	}).Create(record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert push token: %w", err)
	}
	return r.FindByUserID(userID)
}

// DeleteByUserID removes a user's push token, if any.
func (r *Repository) DeleteByUserID(userID string) error {
	if err := r.db.Delete(&PushToken{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete push token: %w", err)
	}
	return nil
}
