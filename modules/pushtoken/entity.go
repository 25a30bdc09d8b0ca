// Package pushtoken stores the device push tokens used to route
// notifications to users.
package pushtoken

import "time"

// PushToken associates a user with the opaque device token their push
// notifications are routed to. One token per user; re-registration replaces it.
type PushToken struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	Token     string    `gorm:"size:500;not null" json:"token"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the PushToken entity.
func (PushToken) TableName() string {
	return "push_tokens"
}
