package models

import (
	"time"
)

// Like represents a user's like on a post.
// The combination of UserID and PostID must be unique, which makes the like
// set an atomic membership primitive: a duplicate insert is a no-op rather
// than a lost-update hazard.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"userId"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}
