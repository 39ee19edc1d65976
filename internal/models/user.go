// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a member of the LinkUp network. The JSON shape is the
// public projection: the password hash is never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	FullName     string    `gorm:"not null" json:"fullName"`
	Bio          string    `json:"bio"`
	AvatarURL    string    `json:"avatarUrl"`
	ProfileImage string    `json:"profileImage"`
	BannerImage  string    `json:"bannerImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Posts        []Post    `gorm:"foreignKey:UserID" json:"-"`
}
