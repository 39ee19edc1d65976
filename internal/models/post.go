// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Media types accepted on a post. The empty string means text-only.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeNone  = ""
)

const (
	// MaxPostContentLen is the maximum post length after trimming.
	MaxPostContentLen = 500
	// MaxCommentContentLen is the maximum comment length after trimming.
	MaxCommentContentLen = 200
	// MaxBioLen is the maximum profile bio length.
	MaxBioLen = 200
)

// Post represents a post authored by a user. Likes live in the likes join
// table; comments are child rows ordered by insertion.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"type:text;not null" json:"content"`
	UserID  uint   `gorm:"not null;index" json:"userId"`
	User    User   `gorm:"foreignKey:UserID" json:"-"`
	// MediaURL is a legacy field kept for wire compatibility; new media is
	// carried inline in MediaData.
	MediaURL  string    `json:"mediaUrl"`
	MediaType string    `json:"mediaType"`
	MediaData string    `gorm:"type:text" json:"mediaData"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"-"`

	// LikesCount is not persisted; computed at query time.
	LikesCount int `gorm:"->" json:"-"`
	// Liked indicates whether the requesting user liked this post (computed).
	Liked bool `gorm:"->" json:"-"`
}

// ValidMediaType reports whether t is an accepted media type value.
func ValidMediaType(t string) bool {
	switch t {
	case MediaTypeImage, MediaTypeVideo, MediaTypeNone:
		return true
	}
	return false
}

// AuthorRef is the expanded author reference embedded in formatted posts
// and comments.
type AuthorRef struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
}

// CommentView is the wire representation of a comment with its author expanded.
type CommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Author    AuthorRef `json:"author"`
}

// PostView is the wire representation of a post: author expanded, numeric
// like count, caller-specific isLiked flag and comments in insertion order.
type PostView struct {
	ID        uint          `json:"id"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	Author    AuthorRef     `json:"author"`
	Likes     int           `json:"likes"`
	IsLiked   bool          `json:"isLiked"`
	Comments  []CommentView `json:"comments"`
	MediaURL  string        `json:"mediaUrl"`
	MediaType string        `json:"mediaType"`
	MediaData string        `json:"mediaData"`
}

// LikeResult is the response body of the like toggle endpoint.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}
