package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix         = "user:%d"
	postCommentsKeyPrefix = "post:%d:comments"
)

const (
	// UserTTL bounds staleness of cached user profiles.
	UserTTL = 5 * time.Minute
	// PostCommentsTTL bounds staleness of cached per-post comment lists.
	PostCommentsTTL = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func PostCommentsKey(postID uint) string {
	return fmt.Sprintf(postCommentsKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePostComments(ctx context.Context, postID uint) {
	Invalidate(ctx, PostCommentsKey(postID))
}
