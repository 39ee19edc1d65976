// Package service holds the application's domain logic between handlers and repositories.
package service

import (
	"context"
	"strings"

	"linkup/internal/models"
	"linkup/internal/repository"
)

// FeedLimit is the fixed cap on the main feed. There is no pagination cursor.
const FeedLimit = 50

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID    uint
	Content   string
	MediaData string
	MediaType string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// ListFeed returns the newest posts, capped at FeedLimit, formatted for the caller.
func (s *PostService) ListFeed(ctx context.Context, callerID uint) ([]models.PostView, error) {
	posts, err := s.postRepo.List(ctx, FeedLimit, callerID)
	if err != nil {
		return nil, err
	}
	return formatPosts(posts), nil
}

// ListByAuthor returns all of one author's posts, newest first, formatted for the caller.
func (s *PostService) ListByAuthor(ctx context.Context, authorID, callerID uint) ([]models.PostView, error) {
	posts, err := s.postRepo.GetByUserID(ctx, authorID, callerID)
	if err != nil {
		return nil, err
	}
	return formatPosts(posts), nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.PostView, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Post content is required")
	}
	if len(content) > models.MaxPostContentLen {
		return nil, models.NewValidationError("Post content must not exceed 500 characters")
	}
	if !models.ValidMediaType(in.MediaType) {
		return nil, models.NewValidationError("Invalid media type")
	}

	post := &models.Post{
		Content:   content,
		UserID:    in.UserID,
		MediaData: in.MediaData,
		MediaType: in.MediaType,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload with author expanded and computed fields populated.
	created, err := s.postRepo.GetByID(ctx, post.ID, in.UserID)
	if err != nil {
		return nil, err
	}
	view := formatPost(created)
	return &view, nil
}

// UpdatePost overwrites a post's content. Only the author may update; content
// is re-validated the same way as on creation.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("Not authorized to update this post")
	}

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Post content is required")
	}
	if len(content) > models.MaxPostContentLen {
		return nil, models.NewValidationError("Post content must not exceed 500 characters")
	}

	post.Content = content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	updated, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	view := formatPost(updated)
	return &view, nil
}

// DeletePost removes a post and its comments entirely. Only the author may delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("Not authorized to delete this post")
	}
	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the caller's membership in the post's like set and returns
// the new state with the updated count.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.LikeResult, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if liked {
		err = s.postRepo.Unlike(ctx, userID, postID)
	} else {
		err = s.postRepo.Like(ctx, userID, postID)
	}
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &models.LikeResult{Liked: !liked, LikeCount: count}, nil
}

func formatPosts(posts []*models.Post) []models.PostView {
	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, formatPost(p))
	}
	return views
}

func formatPost(p *models.Post) models.PostView {
	return models.PostView{
		ID:        p.ID,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		Author: models.AuthorRef{
			ID:       p.User.ID,
			FullName: p.User.FullName,
		},
		Likes:     p.LikesCount,
		IsLiked:   p.Liked,
		Comments:  formatComments(p.Comments),
		MediaURL:  p.MediaURL,
		MediaType: p.MediaType,
		MediaData: p.MediaData,
	}
}

func formatComments(comments []models.Comment) []models.CommentView {
	views := make([]models.CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, formatComment(&comments[i]))
	}
	return views
}

func formatComment(c *models.Comment) models.CommentView {
	return models.CommentView{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		Author: models.AuthorRef{
			ID:       c.User.ID,
			FullName: c.User.FullName,
		},
	}
}
