package service

import (
	"context"
	"strings"

	"linkup/internal/cache"
	"linkup/internal/models"
	"linkup/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment appends a comment to a post with the caller as author.
// Content is validated before the post lookup, so bad content on a missing
// post reads as a validation failure.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.CommentView, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(content) > models.MaxCommentContentLen {
		return nil, models.NewValidationError("Comment must not exceed 200 characters")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID, 0); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	cache.InvalidatePostComments(ctx, in.PostID)

	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	view := formatComment(created)
	return &view, nil
}

// ListComments returns a post's comments in insertion order, author expanded.
// The formatted list is caller-agnostic, so it is served cache-aside.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]models.CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}

	var views []models.CommentView
	err := cache.Aside(ctx, cache.PostCommentsKey(postID), &views, cache.PostCommentsTTL, func() error {
		comments, err := s.commentRepo.ListByPost(ctx, postID)
		if err != nil {
			return err
		}
		views = make([]models.CommentView, 0, len(comments))
		for _, c := range comments {
			views = append(views, formatComment(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
