package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"linkup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePost(id, userID uint) *models.Post {
	return &models.Post{
		ID:        id,
		Content:   "sample content",
		UserID:    userID,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		User: models.User{
			ID:       userID,
			FullName: "Sample Author",
		},
	}
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestCreatePostTrimsContent(t *testing.T) {
	var stored *models.Post
	repo := &postRepoStub{
		createFn: func(_ context.Context, post *models.Post) error {
			post.ID = 7
			stored = post
			return nil
		},
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			p := samplePost(id, 1)
			p.Content = stored.Content
			return p, nil
		},
	}
	svc := NewPostService(repo)

	view, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  1,
		Content: "  hello world  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", stored.Content)
	assert.Equal(t, "hello world", view.Content)
	assert.Equal(t, uint(7), view.ID)
	assert.NotNil(t, view.Comments)
}

func TestCreatePostRejectsBlankContent(t *testing.T) {
	svc := NewPostService(&postRepoStub{})

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.CreatePost(context.Background(), CreatePostInput{UserID: 1, Content: content})
		requireValidation(t, err)
	}
}

func TestCreatePostRejectsOverlongContent(t *testing.T) {
	svc := NewPostService(&postRepoStub{})

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:  1,
		Content: strings.Repeat("a", models.MaxPostContentLen+1),
	})
	requireValidation(t, err)
}

func TestCreatePostRejectsBadMediaType(t *testing.T) {
	svc := NewPostService(&postRepoStub{})

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:    1,
		Content:   "ok",
		MediaType: "audio",
	})
	requireValidation(t, err)
}

func TestUpdatePostForbiddenForNonAuthor(t *testing.T) {
	repo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return samplePost(id, 1), nil
		},
	}
	svc := NewPostService(repo)

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID:  2,
		PostID:  10,
		Content: "hijack",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
}

func TestUpdatePostRevalidatesContent(t *testing.T) {
	repo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return samplePost(id, 1), nil
		},
	}
	svc := NewPostService(repo)

	_, err := svc.UpdatePost(context.Background(), UpdatePostInput{UserID: 1, PostID: 10, Content: "  "})
	requireValidation(t, err)

	_, err = svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID: 1, PostID: 10, Content: strings.Repeat("b", models.MaxPostContentLen+1),
	})
	requireValidation(t, err)
}

func TestUpdatePostPersistsTrimmedContent(t *testing.T) {
	content := "sample content"
	repo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			p := samplePost(id, 1)
			p.Content = content
			return p, nil
		},
		updateFn: func(_ context.Context, post *models.Post) error {
			content = post.Content
			return nil
		},
	}
	svc := NewPostService(repo)

	view, err := svc.UpdatePost(context.Background(), UpdatePostInput{
		UserID: 1, PostID: 10, Content: "  revised  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "revised", content)
	assert.Equal(t, "revised", view.Content)
}

func TestDeletePostForbiddenForNonAuthor(t *testing.T) {
	repo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return samplePost(id, 1), nil
		},
	}
	svc := NewPostService(repo)

	err := svc.DeletePost(context.Background(), 2, 10)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeForbidden, appErr.Code)
}

func TestDeletePostByAuthor(t *testing.T) {
	deleted := false
	repo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return samplePost(id, 1), nil
		},
		deleteFn: func(_ context.Context, id uint) error {
			deleted = true
			return nil
		},
	}
	svc := NewPostService(repo)

	require.NoError(t, svc.DeletePost(context.Background(), 1, 10))
	assert.True(t, deleted)
}

func TestToggleLikeAddsThenRemoves(t *testing.T) {
	liked := false
	count := 0
	repo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return samplePost(id, 1), nil
		},
		isLikedFn: func(_ context.Context, _, _ uint) (bool, error) {
			return liked, nil
		},
		likeFn: func(_ context.Context, _, _ uint) error {
			liked = true
			count++
			return nil
		},
		unlikeFn: func(_ context.Context, _, _ uint) error {
			liked = false
			count--
			return nil
		},
		likeCountFn: func(_ context.Context, _ uint) (int, error) {
			return count, nil
		},
	}
	svc := NewPostService(repo)

	res, err := svc.ToggleLike(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.Equal(t, 1, res.LikeCount)

	res, err = svc.ToggleLike(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Equal(t, 0, res.LikeCount)
}

func TestToggleLikeUnknownPost(t *testing.T) {
	repo := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint, _ uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post")
		},
	}
	svc := NewPostService(repo)

	_, err := svc.ToggleLike(context.Background(), 2, 999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestListFeedFormatsPosts(t *testing.T) {
	post := samplePost(10, 1)
	post.LikesCount = 3
	post.Liked = true
	post.Comments = []models.Comment{
		{
			ID:      4,
			Content: "nice",
			User:    models.User{ID: 2, FullName: "Commenter"},
		},
	}
	repo := &postRepoStub{
		listFn: func(_ context.Context, limit int, callerID uint) ([]*models.Post, error) {
			assert.Equal(t, FeedLimit, limit)
			assert.Equal(t, uint(9), callerID)
			return []*models.Post{post}, nil
		},
	}
	svc := NewPostService(repo)

	views, err := svc.ListFeed(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, uint(10), v.ID)
	assert.Equal(t, "Sample Author", v.Author.FullName)
	assert.Equal(t, 3, v.Likes)
	assert.True(t, v.IsLiked)
	require.Len(t, v.Comments, 1)
	assert.Equal(t, "nice", v.Comments[0].Content)
	assert.Equal(t, "Commenter", v.Comments[0].Author.FullName)
}

func TestListFeedEmptyIsNonNil(t *testing.T) {
	repo := &postRepoStub{
		listFn: func(_ context.Context, _ int, _ uint) ([]*models.Post, error) {
			return nil, nil
		},
	}
	svc := NewPostService(repo)

	views, err := svc.ListFeed(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}
