package service

import (
	"context"

	"linkup/internal/models"
)

// Function-field stubs so each test supplies only the calls it expects.

type postRepoStub struct {
	createFn    func(ctx context.Context, post *models.Post) error
	getByIDFn   func(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	byUserFn    func(ctx context.Context, userID uint, currentUserID uint) ([]*models.Post, error)
	listFn      func(ctx context.Context, limit int, currentUserID uint) ([]*models.Post, error)
	updateFn    func(ctx context.Context, post *models.Post) error
	deleteFn    func(ctx context.Context, id uint) error
	isLikedFn   func(ctx context.Context, userID, postID uint) (bool, error)
	likeFn      func(ctx context.Context, userID, postID uint) error
	unlikeFn    func(ctx context.Context, userID, postID uint) error
	likeCountFn func(ctx context.Context, postID uint) (int, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}

func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, currentUserID uint) ([]*models.Post, error) {
	return s.byUserFn(ctx, userID, currentUserID)
}

func (s *postRepoStub) List(ctx context.Context, limit int, currentUserID uint) ([]*models.Post, error) {
	return s.listFn(ctx, limit, currentUserID)
}

func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}

func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}

func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}

func (s *postRepoStub) LikeCount(ctx context.Context, postID uint) (int, error) {
	return s.likeCountFn(ctx, postID)
}

type commentRepoStub struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Comment, error)
	listByPostFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}

func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

type userRepoStub struct {
	getByIDFn      func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn   func(ctx context.Context, email string) (*models.User, error)
	createFn       func(ctx context.Context, user *models.User) error
	updateFieldsFn func(ctx context.Context, id uint, fields map[string]any) (*models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *userRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*models.User, error) {
	return s.updateFieldsFn(ctx, id, fields)
}
