// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"linkup/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls the size of the generated network.
type Options struct {
	Users           int
	PostsPerUser    int
	MaxLikesPerPost int
	MaxDaysBack     int
	Password        string
}

// DefaultOptions returns a small but lively demo network.
func DefaultOptions() Options {
	return Options{
		Users:           12,
		PostsPerUser:    4,
		MaxLikesPerPost: 8,
		MaxDaysBack:     60,
		Password:        "demo-password",
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists one fake user with a bcrypt-hashed shared password.
func (f *Factory) CreateUser() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(f.opts.Password), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     gofakeit.Email(),
		Password:  string(hash),
		FullName:  gofakeit.Name(),
		Bio:       gofakeit.JobTitle() + " at " + gofakeit.Company(),
		AvatarURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists one fake post for the given author with a created_at
// spread over the recent past so feeds look organic.
func (f *Factory) CreatePost(author *models.User) (*models.Post, error) {
	post := &models.Post{
		Content: gofakeit.Sentence(12 + f.rng.Intn(20)),
		UserID:  author.ID,
	}

	maxDays := f.opts.MaxDaysBack
	if maxDays <= 0 {
		maxDays = 60
	}
	post.CreatedAt = time.Now().
		Add(-time.Duration(f.rng.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(f.rng.Intn(24)) * time.Hour).
		Add(-time.Duration(f.rng.Intn(60)) * time.Minute)

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment appends one fake comment by the given user.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(4 + f.rng.Intn(10)),
		UserID:  user.ID,
		PostID:  post.ID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// Like adds user to post's like set; duplicate picks are a no-op.
func (f *Factory) Like(user *models.User, post *models.Post) error {
	return f.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}).Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error
}

// Network generates a full demo network: users, posts, likes and comments.
func Network(db *gorm.DB, opts Options) error {
	f := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, u)
	}

	for _, author := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(author)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}

			likes := f.rng.Intn(opts.MaxLikesPerPost + 1)
			for j := 0; j < likes; j++ {
				liker := users[f.rng.Intn(len(users))]
				if err := f.Like(liker, post); err != nil {
					return fmt.Errorf("seed like: %w", err)
				}
			}

			for j := 0; j < f.rng.Intn(4); j++ {
				commenter := users[f.rng.Intn(len(users))]
				if _, err := f.CreateComment(commenter, post); err != nil {
					return fmt.Errorf("seed comment: %w", err)
				}
			}
		}
	}

	return nil
}
