package service

import (
	"context"
	"strings"

	"linkup/internal/models"
	"linkup/internal/repository"
	"linkup/internal/validation"
)

type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the caller's profile changes. Nil fields were
// absent from the request and leave the stored value untouched.
type UpdateProfileInput struct {
	UserID       uint
	FullName     *string
	Bio          *string
	ProfileImage *string
	BannerImage  *string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies partial-field semantics: present fields overwrite,
// absent fields are preserved.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	fields := map[string]any{}

	if in.FullName != nil {
		if err := validation.ValidateFullName(*in.FullName); err != nil {
			return nil, models.NewValidationError("Full name is required")
		}
		fields["full_name"] = strings.TrimSpace(*in.FullName)
	}
	if in.Bio != nil {
		if len(*in.Bio) > models.MaxBioLen {
			return nil, models.NewValidationError("Bio must not exceed 200 characters")
		}
		fields["bio"] = *in.Bio
	}
	if in.ProfileImage != nil {
		fields["profile_image"] = *in.ProfileImage
	}
	if in.BannerImage != nil {
		fields["banner_image"] = *in.BannerImage
	}

	return s.userRepo.UpdateFields(ctx, in.UserID, fields)
}
