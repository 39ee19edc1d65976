package server

import (
	"linkup/internal/service"

	"github.com/gofiber/fiber/v2"

	"linkup/internal/models"
)

// GetUserProfile handles GET /users/:userId
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateProfile handles PUT /users/profile. Only the caller's own profile can
// be updated; fields absent from the body keep their stored values.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		FullName     *string `json:"fullName"`
		Bio          *string `json:"bio"`
		ProfileImage *string `json:"profileImage"`
		BannerImage  *string `json:"bannerImage"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID:       userID,
		FullName:     req.FullName,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		BannerImage:  req.BannerImage,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}
