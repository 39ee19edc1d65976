package server

import (
	"linkup/internal/models"
	"linkup/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /posts: the newest 50 posts, formatted for the caller.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	posts, err := s.postService.ListFeed(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetUserPosts handles GET /posts/user/:userId
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	authorID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListByAuthor(c.UserContext(), authorID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Content   string `json:"content"`
		MediaData string `json:"mediaData"`
		MediaType string `json:"mediaType"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:    userID,
		Content:   req.Content,
		MediaData: req.MediaData,
		MediaType: req.MediaType,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /posts/:postId
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), userID, postID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// ToggleLike handles POST /posts/:postId/like. Liking an already-liked post
// unlikes it.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	result, err := s.postService.ToggleLike(c.UserContext(), userID, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(result)
}
