// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFollows handles GET /v1/follow/
// @Summary List the requester's follow edges
// @Description List who the authenticated user follows, optionally filtered by followed username
// @Tags follows
// @Produce json
// @Param search query string false "Followed username substring filter"
// @Success 200 {array} models.Follow
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /follow/ [get]
func (s *Server) GetFollows(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := requesterID(c)

	follows, err := s.followService.ListFollows(ctx, userID, c.Query("search"))
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	if follows == nil {
		follows = []*models.Follow{}
	}

	return c.JSON(follows)
}

// CreateFollow handles POST /v1/follow/
// @Summary Follow a user
// @Description Create a follow edge from the authenticated user to the named user
// @Tags follows
// @Accept json
// @Produce json
// @Param request body object{following=string} true "Username to follow"
// @Success 201 {object} models.Follow
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /follow/ [post]
func (s *Server) CreateFollow(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := requesterID(c)

	var req struct {
		Following string `json:"following"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	follow, err := s.followService.CreateFollow(ctx, service.CreateFollowInput{
		UserID:    userID,
		Following: req.Following,
	})
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(follow)
}

// DeleteFollow handles DELETE /v1/follow/:id
// @Summary Unfollow a user
// @Description Delete one of the requester's follow edges
// @Tags follows
// @Param id path int true "Follow ID"
// @Success 204
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /follow/{id} [delete]
func (s *Server) DeleteFollow(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := requesterID(c)
	followID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.followService.DeleteFollow(ctx, service.DeleteFollowInput{
		UserID:   userID,
		FollowID: followID,
	}); err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
