// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGroups handles GET /v1/groups/
// @Summary List groups
// @Description List groups, optionally filtered by a case-insensitive title search
// @Tags groups
// @Produce json
// @Param search query string false "Title substring filter"
// @Success 200 {array} models.Group
// @Router /groups/ [get]
func (s *Server) GetGroups(c *fiber.Ctx) error {
	ctx := c.Context()

	groups, err := s.groupRepo.List(ctx, c.Query("search"))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if groups == nil {
		groups = []*models.Group{}
	}

	return c.JSON(groups)
}

// GetGroup handles GET /v1/groups/:id
// @Summary Get a group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} models.Group
// @Failure 404 {object} models.ErrorResponse
// @Router /groups/{id} [get]
func (s *Server) GetGroup(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(group)
}
