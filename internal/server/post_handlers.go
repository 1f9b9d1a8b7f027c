// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /v1/posts/
// @Summary List posts
// @Description List posts, newest first, optionally filtered by group
// @Tags posts
// @Produce json
// @Param group query int false "Group ID filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page start"
// @Success 200 {object} Page
// @Router /posts/ [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, defaultPageLimit)

	var groupID *uint
	if g := c.QueryInt("group", 0); g > 0 {
		id := uint(g)
		groupID = &id
	}

	posts, err := s.postRepo.List(ctx, groupID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	count, err := s.postRepo.Count(ctx, groupID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(paginate(c, page, count, posts))
}

// GetPost handles GET /v1/posts/:id
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /v1/posts/
// @Summary Create a post
// @Description Create a post authored by the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Param request body object{text=string,image=string,group=int} true "Post payload"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/ [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := requesterID(c)

	var req struct {
		Text  string `json:"text"`
		Image string `json:"image,omitempty"`
		Group *uint  `json:"group,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		AuthorID: userID,
		Text:     req.Text,
		Image:    req.Image,
		GroupID:  req.Group,
	})
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT and PATCH /v1/posts/:id
// @Summary Update a post
// @Description Update a post; only the author may do this. PUT replaces text/image/group, PATCH changes only the fields present.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body object{text=string,image=string,group=int} true "Fields to update"
// @Success 200 {object} models.Post
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := requesterID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text  *string `json:"text"`
		Image *string `json:"image"`
		Group *uint   `json:"group"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		RequesterID: userID,
		PostID:      postID,
		Partial:     c.Method() == fiber.MethodPatch,
		Text:        req.Text,
		Image:       req.Image,
		GroupID:     req.Group,
	})
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /v1/posts/:id
// @Summary Delete a post
// @Description Delete a post and its comments; only the author may do this
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := requesterID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, service.DeletePostInput{
		RequesterID: userID,
		PostID:      postID,
	}); err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
