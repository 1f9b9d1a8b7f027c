// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"quill/internal/models"
	"quill/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /v1/posts/:postId/comments/
// @Summary List a post's comments
// @Tags comments
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {array} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{postId}/comments/ [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(ctx, postID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	return c.JSON(comments)
}

// GetComment handles GET /v1/posts/:postId/comments/:id
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param postId path int true "Post ID"
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{postId}/comments/{id} [get]
func (s *Server) GetComment(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(ctx, postID, commentID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(comment)
}

// CreateComment handles POST /v1/posts/:postId/comments/
// @Summary Create a comment
// @Description Comment on a post as the authenticated user
// @Tags comments
// @Accept json
// @Produce json
// @Param postId path int true "Post ID"
// @Param request body object{text=string} true "Comment payload"
// @Success 201 {object} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{postId}/comments/ [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := requesterID(c)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		AuthorID: userID,
		PostID:   postID,
		Text:     req.Text,
	})
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT and PATCH /v1/posts/:postId/comments/:id
// @Summary Update a comment
// @Description Update a comment; only the author may do this
// @Tags comments
// @Accept json
// @Produce json
// @Param postId path int true "Post ID"
// @Param id path int true "Comment ID"
// @Param request body object{text=string} true "Fields to update"
// @Success 200 {object} models.Comment
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{postId}/comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := requesterID(c)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(ctx, service.UpdateCommentInput{
		RequesterID: userID,
		PostID:      postID,
		CommentID:   commentID,
		Text:        req.Text,
	})
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /v1/posts/:postId/comments/:id
// @Summary Delete a comment
// @Description Delete a comment; only the author may do this
// @Tags comments
// @Param postId path int true "Post ID"
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{postId}/comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := requesterID(c)
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(ctx, service.DeleteCommentInput{
		RequesterID: userID,
		PostID:      postID,
		CommentID:   commentID,
	}); err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
