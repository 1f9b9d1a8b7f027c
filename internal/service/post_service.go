// Package service contains the application's domain logic between handlers
// and repositories: payload validation, ownership checks and orchestration.
package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/policy"
	"quill/internal/repository"
)

const maxPostLen = 20000

// PostService owns post mutation rules: author derivation, group
// validation and the author-only mutation policy.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

type CreatePostInput struct {
	AuthorID uint
	Text     string
	Image    string
	GroupID  *uint
}

// UpdatePostInput carries an update payload. Nil field pointers mean the
// field was absent from the request body. Partial marks a PATCH: absent
// fields keep their values. A full update (PUT) requires text and resets
// absent optional fields.
type UpdatePostInput struct {
	RequesterID uint
	PostID      uint
	Partial     bool
	Text        *string
	Image       *string
	GroupID     *uint
}

type DeletePostInput struct {
	RequesterID uint
	PostID      uint
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
	}
}

func (s *PostService) validateGroup(ctx context.Context, groupID *uint) error {
	if groupID == nil {
		return nil
	}
	exists, err := s.groupRepo.Exists(ctx, *groupID)
	if err != nil {
		return err
	}
	if !exists {
		return models.NewValidationError("Group does not exist")
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(in.Text) > maxPostLen {
		return nil, models.NewValidationError("Post too long (max 20000 characters)")
	}
	if err := s.validateGroup(ctx, in.GroupID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     in.Text,
		Image:    in.Image,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload for author/group preloads in the response.
	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost applies the payload to the post. A full update replaces every
// mutable field and requires text; a partial update touches only fields
// present in the payload. The author never changes, whatever the payload
// carried; only the resolved requester is consulted, and only for the
// permission check.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if !policy.CanModify(in.RequesterID, post.AuthorID) {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	if !in.Partial && (in.Text == nil || *in.Text == "") {
		return nil, models.NewValidationError("Text is required")
	}
	if in.Text != nil {
		if *in.Text == "" {
			return nil, models.NewValidationError("Text is required")
		}
		if len(*in.Text) > maxPostLen {
			return nil, models.NewValidationError("Post too long (max 20000 characters)")
		}
		post.Text = *in.Text
	}

	if in.Image != nil {
		post.Image = *in.Image
	} else if !in.Partial {
		post.Image = ""
	}

	if in.GroupID != nil {
		if err := s.validateGroup(ctx, in.GroupID); err != nil {
			return nil, err
		}
	}
	if in.GroupID != nil || !in.Partial {
		post.GroupID = in.GroupID
		post.Group = nil
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if !policy.CanModify(in.RequesterID, post.AuthorID) {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
