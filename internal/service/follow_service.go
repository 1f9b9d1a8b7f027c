package service

import (
	"context"
	"errors"

	"quill/internal/models"
	"quill/internal/repository"
)

// FollowService owns follow edge rules: edges are always scoped to the
// requester, the (user, following) pair is unique and self-follows are
// rejected.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

type CreateFollowInput struct {
	UserID    uint
	Following string // username of the user to follow
}

type DeleteFollowInput struct {
	UserID   uint
	FollowID uint
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *FollowService) ListFollows(ctx context.Context, userID uint, search string) ([]*models.Follow, error) {
	return s.followRepo.ListByUser(ctx, userID, search)
}

func (s *FollowService) CreateFollow(ctx context.Context, in CreateFollowInput) (*models.Follow, error) {
	if in.Following == "" {
		return nil, models.NewValidationError("Following is required")
	}

	followed, err := s.userRepo.GetByUsername(ctx, in.Following)
	if err != nil {
		// An unknown username is a bad payload, not a missing route target.
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return nil, models.NewValidationError("Following references an unknown user")
		}
		return nil, err
	}

	if followed.ID == in.UserID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	exists, err := s.followRepo.ExistsPair(ctx, in.UserID, followed.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewConflictError("You already follow this user")
	}

	follow := &models.Follow{
		UserID:      in.UserID,
		FollowingID: followed.ID,
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}

	return s.followRepo.GetByID(ctx, follow.ID)
}

// DeleteFollow removes one of the requester's own follow edges. Edges of
// other users are reported as not found, consistent with the scoped
// listing: their existence is never revealed.
func (s *FollowService) DeleteFollow(ctx context.Context, in DeleteFollowInput) error {
	follow, err := s.followRepo.GetByID(ctx, in.FollowID)
	if err != nil {
		return err
	}

	if follow.UserID != in.UserID {
		return models.NewNotFoundError("Follow", in.FollowID)
	}

	return s.followRepo.Delete(ctx, in.FollowID)
}
