package repository

import (
	"context"
	"errors"
	"strings"

	"quill/internal/models"
	"quill/internal/observability"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow edge operations.
type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	GetByID(ctx context.Context, id uint) (*models.Follow, error)
	ListByUser(ctx context.Context, userID uint, search string) ([]*models.Follow, error)
	ExistsPair(ctx context.Context, userID, followingID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	defer observability.TrackQuery("create", "follows")()

	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		// The unique (user_id, following_id) index backs up the service's
		// duplicate check under concurrent creates.
		if isUniqueViolation(err) {
			return models.NewConflictError("Follow already exists for this user pair")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *followRepository) GetByID(ctx context.Context, id uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Following").
		First(&follow, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Follow", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &follow, nil
}

func (r *followRepository) ListByUser(ctx context.Context, userID uint, search string) ([]*models.Follow, error) {
	defer observability.TrackQuery("list", "follows")()

	var follows []*models.Follow
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Following").
		Where("follows.user_id = ?", userID).
		Order("follows.created_at DESC")
	if search != "" {
		q = q.Joins("JOIN users followed ON followed.id = follows.following_id").
			Where("LOWER(followed.username) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if err := q.Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

func (r *followRepository) ExistsPair(ctx context.Context, userID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND following_id = ?", userID, followingID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "follows")()

	if err := r.db.WithContext(ctx).Delete(&models.Follow{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "constraint failed")
}
