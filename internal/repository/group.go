package repository

import (
	"context"
	"errors"
	"strings"

	"quill/internal/cache"
	"quill/internal/models"
	"quill/internal/observability"

	"gorm.io/gorm"
)

// GroupRepository defines the interface for group data operations.
// Groups are read-only through the API; there is no write surface here.
type GroupRepository interface {
	List(ctx context.Context, search string) ([]*models.Group, error)
	GetByID(ctx context.Context, id uint) (*models.Group, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) List(ctx context.Context, search string) ([]*models.Group, error) {
	defer observability.TrackQuery("list", "groups")()

	var groups []*models.Group
	q := r.db.WithContext(ctx).Order("title ASC")
	if search != "" {
		// Case-insensitive substring match on title. LOWER+LIKE works the
		// same on PostgreSQL and the SQLite test store, unlike ILIKE.
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if err := q.Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	err := cache.Aside(ctx, cache.GroupKey(id), &group, cache.GroupTTL, func() error {
		defer observability.TrackQuery("get", "groups")()
		return r.db.WithContext(ctx).First(&group, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Group", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &group, nil
}

func (r *groupRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Group{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
