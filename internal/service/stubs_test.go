package service

import (
	"context"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Function-backed stubs for the repository interfaces. Each test overrides
// only the calls it cares about.

type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, uint) (*models.Post, error)
	listFn    func(context.Context, *uint, int, int) ([]*models.Post, error)
	countFn   func(context.Context, *uint) (int64, error)
	updateFn  func(context.Context, *models.Post) error
	deleteFn  func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, groupID *uint, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, groupID, limit, offset)
}
func (s *postRepoStub) Count(ctx context.Context, groupID *uint) (int64, error) {
	return s.countFn(ctx, groupID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listFn:    func(_ context.Context, _ *uint, _, _ int) ([]*models.Post, error) { return nil, nil },
		countFn:   func(_ context.Context, _ *uint) (int64, error) { return 0, nil },
		updateFn:  func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn         func(context.Context, *models.Comment) error
	getByIDForPostFn func(context.Context, uint, uint) (*models.Comment, error)
	listByPostFn     func(context.Context, uint) ([]*models.Comment, error)
	updateFn         func(context.Context, *models.Comment) error
	deleteFn         func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByIDForPost(ctx context.Context, postID, id uint) (*models.Comment, error) {
	return s.getByIDForPostFn(ctx, postID, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDForPostFn: func(_ context.Context, postID, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: postID}, nil
		},
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

type groupRepoStub struct {
	listFn    func(context.Context, string) ([]*models.Group, error)
	getByIDFn func(context.Context, uint) (*models.Group, error)
	existsFn  func(context.Context, uint) (bool, error)
}

func (s *groupRepoStub) List(ctx context.Context, search string) ([]*models.Group, error) {
	return s.listFn(ctx, search)
}
func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		listFn:    func(_ context.Context, _ string) ([]*models.Group, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Group, error) { return &models.Group{ID: id}, nil },
		existsFn:  func(_ context.Context, _ uint) (bool, error) { return true, nil },
	}
}

type followRepoStub struct {
	createFn     func(context.Context, *models.Follow) error
	getByIDFn    func(context.Context, uint) (*models.Follow, error)
	listByUserFn func(context.Context, uint, string) ([]*models.Follow, error)
	existsPairFn func(context.Context, uint, uint) (bool, error)
	deleteFn     func(context.Context, uint) error
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) GetByID(ctx context.Context, id uint) (*models.Follow, error) {
	return s.getByIDFn(ctx, id)
}
func (s *followRepoStub) ListByUser(ctx context.Context, userID uint, search string) ([]*models.Follow, error) {
	return s.listByUserFn(ctx, userID, search)
}
func (s *followRepoStub) ExistsPair(ctx context.Context, userID, followingID uint) (bool, error) {
	return s.existsPairFn(ctx, userID, followingID)
}
func (s *followRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:     func(_ context.Context, _ *models.Follow) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Follow, error) { return &models.Follow{ID: id}, nil },
		listByUserFn: func(_ context.Context, _ uint, _ string) ([]*models.Follow, error) { return nil, nil },
		existsPairFn: func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 2, Username: username}, nil
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}
