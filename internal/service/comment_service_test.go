package service

import (
	"context"
	"strings"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingPostRepo() *postRepoStub {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}
	return posts
}

func TestCreateComment(t *testing.T) {
	t.Parallel()

	t.Run("requires an existing post", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), missingPostRepo())

		_, err := svc.CreateComment(context.Background(), CreateCommentInput{
			AuthorID: 1,
			PostID:   404,
			Text:     "hi",
		})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())

		_, err := svc.CreateComment(context.Background(), CreateCommentInput{AuthorID: 1, PostID: 2})
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("rejects oversized text", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), noopPostRepo())

		_, err := svc.CreateComment(context.Background(), CreateCommentInput{
			AuthorID: 1,
			PostID:   2,
			Text:     strings.Repeat("a", maxCommentLen+1),
		})
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("stamps author and post", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.createFn = func(_ context.Context, c *models.Comment) error {
			assert.Equal(t, uint(1), c.AuthorID)
			assert.Equal(t, uint(2), c.PostID)
			c.ID = 10
			return nil
		}
		svc := NewCommentService(comments, noopPostRepo())

		comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
			AuthorID: 1,
			PostID:   2,
			Text:     "hi",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(10), comment.ID)
		assert.Equal(t, uint(2), comment.PostID)
	})
}

func TestListComments(t *testing.T) {
	t.Parallel()

	t.Run("requires an existing post", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), missingPostRepo())

		_, err := svc.ListComments(context.Background(), 404)
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("returns the post's comments", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.listByPostFn = func(_ context.Context, postID uint) ([]*models.Comment, error) {
			return []*models.Comment{{ID: 1, PostID: postID}, {ID: 2, PostID: postID}}, nil
		}
		svc := NewCommentService(comments, noopPostRepo())

		got, err := svc.ListComments(context.Background(), 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})
}

func TestUpdateComment(t *testing.T) {
	t.Parallel()

	t.Run("forbids non-authors", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDForPostFn = func(_ context.Context, postID, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: postID, AuthorID: 1}, nil
		}
		svc := NewCommentService(comments, noopPostRepo())

		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			RequesterID: 2,
			PostID:      3,
			CommentID:   4,
			Text:        "edit",
		})
		assertAppErrorCode(t, err, models.CodeForbidden)
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDForPostFn = func(_ context.Context, postID, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: postID, AuthorID: 2}, nil
		}
		svc := NewCommentService(comments, noopPostRepo())

		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			RequesterID: 2,
			PostID:      3,
			CommentID:   4,
		})
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("author edits text", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		stored := &models.Comment{ID: 4, PostID: 3, AuthorID: 2, Text: "old"}
		comments.getByIDForPostFn = func(_ context.Context, _, _ uint) (*models.Comment, error) {
			snapshot := *stored
			return &snapshot, nil
		}
		comments.updateFn = func(_ context.Context, c *models.Comment) error {
			stored = c
			return nil
		}
		svc := NewCommentService(comments, noopPostRepo())

		_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
			RequesterID: 2,
			PostID:      3,
			CommentID:   4,
			Text:        "new",
		})
		require.NoError(t, err)
		assert.Equal(t, "new", stored.Text)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()

	t.Run("requires an existing post", func(t *testing.T) {
		t.Parallel()
		svc := NewCommentService(noopCommentRepo(), missingPostRepo())

		err := svc.DeleteComment(context.Background(), DeleteCommentInput{RequesterID: 1, PostID: 404, CommentID: 4})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("forbids non-authors", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDForPostFn = func(_ context.Context, postID, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: postID, AuthorID: 1}, nil
		}
		svc := NewCommentService(comments, noopPostRepo())

		err := svc.DeleteComment(context.Background(), DeleteCommentInput{RequesterID: 2, PostID: 3, CommentID: 4})
		assertAppErrorCode(t, err, models.CodeForbidden)
	})

	t.Run("author deletes", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.getByIDForPostFn = func(_ context.Context, postID, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: postID, AuthorID: 2}, nil
		}
		deleted := false
		comments.deleteFn = func(_ context.Context, id uint) error {
			assert.Equal(t, uint(4), id)
			deleted = true
			return nil
		}
		svc := NewCommentService(comments, noopPostRepo())

		err := svc.DeleteComment(context.Background(), DeleteCommentInput{RequesterID: 2, PostID: 3, CommentID: 4})
		require.NoError(t, err)
		assert.True(t, deleted)
	})
}
