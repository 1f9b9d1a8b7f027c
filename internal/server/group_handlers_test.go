package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGroupTestApp(groups *MockGroupRepository) *fiber.App {
	app := fiber.New()
	s := &Server{groupRepo: groups}
	app.Get("/groups/", s.GetGroups)
	app.Get("/groups/:id", s.GetGroup)
	return app
}

func TestGetGroupsHandler(t *testing.T) {
	groups := new(MockGroupRepository)
	groups.On("List", mock.Anything, "go").Return([]*models.Group{
		{ID: 1, Title: "Gophers", Slug: "gophers"},
	}, nil)
	app := newGroupTestApp(groups)

	req := httptest.NewRequest(http.MethodGet, "/groups/?search=go", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []models.Group
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "gophers", got[0].Slug)
}

func TestGetGroupHandler(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		groups := new(MockGroupRepository)
		groups.On("GetByID", mock.Anything, uint(1)).Return(&models.Group{ID: 1, Title: "Gophers"}, nil)
		app := newGroupTestApp(groups)

		req := httptest.NewRequest(http.MethodGet, "/groups/1", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Missing", func(t *testing.T) {
		groups := new(MockGroupRepository)
		groups.On("GetByID", mock.Anything, uint(9)).Return(nil, models.NewNotFoundError("Group", 9))
		app := newGroupTestApp(groups)

		req := httptest.NewRequest(http.MethodGet, "/groups/9", nil)
		resp, _ := app.Test(req)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
