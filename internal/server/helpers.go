// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const (
	defaultPageLimit   = 10
	maxPaginationLimit = 100
)

// parsePagination extracts limit and offset query parameters with the given default limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{
		Limit:  limit,
		Offset: offset,
	}
}

// Page is the paginated list envelope: the total count plus absolute links
// to the adjacent windows. The links are null at the ends of the sequence.
type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// paginate wraps results in the list envelope. Next is present while the
// window end is before count; previous while the offset is positive. Links
// are rebuilt from the request's full query string with only limit/offset
// overwritten, so active filters (e.g. group) survive in the handed-out
// URLs. The previous link clamps its offset at zero and drops the offset
// parameter entirely when it reaches the start.
func paginate(c *fiber.Ctx, page Pagination, count int64, results any) Page {
	base := c.BaseURL() + c.Path()
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		query = url.Values{}
	}
	query.Set("limit", strconv.Itoa(page.Limit))

	link := func(offset int) *string {
		if offset > 0 {
			query.Set("offset", strconv.Itoa(offset))
		} else {
			query.Del("offset")
		}
		u := base + "?" + query.Encode()
		return &u
	}

	var next, previous *string
	if int64(page.Offset+page.Limit) < count {
		next = link(page.Offset + page.Limit)
	}
	if page.Offset > 0 {
		previous = link(page.Offset - page.Limit)
	}

	return Page{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
// The error message is derived from the parameter name (e.g. "id" -> "Invalid ID",
// "postId" -> "Invalid post ID").
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "postId" -> "post ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// requesterID returns the authenticated user ID placed in locals by AuthRequired.
func requesterID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}
