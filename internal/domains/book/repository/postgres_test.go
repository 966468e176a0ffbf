package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"library-backend/internal/domains/book"
)

func TestBuildSearchQueryMatchModes(t *testing.T) {
	query, args := buildSearchQuery(book.BookFilter{
		Title:           "possessed",
		ISBN:            "978-0-06-105488-1",
		AuthorFirstName: "ursu",
		AuthorLastName:  "le guin",
		LibraryName:     "Central",
	})

	assert.Contains(t, query, "b.title ILIKE '%' || $1 || '%'")
	assert.Contains(t, query, "b.isbn = $2")
	assert.Contains(t, query, "a.first_name ILIKE '%' || $3 || '%'")
	assert.Contains(t, query, "a.last_name ILIKE $4")
	assert.NotContains(t, query, "a.last_name ILIKE '%'")
	assert.Contains(t, query, "l.name = $5")
	assert.Equal(t, []interface{}{"possessed", "978-0-06-105488-1", "ursu", "le guin", "Central"}, args)
}

func TestBuildSearchQueryJoinsOnlyWhenNeeded(t *testing.T) {
	query, args := buildSearchQuery(book.BookFilter{Title: "dispossessed"})

	assert.NotContains(t, query, "JOIN book_authors")
	assert.NotContains(t, query, "JOIN libraries")
	assert.Contains(t, query, "WHERE b.title ILIKE '%' || $1 || '%'")
	assert.Len(t, args, 1)
}

func TestBuildSearchQueryEmptyFilterListsEverything(t *testing.T) {
	query, args := buildSearchQuery(book.BookFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "JOIN")
	assert.Empty(t, args)
}
