package database

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createTableRe = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\);`)

func tableColumns(t *testing.T) map[string]string {
	t.Helper()
	matches := createTableRe.FindAllStringSubmatch(schema, -1)
	require.NotEmpty(t, matches)

	tables := make(map[string]string, len(matches))
	for _, m := range matches {
		tables[m[1]] = m[2]
	}
	return tables
}

// The repositories select and update these columns on every entity table;
// the DDL must declare them or every query fails at runtime.
func TestSchemaDeclaresTimestampColumns(t *testing.T) {
	tables := tableColumns(t)

	for _, table := range []string{"libraries", "authors", "users", "books", "borrows"} {
		body, ok := tables[table]
		require.True(t, ok, "table %s missing from schema", table)
		assert.Contains(t, body, "created_at", "table %s", table)
		assert.Contains(t, body, "updated_at", "table %s", table)
	}
}

func TestSchemaDeclaresBorrowColumns(t *testing.T) {
	tables := tableColumns(t)
	body, ok := tables["borrows"]
	require.True(t, ok)

	for _, column := range []string{"id", "user_id", "book_id", "borrow_date", "due_date", "return_date"} {
		assert.Contains(t, body, column)
	}
}

func TestSchemaEnforcesActivePairUniqueness(t *testing.T) {
	assert.Contains(t, schema, "CREATE UNIQUE INDEX IF NOT EXISTS borrows_active_pair_key")
	assert.True(t, strings.Contains(schema, "WHERE return_date IS NULL"))
}
