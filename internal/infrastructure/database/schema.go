package database

import (
	"context"
	"fmt"
)

// schema is the full DDL, applied idempotently at startup.
//
// The unique indexes are load-bearing: service-level uniqueness checks are
// read-then-write and can race under concurrent requests, so the store is
// the authority for title/isbn/name/email uniqueness and for the
// one-active-borrow-per-pair rule (partial unique index on borrows).
const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;

CREATE TABLE IF NOT EXISTS libraries (
    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name        TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT libraries_name_key UNIQUE (name)
);

CREATE TABLE IF NOT EXISTS authors (
    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    first_name  TEXT NOT NULL,
    last_name   TEXT NOT NULL,
    birth_year  INT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    first_name    TEXT NOT NULL DEFAULT '',
    last_name     TEXT NOT NULL DEFAULT '',
    email         TEXT NOT NULL,
    type          TEXT NOT NULL DEFAULT 'USER',
    password_hash TEXT,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT users_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS books (
    id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    title       TEXT NOT NULL,
    isbn        TEXT,
    library_id  UUID REFERENCES libraries(id) ON DELETE SET NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT books_title_key UNIQUE (title),
    CONSTRAINT books_isbn_key UNIQUE (isbn)
);

CREATE TABLE IF NOT EXISTS book_authors (
    book_id    UUID NOT NULL REFERENCES books(id) ON DELETE CASCADE,
    author_id  UUID NOT NULL REFERENCES authors(id) ON DELETE RESTRICT,
    PRIMARY KEY (book_id, author_id)
);

CREATE TABLE IF NOT EXISTS borrows (
    id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id      UUID NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
    book_id      UUID NOT NULL REFERENCES books(id) ON DELETE RESTRICT,
    borrow_date  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    due_date     TIMESTAMPTZ NOT NULL,
    return_date  TIMESTAMPTZ,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS borrows_active_pair_key
    ON borrows (user_id, book_id)
    WHERE return_date IS NULL;

CREATE INDEX IF NOT EXISTS borrows_borrow_date_idx ON borrows (borrow_date);
CREATE INDEX IF NOT EXISTS books_library_id_idx ON books (library_id);
`

// EnsureSchema applies the DDL. Every statement is IF NOT EXISTS so startup
// on an existing database is a no-op.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
