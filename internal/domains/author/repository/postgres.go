package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
	"library-backend/pkg/cache"
)

// postgresRepository implements author.Repository backed by pgxpool with a
// Redis read-through cache on single-row lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

const authorColumns = "id, first_name, last_name, birth_year, created_at, updated_at"

func scanAuthor(row pgx.Row, a *author.Author) error {
	return row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthYear, &a.CreatedAt, &a.UpdatedAt)
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, birth_year)
        VALUES ($1, $2, $3)
        RETURNING ` + authorColumns

	var created author.Author
	err := scanAuthor(r.pool.QueryRow(ctx, query, a.FirstName, a.LastName, a.BirthYear), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	err := scanAuthor(r.pool.QueryRow(ctx, query, id), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY last_name, first_name`
	return r.queryAuthors(ctx, query)
}

func (r *postgresRepository) GetByName(ctx context.Context, firstName, lastName string) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE first_name = $1 AND last_name = $2`

	var a author.Author
	err := scanAuthor(r.pool.QueryRow(ctx, query, firstName, lastName), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by name: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetByBirthYearRange(ctx context.Context, startYear, endYear int) ([]author.Author, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors
        WHERE birth_year BETWEEN $1 AND $2
        ORDER BY birth_year`
	return r.queryAuthors(ctx, query, startYear, endYear)
}

func (r *postgresRepository) GetWithoutBooks(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors a
        WHERE NOT EXISTS (
            SELECT 1 FROM book_authors ba WHERE ba.author_id = a.id
        )
        ORDER BY a.last_name, a.first_name`
	return r.queryAuthors(ctx, query)
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $1, last_name = $2, birth_year = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING ` + authorColumns

	var updated author.Author
	err := scanAuthor(r.pool.QueryRow(ctx, query, a.FirstName, a.LastName, a.BirthYear, a.ID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+a.ID.String())

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return author.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	_ = r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) queryAuthors(ctx context.Context, query string, args ...interface{}) ([]author.Author, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthYear, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}
