package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/library"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) library.Repository {
	return &postgresRepository{pool: pool}
}

const libraryColumns = "id, name, created_at, updated_at"

func scanLibrary(row pgx.Row, l *library.Library) error {
	return row.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
}

func (r *postgresRepository) Create(ctx context.Context, l *library.Library) (*library.Library, error) {
	query := `INSERT INTO libraries (name) VALUES ($1) RETURNING ` + libraryColumns

	var created library.Library
	err := scanLibrary(r.pool.QueryRow(ctx, query, l.Name), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, library.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create library: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*library.Library, error) {
	var l library.Library
	err := scanLibrary(r.pool.QueryRow(ctx, `SELECT `+libraryColumns+` FROM libraries WHERE id = $1`, id), &l)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, library.ErrLibraryNotFound
		}
		return nil, fmt.Errorf("failed to get library by id: %w", err)
	}
	return &l, nil
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) (*library.Library, error) {
	var l library.Library
	err := scanLibrary(r.pool.QueryRow(ctx, `SELECT `+libraryColumns+` FROM libraries WHERE name = $1`, name), &l)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, library.ErrLibraryNotFound
		}
		return nil, fmt.Errorf("failed to get library by name: %w", err)
	}
	return &l, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]library.Library, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+libraryColumns+` FROM libraries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query libraries: %w", err)
	}
	defer rows.Close()

	libraries := []library.Library{}
	for rows.Next() {
		var l library.Library
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan library: %w", err)
		}
		libraries = append(libraries, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating libraries: %w", err)
	}

	return libraries, nil
}

func (r *postgresRepository) Update(ctx context.Context, l *library.Library) (*library.Library, error) {
	query := `
        UPDATE libraries
        SET name = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING ` + libraryColumns

	var updated library.Library
	err := scanLibrary(r.pool.QueryRow(ctx, query, l.Name, l.ID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, library.ErrLibraryNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, library.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to update library: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM libraries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete library: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return library.ErrLibraryNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM libraries WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check library existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM libraries WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check library name existence: %w", err)
	}
	return exists, nil
}
