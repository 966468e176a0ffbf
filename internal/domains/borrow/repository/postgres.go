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

	"library-backend/internal/domains/borrow"
)

// postgresRepository implements borrow.Repository backed by pgxpool. The
// one-active-loan-per-pair rule is enforced by a partial unique index, so a
// racing insert surfaces as ErrAlreadyBorrowed here.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) borrow.Repository {
	return &postgresRepository{pool: pool}
}

const borrowColumns = "id, user_id, book_id, borrow_date, due_date, return_date, created_at, updated_at"

func scanBorrow(row pgx.Row, b *borrow.Borrow) error {
	return row.Scan(&b.ID, &b.UserID, &b.BookID, &b.BorrowDate, &b.DueDate, &b.ReturnDate, &b.CreatedAt, &b.UpdatedAt)
}

func (r *postgresRepository) Create(ctx context.Context, b *borrow.Borrow) (*borrow.Borrow, error) {
	query := `
        INSERT INTO borrows (user_id, book_id, borrow_date, due_date)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + borrowColumns

	var created borrow.Borrow
	err := scanBorrow(r.pool.QueryRow(ctx, query, b.UserID, b.BookID, b.BorrowDate, b.DueDate), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, borrow.ErrAlreadyBorrowed
		}
		return nil, fmt.Errorf("failed to create borrow: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*borrow.Borrow, error) {
	return r.getOne(ctx, `SELECT `+borrowColumns+` FROM borrows WHERE id = $1`, id)
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]borrow.Borrow, error) {
	return r.queryBorrows(ctx, `SELECT `+borrowColumns+` FROM borrows ORDER BY borrow_date DESC`)
}

func (r *postgresRepository) GetActive(ctx context.Context) ([]borrow.Borrow, error) {
	query := `
        SELECT ` + borrowColumns + `
        FROM borrows
        WHERE return_date IS NULL
        ORDER BY borrow_date DESC`
	return r.queryBorrows(ctx, query)
}

func (r *postgresRepository) GetOverdue(ctx context.Context, asOf time.Time) ([]borrow.Borrow, error) {
	query := `
        SELECT ` + borrowColumns + `
        FROM borrows
        WHERE return_date IS NULL AND due_date < $1
        ORDER BY due_date`
	return r.queryBorrows(ctx, query, asOf)
}

func (r *postgresRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]borrow.Borrow, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrows WHERE user_id = $1 ORDER BY borrow_date DESC`
	return r.queryBorrows(ctx, query, userID)
}

func (r *postgresRepository) GetByBookID(ctx context.Context, bookID uuid.UUID) ([]borrow.Borrow, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrows WHERE book_id = $1 ORDER BY borrow_date DESC`
	return r.queryBorrows(ctx, query, bookID)
}

func (r *postgresRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]borrow.Borrow, error) {
	query := `
        SELECT ` + borrowColumns + `
        FROM borrows
        WHERE borrow_date BETWEEN $1 AND $2
        ORDER BY borrow_date`
	return r.queryBorrows(ctx, query, from, to)
}

func (r *postgresRepository) FindActiveByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*borrow.Borrow, error) {
	query := `
        SELECT ` + borrowColumns + `
        FROM borrows
        WHERE user_id = $1 AND book_id = $2 AND return_date IS NULL`
	return r.getOne(ctx, query, userID, bookID)
}

func (r *postgresRepository) Update(ctx context.Context, b *borrow.Borrow) (*borrow.Borrow, error) {
	query := `
        UPDATE borrows
        SET due_date = $1, return_date = $2, updated_at = NOW()
        WHERE id = $3
        RETURNING ` + borrowColumns

	var updated borrow.Borrow
	err := scanBorrow(r.pool.QueryRow(ctx, query, b.DueDate, b.ReturnDate, b.ID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, borrow.ErrBorrowNotFound
		}
		return nil, fmt.Errorf("failed to update borrow: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM borrows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete borrow: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return borrow.ErrBorrowNotFound
	}

	return nil
}

func (r *postgresRepository) HasActiveByBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM borrows WHERE book_id = $1 AND return_date IS NULL)`,
		bookID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active borrows for book: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) HasActiveByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM borrows WHERE user_id = $1 AND return_date IS NULL)`,
		userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active borrows for user: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) getOne(ctx context.Context, query string, args ...interface{}) (*borrow.Borrow, error) {
	var b borrow.Borrow
	err := scanBorrow(r.pool.QueryRow(ctx, query, args...), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, borrow.ErrBorrowNotFound
		}
		return nil, fmt.Errorf("failed to get borrow: %w", err)
	}
	return &b, nil
}

func (r *postgresRepository) queryBorrows(ctx context.Context, query string, args ...interface{}) ([]borrow.Borrow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query borrows: %w", err)
	}
	defer rows.Close()

	borrows := []borrow.Borrow{}
	for rows.Next() {
		var b borrow.Borrow
		if err := rows.Scan(&b.ID, &b.UserID, &b.BookID, &b.BorrowDate, &b.DueDate, &b.ReturnDate, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan borrow: %w", err)
		}
		borrows = append(borrows, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating borrows: %w", err)
	}

	return borrows, nil
}
