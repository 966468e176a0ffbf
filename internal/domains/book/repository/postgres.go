package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/library"
	"library-backend/pkg/cache"
	"library-backend/pkg/database"
)

// postgresRepository implements book.Repository backed by pgxpool. Writes
// that touch book_authors run inside a transaction; single-row lookups go
// through a Redis read-through cache.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

const bookColumns = "b.id, b.title, b.isbn, b.library_id, b.created_at, b.updated_at"

func scanBook(row pgx.Row, b *book.Book) error {
	return row.Scan(&b.ID, &b.Title, &b.ISBN, &b.LibraryID, &b.CreatedAt, &b.UpdatedAt)
}

func translateUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		switch pgErr.ConstraintName {
		case "books_title_key":
			return book.ErrDuplicateTitle
		case "books_isbn_key":
			return book.ErrDuplicateISBN
		}
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
	created, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		var created book.Book
		if err := scanBook(tx.QueryRow(ctx, `
        INSERT INTO books (title, isbn, library_id)
        VALUES ($1, $2, $3)
        RETURNING id, title, isbn, library_id, created_at, updated_at`,
			b.Title, b.ISBN, b.LibraryID), &created); err != nil {
			if dup := translateUniqueViolation(err); dup != nil {
				return nil, dup
			}
			return nil, fmt.Errorf("failed to create book: %w", err)
		}

		if err := insertAuthorLinks(ctx, tx, created.ID, authorIDs); err != nil {
			return nil, err
		}

		return &created, nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, created.ID)
}

func insertAuthorLinks(ctx context.Context, tx pgx.Tx, bookID uuid.UUID, authorIDs []uuid.UUID) error {
	for _, authorID := range authorIDs {
		_, err := tx.Exec(ctx, `
        INSERT INTO book_authors (book_id, author_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING`, bookID, authorID)
		if err != nil {
			return fmt.Errorf("failed to link author to book: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var b book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	query := `SELECT ` + bookColumns + ` FROM books b WHERE b.id = $1`

	err := scanBook(r.pool.QueryRow(ctx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	if err := r.attachRelations(ctx, &b); err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) GetByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return r.getOne(ctx, `SELECT `+bookColumns+` FROM books b WHERE b.isbn = $1`, isbn)
}

func (r *postgresRepository) GetByTitle(ctx context.Context, title string) (*book.Book, error) {
	return r.getOne(ctx, `SELECT `+bookColumns+` FROM books b WHERE b.title = $1`, title)
}

func (r *postgresRepository) getOne(ctx context.Context, query string, args ...interface{}) (*book.Book, error) {
	var b book.Book
	err := scanBook(r.pool.QueryRow(ctx, query, args...), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if err := r.attachRelations(ctx, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books b ORDER BY b.title`
	return r.queryBooks(ctx, query)
}

func (r *postgresRepository) GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN book_authors ba ON ba.book_id = b.id
        WHERE ba.author_id = $1
        ORDER BY b.title`
	return r.queryBooks(ctx, query, authorID)
}

func (r *postgresRepository) GetByAuthorName(ctx context.Context, firstName, lastName string) ([]book.Book, error) {
	query := `
        SELECT DISTINCT ` + bookColumns + `
        FROM books b
        JOIN book_authors ba ON ba.book_id = b.id
        JOIN authors a ON a.id = ba.author_id
        WHERE a.first_name = $1 AND a.last_name = $2
        ORDER BY b.title`
	return r.queryBooks(ctx, query, firstName, lastName)
}

func (r *postgresRepository) GetByLibraryID(ctx context.Context, libraryID uuid.UUID) ([]book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books b WHERE b.library_id = $1 ORDER BY b.title`
	return r.queryBooks(ctx, query, libraryID)
}

func (r *postgresRepository) Search(ctx context.Context, filter book.BookFilter) ([]book.Book, error) {
	query, args := buildSearchQuery(filter)
	return r.queryBooks(ctx, query, args...)
}

// buildSearchQuery compiles the filter to one conjunctive SQL statement.
// Title and author first name match as case-insensitive substrings, isbn
// and library name exactly, author last name case-insensitively.
func buildSearchQuery(filter book.BookFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
		joins      []string
	)

	addCondition := func(cond string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Title != "" {
		addCondition("b.title ILIKE '%%' || $%d || '%%'", filter.Title)
	}
	if filter.ISBN != "" {
		addCondition("b.isbn = $%d", filter.ISBN)
	}
	if filter.AuthorFirstName != "" || filter.AuthorLastName != "" {
		joins = append(joins,
			"JOIN book_authors ba ON ba.book_id = b.id",
			"JOIN authors a ON a.id = ba.author_id")
		if filter.AuthorFirstName != "" {
			addCondition("a.first_name ILIKE '%%' || $%d || '%%'", filter.AuthorFirstName)
		}
		if filter.AuthorLastName != "" {
			addCondition("a.last_name ILIKE $%d", filter.AuthorLastName)
		}
	}
	if filter.LibraryName != "" {
		joins = append(joins, "JOIN libraries l ON l.id = b.library_id")
		addCondition("l.name = $%d", filter.LibraryName)
	}

	query := `SELECT DISTINCT ` + bookColumns + ` FROM books b`
	if len(joins) > 0 {
		query += " " + strings.Join(joins, " ")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY b.title"

	return query, args
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*book.Book, error) {
		var updated book.Book
		err := scanBook(tx.QueryRow(ctx, `
        UPDATE books
        SET title = $1, isbn = $2, library_id = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING id, title, isbn, library_id, created_at, updated_at`,
			b.Title, b.ISBN, b.LibraryID, b.ID), &updated)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, book.ErrBookNotFound
			}
			if dup := translateUniqueViolation(err); dup != nil {
				return nil, dup
			}
			return nil, fmt.Errorf("failed to update book: %w", err)
		}

		if authorIDs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, b.ID); err != nil {
				return nil, fmt.Errorf("failed to clear author links: %w", err)
			}
			if err := insertAuthorLinks(ctx, tx, b.ID, authorIDs); err != nil {
				return nil, err
			}
		}

		return &updated, nil
	})
	if err != nil {
		return nil, err
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+b.ID.String())

	return r.GetByID(ctx, updated.ID)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return book.ErrBookHasBorrows
		}
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+id.String())

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id)
}

func (r *postgresRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE title = $1)`, title)
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`, isbn)
}

func (r *postgresRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.LibraryID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	for i := range books {
		if err := r.attachRelations(ctx, &books[i]); err != nil {
			return nil, err
		}
	}

	return books, nil
}

// attachRelations loads the book's authors and, when set, its library.
func (r *postgresRepository) attachRelations(ctx context.Context, b *book.Book) error {
	rows, err := r.pool.Query(ctx, `
        SELECT a.id, a.first_name, a.last_name, a.birth_year, a.created_at, a.updated_at
        FROM authors a
        JOIN book_authors ba ON ba.author_id = a.id
        WHERE ba.book_id = $1
        ORDER BY a.last_name, a.first_name`, b.ID)
	if err != nil {
		return fmt.Errorf("failed to query book authors: %w", err)
	}
	defer rows.Close()

	b.Authors = []author.Author{}
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.BirthYear, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan book author: %w", err)
		}
		b.Authors = append(b.Authors, a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating book authors: %w", err)
	}

	if b.LibraryID == nil {
		b.Library = nil
		return nil
	}

	var l library.Library
	err = r.pool.QueryRow(ctx, `
        SELECT id, name, created_at, updated_at
        FROM libraries
        WHERE id = $1`, *b.LibraryID).Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			b.Library = nil
			return nil
		}
		return fmt.Errorf("failed to query book library: %w", err)
	}
	b.Library = &l

	return nil
}
