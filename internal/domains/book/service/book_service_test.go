package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/library"
)

type mockRepository struct {
	createFn        func(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*book.Book, error)
	updateFn        func(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	existsByIDFn    func(ctx context.Context, id uuid.UUID) (bool, error)
	existsByTitleFn func(ctx context.Context, title string) (bool, error)
	existsByISBNFn  func(ctx context.Context, isbn string) (bool, error)
}

func (m *mockRepository) Create(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
	return m.createFn(ctx, b, authorIDs)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) GetByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (m *mockRepository) GetByTitle(ctx context.Context, title string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (m *mockRepository) GetAll(ctx context.Context) ([]book.Book, error) { return nil, nil }

func (m *mockRepository) GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	return nil, nil
}

func (m *mockRepository) GetByAuthorName(ctx context.Context, firstName, lastName string) ([]book.Book, error) {
	return nil, nil
}

func (m *mockRepository) GetByLibraryID(ctx context.Context, libraryID uuid.UUID) ([]book.Book, error) {
	return nil, nil
}

func (m *mockRepository) Search(ctx context.Context, filter book.BookFilter) ([]book.Book, error) {
	return nil, nil
}

func (m *mockRepository) Update(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
	return m.updateFn(ctx, b, authorIDs)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existsByIDFn(ctx, id)
}

func (m *mockRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	if m.existsByTitleFn == nil {
		return false, nil
	}
	return m.existsByTitleFn(ctx, title)
}

func (m *mockRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	if m.existsByISBNFn == nil {
		return false, nil
	}
	return m.existsByISBNFn(ctx, isbn)
}

type mockAuthorService struct {
	author.Service

	createFn     func(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error)
	existsByIDFn func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockAuthorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	return m.createFn(ctx, req)
}

func (m *mockAuthorService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existsByIDFn(ctx, id)
}

type mockLibraryService struct {
	library.Service

	getByIDFn func(ctx context.Context, id uuid.UUID) (*library.Library, error)
}

func (m *mockLibraryService) GetByID(ctx context.Context, id uuid.UUID) (*library.Library, error) {
	return m.getByIDFn(ctx, id)
}

func TestCreateRejectsBlankTitle(t *testing.T) {
	svc := NewBookService(&mockRepository{}, &mockAuthorService{}, &mockLibraryService{})

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:   "   ",
		Authors: []book.BookAuthorRef{{FirstName: "Ursula", LastName: "Le Guin"}},
	})
	assert.ErrorIs(t, err, book.ErrBlankTitle)
}

func TestCreateAllowsNoAuthors(t *testing.T) {
	repo := &mockRepository{
		createFn: func(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
			assert.Empty(t, authorIDs)
			created := *b
			created.ID = uuid.New()
			return &created, nil
		},
	}
	svc := NewBookService(repo, &mockAuthorService{}, &mockLibraryService{})

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{Title: "The Dispossessed"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateNewAuthorCreatedExactlyOnce(t *testing.T) {
	createdID := uuid.New()
	authorCreates := 0

	authors := &mockAuthorService{
		createFn: func(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
			authorCreates++
			return &author.Author{ID: createdID, FirstName: req.FirstName, LastName: req.LastName}, nil
		},
	}

	var linkedIDs []uuid.UUID
	repo := &mockRepository{
		createFn: func(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
			linkedIDs = authorIDs
			created := *b
			created.ID = uuid.New()
			return &created, nil
		},
	}

	svc := NewBookService(repo, authors, &mockLibraryService{})

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:   "The Dispossessed",
		Authors: []book.BookAuthorRef{{FirstName: "Ursula", LastName: "Le Guin"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, authorCreates)
	assert.Equal(t, []uuid.UUID{createdID}, linkedIDs)
}

func TestCreateUnknownAuthorIDFails(t *testing.T) {
	unknown := uuid.New()
	authors := &mockAuthorService{
		existsByIDFn: func(ctx context.Context, id uuid.UUID) (bool, error) { return false, nil },
	}
	repo := &mockRepository{
		createFn: func(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
			t.Fatal("book must not be created when an author reference is unknown")
			return nil, nil
		},
	}

	svc := NewBookService(repo, authors, &mockLibraryService{})

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:   "The Dispossessed",
		Authors: []book.BookAuthorRef{{ID: &unknown}},
	})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestCreateDuplicateISBNCheckedBeforeTitle(t *testing.T) {
	repo := &mockRepository{
		existsByISBNFn: func(ctx context.Context, isbn string) (bool, error) { return true, nil },
		existsByTitleFn: func(ctx context.Context, title string) (bool, error) {
			t.Fatal("title uniqueness must not be checked once the isbn collides")
			return false, nil
		},
	}

	svc := NewBookService(repo, &mockAuthorService{}, &mockLibraryService{})

	isbn := "978-0-06-105488-1"
	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:   "The Dispossessed",
		ISBN:    &isbn,
		Authors: []book.BookAuthorRef{{FirstName: "Ursula", LastName: "Le Guin"}},
	})
	assert.ErrorIs(t, err, book.ErrDuplicateISBN)
}

func TestCreateUnknownLibraryFails(t *testing.T) {
	libID := uuid.New()
	authorID := uuid.New()

	authors := &mockAuthorService{
		existsByIDFn: func(ctx context.Context, id uuid.UUID) (bool, error) { return true, nil },
	}
	libraries := &mockLibraryService{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*library.Library, error) {
			return nil, library.ErrLibraryNotFound
		},
	}
	repo := &mockRepository{
		createFn: func(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
			t.Fatal("book must not be created when the library is unknown")
			return nil, nil
		},
	}

	svc := NewBookService(repo, authors, libraries)

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:   "The Dispossessed",
		Authors: []book.BookAuthorRef{{ID: &authorID}},
		Library: &book.LibraryRef{ID: &libID},
	})
	assert.ErrorIs(t, err, library.ErrLibraryNotFound)
}

func TestUpdateDetachesLibrary(t *testing.T) {
	id := uuid.New()
	libID := uuid.New()

	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*book.Book, error) {
			return &book.Book{ID: id, Title: "The Dispossessed", LibraryID: &libID}, nil
		},
		updateFn: func(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
			assert.Nil(t, b.LibraryID)
			assert.Nil(t, authorIDs)
			return b, nil
		},
	}

	svc := NewBookService(repo, &mockAuthorService{}, &mockLibraryService{})

	updated, err := svc.Update(context.Background(), id, &book.UpdateBookRequest{
		Library: &book.LibraryRef{ID: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.LibraryID)
}

func TestUpdateBlankISBNLeavesStoredValue(t *testing.T) {
	id := uuid.New()
	isbn := "978-0-06-105488-1"

	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*book.Book, error) {
			return &book.Book{ID: id, Title: "The Dispossessed", ISBN: &isbn}, nil
		},
		existsByISBNFn: func(ctx context.Context, got string) (bool, error) {
			t.Fatal("a blank patch isbn must not trigger a uniqueness check")
			return false, nil
		},
		updateFn: func(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
			return b, nil
		},
	}

	svc := NewBookService(repo, &mockAuthorService{}, &mockLibraryService{})

	blank := "   "
	updated, err := svc.Update(context.Background(), id, &book.UpdateBookRequest{ISBN: &blank})
	require.NoError(t, err)
	require.NotNil(t, updated.ISBN)
	assert.Equal(t, isbn, *updated.ISBN)
}

func TestUpdateSkipsTitleCheckWhenUnchanged(t *testing.T) {
	id := uuid.New()

	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*book.Book, error) {
			return &book.Book{ID: id, Title: "The Dispossessed"}, nil
		},
		existsByTitleFn: func(ctx context.Context, title string) (bool, error) {
			t.Fatal("uniqueness check must be skipped when the title is unchanged")
			return true, nil
		},
		updateFn: func(ctx context.Context, b *book.Book, authorIDs []uuid.UUID) (*book.Book, error) {
			return b, nil
		},
	}

	svc := NewBookService(repo, &mockAuthorService{}, &mockLibraryService{})

	title := "The Dispossessed"
	_, err := svc.Update(context.Background(), id, &book.UpdateBookRequest{Title: &title})
	require.NoError(t, err)
}
