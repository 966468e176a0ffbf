package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/library"
)

type bookService struct {
	repo       book.Repository
	authorSvc  author.Service
	librarySvc library.Service
}

func NewBookService(repo book.Repository, authorSvc author.Service, librarySvc library.Service) book.Service {
	return &bookService{repo: repo, authorSvc: authorSvc, librarySvc: librarySvc}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, book.ErrBlankTitle
	}

	isbn := normalizeISBN(req.ISBN)
	if isbn != nil {
		exists, err := s.repo.ExistsByISBN(ctx, *isbn)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, book.ErrDuplicateISBN
		}
	}

	exists, err := s.repo.ExistsByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, book.ErrDuplicateTitle
	}

	authorIDs, err := s.resolveAuthors(ctx, req.Authors)
	if err != nil {
		return nil, err
	}

	var libraryID *uuid.UUID
	if req.Library != nil && req.Library.ID != nil {
		if _, err := s.librarySvc.GetByID(ctx, *req.Library.ID); err != nil {
			return nil, err
		}
		libraryID = req.Library.ID
	}

	return s.repo.Create(ctx, &book.Book{
		Title:     title,
		ISBN:      isbn,
		LibraryID: libraryID,
	}, authorIDs)
}

// resolveAuthors turns author refs into ids: refs carrying an id must name
// an existing author, refs without one are created first.
func (s *bookService) resolveAuthors(ctx context.Context, refs []book.BookAuthorRef) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(refs))
	seen := make(map[uuid.UUID]struct{}, len(refs))

	for _, ref := range refs {
		var id uuid.UUID

		if ref.ID != nil {
			exists, err := s.authorSvc.ExistsByID(ctx, *ref.ID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, author.ErrAuthorNotFound
			}
			id = *ref.ID
		} else {
			created, err := s.authorSvc.Create(ctx, &author.CreateAuthorRequest{
				FirstName: ref.FirstName,
				LastName:  ref.LastName,
				BirthYear: ref.BirthYear,
			})
			if err != nil {
				return nil, err
			}
			id = created.ID
		}

		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	if id == uuid.Nil {
		return nil, book.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return s.repo.GetByISBN(ctx, strings.TrimSpace(isbn))
}

func (s *bookService) GetByTitle(ctx context.Context, title string) (*book.Book, error) {
	return s.repo.GetByTitle(ctx, strings.TrimSpace(title))
}

func (s *bookService) GetAll(ctx context.Context) ([]book.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) GetByAuthorID(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	return s.repo.GetByAuthorID(ctx, authorID)
}

func (s *bookService) GetByAuthorName(ctx context.Context, firstName, lastName string) ([]book.Book, error) {
	return s.repo.GetByAuthorName(ctx, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
}

func (s *bookService) GetByLibraryID(ctx context.Context, libraryID uuid.UUID) ([]book.Book, error) {
	return s.repo.GetByLibraryID(ctx, libraryID)
}

func (s *bookService) Search(ctx context.Context, filter book.BookFilter) ([]book.Book, error) {
	if filter.IsEmpty() {
		return s.repo.GetAll(ctx)
	}
	return s.repo.Search(ctx, filter)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.Book, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, book.ErrBlankTitle
		}
		if title != current.Title {
			exists, err := s.repo.ExistsByTitle(ctx, title)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, book.ErrDuplicateTitle
			}
		}
		updated.Title = title
	}

	// A blank patch isbn leaves the stored value unchanged, matching the
	// blank-name handling elsewhere.
	if isbn := normalizeISBN(req.ISBN); isbn != nil {
		if current.ISBN == nil || *isbn != *current.ISBN {
			exists, err := s.repo.ExistsByISBN(ctx, *isbn)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, book.ErrDuplicateISBN
			}
		}
		updated.ISBN = isbn
	}

	if req.Library != nil {
		if req.Library.ID != nil {
			if _, err := s.librarySvc.GetByID(ctx, *req.Library.ID); err != nil {
				return nil, err
			}
		}
		updated.LibraryID = req.Library.ID
	}

	// nil means keep the existing author links; an empty non-nil slice
	// clears them.
	var authorIDs []uuid.UUID
	if req.Authors != nil {
		authorIDs, err = s.resolveAuthors(ctx, *req.Authors)
		if err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, &updated, authorIDs)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return book.ErrBookNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *bookService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func normalizeISBN(isbn *string) *string {
	if isbn == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*isbn)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
