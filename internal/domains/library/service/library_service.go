package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/library"
)

type libraryService struct {
	repo library.Repository
}

func NewLibraryService(repo library.Repository) library.Service {
	return &libraryService{repo: repo}
}

func (s *libraryService) Create(ctx context.Context, req *library.CreateLibraryRequest) (*library.Library, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, library.ErrBlankName
	}

	// Advisory pre-check; the unique constraint is the authority and the
	// repository maps its violation to ErrDuplicateName.
	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, library.ErrDuplicateName
	}

	return s.repo.Create(ctx, &library.Library{Name: name})
}

func (s *libraryService) GetByID(ctx context.Context, id uuid.UUID) (*library.Library, error) {
	if id == uuid.Nil {
		return nil, library.ErrLibraryNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *libraryService) GetByName(ctx context.Context, name string) (*library.Library, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *libraryService) GetAll(ctx context.Context) ([]library.Library, error) {
	return s.repo.GetAll(ctx)
}

func (s *libraryService) Update(ctx context.Context, id uuid.UUID, req *library.UpdateLibraryRequest) (*library.Library, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); name != "" {
			// Renaming to the current name is a no-op; a collision with a
			// different library is rejected.
			if name != current.Name {
				exists, err := s.repo.ExistsByName(ctx, name)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, library.ErrDuplicateName
				}
			}
			updated.Name = name
		}
	}

	return s.repo.Update(ctx, &updated)
}

func (s *libraryService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return library.ErrLibraryNotFound
	}

	return s.repo.Delete(ctx, id)
}

func (s *libraryService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *libraryService) ExistsByName(ctx context.Context, name string) (bool, error) {
	return s.repo.ExistsByName(ctx, name)
}
