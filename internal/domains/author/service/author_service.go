package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService creates the author service. The repository is injected
// so tests can substitute a mock.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return nil, author.ErrBlankFirstName
	}

	lastName := strings.TrimSpace(req.LastName)
	if lastName == "" {
		return nil, author.ErrBlankLastName
	}

	return s.repo.Create(ctx, &author.Author{
		FirstName: firstName,
		LastName:  lastName,
		BirthYear: req.BirthYear,
	})
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	if id == uuid.Nil {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetByName(ctx context.Context, firstName, lastName string) (*author.Author, error) {
	return s.repo.GetByName(ctx, strings.TrimSpace(firstName), strings.TrimSpace(lastName))
}

func (s *authorService) GetByBirthYearRange(ctx context.Context, startYear, endYear int) ([]author.Author, error) {
	return s.repo.GetByBirthYearRange(ctx, startYear, endYear)
}

func (s *authorService) GetWithoutBooks(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetWithoutBooks(ctx)
}

// Update applies patch semantics: only non-nil fields overwrite, and name
// fields are ignored when blank after trimming.
func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current

	if req.FirstName != nil {
		if name := strings.TrimSpace(*req.FirstName); name != "" {
			updated.FirstName = name
		}
	}

	if req.LastName != nil {
		if name := strings.TrimSpace(*req.LastName); name != "" {
			updated.LastName = name
		}
	}

	if req.BirthYear != nil {
		updated.BirthYear = req.BirthYear
	}

	return s.repo.Update(ctx, &updated)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return author.ErrAuthorNotFound
	}

	return s.repo.Delete(ctx, id)
}

func (s *authorService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}
