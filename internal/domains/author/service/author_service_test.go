package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/author"
)

// mockRepository implements author.Repository with overridable func fields.
type mockRepository struct {
	createFn   func(ctx context.Context, a *author.Author) (*author.Author, error)
	getByIDFn  func(ctx context.Context, id uuid.UUID) (*author.Author, error)
	updateFn   func(ctx context.Context, a *author.Author) (*author.Author, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) error
	existsByID func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	return m.createFn(ctx, a)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	return nil, nil
}

func (m *mockRepository) GetByName(ctx context.Context, firstName, lastName string) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}

func (m *mockRepository) GetByBirthYearRange(ctx context.Context, startYear, endYear int) ([]author.Author, error) {
	return nil, nil
}

func (m *mockRepository) GetWithoutBooks(ctx context.Context) ([]author.Author, error) {
	return nil, nil
}

func (m *mockRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	return m.updateFn(ctx, a)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existsByID(ctx, id)
}

func TestCreateRejectsBlankNames(t *testing.T) {
	svc := NewAuthorService(&mockRepository{})

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{FirstName: "   ", LastName: "Lem"})
	assert.ErrorIs(t, err, author.ErrBlankFirstName)

	_, err = svc.Create(context.Background(), &author.CreateAuthorRequest{FirstName: "Stanislaw", LastName: ""})
	assert.ErrorIs(t, err, author.ErrBlankLastName)
}

func TestCreateTrimsAndPersists(t *testing.T) {
	var saved *author.Author
	repo := &mockRepository{
		createFn: func(ctx context.Context, a *author.Author) (*author.Author, error) {
			saved = a
			created := *a
			created.ID = uuid.New()
			return &created, nil
		},
	}
	svc := NewAuthorService(repo)

	created, err := svc.Create(context.Background(), &author.CreateAuthorRequest{
		FirstName: "  Stanislaw ",
		LastName:  " Lem ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Stanislaw", saved.FirstName)
	assert.Equal(t, "Lem", saved.LastName)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestUpdateAppliesPatchSemantics(t *testing.T) {
	id := uuid.New()
	year := 1921
	existing := &author.Author{ID: id, FirstName: "Stanislaw", LastName: "Lem", BirthYear: &year}

	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*author.Author, error) {
			require.Equal(t, id, got)
			return existing, nil
		},
		updateFn: func(ctx context.Context, a *author.Author) (*author.Author, error) {
			return a, nil
		},
	}
	svc := NewAuthorService(repo)

	newLast := "Lem-Kowalski"
	blank := "   "
	updated, err := svc.Update(context.Background(), id, &author.UpdateAuthorRequest{
		FirstName: &blank, // blank patch value leaves the field unchanged
		LastName:  &newLast,
	})
	require.NoError(t, err)
	assert.Equal(t, "Stanislaw", updated.FirstName)
	assert.Equal(t, "Lem-Kowalski", updated.LastName)
	assert.Equal(t, &year, updated.BirthYear)
}

func TestUpdateMissingAuthor(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*author.Author, error) {
			return nil, author.ErrAuthorNotFound
		},
	}
	svc := NewAuthorService(repo)

	_, err := svc.Update(context.Background(), uuid.New(), &author.UpdateAuthorRequest{})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestDeleteChecksExistenceFirst(t *testing.T) {
	deleted := false
	repo := &mockRepository{
		existsByID: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := NewAuthorService(repo)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	assert.False(t, deleted, "delete must not touch the store when the id is unknown")
}
