package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/library"
)

type mockRepository struct {
	createFn       func(ctx context.Context, l *library.Library) (*library.Library, error)
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*library.Library, error)
	updateFn       func(ctx context.Context, l *library.Library) (*library.Library, error)
	deleteFn       func(ctx context.Context, id uuid.UUID) error
	existsByIDFn   func(ctx context.Context, id uuid.UUID) (bool, error)
	existsByNameFn func(ctx context.Context, name string) (bool, error)
}

func (m *mockRepository) Create(ctx context.Context, l *library.Library) (*library.Library, error) {
	return m.createFn(ctx, l)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*library.Library, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) GetByName(ctx context.Context, name string) (*library.Library, error) {
	return nil, library.ErrLibraryNotFound
}

func (m *mockRepository) GetAll(ctx context.Context) ([]library.Library, error) {
	return nil, nil
}

func (m *mockRepository) Update(ctx context.Context, l *library.Library) (*library.Library, error) {
	return m.updateFn(ctx, l)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existsByIDFn(ctx, id)
}

func (m *mockRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	return m.existsByNameFn(ctx, name)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := NewLibraryService(&mockRepository{})

	_, err := svc.Create(context.Background(), &library.CreateLibraryRequest{Name: "  "})
	assert.ErrorIs(t, err, library.ErrBlankName)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	repo := &mockRepository{
		existsByNameFn: func(ctx context.Context, name string) (bool, error) {
			return name == "Main", nil
		},
	}
	svc := NewLibraryService(repo)

	_, err := svc.Create(context.Background(), &library.CreateLibraryRequest{Name: "Main"})
	assert.ErrorIs(t, err, library.ErrDuplicateName)
}

func TestUpdateToleratesNoOpRename(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*library.Library, error) {
			return &library.Library{ID: id, Name: "Main"}, nil
		},
		existsByNameFn: func(ctx context.Context, name string) (bool, error) {
			// The current name is of course taken; a no-op rename must not
			// consult this at all.
			t.Fatal("uniqueness check must be skipped for a no-op rename")
			return true, nil
		},
		updateFn: func(ctx context.Context, l *library.Library) (*library.Library, error) {
			return l, nil
		},
	}
	svc := NewLibraryService(repo)

	name := "Main"
	updated, err := svc.Update(context.Background(), id, &library.UpdateLibraryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Main", updated.Name)
}

func TestUpdateRejectsCollidingRename(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*library.Library, error) {
			return &library.Library{ID: id, Name: "Main"}, nil
		},
		existsByNameFn: func(ctx context.Context, name string) (bool, error) {
			return name == "Branch", nil
		},
	}
	svc := NewLibraryService(repo)

	name := "Branch"
	_, err := svc.Update(context.Background(), id, &library.UpdateLibraryRequest{Name: &name})
	assert.ErrorIs(t, err, library.ErrDuplicateName)
}

func TestDeleteMissingLibrary(t *testing.T) {
	repo := &mockRepository{
		existsByIDFn: func(ctx context.Context, id uuid.UUID) (bool, error) {
			return false, nil
		},
	}
	svc := NewLibraryService(repo)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, library.ErrLibraryNotFound)
}
