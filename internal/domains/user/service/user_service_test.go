package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

type mockRepository struct {
	createFn        func(ctx context.Context, u *user.User) (*user.User, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*user.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*user.User, error)
	updateFn        func(ctx context.Context, u *user.User) (*user.User, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	existsByIDFn    func(ctx context.Context, id uuid.UUID) (bool, error)
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
}

func (m *mockRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	return m.createFn(ctx, u)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockRepository) GetAll(ctx context.Context) ([]user.User, error) { return nil, nil }

func (m *mockRepository) GetWithActiveBorrows(ctx context.Context) ([]user.User, error) {
	return nil, nil
}

func (m *mockRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	return m.updateFn(ctx, u)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existsByIDFn(ctx, id)
}

func (m *mockRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmailFn(ctx, email)
}

func (m *mockRepository) CountActiveBorrows(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func newTestService(repo *mockRepository) user.Service {
	return NewUserService(repo, jwt.NewManager("test-secret", time.Hour))
}

func TestCreateDefaultsTypeToUser(t *testing.T) {
	var saved *user.User
	repo := &mockRepository{
		existsByEmailFn: func(ctx context.Context, email string) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, u *user.User) (*user.User, error) {
			saved = u
			created := *u
			created.ID = uuid.New()
			return &created, nil
		},
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &user.CreateUserRequest{Email: "anna@example.com"})
	require.NoError(t, err)
	assert.Equal(t, user.TypeUser, saved.Type)
	assert.Nil(t, saved.PasswordHash)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := &mockRepository{
		existsByEmailFn: func(ctx context.Context, email string) (bool, error) { return true, nil },
	}
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &user.CreateUserRequest{Email: "anna@example.com"})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestCreateRejectsBlankEmail(t *testing.T) {
	svc := newTestService(&mockRepository{})

	_, err := svc.Create(context.Background(), &user.CreateUserRequest{Email: "   "})
	assert.ErrorIs(t, err, user.ErrBlankEmail)
}

func TestUpdateSkipsUniquenessCheckWhenEmailUnchanged(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		getByIDFn: func(ctx context.Context, got uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Email: "anna@example.com", Type: user.TypeUser}, nil
		},
		existsByEmailFn: func(ctx context.Context, email string) (bool, error) {
			t.Fatal("uniqueness check must be skipped when the email is unchanged")
			return true, nil
		},
		updateFn: func(ctx context.Context, u *user.User) (*user.User, error) {
			return u, nil
		},
	}
	svc := newTestService(repo)

	email := "anna@example.com"
	first := "Anna"
	updated, err := svc.Update(context.Background(), id, &user.UpdateUserRequest{Email: &email, FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.FirstName)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	stored := &user.User{
		ID:           uuid.New(),
		Email:        "anna@example.com",
		Type:         user.TypeAdmin,
		PasswordHash: &hashStr,
	}

	repo := &mockRepository{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, user.ErrUserNotFound
		},
	}
	svc := newTestService(repo)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &user.LoginRequest{
			Email:    "anna@example.com",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, stored.ID, resp.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &user.LoginRequest{
			Email:    "anna@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &user.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}
