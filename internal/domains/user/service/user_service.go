package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{repo: repo, jwtManager: jwtManager}
}

func (s *userService) Create(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, user.ErrBlankEmail
	}

	userType := user.TypeUser
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, user.ErrInvalidType
		}
		userType = *req.Type
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.ErrDuplicateEmail
	}

	u := &user.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Type:      userType,
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashStr := string(hash)
		u.PasswordHash = &hashStr
	}

	return s.repo.Create(ctx, u)
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if u.PasswordHash == nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtManager.GenerateToken(u.ID.String(), u.Email, string(u.Type))
	if err != nil {
		return nil, err
	}

	return &user.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        *u.ToResponse(),
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if id == uuid.Nil {
		return nil, user.ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.repo.GetByEmail(ctx, strings.TrimSpace(email))
}

func (s *userService) GetAll(ctx context.Context) ([]user.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *userService) GetWithActiveBorrows(ctx context.Context) ([]user.User, error) {
	return s.repo.GetWithActiveBorrows(ctx)
}

func (s *userService) Update(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current

	if req.FirstName != nil {
		updated.FirstName = strings.TrimSpace(*req.FirstName)
	}

	if req.LastName != nil {
		updated.LastName = strings.TrimSpace(*req.LastName)
	}

	if req.Email != nil {
		if email := strings.TrimSpace(*req.Email); email != "" {
			// Uniqueness is re-checked only when the email actually changes.
			if email != current.Email {
				exists, err := s.repo.ExistsByEmail(ctx, email)
				if err != nil {
					return nil, err
				}
				if exists {
					return nil, user.ErrDuplicateEmail
				}
			}
			updated.Email = email
		}
	}

	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, user.ErrInvalidType
		}
		updated.Type = *req.Type
	}

	return s.repo.Update(ctx, &updated)
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return user.ErrUserNotFound
	}

	return s.repo.Delete(ctx, id)
}

func (s *userService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

func (s *userService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}

func (s *userService) CountActiveBorrows(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountActiveBorrows(ctx, userID)
}
