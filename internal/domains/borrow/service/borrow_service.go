package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/borrow"
	"library-backend/internal/domains/user"
)

type borrowService struct {
	repo          borrow.Repository
	userSvc       user.Service
	bookSvc       book.Service
	dailyFineRate decimal.Decimal

	now func() time.Time
}

func NewBorrowService(repo borrow.Repository, userSvc user.Service, bookSvc book.Service, dailyFineRate decimal.Decimal) borrow.Service {
	return &borrowService{
		repo:          repo,
		userSvc:       userSvc,
		bookSvc:       bookSvc,
		dailyFineRate: dailyFineRate,
		now:           time.Now,
	}
}

func (s *borrowService) Create(ctx context.Context, req *borrow.CreateBorrowRequest) (*borrow.Borrow, error) {
	exists, err := s.userSvc.ExistsByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}

	exists, err = s.bookSvc.ExistsByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrBookNotFound
	}

	borrowDate := s.now()
	if !req.DueDate.After(borrowDate) {
		return nil, borrow.ErrInvalidDueDate
	}

	// Advisory pre-check; the partial unique index settles races.
	_, err = s.repo.FindActiveByUserAndBook(ctx, req.UserID, req.BookID)
	if err == nil {
		return nil, borrow.ErrAlreadyBorrowed
	}
	if !errors.Is(err, borrow.ErrBorrowNotFound) {
		return nil, err
	}

	return s.repo.Create(ctx, &borrow.Borrow{
		UserID:     req.UserID,
		BookID:     req.BookID,
		BorrowDate: borrowDate,
		DueDate:    req.DueDate,
	})
}

func (s *borrowService) GetByID(ctx context.Context, id uuid.UUID) (*borrow.Borrow, error) {
	if id == uuid.Nil {
		return nil, borrow.ErrBorrowNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *borrowService) GetAll(ctx context.Context) ([]borrow.Borrow, error) {
	return s.repo.GetAll(ctx)
}

func (s *borrowService) GetActive(ctx context.Context) ([]borrow.Borrow, error) {
	return s.repo.GetActive(ctx)
}

func (s *borrowService) GetOverdue(ctx context.Context) ([]borrow.Borrow, error) {
	return s.repo.GetOverdue(ctx, s.now())
}

func (s *borrowService) GetByUserID(ctx context.Context, userID uuid.UUID) ([]borrow.Borrow, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *borrowService) GetByBookID(ctx context.Context, bookID uuid.UUID) ([]borrow.Borrow, error) {
	return s.repo.GetByBookID(ctx, bookID)
}

func (s *borrowService) GetByDateRange(ctx context.Context, from, to time.Time) ([]borrow.Borrow, error) {
	if from.After(to) {
		return nil, borrow.ErrInvalidDateRange
	}
	return s.repo.GetByDateRange(ctx, from, to)
}

func (s *borrowService) Return(ctx context.Context, id uuid.UUID) (*borrow.Borrow, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.ReturnDate != nil {
		return nil, borrow.ErrAlreadyReturned
	}

	returnDate := s.now()
	current.ReturnDate = &returnDate

	return s.repo.Update(ctx, current)
}

func (s *borrowService) Update(ctx context.Context, id uuid.UUID, req *borrow.UpdateBorrowRequest) (*borrow.Borrow, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.ReturnDate != nil {
		return nil, borrow.ErrAlreadyReturned
	}

	if !req.DueDate.After(current.BorrowDate) {
		return nil, borrow.ErrInvalidDueDate
	}

	current.DueDate = req.DueDate

	return s.repo.Update(ctx, current)
}

func (s *borrowService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *borrowService) IsBookBorrowed(ctx context.Context, bookID uuid.UUID) (bool, error) {
	return s.repo.HasActiveByBook(ctx, bookID)
}

func (s *borrowService) HasActiveBorrows(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.repo.HasActiveByUser(ctx, userID)
}

func (s *borrowService) ToResponse(b *borrow.Borrow) *borrow.BorrowResponse {
	return borrow.ToResponse(b, s.now(), s.dailyFineRate)
}

func (s *borrowService) ToResponseList(borrows []borrow.Borrow) []borrow.BorrowResponse {
	return borrow.ToResponseList(borrows, s.now(), s.dailyFineRate)
}
