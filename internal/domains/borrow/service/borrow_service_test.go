package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/borrow"
	"library-backend/internal/domains/user"
)

// memoryRepository is an in-memory borrow.Repository mirroring the partial
// unique index on active user/book pairs.
type memoryRepository struct {
	borrows map[uuid.UUID]*borrow.Borrow
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{borrows: make(map[uuid.UUID]*borrow.Borrow)}
}

func (m *memoryRepository) Create(ctx context.Context, b *borrow.Borrow) (*borrow.Borrow, error) {
	for _, existing := range m.borrows {
		if existing.UserID == b.UserID && existing.BookID == b.BookID && existing.ReturnDate == nil {
			return nil, borrow.ErrAlreadyBorrowed
		}
	}
	stored := *b
	stored.ID = uuid.New()
	m.borrows[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (m *memoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*borrow.Borrow, error) {
	b, ok := m.borrows[id]
	if !ok {
		return nil, borrow.ErrBorrowNotFound
	}
	copied := *b
	return &copied, nil
}

func (m *memoryRepository) GetAll(ctx context.Context) ([]borrow.Borrow, error) {
	out := []borrow.Borrow{}
	for _, b := range m.borrows {
		out = append(out, *b)
	}
	return out, nil
}

func (m *memoryRepository) GetActive(ctx context.Context) ([]borrow.Borrow, error) {
	out := []borrow.Borrow{}
	for _, b := range m.borrows {
		if b.ReturnDate == nil {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryRepository) GetOverdue(ctx context.Context, asOf time.Time) ([]borrow.Borrow, error) {
	out := []borrow.Borrow{}
	for _, b := range m.borrows {
		if b.ReturnDate == nil && b.DueDate.Before(asOf) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]borrow.Borrow, error) {
	out := []borrow.Borrow{}
	for _, b := range m.borrows {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryRepository) GetByBookID(ctx context.Context, bookID uuid.UUID) ([]borrow.Borrow, error) {
	out := []borrow.Borrow{}
	for _, b := range m.borrows {
		if b.BookID == bookID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]borrow.Borrow, error) {
	out := []borrow.Borrow{}
	for _, b := range m.borrows {
		if !b.BorrowDate.Before(from) && !b.BorrowDate.After(to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryRepository) FindActiveByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*borrow.Borrow, error) {
	for _, b := range m.borrows {
		if b.UserID == userID && b.BookID == bookID && b.ReturnDate == nil {
			copied := *b
			return &copied, nil
		}
	}
	return nil, borrow.ErrBorrowNotFound
}

func (m *memoryRepository) Update(ctx context.Context, b *borrow.Borrow) (*borrow.Borrow, error) {
	stored, ok := m.borrows[b.ID]
	if !ok {
		return nil, borrow.ErrBorrowNotFound
	}
	stored.DueDate = b.DueDate
	stored.ReturnDate = b.ReturnDate
	copied := *stored
	return &copied, nil
}

func (m *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.borrows[id]; !ok {
		return borrow.ErrBorrowNotFound
	}
	delete(m.borrows, id)
	return nil
}

func (m *memoryRepository) HasActiveByBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	for _, b := range m.borrows {
		if b.BookID == bookID && b.ReturnDate == nil {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) HasActiveByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	for _, b := range m.borrows {
		if b.UserID == userID && b.ReturnDate == nil {
			return true, nil
		}
	}
	return false, nil
}

type stubUserService struct {
	user.Service
}

func (stubUserService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return true, nil
}

type stubBookService struct {
	book.Service
}

func (stubBookService) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return true, nil
}

func newTestService(repo borrow.Repository, clock *time.Time) *borrowService {
	svc := NewBorrowService(repo, stubUserService{}, stubBookService{}, decimal.RequireFromString("0.50")).(*borrowService)
	svc.now = func() time.Time { return *clock }
	return svc
}

func TestBorrowLifecycle(t *testing.T) {
	repo := newMemoryRepository()
	clock := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &clock)

	userID, bookID := uuid.New(), uuid.New()
	due := clock.AddDate(0, 0, 14)

	first, err := svc.Create(context.Background(), &borrow.CreateBorrowRequest{
		UserID: userID, BookID: bookID, DueDate: due,
	})
	require.NoError(t, err)
	assert.True(t, first.IsActive())

	_, err = svc.Create(context.Background(), &borrow.CreateBorrowRequest{
		UserID: userID, BookID: bookID, DueDate: due,
	})
	assert.ErrorIs(t, err, borrow.ErrAlreadyBorrowed)

	clock = clock.AddDate(0, 0, 7)
	returned, err := svc.Return(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, returned.IsActive())
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, clock, *returned.ReturnDate)

	// After the return the same pair may borrow again.
	_, err = svc.Create(context.Background(), &borrow.CreateBorrowRequest{
		UserID: userID, BookID: bookID, DueDate: clock.AddDate(0, 0, 14),
	})
	require.NoError(t, err)
}

func TestReturnTwiceFails(t *testing.T) {
	repo := newMemoryRepository()
	clock := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &clock)

	created, err := svc.Create(context.Background(), &borrow.CreateBorrowRequest{
		UserID: uuid.New(), BookID: uuid.New(), DueDate: clock.AddDate(0, 0, 14),
	})
	require.NoError(t, err)

	_, err = svc.Return(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = svc.Return(context.Background(), created.ID)
	assert.ErrorIs(t, err, borrow.ErrAlreadyReturned)
}

func TestCreateRejectsPastDueDate(t *testing.T) {
	repo := newMemoryRepository()
	clock := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &clock)

	_, err := svc.Create(context.Background(), &borrow.CreateBorrowRequest{
		UserID: uuid.New(), BookID: uuid.New(), DueDate: clock.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, borrow.ErrInvalidDueDate)
}

func TestOverdueFlipsWithTimeWithoutWrites(t *testing.T) {
	repo := newMemoryRepository()
	clock := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &clock)

	created, err := svc.Create(context.Background(), &borrow.CreateBorrowRequest{
		UserID: uuid.New(), BookID: uuid.New(), DueDate: clock.AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	overdue, err := svc.GetOverdue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overdue)
	assert.False(t, svc.ToResponse(created).IsOverdue)

	clock = clock.AddDate(0, 0, 10)

	overdue, err = svc.GetOverdue(context.Background())
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, created.ID, overdue[0].ID)

	resp := svc.ToResponse(created)
	assert.True(t, resp.IsOverdue)
	assert.Equal(t, "1.50", resp.Fine) // 3 days late at 0.50/day
}

func TestUpdateChangesDueDateOnly(t *testing.T) {
	repo := newMemoryRepository()
	clock := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &clock)

	created, err := svc.Create(context.Background(), &borrow.CreateBorrowRequest{
		UserID: uuid.New(), BookID: uuid.New(), DueDate: clock.AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	newDue := clock.AddDate(0, 0, 21)
	updated, err := svc.Update(context.Background(), created.ID, &borrow.UpdateBorrowRequest{DueDate: newDue})
	require.NoError(t, err)
	assert.Equal(t, newDue, updated.DueDate)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.BookID, updated.BookID)
	assert.Equal(t, created.BorrowDate, updated.BorrowDate)
	assert.Nil(t, updated.ReturnDate)
}

func TestUpdateRejectsDueBeforeBorrowDate(t *testing.T) {
	repo := newMemoryRepository()
	clock := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &clock)

	created, err := svc.Create(context.Background(), &borrow.CreateBorrowRequest{
		UserID: uuid.New(), BookID: uuid.New(), DueDate: clock.AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &borrow.UpdateBorrowRequest{
		DueDate: created.BorrowDate.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, borrow.ErrInvalidDueDate)
}

func TestGetByDateRangeValidatesBounds(t *testing.T) {
	repo := newMemoryRepository()
	clock := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &clock)

	_, err := svc.GetByDateRange(context.Background(), clock, clock.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, borrow.ErrInvalidDateRange)
}
