package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/borrow"
	"library-backend/internal/domains/user"
	"library-backend/internal/shared/response"
)

type BorrowHandler struct {
	service borrow.Service
}

func NewBorrowHandler(svc borrow.Service) *BorrowHandler {
	return &BorrowHandler{service: svc}
}

// respondError also covers user and book errors surfaced while resolving
// the loan parties.
func (h *BorrowHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
	case errors.Is(err, book.ErrBookNotFound):
		response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
	default:
		response.ErrorResponse(c, borrow.ToHTTPStatus(err), borrow.ToErrorCode(err), err.Error())
	}
}

// Create - POST /v1/borrows
func (h *BorrowHandler) Create(c *gin.Context) {
	var req borrow.CreateBorrowRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, h.service.ToResponse(created))
}

// GetByID - GET /v1/borrows/:id
func (h *BorrowHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, h.service.ToResponse(b))
}

// GetAll - GET /v1/borrows
// Optional query params: user_id, book_id, from + to (RFC 3339).
func (h *BorrowHandler) GetAll(c *gin.Context) {
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			response.BadRequest(c, "invalid user_id")
			return
		}
		borrows, err := h.service.GetByUserID(c.Request.Context(), userID)
		h.respondList(c, borrows, err)
		return
	}

	if bookIDStr := c.Query("book_id"); bookIDStr != "" {
		bookID, err := uuid.Parse(bookIDStr)
		if err != nil {
			response.BadRequest(c, "invalid book_id")
			return
		}
		borrows, err := h.service.GetByBookID(c.Request.Context(), bookID)
		h.respondList(c, borrows, err)
		return
	}

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			response.BadRequest(c, "invalid from date")
			return
		}
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			response.BadRequest(c, "invalid to date")
			return
		}
		borrows, err := h.service.GetByDateRange(c.Request.Context(), from, to)
		h.respondList(c, borrows, err)
		return
	}

	borrows, err := h.service.GetAll(c.Request.Context())
	h.respondList(c, borrows, err)
}

// GetActive - GET /v1/borrows/active
func (h *BorrowHandler) GetActive(c *gin.Context) {
	borrows, err := h.service.GetActive(c.Request.Context())
	h.respondList(c, borrows, err)
}

// GetOverdue - GET /v1/borrows/overdue
func (h *BorrowHandler) GetOverdue(c *gin.Context) {
	borrows, err := h.service.GetOverdue(c.Request.Context())
	h.respondList(c, borrows, err)
}

// Return - POST /v1/borrows/:id/return
func (h *BorrowHandler) Return(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	returned, err := h.service.Return(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, h.service.ToResponse(returned))
}

// Update - PUT /v1/borrows/:id
func (h *BorrowHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req borrow.UpdateBorrowRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, h.service.ToResponse(updated))
}

// Delete - DELETE /v1/borrows/:id
func (h *BorrowHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

// IsBookBorrowed - GET /v1/books/:id/borrowed
func (h *BorrowHandler) IsBookBorrowed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	borrowed, err := h.service.IsBookBorrowed(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"borrowed": borrowed})
}

// HasUserActiveBorrows - GET /v1/users/:id/active-borrows
func (h *BorrowHandler) HasUserActiveBorrows(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	active, err := h.service.HasActiveBorrows(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"has_active": active})
}

func (h *BorrowHandler) respondList(c *gin.Context, borrows []borrow.Borrow, err error) {
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.ToResponseList(borrows))
}
