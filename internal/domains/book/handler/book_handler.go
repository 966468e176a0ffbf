package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/library"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// respondError also covers author and library errors surfaced by the
// create/update orchestration.
func (h *BookHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, author.ErrAuthorNotFound):
		response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
	case errors.Is(err, library.ErrLibraryNotFound):
		response.ErrorResponse(c, library.ToHTTPStatus(err), library.ToErrorCode(err), err.Error())
	default:
		response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
	}
}

// Create - POST /v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", err)
		return
	}
	for _, ref := range req.Authors {
		if err := ref.Validate(); err != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid author reference", err)
			return
		}
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID - GET /v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
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

	response.Success(c, http.StatusOK, b.ToResponse())
}

// GetByISBN - GET /v1/books/isbn/:isbn
func (h *BookHandler) GetByISBN(c *gin.Context) {
	b, err := h.service.GetByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// GetByTitle - GET /v1/books/title/:title
func (h *BookHandler) GetByTitle(c *gin.Context) {
	b, err := h.service.GetByTitle(c.Request.Context(), c.Param("title"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// GetAll - GET /v1/books
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponseList(books))
}

// GetByAuthor - GET /v1/books/author/:id
func (h *BookHandler) GetByAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	books, err := h.service.GetByAuthorID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponseList(books))
}

// GetByLibrary - GET /v1/books/library/:id
func (h *BookHandler) GetByLibrary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	books, err := h.service.GetByLibraryID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponseList(books))
}

// Search - GET /v1/books/search
// Query params: title, isbn, author_first_name, author_last_name,
// library_name. Criteria combine conjunctively.
func (h *BookHandler) Search(c *gin.Context) {
	filter := book.BookFilter{
		Title:           c.Query("title"),
		ISBN:            c.Query("isbn"),
		AuthorFirstName: c.Query("author_first_name"),
		AuthorLastName:  c.Query("author_last_name"),
		LibraryName:     c.Query("library_name"),
	}

	if filter.AuthorFirstName != "" && filter.AuthorLastName != "" &&
		filter.Title == "" && filter.ISBN == "" && filter.LibraryName == "" {
		books, err := h.service.GetByAuthorName(c.Request.Context(), filter.AuthorFirstName, filter.AuthorLastName)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, book.ToResponseList(books))
		return
	}

	books, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, book.ToResponseList(books))
}

// Update - PUT /v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req book.UpdateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request", err)
		return
	}
	if req.Authors != nil {
		for _, ref := range *req.Authors {
			if err := ref.Validate(); err != nil {
				response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid author reference", err)
				return
			}
		}
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete - DELETE /v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
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
