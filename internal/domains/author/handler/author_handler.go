package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

func (h *AuthorHandler) respondError(c *gin.Context, err error) {
	response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
}

// Create - POST /v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
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

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// GetByID - GET /v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// GetAll - GET /v1/authors
// Optional query params: first_name + last_name (exact lookup),
// birth_year_from + birth_year_to (range).
func (h *AuthorHandler) GetAll(c *gin.Context) {
	firstName := c.Query("first_name")
	lastName := c.Query("last_name")
	if firstName != "" || lastName != "" {
		a, err := h.service.GetByName(c.Request.Context(), firstName, lastName)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, a.ToResponse())
		return
	}

	fromStr, toStr := c.Query("birth_year_from"), c.Query("birth_year_to")
	if fromStr != "" || toStr != "" {
		from, err := strconv.Atoi(fromStr)
		if err != nil {
			response.BadRequest(c, "invalid birth_year_from")
			return
		}
		to, err := strconv.Atoi(toStr)
		if err != nil {
			response.BadRequest(c, "invalid birth_year_to")
			return
		}

		authors, err := h.service.GetByBirthYearRange(c.Request.Context(), from, to)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, author.ToResponseList(authors))
		return
	}

	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, author.ToResponseList(authors))
}

// GetWithoutBooks - GET /v1/authors/without-books
func (h *AuthorHandler) GetWithoutBooks(c *gin.Context) {
	authors, err := h.service.GetWithoutBooks(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, author.ToResponseList(authors))
}

// Update - PUT /v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req author.UpdateAuthorRequest
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

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete - DELETE /v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
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
