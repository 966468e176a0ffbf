package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/library"
	"library-backend/internal/shared/response"
)

type LibraryHandler struct {
	service library.Service
}

func NewLibraryHandler(svc library.Service) *LibraryHandler {
	return &LibraryHandler{service: svc}
}

func (h *LibraryHandler) respondError(c *gin.Context, err error) {
	response.ErrorResponse(c, library.ToHTTPStatus(err), library.ToErrorCode(err), err.Error())
}

// Create - POST /v1/libraries
func (h *LibraryHandler) Create(c *gin.Context) {
	var req library.CreateLibraryRequest
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

// GetByID - GET /v1/libraries/:id
func (h *LibraryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, l.ToResponse())
}

// GetAll - GET /v1/libraries?name=Main
func (h *LibraryHandler) GetAll(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		l, err := h.service.GetByName(c.Request.Context(), name)
		if err != nil {
			h.respondError(c, err)
			return
		}
		response.Success(c, http.StatusOK, l.ToResponse())
		return
	}

	libraries, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, library.ToResponseList(libraries))
}

// Update - PUT /v1/libraries/:id
func (h *LibraryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var req library.UpdateLibraryRequest
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

// Delete - DELETE /v1/libraries/:id
func (h *LibraryHandler) Delete(c *gin.Context) {
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
