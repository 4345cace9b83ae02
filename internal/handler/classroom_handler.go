package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/service"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/response"
)

// ClassroomHandler handles classroom endpoints for professors plus the
// shared catalog.
type ClassroomHandler struct {
	service       *service.ClassroomService
	maxUploadSize int64
}

// NewClassroomHandler constructs the handler.
func NewClassroomHandler(svc *service.ClassroomService, maxUploadSize int64) *ClassroomHandler {
	return &ClassroomHandler{service: svc, maxUploadSize: maxUploadSize}
}

// Create registers a classroom under the authenticated professor.
func (h *ClassroomHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateClassroomRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid classroom payload"))
		return
	}

	picture, pictureName, err := optionalFormFile(c, "classroom_picture", h.maxUploadSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), claims.Subject, req, picture, pictureName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, created)
}

// ListOwn returns the authenticated professor's classrooms.
func (h *ClassroomHandler) ListOwn(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	classrooms, err := h.service.ListOwn(c.Request.Context(), claims.Subject)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, classrooms)
}

// GetOwn returns one classroom owned by the authenticated professor.
func (h *ClassroomHandler) GetOwn(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	classroom, err := h.service.GetOwn(c.Request.Context(), claims.Subject, c.Param("classroomId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, classroom)
}

// Catalog returns the system-wide classroom catalog.
func (h *ClassroomHandler) Catalog(c *gin.Context) {
	classrooms, err := h.service.Catalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, classrooms)
}
