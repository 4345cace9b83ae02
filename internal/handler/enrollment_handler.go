package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/service"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/response"
)

// EnrollmentHandler handles the student-side classroom endpoints.
type EnrollmentHandler struct {
	service *service.EnrollmentService
}

// NewEnrollmentHandler constructs the handler.
func NewEnrollmentHandler(svc *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc}
}

// Enroll joins the authenticated student to a classroom by join code.
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}

	classroom, err := h.service.Enroll(c.Request.Context(), claims.Subject, c.Param("classroomId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, classroom)
}

// ListEnrolled returns the classrooms the authenticated student joined.
func (h *EnrollmentHandler) ListEnrolled(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	classrooms, err := h.service.ListEnrolled(c.Request.Context(), claims.Subject)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, classrooms)
}

// GetEnrolled returns one classroom the authenticated student joined.
func (h *EnrollmentHandler) GetEnrolled(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	classroom, err := h.service.GetEnrolled(c.Request.Context(), claims.Subject, c.Param("classroomId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, classroom)
}
