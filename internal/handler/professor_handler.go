package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/service"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/response"
)

// ProfessorHandler handles professor account endpoints.
type ProfessorHandler struct {
	service       *service.ProfessorService
	maxUploadSize int64
}

// NewProfessorHandler constructs the handler.
func NewProfessorHandler(svc *service.ProfessorService, maxUploadSize int64) *ProfessorHandler {
	return &ProfessorHandler{service: svc, maxUploadSize: maxUploadSize}
}

// Register creates a professor account from a multipart payload.
func (h *ProfessorHandler) Register(c *gin.Context) {
	var req dto.RegisterProfessorRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	avatar, avatarName, err := readFormFile(c, "profile_picture", h.maxUploadSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.service.Register(c.Request.Context(), req, avatar, avatarName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, profile)
}

// Profile returns the authenticated professor's profile.
func (h *ProfessorHandler) Profile(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), claims.Subject)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// UpdateProfile rewrites the authenticated professor's profile.
func (h *ProfessorHandler) UpdateProfile(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateProfessorProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}

	avatar, avatarName, err := optionalFormFile(c, "profile_picture", h.maxUploadSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), claims.Subject, req, avatar, avatarName)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, profile)
}

// DeleteAccount removes the authenticated professor and everything owned by
// them.
func (h *ProfessorHandler) DeleteAccount(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), claims.Subject); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
