package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy-app/classroom-api/internal/models"
	"github.com/studybuddy-app/classroom-api/internal/service"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/response"
)

// AuthHandler wires the login endpoints to the auth service.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// LoginProfessor authenticates a professor by email and password.
func (h *AuthHandler) LoginProfessor(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.LoginProfessor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// LoginStudent authenticates a student by email and password.
func (h *AuthHandler) LoginStudent(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.LoginStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}
