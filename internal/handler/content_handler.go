package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/service"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/response"
)

// ContentHandler handles course-material endpoints.
type ContentHandler struct {
	service       *service.ContentService
	maxUploadSize int64
}

// NewContentHandler constructs the handler.
func NewContentHandler(svc *service.ContentService, maxUploadSize int64) *ContentHandler {
	return &ContentHandler{service: svc, maxUploadSize: maxUploadSize}
}

// Upload stores a course material in the classroom.
func (h *ContentHandler) Upload(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.UploadContentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid content payload"))
		return
	}

	file, filename, err := readFormFile(c, "file", h.maxUploadSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	item, err := h.service.Upload(c.Request.Context(), claims, c.Param("classroomId"), req, file, filename)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, item)
}

// List returns the classroom's materials to any member.
func (h *ContentHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	items, err := h.service.List(c.Request.Context(), claims, c.Param("classroomId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items)
}

// DownloadLink returns the retrieval URL for one material.
func (h *ContentHandler) DownloadLink(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	link, err := h.service.DownloadLink(c.Request.Context(), claims, c.Param("classroomId"), c.Param("contentId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, link)
}
