package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/service"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/response"
)

// PdfHandler handles the student document inventory and chat endpoints.
type PdfHandler struct {
	service       *service.PdfService
	maxUploadSize int64
}

// NewPdfHandler constructs the handler.
func NewPdfHandler(svc *service.PdfService, maxUploadSize int64) *PdfHandler {
	return &PdfHandler{service: svc, maxUploadSize: maxUploadSize}
}

// Upload stores a PDF under the authenticated student.
func (h *PdfHandler) Upload(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	file, filename, err := readFormFile(c, "file", h.maxUploadSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.service.Upload(c.Request.Context(), claims.Subject, filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, summary)
}

// List returns every document the authenticated student owns.
func (h *PdfHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	docs, err := h.service.ListMine(c.Request.Context(), claims.Subject)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, docs)
}

// Get returns one owned document with its extracted pages.
func (h *PdfHandler) Get(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	doc, err := h.service.Get(c.Request.Context(), claims.Subject, c.Param("pdfId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, doc)
}

// Chat answers a question about one owned document.
func (h *PdfHandler) Chat(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid chat payload"))
		return
	}

	answer, err := h.service.Chat(c.Request.Context(), claims.Subject, c.Param("pdfId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, answer)
}

// Analyze summarizes an uploaded PDF without storing it.
func (h *PdfHandler) Analyze(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	file, filename, err := readFormFile(c, "file", h.maxUploadSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.service.Analyze(c.Request.Context(), filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, summary)
}
