package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studybuddy-app/classroom-api/internal/middleware"
	"github.com/studybuddy-app/classroom-api/internal/models"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.AuthClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// readFormFile pulls one multipart file part into memory, bounded by
// maxBytes. Uploads stream to the media store as a whole payload, so the
// bound is the only thing keeping memory use in check.
func readFormFile(c *gin.Context, field string, maxBytes int64) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing file part: "+field)
	}
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "file too large")
	}
	data, err := readAll(fileHeader)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable file part: "+field)
	}
	return data, fileHeader.Filename, nil
}

// optionalFormFile behaves like readFormFile but treats an absent part as
// (nil, "", nil). Only a genuinely missing part reads as absence; a body
// that cannot be parsed is still a client error.
func optionalFormFile(c *gin.Context, field string, maxBytes int64) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "malformed multipart body")
	}
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "file too large")
	}
	data, err := readAll(fileHeader)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable file part: "+field)
	}
	return data, fileHeader.Filename, nil
}

func readAll(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
