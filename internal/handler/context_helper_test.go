package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
)

func formContext(t *testing.T, contentType string, body *bytes.Buffer) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	c.Request = req
	return c
}

func TestOptionalFormFileReadsPresentPart(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("profile_picture", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	c := formContext(t, writer.FormDataContentType(), &body)

	data, filename, err := optionalFormFile(c, "profile_picture", 1024)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
	assert.Equal(t, "avatar.png", filename)
}

func TestOptionalFormFileAbsentPartReadsAsNil(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("first_name", "Ada"))
	require.NoError(t, writer.Close())

	c := formContext(t, writer.FormDataContentType(), &body)

	data, filename, err := optionalFormFile(c, "profile_picture", 1024)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Empty(t, filename)
}

func TestOptionalFormFileRejectsMalformedBody(t *testing.T) {
	body := bytes.NewBufferString("this is not a multipart payload")
	c := formContext(t, "multipart/form-data; boundary=deadbeef", body)

	_, _, err := optionalFormFile(c, "profile_picture", 1024)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestOptionalFormFileEnforcesSizeBound(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("profile_picture", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 64))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	c := formContext(t, writer.FormDataContentType(), &body)

	_, _, err = optionalFormFile(c, "profile_picture", 16)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
