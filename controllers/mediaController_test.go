package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadContext builds a multipart upload request carrying one file part
// of the given size.
func uploadContext(t *testing.T, fieldName, fileName string, size int) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/media/upload", &body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	return c, w
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	resetState()
	c, w := uploadContext(t, "image", "huge.jpg", MaxImageSize+1)
	asCitizen(c)

	UploadImage(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "too large")
}

func TestUploadImageRejectsNonImageContent(t *testing.T) {
	resetState()
	// CreateFormFile marks parts application/octet-stream, which is not
	// an image type.
	c, w := uploadContext(t, "image", "notes.txt", 64)
	asCitizen(c)

	UploadImage(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only image files")
}

func TestUploadImageRequiresFile(t *testing.T) {
	resetState()
	c, w := uploadContext(t, "attachment", "photo.jpg", 64)
	asCitizen(c)

	UploadImage(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No image file provided")
}

func TestUploadImageUnauthenticated(t *testing.T) {
	resetState()
	c, w := uploadContext(t, "image", "photo.jpg", 64)

	UploadImage(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
