package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thaovyxe/internal/upload"
)

func newUploadHandler(t *testing.T) *UploadHandler {
	t.Helper()
	store, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewUploadHandler(store)
}

func multipartImage(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestUploadStoresImage(t *testing.T) {
	h := newUploadHandler(t)
	body, contentType := multipartImage(t, "image", "xe.png", []byte("png bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Upload thành công", resp["message"])
	url, _ := resp["imageUrl"].(string)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
}

func TestUploadRejectsOversizedBody(t *testing.T) {
	h := newUploadHandler(t)
	oversized := bytes.Repeat([]byte("x"), upload.MaxFileSize+2<<20)
	body, contentType := multipartImage(t, "image", "big.png", oversized)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "File quá lớn. Kích thước tối đa là 5MB", resp["message"])
}

func TestUploadRejectsMalformedBody(t *testing.T) {
	h := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload",
		strings.NewReader("this is not a multipart body"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=broken")
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "Dữ liệu upload không hợp lệ", resp["message"],
		"a malformed body must not report a size failure")
}

func TestUploadRequiresImageField(t *testing.T) {
	h := newUploadHandler(t)
	body, contentType := multipartImage(t, "attachment", "xe.png", []byte("png bytes"))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.Upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "Không có file được upload", resp["message"])
}
