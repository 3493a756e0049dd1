package api

import (
	"errors"
	"net/http"
	"path/filepath"

	apperrors "thaovyxe/internal/errors"
	"thaovyxe/internal/upload"
)

// multipartOverhead leaves room for boundaries and form fields on top of the
// file cap before the body reader cuts the request off.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	Store *upload.Store
}

func NewUploadHandler(store *upload.Store) *UploadHandler {
	return &UploadHandler{Store: store}
}

// Upload accepts a single multipart image under the "image" field and
// returns the static URL path it is served from.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(upload.MaxFileSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondError(w, apperrors.ErrUpload("File quá lớn. Kích thước tối đa là 5MB"))
			return
		}
		respondError(w, apperrors.ErrUpload("Dữ liệu upload không hợp lệ"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, apperrors.ErrUpload("Không có file được upload"))
		return
	}
	defer file.Close()

	imageURL, err := h.Store.Save(file, header)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Upload thành công",
		"imageUrl": imageURL,
		"filename": filepath.Base(imageURL),
	})
}
