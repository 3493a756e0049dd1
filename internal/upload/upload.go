package upload

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "thaovyxe/internal/errors"
)

// MaxFileSize caps uploaded images at 5 MB.
const MaxFileSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store writes uploaded images into a local directory served statically
// under /uploads. Filenames are generator-assigned so concurrent uploads
// never collide.
type Store struct {
	Dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory %s: %w", dir, err)
	}
	return &Store{Dir: dir}, nil
}

// Save validates and persists one multipart file, returning the public URL
// path of the stored image.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > MaxFileSize {
		return "", apperrors.ErrUpload("File quá lớn. Kích thước tối đa là 5MB")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", apperrors.ErrUpload("Chỉ chấp nhận file ảnh (jpg, jpeg, png, gif, webp)")
	}

	filename := uuid.NewString() + ext
	path := filepath.Join(s.Dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		log.Printf("Error creating upload file %s: %v", path, err)
		return "", apperrors.ErrStorage("Lỗi khi xử lý file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, MaxFileSize+1)); err != nil {
		log.Printf("Error writing upload file %s: %v", path, err)
		os.Remove(path)
		return "", apperrors.ErrStorage("Lỗi khi xử lý file")
	}

	log.Printf("File uploaded: /uploads/%s (original %s, %d bytes)", filename, header.Filename, header.Size)
	return "/uploads/" + filename, nil
}
