package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "thaovyxe/internal/errors"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func newUpload(name string, content []byte) (multipart.File, *multipart.FileHeader) {
	return memFile{bytes.NewReader(content)}, &multipart.FileHeader{
		Filename: name,
		Size:     int64(len(content)),
	}
}

func TestSaveStoresFileUnderGeneratedName(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	file, header := newUpload("ảnh xe.JPG", []byte("fake image bytes"))
	url, err := store.Save(file, header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"), "extension is lowercased")
	assert.NotContains(t, url, "ảnh", "original filename must not leak into the URL")

	stored := filepath.Join(store.Dir, filepath.Base(url))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	file, header := newUpload("payload.exe", []byte("x"))
	_, err = store.Save(file, header)
	require.Error(t, err)
	assert.Equal(t, "Chỉ chấp nhận file ảnh (jpg, jpeg, png, gif, webp)", err.Error())

	entries, readErr := os.ReadDir(store.Dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, header := newUpload("big.png", nil)
	header.Size = MaxFileSize + 1
	_, err = store.Save(memFile{bytes.NewReader(nil)}, header)
	require.Error(t, err)
	assert.Equal(t, 400, apperrors.StatusOf(err))
	assert.Equal(t, "File quá lớn. Kích thước tối đa là 5MB", err.Error())
}

func TestDistinctNamesForSameFilename(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	file1, header1 := newUpload("photo.png", []byte("one"))
	url1, err := store.Save(file1, header1)
	require.NoError(t, err)

	file2, header2 := newUpload("photo.png", []byte("two"))
	url2, err := store.Save(file2, header2)
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2)
}
