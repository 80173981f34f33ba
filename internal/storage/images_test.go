package storage_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-tursina-admin/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFileHeader round-trips content through a real multipart body so
// the FileHeader behaves exactly like an uploaded file.
func buildFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 * 1024 * 1024)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func TestValidate_RejectsNonImage(t *testing.T) {
	file := buildFileHeader(t, "notes.pdf", "application/pdf", []byte("pdf"))

	err := storage.Validate(file)

	assert.ErrorIs(t, err, storage.ErrNotAnImage)
}

func TestValidate_RejectsOversizedImage(t *testing.T) {
	big := bytes.Repeat([]byte("a"), storage.MaxImageBytes+1)
	file := buildFileHeader(t, "huge.png", "image/png", big)

	err := storage.Validate(file)

	assert.ErrorIs(t, err, storage.ErrImageTooBig)
}

func TestValidate_AcceptsImageAtLimit(t *testing.T) {
	file := buildFileHeader(t, "ok.jpg", "image/jpeg", []byte("jpeg-bytes"))

	assert.NoError(t, storage.Validate(file))
}

func TestSave_StoresFileWithGeneratedName(t *testing.T) {
	store := storage.NewImageStore(t.TempDir())
	file := buildFileHeader(t, "kebab.jpg", "image/jpeg", []byte("jpeg-bytes"))

	filename, err := store.Save("menu", file)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".jpg"))
	assert.NotEqual(t, "kebab.jpg", filename) // server-assigned name

	content, err := os.ReadFile(filepath.Join(store.Root(), "menu", filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), content)
}

func TestSave_RejectsGuardedFileBeforeWriting(t *testing.T) {
	root := t.TempDir()
	store := storage.NewImageStore(root)
	file := buildFileHeader(t, "script.sh", "text/x-sh", []byte("#!/bin/sh"))

	_, err := store.Save("menu", file)

	assert.ErrorIs(t, err, storage.ErrNotAnImage)
	_, statErr := os.Stat(filepath.Join(root, "menu"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRemove_MissingFileIsNotAnError(t *testing.T) {
	store := storage.NewImageStore(t.TempDir())

	assert.NoError(t, store.Remove("menu", "gone.jpg"))
	assert.NoError(t, store.Remove("menu", ""))
}

func TestRemove_DeletesStoredFile(t *testing.T) {
	store := storage.NewImageStore(t.TempDir())
	file := buildFileHeader(t, "promo.png", "image/png", []byte("png"))
	filename, err := store.Save("promo", file)
	require.NoError(t, err)

	require.NoError(t, store.Remove("promo", filename))

	_, statErr := os.Stat(filepath.Join(store.Root(), "promo", filename))
	assert.True(t, os.IsNotExist(statErr))
}
