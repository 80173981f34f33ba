package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxImageBytes is the upload ceiling (5 MiB), matching the guard the
// admin panel applies before it even attempts a preview.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrNotAnImage  = errors.New("file must be an image")
	ErrImageTooBig = errors.New("image must be 5MB or smaller")
)

// ImageStore persists uploaded images under root/{resource}/{filename}
// and hands back the server-assigned filename. The same tree is served
// statically at /images.
type ImageStore struct {
	root string
}

func NewImageStore(root string) *ImageStore {
	return &ImageStore{root: root}
}

func (s *ImageStore) Root() string {
	return s.root
}

// Validate enforces the MIME-prefix and size guards without touching disk.
func Validate(file *multipart.FileHeader) error {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return ErrNotAnImage
	}
	if file.Size > MaxImageBytes {
		return ErrImageTooBig
	}
	return nil
}

// Save validates and stores an uploaded file, returning the generated
// filename (uuid + original extension). Records reference images by
// filename only.
func (s *ImageStore) Save(resource string, file *multipart.FileHeader) (string, error) {
	if err := Validate(file); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, resource)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filename, nil
}

// Remove deletes a stored image. Missing files are not an error; the
// record is already gone or never had one.
func (s *ImageStore) Remove(resource, filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, resource, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
