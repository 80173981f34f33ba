package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// Resource is the generic CRUD controller: one instance per entity
// type, parameterized by endpoint path and field validator. Saves pick
// multipart (with the _method=PUT tunnel) or JSON by pending-file
// presence; every successful mutation triggers a full refetch into the
// Store rather than patching the list locally.
type Resource[T any] struct {
	client   *Client
	path     string
	validate func(Form) error
	store    *Store[T]
}

func NewResource[T any](c *Client, path string, validate func(Form) error) *Resource[T] {
	return &Resource[T]{
		client:   c,
		path:     strings.Trim(path, "/"),
		validate: validate,
		store:    NewStore[T](),
	}
}

func (r *Resource[T]) Store() *Store[T] {
	return r.store
}

// List fetches the full collection without touching the Store.
func (r *Resource[T]) List() ([]T, error) {
	data, err := r.client.getJSON(r.path)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &FetchError{Kind: ErrAPI, Message: unknownError}
	}
	return items, nil
}

// Fetch lists into the Store under a generation ticket; stale results
// are discarded. Returns the fetch error, if any, for toast display.
func (r *Resource[T]) Fetch() error {
	gen := r.store.begin()
	items, err := r.List()
	r.store.complete(gen, items, err)
	return err
}

// Save submits a create (id == 0) or update draft. A validator or
// image-guard failure blocks submission: no request is issued and the
// Store keeps its current list. On success the list is refetched.
func (r *Resource[T]) Save(id uint, f Form) error {
	if r.validate != nil {
		if err := r.validate(f); err != nil {
			return err
		}
	}
	if f.File != nil {
		if err := f.File.Guard(); err != nil {
			return err
		}
	}

	var err error
	if f.File != nil {
		err = r.saveMultipart(id, f)
	} else {
		err = r.saveJSON(id, f)
	}
	if err != nil {
		return err
	}

	return r.Fetch()
}

// Delete removes a record and refetches. A failed delete leaves the
// Store untouched: the row stays visible until the server confirms.
func (r *Resource[T]) Delete(id uint) error {
	req, err := http.NewRequest(http.MethodDelete, r.client.url(fmt.Sprintf("%s/%d", r.path, id)), nil)
	if err != nil {
		return &FetchError{Kind: ErrTransport, Message: err.Error()}
	}
	if _, err := r.client.do(req); err != nil {
		return err
	}
	return r.Fetch()
}

func (r *Resource[T]) saveJSON(id uint, f Form) error {
	method, path := http.MethodPost, r.path
	if id != 0 {
		// True verb: JSON updates don't need the tunnel
		method, path = http.MethodPut, fmt.Sprintf("%s/%d", r.path, id)
	}
	_, err := r.client.sendJSON(method, path, f.Values)
	return err
}

func (r *Resource[T]) saveMultipart(id uint, f Form) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range f.Values {
		if err := writer.WriteField(key, fmt.Sprint(value)); err != nil {
			return &FetchError{Kind: ErrTransport, Message: err.Error()}
		}
	}

	path := r.path
	if id != 0 {
		// Multipart PUT isn't used directly; tunnel through POST
		path = fmt.Sprintf("%s/%d", r.path, id)
		if err := writer.WriteField("_method", "PUT"); err != nil {
			return &FetchError{Kind: ErrTransport, Message: err.Error()}
		}
		if f.OldImage != "" {
			if err := writer.WriteField("old_image", f.OldImage); err != nil {
				return &FetchError{Kind: ErrTransport, Message: err.Error()}
			}
		}
	}

	part, err := createImagePart(writer, f.fileField(), f.File)
	if err != nil {
		return &FetchError{Kind: ErrTransport, Message: err.Error()}
	}
	if _, err := part.Write(f.File.Data); err != nil {
		return &FetchError{Kind: ErrTransport, Message: err.Error()}
	}
	if err := writer.Close(); err != nil {
		return &FetchError{Kind: ErrTransport, Message: err.Error()}
	}

	req, err := http.NewRequest(http.MethodPost, r.client.url(path), &buf)
	if err != nil {
		return &FetchError{Kind: ErrTransport, Message: err.Error()}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, err = r.client.do(req)
	return err
}

// createImagePart writes a file part carrying the real MIME type, so
// the server-side image guard sees what the picker saw.
func createImagePart(w *multipart.Writer, field string, file *PendingFile) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, file.Name))
	header.Set("Content-Type", file.MIME)
	return w.CreatePart(header)
}
