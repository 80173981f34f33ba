package apiclient

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxImageBytes mirrors the server-side ceiling (5 MiB); oversized or
// non-image files are rejected before any preview or upload attempt.
const MaxImageBytes = 5 * 1024 * 1024

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotAnImage  = errors.New("file must be an image")
	ErrImageTooBig = errors.New("image must be 5MB or smaller")
)

// PendingFile is a binary file selected but not yet uploaded. Its
// presence in a Form switches the save encoding to multipart.
type PendingFile struct {
	Name string
	MIME string
	Data []byte
}

// Guard enforces the MIME-prefix and size checks locally.
func (f *PendingFile) Guard() error {
	if !strings.HasPrefix(f.MIME, "image/") {
		return ErrNotAnImage
	}
	if len(f.Data) > MaxImageBytes {
		return ErrImageTooBig
	}
	return nil
}

// Form is one dialog's draft payload: scalar values plus at most one
// pending image. Values always carry the full record, never a partial
// patch.
type Form struct {
	Values    map[string]any
	File      *PendingFile
	FileField string // multipart field name, defaults to "image"
	OldImage  string // existing filename kept when no new file is chosen
}

func (f Form) fileField() string {
	if f.FileField != "" {
		return f.FileField
	}
	return "image"
}

func (f Form) str(key string) string {
	if v, ok := f.Values[key]; ok {
		return fmt.Sprint(v)
	}
	return ""
}

func (f Form) num(key string) float64 {
	switch v := f.Values[key].(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case float64:
		return v
	case string:
		n, _ := strconv.ParseFloat(v, 64)
		return n
	default:
		return 0
	}
}

// requireFields is the presence check every dialog runs on submit.
func requireFields(f Form, fields ...string) error {
	for _, field := range fields {
		if f.str(field) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	return nil
}

// Per-resource validators, wired into the matching Resource so a
// failing draft never reaches the network.

func ValidateMenuForm(f Form) error {
	if err := requireFields(f, "menu_name", "details", "category"); err != nil {
		return err
	}
	if f.num("price") <= 0 {
		return fmt.Errorf("%w: price must be greater than zero", ErrValidation)
	}
	return nil
}

func ValidatePromoForm(f Form) error {
	return requireFields(f, "promo_name")
}

func ValidateOutletForm(f Form) error {
	return requireFields(f, "location", "link")
}

func ValidateCareerForm(f Form) error {
	return requireFields(f, "description")
}

func ValidateGalleryForm(f Form) error {
	return requireFields(f, "category", "description")
}

func ValidateUserForm(f Form) error {
	return requireFields(f, "name", "email", "role", "status")
}

func ValidateMemberForm(f Form) error {
	if err := requireFields(f, "name", "address", "no_wa"); err != nil {
		return err
	}
	if f.num("outlet_id") <= 0 {
		return fmt.Errorf("%w: outlet_id is required", ErrValidation)
	}
	return nil
}
