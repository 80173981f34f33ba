package apiclient_test

import (
	"testing"

	"go-tursina-admin/pkg/apiclient"

	"github.com/stretchr/testify/assert"
)

func TestPendingFileGuard(t *testing.T) {
	png := &apiclient.PendingFile{Name: "ok.png", MIME: "image/png", Data: []byte("png")}
	assert.NoError(t, png.Guard())

	pdf := &apiclient.PendingFile{Name: "doc.pdf", MIME: "application/pdf", Data: []byte("pdf")}
	assert.ErrorIs(t, pdf.Guard(), apiclient.ErrNotAnImage)

	empty := &apiclient.PendingFile{Name: "x", MIME: "", Data: []byte("x")}
	assert.ErrorIs(t, empty.Guard(), apiclient.ErrNotAnImage)

	huge := &apiclient.PendingFile{Name: "huge.jpg", MIME: "image/jpeg", Data: make([]byte, apiclient.MaxImageBytes+1)}
	assert.ErrorIs(t, huge.Guard(), apiclient.ErrImageTooBig)

	atLimit := &apiclient.PendingFile{Name: "limit.jpg", MIME: "image/jpeg", Data: make([]byte, apiclient.MaxImageBytes)}
	assert.NoError(t, atLimit.Guard())
}

func TestValidateMenuForm(t *testing.T) {
	valid := apiclient.Form{Values: map[string]any{
		"menu_name": "Kebab Original",
		"details":   "Daging sapi",
		"category":  "Kebab",
		"price":     25000,
	}}
	assert.NoError(t, apiclient.ValidateMenuForm(valid))

	noName := apiclient.Form{Values: map[string]any{
		"details": "Daging sapi", "category": "Kebab", "price": 25000,
	}}
	err := apiclient.ValidateMenuForm(noName)
	assert.ErrorIs(t, err, apiclient.ErrValidation)
	assert.Contains(t, err.Error(), "menu_name")

	zeroPrice := apiclient.Form{Values: map[string]any{
		"menu_name": "Kebab Jumbo", "details": "Daging sapi", "category": "Kebab", "price": 0,
	}}
	err = apiclient.ValidateMenuForm(zeroPrice)
	assert.ErrorIs(t, err, apiclient.ErrValidation)
	assert.Contains(t, err.Error(), "price")

	// price arriving as a form string still counts
	stringPrice := apiclient.Form{Values: map[string]any{
		"menu_name": "Kebab Jumbo", "details": "Daging sapi", "category": "Kebab", "price": "25000",
	}}
	assert.NoError(t, apiclient.ValidateMenuForm(stringPrice))
}

func TestValidateOutletForm(t *testing.T) {
	assert.NoError(t, apiclient.ValidateOutletForm(apiclient.Form{Values: map[string]any{
		"location": "Tursina Condongcatur", "link": "https://maps.example.com/ccr",
	}}))

	err := apiclient.ValidateOutletForm(apiclient.Form{Values: map[string]any{"location": "Tursina Condongcatur"}})
	assert.ErrorIs(t, err, apiclient.ErrValidation)
	assert.Contains(t, err.Error(), "link")
}

func TestValidateGalleryForm(t *testing.T) {
	assert.NoError(t, apiclient.ValidateGalleryForm(apiclient.Form{Values: map[string]any{
		"category": "Galeri Tim", "description": "Tim outlet Seturan",
	}}))
	assert.ErrorIs(t, apiclient.ValidateGalleryForm(apiclient.Form{Values: map[string]any{}}), apiclient.ErrValidation)
}

func TestValidateMemberForm(t *testing.T) {
	assert.NoError(t, apiclient.ValidateMemberForm(apiclient.Form{Values: map[string]any{
		"name": "Budi", "address": "Jl. Merdeka", "no_wa": "0812", "outlet_id": 3,
	}}))

	err := apiclient.ValidateMemberForm(apiclient.Form{Values: map[string]any{
		"name": "Budi", "address": "Jl. Merdeka", "no_wa": "0812",
	}})
	assert.ErrorIs(t, err, apiclient.ErrValidation)
	assert.Contains(t, err.Error(), "outlet_id")
}

func TestValidateUserForm(t *testing.T) {
	assert.NoError(t, apiclient.ValidateUserForm(apiclient.Form{Values: map[string]any{
		"name": "Kasir", "email": "kasir@tursina.id", "role": "Admin", "status": "active",
	}}))
	assert.ErrorIs(t, apiclient.ValidateUserForm(apiclient.Form{Values: map[string]any{
		"name": "Kasir",
	}}), apiclient.ErrValidation)
}
