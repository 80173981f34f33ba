package crud

import (
	"errors"
	"fmt"
	"strings"

	"go-tursina-admin/internal/storage"
	"go-tursina-admin/internal/ws"
	"go-tursina-admin/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ImageBinding tells the handler where a resource keeps its image
// filename. Resources without an image (outlet) leave it nil.
type ImageBinding[T any] struct {
	Field string // multipart field name, e.g. "image"
	Get   func(*T) string
	Set   func(*T, string)
}

// Config parameterizes one Handler per resource. Assign copies request
// form fields onto the record; JSON bodies are bound directly from the
// model's json tags.
type Config[T any] struct {
	Resource string // route segment, image subdir and ws event name
	Assign   func(c *fiber.Ctx, rec *T) error
	Image    *ImageBinding[T]
}

// Handler implements the list/create/update/delete lifecycle every
// content screen of the panel repeats: fetch a list, post a multipart
// or JSON payload, respond with the {success,data,message} envelope,
// let the client refetch.
type Handler[T any] struct {
	repo   *Repository[T]
	cfg    Config[T]
	images *storage.ImageStore
	hub    *ws.Hub
}

func NewHandler[T any](db *gorm.DB, cfg Config[T], images *storage.ImageStore, hub *ws.Hub) *Handler[T] {
	return &Handler[T]{
		repo:   NewRepository[T](db),
		cfg:    cfg,
		images: images,
		hub:    hub,
	}
}

// Register mounts the resource routes. POST /:id is the multipart
// update tunnel (_method=PUT); PUT /:id takes a true JSON update.
func (h *Handler[T]) Register(r fiber.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/:id", h.Update)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *Handler[T]) List(c *fiber.Ctx) error {
	records, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"success": true, "data": records})
}

func (h *Handler[T]) Create(c *fiber.Ctx) error {
	rec := new(T)
	if err := h.bind(c, rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	if h.cfg.Image != nil {
		if file, err := c.FormFile(h.cfg.Image.Field); err == nil && file != nil {
			filename, err := h.images.Save(h.cfg.Resource, file)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
			}
			h.cfg.Image.Set(rec, filename)
		}
	}

	if msg := firstValidationError(rec); msg != "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": msg})
	}

	setAudit(rec, actorName(c), true)
	if err := h.repo.Create(rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	h.hub.NotifyResource(h.cfg.Resource, "created", recordID(rec))
	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": h.cfg.Resource + " created",
		"data":    rec,
	})
}

func (h *Handler[T]) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid id"})
	}

	// The SPA tunnels multipart updates through POST with a _method
	// override field; a bare POST to an id is not an update.
	if c.Method() == fiber.MethodPost && !strings.EqualFold(c.FormValue("_method"), "PUT") {
		return c.Status(405).JSON(fiber.Map{"success": false, "message": "Method not allowed"})
	}

	rec, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": h.cfg.Resource + " not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Internal Server Error"})
	}

	oldImage := ""
	if h.cfg.Image != nil {
		oldImage = h.cfg.Image.Get(rec)
	}

	// A JSON body may carry id/created_* fields; the URL id stays
	// authoritative, so snapshot and restore around the bind.
	ident := captureIdentity(rec)
	if err := h.bind(c, rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	restoreIdentity(rec, ident)

	if h.cfg.Image != nil {
		if file, ferr := c.FormFile(h.cfg.Image.Field); ferr == nil && file != nil {
			filename, serr := h.images.Save(h.cfg.Resource, file)
			if serr != nil {
				return c.Status(400).JSON(fiber.Map{"success": false, "message": serr.Error()})
			}
			h.cfg.Image.Set(rec, filename)
		} else if h.cfg.Image.Get(rec) == "" {
			// No new upload and nothing assigned by the form: the
			// existing file stays referenced.
			h.cfg.Image.Set(rec, oldImage)
		}
	}

	if msg := firstValidationError(rec); msg != "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": msg})
	}

	setAudit(rec, actorName(c), false)
	if err := h.repo.Save(rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if h.cfg.Image != nil && oldImage != "" && h.cfg.Image.Get(rec) != oldImage {
		_ = h.images.Remove(h.cfg.Resource, oldImage)
	}

	h.hub.NotifyResource(h.cfg.Resource, "updated", uint(id))
	return c.JSON(fiber.Map{
		"success": true,
		"message": h.cfg.Resource + " updated",
		"data":    rec,
	})
}

func (h *Handler[T]) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid id"})
	}

	rec, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": h.cfg.Resource + " not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "Internal Server Error"})
	}

	deleted, err := h.repo.Delete(uint(id))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"success": false, "message": h.cfg.Resource + " not found"})
	}

	if h.cfg.Image != nil {
		_ = h.images.Remove(h.cfg.Resource, h.cfg.Image.Get(rec))
	}

	h.hub.NotifyResource(h.cfg.Resource, "deleted", uint(id))
	return c.JSON(fiber.Map{"success": true, "message": h.cfg.Resource + " deleted"})
}

func (h *Handler[T]) bind(c *fiber.Ctx, rec *T) error {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return c.BodyParser(rec)
	}
	return h.cfg.Assign(c, rec)
}

func firstValidationError(rec interface{}) string {
	if errs := validator.ValidateStruct(rec); len(errs) > 0 {
		first := errs[0]
		return fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	return ""
}

// actorName reads the authenticated user's name set by the auth
// middleware, for the audit columns.
func actorName(c *fiber.Ctx) string {
	if name, ok := c.Locals("user_name").(string); ok && name != "" {
		return name
	}
	return "system"
}
