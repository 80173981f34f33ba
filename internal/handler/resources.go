package handler

import (
	"strconv"

	"go-tursina-admin/internal/crud"
	"go-tursina-admin/internal/model"
	"go-tursina-admin/internal/storage"
	"go-tursina-admin/internal/ws"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// The content screens (menu, promo, outlet, karir, galeri) are all the
// same shallow lifecycle, so each one is just a crud.Handler config.
// The panel always submits the full payload, never a partial patch.

func NewMenuCRUD(db *gorm.DB, images *storage.ImageStore, hub *ws.Hub) *crud.Handler[model.Menu] {
	return crud.NewHandler(db, crud.Config[model.Menu]{
		Resource: "menu",
		Assign: func(c *fiber.Ctx, m *model.Menu) error {
			m.MenuName = c.FormValue("menu_name")
			m.Details = c.FormValue("details")
			m.Category = c.FormValue("category")
			m.Status = c.FormValue("status")
			price, err := strconv.ParseInt(c.FormValue("price"), 10, 64)
			if err != nil {
				return err
			}
			m.Price = price
			return nil
		},
		Image: &crud.ImageBinding[model.Menu]{
			Field: "image",
			Get:   func(m *model.Menu) string { return m.Image },
			Set:   func(m *model.Menu, f string) { m.Image = f },
		},
	}, images, hub)
}

func NewPromoCRUD(db *gorm.DB, images *storage.ImageStore, hub *ws.Hub) *crud.Handler[model.Promo] {
	return crud.NewHandler(db, crud.Config[model.Promo]{
		Resource: "promo",
		Assign: func(c *fiber.Ctx, p *model.Promo) error {
			p.PromoName = c.FormValue("promo_name")
			p.Status = c.FormValue("status")
			return nil
		},
		Image: &crud.ImageBinding[model.Promo]{
			Field: "image",
			Get:   func(p *model.Promo) string { return p.Image },
			Set:   func(p *model.Promo, f string) { p.Image = f },
		},
	}, images, hub)
}

func NewOutletCRUD(db *gorm.DB, images *storage.ImageStore, hub *ws.Hub) *crud.Handler[model.Outlet] {
	return crud.NewHandler(db, crud.Config[model.Outlet]{
		Resource: "outlet",
		Assign: func(c *fiber.Ctx, o *model.Outlet) error {
			o.Location = c.FormValue("location")
			o.Link = c.FormValue("link")
			if v := c.FormValue("is_active"); v != "" {
				active, err := strconv.ParseBool(v)
				if err != nil {
					return err
				}
				o.IsActive = active
			}
			return nil
		},
	}, images, hub)
}

func NewCareerCRUD(db *gorm.DB, images *storage.ImageStore, hub *ws.Hub) *crud.Handler[model.Career] {
	return crud.NewHandler(db, crud.Config[model.Career]{
		Resource: "karir",
		Assign: func(c *fiber.Ctx, k *model.Career) error {
			k.Description = c.FormValue("description")
			return nil
		},
		Image: &crud.ImageBinding[model.Career]{
			Field: "image",
			Get:   func(k *model.Career) string { return k.Image },
			Set:   func(k *model.Career, f string) { k.Image = f },
		},
	}, images, hub)
}

func NewGalleryCRUD(db *gorm.DB, images *storage.ImageStore, hub *ws.Hub) *crud.Handler[model.Gallery] {
	return crud.NewHandler(db, crud.Config[model.Gallery]{
		Resource: "galeri",
		Assign: func(c *fiber.Ctx, g *model.Gallery) error {
			g.Category = c.FormValue("category")
			g.Description = c.FormValue("description")
			return nil
		},
		Image: &crud.ImageBinding[model.Gallery]{
			Field: "image",
			Get:   func(g *model.Gallery) string { return g.Image },
			Set:   func(g *model.Gallery, f string) { g.Image = f },
		},
	}, images, hub)
}
