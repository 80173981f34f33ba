package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-tursina-admin/internal/handler"
	"go-tursina-admin/internal/middleware"
	"go-tursina-admin/internal/model"
	"go-tursina-admin/internal/repository"
	"go-tursina-admin/internal/service"
	"go-tursina-admin/internal/storage"
	"go-tursina-admin/internal/ws"
	"go-tursina-admin/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(
		&model.Menu{}, &model.Promo{}, &model.Outlet{}, &model.Career{},
		&model.Gallery{}, &model.User{}, &model.Member{}, &model.PointTransaction{},
	)

	// 3. Seed default superadmin
	seedSuperadmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Image storage (served statically below)
	imageDir := os.Getenv("IMAGE_DIR")
	if imageDir == "" {
		imageDir = "./storage/images"
	}
	images := storage.NewImageStore(imageDir)

	// 6. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	memberRepo := repository.NewMemberRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	memberService := service.NewMemberService(memberRepo, db, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	memberHandler := handler.NewMemberHandler(memberService)

	menuCRUD := handler.NewMenuCRUD(db, images, wsHub)
	promoCRUD := handler.NewPromoCRUD(db, images, wsHub)
	outletCRUD := handler.NewOutletCRUD(db, images, wsHub)
	careerCRUD := handler.NewCareerCRUD(db, images, wsHub)
	galleryCRUD := handler.NewGalleryCRUD(db, images, wsHub)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Tursina Admin API v1.0",
		BodyLimit: 8 * 1024 * 1024, // multipart uploads, image guard is 5MB
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Static image assets: /images/{resource}/{filename}
	app.Static("/images", images.Root())

	// 8. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))
	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", authHandler.ChangePassword)

	// Content resources (Admin & Superadmin)
	content := protected.Group("", middleware.RequireRole(model.RoleAdmin, model.RoleSuperadmin))
	menuCRUD.Register(content.Group("/menu"))
	promoCRUD.Register(content.Group("/promo"))
	outletCRUD.Register(content.Group("/outlet"))
	careerCRUD.Register(content.Group("/karir"))
	galleryCRUD.Register(content.Group("/galeri"))

	// User management (Superadmin only)
	users := protected.Group("/user", middleware.RequireRole(model.RoleSuperadmin))
	users.Get("/", userHandler.GetUsers)
	users.Post("/", userHandler.CreateUser)
	users.Put("/:id", userHandler.UpdateUser)
	users.Put("/:id/status", userHandler.UpdateStatus)
	users.Delete("/:id", userHandler.DeleteUser)

	// Membership (all roles, including the Membership counter account)
	protected.Get("/member", memberHandler.GetMembers)
	protected.Post("/member", memberHandler.CreateMember)
	protected.Put("/member/:id", memberHandler.UpdateMember)
	protected.Delete("/member/:id", memberHandler.DeleteMember)

	// Points sub-ledger
	protected.Post("/members/:id/add-points", memberHandler.AddPoints)
	protected.Post("/members/:id/redeem-points", memberHandler.RedeemPoints)
	protected.Post("/members/:id/reset-points", memberHandler.ResetPoints)
	protected.Get("/members/:id/points-history", memberHandler.PointsHistory)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedSuperadmin creates the default superadmin account if it doesn't exist
func seedSuperadmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@tursina.id"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	admin := &model.User{
		Name:   "Superadmin",
		Email:  email,
		Role:   model.RoleSuperadmin,
		Status: model.StatusActive,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = service.DefaultPassword
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create superadmin: %v", err)
	} else {
		log.Printf("Superadmin created: %s", email)
	}
}
