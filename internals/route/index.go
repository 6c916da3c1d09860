package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "ktagkk_backend/internals/route/details"
	authMiddleware "ktagkk_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT (verifikasi QR, login)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE → semua role login, gate role per-fitur di route masing-masing
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN → login + gate ADMIN di route fitur
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware(db))

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Auth routes...")
	routeDetails.AuthRoutes(public, private, db)

	log.Println("[INFO] Mounting KTA routes...")
	routeDetails.KtaPublicRoutes(public, db)
	routeDetails.KtaUserRoutes(private, db)
	routeDetails.KtaPusatRoutes(private, db)

	log.Println("[INFO] Mounting Master routes...")
	routeDetails.SikiUserRoutes(private, db)
	routeDetails.DashboardRoutes(private, db)
	routeDetails.RegionAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User admin routes...")
	routeDetails.UserAdminRoutes(admin, db)

	BaseRoutes(app)
}
