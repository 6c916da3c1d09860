package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "ktagkk_backend/internals/features/dashboard/route"
	regionRoute "ktagkk_backend/internals/features/regions/route"
	sikiRoute "ktagkk_backend/internals/features/siki/route"
)

// Master data region + harga tahunan — ADMIN.
func RegionAdminRoutes(r fiber.Router, db *gorm.DB) {
	regionRoute.RegionAdminRoutes(r, db)
}

func SikiUserRoutes(r fiber.Router, db *gorm.DB) {
	sikiRoute.SikiRoutes(r, db)
}

func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardRoutes(r, db)
}
