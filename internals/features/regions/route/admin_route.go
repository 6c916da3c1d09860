package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/constants"
	regionController "ktagkk_backend/internals/features/regions/controller"
	authMw "ktagkk_backend/internals/middlewares/auth"
)

// RegionAdminRoutes: CRUD region + harga tahunan, khusus ADMIN.
func RegionAdminRoutes(r fiber.Router, db *gorm.DB) {
	regionCtrl := regionController.NewRegionController(db)
	priceCtrl := regionController.NewRegionPriceController(db)

	grp := r.Group("/regions",
		authMw.OnlyRoles(constants.RoleErrorAdmin("kelola region"), constants.AdminOnly...),
	)
	grp.Post("/", regionCtrl.Create)
	grp.Get("/", regionCtrl.List)
	grp.Get("/:id", regionCtrl.GetByID)
	grp.Patch("/:id", regionCtrl.Update)

	grp.Post("/prices", priceCtrl.Upsert)
	grp.Get("/:id/prices", priceCtrl.ListByRegion)
}
