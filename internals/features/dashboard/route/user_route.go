package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/constants"
	"ktagkk_backend/internals/features/dashboard/controller"
	authMiddleware "ktagkk_backend/internals/middlewares/auth"
)

// DashboardRoutes — agregasi revenue + ringkasan status.
func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	dash := r.Group("/dashboard",
		authMiddleware.OnlyRoles(constants.RoleErrorDaerah("dashboard"), constants.DaerahAndAbove...),
	)

	dash.Get("/revenue", ctrl.Revenue)
	dash.Get("/summary", ctrl.Summary)
}
