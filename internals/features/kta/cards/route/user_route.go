package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/constants"
	"ktagkk_backend/internals/features/kta/cards/controller"
	authMiddleware "ktagkk_backend/internals/middlewares/auth"
)

// CardRoutes — cetak kartu + export massal.
func CardRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCardController(db)

	cards := r.Group("/kta/cards",
		authMiddleware.OnlyRoles(constants.RoleErrorDaerah("cetak kartu"), constants.DaerahAndAbove...),
	)

	cards.Post("/:id/print", ctrl.Print)
	cards.Post("/export", ctrl.BulkExport)
}
