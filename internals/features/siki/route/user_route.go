package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/features/siki/controller"
)

// SikiRoutes — lookup klasifikasi, semua role login boleh baca.
func SikiRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassificationController(db)
	r.Get("/siki/classifications", ctrl.List)
}
