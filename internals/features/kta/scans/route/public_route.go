package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/features/kta/scans/controller"
	"ktagkk_backend/internals/middlewares"
)

// KtaVerifyPublicRoutes — endpoint scan QR, tanpa auth, di-rate-limit.
func KtaVerifyPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewVerifyController(db)
	r.Get("/kta/verify/:id_izin", middlewares.VerifyRateLimiter(), ctrl.VerifyByIDIzin)
}
