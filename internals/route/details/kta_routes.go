package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cardRoute "ktagkk_backend/internals/features/kta/cards/route"
	paymentRoute "ktagkk_backend/internals/features/kta/payments/route"
	requestRoute "ktagkk_backend/internals/features/kta/requests/route"
	scanRoute "ktagkk_backend/internals/features/kta/scans/route"
)

// Verifikasi QR — tanpa login.
func KtaPublicRoutes(r fiber.Router, db *gorm.DB) {
	scanRoute.KtaVerifyPublicRoutes(r, db)
}

// Lifecycle request + invoice + cetak — semua role login.
func KtaUserRoutes(r fiber.Router, db *gorm.DB) {
	requestRoute.KtaRequestUserRoutes(r, db)
	paymentRoute.BulkPaymentUserRoutes(r, db)
	cardRoute.CardRoutes(r, db)
}

// Approval & verifikasi pembayaran — PUSAT/ADMIN.
func KtaPusatRoutes(r fiber.Router, db *gorm.DB) {
	requestRoute.KtaRequestPusatRoutes(r, db)
	paymentRoute.BulkPaymentPusatRoutes(r, db)
}
