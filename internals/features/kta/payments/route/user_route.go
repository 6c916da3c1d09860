package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/constants"
	"ktagkk_backend/internals/features/kta/payments/controller"
	authMiddleware "ktagkk_backend/internals/middlewares/auth"
)

// BulkPaymentUserRoutes — pembuatan invoice + upload bukti oleh region.
func BulkPaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBulkPaymentController(db)

	inv := r.Group("/kta/payments/invoices",
		authMiddleware.OnlyRoles(constants.RoleErrorDaerah("invoice KTA"), constants.DaerahAndAbove...),
	)

	inv.Post("/", ctrl.CreateInvoice)
	inv.Get("/", ctrl.List)
	inv.Get("/:id", ctrl.GetByID)
	inv.Post("/:id/proof", ctrl.UploadProof)
}

// BulkPaymentPusatRoutes — verifikasi pembayaran nasional.
func BulkPaymentPusatRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBulkPaymentController(db)

	inv := r.Group("/kta/payments/invoices",
		authMiddleware.OnlyRoles(constants.RoleErrorPusat("verifikasi pembayaran"), constants.PusatAndAbove...),
	)

	inv.Post("/:id/verify", ctrl.Verify)
	inv.Post("/:id/reject", ctrl.Reject)
}
