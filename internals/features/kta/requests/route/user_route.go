package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/constants"
	"ktagkk_backend/internals/features/kta/requests/controller"
	authMiddleware "ktagkk_backend/internals/middlewares/auth"
)

// KtaRequestUserRoutes — lifecycle request oleh DAERAH/PUSAT/ADMIN.
func KtaRequestUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKtaRequestController(db)

	req := r.Group("/kta/requests",
		authMiddleware.OnlyRoles(constants.RoleErrorDaerah("KTA request"), constants.DaerahAndAbove...),
	)

	req.Post("/siki", ctrl.CreateFromSiki)
	req.Post("/manual", ctrl.CreateManual)
	req.Get("/", ctrl.List)
	req.Get("/:id", ctrl.GetByID)
	req.Patch("/:id/documents", ctrl.UpdateDocuments)
	req.Post("/:id/upload-ktp", ctrl.UploadKTP)
	req.Post("/:id/upload-foto", ctrl.UploadFoto)
	req.Post("/:id/refresh", ctrl.RefreshFromSiki)
	req.Delete("/:id", ctrl.Delete)

	req.Post("/:id/submit-approval", ctrl.SubmitForApproval)
	req.Post("/:id/submit-invoicing", ctrl.SubmitForInvoicing)

	// review daerah: role minimal DAERAH sudah terpenuhi di group
	req.Post("/:id/review", ctrl.RegionalReview)
}

// KtaRequestPusatRoutes — approval tingkat pusat.
func KtaRequestPusatRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKtaRequestController(db)

	req := r.Group("/kta/requests",
		authMiddleware.OnlyRoles(constants.RoleErrorPusat("approval KTA"), constants.PusatAndAbove...),
	)

	req.Post("/:id/approve", ctrl.PusatApprove)
	req.Post("/:id/reject", ctrl.Reject)
	req.Post("/:id/ready-to-print", ctrl.MarkReadyToPrint)
}
