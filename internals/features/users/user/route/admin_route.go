package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/constants"
	"ktagkk_backend/internals/features/users/user/controller"
	authMiddleware "ktagkk_backend/internals/middlewares/auth"
)

// UserAdminRoutes — manajemen akun, ADMIN only.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := r.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen user"), constants.AdminOnly...),
	)

	users.Post("/", ctrl.Create)
	users.Get("/", ctrl.List)
	users.Patch("/:id", ctrl.Update)
}
