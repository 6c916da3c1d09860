package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "ktagkk_backend/internals/features/users/auth/route"
	userRoute "ktagkk_backend/internals/features/users/user/route"
)

func AuthRoutes(public fiber.Router, protected fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(public, protected, db)
}

func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
}
