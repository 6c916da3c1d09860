package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktagkk_backend/internals/features/users/auth/controller"
	"ktagkk_backend/internals/middlewares"
)

// AuthRoutes — login publik (rate-limited), logout/me butuh token.
func AuthRoutes(public fiber.Router, protected fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	public.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)

	protected.Post("/auth/logout", ctrl.Logout)
	protected.Get("/auth/me", ctrl.Me)
}
