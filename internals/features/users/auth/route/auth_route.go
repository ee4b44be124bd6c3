package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "edulink_backend/internals/features/users/auth/controller"
	authMiddleware "edulink_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := authController.NewAuthController(db)

	grp := app.Group("/api/auth")
	{
		grp.Post("/register", h.Register)
		grp.Post("/login", h.Login)
		grp.Post("/login-google", h.LoginGoogle)
		grp.Post("/refresh-token", h.RefreshToken)
	}

	authed := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	{
		authed.Post("/logout", h.Logout)
		authed.Get("/me", h.Me)
		authed.Post("/me/refresh", h.RefreshContext)
	}
}
