package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/controllers"
	"github.com/campusbridge/placement-portal/src/middleware"
)

// AuthRoutes sets up registration, login, logout and current-user routes
func AuthRoutes(app *fiber.App) {
	auth := app.Group("/api/v1/auth")

	auth.Post("/register-student", controllers.RegisterStudent)
	auth.Post("/register-recruiter", controllers.RegisterRecruiter)
	auth.Post("/login", controllers.Login)
	auth.Post("/logout", controllers.Logout)
	auth.Get("/me", middleware.ProtectRoute, controllers.GetCurrentUser)
}
