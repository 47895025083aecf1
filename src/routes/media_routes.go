package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/controllers"
	"github.com/campusbridge/placement-portal/src/middleware"
)

// MediaRoutes sets up upload (authenticated) and public fetch routes for
// stored images
func MediaRoutes(app *fiber.App) {
	app.Post("/api/v1/media/upload", middleware.ProtectRoute, controllers.UploadMedia)
	app.Get("/media/:id", controllers.GetMedia)
}
