package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/controllers"
	"github.com/campusbridge/placement-portal/src/middleware"
)

// AdminRoutes sets up recruiter moderation routes for administrators
func AdminRoutes(app *fiber.App) {
	admin := app.Group("/api/v1/admin", middleware.ProtectRoute, middleware.RequireAdmin)

	admin.Get("/recruiters/pending", controllers.GetPendingRecruiters)
	admin.Put("/recruiters/:recruiterId/approve", controllers.ApproveRecruiter)
}
