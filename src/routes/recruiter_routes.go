package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/controllers"
	"github.com/campusbridge/placement-portal/src/middleware"
)

// RecruiterRoutes sets up the approved-recruiter dashboard routes
func RecruiterRoutes(app *fiber.App) {
	recruiter := app.Group("/api/v1/recruiter", middleware.ProtectRoute, middleware.RequireApprovedRecruiter)

	recruiter.Get("/home", controllers.GetRecruiterHome)
	recruiter.Get("/talent", controllers.BrowseTalent)
	recruiter.Get("/saved-profiles", controllers.GetSavedProfiles)
}
