package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/controllers"
	"github.com/campusbridge/placement-portal/src/middleware"
)

// StudentRoutes sets up student profile, follow and hiring routes
func StudentRoutes(app *fiber.App) {
	student := app.Group("/api/v1/students", middleware.ProtectRoute)

	student.Get("/:studentId", controllers.GetStudentProfile)
	student.Post("/:studentId/request-follow", controllers.RequestFollow)
	student.Post("/:studentId/follow", controllers.ToggleFollow)
	student.Get("/:studentId/recruiter-view", middleware.RequireApprovedRecruiter, controllers.ViewStudentProfile)
	student.Post("/:studentId/save", middleware.RequireApprovedRecruiter, controllers.ToggleSaveStudent)
	student.Post("/:studentId/hire", middleware.RequireApprovedRecruiter, controllers.InitiateHiring)

	followRequests := app.Group("/api/v1/follow-requests", middleware.ProtectRoute)
	followRequests.Post("/:requestId", controllers.ResolveFollowRequest)
}
