package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/controllers"
	"github.com/campusbridge/placement-portal/src/middleware"
)

// ProjectRoutes sets up project CRUD, engagement and hire-request routes
func ProjectRoutes(app *fiber.App) {
	project := app.Group("/api/v1/projects", middleware.ProtectRoute)

	project.Get("/browse", middleware.RequireApprovedRecruiter, controllers.BrowseProjects)
	project.Get("/mine", middleware.RequireStudentProfile, controllers.GetMyProjects)
	project.Post("/record-view", controllers.RecordProjectView)
	project.Post("/", middleware.RequireStudentProfile, controllers.CreateProject)
	project.Get("/:projectId", controllers.GetProjectDetails)
	project.Put("/:projectId", middleware.RequireStudentProfile, controllers.EditProject)
	project.Delete("/:projectId", middleware.RequireStudentProfile, controllers.DeleteProject)
	project.Post("/:projectId/like", controllers.ToggleProjectLike)
	project.Post("/:projectId/hire", controllers.SendProjectHireRequest)
}
