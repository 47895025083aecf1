package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusbridge/placement-portal/src/controllers"
	"github.com/campusbridge/placement-portal/src/middleware"
)

// NotificationRoutes sets up the feed and unread-poll routes
func NotificationRoutes(app *fiber.App) {
	notification := app.Group("/api/v1/notifications", middleware.ProtectRoute)

	notification.Get("/", controllers.GetNotifications)
	notification.Get("/unread", controllers.GetUnreadNotifications)
}
