package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/routes"
)

// clientOrigins returns the allowed CORS origins. AllowCredentials forbids a
// wildcard origin, so an unset CLIENT_URL falls back to the local frontend
// dev server instead of the fiber default.
func clientOrigins() string {
	if url := os.Getenv("CLIENT_URL"); url != "" {
		return url
	}
	return "http://localhost:5173"
}

func main() {
	if err := godotenv.Load(); err != nil {
		lib.Log.Info("no .env file found, using environment")
	}
	lib.InitLogger()

	lib.ConnectDB()
	lib.AutoMigrate()
	lib.ConnectMedia()

	app := fiber.New(fiber.Config{
		AppName: "placement-portal",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     clientOrigins(),
		AllowCredentials: true,
	}))

	routes.AuthRoutes(app)
	routes.StudentRoutes(app)
	routes.ProjectRoutes(app)
	routes.RecruiterRoutes(app)
	routes.NotificationRoutes(app)
	routes.AdminRoutes(app)
	routes.MediaRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lib.Log.WithField("port", port).Info("placement portal listening")
	if err := app.Listen(":" + port); err != nil {
		lib.Log.WithError(err).Fatal("server stopped")
	}
}
