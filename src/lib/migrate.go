package lib

import (
	"github.com/campusbridge/placement-portal/src/models"
)

// AutoMigrate runs all database migrations
func AutoMigrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.RecruiterProfile{},
		&models.Project{},
		&models.ProjectView{},
		&models.ProjectLike{},
		&models.StudentFollow{},
		&models.HiringProcess{},
		&models.Notification{},
	)

	if err != nil {
		Log.Fatalf("Failed to migrate database: %v", err)
	}

	Log.Info("Database migration completed!")
}
