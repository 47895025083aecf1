package controllers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
)

// setupControllerDB points the global handle at a fresh in-memory database.
// The uuid in the DSN keeps shared-cache connections of one test from leaking
// into another.
func setupControllerDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.RecruiterProfile{},
		&models.Project{},
		&models.ProjectView{},
		&models.ProjectLike{},
		&models.StudentFollow{},
		&models.HiringProcess{},
		&models.Notification{},
	))

	lib.DB = db
}
