package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campusbridge/placement-portal/src/models"
)

// setupTestDB opens a fresh in-memory database per test. The uuid in the DSN
// keeps shared-cache connections of one test from leaking into another.
func setupTestDB(t *testing.T) *gorm.DB {
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

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createAdmin(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "not-a-real-hash",
		IsAdmin:  true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createStudent(t *testing.T, db *gorm.DB, username string) (models.User, models.StudentProfile) {
	t.Helper()

	user := createUser(t, db, username)
	student := models.StudentProfile{
		UserID:       user.ID,
		StudentName:  username,
		StudentEmail: username + "@campus.edu",
	}
	require.NoError(t, db.Create(&student).Error)
	return user, student
}

func createRecruiter(t *testing.T, db *gorm.DB, username string) (models.User, models.RecruiterProfile) {
	t.Helper()

	user := createUser(t, db, username)
	recruiter := models.RecruiterProfile{
		UserID:      user.ID,
		CompanyName: username + " Inc",
		Status:      models.RecruiterStatusApproved,
	}
	require.NoError(t, db.Create(&recruiter).Error)
	return user, recruiter
}

func createProject(t *testing.T, db *gorm.DB, student models.StudentProfile, title string) models.Project {
	t.Helper()

	project := models.Project{
		StudentID:  student.ID,
		Title:      title,
		Visibility: models.VisibilityPublic,
	}
	require.NoError(t, db.Create(&project).Error)
	return project
}

func notificationsFor(t *testing.T, db *gorm.DB, studentID uint) []models.Notification {
	t.Helper()

	var notifications []models.Notification
	require.NoError(t, db.Where("recipient_id = ?", studentID).
		Order("id ASC").Find(&notifications).Error)
	return notifications
}
