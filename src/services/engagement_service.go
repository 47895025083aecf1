package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusbridge/placement-portal/src/models"
)

// RecordView registers that viewer opened the project. Views are idempotent
// per (project, user): repeat visits insert nothing. Administrators and the
// project owner are never counted. The current total is returned on every
// path, including the no-op ones.
func RecordView(db *gorm.DB, viewer models.User, projectID uint) (int64, error) {
	var project models.Project
	err := db.Preload("Student").First(&project, projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	if !viewer.IsAdmin && viewer.ID != project.Student.UserID {
		view := models.ProjectView{
			ProjectID: project.ID,
			UserID:    viewer.ID,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&view).Error
		if err != nil {
			return 0, err
		}
	}

	return ViewCount(db, project.ID)
}

// ToggleLike flips the like state for (project, user) and returns the new
// state plus the updated like count. No notification is emitted on either
// direction.
func ToggleLike(db *gorm.DB, user models.User, projectID uint) (bool, int64, error) {
	var project models.Project
	if err := db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, ErrNotFound
		}
		return false, 0, err
	}

	like := models.ProjectLike{
		ProjectID: project.ID,
		UserID:    user.ID,
	}

	// Insert-if-absent decides the toggle direction atomically: a no-op
	// insert means the like existed, so this call retracts it.
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&like)
	if result.Error != nil {
		return false, 0, result.Error
	}

	liked := result.RowsAffected > 0
	if !liked {
		err := db.Where("project_id = ? AND user_id = ?", project.ID, user.ID).
			Delete(&models.ProjectLike{}).Error
		if err != nil {
			return false, 0, err
		}
	}

	count, err := LikeCount(db, project.ID)
	return liked, count, err
}

// ViewCount returns the total view count of a project.
func ViewCount(db *gorm.DB, projectID uint) (int64, error) {
	var count int64
	err := db.Model(&models.ProjectView{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// LikeCount returns the total like count of a project.
func LikeCount(db *gorm.DB, projectID uint) (int64, error) {
	var count int64
	err := db.Model(&models.ProjectLike{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// IncrementProfileViews bumps a student's profile-view counter for any
// non-owner, non-admin viewer. The increment runs in SQL so concurrent
// viewers cannot lose updates.
func IncrementProfileViews(db *gorm.DB, viewer models.User, student *models.StudentProfile) error {
	if viewer.IsAdmin || viewer.ID == student.UserID {
		return nil
	}

	err := db.Model(&models.StudentProfile{}).Where("id = ?", student.ID).
		UpdateColumn("profile_views", gorm.Expr("profile_views + ?", 1)).Error
	if err != nil {
		return err
	}

	student.ProfileViews++
	return nil
}
