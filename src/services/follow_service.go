package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
)

// FollowResult reports the edge status after a follow request.
type FollowResult struct {
	Status  models.FollowStatus
	Created bool
}

// RequestFollow creates a pending follow edge from follower to the student
// and notifies the student. If an edge already exists (whatever its status)
// no duplicate is created and the existing status is reported instead.
func RequestFollow(db *gorm.DB, follower models.User, studentID uint) (FollowResult, error) {
	var student models.StudentProfile
	if err := db.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FollowResult{}, ErrNotFound
		}
		return FollowResult{}, err
	}

	if student.UserID == follower.ID {
		return FollowResult{}, ErrSelfAction
	}

	edge := models.StudentFollow{
		FollowerID:  follower.ID,
		FollowingID: student.ID,
		Status:      models.FollowStatusPending,
	}

	// Conflict-safe: the unique (follower, following) index decides who wins
	// under concurrent identical requests.
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
		DoNothing: true,
	}).Create(&edge)
	if result.Error != nil {
		return FollowResult{}, result.Error
	}

	if result.RowsAffected == 0 {
		// Edge already exists: report its current status, no new row.
		var existing models.StudentFollow
		err := db.Where("follower_id = ? AND following_id = ?", follower.ID, student.ID).
			First(&existing).Error
		if err != nil {
			return FollowResult{}, err
		}
		return FollowResult{Status: existing.Status, Created: false}, nil
	}

	emitOrLog(db, &models.Notification{
		RecipientID: student.ID,
		SenderID:    follower.ID,
		Type:        models.NotificationTypeFollow,
	})

	return FollowResult{Status: models.FollowStatusPending, Created: true}, nil
}

// ResolveFollowRequest accepts or rejects a pending follow request. Only the
// owner of the followed profile may resolve it. Accepting notifies the
// original follower. Returns the updated accepted-follower count.
func ResolveFollowRequest(db *gorm.DB, actor models.User, followID uint, action string) (int64, error) {
	var edge models.StudentFollow
	err := db.Preload("Following").First(&edge, followID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	if edge.Following.UserID != actor.ID {
		return 0, ErrUnauthorized
	}

	if edge.Status != models.FollowStatusPending {
		return 0, ErrAlreadyResolved
	}

	switch action {
	case "accept":
		edge.Status = models.FollowStatusAccepted
	case "reject":
		edge.Status = models.FollowStatusRejected
	default:
		return 0, &ValidationError{Field: "action", Message: "must be accept or reject"}
	}

	if err := db.Model(&models.StudentFollow{}).Where("id = ?", edge.ID).
		Update("status", edge.Status).Error; err != nil {
		return 0, err
	}

	if edge.Status == models.FollowStatusAccepted {
		// The follower only gets a feed entry if they have a student profile
		// of their own; recruiters following students do not.
		var followerProfile models.StudentProfile
		err := db.Where("user_id = ?", edge.FollowerID).First(&followerProfile).Error
		if err == nil {
			emitOrLog(db, &models.Notification{
				RecipientID: followerProfile.ID,
				SenderID:    actor.ID,
				Type:        models.NotificationTypeFollowAccepted,
			})
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		} else {
			lib.Log.WithField("follower_id", edge.FollowerID).
				Debug("follower has no student profile, skipping follow_accepted notification")
		}
	}

	return FollowerCount(db, edge.FollowingID)
}

// ToggleFollow is the unconditional follow toggle used from project pages.
// It bypasses the approve/reject workflow: an existing edge of any status is
// deleted, otherwise a fresh pending edge is created and the student
// notified. Kept deliberately separate from RequestFollow.
func ToggleFollow(db *gorm.DB, follower models.User, studentID uint) (bool, error) {
	var student models.StudentProfile
	if err := db.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	if student.UserID == follower.ID {
		return false, ErrSelfAction
	}

	edge := models.StudentFollow{
		FollowerID:  follower.ID,
		FollowingID: student.ID,
		Status:      models.FollowStatusPending,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
		DoNothing: true,
	}).Create(&edge)
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		// Already following in some state: unfollow.
		err := db.Where("follower_id = ? AND following_id = ?", follower.ID, student.ID).
			Delete(&models.StudentFollow{}).Error
		if err != nil {
			return false, err
		}
		return false, nil
	}

	emitOrLog(db, &models.Notification{
		RecipientID: student.ID,
		SenderID:    follower.ID,
		Type:        models.NotificationTypeFollow,
	})

	return true, nil
}

// FollowerCount returns the number of accepted followers of a student
// profile, computed on demand.
func FollowerCount(db *gorm.DB, studentID uint) (int64, error) {
	var count int64
	err := db.Model(&models.StudentFollow{}).
		Where("following_id = ? AND status = ?", studentID, models.FollowStatusAccepted).
		Count(&count).Error
	return count, err
}

// FollowingCount returns how many students a user follows with an accepted
// edge.
func FollowingCount(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&models.StudentFollow{}).
		Where("follower_id = ? AND status = ?", userID, models.FollowStatusAccepted).
		Count(&count).Error
	return count, err
}

// FollowStatusFor reports the state of the edge from user to student, or
// "none" when no edge exists.
func FollowStatusFor(db *gorm.DB, user models.User, studentID uint) (string, error) {
	var edge models.StudentFollow
	err := db.Where("follower_id = ? AND following_id = ?", user.ID, studentID).
		First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "none", nil
		}
		return "", err
	}
	return string(edge.Status), nil
}
