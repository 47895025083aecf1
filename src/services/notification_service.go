package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/campusbridge/placement-portal/src/lib"
	"github.com/campusbridge/placement-portal/src/models"
)

// Emit inserts a notification row. There is no de-duplication: repeated
// triggering events produce additional rows.
func Emit(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

// emitOrLog is used where a failed notification must not fail the primary
// state change.
func emitOrLog(db *gorm.DB, notification *models.Notification) {
	if err := Emit(db, notification); err != nil {
		lib.Log.WithError(err).WithField("type", notification.Type).
			Error("failed to create notification")
	}
}

// ProjectRef summarizes the project a notification points at.
type ProjectRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// HiringRef summarizes the hiring process a notification points at.
type HiringRef struct {
	ID       uint   `json:"id"`
	JobTitle string `json:"job_title"`
	Message  string `json:"message"`
}

// UnreadNotification is the polling view of a single unread notification,
// with sender and references resolved for client convenience.
type UnreadNotification struct {
	ID        uint                    `json:"id"`
	Type      models.NotificationType `json:"type"`
	Sender    string                  `json:"sender"`
	CreatedAt time.Time               `json:"created_at"`
	IsRead    bool                    `json:"is_read"`
	Project   *ProjectRef             `json:"project,omitempty"`
	Hiring    *HiringRef              `json:"hiring,omitempty"`
	Data      any                     `json:"data,omitempty"`
}

// ListUnread returns up to limit unread notifications for the student,
// newest first, plus the total unread count. Nothing is marked read.
func ListUnread(db *gorm.DB, student models.StudentProfile, limit int) ([]UnreadNotification, int64, error) {
	var unreadCount int64
	err := db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", student.ID, false).
		Count(&unreadCount).Error
	if err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err = db.Preload("Sender").Preload("Project").Preload("HiringProcess").
		Where("recipient_id = ? AND is_read = ?", student.ID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	items := make([]UnreadNotification, 0, len(notifications))
	for _, notification := range notifications {
		item := UnreadNotification{
			ID:        notification.ID,
			Type:      notification.Type,
			Sender:    notification.Sender.Username,
			CreatedAt: notification.CreatedAt,
			IsRead:    notification.IsRead,
		}
		if notification.Project != nil {
			item.Project = &ProjectRef{ID: notification.Project.ID, Title: notification.Project.Title}
		}
		if notification.HiringProcess != nil {
			item.Hiring = &HiringRef{
				ID:       notification.HiringProcess.ID,
				JobTitle: notification.HiringProcess.JobTitle,
				Message:  notification.HiringProcess.Message,
			}
		}
		if notification.Data != "" {
			if parsed, ok := notification.ParsedData(); ok {
				item.Data = parsed
			} else {
				item.Data = notification.Data
			}
		}
		items = append(items, item)
	}

	return items, unreadCount, nil
}

// FeedItem is the full-feed view of a notification. Data holds the
// human-readable form of the stored payload.
type FeedItem struct {
	ID        uint                    `json:"id"`
	Type      models.NotificationType `json:"type"`
	Sender    string                  `json:"sender"`
	Data      string                  `json:"data,omitempty"`
	IsRead    bool                    `json:"is_read"`
	CreatedAt time.Time               `json:"created_at"`
	Project   *ProjectRef             `json:"project,omitempty"`
	Hiring    *HiringRef              `json:"hiring,omitempty"`
}

// FetchFeed returns every notification for the student, newest first, and
// then marks all currently-unread ones as read in one bulk update. The
// returned items carry the read flags from before that update.
func FetchFeed(db *gorm.DB, student models.StudentProfile) ([]FeedItem, error) {
	var notifications []models.Notification
	err := db.Preload("Sender").Preload("Project").Preload("HiringProcess").
		Where("recipient_id = ?", student.ID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(notifications))
	for _, notification := range notifications {
		item := FeedItem{
			ID:        notification.ID,
			Type:      notification.Type,
			Sender:    notification.Sender.Username,
			Data:      notification.DisplayData(),
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		}
		if notification.Project != nil {
			item.Project = &ProjectRef{ID: notification.Project.ID, Title: notification.Project.Title}
		}
		if notification.HiringProcess != nil {
			item.Hiring = &HiringRef{
				ID:       notification.HiringProcess.ID,
				JobTitle: notification.HiringProcess.JobTitle,
				Message:  notification.HiringProcess.Message,
			}
		}
		items = append(items, item)
	}

	// Bulk mark-read after the listing snapshot is taken.
	err = db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", student.ID, false).
		Update("is_read", true).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

// UnreadCount returns the number of unread notifications for the student.
func UnreadCount(db *gorm.DB, student models.StudentProfile) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", student.ID, false).
		Count(&count).Error
	return count, err
}
