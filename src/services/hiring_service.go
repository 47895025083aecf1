package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campusbridge/placement-portal/src/models"
)

// InitiateHiring opens a hiring process from a recruiter towards a student,
// bumps the recruiter's hiring counter atomically and notifies the student
// with a hire payload carrying the job title and message.
func InitiateHiring(db *gorm.DB, recruiter *models.RecruiterProfile, actor models.User, studentID uint, jobTitle, message string) (*models.HiringProcess, int, error) {
	var student models.StudentProfile
	if err := db.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	if student.UserID == actor.ID {
		return nil, 0, ErrSelfAction
	}

	if jobTitle == "" {
		return nil, 0, &ValidationError{Field: "job_title", Message: "is required"}
	}

	process := models.HiringProcess{
		RecruiterID: recruiter.ID,
		StudentID:   student.ID,
		JobTitle:    jobTitle,
		Message:     message,
		Status:      models.HiringStatusPending,
	}
	if err := db.Create(&process).Error; err != nil {
		return nil, 0, err
	}

	err := db.Model(&models.RecruiterProfile{}).Where("id = ?", recruiter.ID).
		UpdateColumn("hiring_process_count", gorm.Expr("hiring_process_count + ?", 1)).Error
	if err != nil {
		return nil, 0, err
	}

	var refreshed models.RecruiterProfile
	if err := db.First(&refreshed, recruiter.ID).Error; err != nil {
		return nil, 0, err
	}
	recruiter.HiringProcessCount = refreshed.HiringProcessCount

	data, err := models.EncodePayload(models.HirePayload{
		JobTitle: process.JobTitle,
		Message:  process.Message,
	})
	if err != nil {
		return nil, 0, err
	}

	processID := process.ID
	emitOrLog(db, &models.Notification{
		RecipientID:     student.ID,
		SenderID:        actor.ID,
		Type:            models.NotificationTypeHire,
		HiringProcessID: &processID,
		Data:            data,
	})

	return &process, refreshed.HiringProcessCount, nil
}

// SendProjectHireRequest emits a hire notification tied to a specific
// project, without opening a hiring process. Returns the name of the project
// owner for the confirmation message.
func SendProjectHireRequest(db *gorm.DB, actor models.User, projectID uint) (string, error) {
	var project models.Project
	err := db.Preload("Student").First(&project, projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	if project.Student.UserID == actor.ID {
		return "", ErrSelfAction
	}

	ref := project.ID
	emitOrLog(db, &models.Notification{
		RecipientID: project.StudentID,
		SenderID:    actor.ID,
		Type:        models.NotificationTypeHire,
		ProjectID:   &ref,
	})

	return project.Student.StudentName, nil
}
