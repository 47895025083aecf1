package models

import (
	"gorm.io/gorm"
)

type HiringProcess struct {
	gorm.Model
	RecruiterID uint             `json:"recruiter" gorm:"index"`
	StudentID   uint             `json:"student" gorm:"index"`
	JobTitle    string           `json:"job_title"`
	Message     string           `json:"message" gorm:"type:text"`
	Status      HiringStatus     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Recruiter   RecruiterProfile `json:"-" gorm:"foreignKey:RecruiterID"`
	Student     StudentProfile   `json:"-" gorm:"foreignKey:StudentID"`
}

type HiringStatus string

const (
	HiringStatusPending   HiringStatus = "pending"
	HiringStatusAccepted  HiringStatus = "accepted"
	HiringStatusRejected  HiringStatus = "rejected"
	HiringStatusCompleted HiringStatus = "completed"
)
