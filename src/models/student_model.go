package models

import (
	"time"

	"gorm.io/gorm"
)

type StudentProfile struct {
	gorm.Model
	UserID           uint      `json:"user" gorm:"uniqueIndex"`
	StudentName      string    `json:"student_name"`
	StudentContact   string    `json:"student_contact" gorm:"index"`
	StudentEmail     string    `json:"student_email" gorm:"index"`
	StudentAddress   string    `json:"student_address" gorm:"type:text"`
	CourseJoinedDate time.Time `json:"course_joined_date"`
	CourseDetails    string    `json:"course_details" gorm:"type:text"`
	Image            string    `json:"image"`
	Bio              string    `json:"bio" gorm:"type:text"`
	ProfileViews     int       `json:"profile_views" gorm:"default:0"`
	User             User      `json:"-" gorm:"foreignKey:UserID"`
	Projects         []Project `json:"-" gorm:"foreignKey:StudentID"`
}

type StudentDto struct {
	ID            uint   `json:"_id"`
	StudentName   string `json:"student_name"`
	CourseDetails string `json:"course_details"`
	Image         string `json:"image"`
	ProfileViews  int    `json:"profile_views"`
}

func (s *StudentProfile) ToDto() StudentDto {
	return StudentDto{
		ID:            s.ID,
		StudentName:   s.StudentName,
		CourseDetails: s.CourseDetails,
		Image:         s.Image,
		ProfileViews:  s.ProfileViews,
	}
}
