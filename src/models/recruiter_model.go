package models

import (
	"gorm.io/gorm"
)

type RecruiterProfile struct {
	gorm.Model
	UserID             uint             `json:"user" gorm:"uniqueIndex"`
	CompanyName        string           `json:"company_name"`
	CompanyLinkedin    string           `json:"company_linkedin"`
	CompanyLogo        string           `json:"company_logo"`
	CompanyAddress     string           `json:"company_address" gorm:"type:text"`
	ContactPerson      string           `json:"contact_person"`
	PhoneNumber        string           `json:"phone_number"`
	Email              string           `json:"email"`
	PaymentStatus      string           `json:"payment_status" gorm:"default:'pending'"`
	PaymentID          string           `json:"payment_id"`
	PaymentAmount      float64          `json:"payment_amount" gorm:"default:999.00"`
	Status             RecruiterStatus  `json:"status" gorm:"type:varchar(20);default:'pending'"`
	ProfileViews       int              `json:"profile_views" gorm:"default:0"`
	MessagesCount      int              `json:"messages_count" gorm:"default:0"`
	HiringProcessCount int              `json:"hiring_process_count" gorm:"default:0"`
	SavedStudents      []StudentProfile `json:"-" gorm:"many2many:recruiter_saved_students"`
	User               User             `json:"-" gorm:"foreignKey:UserID"`
}

type RecruiterStatus string

const (
	RecruiterStatusPending  RecruiterStatus = "pending"
	RecruiterStatusApproved RecruiterStatus = "approved"
)

// IsApproved reports whether the recruiter passed admin review and may
// browse students or initiate hiring.
func (r *RecruiterProfile) IsApproved() bool {
	return r.Status == RecruiterStatusApproved
}
