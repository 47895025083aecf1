package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"uniqueIndex"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	IsAdmin  bool   `json:"is_admin" gorm:"default:false"`
}

// MarshalJSON customizes serialization so the ID is exposed as _id
func (u User) MarshalJSON() ([]byte, error) {
	type Alias User
	return json.Marshal(&struct {
		ID uint `json:"_id"`
		*Alias
	}{
		ID:    u.ID,
		Alias: (*Alias)(&u),
	})
}

// GetStudentProfile returns the user's student profile, or gorm.ErrRecordNotFound
// when the user is a recruiter or an administrator.
func (u *User) GetStudentProfile(db *gorm.DB) (*StudentProfile, error) {
	var profile StudentProfile
	if err := db.Where("user_id = ?", u.ID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetRecruiterProfile returns the user's recruiter profile, or gorm.ErrRecordNotFound
// when the user has none.
func (u *User) GetRecruiterProfile(db *gorm.DB) (*RecruiterProfile, error) {
	var profile RecruiterProfile
	if err := db.Where("user_id = ?", u.ID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

type UserDto struct {
	ID       uint   `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}
