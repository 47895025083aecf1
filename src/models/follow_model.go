package models

import (
	"time"
)

// StudentFollow is a directed edge from a follower user to a followed student
// profile. The composite unique index keeps at most one edge per pair; the
// edge is hard-deleted on unfollow so the pair can be recreated later.
type StudentFollow struct {
	ID          uint           `json:"_id" gorm:"primarykey"`
	FollowerID  uint           `json:"follower" gorm:"uniqueIndex:idx_follow_edge"`
	FollowingID uint           `json:"following" gorm:"uniqueIndex:idx_follow_edge"`
	Status      FollowStatus   `json:"status" gorm:"type:varchar(10);default:'pending'"`
	CreatedAt   time.Time      `json:"created_at"`
	Follower    User           `json:"-" gorm:"foreignKey:FollowerID"`
	Following   StudentProfile `json:"-" gorm:"foreignKey:FollowingID"`
}

type FollowStatus string

const (
	FollowStatusPending  FollowStatus = "pending"
	FollowStatusAccepted FollowStatus = "accepted"
	FollowStatusRejected FollowStatus = "rejected"
)
