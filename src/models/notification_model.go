package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Notification is immutable except for the read flag, which is flipped in
// bulk when the recipient fetches their feed.
type Notification struct {
	ID              uint             `json:"_id" gorm:"primarykey"`
	RecipientID     uint             `json:"recipient" gorm:"index"`
	SenderID        uint             `json:"sender"`
	Type            NotificationType `json:"type" gorm:"type:varchar(20)"`
	ProjectID       *uint            `json:"project,omitempty"`
	HiringProcessID *uint            `json:"hiring_process,omitempty"`
	Data            string           `json:"data,omitempty" gorm:"type:text"`
	IsRead          bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt       time.Time        `json:"created_at"`
	Recipient       StudentProfile   `json:"-" gorm:"foreignKey:RecipientID"`
	Sender          User             `json:"-" gorm:"foreignKey:SenderID"`
	Project         *Project         `json:"-" gorm:"foreignKey:ProjectID"`
	HiringProcess   *HiringProcess   `json:"-" gorm:"foreignKey:HiringProcessID"`
}

type NotificationType string

const (
	NotificationTypeLike           NotificationType = "like"
	NotificationTypeFollow         NotificationType = "follow"
	NotificationTypeFollowAccepted NotificationType = "follow_accepted"
	NotificationTypeHire           NotificationType = "hire"
)

// Notification payloads form a tagged union over the notification kinds.
// Follow and like notifications carry no extra data; hire notifications
// carry the job title and message of the originating request.
type HirePayload struct {
	JobTitle string `json:"job_title"`
	Message  string `json:"message"`
}

type FollowPayload struct{}

type LikePayload struct{}

// EncodePayload serializes a payload for storage in the Data column.
func EncodePayload(payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ParsedData decodes the stored payload into structured data. It returns the
// raw string and false when the payload is absent or not valid JSON, so
// legacy free-text payloads still surface as-is.
func (n *Notification) ParsedData() (any, bool) {
	if n.Data == "" {
		return nil, false
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(n.Data), &decoded); err != nil {
		return n.Data, false
	}
	return decoded, true
}

// DisplayData renders the payload for human consumption. Payloads carrying a
// job title become the two-line hire summary; anything else is returned
// unchanged.
func (n *Notification) DisplayData() string {
	decoded, ok := n.ParsedData()
	if !ok {
		return n.Data
	}
	fields, ok := decoded.(map[string]any)
	if !ok {
		return n.Data
	}
	jobTitle, ok := fields["job_title"].(string)
	if !ok {
		return n.Data
	}
	display := fmt.Sprintf("Job Title: %s", jobTitle)
	if message, ok := fields["message"].(string); ok {
		display += fmt.Sprintf("\nMessage: %s", message)
	}
	return display
}
