package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Project struct {
	gorm.Model
	StudentID      uint           `json:"student" gorm:"index"`
	Title          string         `json:"title"`
	Description    string         `json:"description" gorm:"type:text"`
	Category       string         `json:"category" gorm:"default:'Other'"`
	Tags           string         `json:"tags"`
	Visibility     string         `json:"visibility" gorm:"type:varchar(20);default:'Public'"`
	AllowDownloads bool           `json:"allow_downloads" gorm:"default:false"`
	OutputLink     string         `json:"output_link"`
	ProjectLink    string         `json:"project_link"`
	Screenshot     string         `json:"screenshot"`
	Student        StudentProfile `json:"-" gorm:"foreignKey:StudentID"`
}

const (
	VisibilityPublic  = "Public"
	VisibilityPrivate = "Private"
)

// TagList splits the stored comma-separated tags into trimmed entries.
func (p *Project) TagList() []string {
	if p.Tags == "" {
		return []string{}
	}
	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ProjectView records that a user viewed a project. Append-only: one row
// per (project, user) pair, enforced by the composite unique index.
type ProjectView struct {
	ID        uint      `json:"_id" gorm:"primarykey"`
	ProjectID uint      `json:"project" gorm:"uniqueIndex:idx_project_view_once"`
	UserID    uint      `json:"user" gorm:"uniqueIndex:idx_project_view_once"`
	ViewedAt  time.Time `json:"viewed_at" gorm:"autoCreateTime"`
}

// ProjectLike records a like for a project. Unlike ProjectView this table is
// toggled: the row is hard-deleted when the user retracts the like.
type ProjectLike struct {
	ID        uint      `json:"_id" gorm:"primarykey"`
	ProjectID uint      `json:"project" gorm:"uniqueIndex:idx_project_like_once"`
	UserID    uint      `json:"user" gorm:"uniqueIndex:idx_project_like_once"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectDto struct {
	ID             uint      `json:"_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	Visibility     string    `json:"visibility"`
	AllowDownloads bool      `json:"allow_downloads"`
	OutputLink     string    `json:"output_link,omitempty"`
	ProjectLink    string    `json:"project_link,omitempty"`
	Screenshot     string    `json:"screenshot,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (p *Project) ToDto() ProjectDto {
	return ProjectDto{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		Tags:           p.TagList(),
		Visibility:     p.Visibility,
		AllowDownloads: p.AllowDownloads,
		OutputLink:     p.OutputLink,
		ProjectLink:    p.ProjectLink,
		Screenshot:     p.Screenshot,
		CreatedAt:      p.CreatedAt,
	}
}
