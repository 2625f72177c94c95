package models

import "time"

// Skill is a single skill entry with a self-assessed level from 1 to 5.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Project is a single project entry on a portfolio.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	URL         string   `json:"url,omitempty"`
}

// Portfolio represents a generated portfolio page's data.
// Records are immutable once created; there is no update path.
type Portfolio struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name           string    `json:"name"`
	University     string    `json:"university"`
	Year           string    `json:"year"`
	GraduationYear string    `json:"graduation_year"`
	SelfIntro      string    `json:"self_intro"`
	Skills         []Skill   `json:"skills" gorm:"serializer:json"`
	Title          string    `json:"title"`
	Achievements   string    `json:"achievements"`
	Certifications string    `json:"certifications"`
	Projects       []Project `json:"projects" gorm:"serializer:json"`
	ContactEmail   string    `json:"contact_email"`
	SNSLinks       []string  `json:"sns_links" gorm:"serializer:json"`
	ContactGithub  string    `json:"contact_github"`
	IconPath       string    `json:"icon_path,omitempty"`
	Template       string    `json:"template"`
	CreatedAt      time.Time `json:"created_at"`
}
