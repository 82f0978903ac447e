package models

import "time"

type Project struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Title        string    `gorm:"size:191" json:"title"`
	ClientID     string    `gorm:"size:64;index" json:"clientId"`
	Status       string    `gorm:"size:32" json:"status"` // "In Progress" | "Completed" | "On Hold"
	Budget       float64   `json:"budget"`
	StartDate    string    `gorm:"size:32" json:"startDate"`
	Description  string    `json:"description"`
	IsPublic     bool      `json:"isPublic"`
	Technologies []string  `gorm:"serializer:json" json:"technologies"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	RepoURL      string    `json:"repoUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Client struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:191" json:"name"`
	Company   string    `gorm:"size:191" json:"company"`
	Email     string    `gorm:"size:191" json:"email"`
	Phone     string    `gorm:"size:64" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

type Task struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	ProjectID string    `gorm:"size:64;index" json:"projectId"`
	Title     string    `gorm:"size:191" json:"title"`
	Status    string    `gorm:"size:32" json:"status"` // "Pending" | "In Progress" | "Done"
	DueDate   string    `gorm:"size:32" json:"dueDate"`
	CreatedAt time.Time `json:"createdAt"`
}

// SiteProfile is the site owner's public card shown on the portfolio front page.
type SiteProfile struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Bio          string   `json:"bio"`
	Skills       []string `gorm:"serializer:json" json:"skills"`
	ContactEmail string   `json:"contactEmail"`
}
