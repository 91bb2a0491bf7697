package models

import "time"

// Team is a hackathon team posting. Teams are insert-only: every submission
// creates a fresh row with a server-assigned ID.
type Team struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	TeamName      string    `json:"team_name"`
	HackathonName string    `json:"hackathon_name"`
	NeededSkills  string    `json:"needed_skills"`
	Timeline      string    `json:"timeline"`
	WhatsappGroup string    `json:"whatsapp_group"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
