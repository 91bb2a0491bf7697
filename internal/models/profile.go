package models

import "time"

// Profile is a student's directory entry. The ID is the owning user's ID, so
// a user has at most one profile row and saving is always an upsert.
type Profile struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Year            string    `json:"year"`
	Skills          string    `json:"skills"`
	Interests       string    `json:"interests"`
	Whatsapp        string    `json:"whatsapp"`
	Twitter         string    `json:"twitter"`
	WhatsappVisible bool      `json:"whatsapp_visible"`
	TwitterVisible  bool      `json:"twitter_visible"`
	CreatedAt       time.Time `json:"created_at"`
}
