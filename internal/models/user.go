package models

import "time"

// User is an account known to the identity provider. PasswordHash is empty
// for accounts created through GitHub sign-in, GitHubID is zero for
// email/password accounts.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	GitHubID     int64     `json:"github_id"`
	GitHubLogin  string    `json:"github_login"`
	CreatedAt    time.Time `json:"created_at"`
}
