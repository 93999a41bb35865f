package domain

import "time"

// User is the domain model for registered accounts. Admin accounts hold
// elevated privilege over all users and recipes.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
