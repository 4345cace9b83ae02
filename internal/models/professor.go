package models

import "time"

// Professor owns zero or more classrooms.
type Professor struct {
	ID           string    `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	Country      string    `db:"country" json:"country"`
	Field        string    `db:"field" json:"field"`
	Description  string    `db:"description" json:"description"`
	AvatarURL    string    `db:"avatar_url" json:"avatar_url"`
	PasswordHash string    `db:"password_hash" json:"-"`
	JoinedAt     time.Time `db:"joined_at" json:"joined_at"`
}
