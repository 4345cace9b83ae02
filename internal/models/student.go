package models

import "time"

// Student owns zero or more enrollments and zero or more pdf documents.
type Student struct {
	ID            string    `db:"id" json:"id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      string    `db:"last_name" json:"last_name"`
	Email         string    `db:"email" json:"email"`
	Phone         string    `db:"phone" json:"phone"`
	AcademicLevel string    `db:"academic_level" json:"academic_level"`
	Country       string    `db:"country" json:"country"`
	Description   string    `db:"description" json:"description"`
	AvatarURL     string    `db:"avatar_url" json:"avatar_url"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	JoinedAt      time.Time `db:"joined_at" json:"joined_at"`
}
