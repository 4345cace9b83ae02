package models

import "time"

// Classroom belongs to exactly one professor and is removed with them.
// JoinCode is a shared enrollment secret, not a login credential; it never
// leaves the owner-facing read paths.
type Classroom struct {
	ID          string    `db:"id" json:"id"`
	ProfessorID string    `db:"professor_id" json:"professor_id"`
	Title       string    `db:"title" json:"title"`
	Capacity    *int      `db:"capacity" json:"capacity,omitempty"`
	Field       string    `db:"field" json:"field"`
	Description string    `db:"description" json:"description"`
	PictureURL  string    `db:"picture_url" json:"picture_url"`
	JoinCode    string    `db:"join_code" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
