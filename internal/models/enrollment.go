package models

import "time"

// Enrollment links a student to a classroom. The (student, classroom) pair
// is unique, enforced by a database constraint.
type Enrollment struct {
	ID          string    `db:"id" json:"id"`
	StudentID   string    `db:"student_id" json:"student_id"`
	ClassroomID string    `db:"classroom_id" json:"classroom_id"`
	JoinedAt    time.Time `db:"joined_at" json:"joined_at"`
}
