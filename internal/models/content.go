package models

import "time"

// ClassroomContent is one uploaded course material item. Immutable after
// creation; removed with its classroom.
type ClassroomContent struct {
	ID          string    `db:"id" json:"id"`
	ClassroomID string    `db:"classroom_id" json:"classroom_id"`
	Filename    string    `db:"filename" json:"filename"`
	StorageRef  string    `db:"storage_ref" json:"storage_ref"`
	Description string    `db:"description" json:"description"`
	UploadedAt  time.Time `db:"uploaded_at" json:"uploaded_at"`
}
