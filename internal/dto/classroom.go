package dto

import (
	"time"

	"github.com/studybuddy-app/classroom-api/internal/models"
)

// CreateClassroomRequest is the multipart classroom creation payload. The
// classroom picture arrives as a separate file part.
type CreateClassroomRequest struct {
	Title       string `form:"class_title" validate:"required"`
	Capacity    *int   `form:"class_capacity"`
	Field       string `form:"class_field" validate:"required"`
	Description string `form:"description" validate:"required"`
	JoinCode    string `form:"join_code" validate:"required,min=4"`
}

// OwnedClassroom is the owner-facing projection; only here does the join
// code appear.
type OwnedClassroom struct {
	ID          string    `json:"id"`
	Title       string    `json:"class_title"`
	Capacity    *int      `json:"class_capacity,omitempty"`
	Field       string    `json:"class_field"`
	Description string    `json:"description"`
	PictureURL  string    `json:"classroom_picture"`
	JoinCode    string    `json:"join_code"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClassroomSummary is the catalog projection shown to any authenticated
// principal. It has no join code field at all, so the secret cannot leak
// through this path.
type ClassroomSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"class_title"`
	Capacity    *int      `json:"class_capacity,omitempty"`
	Field       string    `json:"class_field"`
	Description string    `json:"description"`
	PictureURL  string    `json:"classroom_picture"`
	CreatedAt   time.Time `json:"created_at"`
}

// EnrollRequest carries the join code a prospective student submits.
type EnrollRequest struct {
	JoinCode string `json:"join_code" validate:"required"`
}

// CreatedClassroom acknowledges creation and returns the new id.
type CreatedClassroom struct {
	ID string `json:"id"`
}

// NewOwnedClassroom projects a classroom for its owner.
func NewOwnedClassroom(c *models.Classroom) OwnedClassroom {
	return OwnedClassroom{
		ID:          c.ID,
		Title:       c.Title,
		Capacity:    c.Capacity,
		Field:       c.Field,
		Description: c.Description,
		PictureURL:  c.PictureURL,
		JoinCode:    c.JoinCode,
		CreatedAt:   c.CreatedAt,
	}
}

// NewClassroomSummary projects a classroom for the public catalog.
func NewClassroomSummary(c *models.Classroom) ClassroomSummary {
	return ClassroomSummary{
		ID:          c.ID,
		Title:       c.Title,
		Capacity:    c.Capacity,
		Field:       c.Field,
		Description: c.Description,
		PictureURL:  c.PictureURL,
		CreatedAt:   c.CreatedAt,
	}
}

// NewClassroomSummaries projects a slice for the catalog view.
func NewClassroomSummaries(classrooms []models.Classroom) []ClassroomSummary {
	out := make([]ClassroomSummary, 0, len(classrooms))
	for i := range classrooms {
		out = append(out, NewClassroomSummary(&classrooms[i]))
	}
	return out
}

// NewOwnedClassrooms projects a slice for the owning professor.
func NewOwnedClassrooms(classrooms []models.Classroom) []OwnedClassroom {
	out := make([]OwnedClassroom, 0, len(classrooms))
	for i := range classrooms {
		out = append(out, NewOwnedClassroom(&classrooms[i]))
	}
	return out
}
