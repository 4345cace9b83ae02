package dto

import (
	"time"

	"github.com/studybuddy-app/classroom-api/internal/models"
)

// RegisterProfessorRequest is the multipart registration payload. The
// profile picture arrives as a separate file part.
type RegisterProfessorRequest struct {
	FirstName   string `form:"first_name" validate:"required"`
	LastName    string `form:"last_name" validate:"required"`
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,min=6"`
	Phone       string `form:"phone_number" validate:"required"`
	Country     string `form:"country" validate:"required"`
	Field       string `form:"educational_field" validate:"required"`
	Description string `form:"description" validate:"required"`
}

// RegisterStudentRequest mirrors RegisterProfessorRequest for students.
type RegisterStudentRequest struct {
	FirstName     string `form:"first_name" validate:"required"`
	LastName      string `form:"last_name" validate:"required"`
	Email         string `form:"email" validate:"required,email"`
	Password      string `form:"password" validate:"required,min=6"`
	Phone         string `form:"phone_number" validate:"required"`
	AcademicLevel string `form:"academic_level" validate:"required"`
	Country       string `form:"country" validate:"required"`
	Description   string `form:"description" validate:"required"`
}

// UpdateProfessorProfileRequest edits the owner's mutable profile fields.
type UpdateProfessorProfileRequest struct {
	FirstName   string `form:"first_name" validate:"required"`
	LastName    string `form:"last_name" validate:"required"`
	Email       string `form:"email" validate:"required,email"`
	Phone       string `form:"phone_number" validate:"required"`
	Country     string `form:"country" validate:"required"`
	Field       string `form:"educational_field" validate:"required"`
	Description string `form:"description" validate:"required"`
}

// UpdateStudentProfileRequest edits the owner's mutable profile fields.
type UpdateStudentProfileRequest struct {
	FirstName     string `form:"first_name" validate:"required"`
	LastName      string `form:"last_name" validate:"required"`
	Email         string `form:"email" validate:"required,email"`
	Phone         string `form:"phone_number" validate:"required"`
	AcademicLevel string `form:"academic_level" validate:"required"`
	Country       string `form:"country" validate:"required"`
	Description   string `form:"description" validate:"required"`
}

// ProfessorProfile is the owner-facing professor read. It never carries the
// credential hash.
type ProfessorProfile struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone_number"`
	Country     string    `json:"country"`
	Field       string    `json:"educational_field"`
	Description string    `json:"description"`
	AvatarURL   string    `json:"profile_picture"`
	JoinedAt    time.Time `json:"joined_at"`
}

// StudentProfile is the owner-facing student read, hash excluded.
type StudentProfile struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone_number"`
	AcademicLevel string    `json:"academic_level"`
	Country       string    `json:"country"`
	Description   string    `json:"description"`
	AvatarURL     string    `json:"profile_image"`
	JoinedAt      time.Time `json:"joined_at"`
}

// NewProfessorProfile projects the entity into its response shape.
func NewProfessorProfile(p *models.Professor) ProfessorProfile {
	return ProfessorProfile{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		Phone:       p.Phone,
		Country:     p.Country,
		Field:       p.Field,
		Description: p.Description,
		AvatarURL:   p.AvatarURL,
		JoinedAt:    p.JoinedAt,
	}
}

// NewStudentProfile projects the entity into its response shape.
func NewStudentProfile(s *models.Student) StudentProfile {
	return StudentProfile{
		ID:            s.ID,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		Email:         s.Email,
		Phone:         s.Phone,
		AcademicLevel: s.AcademicLevel,
		Country:       s.Country,
		Description:   s.Description,
		AvatarURL:     s.AvatarURL,
		JoinedAt:      s.JoinedAt,
	}
}
