package service

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/models"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
)

type enrollmentRepository interface {
	Exists(ctx context.Context, studentID, classroomID string) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ListClassroomsByStudent(ctx context.Context, studentID string) ([]models.Classroom, error)
	FindClassroomForStudent(ctx context.Context, studentID, classroomID string) (*models.Classroom, error)
}

type classroomSource interface {
	FindByID(ctx context.Context, id string) (*models.Classroom, error)
}

// EnrollmentService covers joining classrooms and the student-side views of
// them.
type EnrollmentService struct {
	enrollments enrollmentRepository
	classrooms  classroomSource
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewEnrollmentService constructs the service.
func NewEnrollmentService(enrollments enrollmentRepository, classrooms classroomSource, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &EnrollmentService{enrollments: enrollments, classrooms: classrooms, validator: validate, logger: logger}
}

// Enroll joins the student to the classroom when the submitted join code
// matches. The checks run in a fixed order so the caller learns the
// classroom exists only with the right code in hand, and the unique
// constraint closes the duplicate race a concurrent enroll could open.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, classroomID string, req dto.EnrollRequest) (*dto.ClassroomSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	classroom, err := s.classrooms.FindByID(ctx, classroomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classroom")
	}

	if subtle.ConstantTimeCompare([]byte(classroom.JoinCode), []byte(req.JoinCode)) != 1 {
		return nil, appErrors.Clone(appErrors.ErrInvalidJoinCode, "")
	}

	enrolled, err := s.enrollments.Exists(ctx, studentID, classroomID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment")
	}
	if enrolled {
		return nil, appErrors.Clone(appErrors.ErrAlreadyEnrolled, "")
	}

	enrollment := &models.Enrollment{StudentID: studentID, ClassroomID: classroomID}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		if repositoryIsUnique(err) {
			return nil, appErrors.Clone(appErrors.ErrAlreadyEnrolled, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create enrollment")
	}

	summary := dto.NewClassroomSummary(classroom)
	return &summary, nil
}

// ListEnrolled returns summary views of the classrooms the student joined.
func (s *EnrollmentService) ListEnrolled(ctx context.Context, studentID string) ([]dto.ClassroomSummary, error) {
	classrooms, err := s.enrollments.ListClassroomsByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrolled classrooms")
	}
	return dto.NewClassroomSummaries(classrooms), nil
}

// GetEnrolled returns one joined classroom. A classroom the student never
// joined reads as absent, enrolled or not.
func (s *EnrollmentService) GetEnrolled(ctx context.Context, studentID, classroomID string) (*dto.ClassroomSummary, error) {
	classroom, err := s.enrollments.FindClassroomForStudent(ctx, studentID, classroomID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrolled classroom")
	}
	summary := dto.NewClassroomSummary(classroom)
	return &summary, nil
}
