package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/models"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
)

type mockEnrollmentRepo struct {
	existing  map[string]bool
	created   *models.Enrollment
	createErr error
	joined    []models.Classroom
}

func (m *mockEnrollmentRepo) Exists(ctx context.Context, studentID, classroomID string) (bool, error) {
	return m.existing[studentID+"/"+classroomID], nil
}

func (m *mockEnrollmentRepo) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = enrollment
	return nil
}

func (m *mockEnrollmentRepo) ListClassroomsByStudent(ctx context.Context, studentID string) ([]models.Classroom, error) {
	return m.joined, nil
}

func (m *mockEnrollmentRepo) FindClassroomForStudent(ctx context.Context, studentID, classroomID string) (*models.Classroom, error) {
	for i := range m.joined {
		if m.joined[i].ID == classroomID {
			return &m.joined[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

type mockClassroomSource struct {
	byID map[string]*models.Classroom
}

func (m *mockClassroomSource) FindByID(ctx context.Context, id string) (*models.Classroom, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func TestEnrollSucceedsWithMatchingJoinCode(t *testing.T) {
	repo := &mockEnrollmentRepo{existing: map[string]bool{}}
	classrooms := &mockClassroomSource{byID: map[string]*models.Classroom{
		"class-1": {ID: "class-1", Title: "Algebra", JoinCode: "join-me"},
	}}
	svc := NewEnrollmentService(repo, classrooms, nil, nil)

	summary, err := svc.Enroll(context.Background(), "stud-1", "class-1", dto.EnrollRequest{JoinCode: "join-me"})
	require.NoError(t, err)
	assert.Equal(t, "class-1", summary.ID)
	assert.Equal(t, "Algebra", summary.Title)

	require.NotNil(t, repo.created)
	assert.Equal(t, "stud-1", repo.created.StudentID)
	assert.Equal(t, "class-1", repo.created.ClassroomID)
}

func TestEnrollUnknownClassroomIsNotFound(t *testing.T) {
	repo := &mockEnrollmentRepo{existing: map[string]bool{}}
	classrooms := &mockClassroomSource{byID: map[string]*models.Classroom{}}
	svc := NewEnrollmentService(repo, classrooms, nil, nil)

	_, err := svc.Enroll(context.Background(), "stud-1", "ghost", dto.EnrollRequest{JoinCode: "whatever"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrors.FromError(err).Code)
	assert.Nil(t, repo.created)
}

func TestEnrollWrongJoinCodeIsRejected(t *testing.T) {
	repo := &mockEnrollmentRepo{existing: map[string]bool{}}
	classrooms := &mockClassroomSource{byID: map[string]*models.Classroom{
		"class-1": {ID: "class-1", JoinCode: "the-real-code"},
	}}
	svc := NewEnrollmentService(repo, classrooms, nil, nil)

	_, err := svc.Enroll(context.Background(), "stud-1", "class-1", dto.EnrollRequest{JoinCode: "guess"})
	require.Error(t, err)
	assert.Equal(t, "INVALID_JOIN_CODE", appErrors.FromError(err).Code)
	assert.Nil(t, repo.created)
}

func TestEnrollTwiceIsConflict(t *testing.T) {
	repo := &mockEnrollmentRepo{existing: map[string]bool{"stud-1/class-1": true}}
	classrooms := &mockClassroomSource{byID: map[string]*models.Classroom{
		"class-1": {ID: "class-1", JoinCode: "join-me"},
	}}
	svc := NewEnrollmentService(repo, classrooms, nil, nil)

	_, err := svc.Enroll(context.Background(), "stud-1", "class-1", dto.EnrollRequest{JoinCode: "join-me"})
	require.Error(t, err)
	assert.Equal(t, "ALREADY_ENROLLED", appErrors.FromError(err).Code)
}

func TestEnrollRaceLosesToUniqueConstraint(t *testing.T) {
	repo := &mockEnrollmentRepo{
		existing:  map[string]bool{},
		createErr: &pq.Error{Code: pq.ErrorCode("23505")},
	}
	classrooms := &mockClassroomSource{byID: map[string]*models.Classroom{
		"class-1": {ID: "class-1", JoinCode: "join-me"},
	}}
	svc := NewEnrollmentService(repo, classrooms, nil, nil)

	_, err := svc.Enroll(context.Background(), "stud-1", "class-1", dto.EnrollRequest{JoinCode: "join-me"})
	require.Error(t, err)
	assert.Equal(t, "ALREADY_ENROLLED", appErrors.FromError(err).Code)
}

func TestGetEnrolledRequiresOwnEnrollment(t *testing.T) {
	repo := &mockEnrollmentRepo{joined: []models.Classroom{{ID: "class-1", Title: "Algebra"}}}
	svc := NewEnrollmentService(repo, &mockClassroomSource{}, nil, nil)

	summary, err := svc.GetEnrolled(context.Background(), "stud-1", "class-1")
	require.NoError(t, err)
	assert.Equal(t, "Algebra", summary.Title)

	_, err = svc.GetEnrolled(context.Background(), "stud-1", "class-2")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrors.FromError(err).Code)
}
