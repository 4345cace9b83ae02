package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-app/classroom-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestEnrollmentExists(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM enrollments WHERE student_id = $1 AND classroom_id = $2")).
		WithArgs("stud-1", "class-1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), "stud-1", "class-1")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM enrollments WHERE student_id = $1 AND classroom_id = $2")).
		WithArgs("stud-1", "class-2").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.Exists(context.Background(), "stud-1", "class-2")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentCreatePassesThroughUniqueViolation(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("INSERT INTO enrollments").
		WithArgs(sqlmock.AnyArg(), "stud-1", "class-1", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: pq.ErrorCode("23505")})

	err := repo.Create(context.Background(), &models.Enrollment{StudentID: "stud-1", ClassroomID: "class-1"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentCreateAssignsDefaults(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectExec("INSERT INTO enrollments").
		WithArgs(sqlmock.AnyArg(), "stud-1", "class-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	enrollment := &models.Enrollment{StudentID: "stud-1", ClassroomID: "class-1"}
	require.NoError(t, repo.Create(context.Background(), enrollment))
	assert.NotEmpty(t, enrollment.ID)
	assert.False(t, enrollment.JoinedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindClassroomForStudentRequiresEnrollment(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "professor_id", "title", "capacity", "field", "description", "picture_url", "join_code", "created_at"}).
		AddRow("class-1", "prof-1", "Algebra", nil, "Math", "", "", "join-me", now)
	mock.ExpectQuery("SELECT c.id, c.professor_id").
		WithArgs("stud-1", "class-1").
		WillReturnRows(rows)

	classroom, err := repo.FindClassroomForStudent(context.Background(), "stud-1", "class-1")
	require.NoError(t, err)
	assert.Equal(t, "Algebra", classroom.Title)

	mock.ExpectQuery("SELECT c.id, c.professor_id").
		WithArgs("stud-2", "class-1").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindClassroomForStudent(context.Background(), "stud-2", "class-1")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	assert.NoError(t, mock.ExpectationsWereMet())
}
