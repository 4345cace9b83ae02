package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/studybuddy-app/classroom-api/internal/models"
)

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Exists checks whether the student is already enrolled in the classroom.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, classroomID string) (bool, error) {
	const query = `SELECT 1 FROM enrollments WHERE student_id = $1 AND classroom_id = $2 LIMIT 1`
	var one int
	if err := r.db.GetContext(ctx, &one, query, studentID, classroomID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return true, nil
}

// Create persists a new enrollment. The UNIQUE (student_id, classroom_id)
// constraint closes the check-then-insert race; callers detect the conflict
// with IsUniqueViolation.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID == "" {
		enrollment.ID = uuid.NewString()
	}
	if enrollment.JoinedAt.IsZero() {
		enrollment.JoinedAt = time.Now().UTC()
	}
	const query = `INSERT INTO enrollments (id, student_id, classroom_id, joined_at)
        VALUES (:id, :student_id, :classroom_id, :joined_at)`
	if _, err := r.db.NamedExecContext(ctx, query, enrollment); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// ListClassroomsByStudent returns the classrooms the student is enrolled in.
func (r *EnrollmentRepository) ListClassroomsByStudent(ctx context.Context, studentID string) ([]models.Classroom, error) {
	const query = `SELECT c.id, c.professor_id, c.title, c.capacity, c.field, c.description, c.picture_url, c.join_code, c.created_at
        FROM classrooms c
        JOIN enrollments e ON e.classroom_id = c.id
        WHERE e.student_id = $1
        ORDER BY e.joined_at DESC`
	var classrooms []models.Classroom
	if err := r.db.SelectContext(ctx, &classrooms, query, studentID); err != nil {
		return nil, fmt.Errorf("list enrolled classrooms: %w", err)
	}
	return classrooms, nil
}

// FindClassroomForStudent returns the classroom only when the student holds
// an enrollment in it.
func (r *EnrollmentRepository) FindClassroomForStudent(ctx context.Context, studentID, classroomID string) (*models.Classroom, error) {
	const query = `SELECT c.id, c.professor_id, c.title, c.capacity, c.field, c.description, c.picture_url, c.join_code, c.created_at
        FROM classrooms c
        JOIN enrollments e ON e.classroom_id = c.id
        WHERE e.student_id = $1 AND c.id = $2
        LIMIT 1`
	var classroom models.Classroom
	if err := r.db.GetContext(ctx, &classroom, query, studentID, classroomID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find enrolled classroom: %w", err)
	}
	return &classroom, nil
}
