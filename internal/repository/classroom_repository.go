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

const classroomColumns = `id, professor_id, title, capacity, field, description, picture_url, join_code, created_at`

// ClassroomRepository handles persistence of classrooms.
type ClassroomRepository struct {
	db *sqlx.DB
}

// NewClassroomRepository constructs the repository.
func NewClassroomRepository(db *sqlx.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

// Create persists a new classroom owned by a professor.
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	if classroom.ID == "" {
		classroom.ID = uuid.NewString()
	}
	if classroom.CreatedAt.IsZero() {
		classroom.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO classrooms (id, professor_id, title, capacity, field, description, picture_url, join_code, created_at)
        VALUES (:id, :professor_id, :title, :capacity, :field, :description, :picture_url, :join_code, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, classroom); err != nil {
		return fmt.Errorf("create classroom: %w", err)
	}
	return nil
}

// ListByProfessor returns every classroom owned by the given professor.
func (r *ClassroomRepository) ListByProfessor(ctx context.Context, professorID string) ([]models.Classroom, error) {
	query := fmt.Sprintf(`SELECT %s FROM classrooms WHERE professor_id = $1 ORDER BY created_at DESC`, classroomColumns)
	var classrooms []models.Classroom
	if err := r.db.SelectContext(ctx, &classrooms, query, professorID); err != nil {
		return nil, fmt.Errorf("list classrooms by professor: %w", err)
	}
	return classrooms, nil
}

// FindByIDForProfessor returns a classroom matched on both id and owner, so
// "absent" and "not yours" are indistinguishable to the caller.
func (r *ClassroomRepository) FindByIDForProfessor(ctx context.Context, id, professorID string) (*models.Classroom, error) {
	query := fmt.Sprintf(`SELECT %s FROM classrooms WHERE id = $1 AND professor_id = $2 LIMIT 1`, classroomColumns)
	var classroom models.Classroom
	if err := r.db.GetContext(ctx, &classroom, query, id, professorID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find classroom for professor: %w", err)
	}
	return &classroom, nil
}

// FindByID returns a classroom by identifier alone.
func (r *ClassroomRepository) FindByID(ctx context.Context, id string) (*models.Classroom, error) {
	query := fmt.Sprintf(`SELECT %s FROM classrooms WHERE id = $1 LIMIT 1`, classroomColumns)
	var classroom models.Classroom
	if err := r.db.GetContext(ctx, &classroom, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find classroom by id: %w", err)
	}
	return &classroom, nil
}

// ListAll returns the system-wide catalog.
func (r *ClassroomRepository) ListAll(ctx context.Context) ([]models.Classroom, error) {
	query := fmt.Sprintf(`SELECT %s FROM classrooms ORDER BY created_at DESC`, classroomColumns)
	var classrooms []models.Classroom
	if err := r.db.SelectContext(ctx, &classrooms, query); err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return classrooms, nil
}
