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

// ProfessorRepository provides database access for professor accounts.
type ProfessorRepository struct {
	db *sqlx.DB
}

// NewProfessorRepository creates a new instance of ProfessorRepository.
func NewProfessorRepository(db *sqlx.DB) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

// Create inserts a new professor row.
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) error {
	if professor.ID == "" {
		professor.ID = uuid.NewString()
	}
	if professor.JoinedAt.IsZero() {
		professor.JoinedAt = time.Now().UTC()
	}
	const query = `INSERT INTO professors (id, first_name, last_name, email, phone, country, field, description, avatar_url, password_hash, joined_at)
        VALUES (:id, :first_name, :last_name, :email, :phone, :country, :field, :description, :avatar_url, :password_hash, :joined_at)`
	if _, err := r.db.NamedExecContext(ctx, query, professor); err != nil {
		if IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("create professor: %w", err)
	}
	return nil
}

// FindByEmail returns a professor by email address.
func (r *ProfessorRepository) FindByEmail(ctx context.Context, email string) (*models.Professor, error) {
	const query = `SELECT id, first_name, last_name, email, phone, country, field, description, avatar_url, password_hash, joined_at FROM professors WHERE email = $1 LIMIT 1`
	var professor models.Professor
	if err := r.db.GetContext(ctx, &professor, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find professor by email: %w", err)
	}
	return &professor, nil
}

// FindByID returns a professor by identifier.
func (r *ProfessorRepository) FindByID(ctx context.Context, id string) (*models.Professor, error) {
	const query = `SELECT id, first_name, last_name, email, phone, country, field, description, avatar_url, password_hash, joined_at FROM professors WHERE id = $1 LIMIT 1`
	var professor models.Professor
	if err := r.db.GetContext(ctx, &professor, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find professor by id: %w", err)
	}
	return &professor, nil
}

// Update rewrites the mutable profile fields.
func (r *ProfessorRepository) Update(ctx context.Context, professor *models.Professor) error {
	const query = `UPDATE professors SET first_name = :first_name, last_name = :last_name, email = :email, phone = :phone,
        country = :country, field = :field, description = :description, avatar_url = :avatar_url WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, professor); err != nil {
		return fmt.Errorf("update professor: %w", err)
	}
	return nil
}

// Delete removes the professor row; classrooms, their contents and
// enrollments go with it through the cascade constraints.
func (r *ProfessorRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM professors WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete professor: %w", err)
	}
	return nil
}
