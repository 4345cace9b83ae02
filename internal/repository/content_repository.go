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

// ContentRepository handles persistence of classroom course materials.
type ContentRepository struct {
	db *sqlx.DB
}

// NewContentRepository constructs the repository.
func NewContentRepository(db *sqlx.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Create persists a content row. The storage upload happens before this is
// called so no transaction stays open across the external call.
func (r *ContentRepository) Create(ctx context.Context, content *models.ClassroomContent) error {
	if content.ID == "" {
		content.ID = uuid.NewString()
	}
	if content.UploadedAt.IsZero() {
		content.UploadedAt = time.Now().UTC()
	}
	const query = `INSERT INTO classroom_contents (id, classroom_id, filename, storage_ref, description, uploaded_at)
        VALUES (:id, :classroom_id, :filename, :storage_ref, :description, :uploaded_at)`
	if _, err := r.db.NamedExecContext(ctx, query, content); err != nil {
		return fmt.Errorf("create classroom content: %w", err)
	}
	return nil
}

// ListByClassroom returns all materials of one classroom.
func (r *ContentRepository) ListByClassroom(ctx context.Context, classroomID string) ([]models.ClassroomContent, error) {
	const query = `SELECT id, classroom_id, filename, storage_ref, description, uploaded_at FROM classroom_contents WHERE classroom_id = $1 ORDER BY uploaded_at DESC`
	var contents []models.ClassroomContent
	if err := r.db.SelectContext(ctx, &contents, query, classroomID); err != nil {
		return nil, fmt.Errorf("list classroom contents: %w", err)
	}
	return contents, nil
}

// FindByClassroomAndID returns a single material matched on both keys.
func (r *ContentRepository) FindByClassroomAndID(ctx context.Context, classroomID, contentID string) (*models.ClassroomContent, error) {
	const query = `SELECT id, classroom_id, filename, storage_ref, description, uploaded_at FROM classroom_contents WHERE classroom_id = $1 AND id = $2 LIMIT 1`
	var content models.ClassroomContent
	if err := r.db.GetContext(ctx, &content, query, classroomID, contentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find classroom content: %w", err)
	}
	return &content, nil
}
