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

// PdfRepository handles persistence of student pdf documents.
type PdfRepository struct {
	db *sqlx.DB
}

// NewPdfRepository constructs the repository.
func NewPdfRepository(db *sqlx.DB) *PdfRepository {
	return &PdfRepository{db: db}
}

// Create persists a document with its raw bytes and extracted pages.
func (r *PdfRepository) Create(ctx context.Context, doc *models.PdfDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}
	const query = `INSERT INTO pdf_documents (id, student_id, filename, content, pages, uploaded_at)
        VALUES (:id, :student_id, :filename, :content, :pages, :uploaded_at)`
	if _, err := r.db.NamedExecContext(ctx, query, doc); err != nil {
		return fmt.Errorf("create pdf document: %w", err)
	}
	return nil
}

// ListByStudent returns every document owned by the student.
func (r *PdfRepository) ListByStudent(ctx context.Context, studentID string) ([]models.PdfDocument, error) {
	const query = `SELECT id, student_id, filename, content, pages, uploaded_at FROM pdf_documents WHERE student_id = $1 ORDER BY uploaded_at DESC`
	var docs []models.PdfDocument
	if err := r.db.SelectContext(ctx, &docs, query, studentID); err != nil {
		return nil, fmt.Errorf("list pdf documents: %w", err)
	}
	return docs, nil
}

// FindByIDForStudent returns a document matched on both id and owner.
func (r *PdfRepository) FindByIDForStudent(ctx context.Context, id, studentID string) (*models.PdfDocument, error) {
	const query = `SELECT id, student_id, filename, content, pages, uploaded_at FROM pdf_documents WHERE id = $1 AND student_id = $2 LIMIT 1`
	var doc models.PdfDocument
	if err := r.db.GetContext(ctx, &doc, query, id, studentID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find pdf document: %w", err)
	}
	return &doc, nil
}
