package dto

import (
	"encoding/base64"

	"github.com/studybuddy-app/classroom-api/internal/models"
	"github.com/studybuddy-app/classroom-api/pkg/extract"
)

// PdfSummary lists one stored document with its bytes re-encoded base64.
type PdfSummary struct {
	ID       string `json:"pdf_id"`
	Filename string `json:"pdf_name"`
	Content  string `json:"pdf_file"`
}

// PdfDetail is the owner-scoped single-document read.
type PdfDetail struct {
	ID       string         `json:"pdf_id"`
	Filename string         `json:"pdf_name"`
	Content  string         `json:"pdf_content"`
	Pages    []extract.Page `json:"chunked_text"`
}

// ChatRequest carries the student's question for a stored document.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse returns the completion answer verbatim.
type ChatResponse struct {
	Answer string `json:"message"`
}

// AnalyzeResponse returns the stateless summary.
type AnalyzeResponse struct {
	Summary string `json:"message"`
}

// NewPdfSummary projects a document row for listing.
func NewPdfSummary(d *models.PdfDocument) PdfSummary {
	return PdfSummary{
		ID:       d.ID,
		Filename: d.Filename,
		Content:  base64.StdEncoding.EncodeToString(d.Content),
	}
}

// NewPdfSummaries projects a slice of document rows.
func NewPdfSummaries(docs []models.PdfDocument) []PdfSummary {
	out := make([]PdfSummary, 0, len(docs))
	for i := range docs {
		out = append(out, NewPdfSummary(&docs[i]))
	}
	return out
}

// NewPdfDetail projects a single owner-scoped document.
func NewPdfDetail(d *models.PdfDocument) PdfDetail {
	return PdfDetail{
		ID:       d.ID,
		Filename: d.Filename,
		Content:  base64.StdEncoding.EncodeToString(d.Content),
		Pages:    d.Pages,
	}
}
