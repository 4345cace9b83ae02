package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/models"
	"github.com/studybuddy-app/classroom-api/pkg/chat"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/extract"
)

const (
	chatSystemPrompt = "You are a helpful study assistant. Answer the student's question using only the provided document text. If the answer is not in the document, say so."

	summarySystemPrompt = "You are a helpful study assistant. Summarize the provided document text for a student."
)

type pdfRepository interface {
	Create(ctx context.Context, doc *models.PdfDocument) error
	ListByStudent(ctx context.Context, studentID string) ([]models.PdfDocument, error)
	FindByIDForStudent(ctx context.Context, id, studentID string) (*models.PdfDocument, error)
}

// PdfService covers the student document inventory and its chat features.
type PdfService struct {
	repo      pdfRepository
	extractor extract.Extractor
	completer chat.Completer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPdfService constructs the service.
func NewPdfService(repo pdfRepository, extractor extract.Extractor, completer chat.Completer, validate *validator.Validate, logger *zap.Logger) *PdfService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &PdfService{repo: repo, extractor: extractor, completer: completer, validator: validate, logger: logger}
}

// Upload extracts the page text and stores the document under the calling
// student. Extraction failures reject the upload; nothing is stored.
func (s *PdfService) Upload(ctx context.Context, studentID string, filename string, data []byte) (*dto.PdfSummary, error) {
	pages, err := s.extractor.Pages(filename, data)
	if err != nil {
		return nil, err
	}

	doc := &models.PdfDocument{
		StudentID: studentID,
		Filename:  filename,
		Content:   data,
		Pages:     pages,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store document")
	}

	summary := dto.NewPdfSummary(doc)
	return &summary, nil
}

// ListMine returns every document the student owns.
func (s *PdfService) ListMine(ctx context.Context, studentID string) ([]dto.PdfSummary, error) {
	docs, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list documents")
	}
	return dto.NewPdfSummaries(docs), nil
}

// Get returns one owned document with its extracted pages. Someone else's
// document reads as absent.
func (s *PdfService) Get(ctx context.Context, studentID, documentID string) (*dto.PdfDetail, error) {
	doc, err := s.repo.FindByIDForStudent(ctx, documentID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "document not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load document")
	}
	detail := dto.NewPdfDetail(doc)
	return &detail, nil
}

// Chat answers a question about one stored document. The stored page text is
// the only context the model sees; conversations carry no memory.
func (s *PdfService) Chat(ctx context.Context, studentID, documentID string, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid chat payload")
	}

	doc, err := s.repo.FindByIDForStudent(ctx, documentID, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "document not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load document")
	}

	contextText, err := pagesAsContext(doc.Pages)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode document text")
	}

	answer, err := s.completer.Complete(ctx, chatSystemPrompt, contextText, "question: "+req.Message)
	if err != nil {
		return nil, err
	}

	return &dto.ChatResponse{Answer: answer}, nil
}

// Analyze produces a stateless summary of an uploaded file without storing
// it. The payload is extracted, summarized and discarded.
func (s *PdfService) Analyze(ctx context.Context, filename string, data []byte) (*dto.AnalyzeResponse, error) {
	pages, err := s.extractor.Pages(filename, data)
	if err != nil {
		return nil, err
	}

	contextText, err := pagesAsContext(pages)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode document text")
	}

	summary, err := s.completer.Complete(ctx, summarySystemPrompt, contextText, "summarize this document")
	if err != nil {
		return nil, err
	}

	return &dto.AnalyzeResponse{Summary: summary}, nil
}

// pagesAsContext serializes the extracted pages the same way they are
// stored, so the model sees page numbers alongside the text.
func pagesAsContext(pages []extract.Page) (string, error) {
	payload, err := json.Marshal(pages)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
