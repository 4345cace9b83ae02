package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/models"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/extract"
	"github.com/studybuddy-app/classroom-api/pkg/storage"
)

type contentRepository interface {
	Create(ctx context.Context, content *models.ClassroomContent) error
	ListByClassroom(ctx context.Context, classroomID string) ([]models.ClassroomContent, error)
	FindByClassroomAndID(ctx context.Context, classroomID, contentID string) (*models.ClassroomContent, error)
}

type contentClassroomSource interface {
	FindByIDForProfessor(ctx context.Context, id, professorID string) (*models.Classroom, error)
}

type contentEnrollmentSource interface {
	Exists(ctx context.Context, studentID, classroomID string) (bool, error)
}

// ContentService covers course-material upload and member reads. Every
// operation runs through the same membership gate.
type ContentService struct {
	contents    contentRepository
	classrooms  contentClassroomSource
	enrollments contentEnrollmentSource
	uploader    storage.Uploader
	rawBaseURL  string
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewContentService constructs the service. rawBaseURL is the delivery base
// the download links are built from.
func NewContentService(contents contentRepository, classrooms contentClassroomSource, enrollments contentEnrollmentSource, uploader storage.Uploader, rawBaseURL string, validate *validator.Validate, logger *zap.Logger) *ContentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ContentService{
		contents:    contents,
		classrooms:  classrooms,
		enrollments: enrollments,
		uploader:    uploader,
		rawBaseURL:  rawBaseURL,
		validator:   validate,
		logger:      logger,
	}
}

// authorizeMember admits the owning professor or an enrolled student and
// nobody else. Both rejection paths answer NOT_FOUND, so a caller without
// access cannot learn whether the classroom exists.
func (s *ContentService) authorizeMember(ctx context.Context, claims *models.AuthClaims, classroomID string) error {
	switch claims.Role {
	case models.RoleProfessor:
		if _, err := s.classrooms.FindByIDForProfessor(ctx, classroomID, claims.Subject); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check classroom ownership")
		}
		return nil
	case models.RoleStudent:
		enrolled, err := s.enrollments.Exists(ctx, claims.Subject, classroomID)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrollment")
		}
		if !enrolled {
			return appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
		}
		return nil
	default:
		return appErrors.Clone(appErrors.ErrForbidden, "")
	}
}

// Upload stores a course material. Only the owning professor may add
// content; a student passing the membership gate is still rejected here.
func (s *ContentService) Upload(ctx context.Context, claims *models.AuthClaims, classroomID string, req dto.UploadContentRequest, file []byte, filename string) (*dto.ContentItem, error) {
	if claims.Role != models.RoleProfessor {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "")
	}
	if err := s.authorizeMember(ctx, claims, classroomID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid content payload")
	}
	if !extract.IsPDF(filename) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "only PDF files are accepted")
	}

	uploaded, err := s.uploader.Upload(ctx, filename, file)
	if err != nil {
		return nil, err
	}

	content := &models.ClassroomContent{
		ClassroomID: classroomID,
		Filename:    filename,
		StorageRef:  uploaded.Reference,
		Description: req.Description,
	}
	if err := s.contents.Create(ctx, content); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create content")
	}

	item := dto.NewContentItem(content)
	return &item, nil
}

// List returns all materials of the classroom to any member.
func (s *ContentService) List(ctx context.Context, claims *models.AuthClaims, classroomID string) ([]dto.ContentItem, error) {
	if err := s.authorizeMember(ctx, claims, classroomID); err != nil {
		return nil, err
	}
	contents, err := s.contents.ListByClassroom(ctx, classroomID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list contents")
	}
	return dto.NewContentItems(contents), nil
}

// DownloadLink builds the deterministic retrieval URL for one material.
func (s *ContentService) DownloadLink(ctx context.Context, claims *models.AuthClaims, classroomID, contentID string) (*dto.DownloadLink, error) {
	if err := s.authorizeMember(ctx, claims, classroomID); err != nil {
		return nil, err
	}
	content, err := s.contents.FindByClassroomAndID(ctx, classroomID, contentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "content not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load content")
	}
	return &dto.DownloadLink{URL: storage.RawDocumentURL(s.rawBaseURL, content.StorageRef)}, nil
}
