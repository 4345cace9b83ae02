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
	"github.com/studybuddy-app/classroom-api/pkg/storage"
)

type classroomRepository interface {
	Create(ctx context.Context, classroom *models.Classroom) error
	ListByProfessor(ctx context.Context, professorID string) ([]models.Classroom, error)
	FindByIDForProfessor(ctx context.Context, id, professorID string) (*models.Classroom, error)
	ListAll(ctx context.Context) ([]models.Classroom, error)
}

type catalogCache interface {
	Get(ctx context.Context) ([]models.Classroom, error)
	Set(ctx context.Context, classrooms []models.Classroom) error
	Invalidate(ctx context.Context) error
}

// ClassroomService covers classroom creation, the owner's views and the
// shared catalog.
type ClassroomService struct {
	repo      classroomRepository
	cache     catalogCache
	uploader  storage.Uploader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassroomService constructs the service.
func NewClassroomService(repo classroomRepository, cache catalogCache, uploader storage.Uploader, validate *validator.Validate, logger *zap.Logger) *ClassroomService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ClassroomService{repo: repo, cache: cache, uploader: uploader, validator: validate, logger: logger}
}

// Create uploads the classroom picture and persists the classroom under the
// calling professor. The acknowledgement carries only the new id; the join
// code is readable afterwards through the owner views.
func (s *ClassroomService) Create(ctx context.Context, professorID string, req dto.CreateClassroomRequest, picture []byte, pictureName string) (*dto.CreatedClassroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid classroom payload")
	}

	var pictureURL string
	if len(picture) > 0 {
		uploaded, err := s.uploader.Upload(ctx, pictureName, picture)
		if err != nil {
			return nil, err
		}
		pictureURL = uploaded.URL
	}

	classroom := &models.Classroom{
		ProfessorID: professorID,
		Title:       req.Title,
		Capacity:    req.Capacity,
		Field:       req.Field,
		Description: req.Description,
		PictureURL:  pictureURL,
		JoinCode:    req.JoinCode,
	}
	if err := s.repo.Create(ctx, classroom); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create classroom")
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
		}
	}

	return &dto.CreatedClassroom{ID: classroom.ID}, nil
}

// ListOwn returns the calling professor's classrooms, join codes included.
func (s *ClassroomService) ListOwn(ctx context.Context, professorID string) ([]dto.OwnedClassroom, error) {
	classrooms, err := s.repo.ListByProfessor(ctx, professorID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classrooms")
	}
	return dto.NewOwnedClassrooms(classrooms), nil
}

// GetOwn returns one classroom matched on both id and owner. A classroom
// that exists but belongs to someone else reads as absent.
func (s *ClassroomService) GetOwn(ctx context.Context, professorID, classroomID string) (*dto.OwnedClassroom, error) {
	classroom, err := s.repo.FindByIDForProfessor(ctx, classroomID, professorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classroom")
	}
	owned := dto.NewOwnedClassroom(classroom)
	return &owned, nil
}

// Catalog returns every classroom in summary form. The cache serves repeat
// reads; a cache failure degrades to the database, never to an error.
func (s *ClassroomService) Catalog(ctx context.Context) ([]dto.ClassroomSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("catalog cache read failed", zap.Error(err))
		} else if cached != nil {
			return dto.NewClassroomSummaries(cached), nil
		}
	}

	classrooms, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list catalog")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, classrooms); err != nil {
			s.logger.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	return dto.NewClassroomSummaries(classrooms), nil
}
