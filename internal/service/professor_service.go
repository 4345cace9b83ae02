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

type professorRepository interface {
	Create(ctx context.Context, professor *models.Professor) error
	FindByEmail(ctx context.Context, email string) (*models.Professor, error)
	FindByID(ctx context.Context, id string) (*models.Professor, error)
	Update(ctx context.Context, professor *models.Professor) error
	Delete(ctx context.Context, id string) error
}

// ProfessorService covers professor registration and profile access.
type ProfessorService struct {
	repo      professorRepository
	uploader  storage.Uploader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfessorService constructs the service.
func NewProfessorService(repo professorRepository, uploader storage.Uploader, validate *validator.Validate, logger *zap.Logger) *ProfessorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ProfessorService{repo: repo, uploader: uploader, validator: validate, logger: logger}
}

// Register uploads the avatar, hashes the password and inserts the account.
// Only the digest is stored, never the plaintext.
func (s *ProfessorService) Register(ctx context.Context, req dto.RegisterProfessorRequest, avatar []byte, avatarName string) (*dto.ProfessorProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email")
	}

	uploaded, err := s.uploader.Upload(ctx, avatarName, avatar)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	professor := &models.Professor{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Country:      req.Country,
		Field:        req.Field,
		Description:  req.Description,
		AvatarURL:    uploaded.URL,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, professor); err != nil {
		if repositoryIsUnique(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "email already registered")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create professor")
	}

	profile := dto.NewProfessorProfile(professor)
	return &profile, nil
}

// Profile returns the owner-facing professor read.
func (s *ProfessorService) Profile(ctx context.Context, professorID string) (*dto.ProfessorProfile, error) {
	professor, err := s.repo.FindByID(ctx, professorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "professor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load professor")
	}
	profile := dto.NewProfessorProfile(professor)
	return &profile, nil
}

// UpdateProfile rewrites the mutable fields. A new avatar is optional; when
// absent the stored one is kept.
func (s *ProfessorService) UpdateProfile(ctx context.Context, professorID string, req dto.UpdateProfessorProfileRequest, avatar []byte, avatarName string) (*dto.ProfessorProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	professor, err := s.repo.FindByID(ctx, professorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "professor not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load professor")
	}

	if len(avatar) > 0 {
		uploaded, err := s.uploader.Upload(ctx, avatarName, avatar)
		if err != nil {
			return nil, err
		}
		professor.AvatarURL = uploaded.URL
	}

	professor.FirstName = req.FirstName
	professor.LastName = req.LastName
	professor.Email = req.Email
	professor.Phone = req.Phone
	professor.Country = req.Country
	professor.Field = req.Field
	professor.Description = req.Description

	if err := s.repo.Update(ctx, professor); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update professor")
	}

	profile := dto.NewProfessorProfile(professor)
	return &profile, nil
}

// DeleteAccount removes the professor. Classrooms, their contents and
// enrollments go with it through the cascade constraints.
func (s *ProfessorService) DeleteAccount(ctx context.Context, professorID string) error {
	if _, err := s.repo.FindByID(ctx, professorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "professor not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load professor")
	}
	if err := s.repo.Delete(ctx, professorID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete professor")
	}
	return nil
}
