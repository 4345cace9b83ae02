package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/models"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
)

type mockContentRepo struct {
	byClassroom map[string][]models.ClassroomContent
	created     *models.ClassroomContent
}

func (m *mockContentRepo) Create(ctx context.Context, content *models.ClassroomContent) error {
	m.created = content
	return nil
}

func (m *mockContentRepo) ListByClassroom(ctx context.Context, classroomID string) ([]models.ClassroomContent, error) {
	return m.byClassroom[classroomID], nil
}

func (m *mockContentRepo) FindByClassroomAndID(ctx context.Context, classroomID, contentID string) (*models.ClassroomContent, error) {
	for i := range m.byClassroom[classroomID] {
		if m.byClassroom[classroomID][i].ID == contentID {
			return &m.byClassroom[classroomID][i], nil
		}
	}
	return nil, sql.ErrNoRows
}

type mockOwnershipSource struct {
	owners map[string]string // classroom id -> professor id
}

func (m *mockOwnershipSource) FindByIDForProfessor(ctx context.Context, id, professorID string) (*models.Classroom, error) {
	if m.owners[id] == professorID {
		return &models.Classroom{ID: id, ProfessorID: professorID}, nil
	}
	return nil, sql.ErrNoRows
}

type mockMembershipSource struct {
	enrolled map[string]bool // student id + "/" + classroom id
}

func (m *mockMembershipSource) Exists(ctx context.Context, studentID, classroomID string) (bool, error) {
	return m.enrolled[studentID+"/"+classroomID], nil
}

func professorClaims(id string) *models.AuthClaims {
	return &models.AuthClaims{Role: models.RoleProfessor, RegisteredClaims: jwt.RegisteredClaims{Subject: id}}
}

func studentClaims(id string) *models.AuthClaims {
	return &models.AuthClaims{Role: models.RoleStudent, RegisteredClaims: jwt.RegisteredClaims{Subject: id}}
}

func newTestContentService(repo *mockContentRepo, owners *mockOwnershipSource, members *mockMembershipSource, uploader *mockUploader) *ContentService {
	return NewContentService(repo, owners, members, uploader, "https://res.example.com/raw/upload", nil, nil)
}

func TestUploadContentRequiresOwnership(t *testing.T) {
	repo := &mockContentRepo{}
	owners := &mockOwnershipSource{owners: map[string]string{"class-1": "prof-1"}}
	members := &mockMembershipSource{}
	uploader := &mockUploader{}
	svc := newTestContentService(repo, owners, members, uploader)

	item, err := svc.Upload(context.Background(), professorClaims("prof-1"), "class-1",
		dto.UploadContentRequest{Description: "week 1 notes"}, []byte("%PDF-"), "notes.pdf")
	require.NoError(t, err)
	assert.Equal(t, "ref-notes.pdf", item.StorageRef)
	require.NotNil(t, repo.created)
	assert.Equal(t, "class-1", repo.created.ClassroomID)

	_, err = svc.Upload(context.Background(), professorClaims("prof-2"), "class-1",
		dto.UploadContentRequest{Description: "week 1 notes"}, []byte("%PDF-"), "notes.pdf")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrors.FromError(err).Code)
}

func TestUploadContentRejectsStudents(t *testing.T) {
	members := &mockMembershipSource{enrolled: map[string]bool{"stud-1/class-1": true}}
	uploader := &mockUploader{}
	svc := newTestContentService(&mockContentRepo{}, &mockOwnershipSource{}, members, uploader)

	_, err := svc.Upload(context.Background(), studentClaims("stud-1"), "class-1",
		dto.UploadContentRequest{Description: "notes"}, []byte("%PDF-"), "notes.pdf")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", appErrors.FromError(err).Code)
	assert.Equal(t, 0, uploader.calls)
}

func TestUploadContentRejectsNonPDF(t *testing.T) {
	owners := &mockOwnershipSource{owners: map[string]string{"class-1": "prof-1"}}
	uploader := &mockUploader{}
	svc := newTestContentService(&mockContentRepo{}, owners, &mockMembershipSource{}, uploader)

	_, err := svc.Upload(context.Background(), professorClaims("prof-1"), "class-1",
		dto.UploadContentRequest{Description: "slides"}, []byte("binary"), "slides.pptx")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", appErrors.FromError(err).Code)
	assert.Equal(t, 0, uploader.calls)
}

func TestListContentAdmitsEnrolledStudentsOnly(t *testing.T) {
	repo := &mockContentRepo{byClassroom: map[string][]models.ClassroomContent{
		"class-1": {{ID: "content-1", Filename: "notes.pdf"}},
	}}
	owners := &mockOwnershipSource{owners: map[string]string{"class-1": "prof-1"}}
	members := &mockMembershipSource{enrolled: map[string]bool{"stud-1/class-1": true}}
	svc := newTestContentService(repo, owners, members, &mockUploader{})

	items, err := svc.List(context.Background(), studentClaims("stud-1"), "class-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.List(context.Background(), studentClaims("stud-2"), "class-1")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrors.FromError(err).Code)

	items, err = svc.List(context.Background(), professorClaims("prof-1"), "class-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDownloadLinkBuildsRawURL(t *testing.T) {
	repo := &mockContentRepo{byClassroom: map[string][]models.ClassroomContent{
		"class-1": {{ID: "content-1", StorageRef: "abc123"}},
	}}
	owners := &mockOwnershipSource{owners: map[string]string{"class-1": "prof-1"}}
	svc := newTestContentService(repo, owners, &mockMembershipSource{}, &mockUploader{})

	link, err := svc.DownloadLink(context.Background(), professorClaims("prof-1"), "class-1", "content-1")
	require.NoError(t, err)
	assert.Equal(t, "https://res.example.com/raw/upload/abc123.pdf", link.URL)

	_, err = svc.DownloadLink(context.Background(), professorClaims("prof-1"), "class-1", "ghost")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrors.FromError(err).Code)
}
