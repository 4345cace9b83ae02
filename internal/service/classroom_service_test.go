package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-app/classroom-api/internal/dto"
	"github.com/studybuddy-app/classroom-api/internal/models"
	appErrors "github.com/studybuddy-app/classroom-api/pkg/errors"
	"github.com/studybuddy-app/classroom-api/pkg/storage"
)

type mockClassroomRepo struct {
	byOwner map[string][]models.Classroom
	all     []models.Classroom
	created *models.Classroom
}

func (m *mockClassroomRepo) Create(ctx context.Context, classroom *models.Classroom) error {
	classroom.ID = "class-new"
	m.created = classroom
	return nil
}

func (m *mockClassroomRepo) ListByProfessor(ctx context.Context, professorID string) ([]models.Classroom, error) {
	return m.byOwner[professorID], nil
}

func (m *mockClassroomRepo) FindByIDForProfessor(ctx context.Context, id, professorID string) (*models.Classroom, error) {
	for i := range m.byOwner[professorID] {
		if m.byOwner[professorID][i].ID == id {
			return &m.byOwner[professorID][i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockClassroomRepo) ListAll(ctx context.Context) ([]models.Classroom, error) {
	return m.all, nil
}

type mockCatalogCache struct {
	snapshot    []models.Classroom
	setCalls    int
	invalidated int
}

func (m *mockCatalogCache) Get(ctx context.Context) ([]models.Classroom, error) {
	return m.snapshot, nil
}

func (m *mockCatalogCache) Set(ctx context.Context, classrooms []models.Classroom) error {
	m.snapshot = classrooms
	m.setCalls++
	return nil
}

func (m *mockCatalogCache) Invalidate(ctx context.Context) error {
	m.snapshot = nil
	m.invalidated++
	return nil
}

type mockUploader struct {
	lastFilename string
	lastData     []byte
	calls        int
	err          error
}

func (m *mockUploader) Upload(ctx context.Context, filename string, data []byte) (storage.UploadResult, error) {
	m.calls++
	m.lastFilename = filename
	m.lastData = data
	if m.err != nil {
		return storage.UploadResult{}, m.err
	}
	return storage.UploadResult{Reference: "ref-" + filename, URL: "https://cdn.example.com/" + filename}, nil
}

func TestCreateClassroomInvalidatesCatalog(t *testing.T) {
	repo := &mockClassroomRepo{}
	cache := &mockCatalogCache{snapshot: []models.Classroom{{ID: "stale"}}}
	uploader := &mockUploader{}
	svc := NewClassroomService(repo, cache, uploader, nil, nil)

	created, err := svc.Create(context.Background(), "prof-1", dto.CreateClassroomRequest{
		Title:       "Algebra",
		Field:       "Math",
		Description: "Intro course",
		JoinCode:    "join-me",
	}, []byte("png-bytes"), "cover.png")
	require.NoError(t, err)
	assert.Equal(t, "class-new", created.ID)

	require.NotNil(t, repo.created)
	assert.Equal(t, "prof-1", repo.created.ProfessorID)
	assert.Equal(t, "join-me", repo.created.JoinCode)
	assert.Equal(t, "https://cdn.example.com/cover.png", repo.created.PictureURL)
	assert.Equal(t, 1, cache.invalidated)
}

func TestGetOwnHidesOtherProfessorsClassrooms(t *testing.T) {
	repo := &mockClassroomRepo{byOwner: map[string][]models.Classroom{
		"prof-1": {{ID: "class-1", Title: "Algebra", JoinCode: "join-me"}},
	}}
	svc := NewClassroomService(repo, &mockCatalogCache{}, &mockUploader{}, nil, nil)

	owned, err := svc.GetOwn(context.Background(), "prof-1", "class-1")
	require.NoError(t, err)
	assert.Equal(t, "join-me", owned.JoinCode)

	_, err = svc.GetOwn(context.Background(), "prof-2", "class-1")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrors.FromError(err).Code)
}

func TestCatalogServesFromCacheWhenWarm(t *testing.T) {
	repo := &mockClassroomRepo{all: []models.Classroom{{ID: "db-class"}}}
	cache := &mockCatalogCache{snapshot: []models.Classroom{{ID: "cached-class", Title: "Cached"}}}
	svc := NewClassroomService(repo, cache, &mockUploader{}, nil, nil)

	summaries, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "cached-class", summaries[0].ID)
	assert.Equal(t, 0, cache.setCalls)
}

func TestCatalogPopulatesCacheOnMiss(t *testing.T) {
	repo := &mockClassroomRepo{all: []models.Classroom{{ID: "db-class"}}}
	cache := &mockCatalogCache{}
	svc := NewClassroomService(repo, cache, &mockUploader{}, nil, nil)

	summaries, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "db-class", summaries[0].ID)
	assert.Equal(t, 1, cache.setCalls)
}

func TestCatalogNeverExposesJoinCode(t *testing.T) {
	repo := &mockClassroomRepo{all: []models.Classroom{
		{ID: "class-1", Title: "Algebra", JoinCode: "super-secret"},
	}}
	svc := NewClassroomService(repo, &mockCatalogCache{}, &mockUploader{}, nil, nil)

	summaries, err := svc.Catalog(context.Background())
	require.NoError(t, err)

	payload, err := json.Marshal(summaries)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "super-secret")
	assert.NotContains(t, string(payload), "join_code")
}

func TestListOwnIncludesJoinCode(t *testing.T) {
	repo := &mockClassroomRepo{byOwner: map[string][]models.Classroom{
		"prof-1": {{ID: "class-1", JoinCode: "join-me"}},
	}}
	svc := NewClassroomService(repo, &mockCatalogCache{}, &mockUploader{}, nil, nil)

	owned, err := svc.ListOwn(context.Background(), "prof-1")
	require.NoError(t, err)
	require.Len(t, owned, 1)

	payload, err := json.Marshal(owned)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"join_code":"join-me"`)
}

func TestCatalogServesCachedEmptySnapshot(t *testing.T) {
	repo := &mockClassroomRepo{all: []models.Classroom{{ID: "db-class"}}}
	cache := &mockCatalogCache{snapshot: []models.Classroom{}}
	svc := NewClassroomService(repo, cache, &mockUploader{}, nil, nil)

	summaries, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.Equal(t, 0, cache.setCalls)
}
