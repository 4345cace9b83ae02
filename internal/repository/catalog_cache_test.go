package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studybuddy-app/classroom-api/internal/models"
)

func TestCatalogRoundTripKeepsEmptySnapshot(t *testing.T) {
	payload, err := encodeCatalog(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(payload))

	classrooms, err := decodeCatalog(payload)
	require.NoError(t, err)
	require.NotNil(t, classrooms)
	assert.Empty(t, classrooms)
}

func TestCatalogRoundTripKeepsEntries(t *testing.T) {
	snapshot := []models.Classroom{
		{ID: "class-1", ProfessorID: "prof-1", Title: "Algebra", JoinCode: "join-me"},
		{ID: "class-2", ProfessorID: "prof-2", Title: "Physics"},
	}

	payload, err := encodeCatalog(snapshot)
	require.NoError(t, err)

	// The snapshot backs the public catalog only; the enrollment secret must
	// not be serialized into Redis alongside it.
	assert.NotContains(t, string(payload), "join-me")

	decoded, err := decodeCatalog(payload)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, "class-1", decoded[0].ID)
	assert.Equal(t, "Physics", decoded[1].Title)
}
