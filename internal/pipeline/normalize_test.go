package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/types"
)

func testProjects() []models.Project {
	return []models.Project{
		{ID: "p-figma", Name: "Figma"},
		{ID: "p-coactive", Name: "Coactive"},
		{ID: "p-fallback", Name: types.FallbackProjectName},
	}
}

func TestResolveProject(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
	}{
		{name: "exact match", input: "Figma", wantID: "p-figma"},
		{name: "lowercase matches case-insensitively", input: "figma", wantID: "p-figma"},
		{name: "uppercase matches case-insensitively", input: "COACTIVE", wantID: "p-coactive"},
		{name: "unknown name resolves to fallback", input: "Skunkworks", wantID: "p-fallback"},
		{name: "empty name resolves to fallback", input: "", wantID: "p-fallback"},
		{name: "substring is not a match", input: "Fig", wantID: "p-fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ResolveProject(tt.input, testProjects())
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolveProject_FallbackMissing(t *testing.T) {
	projects := []models.Project{{ID: "p-figma", Name: "Figma"}}

	_, err := ResolveProject("Skunkworks", projects)
	assert.ErrorIs(t, err, ErrFallbackProjectMissing)

	// A direct match still resolves even without a fallback row.
	id, err := ResolveProject("figma", projects)
	require.NoError(t, err)
	assert.Equal(t, "p-figma", id)
}
