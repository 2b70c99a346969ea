package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/parser"
)

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "Fixed Login Bug", want: "fixed login bug"},
		{name: "trims edges", input: "  fixed login bug \t", want: "fixed login bug"},
		{name: "internal whitespace stays distinct", input: "fixed  login bug", want: "fixed  login bug"},
		{name: "punctuation stays distinct", input: "fixed login bug!", want: "fixed login bug!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDescription(tt.input))
		})
	}
}

func TestAcceptCandidates(t *testing.T) {
	existing := []string{"Fixed login bug", "  Shipped dashboard  "}

	t.Run("new descriptions are accepted", func(t *testing.T) {
		accepted, skipped, err := AcceptCandidates(existing, []parser.Task{
			{Description: "Reviewed PR"},
		})
		require.NoError(t, err)
		assert.Len(t, accepted, 1)
		assert.Equal(t, 0, skipped)
	})

	t.Run("case and edge whitespace variants are duplicates", func(t *testing.T) {
		accepted, skipped, err := AcceptCandidates(existing, []parser.Task{
			{Description: "fixed login bug "},
			{Description: "SHIPPED DASHBOARD"},
			{Description: "Reviewed PR"},
		})
		require.NoError(t, err)
		require.Len(t, accepted, 1)
		assert.Equal(t, "Reviewed PR", accepted[0].Description)
		assert.Equal(t, 2, skipped)
	})

	t.Run("wording differences are distinct", func(t *testing.T) {
		accepted, _, err := AcceptCandidates(existing, []parser.Task{
			{Description: "Fixed the login bug"},
		})
		require.NoError(t, err)
		assert.Len(t, accepted, 1)
	})

	t.Run("a submission repeating itself keeps one", func(t *testing.T) {
		accepted, skipped, err := AcceptCandidates(nil, []parser.Task{
			{Description: "Fixed login bug"},
			{Description: "fixed login bug "},
		})
		require.NoError(t, err)
		assert.Len(t, accepted, 1)
		assert.Equal(t, 1, skipped)
	})

	t.Run("all duplicates is an explicit rejection", func(t *testing.T) {
		accepted, skipped, err := AcceptCandidates(existing, []parser.Task{
			{Description: "fixed login bug"},
			{Description: "shipped dashboard"},
		})
		assert.ErrorIs(t, err, ErrAllDuplicates)
		assert.Nil(t, accepted)
		assert.Equal(t, 2, skipped)
	})
}

func TestCollapseNewest(t *testing.T) {
	// Newest first, the order the store returns.
	tasks := []models.Task{
		{ID: "t3", UserID: "u1", Description: "Fixed login bug "},
		{ID: "t2", UserID: "u1", Description: "fixed login bug"},
		{ID: "t1", UserID: "u2", Description: "Fixed login bug"},
		{ID: "t0", UserID: "u1", Description: "Shipped dashboard"},
	}

	unique := CollapseNewest(tasks)

	require.Len(t, unique, 3)
	// u1's newest duplicate wins; u2's identical description survives
	// because the key includes the member.
	assert.Equal(t, "t3", unique[0].ID)
	assert.Equal(t, "t1", unique[1].ID)
	assert.Equal(t, "t0", unique[2].ID)
}

func TestCollapseNewest_Empty(t *testing.T) {
	assert.Empty(t, CollapseNewest(nil))
}
