package pipeline

import (
	"errors"
	"strings"

	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/types"
)

// ErrFallbackProjectMissing means the catch-all project is gone from
// the project set. Irrecoverable configuration error; surfaced, never
// retried.
var ErrFallbackProjectMissing = errors.New("fallback project missing")

// ResolveProject maps a free-text project name to its canonical id.
// Matching is case-insensitive and exact; an unmatched name resolves
// to the fallback project rather than dropping the task.
func ResolveProject(name string, projects []models.Project) (string, error) {
	for _, p := range projects {
		if strings.EqualFold(p.Name, name) {
			return p.ID, nil
		}
	}

	for _, p := range projects {
		if p.Name == types.FallbackProjectName {
			return p.ID, nil
		}
	}

	return "", ErrFallbackProjectMissing
}
