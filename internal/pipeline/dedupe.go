package pipeline

import (
	"errors"
	"strings"

	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/parser"
)

// ErrAllDuplicates means every candidate task in a submission matched
// an existing description for that member and day. Callers surface it
// as a distinct "nothing new to add" rejection before any write.
var ErrAllDuplicates = errors.New("all tasks already exist for this day")

// NormalizeDescription is the single dedup key shared by the
// write-side and read-side filters: lowercased and trimmed, nothing
// else. Internal whitespace and punctuation differences stay distinct.
func NormalizeDescription(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AcceptCandidates partitions candidate tasks against the descriptions
// already recorded for the same member and day. It returns the
// accepted candidates and the number skipped as duplicates; when
// nothing survives it fails with ErrAllDuplicates instead of silently
// accepting zero writes.
func AcceptCandidates(existing []string, candidates []parser.Task) ([]parser.Task, int, error) {
	seen := make(map[string]bool, len(existing))
	for _, d := range existing {
		seen[NormalizeDescription(d)] = true
	}

	accepted := make([]parser.Task, 0, len(candidates))
	for _, c := range candidates {
		key := NormalizeDescription(c.Description)
		if seen[key] {
			continue
		}
		// A submission can repeat itself too.
		seen[key] = true
		accepted = append(accepted, c)
	}

	skipped := len(candidates) - len(accepted)
	if len(accepted) == 0 {
		return nil, skipped, ErrAllDuplicates
	}

	return accepted, skipped, nil
}

// CollapseNewest is the read-side filter: it keeps one task per
// (member, normalized description) pair. Input is expected in
// descending creation order, so the first occurrence kept is the
// newest. It protects display correctness even if duplicate rows
// reached storage through a path that bypassed AcceptCandidates.
func CollapseNewest(tasks []models.Task) []models.Task {
	seen := make(map[string]bool, len(tasks))
	unique := make([]models.Task, 0, len(tasks))

	for _, t := range tasks {
		key := t.UserID + ":" + NormalizeDescription(t.Description)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, t)
	}

	return unique
}
