package handlers

import (
	"time"

	"github.com/verita-dev/verita/internal/parser"
)

// LLM is the completion backend for the parse and chat endpoints, set
// at boot. When nil those endpoints answer 503.
var LLM parser.Client

// now is swapped out by tests that pin the carry-over clock.
var now = time.Now

const dateLayout = "2006-01-02"

// parseDateParam parses an optional YYYY-MM-DD value as a UTC
// calendar day. Empty input yields the zero time, which the day
// window resolver replaces with today.
func parseDateParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dateLayout, s, time.UTC)
}
