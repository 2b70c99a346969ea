package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/verita-dev/verita/internal/types"
)

// Task is one candidate task proposed by the model, not yet persisted.
type Task struct {
	Description     string   `json:"description"`
	Project         string   `json:"project"`
	Status          string   `json:"status"`
	MentionedPeople []string `json:"mentioned_people"`
	DueDate         *string  `json:"due_date"`
}

type Result struct {
	Tasks []Task `json:"tasks"`
}

// BadResponseError means the model reply was not valid, extractable
// JSON of the expected shape. Raw carries the upstream text for
// diagnosis; nothing is partially accepted.
type BadResponseError struct {
	Raw    string
	Reason string
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("bad model response: %s", e.Reason)
}

// ParseUpdate runs one raw free-text update through the model and
// returns the candidate task list. The call is synchronously awaited;
// its output is required before the caller can proceed.
func ParseUpdate(ctx context.Context, client Client, system, rawText string) (*Result, error) {
	content, err := client.Complete(ctx, system, rawText, CompletionParams{
		Temperature: 0.1,
		MaxTokens:   2048,
	})
	if err != nil {
		return nil, err
	}

	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		extracted, exErr := ExtractJSON(content)
		if exErr != nil {
			return nil, &BadResponseError{Raw: content, Reason: "not valid JSON"}
		}
		result = Result{}
		if err := json.Unmarshal([]byte(extracted), &result); err != nil {
			return nil, &BadResponseError{Raw: content, Reason: "extracted object is not valid JSON"}
		}
	}

	if result.Tasks == nil {
		return nil, &BadResponseError{Raw: content, Reason: "missing tasks array"}
	}

	for i := range result.Tasks {
		if !types.ValidStatus(result.Tasks[i].Status) {
			slog.Warn("Unknown task status from model, coercing to todo", "status", result.Tasks[i].Status)
			result.Tasks[i].Status = types.StatusTodo
		}
	}

	return &result, nil
}
