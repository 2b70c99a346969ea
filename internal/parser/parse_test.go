package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verita-dev/verita/internal/types"
)

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) Complete(ctx context.Context, system, user string, params CompletionParams) (string, error) {
	return f.response, f.err
}

func TestParseUpdate(t *testing.T) {
	t.Run("clean JSON response", func(t *testing.T) {
		client := &fakeClient{response: `{"tasks": [{"description": "Fixed login bug", "project": "Figma", "status": "done", "mentioned_people": ["Rishi"], "due_date": null}]}`}

		result, err := ParseUpdate(context.Background(), client, "system", "raw")
		require.NoError(t, err)
		require.Len(t, result.Tasks, 1)
		assert.Equal(t, "Fixed login bug", result.Tasks[0].Description)
		assert.Equal(t, "done", result.Tasks[0].Status)
		assert.Equal(t, []string{"Rishi"}, result.Tasks[0].MentionedPeople)
		assert.Nil(t, result.Tasks[0].DueDate)
	})

	t.Run("response wrapped in extra text", func(t *testing.T) {
		client := &fakeClient{response: "Sure! Here you go:\n```json\n{\"tasks\": [{\"description\": \"Reviewed PR\", \"project\": \"Ops\", \"status\": \"done\", \"mentioned_people\": [], \"due_date\": null}]}\n```"}

		result, err := ParseUpdate(context.Background(), client, "system", "raw")
		require.NoError(t, err)
		require.Len(t, result.Tasks, 1)
		assert.Equal(t, "Reviewed PR", result.Tasks[0].Description)
	})

	t.Run("unknown status coerced to todo", func(t *testing.T) {
		client := &fakeClient{response: `{"tasks": [{"description": "x", "project": "Ops", "status": "finished", "mentioned_people": [], "due_date": null}]}`}

		result, err := ParseUpdate(context.Background(), client, "system", "raw")
		require.NoError(t, err)
		assert.Equal(t, types.StatusTodo, result.Tasks[0].Status)
	})

	t.Run("empty task list is valid", func(t *testing.T) {
		client := &fakeClient{response: `{"tasks": []}`}

		result, err := ParseUpdate(context.Background(), client, "system", "raw")
		require.NoError(t, err)
		assert.Empty(t, result.Tasks)
	})

	t.Run("non-JSON response carries raw text", func(t *testing.T) {
		client := &fakeClient{response: "I could not make sense of this update."}

		_, err := ParseUpdate(context.Background(), client, "system", "raw")

		var badResponse *BadResponseError
		require.ErrorAs(t, err, &badResponse)
		assert.Equal(t, client.response, badResponse.Raw)
	})

	t.Run("object without tasks array is rejected", func(t *testing.T) {
		client := &fakeClient{response: `{"result": "ok"}`}

		_, err := ParseUpdate(context.Background(), client, "system", "raw")

		var badResponse *BadResponseError
		require.ErrorAs(t, err, &badResponse)
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		client := &fakeClient{err: errors.New("model unavailable")}

		_, err := ParseUpdate(context.Background(), client, "system", "raw")
		assert.Error(t, err)

		var badResponse *BadResponseError
		assert.False(t, errors.As(err, &badResponse))
	})
}
