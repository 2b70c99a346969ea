package services

import (
	"fmt"
	"log/slog"

	"github.com/verita-dev/verita/internal/types"
)

type TaskAction string

const (
	ActionCreated       TaskAction = "created"
	ActionUpdated       TaskAction = "updated"
	ActionStatusChanged TaskAction = "status_changed"
	ActionDeleted       TaskAction = "deleted"
)

type TaskNotification struct {
	UserName        string
	SlackUserID     string
	TaskDescription string
	ProjectName     string
	Action          TaskAction
	OldStatus       string
	NewStatus       string
}

var statusLabels = map[string]string{
	types.StatusTodo:       "Todo",
	types.StatusInProgress: "In Progress",
	types.StatusDone:       "Done",
	types.StatusBlocked:    "Blocked",
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// FormatTaskMessage renders the Slack text for a task change.
func FormatTaskMessage(n TaskNotification) string {
	switch n.Action {
	case ActionCreated:
		return fmt.Sprintf("✨ *New task assigned to you:*\n%s\n_Project: %s_", n.TaskDescription, n.ProjectName)
	case ActionUpdated:
		return fmt.Sprintf("✏️ *Task updated:*\n%s\n_Project: %s_", n.TaskDescription, n.ProjectName)
	case ActionStatusChanged:
		return fmt.Sprintf("🔄 *Task status changed:* %s → %s\n%s",
			statusLabel(n.OldStatus), statusLabel(n.NewStatus), n.TaskDescription)
	case ActionDeleted:
		return fmt.Sprintf("🗑️ *Task deleted:*\n%s", n.TaskDescription)
	}
	return ""
}

// NotifyTaskChange sends the Slack DM for a task change. Failures are
// logged and swallowed: a notification must never fail the mutation it
// reports on. Callers run it off the response path.
func NotifyTaskChange(n TaskNotification) {
	if n.SlackUserID == "" {
		return
	}

	message := FormatTaskMessage(n)
	if message == "" {
		return
	}

	if err := SendSlackDM(n.SlackUserID, message); err != nil {
		slog.Error("Failed to send task notification",
			"user", n.UserName, "action", string(n.Action), "error", err)
	}
}
