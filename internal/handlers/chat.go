package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/verita-dev/verita/db"
	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/parser"
	"github.com/verita-dev/verita/internal/store"
	"github.com/verita-dev/verita/internal/types"
)

type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

const chatSystemTemplate = `You are a helpful assistant for a team task management app called "Verita Updates".
You have access to task data and can answer questions about team members, their tasks, progress, and projects.
Be concise and friendly. Use bullet points for lists. If asked about specific people or dates, provide accurate counts.
If you don't have enough data to answer, say so politely.

Here is the current data:

%s`

// Chat answers free-form questions over the last seven days of tasks.
func Chat(ctx *gin.Context) {
	var body ChatRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	if LLM == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat model not configured"})
		return
	}

	var members []models.TeamMember
	if err := db.DB.Find(&members).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team members"})
		return
	}

	var projects []models.Project
	if err := db.DB.Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	current := now()

	recent, err := store.NewTaskStore(db.DB).Since(current.Add(-7 * 24 * time.Hour))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tasks"})
		return
	}

	summary := buildChatContext(members, projects, recent, current)

	answer, err := LLM.Complete(ctx.Request.Context(),
		fmt.Sprintf(chatSystemTemplate, summary),
		body.Question,
		parser.CompletionParams{Temperature: 0.3, MaxTokens: 500},
	)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to process question"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"answer": answer})
}

// buildChatContext renders the member, project, and task data into the
// plain-text block the chat model is grounded on. Tasks are grouped by
// calendar day (newest first, preserving input order) and member.
func buildChatContext(members []models.TeamMember, projects []models.Project, tasks []models.Task, current time.Time) string {
	memberNames := make([]string, 0, len(members))
	for _, m := range members {
		memberNames = append(memberNames, m.Name)
	}

	projectNames := make([]string, 0, len(projects))
	for _, p := range projects {
		projectNames = append(projectNames, p.Name)
	}

	todayStr := current.UTC().Format(dateLayout)
	yesterdayStr := current.UTC().AddDate(0, 0, -1).Format(dateLayout)

	dayOrder := []string{}
	byDay := map[string][]models.Task{}
	for _, t := range tasks {
		key := t.CreatedAt.UTC().Format(dateLayout)
		if _, ok := byDay[key]; !ok {
			dayOrder = append(dayOrder, key)
		}
		byDay[key] = append(byDay[key], t)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TEAM MEMBERS: %s\n\n", strings.Join(memberNames, ", "))
	fmt.Fprintf(&b, "PROJECTS: %s\n\n", strings.Join(projectNames, ", "))
	fmt.Fprintf(&b, "TODAY'S DATE: %s\n", todayStr)
	fmt.Fprintf(&b, "YESTERDAY'S DATE: %s\n\n", yesterdayStr)
	b.WriteString("TASKS DATA (last 7 days):\n")

	for _, day := range dayOrder {
		label := day
		switch day {
		case todayStr:
			label = "TODAY"
		case yesterdayStr:
			label = "YESTERDAY"
		}

		fmt.Fprintf(&b, "\n[%s]\n", label)

		userOrder := []string{}
		byUser := map[string][]models.Task{}
		for _, t := range byDay[day] {
			name := t.User.Name
			if name == "" {
				name = t.UserID
			}
			if _, ok := byUser[name]; !ok {
				userOrder = append(userOrder, name)
			}
			byUser[name] = append(byUser[name], t)
		}

		for _, name := range userOrder {
			userTasks := byUser[name]

			counts := map[string]int{}
			for _, t := range userTasks {
				counts[t.Status]++
			}

			lines := make([]string, 0, len(userTasks))
			for _, t := range userTasks {
				lines = append(lines, fmt.Sprintf("%q [%s] (%s)", t.Description, t.Status, t.Project.Name))
			}

			fmt.Fprintf(&b, "%s: %d tasks (%d done, %d in progress, %d todo, %d blocked)\n  Tasks: %s\n",
				name, len(userTasks),
				counts[types.StatusDone], counts[types.StatusInProgress],
				counts[types.StatusTodo], counts[types.StatusBlocked],
				strings.Join(lines, "; "))
		}
	}

	return strings.TrimSpace(b.String())
}
