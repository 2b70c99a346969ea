package parser

import (
	"fmt"
	"strings"

	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/types"
)

const systemPromptTemplate = `You are helping parse a daily work update for the team.

Team members: %s

Active projects: %s

Parse the raw update into individual tasks. For each task extract:
- description: clean, concise version of what was done/doing
- project: which project this belongs to (use %s for general/admin stuff)
- status: one of done, in_progress, todo, blocked
- mentioned_people: array of team member names mentioned
- due_date: ISO date string if mentioned, otherwise null

Status detection hints:
- done/finished/completed/sent -> done
- working on/doing/in progress -> in_progress
- need to/will/should/todo/meeting -> todo
- blocked/waiting/stuck -> blocked

Respond ONLY with valid JSON, no markdown, no extra text:
{
  "tasks": [
    {
      "description": "...",
      "project": "...",
      "status": "...",
      "mentioned_people": [],
      "due_date": null
    }
  ]
}`

// SystemPrompt renders the parsing instruction with the live member
// and active-project lists.
func SystemPrompt(members []models.TeamMember, projects []models.Project) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}

	projectNames := make([]string, 0, len(projects))
	for _, p := range projects {
		if p.IsActive {
			projectNames = append(projectNames, p.Name)
		}
	}

	return fmt.Sprintf(systemPromptTemplate,
		strings.Join(names, ", "),
		strings.Join(projectNames, ", "),
		types.FallbackProjectName,
	)
}
