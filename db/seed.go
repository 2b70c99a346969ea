package db

import (
	"log/slog"

	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/types"
)

// SeedDatabase inserts the default team members and projects. It is
// upsert-style and safe to run on every boot; existing rows win. The
// fallback project is created here and must never be deleted.
func SeedDatabase() error {
	teamMembers := []models.TeamMember{
		{Name: "Kenneth", Color: "#3B82F6"},
		{Name: "Shubham", Color: "#22C55E"},
		{Name: "Bhupendra", Color: "#A855F7"},
		{Name: "Saahith", Color: "#EAB308"},
		{Name: "Rishi", Color: "#EF4444"},
		{Name: "Rithika", Color: "#F97316"},
	}

	for _, member := range teamMembers {
		var existing models.TeamMember
		if err := DB.Where("name = ?", member.Name).FirstOrCreate(&existing, member).Error; err != nil {
			return err
		}
	}

	projects := []models.Project{
		{Name: "Coactive", Color: "#EF4444", IsActive: true},
		{Name: "Treeswift", Color: "#22C55E", IsActive: true},
		{Name: "Preference Model", Color: "#3B82F6", IsActive: true},
		{Name: "AGI Inc", Color: "#8B5CF6", IsActive: true},
		{Name: "Figma", Color: "#EAB308", IsActive: true},
		{Name: "Conde Nast", Color: "#A855F7", IsActive: true},
		{Name: "Causal Labs", Color: "#14B8A6", IsActive: true},
		{Name: types.FallbackProjectName, Color: "#6B7280", IsActive: true},
	}

	for _, project := range projects {
		var existing models.Project
		if err := DB.Where("name = ?", project.Name).FirstOrCreate(&existing, project).Error; err != nil {
			return err
		}
	}

	slog.Info("Database seeded", "members", len(teamMembers), "projects", len(projects))
	return nil
}
