package db

import (
	"strings"

	"github.com/verita-dev/verita/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase opens the store. A postgres DSN selects postgres;
// an empty DSN or a "sqlite:" prefix selects the embedded sqlite file.
func ConnectDatabase(dsn string) error {
	var err error

	// FK constraints are disabled on purpose: deleting a team member
	// must leave their tasks in place with a dangling user reference.
	cfg := &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}

	switch {
	case dsn == "":
		DB, err = gorm.Open(sqlite.Open("verita.db"), cfg)
	case strings.HasPrefix(dsn, "sqlite:"):
		DB, err = gorm.Open(sqlite.Open(strings.TrimPrefix(dsn, "sqlite:")), cfg)
	default:
		DB, err = gorm.Open(postgres.Open(dsn), cfg)
	}

	if err != nil {
		return err
	}

	return nil
}

func MigrateDatabase() error {
	models := []interface{}{
		&models.TeamMember{},
		&models.Project{},
		&models.Update{},
		&models.Task{},
	}

	migrator := DB.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := DB.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
