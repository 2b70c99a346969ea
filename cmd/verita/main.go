package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/verita-dev/verita/db"
	"github.com/verita-dev/verita/internal/handlers"
	"github.com/verita-dev/verita/internal/parser"
	"github.com/verita-dev/verita/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded", "error", err)
	}

	if err := db.ConnectDatabase(os.Getenv("DATABASE_URL")); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.SeedDatabase(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	llm, err := parser.NewOpenAIClient()
	if err != nil {
		slog.Warn("Completion model not configured, parse and chat endpoints disabled", "error", err)
	} else {
		handlers.LLM = llm
	}

	r := router.NewRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
		slog.Info("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
