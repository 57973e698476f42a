package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mp11089219/kanban-board-website/internal/api"
	"github.com/mp11089219/kanban-board-website/internal/api/routes"
	"github.com/mp11089219/kanban-board-website/internal/config"
)

func main() {
	// Load environment variables, profile file first when APP_ENV is set
	if env := os.Getenv("APP_ENV"); env != "" {
		if err := godotenv.Load(".env." + env); err != nil {
			log.Printf("Warning: .env.%s file not found", env)
		}
	}
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	// Connect to database
	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer config.CloseDB(db)

	// Run migrations
	if err := config.MigrateAllModels(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create and configure Fiber app
	app := api.NewServer(cfg)

	// Register routes
	routes.Register(app, db, cfg)

	// Start server
	if err := api.StartServer(app, cfg); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
