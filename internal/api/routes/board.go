package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mp11089219/kanban-board-website/internal/handlers"
	"github.com/mp11089219/kanban-board-website/internal/repo"
)

func registerBoards(r fiber.Router, db *gorm.DB) {
	// Initialize handler
	boardRepo := repo.NewBoardRepository(db)
	cardRepo := repo.NewCardRepository(db)
	boardHandler := handlers.NewBoardHandler(boardRepo, cardRepo)

	// Register routes
	r.Get("/boards", boardHandler.GetAllBoards)
	r.Post("/boards", boardHandler.CreateBoard)
	r.Get("/boards/owner/:id", boardHandler.GetBoardsByOwner)
	r.Get("/boards/:id", boardHandler.GetBoardByID)
	r.Put("/boards/:id", boardHandler.UpdateBoard)
	r.Delete("/boards/:id", boardHandler.DeleteBoard)
}
