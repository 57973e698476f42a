package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mp11089219/kanban-board-website/internal/handlers"
	"github.com/mp11089219/kanban-board-website/internal/repo"
)

func registerCards(r fiber.Router, db *gorm.DB) {
	// Initialize handler
	cardRepo := repo.NewCardRepository(db)
	boardRepo := repo.NewBoardRepository(db)
	cardHandler := handlers.NewCardHandler(cardRepo, boardRepo)

	// Register routes
	r.Get("/boards/:id/cards", cardHandler.GetCardsByBoard)
	r.Post("/boards/:id/cards", cardHandler.CreateCard)
	r.Get("/boards/:boardId/cards/:cardId", cardHandler.GetCardByID)
	r.Put("/boards/:boardId/cards/:cardId", cardHandler.UpdateCard)
	r.Delete("/boards/:boardId/cards/:cardId", cardHandler.DeleteCard)
}
