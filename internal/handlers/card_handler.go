package handlers

import (
	"log"

	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"

	"github.com/mp11089219/kanban-board-website/internal/models"
	"github.com/mp11089219/kanban-board-website/internal/repo"
)

// for simple crud operations service layer is not required
type CardHandler struct {
	repo      repo.CardRepoInterface
	boardRepo repo.BoardRepoInterface
}

func NewCardHandler(repo repo.CardRepoInterface, boardRepo repo.BoardRepoInterface) *CardHandler {
	return &CardHandler{
		repo:      repo,
		boardRepo: boardRepo,
	}
}

// function to get all cards for a board
func (h *CardHandler) GetCardsByBoard(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error finding cards",
		})
	}

	cards, err := h.repo.GetCardsByBoard(boardID)
	if err != nil {
		log.Println(err, "Error getting cards")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error finding cards",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": cards,
	})
}

// function to create a card under a board. Two sequential writes: the card
// row, then the id registered on the parent board. The first write is not
// rolled back if the second one fails.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	boardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error creating cards",
		})
	}

	var dto struct {
		Content  string `json:"content" form:"content"`
		Category string `json:"category" form:"category"`
	}
	if err := c.BodyParser(&dto); err != nil {
		log.Println(err, "Error parsing card body")
	}

	card := models.Card{
		Content:  dto.Content,
		Category: dto.Category,
		Board:    boardID,
	}
	cardID, err := h.repo.CreateCard(&card)
	if err != nil {
		log.Println(err, "Error creating card")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error creating cards",
		})
	}

	if err := h.boardRepo.AddCard(boardID, cardID); err != nil {
		log.Println(err, "Error registering card on board")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error finding and updating board",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": card,
	})
}

// function to get card by ID
func (h *CardHandler) GetCardByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("cardId"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error finding card",
		})
	}

	card, err := h.repo.GetCardByID(id)
	if err != nil {
		log.Println(err, "Error getting card")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error finding card",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": card,
	})
}

// function to update card content/category by ID, only fields present in
// the body are overwritten
func (h *CardHandler) UpdateCard(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("cardId"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Card not found",
		})
	}

	card, err := h.repo.GetCardByID(id)
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Card not found",
		})
	}

	var dto struct {
		Content  *string `json:"content" form:"content"`
		Category *string `json:"category" form:"category"`
	}
	if err := c.BodyParser(&dto); err != nil {
		log.Println(err, "Error parsing card body")
	}

	if dto.Content != nil {
		card.Content = *dto.Content
	}
	if dto.Category != nil {
		card.Category = *dto.Category
	}

	if err := h.repo.SaveCard(card); err != nil {
		log.Println(err, "Error saving card")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error saving card",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": card,
	})
}

// function to delete a card and pull its id from the parent board. Same
// two-step, no-rollback shape as CreateCard.
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	cardID, err := uuid.Parse(c.Params("cardId"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error finding and removing card",
		})
	}

	if err := h.repo.DeleteCard(cardID); err != nil {
		log.Println(err, "Error removing card")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error finding and removing card",
		})
	}

	boardID, err := uuid.Parse(c.Params("boardId"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error removing card from board",
		})
	}
	if err := h.boardRepo.RemoveCard(boardID, cardID); err != nil {
		log.Println(err, "Error removing card from board")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error removing card from board",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Card successfully removed",
	})
}
