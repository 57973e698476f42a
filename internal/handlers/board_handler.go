package handlers

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/gofiber/fiber/v2"

	"github.com/mp11089219/kanban-board-website/internal/models"
	"github.com/mp11089219/kanban-board-website/internal/repo"
)

// for simple crud operations service layer is not required
type BoardHandler struct {
	repo     repo.BoardRepoInterface
	cardRepo repo.CardRepoInterface
}

func NewBoardHandler(repo repo.BoardRepoInterface, cardRepo repo.CardRepoInterface) *BoardHandler {
	return &BoardHandler{
		repo:     repo,
		cardRepo: cardRepo,
	}
}

// function to get all boards
func (h *BoardHandler) GetAllBoards(c *fiber.Ctx) error {
	boards, err := h.repo.GetAllBoards()
	if err != nil {
		log.Println(err, "Error getting boards")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error finding boards",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": boards,
	})
}

// function to create a board
func (h *BoardHandler) CreateBoard(c *fiber.Ctx) error {
	var dto struct {
		Name        string `json:"name" form:"name"`
		Description string `json:"description" form:"description"`
		Owner       string `json:"owner" form:"owner"`
	}
	if err := c.BodyParser(&dto); err != nil {
		log.Println(err, "Error parsing board body")
	}

	board := models.Board{
		Name:        dto.Name,
		Description: dto.Description,
		Owners:      datatypes.NewJSONSlice([]string{dto.Owner}),
		Cards:       datatypes.NewJSONSlice([]string{}),
	}
	if _, err := h.repo.CreateBoard(&board); err != nil {
		log.Println(err, "Error creating board")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error creating board",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": board,
	})
}

// function to get board by ID
func (h *BoardHandler) GetBoardByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Board not found",
		})
	}

	board, err := h.repo.GetBoardByID(id)
	if err != nil {
		log.Println(err, "Error getting board")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Board not found",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": board,
	})
}

// function to update board name/description by ID, only fields present in
// the body are overwritten
func (h *BoardHandler) UpdateBoard(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Board not found",
		})
	}

	board, err := h.repo.GetBoardByID(id)
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Board not found",
		})
	}

	var dto struct {
		Name        *string `json:"name" form:"name"`
		Description *string `json:"description" form:"description"`
	}
	if err := c.BodyParser(&dto); err != nil {
		log.Println(err, "Error parsing board body")
	}

	if dto.Name != nil {
		board.Name = *dto.Name
	}
	if dto.Description != nil {
		board.Description = *dto.Description
	}

	if err := h.repo.SaveBoard(board); err != nil {
		log.Println(err, "Error saving board")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error saving board",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": board,
	})
}

// function to remove a board and cascade to its cards. The three steps are
// sequential and not transactional: a failure after the board delete leaves
// the cards orphaned.
func (h *BoardHandler) DeleteBoard(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Board not found",
		})
	}

	if _, err := h.repo.GetBoardByID(id); err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Board not found",
		})
	}

	if err := h.repo.DeleteBoard(id); err != nil {
		log.Println(err, "Error removing board")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error removing board",
		})
	}

	if err := h.cardRepo.DeleteCardsByBoard(id); err != nil {
		log.Println(err, "Error removing board cards")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error removing board cards",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Board with id = %s deleted", id),
	})
}

// function to get the boards owned by a user
func (h *BoardHandler) GetBoardsByOwner(c *fiber.Ctx) error {
	boards, err := h.repo.GetBoardsByOwner(c.Params("id"))
	if err != nil {
		log.Println(err, "Error getting user boards")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Error finding user boards",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": boards,
	})
}
