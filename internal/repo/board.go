package repo

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mp11089219/kanban-board-website/internal/models"
)

// BoardRepo represents the repository for the board model
type BoardRepo struct {
	db *gorm.DB
}

type BoardRepoInterface interface {
	CreateBoard(board *models.Board) (uuid.UUID, error)
	GetAllBoards() ([]models.Board, error)
	GetBoardByID(id uuid.UUID) (*models.Board, error)
	GetBoardsByOwner(owner string) ([]models.Board, error)
	SaveBoard(board *models.Board) error
	DeleteBoard(id uuid.UUID) error
	AddCard(boardID, cardID uuid.UUID) error
	RemoveCard(boardID, cardID uuid.UUID) error
}

func NewBoardRepository(db *gorm.DB) BoardRepoInterface {
	return &BoardRepo{db: db}
}

// CreateBoard creates a new board in the database
func (r *BoardRepo) CreateBoard(board *models.Board) (uuid.UUID, error) {
	uuid := uuid.New()
	board.ID = uuid
	if board.Owners == nil {
		board.Owners = datatypes.NewJSONSlice([]string{})
	}
	if board.Cards == nil {
		board.Cards = datatypes.NewJSONSlice([]string{})
	}
	err := r.db.Create(board).Error
	return uuid, err
}

// GetAllBoards returns all boards in the database
func (r *BoardRepo) GetAllBoards() ([]models.Board, error) {
	var boards []models.Board
	err := r.db.Find(&boards).Error
	return boards, err
}

func (r *BoardRepo) GetBoardByID(id uuid.UUID) (*models.Board, error) {
	var board models.Board
	if err := r.db.First(&board, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// GetBoardsByOwner returns boards whose owners array contains the given id.
// Owners is a JSONB array, so this is a containment query.
func (r *BoardRepo) GetBoardsByOwner(owner string) ([]models.Board, error) {
	var boards []models.Board
	err := r.db.Where("owners @> to_jsonb(?::text)", owner).Find(&boards).Error
	return boards, err
}

// SaveBoard writes back a loaded board after field edits
func (r *BoardRepo) SaveBoard(board *models.Board) error {
	return r.db.Save(board).Error
}

func (r *BoardRepo) DeleteBoard(id uuid.UUID) error {
	return r.db.Delete(&models.Board{}, "id = ?", id).Error
}

// AddCard appends the card id to the board's cards array with set semantics:
// the guard keeps a repeated append from producing a duplicate, whatever the
// interleaving of concurrent card creations.
func (r *BoardRepo) AddCard(boardID, cardID uuid.UUID) error {
	return r.db.Exec(
		`UPDATE boards SET cards = cards || to_jsonb(?::text) WHERE id = ? AND NOT cards @> to_jsonb(?::text)`,
		cardID.String(), boardID, cardID.String(),
	).Error
}

// RemoveCard pulls the card id out of the board's cards array
func (r *BoardRepo) RemoveCard(boardID, cardID uuid.UUID) error {
	return r.db.Exec(
		`UPDATE boards SET cards = cards - ?::text WHERE id = ?`,
		cardID.String(), boardID,
	).Error
}
