package repo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mp11089219/kanban-board-website/internal/models"
)

// CardRepo represents the repository for the card model
type CardRepo struct {
	db *gorm.DB
}

type CardRepoInterface interface {
	CreateCard(card *models.Card) (uuid.UUID, error)
	GetCardsByBoard(boardID uuid.UUID) ([]models.Card, error)
	GetCardByID(id uuid.UUID) (*models.Card, error)
	SaveCard(card *models.Card) error
	DeleteCard(id uuid.UUID) error
	DeleteCardsByBoard(boardID uuid.UUID) error
}

func NewCardRepository(db *gorm.DB) CardRepoInterface {
	return &CardRepo{db: db}
}

// CreateCard persists a new card and returns its generated id
func (r *CardRepo) CreateCard(card *models.Card) (uuid.UUID, error) {
	uuid := uuid.New()
	card.ID = uuid
	err := r.db.Create(card).Error
	return uuid, err
}

// GetCardsByBoard returns all cards whose board field equals boardID
func (r *CardRepo) GetCardsByBoard(boardID uuid.UUID) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.Where("board = ?", boardID).Find(&cards).Error
	return cards, err
}

func (r *CardRepo) GetCardByID(id uuid.UUID) (*models.Card, error) {
	var card models.Card
	if err := r.db.First(&card, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// SaveCard writes back a loaded card after field edits
func (r *CardRepo) SaveCard(card *models.Card) error {
	return r.db.Save(card).Error
}

func (r *CardRepo) DeleteCard(id uuid.UUID) error {
	return r.db.Delete(&models.Card{}, "id = ?", id).Error
}

// DeleteCardsByBoard removes every card belonging to the board, used by the
// board delete cascade
func (r *CardRepo) DeleteCardsByBoard(boardID uuid.UUID) error {
	return r.db.Where("board = ?", boardID).Delete(&models.Card{}).Error
}
