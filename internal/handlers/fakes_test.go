package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mp11089219/kanban-board-website/internal/models"
)

// In-memory repository fakes backing the handler tests.

type fakeUserRepo struct {
	users   []models.User
	findErr error
}

func (f *fakeUserRepo) CreateUser(user *models.User) (uuid.UUID, error) {
	user.ID = uuid.New()
	f.users = append(f.users, *user)
	return user.ID, nil
}

func (f *fakeUserRepo) GetAllUsers() ([]models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users, nil
}

func (f *fakeUserRepo) GetUserByID(id uuid.UUID) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeBoardRepo struct {
	boards  map[uuid.UUID]*models.Board
	saveErr error
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{boards: make(map[uuid.UUID]*models.Board)}
}

func (f *fakeBoardRepo) CreateBoard(board *models.Board) (uuid.UUID, error) {
	board.ID = uuid.New()
	copied := *board
	f.boards[board.ID] = &copied
	return board.ID, nil
}

func (f *fakeBoardRepo) GetAllBoards() ([]models.Board, error) {
	var out []models.Board
	for _, b := range f.boards {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBoardRepo) GetBoardByID(id uuid.UUID) (*models.Board, error) {
	b, ok := f.boards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBoardRepo) GetBoardsByOwner(owner string) ([]models.Board, error) {
	var out []models.Board
	for _, b := range f.boards {
		for _, o := range b.Owners {
			if o == owner {
				out = append(out, *b)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBoardRepo) SaveBoard(board *models.Board) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *board
	f.boards[board.ID] = &copied
	return nil
}

func (f *fakeBoardRepo) DeleteBoard(id uuid.UUID) error {
	delete(f.boards, id)
	return nil
}

func (f *fakeBoardRepo) AddCard(boardID, cardID uuid.UUID) error {
	b, ok := f.boards[boardID]
	if !ok {
		return nil
	}
	for _, existing := range b.Cards {
		if existing == cardID.String() {
			return nil
		}
	}
	b.Cards = append(b.Cards, cardID.String())
	return nil
}

func (f *fakeBoardRepo) RemoveCard(boardID, cardID uuid.UUID) error {
	b, ok := f.boards[boardID]
	if !ok {
		return nil
	}
	var kept []string
	for _, existing := range b.Cards {
		if existing != cardID.String() {
			kept = append(kept, existing)
		}
	}
	b.Cards = kept
	return nil
}

type fakeCardRepo struct {
	cards   map[uuid.UUID]*models.Card
	saveErr error
}

func newFakeCardRepo() *fakeCardRepo {
	return &fakeCardRepo{cards: make(map[uuid.UUID]*models.Card)}
}

func (f *fakeCardRepo) CreateCard(card *models.Card) (uuid.UUID, error) {
	card.ID = uuid.New()
	copied := *card
	f.cards[card.ID] = &copied
	return card.ID, nil
}

func (f *fakeCardRepo) GetCardsByBoard(boardID uuid.UUID) ([]models.Card, error) {
	var out []models.Card
	for _, card := range f.cards {
		if card.Board == boardID {
			out = append(out, *card)
		}
	}
	return out, nil
}

func (f *fakeCardRepo) GetCardByID(id uuid.UUID) (*models.Card, error) {
	card, ok := f.cards[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *card
	return &copied, nil
}

func (f *fakeCardRepo) SaveCard(card *models.Card) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	copied := *card
	f.cards[card.ID] = &copied
	return nil
}

func (f *fakeCardRepo) DeleteCard(id uuid.UUID) error {
	delete(f.cards, id)
	return nil
}

func (f *fakeCardRepo) DeleteCardsByBoard(boardID uuid.UUID) error {
	for id, card := range f.cards {
		if card.Board == boardID {
			delete(f.cards, id)
		}
	}
	return nil
}

// performJSON sends a request with an optional JSON body and decodes the
// response envelope.
func performJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
		reader = &buf
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}
