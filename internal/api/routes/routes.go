package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mp11089219/kanban-board-website/internal/api/middleware"
	"github.com/mp11089219/kanban-board-website/internal/auth"
	"github.com/mp11089219/kanban-board-website/internal/config"
)

// Register wires up the whole route surface. Registration order matters:
// the token gate only covers routes added after the app.Use call, leaving
// authenticate/register/logout public.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	tokens := auth.NewTokenService(cfg.Secret)

	registerHealth(app)
	registerPublicUsers(app, db, tokens)

	app.Use(middleware.TokenAuth(tokens))

	registerUsers(app, db, tokens)
	registerBoards(app, db)
	registerCards(app, db)
}
