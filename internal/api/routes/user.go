package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mp11089219/kanban-board-website/internal/auth"
	"github.com/mp11089219/kanban-board-website/internal/handlers"
	"github.com/mp11089219/kanban-board-website/internal/repo"
)

// registerPublicUsers adds the routes that must work without a token
func registerPublicUsers(r fiber.Router, db *gorm.DB, tokens *auth.TokenService) {
	userRepo := repo.NewUserRepository(db)
	userHandler := handlers.NewUserHandler(userRepo, tokens)

	r.Post("/users/authenticate", userHandler.Authenticate)
	r.Post("/users/register", userHandler.Register)
	r.Post("/users/logout", userHandler.Logout)
}

func registerUsers(r fiber.Router, db *gorm.DB, tokens *auth.TokenService) {
	userRepo := repo.NewUserRepository(db)
	userHandler := handlers.NewUserHandler(userRepo, tokens)

	r.Get("/users", userHandler.GetAllUsers)
	r.Get("/users/:id", userHandler.GetUserByID)
}
