package handlers

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"

	"github.com/mp11089219/kanban-board-website/internal/auth"
	"github.com/mp11089219/kanban-board-website/internal/models"
	"github.com/mp11089219/kanban-board-website/internal/repo"
)

// for simple crud operations service layer is not required
type UserHandler struct {
	repo   repo.UserRepoInterface
	tokens *auth.TokenService
}

func NewUserHandler(repo repo.UserRepoInterface, tokens *auth.TokenService) *UserHandler {
	return &UserHandler{
		repo:   repo,
		tokens: tokens,
	}
}

// function to register a new user
func (h *UserHandler) Register(c *fiber.Ctx) error {
	// pointer fields: "absent" and "empty" are different cases here, only
	// absent fields fail validation
	var dto struct {
		Username *string `json:"username" form:"username"`
		Email    *string `json:"email" form:"email"`
		Password *string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&dto); err != nil {
		log.Println(err, "Error parsing register body")
	}

	username := ""
	if dto.Username != nil {
		username = *dto.Username
	}

	_, err := h.repo.GetUserByUsername(username)
	if err == nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Registration failed. User already exists.",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		// lookup failures are unrecoverable, let the app error handler answer
		return err
	}

	if dto.Username == nil || dto.Email == nil || dto.Password == nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "User not valid",
		})
	}

	hash, err := auth.HashPassword(*dto.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     *dto.Username,
		Email:        *dto.Email,
		PasswordHash: hash,
	}
	if _, err := h.repo.CreateUser(&user); err != nil {
		return err
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

// function to authenticate an existing user
func (h *UserHandler) Authenticate(c *fiber.Ctx) error {
	var dto struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&dto); err != nil {
		log.Println(err, "Error parsing authenticate body")
	}

	user, err := h.repo.GetUserByUsername(dto.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Authentication failed. User not found.",
		})
	}
	if err != nil {
		return err
	}

	if !auth.CheckPassword(dto.Password, user.PasswordHash) {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Authentication failed. Wrong password.",
		})
	}

	token, err := h.tokens.Issue(*user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully authenticated",
		"token":   token,
		"user":    user,
	})
}

// logout is client-side token disposal, the server keeps no session state
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "User logout successfully",
	})
}

// function to get all registered users
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.repo.GetAllUsers()
	if err != nil {
		log.Println(err, "Error getting users")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Cant get users",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": users,
	})
}

// function to get user information by ID
func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Cant get the user",
		})
	}

	user, err := h.repo.GetUserByID(id)
	if err != nil {
		log.Println(err, "Error getting user")
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Cant get the user",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": user,
	})
}
