package repo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mp11089219/kanban-board-website/internal/models"
)

// UserRepo represents the repository for the user model
type UserRepo struct {
	db *gorm.DB
}

type UserRepoInterface interface {
	CreateUser(user *models.User) (uuid.UUID, error)
	GetAllUsers() ([]models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
}

func NewUserRepository(db *gorm.DB) UserRepoInterface {
	return &UserRepo{db: db}
}

// CreateUser persists a new user and returns its generated id
func (r *UserRepo) CreateUser(user *models.User) (uuid.UUID, error) {
	uuid := uuid.New()
	user.ID = uuid
	err := r.db.Create(user).Error
	return uuid, err
}

// GetAllUsers returns all users in the database
func (r *UserRepo) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *UserRepo) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns gorm.ErrRecordNotFound when no such username
// exists; registration and login both depend on that distinction.
func (r *UserRepo) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
