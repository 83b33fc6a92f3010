package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/inkpress/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// UserService wraps user related database operations.
type UserService struct {
	db *gorm.DB
}

// UserInput represents fields accepted when creating a user.
type UserInput struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// NewUserService creates a UserService instance.
func NewUserService(gdb *gorm.DB) *UserService {
	return &UserService{db: gdb}
}

// Create inserts a new user with a hashed password and generated identifier.
func (s *UserService) Create(input UserInput) (*db.User, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" {
		return nil, errors.New("user email is required")
	}
	if name == "" {
		return nil, errors.New("user name is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, errors.New("user password is required")
	}

	var existing db.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = "author"
	}

	user := db.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}

// FindByID fetches a user by id.
func (s *UserService) FindByID(id string) (*db.User, error) {
	var user db.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail fetches a user by email.
func (s *UserService) FindByEmail(email string) (*db.User, error) {
	var user db.User
	if err := s.db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns all users ordered by display name.
func (s *UserService) List() ([]db.User, error) {
	var users []db.User
	if err := s.db.Order("name asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes a user by id. The user's posts and their association
// rows are removed by foreign key cascade.
func (s *UserService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&db.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
