package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/inkpress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

// CategoryService wraps category related operations.
type CategoryService struct {
	db *gorm.DB
}

// CategoryInput represents fields accepted when creating a category.
type CategoryInput struct {
	Name        string
	Description string
	Color       string
}

// NewCategoryService creates a CategoryService instance.
func NewCategoryService(gdb *gorm.DB) *CategoryService {
	return &CategoryService{db: gdb}
}

// Create inserts a new category with a slug derived from its name.
func (s *CategoryService) Create(input CategoryInput) (*db.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New("category name is required")
	}

	slug := Slugify(name)
	if slug == "" {
		return nil, errors.New("category name must contain letters or digits")
	}

	var existing db.Category
	if err := s.db.Where("name = ? OR slug = ?", name, slug).First(&existing).Error; err == nil {
		return nil, ErrCategoryExists
	}

	category := db.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		Color:       strings.TrimSpace(input.Color),
	}
	if err := s.db.Create(&category).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}

	return &category, nil
}

// FindByID fetches a category by id.
func (s *CategoryService) FindByID(id string) (*db.Category, error) {
	var category db.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindBySlug fetches a category by slug.
func (s *CategoryService) FindBySlug(slug string) (*db.Category, error) {
	var category db.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// List returns all categories ordered by display name.
func (s *CategoryService) List() ([]db.Category, error) {
	var categories []db.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Delete removes a category by id. Association rows are removed by
// foreign key cascade; posts themselves are left intact.
func (s *CategoryService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&db.Category{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
