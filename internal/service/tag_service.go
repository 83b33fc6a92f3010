package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/inkpress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTagNotFound = errors.New("tag not found")
	ErrTagExists   = errors.New("tag already exists")
)

// TagService wraps tag related operations.
type TagService struct {
	db *gorm.DB
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// Create inserts a new tag with unique name and derived slug.
func (s *TagService) Create(name string) (*db.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("tag name is required")
	}

	slug := Slugify(name)
	if slug == "" {
		return nil, errors.New("tag name must contain letters or digits")
	}

	var existing db.Tag
	if err := s.db.Where("name = ? OR slug = ?", name, slug).First(&existing).Error; err == nil {
		return nil, ErrTagExists
	}

	tag := db.Tag{
		ID:   uuid.NewString(),
		Name: name,
		Slug: slug,
	}
	if err := s.db.Create(&tag).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrTagExists
		}
		return nil, err
	}

	return &tag, nil
}

// FindByID fetches a tag by id.
func (s *TagService) FindByID(id string) (*db.Tag, error) {
	var tag db.Tag
	if err := s.db.First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// FindBySlug fetches a tag by slug.
func (s *TagService) FindBySlug(slug string) (*db.Tag, error) {
	var tag db.Tag
	if err := s.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// List returns all tags ordered by display name.
func (s *TagService) List() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.Order("name asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Delete removes a tag by id. Association rows are removed by foreign
// key cascade; posts themselves are left intact.
func (s *TagService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&db.Tag{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTagNotFound
	}
	return nil
}
