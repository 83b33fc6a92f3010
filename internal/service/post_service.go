package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkpress/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrPostSlugTaken = errors.New("post slug already exists")
	ErrTitleRequired = errors.New("post title is required")
	ErrBodyRequired  = errors.New("post content is required")
	ErrAuthorMissing = errors.New("post author is required")
)

// PostService wraps post related database operations.
type PostService struct {
	db *gorm.DB

	// RestampOnRepublish 控制对已发布的文章再次发布时是否刷新发布时间。
	// 默认保留首次发布时间，保证永久链接与订阅源的稳定。
	RestampOnRepublish bool
}

// PostInput represents fields accepted when creating a post.
type PostInput struct {
	Title       string
	Content     string
	Excerpt     string
	CoverImage  string
	Slug        string
	Published   bool
	Featured    bool
	CategoryIDs []string
	TagIDs      []string
	UserID      string
}

// PostUpdate carries a partial update. Nil fields are left untouched;
// a non-nil empty CategoryIDs/TagIDs slice clears the association set.
type PostUpdate struct {
	Title       *string
	Content     *string
	Excerpt     *string
	CoverImage  *string
	Slug        *string
	Published   *bool
	Featured    *bool
	CategoryIDs []string
	TagIDs      []string
}

// PostFilter describes filters for listing posts. Filters combine with
// logical AND; nil booleans are not applied.
type PostFilter struct {
	Published *bool
	Featured  *bool
	Search    string
	Limit     int
	Offset    int
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// Create persists a post and associates categories and tags in a transaction.
// Slug and reading time are computed when not supplied.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrBodyRequired
	}
	if strings.TrimSpace(input.UserID) == "" {
		return nil, ErrAuthorMissing
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if slug == "" {
		return nil, ErrTitleRequired
	}

	post := db.Post{
		ID:          uuid.NewString(),
		Title:       title,
		Slug:        slug,
		Content:     input.Content,
		Excerpt:     strings.TrimSpace(input.Excerpt),
		CoverImage:  strings.TrimSpace(input.CoverImage),
		Published:   input.Published,
		Featured:    input.Featured,
		ReadingTime: EstimateReadingTime(input.Content),
		UserID:      input.UserID,
	}
	if input.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	return s.saveWithAssociations(&post, input.CategoryIDs, input.TagIDs, true, true)
}

// Update applies the non-nil fields of a partial update to an existing post.
// Reading time is recomputed when content changes; the first transition to
// published stamps the publish time.
func (s *PostService) Update(id string, update PostUpdate) (*db.Post, error) {
	var existing db.Post
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		existing.Title = title
	}
	if update.Content != nil {
		if strings.TrimSpace(*update.Content) == "" {
			return nil, ErrBodyRequired
		}
		existing.Content = *update.Content
		existing.ReadingTime = EstimateReadingTime(*update.Content)
	}
	if update.Excerpt != nil {
		existing.Excerpt = strings.TrimSpace(*update.Excerpt)
	}
	if update.CoverImage != nil {
		existing.CoverImage = strings.TrimSpace(*update.CoverImage)
	}
	if update.Slug != nil {
		slug := Slugify(*update.Slug)
		if slug == "" {
			return nil, ErrTitleRequired
		}
		existing.Slug = slug
	}
	if update.Featured != nil {
		existing.Featured = *update.Featured
	}
	if update.Published != nil {
		if *update.Published && (existing.PublishedAt == nil || s.RestampOnRepublish) {
			now := time.Now()
			existing.PublishedAt = &now
		}
		existing.Published = *update.Published
	}

	return s.saveWithAssociations(&existing, update.CategoryIDs, update.TagIDs,
		update.CategoryIDs != nil, update.TagIDs != nil)
}

// FindByID fetches a post by id with author, categories and tags resolved.
func (s *PostService) FindByID(id string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("User").Preload("Categories").Preload("Tags").
		First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// FindBySlug fetches a post by slug with author, categories and tags resolved.
func (s *PostService) FindBySlug(slug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("User").Preload("Categories").Preload("Tags").
		Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List returns posts matching the filter ordered by created time descending.
func (s *PostService) List(filter PostFilter) ([]db.Post, error) {
	query := s.db.Model(&db.Post{}).
		Preload("User").
		Preload("Categories").
		Preload("Tags").
		Order("created_at desc")
	query = applyPostFilters(query, filter)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var posts []db.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Search returns published posts whose title, content or excerpt contains
// the query, case-insensitively, ordered by created time descending.
func (s *PostService) Search(query string) ([]db.Post, error) {
	published := true
	return s.List(PostFilter{Published: &published, Search: strings.TrimSpace(query)})
}

// Delete removes a post by id. Association rows are removed by foreign
// key cascade.
func (s *PostService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&db.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// IncrementViews 将文章浏览数加一，由按 slug 读取的调用方在每次成功读取后触发。
func (s *PostService) IncrementViews(id string) error {
	result := s.db.Model(&db.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *PostService) saveWithAssociations(post *db.Post, categoryIDs, tagIDs []string, replaceCategories, replaceTags bool) (*db.Post, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(post).Error; err != nil {
			return err
		}

		if replaceCategories {
			categories := make([]db.Category, 0, len(categoryIDs))
			if len(categoryIDs) > 0 {
				if err := tx.Where("id IN ?", categoryIDs).Find(&categories).Error; err != nil {
					return err
				}
				if len(categories) != len(categoryIDs) {
					return ErrCategoryNotFound
				}
			}
			if err := tx.Model(post).Association("Categories").Replace(categories); err != nil {
				return err
			}
		}

		if replaceTags {
			tags := make([]db.Tag, 0, len(tagIDs))
			if len(tagIDs) > 0 {
				if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
					return err
				}
				if len(tags) != len(tagIDs) {
					return ErrTagNotFound
				}
			}
			if err := tx.Model(post).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrPostSlugTaken
		}
		return nil, err
	}

	return s.FindByID(post.ID)
}

func applyPostFilters(query *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.Published != nil {
		query = query.Where("published = ?", *filter.Published)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("(title LIKE ? OR content LIKE ? OR excerpt LIKE ?)", search, search, search)
	}
	return query
}
