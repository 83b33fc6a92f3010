package db

import "time"

// Post 定义了文章模型
type Post struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Content     string `gorm:"not null"`
	Excerpt     string
	CoverImage  string
	Published   bool  `gorm:"not null;default:false"`
	Featured    bool  `gorm:"not null;default:false"`
	ReadingTime int   `gorm:"not null;default:1"`
	Views       int64 `gorm:"not null;default:0"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      string `gorm:"size:36;not null;index"`
	User        User
	Categories  []Category `gorm:"many2many:post_categories;constraint:OnDelete:CASCADE"`
	Tags        []Tag      `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
}
