package db

import "time"

// Category 定义了分类模型
type Category struct {
	ID          string `gorm:"primaryKey;size:36"`
	Name        string `gorm:"uniqueIndex;not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Posts       []Post `gorm:"many2many:post_categories;constraint:OnDelete:CASCADE"`
}
