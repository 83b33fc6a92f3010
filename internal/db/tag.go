package db

import "time"

// Tag 定义了标签模型
type Tag struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"uniqueIndex;not null"`
	Slug      string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Posts     []Post `gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
}
