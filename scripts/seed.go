package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/inkpress/internal/config"
	"github.com/inkpress/internal/db"
	"github.com/inkpress/internal/service"
)

// 生成一批演示数据：一个作者、两个分类、三个标签和几篇文章。
func main() {
	cfg := config.Load()

	gdb, err := db.Init(cfg.DatabasePath)
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	var count int64
	if err := gdb.Model(&db.Post{}).Count(&count).Error; err != nil {
		log.Fatal("检查文章数量失败:", err)
	}
	if count > 0 {
		fmt.Println("文章已存在，无需生成演示数据")
		return
	}

	users := service.NewUserService(gdb)
	categories := service.NewCategoryService(gdb)
	tags := service.NewTagService(gdb)
	posts := service.NewPostService(gdb)

	author, err := users.Create(service.UserInput{
		Email:    "demo@inkpress.local",
		Name:     "Demo Author",
		Password: "demo-password",
	})
	if err != nil {
		log.Fatal("创建演示作者失败:", err)
	}

	tech, err := categories.Create(service.CategoryInput{Name: "Tech", Description: "技术文章", Color: "#3b82f6"})
	if err != nil {
		log.Fatal("创建分类失败:", err)
	}
	life, err := categories.Create(service.CategoryInput{Name: "Life", Description: "生活随笔", Color: "#10b981"})
	if err != nil {
		log.Fatal("创建分类失败:", err)
	}

	var tagIDs []string
	for _, name := range []string{"Go", "Web", "Notes"} {
		tag, err := tags.Create(name)
		if err != nil {
			log.Fatal("创建标签失败:", err)
		}
		tagIDs = append(tagIDs, tag.ID)
	}

	seedPosts := []service.PostInput{
		{
			Title:       "Hello World",
			Content:     "# Hello World\n\n" + strings.Repeat("word ", 400),
			Excerpt:     "第一篇演示文章",
			Published:   true,
			Featured:    true,
			CategoryIDs: []string{tech.ID},
			TagIDs:      tagIDs[:1],
			UserID:      author.ID,
		},
		{
			Title:       "Notes on Writing",
			Content:     "写作是整理思绪的过程。\n\n" + strings.Repeat("note ", 150),
			Published:   true,
			CategoryIDs: []string{life.ID},
			TagIDs:      tagIDs[2:],
			UserID:      author.ID,
		},
		{
			Title:       "Draft in Progress",
			Content:     "这是一篇尚未发布的草稿。",
			CategoryIDs: []string{tech.ID, life.ID},
			TagIDs:      tagIDs[1:2],
			UserID:      author.ID,
		},
	}

	for _, input := range seedPosts {
		if _, err := posts.Create(input); err != nil {
			log.Fatalf("创建文章 %q 失败: %v", input.Title, err)
		}
	}

	fmt.Println("演示数据生成完成")
}
