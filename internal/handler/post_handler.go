package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/internal/db"
	"github.com/inkpress/internal/service"
)

type createPostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Excerpt     string   `json:"excerpt"`
	CoverImage  string   `json:"coverImage"`
	Slug        string   `json:"slug"`
	Published   bool     `json:"published"`
	Featured    bool     `json:"featured"`
	CategoryIDs []string `json:"categoryIds"`
	TagIDs      []string `json:"tagIds"`
	AuthorID    string   `json:"authorId"`
}

type updatePostRequest struct {
	Title       *string  `json:"title"`
	Content     *string  `json:"content"`
	Excerpt     *string  `json:"excerpt"`
	CoverImage  *string  `json:"coverImage"`
	Slug        *string  `json:"slug"`
	Published   *bool    `json:"published"`
	Featured    *bool    `json:"featured"`
	CategoryIDs []string `json:"categoryIds"`
	TagIDs      []string `json:"tagIds"`
}

// ListPosts 获取文章列表，支持 published/featured/search/limit/offset 过滤。
func (a *API) ListPosts(c *gin.Context) {
	filter := service.PostFilter{
		Published: parseBoolQuery(c, "published"),
		Featured:  parseBoolQuery(c, "featured"),
		Search:    strings.TrimSpace(c.Query("search")),
		Limit:     parseNonNegativeInt(c.Query("limit"), 0),
		Offset:    parseNonNegativeInt(c.Query("offset"), 0),
	}

	// 搜索只面向已发布内容，除非调用方显式指定
	if filter.Search != "" && filter.Published == nil {
		published := true
		filter.Published = &published
	}

	posts, err := a.posts.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取文章列表失败")
		return
	}

	response := make([]gin.H, 0, len(posts))
	for i := range posts {
		response = append(response, postJSON(&posts[i]))
	}

	c.JSON(http.StatusOK, gin.H{"posts": response, "total": len(response)})
}

// GetPostBySlug 按 slug 获取单篇文章，每次成功读取会使浏览数加一。
func (a *API) GetPostBySlug(c *gin.Context) {
	post, err := a.posts.FindBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "文章不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取文章失败")
		return
	}

	if err := a.posts.IncrementViews(post.ID); err != nil {
		respondError(c, http.StatusInternalServerError, "更新浏览数失败")
		return
	}
	post.Views++

	htmlContent, err := renderMarkdown(post.Content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "渲染文章内容失败")
		return
	}

	payload := postJSON(post)
	payload["html"] = htmlContent
	c.JSON(http.StatusOK, gin.H{"post": payload})
}

// CreatePost 创建新文章
func (a *API) CreatePost(c *gin.Context) {
	var req createPostRequest
	if !bindJSON(c, &req, "标题和内容不能为空") {
		return
	}

	authorID := strings.TrimSpace(req.AuthorID)
	if authorID == "" {
		authorID = c.GetString(contextUserKey)
	}

	post, err := a.posts.Create(service.PostInput{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		CoverImage:  req.CoverImage,
		Slug:        req.Slug,
		Published:   req.Published,
		Featured:    req.Featured,
		CategoryIDs: req.CategoryIDs,
		TagIDs:      req.TagIDs,
		UserID:      authorID,
	})
	if err != nil {
		respondPostError(c, err, "创建文章失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "文章创建成功", "post": postJSON(post)})
}

// UpdatePost 按 slug 更新文章，仅应用请求中出现的字段。
func (a *API) UpdatePost(c *gin.Context) {
	existing, err := a.posts.FindBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "文章不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取文章失败")
		return
	}

	var req updatePostRequest
	if !bindJSON(c, &req, "无效的请求内容") {
		return
	}

	post, err := a.posts.Update(existing.ID, service.PostUpdate{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		CoverImage:  req.CoverImage,
		Slug:        req.Slug,
		Published:   req.Published,
		Featured:    req.Featured,
		CategoryIDs: req.CategoryIDs,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		respondPostError(c, err, "更新文章失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "文章更新成功", "post": postJSON(post)})
}

// DeletePost 按 slug 删除文章
func (a *API) DeletePost(c *gin.Context) {
	post, err := a.posts.FindBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "文章不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "获取文章失败")
		return
	}

	if err := a.posts.Delete(post.ID); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "文章不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除文章失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "文章删除成功"})
}

func respondPostError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrBodyRequired),
		errors.Is(err, service.ErrAuthorMissing):
		respondError(c, http.StatusBadRequest, "标题、内容和作者不能为空")
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, http.StatusBadRequest, "指定的分类不存在")
	case errors.Is(err, service.ErrTagNotFound):
		respondError(c, http.StatusBadRequest, "指定的标签不存在")
	case errors.Is(err, service.ErrPostSlugTaken):
		respondError(c, http.StatusConflict, "文章 slug 已存在")
	case errors.Is(err, service.ErrPostNotFound):
		respondError(c, http.StatusNotFound, "文章不存在")
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}

func postJSON(post *db.Post) gin.H {
	categories := make([]gin.H, 0, len(post.Categories))
	for _, category := range post.Categories {
		categories = append(categories, gin.H{
			"id":    category.ID,
			"name":  category.Name,
			"slug":  category.Slug,
			"color": category.Color,
		})
	}

	tags := make([]gin.H, 0, len(post.Tags))
	for _, tag := range post.Tags {
		tags = append(tags, gin.H{
			"id":   tag.ID,
			"name": tag.Name,
			"slug": tag.Slug,
		})
	}

	return gin.H{
		"id":          post.ID,
		"title":       post.Title,
		"slug":        post.Slug,
		"content":     post.Content,
		"excerpt":     post.Excerpt,
		"coverImage":  post.CoverImage,
		"published":   post.Published,
		"featured":    post.Featured,
		"readingTime": post.ReadingTime,
		"views":       post.Views,
		"publishedAt": post.PublishedAt,
		"createdAt":   post.CreatedAt,
		"updatedAt":   post.UpdatedAt,
		"author": gin.H{
			"id":    post.User.ID,
			"name":  post.User.Name,
			"email": post.User.Email,
		},
		"categories": categories,
		"tags":       tags,
	}
}
