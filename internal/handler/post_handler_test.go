package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/internal/service"
)

func TestCreatePostRequiresTitle(t *testing.T) {
	api := setupTestAPI(t)

	payload := map[string]any{"content": "body without title"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.CreatePost(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCreatePostWithoutAuthor(t *testing.T) {
	api := setupTestAPI(t)

	payload := map[string]any{"title": "Orphan", "content": "no author anywhere"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.CreatePost(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCreatePostDerivesSlug(t *testing.T) {
	api := setupTestAPI(t)
	author := seedTestAuthor(t, api)

	payload := map[string]any{
		"title":    "Hello World",
		"content":  "some markdown body",
		"authorId": author.ID,
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.CreatePost(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Post struct {
			Slug        string `json:"slug"`
			ReadingTime int    `json:"readingTime"`
		} `json:"post"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Post.Slug != "hello-world" {
		t.Fatalf("expected slug hello-world, got %q", response.Post.Slug)
	}
	if response.Post.ReadingTime != 1 {
		t.Fatalf("expected reading time 1, got %d", response.Post.ReadingTime)
	}
}

func TestGetPostBySlugIncrementsViews(t *testing.T) {
	api := setupTestAPI(t)
	author := seedTestAuthor(t, api)

	post, err := api.posts.Create(service.PostInput{
		Title:     "Counted Post",
		Content:   "# Heading\n\nSome **markdown** body.",
		Published: true,
		UserID:    author.ID,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/posts/counted-post", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "slug", Value: "counted-post"}}

	api.GetPostBySlug(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response struct {
		Post struct {
			Views int64  `json:"views"`
			HTML  string `json:"html"`
		} `json:"post"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Post.Views != 1 {
		t.Fatalf("expected views 1 in response, got %d", response.Post.Views)
	}
	if response.Post.HTML == "" {
		t.Fatalf("expected rendered html in response")
	}

	stored, err := api.posts.FindByID(post.ID)
	if err != nil {
		t.Fatalf("reload post: %v", err)
	}
	if stored.Views != 1 {
		t.Fatalf("expected stored views 1, got %d", stored.Views)
	}
}

func TestGetPostBySlugNotFound(t *testing.T) {
	api := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/missing", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "slug", Value: "missing"}}

	api.GetPostBySlug(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestListPostsFiltersPublished(t *testing.T) {
	api := setupTestAPI(t)
	author := seedTestAuthor(t, api)

	if _, err := api.posts.Create(service.PostInput{
		Title: "Published", Content: "body", Published: true, UserID: author.ID,
	}); err != nil {
		t.Fatalf("create published post: %v", err)
	}
	if _, err := api.posts.Create(service.PostInput{
		Title: "Draft", Content: "body", UserID: author.ID,
	}); err != nil {
		t.Fatalf("create draft post: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/posts?published=true", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	api.ListPosts(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var response struct {
		Posts []struct {
			Title string `json:"title"`
		} `json:"posts"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Total != 1 || len(response.Posts) != 1 {
		t.Fatalf("expected 1 published post, got %d", response.Total)
	}
	if response.Posts[0].Title != "Published" {
		t.Fatalf("expected published post, got %q", response.Posts[0].Title)
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	api := setupTestAPI(t)

	payload := map[string]any{"title": "New Title"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, "/api/admin/posts/missing", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "slug", Value: "missing"}}

	api.UpdatePost(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestDeletePostBySlug(t *testing.T) {
	api := setupTestAPI(t)
	author := seedTestAuthor(t, api)

	if _, err := api.posts.Create(service.PostInput{
		Title: "Doomed", Content: "body", UserID: author.ID,
	}); err != nil {
		t.Fatalf("create post: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/posts/doomed", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "slug", Value: "doomed"}}

	api.DeletePost(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	if _, err := api.posts.FindBySlug("doomed"); err == nil {
		t.Fatalf("expected post removed")
	}
}
