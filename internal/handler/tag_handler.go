package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/internal/service"
)

type tagRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetTags 获取标签列表
func (a *API) GetTags(c *gin.Context) {
	tags, err := a.tags.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "获取标签列表失败")
		return
	}

	response := make([]gin.H, 0, len(tags))
	for _, tag := range tags {
		response = append(response, gin.H{
			"id":   tag.ID,
			"name": tag.Name,
			"slug": tag.Slug,
		})
	}

	c.JSON(http.StatusOK, gin.H{"tags": response})
}

// CreateTag 创建新标签
func (a *API) CreateTag(c *gin.Context) {
	var req tagRequest
	if !bindJSON(c, &req, "标签名称不能为空") {
		return
	}

	tag, err := a.tags.Create(req.Name)
	if err != nil {
		if errors.Is(err, service.ErrTagExists) {
			respondError(c, http.StatusConflict, "标签已存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "创建标签失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "标签创建成功", "tag": gin.H{
		"id":   tag.ID,
		"name": tag.Name,
		"slug": tag.Slug,
	}})
}

// DeleteTag 删除标签，关联的文章保持不变。
func (a *API) DeleteTag(c *gin.Context) {
	if err := a.tags.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			respondError(c, http.StatusNotFound, "标签不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除标签失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "标签删除成功"})
}
