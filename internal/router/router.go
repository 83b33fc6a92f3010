package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/inkpress/internal/handler"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, sessionSecret, uploadDir, uploadURLPath string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("inkpress_session", store))

	// 上传的封面图片作为静态文件提供
	r.Static(uploadURLPath, uploadDir)

	api := handler.NewAPI(gdb, uploadDir, uploadURLPath)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	v1 := r.Group("/api")
	{
		v1.GET("/posts", api.ListPosts)
		v1.GET("/posts/:slug", api.GetPostBySlug)
		v1.GET("/categories", api.GetCategories)
		v1.GET("/tags", api.GetTags)

		auth := v1.Group("/auth")
		{
			auth.POST("/login", api.Login)
			auth.POST("/logout", api.Logout)
		}

		// 需要认证的后台路由
		admin := v1.Group("/admin")
		admin.Use(handler.AuthRequired())
		{
			admin.POST("/posts", api.CreatePost)
			admin.PUT("/posts/:slug", api.UpdatePost)
			admin.DELETE("/posts/:slug", api.DeletePost)

			admin.POST("/categories", api.CreateCategory)
			admin.DELETE("/categories/:id", api.DeleteCategory)

			admin.POST("/tags", api.CreateTag)
			admin.DELETE("/tags/:id", api.DeleteTag)

			admin.POST("/upload", api.UploadImage)
		}
	}

	return r
}
