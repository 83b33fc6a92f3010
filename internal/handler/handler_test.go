package handler

import (
	"fmt"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/internal/db"
	"github.com/inkpress/internal/service"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T) *API {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared&_fk=1", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewAPI(gdb, t.TempDir(), "/static/uploads")
}

func seedTestAuthor(t *testing.T, api *API) *db.User {
	t.Helper()
	user, err := api.users.Create(service.UserInput{
		Email:    fmt.Sprintf("author-%d@test.local", time.Now().UnixNano()),
		Name:     "Test Author",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("create author: %v", err)
	}
	return user
}
