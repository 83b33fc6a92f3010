package db

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrateIsIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:migrate-%d?mode=memory&cache=shared&_fk=1", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	if err := Migrate(gdb); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	for _, model := range []interface{}{&User{}, &Post{}, &Category{}, &Tag{}} {
		if !gdb.Migrator().HasTable(model) {
			t.Fatalf("expected table for %T", model)
		}
	}

	for _, table := range []string{"post_categories", "post_tags"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("expected junction table %s", table)
		}
	}
}

func TestInitCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "test.db")

	gdb, err := Init(path)
	if err != nil {
		t.Fatalf("init database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	defer sqlDB.Close()

	// 再次初始化应当幂等
	again, err := Init(path)
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if sqlDB2, err := again.DB(); err == nil {
		sqlDB2.Close()
	}
}

func TestEnsureAdminUserIsIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:admin-%d?mode=memory&cache=shared&_fk=1", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := EnsureAdminUser(gdb, "admin@test.local", "Admin", "secret"); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if err := EnsureAdminUser(gdb, "admin@test.local", "Admin", "other-password"); err != nil {
		t.Fatalf("second ensure: %v", err)
	}

	var count int64
	if err := gdb.Model(&User{}).Where("email = ?", "admin@test.local").Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one admin user, got %d", count)
	}

	// 空白配置不创建任何用户
	if err := EnsureAdminUser(gdb, "", "", ""); err != nil {
		t.Fatalf("blank ensure: %v", err)
	}
}
