package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateKey 判断错误是否来自唯一约束冲突。
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
