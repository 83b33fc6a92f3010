package service

import (
	"strings"
	"unicode"
)

// Slugify 将标题转换为 URL 友好的 slug：小写，非字母数字折叠为单个连字符，
// 去掉首尾连字符。对同一输入总是产生相同结果。
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
