package service

import "strings"

// 假定的阅读速度，单位为每分钟单词数
const wordsPerMinute = 200

// EstimateReadingTime 根据正文的单词数估算阅读分钟数，最少为 1 分钟。
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 1
	}

	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
