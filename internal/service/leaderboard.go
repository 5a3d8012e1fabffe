package service

import (
	"job_portal_backend/internal/model"
	"sort"
)

// ScoreAnswers 计算得分百分比，answers 与题目按位置对齐。
// 缺失、为 null 或越界的答案都不得分；没有题目时得 0 分。
func ScoreAnswers(questions []model.TestQuestion, answers []*int) int {
	total := len(questions)
	if total == 0 {
		return 0
	}

	correct := 0
	for i, q := range questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == q.CorrectIndex {
			correct++
		}
	}

	// 四舍五入（.5 向上），整数运算避免浮点误差
	return (200*correct + total) / (2 * total)
}

// RankEntry 返回新的排行榜：移除该用户旧记录，追加新成绩，
// 按分数稳定降序排序并截断到 model.LeaderboardSize。不修改入参。
func RankEntry(board []model.LeaderboardEntry, userID uint, score int) []model.LeaderboardEntry {
	next := make([]model.LeaderboardEntry, 0, len(board)+1)
	for _, e := range board {
		if e.UserID != userID {
			next = append(next, e)
		}
	}
	next = append(next, model.LeaderboardEntry{UserID: userID, Score: score})

	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Score > next[j].Score
	})

	if len(next) > model.LeaderboardSize {
		next = next[:model.LeaderboardSize]
	}
	return next
}
