package model

import "gorm.io/datatypes"

// LeaderboardSize 排行榜最多保留的条目数
const LeaderboardSize = 50

type TestQuestion struct {
	Q            string   `json:"q"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

type LeaderboardEntry struct {
	UserID uint `json:"user"`
	Score  int  `json:"score"`
}

// Test 测验文档：题目与排行榜内嵌为 JSON 列，整体读写。
// Version 用于排行榜的乐观锁更新。
// swagger:model Test
type Test struct {
	BaseModel
	Title       string                                `gorm:"size:255;not null" json:"title"`
	CourseID    *uint                                 `gorm:"index" json:"course,omitempty"`
	Questions   datatypes.JSONSlice[TestQuestion]     `gorm:"type:json" json:"questions"`
	Leaderboard datatypes.JSONSlice[LeaderboardEntry] `gorm:"type:json" json:"leaderboard"`
	Version     int                                   `gorm:"not null;default:0" json:"-"`
}

func (Test) TableName() string {
	return "tests"
}
