package model

import "time"

type ChallengeType string

const (
	ChallengeDaily  ChallengeType = "daily"
	ChallengeWeekly ChallengeType = "weekly"
)

// DefaultChallengePoints 创建时未指定分值使用的默认值
const DefaultChallengePoints = 10

// swagger:model Challenge
type Challenge struct {
	BaseModel
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Type        ChallengeType `gorm:"type:enum('daily','weekly');default:'daily';index" json:"type"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	Points      int           `gorm:"not null" json:"points"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// ChallengeSubmission 每个用户每个挑战一条，重复提交覆盖内容
type ChallengeSubmission struct {
	BaseModel
	ChallengeID uint   `gorm:"uniqueIndex:idx_challenge_submission;not null" json:"challengeId"`
	UserID      uint   `gorm:"uniqueIndex:idx_challenge_submission;not null" json:"userId"`
	Content     string `gorm:"type:text" json:"content"`
}

func (ChallengeSubmission) TableName() string {
	return "challenge_submissions"
}
