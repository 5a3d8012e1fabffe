package model

type ReviewType string

const (
	ReviewMentor     ReviewType = "mentor"
	ReviewCourse     ReviewType = "course"
	ReviewChallenge  ReviewType = "challenge"
	ReviewInternship ReviewType = "internship"
)

// swagger:model Review
type Review struct {
	BaseModel
	Type      ReviewType `gorm:"type:enum('mentor','course','challenge','internship');not null;index:idx_review_related" json:"type"`
	RelatedID uint       `gorm:"not null;index:idx_review_related" json:"relatedId"`
	Rating    int        `gorm:"not null" json:"rating"`
	Feedback  string     `gorm:"type:text" json:"feedback"`
	UserID    uint       `gorm:"index;not null" json:"userId"`
}

func (Review) TableName() string {
	return "reviews"
}
