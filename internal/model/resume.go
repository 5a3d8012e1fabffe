package model

import "gorm.io/datatypes"

// swagger:model Resume
type Resume struct {
	BaseModel
	UserID uint           `gorm:"uniqueIndex;not null" json:"user"`
	Data   datatypes.JSON `gorm:"type:json" json:"data"`
	PDFURL string         `gorm:"size:512" json:"pdfUrl"`
}

func (Resume) TableName() string {
	return "resumes"
}
