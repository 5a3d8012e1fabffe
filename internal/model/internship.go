package model

import "time"

// swagger:model Internship
type Internship struct {
	BaseModel
	Title          string           `gorm:"size:255;not null" json:"title"`
	Description    string           `gorm:"type:text" json:"description"`
	CertificateURL string           `gorm:"size:512" json:"certificateUrl"`
	Tasks          []InternshipTask `gorm:"foreignKey:InternshipID" json:"tasks"`
}

func (Internship) TableName() string {
	return "internships"
}

type InternshipTask struct {
	BaseModel
	InternshipID uint       `gorm:"index;not null" json:"internshipId"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Order        int        `gorm:"default:0" json:"order"`
}

func (InternshipTask) TableName() string {
	return "internship_tasks"
}

type InternshipApplication struct {
	BaseModel
	InternshipID uint `gorm:"uniqueIndex:idx_internship_application;not null" json:"internshipId"`
	UserID       uint `gorm:"uniqueIndex:idx_internship_application;not null" json:"userId"`
}

func (InternshipApplication) TableName() string {
	return "internship_applications"
}

type TaskCompletion struct {
	BaseModel
	TaskID uint `gorm:"uniqueIndex:idx_task_completion;not null" json:"taskId"`
	UserID uint `gorm:"uniqueIndex:idx_task_completion;not null" json:"userId"`
}

func (TaskCompletion) TableName() string {
	return "task_completions"
}
