package model

// swagger:model Job
type Job struct {
	BaseModel
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	CompanyName string `gorm:"size:255" json:"companyName"`
	Location    string `gorm:"size:255" json:"location"`
	Type        string `gorm:"size:50" json:"type"`
}

func (Job) TableName() string {
	return "jobs"
}

type JobApplication struct {
	BaseModel
	UserID uint `gorm:"uniqueIndex:idx_job_application_user_job;not null" json:"userId"`
	JobID  uint `gorm:"uniqueIndex:idx_job_application_user_job;not null" json:"jobId"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}

type JobBookmark struct {
	BaseModel
	UserID uint `gorm:"uniqueIndex:idx_job_bookmark_user_job;not null" json:"userId"`
	JobID  uint `gorm:"uniqueIndex:idx_job_bookmark_user_job;not null" json:"jobId"`
}

func (JobBookmark) TableName() string {
	return "job_bookmarks"
}
