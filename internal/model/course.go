package model

import "gorm.io/datatypes"

// swagger:model Course
type Course struct {
	BaseModel
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Description string                      `gorm:"type:text" json:"description"`
	Price       float64                     `gorm:"default:0" json:"price"`
	Content     datatypes.JSONSlice[string] `gorm:"type:json" json:"content"`
}

func (Course) TableName() string {
	return "courses"
}

// Enrollment 用户选课记录，(user_id, course_id) 唯一
type Enrollment struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"userId"`
	CourseID uint `gorm:"uniqueIndex:idx_enrollment_user_course;not null" json:"courseId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
