package repository

import (
	"context"
	"job_portal_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// List 按创建顺序（id 升序）返回全部课程，该顺序决定每周免费课程的下标
func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.WithContext(ctx).Order("id asc").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.WithContext(ctx).First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.DB.WithContext(ctx).Create(course).Error
}

// Enroll 重复选课不报错
func (r *CourseRepository) Enroll(ctx context.Context, userID, courseID uint) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Enrollment{UserID: userID, CourseID: courseID}).Error
}

func (r *CourseRepository) ListEnrolled(ctx context.Context, userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.WithContext(ctx).
		Joins("JOIN enrollments e ON e.course_id = courses.id AND e.deleted_at IS NULL").
		Where("e.user_id = ?", userID).
		Order("e.created_at asc").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) CountEnrolled(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Enrollment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
