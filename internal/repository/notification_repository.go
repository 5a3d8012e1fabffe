package repository

import (
	"context"
	"job_portal_backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.DB.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint) ([]model.Notification, error) {
	var list []model.Notification
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc, id desc").Find(&list).Error
	return list, err
}

// MarkRead 只能标记自己的通知，返回是否命中
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	// 已读通知再次标记时 MySQL 不计入受影响行数
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Notification{}).Where("id = ? AND user_id = ?", id, userID).Count(&count).Error
	return count > 0, err
}
