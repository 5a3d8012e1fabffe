package service

import (
	"context"
	"job_portal_backend/internal/model"
	"job_portal_backend/internal/util"
	"job_portal_backend/pkg/logger"

	"go.uber.org/zap"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByUser(ctx context.Context, userID uint) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID, id uint) (bool, error)
}

// Publisher 将消息推送给在线用户
type Publisher interface {
	PushToUser(ctx context.Context, userID uint, msg WSMessage) error
}

type NotificationService struct {
	Repo      NotificationRepo
	Publisher Publisher
}

func NewNotificationService(repo NotificationRepo, publisher Publisher) *NotificationService {
	return &NotificationService{Repo: repo, Publisher: publisher}
}

// Notify 写入通知并尽力推送到用户的 websocket 连接
func (s *NotificationService) Notify(ctx context.Context, userID uint, title, message string) error {
	n := &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return err
	}

	if s.Publisher != nil {
		if err := s.Publisher.PushToUser(ctx, userID, WSMessage{Type: MessageNotification, Data: n}); err != nil {
			logger.Log.Warn("notification push failed", zap.Error(err), zap.Uint("userId", userID))
		}
	}
	return nil
}

func (s *NotificationService) List(ctx context.Context, userID uint) ([]model.Notification, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uint) error {
	ok, err := s.Repo.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrNotificationMissing
	}
	return nil
}
