package services

import (
	"gorm.io/gorm"

	"novanest_backend/internal/repositories"
	"novanest_backend/internal/services/dto"
	"novanest_backend/pkg/apperrors"
)

type NotificationService interface {
	// List returns the user's notifications, newest first.
	List(userID string) ([]dto.NotificationResponse, error)
	// MarkAsRead is idempotent; marking an already-read notification is a
	// no-op success.
	MarkAsRead(userID, notificationID string) error
	UnreadCount(userID string) (int64, error)
}

type NotificationServiceImpl struct {
	db               *gorm.DB
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(db *gorm.DB, notificationRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{db: db, notificationRepo: notificationRepo}
}

func (s *NotificationServiceImpl) List(userID string) ([]dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindUserNotifications(s.db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewNotificationListResponse(notifications), nil
}

func (s *NotificationServiceImpl) MarkAsRead(userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(s.db, notificationID)
	if err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	// Another user's notification reads as absent rather than forbidden.
	if notification.UserID != userID {
		return apperrors.ErrNotFound(repositories.ErrNotificationNotFound)
	}
	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkAsRead(s.db, notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) UnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(s.db, userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
