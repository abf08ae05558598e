package dto

import (
	"encoding/json"
	"time"

	"novanest_backend/internal/models"
)

type NotificationResponse struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Link      string          `json:"link,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	IsRead    bool            `json:"isRead"`
	ReadAt    *time.Time      `json:"readAt,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewNotificationResponse(notification *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		Type:      notification.Type,
		Message:   notification.Message,
		Link:      notification.Link,
		Data:      json.RawMessage(notification.Data),
		IsRead:    notification.IsRead,
		ReadAt:    notification.ReadAt,
		CreatedAt: notification.CreatedAt,
	}
}

func NewNotificationListResponse(notifications []models.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, NewNotificationResponse(&notifications[i]))
	}
	return responses
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
