package dto

import (
	"time"

	"gorm.io/datatypes"

	"novanest_backend/internal/models"
)

type SendMessageRequest struct {
	RecipientID string `json:"recipientId" binding:"required,uuid"`
	Content     string `json:"content" binding:"required"`
	// StartupID optionally attributes the contact to one of the
	// recipient's startups for analytics.
	StartupID string `json:"startupId,omitempty" binding:"omitempty,uuid"`
}

type MessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Content     string    `json:"content"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewMessageResponse(message *models.Message) MessageResponse {
	return MessageResponse{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Content:     message.Content,
		IsRead:      message.IsRead,
		CreatedAt:   message.CreatedAt,
	}
}

func NewMessageListResponse(messages []models.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, NewMessageResponse(&messages[i]))
	}
	return responses
}

// ConversationResponse is one row of the inbox: the counterpart plus the
// most recent message exchanged with them.
type ConversationResponse struct {
	UserID      string          `json:"userId"`
	LastMessage MessageResponse `json:"lastMessage"`
	Unread      bool            `json:"unread"`
}

// ConversationDetailResponse augments a conversation row with the
// counterpart's public identity.
type ConversationDetailResponse struct {
	ConversationResponse
	UserName       string          `json:"userName"`
	UserEmail      string          `json:"userEmail"`
	UserRole       models.UserRole `json:"userRole"`
	ProfileDetails datatypes.JSON  `json:"profileDetails,omitempty"`
}

type MarkReadResponse struct {
	UpdatedCount int64 `json:"updatedCount"`
}
