package services

import (
	"novanest_backend/internal/models"
	"novanest_backend/internal/services/dto"
)

// aggregateConversations folds a newest-first message list into one inbox
// row per counterpart. Because the input is ordered newest first, the
// first message seen for a counterpart is its representative; later ones
// are skipped. A conversation is unread when its representative message
// is addressed to the user and still unread.
func aggregateConversations(userID string, messages []models.Message) []dto.ConversationResponse {
	seen := make(map[string]bool)
	conversations := make([]dto.ConversationResponse, 0)

	for i := range messages {
		msg := &messages[i]
		counterpart := msg.SenderID
		if counterpart == userID {
			counterpart = msg.RecipientID
		}
		if seen[counterpart] {
			continue
		}
		seen[counterpart] = true

		conversations = append(conversations, dto.ConversationResponse{
			UserID:      counterpart,
			LastMessage: dto.NewMessageResponse(msg),
			Unread:      msg.RecipientID == userID && !msg.IsRead,
		})
	}
	return conversations
}
