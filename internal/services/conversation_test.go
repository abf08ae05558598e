package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novanest_backend/internal/models"
)

func conversationMessage(id, senderID, recipientID string, read bool, at time.Time) models.Message {
	msg := models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     "msg " + id,
		IsRead:      read,
	}
	msg.ID = id
	msg.CreatedAt = at
	return msg
}

func TestAggregateConversations_FirstMessageWinsPerCounterpart(t *testing.T) {
	now := time.Now()
	// Newest first, as the repository delivers them.
	messages := []models.Message{
		conversationMessage("m3", "bob", "alice", false, now),
		conversationMessage("m2", "alice", "bob", true, now.Add(-1*time.Minute)),
		conversationMessage("m1", "bob", "alice", true, now.Add(-2*time.Minute)),
	}

	conversations := aggregateConversations("alice", messages)
	require.Len(t, conversations, 1)
	assert.Equal(t, "bob", conversations[0].UserID)
	assert.Equal(t, "m3", conversations[0].LastMessage.ID)
}

func TestAggregateConversations_CounterpartResolvedFromEitherDirection(t *testing.T) {
	now := time.Now()
	messages := []models.Message{
		conversationMessage("m2", "alice", "carol", false, now),
		conversationMessage("m1", "bob", "alice", false, now.Add(-1*time.Minute)),
	}

	conversations := aggregateConversations("alice", messages)
	require.Len(t, conversations, 2)
	assert.Equal(t, "carol", conversations[0].UserID)
	assert.Equal(t, "bob", conversations[1].UserID)
}

func TestAggregateConversations_UnreadSemantics(t *testing.T) {
	now := time.Now()
	messages := []models.Message{
		// Representative inbound and unread: conversation is unread.
		conversationMessage("m5", "bob", "alice", false, now),
		// Representative inbound but read: not unread.
		conversationMessage("m4", "carol", "alice", true, now.Add(-1*time.Minute)),
		// Representative outbound: never unread for the caller, even
		// though the recipient has not read it.
		conversationMessage("m3", "alice", "dave", false, now.Add(-2*time.Minute)),
		// Older unread messages do not resurrect a read conversation.
		conversationMessage("m2", "carol", "alice", false, now.Add(-3*time.Minute)),
	}

	conversations := aggregateConversations("alice", messages)
	require.Len(t, conversations, 3)

	byUser := map[string]bool{}
	for _, conv := range conversations {
		byUser[conv.UserID] = conv.Unread
	}
	assert.True(t, byUser["bob"])
	assert.False(t, byUser["carol"])
	assert.False(t, byUser["dave"])
}

func TestAggregateConversations_Empty(t *testing.T) {
	conversations := aggregateConversations("alice", nil)
	assert.Empty(t, conversations)
}
