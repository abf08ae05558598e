package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"novanest_backend/internal/models"
	"novanest_backend/internal/repositories"
)

func createTestMessage(t *testing.T, db *gorm.DB, senderID, recipientID, content string, at time.Time) *models.Message {
	t.Helper()

	msg := &models.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
	}
	msg.CreatedAt = at
	require.NoError(t, db.Create(msg).Error)
	return msg
}

func TestFindThread_TwoWayOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewMessageRepository()

	alice := createTestUser(t, db, "alice@test.com", models.UserRoleEntrepreneur)
	bob := createTestUser(t, db, "bob@test.com", models.UserRoleInvestor)
	carol := createTestUser(t, db, "carol@test.com", models.UserRoleMentor)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	createTestMessage(t, db, alice.ID, bob.ID, "hi", base)
	createTestMessage(t, db, bob.ID, alice.ID, "hello", base.Add(1*time.Minute))
	createTestMessage(t, db, alice.ID, bob.ID, "pitch?", base.Add(2*time.Minute))
	// Noise in another conversation must not leak into the thread.
	createTestMessage(t, db, carol.ID, alice.ID, "unrelated", base.Add(3*time.Minute))

	thread, err := repo.FindThread(db, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, thread, 3)
	assert.Equal(t, "hi", thread[0].Content)
	assert.Equal(t, "hello", thread[1].Content)
	assert.Equal(t, "pitch?", thread[2].Content)
}

func TestFindUserMessages_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewMessageRepository()

	alice := createTestUser(t, db, "alice@test.com", models.UserRoleEntrepreneur)
	bob := createTestUser(t, db, "bob@test.com", models.UserRoleInvestor)
	carol := createTestUser(t, db, "carol@test.com", models.UserRoleMentor)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	createTestMessage(t, db, alice.ID, bob.ID, "to bob", base)
	createTestMessage(t, db, carol.ID, alice.ID, "from carol", base.Add(1*time.Minute))
	createTestMessage(t, db, bob.ID, carol.ID, "not alice's", base.Add(2*time.Minute))

	messages, err := repo.FindUserMessages(db, alice.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "from carol", messages[0].Content)
	assert.Equal(t, "to bob", messages[1].Content)
}

func TestMarkConversationRead_FlipsOnlyInboundUnread(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewMessageRepository()

	alice := createTestUser(t, db, "alice@test.com", models.UserRoleEntrepreneur)
	bob := createTestUser(t, db, "bob@test.com", models.UserRoleInvestor)
	carol := createTestUser(t, db, "carol@test.com", models.UserRoleMentor)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	createTestMessage(t, db, bob.ID, alice.ID, "one", base)
	createTestMessage(t, db, bob.ID, alice.ID, "two", base.Add(1*time.Minute))
	outbound := createTestMessage(t, db, alice.ID, bob.ID, "reply", base.Add(2*time.Minute))
	other := createTestMessage(t, db, carol.ID, alice.ID, "other thread", base.Add(3*time.Minute))

	already := createTestMessage(t, db, bob.ID, alice.ID, "seen", base.Add(4*time.Minute))
	require.NoError(t, db.Model(already).Update("is_read", true).Error)

	count, err := repo.MarkConversationRead(db, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Repeat call finds nothing left to flip.
	count, err = repo.MarkConversationRead(db, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	var check models.Message
	require.NoError(t, db.First(&check, "id = ?", outbound.ID).Error)
	assert.False(t, check.IsRead, "outbound messages must stay untouched")
	var otherCheck models.Message
	require.NoError(t, db.First(&otherCheck, "id = ?", other.ID).Error)
	assert.False(t, otherCheck.IsRead, "other conversations must stay untouched")
}
