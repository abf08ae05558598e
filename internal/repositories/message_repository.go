package repositories

import (
	"gorm.io/gorm"

	"novanest_backend/internal/models"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	// FindUserMessages returns every message the user sent or received,
	// newest first.
	FindUserMessages(db *gorm.DB, userID string) ([]models.Message, error)
	// FindThread returns the two-way thread with one counterpart, oldest
	// first.
	FindThread(db *gorm.DB, userID, counterpartID string) ([]models.Message, error)
	// MarkConversationRead flips every unread message from counterpart to
	// user and reports how many rows changed.
	MarkConversationRead(db *gorm.DB, counterpartID, userID string) (int64, error)
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindUserMessages(db *gorm.DB, userID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where("sender_id = ? OR recipient_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) FindThread(db *gorm.DB, userID, counterpartID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.Where(
		"(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
		userID, counterpartID, counterpartID, userID,
	).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) MarkConversationRead(db *gorm.DB, counterpartID, userID string) (int64, error) {
	result := db.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND is_read = ?", counterpartID, userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
