package models

// Message is a directed edge between two users. Immutable after creation
// except for the read flag.
type Message struct {
	BaseModel
	SenderID    string `gorm:"type:uuid;not null;index" json:"senderId"`
	RecipientID string `gorm:"type:uuid;not null;index" json:"recipientId"`
	Content     string `gorm:"not null" json:"content"`
	IsRead      bool   `gorm:"default:false" json:"isRead"`
}
