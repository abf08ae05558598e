package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;index" json:"userId"`
	Type    string         `gorm:"not null" json:"type"` // "message", "profile_view", "startup_view", "pitchdeck_view", "system"
	Message string         `gorm:"not null" json:"message"`
	Link    string         `json:"link,omitempty"`
	Data    datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"` // {"startup_id": "...", "sender_id": "..."}
	IsRead  bool           `gorm:"default:false" json:"isRead"`
	ReadAt  *time.Time     `json:"readAt,omitempty"`
}
