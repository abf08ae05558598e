package dto

import (
	"encoding/json"
	"time"

	"novanest_backend/internal/models"
)

type UserResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	ProfileDetails json.RawMessage `json:"profileDetails,omitempty"`

	NotifyMessages       bool `json:"notifyMessages"`
	NotifyStartupViews   bool `json:"notifyStartupViews"`
	NotifyPitchDeckViews bool `json:"notifyPitchDeckViews"`

	CreatedAt time.Time `json:"createdAt"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:                   user.ID,
		Name:                 user.Name,
		Email:                user.Email,
		Role:                 user.Role,
		ProfileDetails:       json.RawMessage(user.ProfileDetails),
		NotifyMessages:       user.NotifyMessages,
		NotifyStartupViews:   user.NotifyStartupViews,
		NotifyPitchDeckViews: user.NotifyPitchDeckViews,
		CreatedAt:            user.CreatedAt,
	}
}

type UpdateUserRequest struct {
	Name           string          `json:"name,omitempty"`
	ProfileDetails json.RawMessage `json:"profileDetails,omitempty"`
}

// NotificationPrefsRequest uses pointers so an omitted flag is rejected
// instead of silently read as false.
type NotificationPrefsRequest struct {
	NotifyMessages       *bool `json:"notifyMessages" binding:"required"`
	NotifyStartupViews   *bool `json:"notifyStartupViews" binding:"required"`
	NotifyPitchDeckViews *bool `json:"notifyPitchDeckViews" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
