package dto

import (
	"encoding/json"

	"novanest_backend/internal/models"
)

type SignupRequest struct {
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	Password       string          `json:"password" binding:"required"`
	Role           models.UserRole `json:"role" binding:"required,oneof=entrepreneur investor mentor" validate:"omitempty,platformrole"`
	ProfileDetails json.RawMessage `json:"profileDetails,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the bearer token plus the authenticated user, so
// clients can render the session without a follow-up /users/me call.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
