package services

import (
	"bytes"
	"encoding/json"

	"gorm.io/gorm"

	"novanest_backend/internal/auth"
	"novanest_backend/internal/models"
	"novanest_backend/internal/repositories"
	"novanest_backend/internal/services/dto"
	"novanest_backend/pkg/apperrors"
)

type UserService interface {
	GetMe(userID string) (*dto.UserResponse, error)
	// Update modifies the target user's profile. Users may only update
	// themselves.
	Update(callerID, targetID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	UpdateNotificationPrefs(callerID, targetID string, req *dto.NotificationPrefsRequest) error
	ChangePassword(callerID, targetID string, req *dto.ChangePasswordRequest) error
}

type UserServiceImpl struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
}

func NewUserService(db *gorm.DB, userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{db: db, userRepo: userRepo}
}

func (s *UserServiceImpl) GetMe(userID string) (*dto.UserResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) Update(callerID, targetID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if callerID != targetID {
		return nil, apperrors.NewForbiddenError("Users may only update their own profile")
	}

	user, err := s.findUser(targetID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if len(req.ProfileDetails) > 0 {
		profile, err := normalizeProfileDetails(user.Role, req.ProfileDetails)
		if err != nil {
			return nil, err
		}
		user.ProfileDetails = profile
	}

	if err := s.userRepo.Update(s.db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *UserServiceImpl) UpdateNotificationPrefs(callerID, targetID string, req *dto.NotificationPrefsRequest) error {
	if callerID != targetID {
		return apperrors.NewForbiddenError("Users may only update their own preferences")
	}

	prefs := repositories.NotificationPrefs{
		NotifyMessages:       *req.NotifyMessages,
		NotifyStartupViews:   *req.NotifyStartupViews,
		NotifyPitchDeckViews: *req.NotifyPitchDeckViews,
	}
	if err := s.userRepo.UpdateNotificationPrefs(s.db, targetID, prefs); err != nil {
		if err == repositories.ErrUserNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ChangePassword(callerID, targetID string, req *dto.ChangePasswordRequest) error {
	if callerID != targetID {
		return apperrors.NewForbiddenError("Users may only change their own password")
	}

	user, err := s.findUser(targetID)
	if err != nil {
		return err
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.NewUnauthorizedError("Current password is incorrect")
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.UpdatePassword(s.db, targetID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(s.db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// strictUnmarshal decodes raw into v and rejects unknown fields.
func strictUnmarshal(raw json.RawMessage, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
