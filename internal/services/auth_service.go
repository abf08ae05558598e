package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"novanest_backend/internal/auth"
	"novanest_backend/internal/email"
	"novanest_backend/internal/logger"
	"novanest_backend/internal/models"
	"novanest_backend/internal/repositories"
	"novanest_backend/internal/services/dto"
	"novanest_backend/pkg/apperrors"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	db            *gorm.DB
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewAuthService(db *gorm.DB, userRepo repositories.UserRepository, emailProvider email.Provider) AuthService {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewBadRequestError("Role must be one of: entrepreneur, investor, mentor")
	}

	profile, err := normalizeProfileDetails(req.Role, req.ProfileDetails)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:                 req.Name,
		Email:                req.Email,
		PasswordHash:         hash,
		Role:                 req.Role,
		ProfileDetails:       profile,
		NotifyMessages:       true,
		NotifyStartupViews:   true,
		NotifyPitchDeckViews: true,
	}

	if err := s.userRepo.Create(s.db, user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Welcome email is best-effort: signup must not fail on SMTP trouble.
	if err := s.emailProvider.SendWelcome(user.Email, user.Name, string(user.Role)); err != nil {
		logger.Warn("failed to send welcome email", "user_id", user.ID, "error", err)
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(s.db, req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// normalizeProfileDetails decodes the schemaless profile payload into the
// typed variant for the role, rejecting fields that belong to another
// role, and re-encodes the canonical form for storage.
func normalizeProfileDetails(role models.UserRole, raw json.RawMessage) (datatypes.JSON, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var profile interface{}
	switch role {
	case models.UserRoleEntrepreneur:
		profile = &models.EntrepreneurProfile{}
	case models.UserRoleInvestor:
		profile = &models.InvestorProfile{}
	case models.UserRoleMentor:
		profile = &models.MentorProfile{}
	default:
		return nil, apperrors.NewBadRequestError("Role must be one of: entrepreneur, investor, mentor")
	}

	if err := strictUnmarshal(raw, profile); err != nil {
		return nil, apperrors.ValidationError(map[string]string{
			"profileDetails": "does not match the profile shape for role " + string(role),
		})
	}

	normalized, err := json.Marshal(profile)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return datatypes.JSON(normalized), nil
}
