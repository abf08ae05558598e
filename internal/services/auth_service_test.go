package services_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novanest_backend/internal/models"
	"novanest_backend/internal/services/dto"
	"novanest_backend/pkg/apperrors"
)

func TestSignupAndLogin(t *testing.T) {
	env := setupTestEnv(t)

	signupResp, err := env.container.AuthService.Signup(&dto.SignupRequest{
		Name:     "Ada",
		Email:    "ada@test.com",
		Password: "password123",
		Role:     models.UserRoleEntrepreneur,
		ProfileDetails: rawJSON(t, models.EntrepreneurProfile{
			Company: "Ada Ventures",
			Bio:     "serial founder",
		}),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, signupResp.Token)
	assert.Equal(t, models.UserRoleEntrepreneur, signupResp.User.Role)
	assert.Contains(t, string(signupResp.User.ProfileDetails), "Ada Ventures")
	assert.Equal(t, []string{"ada@test.com"}, env.email.welcomes)

	loginResp, err := env.container.AuthService.Login(&dto.LoginRequest{
		Email:    "ada@test.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loginResp.Token)
	assert.Equal(t, signupResp.User.ID, loginResp.User.ID)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "First", "dup@test.com", models.UserRoleInvestor)

	_, err := env.container.AuthService.Signup(&dto.SignupRequest{
		Name:     "Second",
		Email:    "dup@test.com",
		Password: "password123",
		Role:     models.UserRoleMentor,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignup_WeakPassword(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.container.AuthService.Signup(&dto.SignupRequest{
		Name:     "Short",
		Email:    "short@test.com",
		Password: "short",
		Role:     models.UserRoleInvestor,
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestSignup_ProfileShapeMustMatchRole(t *testing.T) {
	env := setupTestEnv(t)

	// An entrepreneur submitting investor-only fields is rejected.
	_, err := env.container.AuthService.Signup(&dto.SignupRequest{
		Name:           "Confused",
		Email:          "confused@test.com",
		Password:       "password123",
		Role:           models.UserRoleEntrepreneur,
		ProfileDetails: rawJSON(t, map[string]interface{}{"firm": "Big Capital"}),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.signup(t, "Ada", "ada@test.com", models.UserRoleEntrepreneur)

	_, err := env.container.AuthService.Login(&dto.LoginRequest{
		Email:    "ada@test.com",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.container.AuthService.Login(&dto.LoginRequest{
		Email:    "nobody@test.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
