package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novanest_backend/internal/models"
	"novanest_backend/internal/repositories"
)

func TestCreate_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewUserRepository()

	createTestUser(t, db, "taken@test.com", models.UserRoleInvestor)

	err := repo.Create(db, &models.User{
		Name:         "Second",
		Email:        "taken@test.com",
		PasswordHash: "x",
		Role:         models.UserRoleMentor,
	})
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)
}

func TestFindByEmail_Missing(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewUserRepository()

	_, err := repo.FindByEmail(db, "ghost@test.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestFindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewUserRepository()

	a := createTestUser(t, db, "a@test.com", models.UserRoleInvestor)
	b := createTestUser(t, db, "b@test.com", models.UserRoleMentor)
	createTestUser(t, db, "c@test.com", models.UserRoleEntrepreneur)

	users, err := repo.FindByIDs(db, []string{a.ID, b.ID})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = repo.FindByIDs(db, nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUpdateNotificationPrefs(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewUserRepository()

	user := createTestUser(t, db, "prefs@test.com", models.UserRoleEntrepreneur)

	err := repo.UpdateNotificationPrefs(db, user.ID, repositories.NotificationPrefs{
		NotifyMessages:       true,
		NotifyStartupViews:   false,
		NotifyPitchDeckViews: false,
	})
	require.NoError(t, err)

	updated, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.True(t, updated.NotifyMessages)
	assert.False(t, updated.NotifyStartupViews)
	assert.False(t, updated.NotifyPitchDeckViews)
}

func TestUpdateNotificationPrefs_MissingUser(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewUserRepository()

	err := repo.UpdateNotificationPrefs(db, "00000000-0000-0000-0000-000000000000", repositories.NotificationPrefs{})
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
