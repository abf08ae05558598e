package repositories_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"novanest_backend/internal/models"
)

// setupTestDB opens a private in-memory database. Pool size is pinned to
// one connection so every query sees the same memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Startup{},
		&models.Message{},
		&models.Notification{},
		&models.StartupAnalytics{},
		&models.AnalyticsEvent{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Name:                 "Test User",
		Email:                email,
		PasswordHash:         "x",
		Role:                 role,
		NotifyMessages:       true,
		NotifyStartupViews:   true,
		NotifyPitchDeckViews: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestStartup(t *testing.T, db *gorm.DB, founderID, name string) *models.Startup {
	t.Helper()

	startup := &models.Startup{
		FounderID:   founderID,
		Name:        name,
		Description: "A test venture",
		Industry:    "Fintech",
		Stage:       "seed",
		FundingGoal: 100000,
	}
	require.NoError(t, db.Create(startup).Error)
	return startup
}
