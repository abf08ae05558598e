package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novanest_backend/internal/models"
	"novanest_backend/internal/repositories"
)

func TestGetSummary_NoRecordYieldsZeros(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAnalyticsRepository()

	founder := createTestUser(t, db, "founder@test.com", models.UserRoleEntrepreneur)
	startup := createTestStartup(t, db, founder.ID, "Quiet Inc")

	summary, err := repo.GetSummary(db, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.ViewsCount)
	assert.Equal(t, int64(0), summary.UniqueViewsCount)
	assert.Equal(t, int64(0), summary.PitchDeckViews)
	assert.Equal(t, int64(0), summary.MessageCount)
}

func TestFindOrCreateByStartup_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAnalyticsRepository()

	founder := createTestUser(t, db, "founder@test.com", models.UserRoleEntrepreneur)
	startup := createTestStartup(t, db, founder.ID, "Once Inc")

	first, err := repo.FindOrCreateByStartup(db, startup.ID)
	require.NoError(t, err)
	second, err := repo.FindOrCreateByStartup(db, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.StartupAnalytics{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetSummary_CountsRawAndDistinctViews(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAnalyticsRepository()

	founder := createTestUser(t, db, "founder@test.com", models.UserRoleEntrepreneur)
	viewer := createTestUser(t, db, "viewer@test.com", models.UserRoleInvestor)
	other := createTestUser(t, db, "other@test.com", models.UserRoleMentor)
	startup := createTestStartup(t, db, founder.ID, "Counted Inc")

	analytics, err := repo.FindOrCreateByStartup(db, startup.ID)
	require.NoError(t, err)

	// The same viewer returning three times counts three raw views but
	// one unique viewer.
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AppendEvent(db, analytics.ID, models.EventKindView, viewer.ID))
	}
	require.NoError(t, repo.AppendEvent(db, analytics.ID, models.EventKindView, other.ID))
	require.NoError(t, repo.AppendEvent(db, analytics.ID, models.EventKindPitchDeckView, viewer.ID))
	require.NoError(t, repo.AppendEvent(db, analytics.ID, models.EventKindMessage, viewer.ID))
	require.NoError(t, repo.AppendEvent(db, analytics.ID, models.EventKindMessage, other.ID))

	summary, err := repo.GetSummary(db, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), summary.ViewsCount)
	assert.Equal(t, int64(2), summary.UniqueViewsCount)
	assert.Equal(t, int64(1), summary.PitchDeckViews)
	assert.Equal(t, int64(2), summary.MessageCount)
}

func TestGetSummary_IsolatedPerStartup(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewAnalyticsRepository()

	founder := createTestUser(t, db, "founder@test.com", models.UserRoleEntrepreneur)
	viewer := createTestUser(t, db, "viewer@test.com", models.UserRoleInvestor)
	first := createTestStartup(t, db, founder.ID, "First Inc")
	second := createTestStartup(t, db, founder.ID, "Second Inc")

	a1, err := repo.FindOrCreateByStartup(db, first.ID)
	require.NoError(t, err)
	require.NoError(t, repo.AppendEvent(db, a1.ID, models.EventKindView, viewer.ID))

	summary, err := repo.GetSummary(db, second.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.ViewsCount)
}
