package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novanest_backend/internal/models"
	"novanest_backend/internal/services/dto"
	"novanest_backend/pkg/apperrors"
)

func TestRecordView_AppendsAndNotifiesFounder(t *testing.T) {
	env := setupTestEnv(t)
	founder := env.signup(t, "Ada", "ada@test.com", models.UserRoleEntrepreneur)
	investor := env.signup(t, "Vern", "vern@test.com", models.UserRoleInvestor)
	startup := env.createStartup(t, founder.User.ID, "PayFlow")

	require.NoError(t, env.container.AnalyticsService.RecordView(startup.ID, investor.User.ID))

	summary, err := env.container.AnalyticsService.GetSummary(founder.User.ID, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.ViewsCount)
	assert.Equal(t, int64(1), summary.UniqueViewsCount)

	var notifications []models.Notification
	require.NoError(t, env.db.Where("user_id = ?", founder.User.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "startup_view", notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "PayFlow")
}

func TestRecordView_RepeatViewerCountsOnceUnique(t *testing.T) {
	env := setupTestEnv(t)
	founder := env.signup(t, "Ada", "ada@test.com", models.UserRoleEntrepreneur)
	investor := env.signup(t, "Vern", "vern@test.com", models.UserRoleInvestor)
	startup := env.createStartup(t, founder.User.ID, "PayFlow")

	for i := 0; i < 3; i++ {
		require.NoError(t, env.container.AnalyticsService.RecordView(startup.ID, investor.User.ID))
	}

	summary, err := env.container.AnalyticsService.GetSummary(founder.User.ID, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.ViewsCount)
	assert.Equal(t, int64(1), summary.UniqueViewsCount)
}

func TestRecordView_SelfViewDoesNotNotify(t *testing.T) {
	env := setupTestEnv(t)
	founder := env.signup(t, "Ada", "ada@test.com", models.UserRoleEntrepreneur)
	startup := env.createStartup(t, founder.User.ID, "PayFlow")

	require.NoError(t, env.container.AnalyticsService.RecordView(startup.ID, founder.User.ID))

	summary, err := env.container.AnalyticsService.GetSummary(founder.User.ID, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.ViewsCount, "self views still count")

	var count int64
	require.NoError(t, env.db.Model(&models.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRecordView_MutedPrefSkipsNotificationOnly(t *testing.T) {
	env := setupTestEnv(t)
	founder := env.signup(t, "Ada", "ada@test.com", models.UserRoleEntrepreneur)
	investor := env.signup(t, "Vern", "vern@test.com", models.UserRoleInvestor)
	startup := env.createStartup(t, founder.User.ID, "PayFlow")

	require.NoError(t, env.db.Model(&models.User{}).
		Where("id = ?", founder.User.ID).
		Update("notify_startup_views", false).Error)

	require.NoError(t, env.container.AnalyticsService.RecordView(startup.ID, investor.User.ID))

	summary, err := env.container.AnalyticsService.GetSummary(founder.User.ID, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.ViewsCount)

	var count int64
	require.NoError(t, env.db.Model(&models.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRecordPitchDeckView(t *testing.T) {
	env := setupTestEnv(t)
	founder := env.signup(t, "Ada", "ada@test.com", models.UserRoleEntrepreneur)
	investor := env.signup(t, "Vern", "vern@test.com", models.UserRoleInvestor)
	startup := env.createStartup(t, founder.User.ID, "PayFlow")

	require.NoError(t, env.container.AnalyticsService.RecordPitchDeckView(startup.ID, investor.User.ID))

	summary, err := env.container.AnalyticsService.GetSummary(founder.User.ID, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.PitchDeckViews)
	assert.Equal(t, int64(0), summary.ViewsCount, "deck views are a separate log")

	var notifications []models.Notification
	require.NoError(t, env.db.Where("user_id = ?", founder.User.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, "pitchdeck_view", notifications[0].Type)
}

func TestGetSummary_FounderOnly(t *testing.T) {
	env := setupTestEnv(t)
	founder := env.signup(t, "Ada", "ada@test.com", models.UserRoleEntrepreneur)
	investor := env.signup(t, "Vern", "vern@test.com", models.UserRoleInvestor)
	startup := env.createStartup(t, founder.User.ID, "PayFlow")

	_, err := env.container.AnalyticsService.GetSummary(investor.User.ID, startup.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotStartupFounder)
}

func TestRecordView_MissingStartup(t *testing.T) {
	env := setupTestEnv(t)
	investor := env.signup(t, "Vern", "vern@test.com", models.UserRoleInvestor)

	err := env.container.AnalyticsService.RecordView("00000000-0000-0000-0000-000000000000", investor.User.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestMessageEventsFlowIntoSummary(t *testing.T) {
	env := setupTestEnv(t)
	founder := env.signup(t, "Ada", "ada@test.com", models.UserRoleEntrepreneur)
	investor := env.signup(t, "Vern", "vern@test.com", models.UserRoleInvestor)
	startup := env.createStartup(t, founder.User.ID, "PayFlow")

	_, err := env.container.MessageService.Send(investor.User.ID, &dto.SendMessageRequest{
		RecipientID: founder.User.ID,
		Content:     "hi",
		StartupID:   startup.ID,
	})
	require.NoError(t, err)

	summary, err := env.container.AnalyticsService.GetSummary(founder.User.ID, startup.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.MessageCount)
}
