package repositories

import (
	"errors"

	"gorm.io/gorm"

	"novanest_backend/internal/models"
)

type AnalyticsRepository interface {
	// FindOrCreateByStartup lazily creates the per-startup analytics
	// record on first use.
	FindOrCreateByStartup(db *gorm.DB, startupID string) (*models.StartupAnalytics, error)
	AppendEvent(db *gorm.DB, analyticsID, kind, actorID string) error
	// GetSummary aggregates the event logs; a startup with no analytics
	// record yields all-zero counts.
	GetSummary(db *gorm.DB, startupID string) (*AnalyticsSummary, error)
}

// AnalyticsSummary is the founder-facing aggregate.
type AnalyticsSummary struct {
	ViewsCount       int64 `json:"viewsCount"`
	UniqueViewsCount int64 `json:"uniqueViewsCount"`
	PitchDeckViews   int64 `json:"pitchDeckViews"`
	MessageCount     int64 `json:"messageCount"`
}

type AnalyticsRepositoryImpl struct{}

func NewAnalyticsRepository() AnalyticsRepository {
	return &AnalyticsRepositoryImpl{}
}

func (r *AnalyticsRepositoryImpl) FindOrCreateByStartup(db *gorm.DB, startupID string) (*models.StartupAnalytics, error) {
	var analytics models.StartupAnalytics
	err := db.Where("startup_id = ?", startupID).First(&analytics).Error
	if err == nil {
		return &analytics, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	analytics = models.StartupAnalytics{StartupID: startupID}
	if err := db.Create(&analytics).Error; err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (r *AnalyticsRepositoryImpl) AppendEvent(db *gorm.DB, analyticsID, kind, actorID string) error {
	event := models.AnalyticsEvent{
		AnalyticsID: analyticsID,
		Kind:        kind,
		ActorID:     actorID,
	}
	return db.Create(&event).Error
}

func (r *AnalyticsRepositoryImpl) GetSummary(db *gorm.DB, startupID string) (*AnalyticsSummary, error) {
	summary := &AnalyticsSummary{}

	var analytics models.StartupAnalytics
	err := db.Where("startup_id = ?", startupID).First(&analytics).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No events recorded yet: zeros, not an error.
			return summary, nil
		}
		return nil, err
	}

	events := db.Model(&models.AnalyticsEvent{}).Where("analytics_id = ?", analytics.ID)

	if err := events.Session(&gorm.Session{}).
		Where("kind = ?", models.EventKindView).
		Count(&summary.ViewsCount).Error; err != nil {
		return nil, err
	}

	if err := events.Session(&gorm.Session{}).
		Where("kind = ?", models.EventKindView).
		Distinct("actor_id").
		Count(&summary.UniqueViewsCount).Error; err != nil {
		return nil, err
	}

	if err := events.Session(&gorm.Session{}).
		Where("kind = ?", models.EventKindPitchDeckView).
		Count(&summary.PitchDeckViews).Error; err != nil {
		return nil, err
	}

	if err := events.Session(&gorm.Session{}).
		Where("kind = ?", models.EventKindMessage).
		Count(&summary.MessageCount).Error; err != nil {
		return nil, err
	}

	return summary, nil
}
