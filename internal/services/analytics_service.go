package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"novanest_backend/internal/models"
	"novanest_backend/internal/repositories"
	"novanest_backend/pkg/apperrors"
)

type AnalyticsService interface {
	// RecordView appends a profile-view event and, when the founder has
	// opted in, their notification — atomically. Every call appends; the
	// unique-viewer count is derived at read time.
	RecordView(startupID, actorID string) error
	RecordPitchDeckView(startupID, actorID string) error
	// GetSummary is founder-only.
	GetSummary(callerID, startupID string) (*repositories.AnalyticsSummary, error)
}

type AnalyticsServiceImpl struct {
	db            *gorm.DB
	analyticsRepo repositories.AnalyticsRepository
	startupRepo   repositories.StartupRepository
	userRepo      repositories.UserRepository
	notifRepo     repositories.NotificationRepository
}

func NewAnalyticsService(
	db *gorm.DB,
	analyticsRepo repositories.AnalyticsRepository,
	startupRepo repositories.StartupRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		db:            db,
		analyticsRepo: analyticsRepo,
		startupRepo:   startupRepo,
		userRepo:      userRepo,
		notifRepo:     notifRepo,
	}
}

func (s *AnalyticsServiceImpl) RecordView(startupID, actorID string) error {
	return s.recordEvent(startupID, actorID, models.EventKindView)
}

func (s *AnalyticsServiceImpl) RecordPitchDeckView(startupID, actorID string) error {
	return s.recordEvent(startupID, actorID, models.EventKindPitchDeckView)
}

func (s *AnalyticsServiceImpl) recordEvent(startupID, actorID, kind string) error {
	startup, err := s.startupRepo.FindByID(s.db, startupID)
	if err != nil {
		if err == repositories.ErrStartupNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		analytics, err := s.analyticsRepo.FindOrCreateByStartup(tx, startup.ID)
		if err != nil {
			return err
		}
		if err := s.analyticsRepo.AppendEvent(tx, analytics.ID, kind, actorID); err != nil {
			return err
		}

		// Founders viewing their own startup generate events but no
		// notification.
		if actorID == startup.FounderID {
			return nil
		}
		founder, err := s.userRepo.FindByID(tx, startup.FounderID)
		if err != nil {
			return err
		}
		if !wantsEventNotification(founder, kind) {
			return nil
		}

		data, _ := json.Marshal(map[string]string{
			"startup_id": startup.ID,
			"actor_id":   actorID,
		})
		notification := &models.Notification{
			UserID:  founder.ID,
			Type:    notificationTypeForEvent(kind),
			Message: eventNotificationMessage(startup.Name, kind),
			Link:    "/startups/" + startup.ID,
			Data:    datatypes.JSON(data),
		}
		return s.notifRepo.Create(tx, notification)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AnalyticsServiceImpl) GetSummary(callerID, startupID string) (*repositories.AnalyticsSummary, error) {
	startup, err := s.startupRepo.FindByID(s.db, startupID)
	if err != nil {
		if err == repositories.ErrStartupNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if startup.FounderID != callerID {
		return nil, apperrors.ErrNotStartupFounder
	}

	summary, err := s.analyticsRepo.GetSummary(s.db, startupID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return summary, nil
}

func wantsEventNotification(founder *models.User, kind string) bool {
	switch kind {
	case models.EventKindView:
		return founder.NotifyStartupViews
	case models.EventKindPitchDeckView:
		return founder.NotifyPitchDeckViews
	}
	return false
}

func notificationTypeForEvent(kind string) string {
	if kind == models.EventKindPitchDeckView {
		return repositories.NotificationTypePitchDeckView
	}
	return repositories.NotificationTypeStartupView
}

func eventNotificationMessage(startupName, kind string) string {
	if kind == models.EventKindPitchDeckView {
		return "Someone viewed the pitch deck of " + startupName
	}
	return "Someone viewed " + startupName
}
