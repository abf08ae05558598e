package services

import (
	"gorm.io/gorm"

	"novanest_backend/internal/email"
	"novanest_backend/internal/imageprocessor"
	"novanest_backend/internal/repositories"
	"novanest_backend/internal/storage"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	StartupService      StartupService
	MessageService      MessageService
	NotificationService NotificationService
	AnalyticsService    AnalyticsService
	EmailService        email.Provider
}

// NewServiceContainer wires the repositories into services. Repositories
// are stateless; services carry the database handle and open
// transactions where writes must land together.
func NewServiceContainer(
	db *gorm.DB,
	store storage.Storage,
	processor *imageprocessor.Processor,
	emailProvider email.Provider,
	maxVideoSize int64,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	startupRepo := repositories.NewStartupRepository()
	messageRepo := repositories.NewMessageRepository()
	notificationRepo := repositories.NewNotificationRepository()
	analyticsRepo := repositories.NewAnalyticsRepository()

	return &ServiceContainer{
		AuthService:         NewAuthService(db, userRepo, emailProvider),
		UserService:         NewUserService(db, userRepo),
		StartupService:      NewStartupService(db, startupRepo, userRepo, store, processor, maxVideoSize),
		MessageService:      NewMessageService(db, messageRepo, userRepo, startupRepo, analyticsRepo, notificationRepo),
		NotificationService: NewNotificationService(db, notificationRepo),
		AnalyticsService:    NewAnalyticsService(db, analyticsRepo, startupRepo, userRepo, notificationRepo),
		EmailService:        emailProvider,
	}
}
