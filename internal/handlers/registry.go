package handlers

import (
	"novanest_backend/internal/services"
	"novanest_backend/internal/validator"
)

// AppHandlers holds all HTTP handlers.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	StartupHandler      *StartupHandler
	MessageHandler      *MessageHandler
	NotificationHandler *NotificationHandler
	AnalyticsHandler    *AnalyticsHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		AuthHandler:         NewAuthHandler(base, sc.AuthService),
		UserHandler:         NewUserHandler(base, sc.UserService),
		StartupHandler:      NewStartupHandler(base, sc.StartupService),
		MessageHandler:      NewMessageHandler(base, sc.MessageService),
		NotificationHandler: NewNotificationHandler(base, sc.NotificationService),
		AnalyticsHandler:    NewAnalyticsHandler(base, sc.AnalyticsService),
	}
}
