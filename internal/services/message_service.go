package services

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"novanest_backend/internal/models"
	"novanest_backend/internal/repositories"
	"novanest_backend/internal/services/dto"
	"novanest_backend/pkg/apperrors"
)

type MessageService interface {
	// Send persists the message, its analytics event and the recipient's
	// notification in a single transaction, so a stored message always
	// has its side effects.
	Send(senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	// Thread returns the two-way history with one counterpart, oldest
	// first.
	Thread(userID, counterpartID string) ([]dto.MessageResponse, error)
	Conversations(userID string) ([]dto.ConversationResponse, error)
	ConversationsWithDetails(userID string) ([]dto.ConversationDetailResponse, error)
	// MarkConversationRead flips the unread messages from counterpart to
	// user. Idempotent: a repeat call reports zero updates.
	MarkConversationRead(userID, counterpartID string) (*dto.MarkReadResponse, error)
}

type MessageServiceImpl struct {
	db            *gorm.DB
	messageRepo   repositories.MessageRepository
	userRepo      repositories.UserRepository
	startupRepo   repositories.StartupRepository
	analyticsRepo repositories.AnalyticsRepository
	notifRepo     repositories.NotificationRepository
}

func NewMessageService(
	db *gorm.DB,
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	startupRepo repositories.StartupRepository,
	analyticsRepo repositories.AnalyticsRepository,
	notifRepo repositories.NotificationRepository,
) MessageService {
	return &MessageServiceImpl{
		db:            db,
		messageRepo:   messageRepo,
		userRepo:      userRepo,
		startupRepo:   startupRepo,
		analyticsRepo: analyticsRepo,
		notifRepo:     notifRepo,
	}
}

func (s *MessageServiceImpl) Send(senderID string, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if senderID == req.RecipientID {
		return nil, apperrors.ErrMessageToSelf
	}

	sender, err := s.userRepo.FindByID(s.db, senderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	recipient, err := s.userRepo.FindByID(s.db, req.RecipientID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		SenderID:    senderID,
		RecipientID: recipient.ID,
		Content:     req.Content,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.messageRepo.Create(tx, message); err != nil {
			return err
		}

		startup, err := s.resolveAnalyticsStartup(tx, recipient, req.StartupID)
		if err != nil {
			return err
		}
		if startup != nil {
			analytics, err := s.analyticsRepo.FindOrCreateByStartup(tx, startup.ID)
			if err != nil {
				return err
			}
			if err := s.analyticsRepo.AppendEvent(tx, analytics.ID, models.EventKindMessage, senderID); err != nil {
				return err
			}
		}

		if recipient.NotifyMessages {
			data, _ := json.Marshal(map[string]string{"sender_id": senderID})
			notification := &models.Notification{
				UserID:  recipient.ID,
				Type:    repositories.NotificationTypeMessage,
				Message: "New message from " + sender.Name,
				Link:    "/messages?userId=" + senderID,
				Data:    datatypes.JSON(data),
			}
			if err := s.notifRepo.Create(tx, notification); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

// resolveAnalyticsStartup picks which startup a message counts against.
// An explicit startupId must belong to the recipient; otherwise the
// recipient's most recent startup is used when they are an entrepreneur,
// and nothing is recorded when no startup can be resolved.
func (s *MessageServiceImpl) resolveAnalyticsStartup(tx *gorm.DB, recipient *models.User, startupID string) (*models.Startup, error) {
	if startupID != "" {
		startup, err := s.startupRepo.FindByID(tx, startupID)
		if err != nil {
			if err == repositories.ErrStartupNotFound {
				return nil, apperrors.NewBadRequestError("startupId does not reference an existing startup")
			}
			return nil, err
		}
		if startup.FounderID != recipient.ID {
			return nil, apperrors.NewBadRequestError("startupId must reference one of the recipient's startups")
		}
		return startup, nil
	}

	if recipient.Role != models.UserRoleEntrepreneur {
		return nil, nil
	}
	startup, err := s.startupRepo.FindLatestByFounder(tx, recipient.ID)
	if err != nil {
		if err == repositories.ErrStartupNotFound {
			return nil, nil
		}
		return nil, err
	}
	return startup, nil
}

func (s *MessageServiceImpl) Thread(userID, counterpartID string) ([]dto.MessageResponse, error) {
	if _, err := s.userRepo.FindByID(s.db, counterpartID); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	messages, err := s.messageRepo.FindThread(s.db, userID, counterpartID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewMessageListResponse(messages), nil
}

func (s *MessageServiceImpl) Conversations(userID string) ([]dto.ConversationResponse, error) {
	messages, err := s.messageRepo.FindUserMessages(s.db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return aggregateConversations(userID, messages), nil
}

func (s *MessageServiceImpl) ConversationsWithDetails(userID string) ([]dto.ConversationDetailResponse, error) {
	conversations, err := s.Conversations(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(conversations))
	for _, conv := range conversations {
		ids = append(ids, conv.UserID)
	}
	users, err := s.userRepo.FindByIDs(s.db, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	details := make([]dto.ConversationDetailResponse, 0, len(conversations))
	for _, conv := range conversations {
		detail := dto.ConversationDetailResponse{ConversationResponse: conv}
		if user, ok := byID[conv.UserID]; ok {
			detail.UserName = user.Name
			detail.UserEmail = user.Email
			detail.UserRole = user.Role
			detail.ProfileDetails = user.ProfileDetails
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *MessageServiceImpl) MarkConversationRead(userID, counterpartID string) (*dto.MarkReadResponse, error) {
	count, err := s.messageRepo.MarkConversationRead(s.db, counterpartID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.MarkReadResponse{UpdatedCount: count}, nil
}
