package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"novanest_backend/internal/imageprocessor"
	"novanest_backend/internal/logger"
	"novanest_backend/internal/models"
	"novanest_backend/internal/repositories"
	"novanest_backend/internal/services/dto"
	"novanest_backend/internal/storage"
	"novanest_backend/pkg/apperrors"
)

// StartupFiles carries the optional media parts of a startup upload. The
// pitch deck is mandatory at creation.
type StartupFiles struct {
	Logo      *multipart.FileHeader
	PitchDeck *multipart.FileHeader
	DemoVideo *multipart.FileHeader
}

type StartupService interface {
	Create(ctx context.Context, founderID string, req *dto.CreateStartupRequest, files StartupFiles) (*dto.StartupResponse, error)
	// Update applies a partial field update; any media part present in
	// files replaces the stored one.
	Update(ctx context.Context, founderID, startupID string, req *dto.UpdateStartupRequest, files StartupFiles) (*dto.StartupResponse, error)
	Delete(founderID, startupID string) error
	List(filter repositories.StartupFilter) ([]dto.StartupResponse, error)
	GetByID(startupID string) (*dto.StartupResponse, error)
	ListByFounder(founderID string) ([]dto.StartupResponse, error)
}

type StartupServiceImpl struct {
	db           *gorm.DB
	startupRepo  repositories.StartupRepository
	userRepo     repositories.UserRepository
	store        storage.Storage
	processor    *imageprocessor.Processor
	maxVideoSize int64
}

func NewStartupService(
	db *gorm.DB,
	startupRepo repositories.StartupRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
	processor *imageprocessor.Processor,
	maxVideoSize int64,
) StartupService {
	return &StartupServiceImpl{
		db:           db,
		startupRepo:  startupRepo,
		userRepo:     userRepo,
		store:        store,
		processor:    processor,
		maxVideoSize: maxVideoSize,
	}
}

func (s *StartupServiceImpl) Create(ctx context.Context, founderID string, req *dto.CreateStartupRequest, files StartupFiles) (*dto.StartupResponse, error) {
	founder, err := s.userRepo.FindByID(s.db, founderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if founder.Role != models.UserRoleEntrepreneur {
		return nil, apperrors.ErrFounderRoleRequired
	}

	count, err := s.startupRepo.CountByFounder(s.db, founderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if count >= models.MaxStartupsPerFounder {
		return nil, apperrors.ErrStartupLimitReached
	}

	if files.PitchDeck == nil {
		return nil, apperrors.ErrPitchDeckRequired
	}
	if files.DemoVideo != nil && files.DemoVideo.Size > s.maxVideoSize {
		return nil, apperrors.ErrDemoVideoTooLarge
	}

	startup := &models.Startup{
		BaseModel:   models.BaseModel{ID: uuid.NewString()},
		FounderID:   founderID,
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		Stage:       req.Stage,
		FundingGoal: req.FundingGoal,
	}

	var uploaded []string
	cleanup := func() {
		for _, path := range uploaded {
			if err := s.store.Delete(ctx, path); err != nil {
				logger.Warn("failed to clean up uploaded file", "path", path, "error", err)
			}
		}
	}

	if files.Logo != nil {
		url, path, err := s.uploadLogo(ctx, startup.ID, files.Logo)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, path)
		startup.LogoURL = url
	}

	url, path, err := s.uploadRaw(ctx, startup.ID, "pitchdeck", files.PitchDeck)
	if err != nil {
		cleanup()
		return nil, err
	}
	uploaded = append(uploaded, path)
	startup.PitchDeckURL = url

	if files.DemoVideo != nil {
		url, path, err := s.uploadRaw(ctx, startup.ID, "demovideo", files.DemoVideo)
		if err != nil {
			cleanup()
			return nil, err
		}
		uploaded = append(uploaded, path)
		startup.DemoVideoURL = url
	}

	if err := s.startupRepo.Create(s.db, startup); err != nil {
		cleanup()
		return nil, apperrors.InternalError(err)
	}

	startup.Founder = founder
	resp := dto.NewStartupResponse(startup)
	return &resp, nil
}

// uploadLogo resizes the image down to the logo bounds before storing it.
// A file that does not decode as an image is rejected.
func (s *StartupServiceImpl) uploadLogo(ctx context.Context, startupID string, header *multipart.FileHeader) (string, string, error) {
	file, err := header.Open()
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	defer file.Close()

	processed, err := s.processor.ProcessImage(file, imageprocessor.SizeLogo)
	if err != nil {
		return "", "", apperrors.ErrInvalidFileType
	}

	path := mediaPath(startupID, "logo", header.Filename)
	if err := s.store.Save(ctx, path, processed, header.Header.Get("Content-Type")); err != nil {
		return "", "", apperrors.InternalError(err)
	}
	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	return url, path, nil
}

func (s *StartupServiceImpl) uploadRaw(ctx context.Context, startupID, kind string, header *multipart.FileHeader) (string, string, error) {
	file, err := header.Open()
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	defer file.Close()

	path := mediaPath(startupID, kind, header.Filename)
	if err := s.store.Save(ctx, path, file, header.Header.Get("Content-Type")); err != nil {
		return "", "", apperrors.InternalError(err)
	}
	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	return url, path, nil
}

func mediaPath(startupID, kind, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return "startups/" + startupID + "/" + kind + ext
}

func (s *StartupServiceImpl) Update(ctx context.Context, founderID, startupID string, req *dto.UpdateStartupRequest, files StartupFiles) (*dto.StartupResponse, error) {
	startup, err := s.findOwned(founderID, startupID)
	if err != nil {
		return nil, err
	}

	if files.DemoVideo != nil && files.DemoVideo.Size > s.maxVideoSize {
		return nil, apperrors.ErrDemoVideoTooLarge
	}
	if files.Logo != nil {
		url, _, err := s.uploadLogo(ctx, startup.ID, files.Logo)
		if err != nil {
			return nil, err
		}
		startup.LogoURL = url
	}
	if files.PitchDeck != nil {
		url, _, err := s.uploadRaw(ctx, startup.ID, "pitchdeck", files.PitchDeck)
		if err != nil {
			return nil, err
		}
		startup.PitchDeckURL = url
	}
	if files.DemoVideo != nil {
		url, _, err := s.uploadRaw(ctx, startup.ID, "demovideo", files.DemoVideo)
		if err != nil {
			return nil, err
		}
		startup.DemoVideoURL = url
	}

	if req.Name != "" {
		startup.Name = req.Name
	}
	if req.Description != "" {
		startup.Description = req.Description
	}
	if req.Industry != "" {
		startup.Industry = req.Industry
	}
	if req.Stage != "" {
		startup.Stage = req.Stage
	}
	if req.FundingGoal != nil {
		startup.FundingGoal = *req.FundingGoal
	}

	if err := s.startupRepo.Update(s.db, startup); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewStartupResponse(startup)
	return &resp, nil
}

func (s *StartupServiceImpl) Delete(founderID, startupID string) error {
	if _, err := s.findOwned(founderID, startupID); err != nil {
		return err
	}
	if err := s.startupRepo.Delete(s.db, startupID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *StartupServiceImpl) findOwned(founderID, startupID string) (*models.Startup, error) {
	startup, err := s.startupRepo.FindByID(s.db, startupID)
	if err != nil {
		if err == repositories.ErrStartupNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if startup.FounderID != founderID {
		return nil, apperrors.ErrNotStartupFounder
	}
	return startup, nil
}

func (s *StartupServiceImpl) List(filter repositories.StartupFilter) ([]dto.StartupResponse, error) {
	startups, err := s.startupRepo.FindWithFilter(s.db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.attachFounders(startups); err != nil {
		return nil, err
	}
	return dto.NewStartupListResponse(startups), nil
}

func (s *StartupServiceImpl) GetByID(startupID string) (*dto.StartupResponse, error) {
	startup, err := s.startupRepo.FindByID(s.db, startupID)
	if err != nil {
		if err == repositories.ErrStartupNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if founder, err := s.userRepo.FindByID(s.db, startup.FounderID); err == nil {
		startup.Founder = founder
	}
	resp := dto.NewStartupResponse(startup)
	return &resp, nil
}

func (s *StartupServiceImpl) ListByFounder(founderID string) ([]dto.StartupResponse, error) {
	startups, err := s.startupRepo.FindByFounder(s.db, founderID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewStartupListResponse(startups), nil
}

// attachFounders resolves founder names for a catalog page in one query.
func (s *StartupServiceImpl) attachFounders(startups []models.Startup) error {
	ids := make([]string, 0, len(startups))
	for i := range startups {
		ids = append(ids, startups[i].FounderID)
	}
	users, err := s.userRepo.FindByIDs(s.db, ids)
	if err != nil {
		return apperrors.InternalError(err)
	}
	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}
	for i := range startups {
		startups[i].Founder = byID[startups[i].FounderID]
	}
	return nil
}
