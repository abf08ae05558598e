package dto

import (
	"time"

	"novanest_backend/internal/models"
)

// CreateStartupRequest is bound from multipart form fields; the media
// files (logo, pitchDeck, demoVideo) travel alongside as file parts.
type CreateStartupRequest struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Industry    string  `form:"industry"`
	Stage       string  `form:"stage"`
	FundingGoal float64 `form:"fundingGoal"`
}

// UpdateStartupRequest binds from JSON or, when media is re-uploaded,
// from multipart form fields. Zero fields are left unchanged.
type UpdateStartupRequest struct {
	Name        string   `json:"name,omitempty" form:"name"`
	Description string   `json:"description,omitempty" form:"description"`
	Industry    string   `json:"industry,omitempty" form:"industry"`
	Stage       string   `json:"stage,omitempty" form:"stage"`
	FundingGoal *float64 `json:"fundingGoal,omitempty" form:"fundingGoal"`
}

type StartupResponse struct {
	ID          string  `json:"id"`
	FounderID   string  `json:"founderId"`
	FounderName string  `json:"founderName,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Industry    string  `json:"industry"`
	Stage       string  `json:"stage"`
	FundingGoal float64 `json:"fundingGoal"`

	LogoURL      string `json:"logoUrl,omitempty"`
	PitchDeckURL string `json:"pitchDeckUrl,omitempty"`
	DemoVideoURL string `json:"demoVideoUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewStartupResponse(startup *models.Startup) StartupResponse {
	resp := StartupResponse{
		ID:           startup.ID,
		FounderID:    startup.FounderID,
		Name:         startup.Name,
		Description:  startup.Description,
		Industry:     startup.Industry,
		Stage:        startup.Stage,
		FundingGoal:  startup.FundingGoal,
		LogoURL:      startup.LogoURL,
		PitchDeckURL: startup.PitchDeckURL,
		DemoVideoURL: startup.DemoVideoURL,
		CreatedAt:    startup.CreatedAt,
		UpdatedAt:    startup.UpdatedAt,
	}
	if startup.Founder != nil {
		resp.FounderName = startup.Founder.Name
	}
	return resp
}

func NewStartupListResponse(startups []models.Startup) []StartupResponse {
	responses := make([]StartupResponse, 0, len(startups))
	for i := range startups {
		responses = append(responses, NewStartupResponse(&startups[i]))
	}
	return responses
}
