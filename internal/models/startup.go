package models

// MaxStartupsPerFounder caps how many startups one founder may own.
const MaxStartupsPerFounder = 5

type Startup struct {
	BaseModel
	FounderID   string  `gorm:"type:uuid;not null;index" json:"founderId"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Industry    string  `gorm:"index" json:"industry"`
	Stage       string  `json:"stage"`
	FundingGoal float64 `json:"fundingGoal"`

	// Media hosted through the storage backend
	LogoURL      string `json:"logoUrl,omitempty"`
	PitchDeckURL string `json:"pitchDeckUrl,omitempty"`
	DemoVideoURL string `json:"demoVideoUrl,omitempty"`

	Founder *User `gorm:"foreignKey:FounderID" json:"founder,omitempty"`
}
