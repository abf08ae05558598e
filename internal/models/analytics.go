package models

// StartupAnalytics exists one-to-one with a startup, created lazily on the
// first recorded event.
type StartupAnalytics struct {
	BaseModel
	StartupID string `gorm:"type:uuid;not null;uniqueIndex" json:"startupId"`

	Events []AnalyticsEvent `gorm:"foreignKey:AnalyticsID" json:"events,omitempty"`
}

// Event kinds — the three append-only logs.
const (
	EventKindView          = "view"
	EventKindPitchDeckView = "pitchdeck_view"
	EventKindMessage       = "message"
)

// AnalyticsEvent is append-only: {actor, timestamp} entries are never
// mutated, only aggregated.
type AnalyticsEvent struct {
	BaseModel
	AnalyticsID string `gorm:"type:uuid;not null;index" json:"analyticsId"`
	Kind        string `gorm:"type:varchar(20);not null;index" json:"kind"`
	ActorID     string `gorm:"type:uuid;not null" json:"actorId"`
}
