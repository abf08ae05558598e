package models

import (
	"gorm.io/datatypes"
)

type UserRole string

const (
	UserRoleEntrepreneur UserRole = "entrepreneur"
	UserRoleInvestor     UserRole = "investor"
	UserRoleMentor       UserRole = "mentor"
)

type User struct {
	BaseModel
	Name           string         `gorm:"not null" json:"name"`
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string         `gorm:"not null" json:"-"`
	Role           UserRole       `gorm:"type:varchar(20);not null" json:"role"`
	ProfileDetails datatypes.JSON `gorm:"type:jsonb" json:"profileDetails,omitempty"`

	// Notification preference flags
	NotifyMessages       bool `gorm:"default:true" json:"notifyMessages"`
	NotifyStartupViews   bool `gorm:"default:true" json:"notifyStartupViews"`
	NotifyPitchDeckViews bool `gorm:"default:true" json:"notifyPitchDeckViews"`
}

// Typed profile variants stored in User.ProfileDetails. The column is
// schemaless jsonb; the variant matching the user's role is enforced at
// the service layer.

type EntrepreneurProfile struct {
	Company    string `json:"company,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Website    string `json:"website,omitempty"`
	Location   string `json:"location,omitempty"`
	Experience string `json:"experience,omitempty"`
}

type InvestorProfile struct {
	Firm            string   `json:"firm,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	InvestmentFocus []string `json:"investmentFocus,omitempty"`
	MinInvestment   float64  `json:"minInvestment,omitempty"`
	MaxInvestment   float64  `json:"maxInvestment,omitempty"`
	Location        string   `json:"location,omitempty"`
}

type MentorProfile struct {
	Bio             string   `json:"bio,omitempty"`
	Expertise       []string `json:"expertise,omitempty"`
	YearsExperience int      `json:"yearsExperience,omitempty"`
	Availability    string   `json:"availability,omitempty"`
	Location        string   `json:"location,omitempty"`
}

// ValidRole reports whether role is one of the three platform roles.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleEntrepreneur, UserRoleInvestor, UserRoleMentor:
		return true
	}
	return false
}
