package dto

import (
	"time"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
)

// RegisterRequest defines the data needed to register an office account.
// Accounts start unapproved; the GAD unit flips the gate afterwards.
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	OfficeName string `json:"officeName" binding:"required"`
	// Role is limited to the two self-selectable roles on the registration
	// form. Reviewer and executive roles are provisioned out of band.
	Role domain.Role `json:"role" binding:"omitempty,oneof=User Admin"`
}

// LoginRequest defines the credential payload for local sign-in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SetApprovalRequest toggles an office account's approval gate.
type SetApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// ProfileResponse defines the data returned for an office account.
type ProfileResponse struct {
	ProfileID  string      `json:"profileID"`
	Email      string      `json:"email"`
	OfficeName string      `json:"officeName"`
	Role       domain.Role `json:"role"`
	IsApproved bool        `json:"isApproved"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ListProfilesResponse wraps the account list for the approval console.
type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID:  p.ProfileID,
		Email:      p.Email,
		OfficeName: p.OfficeName,
		Role:       p.Role,
		IsApproved: p.IsApproved,
		CreatedAt:  p.CreatedAt,
	}
}

// ToListProfilesResponse converts a slice of domain.Profile to ListProfilesResponse DTO.
func ToListProfilesResponse(profiles []domain.Profile) ListProfilesResponse {
	responses := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		responses[i] = ToProfileResponse(&profiles[i])
	}
	return ListProfilesResponse{Profiles: responses}
}
