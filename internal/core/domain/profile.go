package domain

import "time"

// AuthProvider identifies how a profile authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// Profile is an office account. Offices register themselves and remain gated
// (IsApproved=false) until the GAD focal person approves the account; reviewer
// and executive roles bypass the gate.
type Profile struct {
	ProfileID  string `json:"profileID"`
	Email      string `json:"email"`
	OfficeName string `json:"officeName"`
	Role       Role   `json:"role"`
	IsApproved bool   `json:"isApproved"`

	AuthProvider   AuthProvider `json:"-"`
	ProviderUserID string       `json:"-"`
	PasswordHash   string       `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
}

// Actor builds the lifecycle actor for this profile, with the history label the
// audit trail should show.
func (p *Profile) Actor() Actor {
	label := p.OfficeName
	switch {
	case p.Role.IsReviewer():
		label = "GAD UNIT AUDITOR"
	case p.Role.IsExecutive():
		label = "OFFICE OF THE MAYOR"
	}
	return Actor{ProfileID: p.ProfileID, Role: p.Role, Label: label}
}
