package domain

// Role is the access role carried by a profile. It is passed explicitly into
// every lifecycle operation; the engine never reads it from ambient state.
type Role string

const (
	RoleUser    Role = "User"    // department office / planner
	RoleAdmin   Role = "Admin"   // GAD focal person (reviewer)
	RoleGADUnit Role = "GAD_UNIT"
	RoleLCE     Role = "LCE"   // local chief executive
	RoleMayor   Role = "MAYOR" // legacy spelling of the executive role
)

// IsReviewer reports whether the role belongs to the GAD reviewing unit.
func (r Role) IsReviewer() bool {
	return r == RoleAdmin || r == RoleGADUnit
}

// IsExecutive reports whether the role belongs to the local chief executive.
func (r Role) IsExecutive() bool {
	return r == RoleLCE || r == RoleMayor
}

// IsOffice reports whether the role is a plain submitting office.
func (r Role) IsOffice() bool {
	return r == RoleUser
}

// Actor identifies who is performing a lifecycle operation: the authenticated
// profile, its role, and the display label recorded in the history log.
type Actor struct {
	ProfileID string
	Role      Role
	// Label is what the audit trail shows as action_by: the office name for
	// planners, a unit label for reviewers and executives.
	Label string
}
