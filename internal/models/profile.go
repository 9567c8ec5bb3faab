package models

import (
	"database/sql"
)

// Profile is a profiles row: one office account.
type Profile struct {
	ProfileID  string `db:"profile_id"`
	Email      string `db:"email"`
	OfficeName string `db:"office_name"`
	Role       string `db:"role"`
	IsApproved bool   `db:"is_approved"`

	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	PasswordHash   sql.NullString `db:"password_hash"`

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`

	AuditFields
}
