package mapping

import (
	"database/sql"
	"time"

	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	"github.com/lgupililla/gad_planning_app/internal/models"
)

// ToModelProfile converts a domain Profile to a model Profile.
func ToModelProfile(d domain.Profile) models.Profile {
	var expiry sql.NullTime
	if d.RefreshTokenExpiryTime != nil {
		expiry = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return models.Profile{
		ProfileID:              d.ProfileID,
		Email:                  d.Email,
		OfficeName:             d.OfficeName,
		Role:                   string(d.Role),
		IsApproved:             d.IsApproved,
		AuthProvider:           string(d.AuthProvider),
		ProviderUserID:         sql.NullString{String: d.ProviderUserID, Valid: d.ProviderUserID != ""},
		PasswordHash:           sql.NullString{String: d.PasswordHash, Valid: d.PasswordHash != ""},
		RefreshTokenHash:       sql.NullString{String: d.RefreshTokenHash, Valid: d.RefreshTokenHash != ""},
		RefreshTokenExpiryTime: expiry,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProfile converts a model Profile to a domain Profile.
func ToDomainProfile(m models.Profile) domain.Profile {
	var expiry *time.Time
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		expiry = &t
	}
	return domain.Profile{
		ProfileID:              m.ProfileID,
		Email:                  m.Email,
		OfficeName:             m.OfficeName,
		Role:                   domain.Role(m.Role),
		IsApproved:             m.IsApproved,
		AuthProvider:           domain.AuthProvider(m.AuthProvider),
		ProviderUserID:         m.ProviderUserID.String,
		PasswordHash:           m.PasswordHash.String,
		RefreshTokenHash:       m.RefreshTokenHash.String,
		RefreshTokenExpiryTime: expiry,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProfileSlice converts a slice of model Profiles to domain Profiles.
func ToDomainProfileSlice(ms []models.Profile) []domain.Profile {
	ds := make([]domain.Profile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfile(m)
	}
	return ds
}
