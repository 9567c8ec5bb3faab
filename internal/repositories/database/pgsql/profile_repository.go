package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
	"github.com/lgupililla/gad_planning_app/internal/models"
	"github.com/lgupililla/gad_planning_app/internal/utils/mapping"
)

const profileColumns = `
	profile_id, email, office_name, role, is_approved,
	auth_provider, provider_user_id, password_hash,
	refresh_token_hash, refresh_token_expiry_time,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxProfileRepository struct {
	db *pgxpool.Pool
}

func newPgxProfileRepository(db *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{db: db}
}

// Ensure PgxProfileRepository implements portsrepo.ProfileRepositoryFacade
var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func scanProfile(row pgx.Row) (models.Profile, error) {
	var m models.Profile
	err := row.Scan(
		&m.ProfileID, &m.Email, &m.OfficeName, &m.Role, &m.IsApproved,
		&m.AuthProvider, &m.ProviderUserID, &m.PasswordHash,
		&m.RefreshTokenHash, &m.RefreshTokenExpiryTime,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProfileRepository) findProfile(ctx context.Context, query string, args ...any) (*domain.Profile, error) {
	m, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	d := mapping.ToDomainProfile(m)
	return &d, nil
}

func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_id = $1;`
	return r.findProfile(ctx, query, profileID)
}

func (r *PgxProfileRepository) FindProfileByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE lower(email) = lower($1);`
	return r.findProfile(ctx, query, email)
}

func (r *PgxProfileRepository) FindProfileByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE auth_provider = $1 AND provider_user_id = $2;`
	return r.findProfile(ctx, query, string(provider), providerUserID)
}

func (r *PgxProfileRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY office_name ASC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var ms []models.Profile
	for rows.Next() {
		m, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating profile rows: %w", err)
	}
	return mapping.ToDomainProfileSlice(ms), nil
}

func (r *PgxProfileRepository) CountProfiles(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.Exec(ctx, query,
		m.ProfileID, m.Email, m.OfficeName, m.Role, m.IsApproved,
		m.AuthProvider, m.ProviderUserID, m.PasswordHash,
		m.RefreshTokenHash, m.RefreshTokenExpiryTime,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (r *PgxProfileRepository) UpdateApproval(ctx context.Context, profileID string, approved bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE profiles
		SET is_approved = $1, last_updated_at = $2, last_updated_by = $3
		WHERE profile_id = $4;
	`
	tag, err := r.db.Exec(ctx, query, approved, updatedAt, updatedBy, profileID)
	if err != nil {
		return fmt.Errorf("failed to update approval for profile %s: %w", profileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProfileRepository) UpdateRefreshToken(ctx context.Context, profileID string, tokenHash string, expiry *time.Time) error {
	query := `
		UPDATE profiles
		SET refresh_token_hash = NULLIF($1, ''), refresh_token_expiry_time = $2
		WHERE profile_id = $3;
	`
	tag, err := r.db.Exec(ctx, query, tokenHash, expiry, profileID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for profile %s: %w", profileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
