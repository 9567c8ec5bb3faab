package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lgupililla/gad_planning_app/internal/apperrors"
	"github.com/lgupililla/gad_planning_app/internal/core/domain"
	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
	"github.com/lgupililla/gad_planning_app/internal/models"
	"github.com/lgupililla/gad_planning_app/internal/utils/mapping"
)

const proposalColumns = `
	proposal_id, owner_id, office_name,
	ppa_category, focus_type, category_type,
	issue_statement, data_evidence, issue_source,
	objective, relevant_program, activity_name,
	total_mooe, total_ps, total_co,
	status, sectional_comments, reviewer_comments,
	version, approved_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxProposalRepository struct {
	BaseRepository
}

func newPgxProposalRepository(pool *pgxpool.Pool) portsrepo.ProposalRepositoryFacade {
	return &PgxProposalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProposalRepository implements portsrepo.ProposalRepositoryFacade
var _ portsrepo.ProposalRepositoryFacade = (*PgxProposalRepository)(nil)

func scanProposal(row pgx.Row) (models.Proposal, error) {
	var m models.Proposal
	err := row.Scan(
		&m.ProposalID, &m.OwnerID, &m.OfficeName,
		&m.PPACategory, &m.FocusType, &m.CategoryType,
		&m.IssueStatement, &m.DataEvidence, &m.IssueSource,
		&m.Objective, &m.RelevantProgram, &m.ActivityName,
		&m.TotalMOOE, &m.TotalPS, &m.TotalCO,
		&m.Status, &m.SectionalComments, &m.ReviewerComments,
		&m.Version, &m.ApprovedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func scanProposals(rows pgx.Rows) ([]domain.Proposal, error) {
	defer rows.Close()
	var ms []models.Proposal
	for rows.Next() {
		m, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan proposal row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating proposal rows: %w", err)
	}
	return mapping.ToDomainProposalSlice(ms)
}

func (r *PgxProposalRepository) FindProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM gad_proposals WHERE proposal_id = $1;`
	m, err := scanProposal(r.Pool.QueryRow(ctx, query, proposalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find proposal %s: %w", proposalID, err)
	}
	d, err := mapping.ToDomainProposal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to map proposal %s: %w", proposalID, err)
	}
	return &d, nil
}

func (r *PgxProposalRepository) FindIndicatorsByProposalID(ctx context.Context, proposalID string) ([]domain.Indicator, error) {
	query := `
		SELECT indicator_id, proposal_id, indicator_text, target_text
		FROM ppa_indicators
		WHERE proposal_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query indicators for proposal %s: %w", proposalID, err)
	}
	defer rows.Close()

	var ms []models.Indicator
	for rows.Next() {
		var m models.Indicator
		if err := rows.Scan(&m.IndicatorID, &m.ProposalID, &m.IndicatorText, &m.TargetText); err != nil {
			return nil, fmt.Errorf("failed to scan indicator row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating indicator rows: %w", err)
	}
	return mapping.ToDomainIndicatorSlice(ms), nil
}

func (r *PgxProposalRepository) FindBudgetItemsByProposalID(ctx context.Context, proposalID string) ([]domain.BudgetItem, error) {
	query := `
		SELECT budget_item_id, proposal_id, description, amount, fund_type
		FROM ppa_budget_items
		WHERE proposal_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget items for proposal %s: %w", proposalID, err)
	}
	defer rows.Close()

	var ms []models.BudgetItem
	for rows.Next() {
		var m models.BudgetItem
		if err := rows.Scan(&m.BudgetItemID, &m.ProposalID, &m.Description, &m.Amount, &m.FundType); err != nil {
			return nil, fmt.Errorf("failed to scan budget item row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating budget item rows: %w", err)
	}
	return mapping.ToDomainBudgetItemSlice(ms), nil
}

func (r *PgxProposalRepository) ListProposalsByOwner(ctx context.Context, ownerID string) ([]domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM gad_proposals WHERE owner_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals for owner %s: %w", ownerID, err)
	}
	return scanProposals(rows)
}

func (r *PgxProposalRepository) ListSubmittedProposals(ctx context.Context) ([]domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM gad_proposals WHERE status <> $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, string(domain.StatusDraft))
	if err != nil {
		return nil, fmt.Errorf("failed to query submitted proposals: %w", err)
	}
	return scanProposals(rows)
}

func (r *PgxProposalRepository) ListAllProposals(ctx context.Context) ([]domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM gad_proposals ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	return scanProposals(rows)
}

func (r *PgxProposalRepository) ListProposalsByStatus(ctx context.Context, statuses []domain.ProposalStatus) ([]domain.ProposalRecord, error) {
	var (
		query string
		args  []any
	)
	if len(statuses) == 0 {
		query = `SELECT ` + proposalColumns + ` FROM gad_proposals WHERE status <> $1 ORDER BY office_name ASC, created_at DESC;`
		args = []any{string(domain.StatusDraft)}
	} else {
		statusStrings := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrings[i] = string(s)
		}
		query = `SELECT ` + proposalColumns + ` FROM gad_proposals WHERE status = ANY($1) ORDER BY office_name ASC, created_at DESC;`
		args = []any{statusStrings}
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals by status: %w", err)
	}
	proposals, err := scanProposals(rows)
	if err != nil {
		return nil, err
	}
	if len(proposals) == 0 {
		return []domain.ProposalRecord{}, nil
	}

	ids := make([]string, len(proposals))
	for i := range proposals {
		ids[i] = proposals[i].ProposalID
	}
	indicatorsByProposal, err := r.findIndicatorsByProposalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemsByProposal, err := r.findBudgetItemsByProposalIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	records := make([]domain.ProposalRecord, len(proposals))
	for i := range proposals {
		records[i] = domain.ProposalRecord{
			Proposal:    proposals[i],
			Indicators:  indicatorsByProposal[proposals[i].ProposalID],
			BudgetItems: itemsByProposal[proposals[i].ProposalID],
		}
	}
	return records, nil
}

func (r *PgxProposalRepository) findIndicatorsByProposalIDs(ctx context.Context, proposalIDs []string) (map[string][]domain.Indicator, error) {
	query := `
		SELECT indicator_id, proposal_id, indicator_text, target_text
		FROM ppa_indicators
		WHERE proposal_id = ANY($1)
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, proposalIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query indicators: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Indicator)
	for rows.Next() {
		var m models.Indicator
		if err := rows.Scan(&m.IndicatorID, &m.ProposalID, &m.IndicatorText, &m.TargetText); err != nil {
			return nil, fmt.Errorf("failed to scan indicator row: %w", err)
		}
		out[m.ProposalID] = append(out[m.ProposalID], domain.Indicator{
			IndicatorID:   m.IndicatorID,
			ProposalID:    m.ProposalID,
			IndicatorText: m.IndicatorText,
			TargetText:    m.TargetText,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating indicator rows: %w", err)
	}
	return out, nil
}

func (r *PgxProposalRepository) findBudgetItemsByProposalIDs(ctx context.Context, proposalIDs []string) (map[string][]domain.BudgetItem, error) {
	query := `
		SELECT budget_item_id, proposal_id, description, amount, fund_type
		FROM ppa_budget_items
		WHERE proposal_id = ANY($1)
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, proposalIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.BudgetItem)
	for rows.Next() {
		var m models.BudgetItem
		if err := rows.Scan(&m.BudgetItemID, &m.ProposalID, &m.Description, &m.Amount, &m.FundType); err != nil {
			return nil, fmt.Errorf("failed to scan budget item row: %w", err)
		}
		out[m.ProposalID] = append(out[m.ProposalID], domain.BudgetItem{
			BudgetItemID: m.BudgetItemID,
			ProposalID:   m.ProposalID,
			Description:  m.Description,
			Amount:       m.Amount,
			FundType:     domain.FundType(m.FundType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating budget item rows: %w", err)
	}
	return out, nil
}

func (r *PgxProposalRepository) FindHistoryByProposalID(ctx context.Context, proposalID string) ([]domain.HistoryEntry, error) {
	query := `
		SELECT history_id, proposal_id, action_by, action_type, change_summary, created_at
		FROM ppa_history
		WHERE proposal_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, proposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for proposal %s: %w", proposalID, err)
	}
	defer rows.Close()

	var ms []models.HistoryEntry
	for rows.Next() {
		var m models.HistoryEntry
		if err := rows.Scan(&m.HistoryID, &m.ProposalID, &m.ActionBy, &m.ActionType, &m.ChangeSummary, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating history rows: %w", err)
	}
	return mapping.ToDomainHistorySlice(ms), nil
}

// CreateProposal inserts the proposal, its children and the first history
// entry in a single transaction.
func (r *PgxProposalRepository) CreateProposal(ctx context.Context, proposal domain.Proposal, indicators []domain.Indicator, items []domain.BudgetItem, entry domain.HistoryEntry) error {
	m, err := mapping.ToModelProposal(proposal)
	if err != nil {
		return fmt.Errorf("failed to map proposal for insert: %w", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO gad_proposals (` + proposalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.ProposalID, m.OwnerID, m.OfficeName,
		m.PPACategory, m.FocusType, m.CategoryType,
		m.IssueStatement, m.DataEvidence, m.IssueSource,
		m.Objective, m.RelevantProgram, m.ActivityName,
		m.TotalMOOE, m.TotalPS, m.TotalCO,
		m.Status, m.SectionalComments, m.ReviewerComments,
		m.Version, m.ApprovedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert proposal: %w", err)
	}

	if err := insertChildren(ctx, tx, proposal.ProposalID, indicators, items); err != nil {
		return err
	}
	if err := insertHistory(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateProposal rewrites the proposal body and replaces its children, guarded
// by the caller's read version and expected statuses. The history entry is the
// last write of the transaction.
func (r *PgxProposalRepository) UpdateProposal(ctx context.Context, proposal domain.Proposal, indicators []domain.Indicator, items []domain.BudgetItem, expectedStatus []domain.ProposalStatus, entry domain.HistoryEntry) error {
	m, err := mapping.ToModelProposal(proposal)
	if err != nil {
		return fmt.Errorf("failed to map proposal for update: %w", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE gad_proposals SET
			ppa_category = $1, focus_type = $2, category_type = $3,
			issue_statement = $4, data_evidence = $5, issue_source = $6,
			objective = $7, relevant_program = $8, activity_name = $9,
			total_mooe = $10, total_ps = $11, total_co = $12,
			status = $13, sectional_comments = $14,
			version = version + 1,
			last_updated_at = $15, last_updated_by = $16
		WHERE proposal_id = $17 AND version = $18 AND status = ANY($19);
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.PPACategory, m.FocusType, m.CategoryType,
		m.IssueStatement, m.DataEvidence, m.IssueSource,
		m.Objective, m.RelevantProgram, m.ActivityName,
		m.TotalMOOE, m.TotalPS, m.TotalCO,
		m.Status, m.SectionalComments,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ProposalID, m.Version, statusStrings(expectedStatus),
	)
	if err != nil {
		return fmt.Errorf("failed to update proposal %s: %w", proposal.ProposalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Wrapf(apperrors.ErrConflict, "proposal %s changed since it was read", proposal.ProposalID)
	}

	if err := deleteChildren(ctx, tx, proposal.ProposalID); err != nil {
		return err
	}
	if err := insertChildren(ctx, tx, proposal.ProposalID, indicators, items); err != nil {
		return err
	}
	if err := insertHistory(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateReview applies a review decision: status, sectional comments and the
// approval timestamp, with the same version and status preconditions as
// UpdateProposal. Children are left untouched.
func (r *PgxProposalRepository) UpdateReview(ctx context.Context, proposal domain.Proposal, expectedStatus []domain.ProposalStatus, entry domain.HistoryEntry) error {
	m, err := mapping.ToModelProposal(proposal)
	if err != nil {
		return fmt.Errorf("failed to map proposal for review update: %w", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE gad_proposals SET
			status = $1, sectional_comments = $2, approved_at = $3,
			issue_statement = $4, data_evidence = $5, issue_source = $6,
			objective = $7, relevant_program = $8, activity_name = $9,
			version = version + 1,
			last_updated_at = $10, last_updated_by = $11
		WHERE proposal_id = $12 AND version = $13 AND status = ANY($14);
	`
	tag, err := tx.Exec(ctx, updateQuery,
		m.Status, m.SectionalComments, m.ApprovedAt,
		m.IssueStatement, m.DataEvidence, m.IssueSource,
		m.Objective, m.RelevantProgram, m.ActivityName,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ProposalID, m.Version, statusStrings(expectedStatus),
	)
	if err != nil {
		return fmt.Errorf("failed to record review for proposal %s: %w", proposal.ProposalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Wrapf(apperrors.ErrConflict, "proposal %s changed since it was read", proposal.ProposalID)
	}

	if err := insertHistory(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateExecutiveRemark saves the freeform remark without touching status,
// children or the version counter.
func (r *PgxProposalRepository) UpdateExecutiveRemark(ctx context.Context, proposal domain.Proposal, entry domain.HistoryEntry) error {
	m, err := mapping.ToModelProposal(proposal)
	if err != nil {
		return fmt.Errorf("failed to map proposal for remark update: %w", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE gad_proposals SET
			reviewer_comments = $1, last_updated_at = $2, last_updated_by = $3
		WHERE proposal_id = $4;
	`
	tag, err := tx.Exec(ctx, updateQuery, m.ReviewerComments, m.LastUpdatedAt, m.LastUpdatedBy, m.ProposalID)
	if err != nil {
		return fmt.Errorf("failed to save remark for proposal %s: %w", proposal.ProposalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := insertHistory(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func statusStrings(statuses []domain.ProposalStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func deleteChildren(ctx context.Context, tx pgx.Tx, proposalID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM ppa_indicators WHERE proposal_id = $1;`, proposalID); err != nil {
		return fmt.Errorf("failed to clear indicators for proposal %s: %w", proposalID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM ppa_budget_items WHERE proposal_id = $1;`, proposalID); err != nil {
		return fmt.Errorf("failed to clear budget items for proposal %s: %w", proposalID, err)
	}
	return nil
}

func insertChildren(ctx context.Context, tx pgx.Tx, proposalID string, indicators []domain.Indicator, items []domain.BudgetItem) error {
	for _, ind := range indicators {
		m := mapping.ToModelIndicator(ind)
		_, err := tx.Exec(ctx,
			`INSERT INTO ppa_indicators (indicator_id, proposal_id, indicator_text, target_text) VALUES ($1, $2, $3, $4);`,
			m.IndicatorID, proposalID, m.IndicatorText, m.TargetText,
		)
		if err != nil {
			return fmt.Errorf("failed to insert indicator for proposal %s: %w", proposalID, err)
		}
	}
	for _, item := range items {
		m := mapping.ToModelBudgetItem(item)
		_, err := tx.Exec(ctx,
			`INSERT INTO ppa_budget_items (budget_item_id, proposal_id, description, amount, fund_type) VALUES ($1, $2, $3, $4, $5);`,
			m.BudgetItemID, proposalID, m.Description, m.Amount, m.FundType,
		)
		if err != nil {
			return fmt.Errorf("failed to insert budget item for proposal %s: %w", proposalID, err)
		}
	}
	return nil
}

func insertHistory(ctx context.Context, tx pgx.Tx, entry domain.HistoryEntry) error {
	m := mapping.ToModelHistoryEntry(entry)
	_, err := tx.Exec(ctx,
		`INSERT INTO ppa_history (history_id, proposal_id, action_by, action_type, change_summary, created_at) VALUES ($1, $2, $3, $4, $5, $6);`,
		m.HistoryID, m.ProposalID, m.ActionBy, m.ActionType, m.ChangeSummary, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append history for proposal %s: %w", entry.ProposalID, err)
	}
	return nil
}
