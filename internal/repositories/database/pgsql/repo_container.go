package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProposalRepo: newPgxProposalRepository(dbPool),
		ProfileRepo:  newPgxProfileRepository(dbPool),
	}
}
