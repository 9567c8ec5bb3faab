package services

import (
	portsrepo "github.com/lgupililla/gad_planning_app/internal/core/ports/repositories"
	portssvc "github.com/lgupililla/gad_planning_app/internal/core/ports/services"
	"github.com/lgupililla/gad_planning_app/internal/platform/config"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Proposal = NewProposalService(repos.ProposalRepo)
	container.Profile = NewProfileService(repos.ProfileRepo)
	container.Reporting = NewReportingService(repos.ProposalRepo, repos.ProfileRepo)
	container.Export = NewExportService(repos.ProposalRepo)
	container.Token = NewTokenService(cfg, repos.ProfileRepo)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
