package services

import (
	portsrepo "github.com/SscSPs/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Statement = NewStatementService(repos.TransactionRepo)
	container.Analytics = NewAnalyticsService(repos.TransactionRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.StatementSvcFacade   = (*statementService)(nil)
	_ portssvc.AnalyticsSvcFacade   = (*analyticsService)(nil)
)
