// Package memory provides map-backed repository implementations guarded by
// mutexes. They back the service tests and can serve local development runs
// without a database.
package memory

import (
	portsrepo "github.com/Monique-199/BankingApplication/internal/core/ports/repositories"
)

var (
	_ portsrepo.AccountRepository = (*AccountRepository)(nil)
	_ portsrepo.LedgerRepository  = (*LedgerRepository)(nil)
)

// NewRepositoryProvider wires the in-memory repositories together.
func NewRepositoryProvider() *portsrepo.RepositoryProvider {
	accountRepo := NewAccountRepository()
	return &portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		LedgerRepo:  NewLedgerRepository(accountRepo),
	}
}
