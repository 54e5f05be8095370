package repositories

// RepositoryProvider bundles the repository implementations the composing
// process wires together, so services never reach for global state.
type RepositoryProvider struct {
	AccountRepo AccountRepository
	LedgerRepo  LedgerRepository
}
