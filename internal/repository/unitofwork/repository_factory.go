package unitofwork

import "context"

// RepositoryFactory hands each request its own UnitOfWork. Services depend
// on this instead of gorm so tests can substitute an in-memory store.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
