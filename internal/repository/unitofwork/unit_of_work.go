package unitofwork

import (
	"context"

	"milktrack-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one transactional boundary. The
// import coordinator runs its whole duplicate-scan-then-insert loop inside a
// single Begin/Commit pair so the batch lands atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
}
