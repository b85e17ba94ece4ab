package contract

import (
	"context"
	"time"

	"milktrack-be/internal/entity"
	"milktrack-be/internal/repository/specification"
)

// SessionRepository is the narrow store surface the import pipeline consumes:
// a timestamp range query for the duplicate finder and insert operations that
// participate in the surrounding unit of work. FindAll/Count back the
// listing and export endpoints.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	CreateAll(ctx context.Context, sessions []*entity.Session) error
	FindInRange(ctx context.Context, from, to time.Time) ([]*entity.Session, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
