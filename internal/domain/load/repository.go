package load

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the persistence operations needed for loads
type Repository interface {
	GetByID(ctx context.Context, loadID uuid.UUID) (*Load, error)
	// ListByLoadingDate returns loads whose loading date falls on a day in [from, to]
	ListByLoadingDate(ctx context.Context, from, to time.Time) ([]*Load, error)
	// ModifyActualTimes reads the load under a row lock, lets fn change it and
	// persists the four actual times and the legacy payload in the same
	// transaction. Nothing is written when fn returns false or an error.
	ModifyActualTimes(ctx context.Context, loadID uuid.UUID, fn func(l *Load) (bool, error)) (*Load, error)
	// SnapshotVersion changes whenever any load is created, updated or deleted
	SnapshotVersion(ctx context.Context) (string, error)
}
