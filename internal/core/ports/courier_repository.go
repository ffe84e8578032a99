// Package ports defines the contracts between the application layer and its adapters:
// repositories, the unit of work, the clock and the stats cache.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier. An existing id is reported as errs.ConflictError.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by id. A missing courier is errs.ObjectNotFoundError.
	Get(ctx context.Context, id int) (*courier.Courier, error)

	// GetForUpdate retrieves a courier and locks its row until the surrounding
	// transaction ends. All operations that change a courier's load take this lock.
	GetForUpdate(ctx context.Context, id int) (*courier.Courier, error)

	// GetAll retrieves every courier ordered by id.
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}
