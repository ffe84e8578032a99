package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction shared by the courier and order repositories.
// Callers Begin, defer Rollback and Commit on success. Rollback after Commit changes nothing.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// CourierRepository is bound to the transaction opened by Begin. Row locks taken
	// through GetForUpdate last until Commit or Rollback.
	CourierRepository() CourierRepository

	// OrderRepository is bound to the transaction opened by Begin.
	OrderRepository() OrderRepository
}
