// Package commands contains the write operations of the dispatch service: bulk
// imports, order assignment, completion and courier profile updates.
//
// Every handler validates its command, opens a unit of work, defers Rollback and
// commits only after all repository writes succeed.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Narrow views of ports.UnitOfWork. A handler asks only for the repositories it
// touches, which keeps its test doubles small.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderUoW serves CreateOrders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW serves CreateCouriers.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW serves the handlers that lock a courier and change its orders in the same
	// transaction: AssignOrders, CompleteOrder and UpdateCourierProfile.
	UoW interface {
		TxManager
		CourierRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
