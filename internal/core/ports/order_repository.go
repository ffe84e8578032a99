package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. An existing id is reported as errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the assignment and completion fields of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. A missing order is errs.ObjectNotFoundError.
	Get(ctx context.Context, id int) (*order.Order, error)

	// ListUnassignedByRegion returns pool orders whose region is one of regions.
	ListUnassignedByRegion(ctx context.Context, regions []int) ([]*order.Order, error)

	// ConditionalAssign links the order to courierID only while it is still
	// unassigned and undone. It reports false when another writer got there first.
	ConditionalAssign(ctx context.Context, orderID int, courierID int, assignTime time.Time) (bool, error)

	// ListAssignedUndone returns the orders a courier currently carries.
	ListAssignedUndone(ctx context.Context, courierID int) ([]*order.Order, error)

	// ListCompleted returns the orders a courier has delivered.
	ListCompleted(ctx context.Context, courierID int) ([]*order.Order, error)
}
