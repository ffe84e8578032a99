package orderrepo

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("order", aggregate.ID(), "order already exists")
		}
		return err
	}

	return nil
}

// Update writes the assignment and completion fields of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"assigned_to":   dto.AssignedTo,
			"assign_time":   dto.AssignTime,
			"complete_time": dto.CompleteTime,
			"done":          dto.Done,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListUnassignedByRegion returns pool orders in any of regions, ordered by id.
func (r *GormOrderRepository) ListUnassignedByRegion(ctx context.Context, regions []int) ([]*order.Order, error) {
	if len(regions) == 0 {
		return []*order.Order{}, nil
	}

	return r.find(r.db.WithContext(ctx).
		Where("assigned_to IS NULL AND done = ? AND region IN ?", false, regions).
		Order("id"))
}

// ConditionalAssign sets assigned_to and assign_time only if the order is still in the pool.
func (r *GormOrderRepository) ConditionalAssign(
	ctx context.Context,
	orderID int,
	courierID int,
	assignTime time.Time,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND assigned_to IS NULL AND done = ?", orderID, false).
		Updates(map[string]any{
			"assigned_to": courierID,
			"assign_time": assignTime,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// ListAssignedUndone returns the undone orders assigned to courierID, ordered by id.
func (r *GormOrderRepository) ListAssignedUndone(ctx context.Context, courierID int) ([]*order.Order, error) {
	return r.find(r.db.WithContext(ctx).
		Where("assigned_to = ? AND done = ?", courierID, false).
		Order("id"))
}

// ListCompleted returns the orders courierID delivered, oldest completion first.
func (r *GormOrderRepository) ListCompleted(ctx context.Context, courierID int) ([]*order.Order, error) {
	return r.find(r.db.WithContext(ctx).
		Where("assigned_to = ? AND done = ?", courierID, true).
		Order("complete_time, id"))
}

func (r *GormOrderRepository) find(query *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
