// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Weight is stored in hundredths of a kilogram. The pool is every row with a NULL
// assigned_to and done = false.
type OrderDTO struct {
	ID            int            `gorm:"primaryKey;autoIncrement:false"`
	Weight        int64          `gorm:"not null"`
	Region        int            `gorm:"not null;index"`
	DeliveryHours pq.StringArray `gorm:"type:text[];not null"`
	AssignedTo    *int           `gorm:"index"`
	AssignTime    *time.Time
	CompleteTime  *time.Time
	Done          bool `gorm:"not null;default:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID(),
		Weight:        int64(o.Weight()),
		Region:        o.Region(),
		DeliveryHours: pq.StringArray(kernel.FormatTimeWindows(o.DeliveryWindows())),
		AssignedTo:    o.Courier(),
		AssignTime:    o.AssignTime(),
		CompleteTime:  o.CompleteTime(),
		Done:          o.IsDone(),
	}
}

// toDomain converts a database DTO to an order domain aggregate. Timestamps are
// normalized to UTC.
func toDomain(dto OrderDTO) (*order.Order, error) {
	windows, err := kernel.ParseTimeWindows(dto.DeliveryHours)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		kernel.Weight(dto.Weight),
		dto.Region,
		windows,
		dto.AssignedTo,
		utc(dto.AssignTime),
		utc(dto.CompleteTime),
		dto.Done,
	)
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
