// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/lib/pq"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Regions and working hours are stored as Postgres arrays.
type CourierDTO struct {
	ID           int            `gorm:"primaryKey;autoIncrement:false"`
	Type         string         `gorm:"type:varchar(8);not null"`
	Regions      pq.Int64Array  `gorm:"type:integer[];not null"`
	WorkingHours pq.StringArray `gorm:"type:text[];not null"`
	Earnings     int64          `gorm:"not null"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(c *courier.Courier) CourierDTO {
	regions := make(pq.Int64Array, 0, len(c.Regions()))
	for _, r := range c.Regions() {
		regions = append(regions, int64(r))
	}

	return CourierDTO{
		ID:           c.ID(),
		Type:         c.Type().String(),
		Regions:      regions,
		WorkingHours: pq.StringArray(kernel.FormatTimeWindows(c.WorkingHours())),
		Earnings:     c.Earnings(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	courierType, err := courier.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	regions := make([]int, 0, len(dto.Regions))
	for _, r := range dto.Regions {
		regions = append(regions, int(r))
	}

	hours, err := kernel.ParseTimeWindows(dto.WorkingHours)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(dto.ID, courierType, regions, hours, dto.Earnings)
}
