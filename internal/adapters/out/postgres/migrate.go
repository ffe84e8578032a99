package postgres

import (
	"dispatch/internal/adapters/out/postgres/courierrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the couriers and orders tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&courierrepo.CourierDTO{}, &orderrepo.OrderDTO{})
}
