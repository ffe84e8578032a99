package courierrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{
		db: db,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("courier", aggregate.ID(), "courier already exists")
		}
		return err
	}

	return nil
}

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"type":          dto.Type,
			"regions":       dto.Regions,
			"working_hours": dto.WorkingHours,
			"earnings":      dto.Earnings,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", aggregate.ID())
	}

	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id int) (*courier.Courier, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a courier by ID and holds a row lock until the transaction ends.
func (r *GormCourierRepository) GetForUpdate(ctx context.Context, id int) (*courier.Courier, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetAll retrieves every courier ordered by id.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

func (r *GormCourierRepository) get(db *gorm.DB, id int) (*courier.Courier, error) {
	var dto CourierDTO
	if err := db.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
