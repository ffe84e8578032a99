package queries

import (
	"context"
	"encoding/json"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCourierStatsQueryHandler builds courier stats from the couriers and orders tables.
// Responses are cached when a StatsCache is configured; cache errors fall through to
// the database.
type GetCourierStatsQueryHandler struct {
	db     *gorm.DB
	rating services.RatingCalculator
	cache  ports.StatsCache
}

// NewGetCourierStatsQueryHandler creates a handler. cache may be nil.
func NewGetCourierStatsQueryHandler(
	db *gorm.DB,
	rating services.RatingCalculator,
	cache ports.StatsCache,
) GetCourierStatsQueryHandler {
	return GetCourierStatsQueryHandler{db: db, rating: rating, cache: cache}
}

// Handle returns the stats of the queried courier, or errs.ObjectNotFoundError.
func (h GetCourierStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierStatsQuery,
) (*GetCourierStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if cached, ok := h.fromCache(ctx, query.CourierID()); ok {
		return cached, nil
	}

	c, err := h.loadCourier(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}
	completed, err := h.loadCompleted(ctx, query.CourierID())
	if err != nil {
		return nil, err
	}

	response := &GetCourierStatsQueryResponse{
		ID:           c.ID(),
		Type:         c.Type().String(),
		Regions:      c.Regions(),
		WorkingHours: kernel.FormatTimeWindows(c.WorkingHours()),
		Earnings:     c.Earnings(),
	}
	if rating, ok := h.rating.Rating(c, completed); ok {
		response.Rating = &rating
	}

	h.toCache(ctx, response)
	return response, nil
}

func (h GetCourierStatsQueryHandler) loadCourier(ctx context.Context, courierID int) (*courier.Courier, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+courierColumns+`
		FROM couriers
		WHERE id = ?
	`, courierID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("courier", courierID)
	}
	return scanCourier(rows)
}

func (h GetCourierStatsQueryHandler) loadCompleted(ctx context.Context, courierID int) ([]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE assigned_to = ? AND done = true
		ORDER BY complete_time, id
	`, courierID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completed := make([]*order.Order, 0)
	for rows.Next() {
		o, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		completed = append(completed, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return completed, nil
}

func (h GetCourierStatsQueryHandler) fromCache(ctx context.Context, courierID int) (*GetCourierStatsQueryResponse, bool) {
	if h.cache == nil {
		return nil, false
	}
	payload, ok, err := h.cache.Get(ctx, courierID)
	if err != nil || !ok {
		return nil, false
	}

	var response GetCourierStatsQueryResponse
	if err = json.Unmarshal(payload, &response); err != nil {
		return nil, false
	}
	return &response, true
}

func (h GetCourierStatsQueryHandler) toCache(ctx context.Context, response *GetCourierStatsQueryResponse) {
	if h.cache == nil {
		return
	}
	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	_ = h.cache.Set(ctx, response.ID, payload)
}
