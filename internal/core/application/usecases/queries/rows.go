package queries

import (
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/lib/pq"
)

const (
	courierColumns = `id, type, regions, working_hours, earnings`
	orderColumns   = `id, weight, region, delivery_hours, assigned_to, assign_time, complete_time, done`
)

func scanCourier(rows *sql.Rows) (*courier.Courier, error) {
	var (
		id           int
		courierType  string
		regions      []int64
		workingHours []string
		earnings     int64
	)
	if err := rows.Scan(&id, &courierType, pq.Array(&regions), pq.Array(&workingHours), &earnings); err != nil {
		return nil, err
	}

	t, err := courier.ParseType(courierType)
	if err != nil {
		return nil, err
	}
	windows, err := kernel.ParseTimeWindows(workingHours)
	if err != nil {
		return nil, err
	}
	ints := make([]int, len(regions))
	for i, r := range regions {
		ints[i] = int(r)
	}

	return courier.RestoreCourier(id, t, ints, windows, earnings)
}

func scanOrder(rows *sql.Rows) (*order.Order, error) {
	var (
		id           int
		weight       int64
		region       int
		hours        []string
		assignedTo   sql.NullInt64
		assignTime   sql.NullTime
		completeTime sql.NullTime
		done         bool
	)
	if err := rows.Scan(&id, &weight, &region, pq.Array(&hours),
		&assignedTo, &assignTime, &completeTime, &done); err != nil {
		return nil, err
	}

	windows, err := kernel.ParseTimeWindows(hours)
	if err != nil {
		return nil, err
	}

	var courierID *int
	if assignedTo.Valid {
		v := int(assignedTo.Int64)
		courierID = &v
	}

	return order.RestoreOrder(id, kernel.Weight(weight), region, windows,
		courierID, utcOrNil(assignTime), utcOrNil(completeTime), done)
}

func utcOrNil(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}
