package queries

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"gorm.io/gorm"
)

// AuditAssignmentsQueryHandler reads all couriers with their undone orders and runs
// the constraint checker over each of them.
type AuditAssignmentsQueryHandler struct {
	db      *gorm.DB
	checker services.ConstraintChecker
}

// NewAuditAssignmentsQueryHandler creates an audit handler.
func NewAuditAssignmentsQueryHandler(db *gorm.DB, checker services.ConstraintChecker) AuditAssignmentsQueryHandler {
	return AuditAssignmentsQueryHandler{db: db, checker: checker}
}

// Handle runs the audit. Violations are ordered by courier id.
func (h AuditAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query AuditAssignmentsQuery,
) (*AuditAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers, err := h.loadCouriers(ctx)
	if err != nil {
		return nil, err
	}
	carried, err := h.loadCarried(ctx)
	if err != nil {
		return nil, err
	}

	response := &AuditAssignmentsQueryResponse{CouriersChecked: len(couriers)}
	for _, c := range couriers {
		orders := carried[c.ID()]
		response.OrdersChecked += len(orders)
		response.Violations = append(response.Violations, h.checker.Violations(c, orders)...)
	}

	return response, nil
}

func (h AuditAssignmentsQueryHandler) loadCouriers(ctx context.Context) ([]*courier.Courier, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + courierColumns + `
		FROM couriers
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]*courier.Courier, 0)
	for rows.Next() {
		c, scanErr := scanCourier(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		couriers = append(couriers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}

func (h AuditAssignmentsQueryHandler) loadCarried(ctx context.Context) (map[int][]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderColumns + `
		FROM orders
		WHERE assigned_to IS NOT NULL AND done = false
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	carried := make(map[int][]*order.Order)
	for rows.Next() {
		o, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		courierID := *o.Courier()
		carried[courierID] = append(carried[courierID], o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carried, nil
}
