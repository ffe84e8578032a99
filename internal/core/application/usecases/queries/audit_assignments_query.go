package queries

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAuditAssignmentsQueryIsNotConstructed = errors.New(
	"AuditAssignmentsQuery must be created via NewAuditAssignmentsQuery constructor",
)

// AuditAssignmentsQuery re-checks region, hours and capacity for every courier's
// undone orders.
type AuditAssignmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewAuditAssignmentsQuery creates the audit query.
func NewAuditAssignmentsQuery() AuditAssignmentsQuery {
	return AuditAssignmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AuditAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrAuditAssignmentsQueryIsNotConstructed)
}

// AuditAssignmentsQueryResponse summarizes one audit run.
type AuditAssignmentsQueryResponse struct {
	CouriersChecked int
	OrdersChecked   int
	Violations      []*errs.ConstraintViolationError
}
