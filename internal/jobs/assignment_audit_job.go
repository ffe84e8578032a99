package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultAuditSchedule runs the audit every five minutes (cron with seconds).
const DefaultAuditSchedule = "0 */5 * * * *"

// AuditHandler runs one assignment audit.
type AuditHandler interface {
	Handle(ctx context.Context, query queries.AuditAssignmentsQuery) (*queries.AuditAssignmentsQueryResponse, error)
}

// AssignmentAuditJob periodically re-checks every courier's carried orders against
// region, hours and capacity and logs what it finds.
type AssignmentAuditJob struct {
	handler  AuditHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAssignmentAuditJob creates an audit job for a cron schedule with seconds.
func NewAssignmentAuditJob(handler AuditHandler, schedule string, logger *slog.Logger) *AssignmentAuditJob {
	return &AssignmentAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "assignment_audit_job"),
	}
}

// Start registers the audit on its schedule and starts the scheduler.
func (j *AssignmentAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment audit job started", "schedule", j.schedule)
	return nil
}

// Run executes a single audit.
func (j *AssignmentAuditJob) Run() {
	ctx := context.Background()

	result, err := j.handler.Handle(ctx, queries.NewAuditAssignmentsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Assignment audit failed", "error", err)
		return
	}

	for _, v := range result.Violations {
		j.logger.WarnContext(ctx, "Assignment constraint violated",
			"constraint", v.Constraint,
			"courier_id", v.CourierID,
			"order_id", v.OrderID,
			"detail", v.Detail,
		)
	}

	j.logger.InfoContext(ctx, "Assignment audit finished",
		"couriers", result.CouriersChecked,
		"orders", result.OrdersChecked,
		"violations", len(result.Violations),
	)
}

// Stop stops the scheduler and waits for a running audit to return.
func (j *AssignmentAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Assignment audit job stopped")
}
