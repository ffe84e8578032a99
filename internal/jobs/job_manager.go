package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	auditJob *AssignmentAuditJob
}

// NewJobManager creates a job manager. An empty auditSchedule disables the audit job.
func NewJobManager(auditHandler AuditHandler, auditSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if auditSchedule != "" {
		jm.auditJob = NewAssignmentAuditJob(auditHandler, auditSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.auditJob != nil {
		if err := jm.auditJob.Start(); err != nil {
			return fmt.Errorf("failed to start assignment audit job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.auditJob != nil {
		jm.auditJob.Stop()
	}
}
