// Package jobs provides scheduled background tasks for the dispatch service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds) and
// log through log/slog with a "component" attribute.
//
// # Available Jobs
//
// AssignmentAuditJob walks every courier and its undone orders and reports region,
// hours and capacity violations. It never changes data; violations are logged at warn level.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(auditHandler, jobs.DefaultAuditSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
