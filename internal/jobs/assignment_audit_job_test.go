package jobs_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuditHandler struct{ mock.Mock }

func (m *MockAuditHandler) Handle(
	ctx context.Context,
	query queries.AuditAssignmentsQuery,
) (*queries.AuditAssignmentsQueryResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(*queries.AuditAssignmentsQueryResponse)
	return resp, args.Error(1)
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestAssignmentAuditJob_Run_LogsViolations(t *testing.T) {
	// Arrange
	handler := &MockAuditHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(&queries.AuditAssignmentsQueryResponse{
		CouriersChecked: 2,
		OrdersChecked:   3,
		Violations: []*errs.ConstraintViolationError{
			errs.NewConstraintViolationError("region", 1, 11, "region 5 is not served"),
		},
	}, nil).Once()
	logger, buf := newBufferLogger()
	job := jobs.NewAssignmentAuditJob(handler, jobs.DefaultAuditSchedule, logger)

	// Act
	job.Run()

	// Assert
	out := buf.String()
	assert.Contains(t, out, "component=assignment_audit_job")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "constraint=region")
	assert.Contains(t, out, "courier_id=1")
	assert.Contains(t, out, "order_id=11")
	assert.Contains(t, out, "violations=1")
	handler.AssertExpectations(t)
}

func TestAssignmentAuditJob_Run_LogsHandlerError(t *testing.T) {
	handler := &MockAuditHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()
	logger, buf := newBufferLogger()
	job := jobs.NewAssignmentAuditJob(handler, jobs.DefaultAuditSchedule, logger)

	job.Run()

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "Assignment audit failed")
}

func TestAssignmentAuditJob_Start_InvalidSchedule(t *testing.T) {
	logger, _ := newBufferLogger()
	job := jobs.NewAssignmentAuditJob(&MockAuditHandler{}, "not a schedule", logger)

	require.Error(t, job.Start())
}

func TestJobManager_StartStop(t *testing.T) {
	logger, buf := newBufferLogger()
	jm := jobs.NewJobManager(&MockAuditHandler{}, jobs.DefaultAuditSchedule, logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Contains(t, buf.String(), "Assignment audit job started")
	assert.Contains(t, buf.String(), "Assignment audit job stopped")
}

func TestJobManager_EmptySchedule_DisablesAudit(t *testing.T) {
	logger, buf := newBufferLogger()
	jm := jobs.NewJobManager(&MockAuditHandler{}, "", logger)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Empty(t, buf.String())
}

func TestJobManager_InvalidSchedule_ReturnsError(t *testing.T) {
	logger, _ := newBufferLogger()
	jm := jobs.NewJobManager(&MockAuditHandler{}, "61 * * * * *", logger)

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start assignment audit job")
}
