package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"rollcall/internal/domain/entity"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/domain/repository"
	mockRepo "rollcall/internal/mocks/repository"
	mockUsecase "rollcall/internal/mocks/usecase"
	"rollcall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type batchTestDeps struct {
	dispatcher    *mockUsecase.MockDispatchUsecase
	recipientRepo *mockRepo.MockRecipientRepository
	recordRepo    *mockRepo.MockDeliveryRecordRepository
	reportRepo    *mockRepo.MockBatchReportRepository
}

func createTestBatchCoordinator(t *testing.T, workers int) (usecase.BatchUsecase, *batchTestDeps) {
	deps := &batchTestDeps{
		dispatcher:    mockUsecase.NewMockDispatchUsecase(t),
		recipientRepo: mockRepo.NewMockRecipientRepository(t),
		recordRepo:    mockRepo.NewMockDeliveryRecordRepository(t),
		reportRepo:    mockRepo.NewMockBatchReportRepository(t),
	}

	cfg := newTestConfig()
	cfg.Dispatch.Workers = workers

	coordinator := NewBatchCoordinator(BatchCoordinatorParams{
		Config:        cfg,
		Dispatcher:    deps.dispatcher,
		RecipientRepo: deps.recipientRepo,
		RecordRepo:    deps.recordRepo,
		ReportRepo:    deps.reportRepo,
		Logger:        newTestLogger(),
	})

	return coordinator, deps
}

func createTestRecord(recipient *entity.Recipient, outcome entity.DeliveryOutcome, detail string) *entity.DeliveryRecord {
	reason := entity.ReasonDelivered
	if outcome == entity.OutcomeFailed {
		reason = entity.ReasonRoutesExhausted
	}

	return &entity.DeliveryRecord{
		ID:            uuid.New(),
		RecipientID:   recipient.ID,
		RecipientName: recipient.DisplayName,
		Kind:          entity.AlertKindFor(recipient.AttendanceState),
		Timestamp:     time.Now(),
		Outcome:       outcome,
		Reason:        reason,
		Detail:        detail,
	}
}

// sendByAddress succeeds for recipients with a device address and fails the rest.
func sendByAddress(_ context.Context, _ *entity.Transport, recipient *entity.Recipient) *entity.DeliveryRecord {
	if recipient.DeviceAddress == "" {
		return createTestRecord(recipient, entity.OutcomeFailed, "no device address registered")
	}

	return createTestRecord(recipient, entity.OutcomeSent, "delivered")
}

func legacyTransportFor(t *testing.T, deps *batchTestDeps) *entity.Transport {
	t.Helper()
	transport := createLegacyTransport()
	deps.dispatcher.EXPECT().ResolveTransport(mock.Anything).Return(transport, nil).Once()

	return transport
}

func TestBatchCoordinator_RunBatch_MarksOnlySent(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)
	transport := legacyTransportFor(t, deps)

	recipients := []*entity.Recipient{
		createTestRecipient("S1", entity.AttendanceAbsent, validToken),
		createTestRecipient("S2", entity.AttendanceLate, ""),
		createTestRecipient("S3", entity.AttendanceAbsent, validToken),
		createTestRecipient("S4", entity.AttendanceLate, ""),
	}

	deps.dispatcher.EXPECT().Send(mock.Anything, transport, mock.Anything).RunAndReturn(sendByAddress).Times(4)
	deps.recipientRepo.EXPECT().MarkNotified(mock.Anything, "S1").Return(nil).Once()
	deps.recipientRepo.EXPECT().MarkNotified(mock.Anything, "S3").Return(nil).Once()
	deps.recordRepo.EXPECT().AppendRecords(mock.Anything, mock.MatchedBy(func(records []*entity.DeliveryRecord) bool {
		return len(records) == 4
	})).Return(nil).Once()
	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report := coordinator.RunBatch(context.Background(), "batch-1", recipients)

	assert.Equal(t, "batch-1", report.ID)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 2, report.Failed)
	assert.Zero(t, report.Pending)
	assert.False(t, report.Cancelled)
	assert.Equal(t, []string{"no device address registered"}, report.FailureReasons)
	require.Len(t, report.Records, 4)
	for i, record := range report.Records {
		assert.Equal(t, recipients[i].ID, record.RecipientID)
		assert.Equal(t, "batch-1", record.BatchID)
	}
}

func TestBatchCoordinator_RunBatch_GeneratesBatchID(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)
	transport := legacyTransportFor(t, deps)
	recipient := createTestRecipient("S1", entity.AttendanceAbsent, "")

	deps.dispatcher.EXPECT().Send(mock.Anything, transport, recipient).RunAndReturn(sendByAddress).Once()
	deps.recordRepo.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil).Once()
	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report := coordinator.RunBatch(context.Background(), "", []*entity.Recipient{recipient})

	_, err := uuid.Parse(report.ID)
	assert.NoError(t, err)
	assert.Equal(t, report.ID, report.Records[0].BatchID)
}

func TestBatchCoordinator_RunBatch_CredentialUnavailable(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)
	recipients := []*entity.Recipient{
		createTestRecipient("S1", entity.AttendanceAbsent, validToken),
		createTestRecipient("S2", entity.AttendanceLate, validToken),
	}

	deps.dispatcher.EXPECT().ResolveTransport(mock.Anything).Return(nil, errors.New("token source failed")).Once()
	deps.recordRepo.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil).Once()
	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report := coordinator.RunBatch(context.Background(), "batch-2", recipients)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, []string{"push credential unavailable"}, report.FailureReasons)
	for _, record := range report.Records {
		assert.Equal(t, entity.ReasonCredentialUnavailable, record.Reason)
		assert.Equal(t, "batch-2", record.BatchID)
	}
	deps.dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	deps.recipientRepo.AssertNotCalled(t, "MarkNotified", mock.Anything, mock.Anything)
}

func TestBatchCoordinator_RunBatch_CancelledBeforeStart(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)
	legacyTransportFor(t, deps)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report := coordinator.RunBatch(ctx, "batch-3", []*entity.Recipient{
		createTestRecipient("S1", entity.AttendanceAbsent, validToken),
		createTestRecipient("S2", entity.AttendanceAbsent, validToken),
	})

	assert.True(t, report.Cancelled)
	assert.Equal(t, 2, report.Pending)
	assert.Zero(t, report.Total)
	deps.recordRepo.AssertNotCalled(t, "AppendRecords", mock.Anything, mock.Anything)
}

func TestBatchCoordinator_RunBatch_CancelledMidBatch(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)
	transport := legacyTransportFor(t, deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := createTestRecipient("S1", entity.AttendanceAbsent, validToken)
	deps.dispatcher.EXPECT().Send(mock.Anything, transport, first).
		RunAndReturn(func(ctx context.Context, tr *entity.Transport, r *entity.Recipient) *entity.DeliveryRecord {
			cancel()

			return sendByAddress(ctx, tr, r)
		}).Once()
	deps.recipientRepo.EXPECT().MarkNotified(mock.Anything, "S1").
		Run(func(markCtx context.Context, _ string) {
			assert.NoError(t, markCtx.Err())
		}).
		Return(nil).Once()
	deps.recordRepo.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil).Once()
	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report := coordinator.RunBatch(ctx, "batch-4", []*entity.Recipient{
		first,
		createTestRecipient("S2", entity.AttendanceAbsent, validToken),
		createTestRecipient("S3", entity.AttendanceAbsent, validToken),
	})

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 2, report.Pending)
	assert.True(t, report.Cancelled)
}

func TestBatchCoordinator_RunBatch_Concurrent(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 3)
	transport := legacyTransportFor(t, deps)

	recipients := make([]*entity.Recipient, 0, 10)
	for i := range 10 {
		address := validToken
		if i%3 == 0 {
			address = ""
		}
		recipients = append(recipients, createTestRecipient(string(rune('A'+i)), entity.AttendanceAbsent, address))
	}

	var inFlight, maxInFlight atomic.Int32
	deps.dispatcher.EXPECT().Send(mock.Anything, transport, mock.Anything).
		RunAndReturn(func(ctx context.Context, tr *entity.Transport, r *entity.Recipient) *entity.DeliveryRecord {
			current := inFlight.Add(1)
			for {
				seen := maxInFlight.Load()
				if current <= seen || maxInFlight.CompareAndSwap(seen, current) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			return sendByAddress(ctx, tr, r)
		}).Times(10)
	deps.recipientRepo.EXPECT().MarkNotified(mock.Anything, mock.Anything).Return(nil).Times(6)
	deps.recordRepo.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil).Once()
	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report := coordinator.RunBatch(context.Background(), "batch-5", recipients)

	assert.Equal(t, 10, report.Total)
	assert.Equal(t, 6, report.Sent)
	assert.Equal(t, 4, report.Failed)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(3))
	for i, record := range report.Records {
		assert.Equal(t, recipients[i].ID, record.RecipientID)
	}
}

func TestBatchCoordinator_RunBatch_CancelledWhileWaitingForWorker(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 2)
	transport := legacyTransportFor(t, deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recipients := make([]*entity.Recipient, 0, 5)
	for _, id := range []string{"S1", "S2", "S3", "S4", "S5"} {
		recipients = append(recipients, createTestRecipient(id, entity.AttendanceAbsent, validToken))
	}

	deps.dispatcher.EXPECT().Send(mock.Anything, transport, recipients[0]).
		RunAndReturn(func(ctx context.Context, tr *entity.Transport, r *entity.Recipient) *entity.DeliveryRecord {
			cancel()

			return sendByAddress(ctx, tr, r)
		}).Once()
	// Holds the second worker until the batch is cancelled, so every later
	// recipient has to wait for a free worker.
	deps.dispatcher.EXPECT().Send(mock.Anything, transport, recipients[1]).
		RunAndReturn(func(ctx context.Context, tr *entity.Transport, r *entity.Recipient) *entity.DeliveryRecord {
			<-ctx.Done()

			return sendByAddress(ctx, tr, r)
		}).Once()
	deps.recipientRepo.EXPECT().MarkNotified(mock.Anything, "S1").Return(nil).Once()
	deps.recipientRepo.EXPECT().MarkNotified(mock.Anything, "S2").Return(nil).Once()
	deps.recordRepo.EXPECT().AppendRecords(mock.Anything, mock.MatchedBy(func(records []*entity.DeliveryRecord) bool {
		return len(records) == 2
	})).Return(nil).Once()
	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report := coordinator.RunBatch(ctx, "batch-6", recipients)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 3, report.Pending)
	assert.True(t, report.Cancelled)
}

func TestBatchCoordinator_RunBatch_AlreadyNotifiedGetsNoSecondAlert(t *testing.T) {
	engine, gateway, credentials := createTestDispatchEngine(t)
	recipientRepo := mockRepo.NewMockRecipientRepository(t)
	recordRepo := mockRepo.NewMockDeliveryRecordRepository(t)
	reportRepo := mockRepo.NewMockBatchReportRepository(t)

	coordinator := NewBatchCoordinator(BatchCoordinatorParams{
		Config:        newTestConfig(),
		Dispatcher:    engine,
		RecipientRepo: recipientRepo,
		RecordRepo:    recordRepo,
		ReportRepo:    reportRepo,
		Logger:        newTestLogger(),
	})

	notified := createTestRecipient("S1", entity.AttendanceAbsent, validToken)
	notified.AlreadyNotifiedToday = true

	credentials.EXPECT().Credential(mock.Anything).Return("legacy-server-key", "", nil).Once()
	recordRepo.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil).Once()
	reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report := coordinator.RunBatch(context.Background(), "batch-7", []*entity.Recipient{notified})

	require.Len(t, report.Records, 1)
	assert.Equal(t, entity.OutcomeFailed, report.Records[0].Outcome)
	assert.Equal(t, entity.ReasonNotEligible, report.Records[0].Reason)
	assert.Zero(t, report.Sent)
	gateway.AssertNotCalled(t, "Attempt", mock.Anything, mock.Anything)
	recipientRepo.AssertNotCalled(t, "MarkNotified", mock.Anything, mock.Anything)
}

func TestBatchCoordinator_RunBatch_MarkNotifiedFailureIsNotFatal(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)
	transport := legacyTransportFor(t, deps)
	recipient := createTestRecipient("S1", entity.AttendanceAbsent, validToken)

	deps.dispatcher.EXPECT().Send(mock.Anything, transport, recipient).RunAndReturn(sendByAddress).Once()
	deps.recipientRepo.EXPECT().MarkNotified(mock.Anything, "S1").Return(errors.New("roster offline")).Once()
	deps.recordRepo.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(errors.New("log offline")).Once()
	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report := coordinator.RunBatch(context.Background(), "batch-6", []*entity.Recipient{recipient})

	assert.Equal(t, 1, report.Sent)
}

func TestBatchCoordinator_DispatchRecipients(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)
	transport := legacyTransportFor(t, deps)

	eligible := createTestRecipient("S1", entity.AttendanceAbsent, validToken)
	present := createTestRecipient("S2", entity.AttendancePresent, validToken)
	notified := createTestRecipient("S3", entity.AttendanceLate, validToken)
	notified.AlreadyNotifiedToday = true
	late := createTestRecipient("S5", entity.AttendanceLate, validToken)

	deps.recipientRepo.EXPECT().
		FindRecipientsByIDs(mock.Anything, []string{"S5", "S1", "S2", "S3", "S4"}).
		Return([]*entity.Recipient{eligible, present, notified, late}, nil).Once()
	deps.dispatcher.EXPECT().Send(mock.Anything, transport, late).RunAndReturn(sendByAddress).Once()
	deps.dispatcher.EXPECT().Send(mock.Anything, transport, eligible).RunAndReturn(sendByAddress).Once()
	deps.recipientRepo.EXPECT().MarkNotified(mock.Anything, mock.Anything).Return(nil).Times(2)
	deps.recordRepo.EXPECT().AppendRecords(mock.Anything, mock.Anything).Return(nil).Once()
	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.MatchedBy(func(report *entity.BatchReport) bool {
		return len(report.Skipped) == 3
	})).Return(nil).Once()

	report, err := coordinator.DispatchRecipients(context.Background(), &usecase.BatchRequest{
		BatchID:      "batch-7",
		RecipientIDs: []string{"S5", "S1", "S2", "S1", "S3", "S4", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, []string{"S2", "S3", "S4"}, report.Skipped)
	require.Len(t, report.Records, 2)
	assert.Equal(t, "S5", report.Records[0].RecipientID)
	assert.Equal(t, "S1", report.Records[1].RecipientID)
}

func TestBatchCoordinator_DispatchRecipients_Errors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		coordinator, _ := createTestBatchCoordinator(t, 1)

		_, err := coordinator.DispatchRecipients(context.Background(), &usecase.BatchRequest{})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyBatch)

		_, err = coordinator.DispatchRecipients(context.Background(), &usecase.BatchRequest{RecipientIDs: []string{""}})
		assert.ErrorIs(t, err, domainerrors.ErrEmptyBatch)
	})

	t.Run("roster unavailable", func(t *testing.T) {
		coordinator, deps := createTestBatchCoordinator(t, 1)
		deps.recipientRepo.EXPECT().FindRecipientsByIDs(mock.Anything, []string{"S1"}).Return(nil, errors.New("connection refused")).Once()

		_, err := coordinator.DispatchRecipients(context.Background(), &usecase.BatchRequest{RecipientIDs: []string{"S1"}})
		assert.ErrorIs(t, err, domainerrors.ErrRosterUnavailable)
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestBatchCoordinator_DispatchRecipients_NothingEligible(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)

	deps.recipientRepo.EXPECT().FindRecipientsByIDs(mock.Anything, []string{"S1"}).
		Return([]*entity.Recipient{createTestRecipient("S1", entity.AttendancePresent, validToken)}, nil).Once()
	deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

	report, err := coordinator.DispatchRecipients(context.Background(), &usecase.BatchRequest{RecipientIDs: []string{"S1"}})
	require.NoError(t, err)

	assert.Zero(t, report.Total)
	assert.Equal(t, []string{"S1"}, report.Skipped)
	deps.dispatcher.AssertNotCalled(t, "ResolveTransport", mock.Anything)
}

func TestBatchCoordinator_GetReport(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		coordinator, deps := createTestBatchCoordinator(t, 1)
		cached := &entity.BatchReport{ID: "batch-8", Total: 3}
		deps.reportRepo.EXPECT().FindReport(mock.Anything, "batch-8").Return(cached, nil).Once()

		report, err := coordinator.GetReport(context.Background(), "batch-8")
		require.NoError(t, err)
		assert.Same(t, cached, report)
	})

	t.Run("rebuilt from delivery log", func(t *testing.T) {
		coordinator, deps := createTestBatchCoordinator(t, 1)
		recipient := createTestRecipient("S1", entity.AttendanceAbsent, validToken)
		records := []*entity.DeliveryRecord{
			createTestRecord(recipient, entity.OutcomeSent, "delivered"),
			createTestRecord(recipient, entity.OutcomeFailed, "all routes exhausted"),
		}

		deps.reportRepo.EXPECT().FindReport(mock.Anything, "batch-9").Return(nil, repository.ErrReportNotFound).Once()
		deps.recordRepo.EXPECT().FindRecordsByBatch(mock.Anything, "batch-9").Return(records, nil).Once()
		deps.reportRepo.EXPECT().SaveReport(mock.Anything, mock.Anything).Return(nil).Once()

		report, err := coordinator.GetReport(context.Background(), "batch-9")
		require.NoError(t, err)
		assert.Equal(t, 2, report.Total)
		assert.Equal(t, 1, report.Sent)
		assert.Equal(t, []string{"all routes exhausted"}, report.FailureReasons)
	})

	t.Run("unknown batch", func(t *testing.T) {
		coordinator, deps := createTestBatchCoordinator(t, 1)
		deps.reportRepo.EXPECT().FindReport(mock.Anything, "missing").Return(nil, repository.ErrReportNotFound).Once()
		deps.recordRepo.EXPECT().FindRecordsByBatch(mock.Anything, "missing").Return(nil, nil).Once()

		_, err := coordinator.GetReport(context.Background(), "missing")
		assert.ErrorIs(t, err, domainerrors.ErrReportNotFound)
	})
}

func TestBatchCoordinator_GetDeliveryHistory(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)

	deps.recordRepo.EXPECT().FindRecentRecords(mock.Anything, 50, 0).Return([]*entity.DeliveryRecord{}, nil).Once()
	deps.recordRepo.EXPECT().FindRecentRecords(mock.Anything, 500, 20).Return(nil, errors.New("db down")).Once()

	records, err := coordinator.GetDeliveryHistory(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = coordinator.GetDeliveryHistory(context.Background(), 10_000, 20)
	assert.ErrorContains(t, err, "db down")
}

func TestBatchCoordinator_GetRecipientHistory(t *testing.T) {
	coordinator, deps := createTestBatchCoordinator(t, 1)

	_, err := coordinator.GetRecipientHistory(context.Background(), "", 10)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	deps.recordRepo.EXPECT().FindRecordsByRecipient(mock.Anything, "S1", 10).Return([]*entity.DeliveryRecord{{RecipientID: "S1"}}, nil).Once()

	records, err := coordinator.GetRecipientHistory(context.Background(), "S1", 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
