package impl

import (
	"context"
	"log/slog"
	"time"

	"rollcall/config"
	deliverycontext "rollcall/internal/delivery/context"
	"rollcall/internal/domain/constants"
	"rollcall/internal/domain/entity"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/domain/repository"
	"rollcall/internal/errors"
	"rollcall/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const detailCredentialUnavailable = "push credential unavailable"

type batchCoordinator struct {
	dispatcher    usecase.DispatchUsecase
	recipientRepo repository.RecipientRepository
	recordRepo    repository.DeliveryRecordRepository
	reportRepo    repository.BatchReportRepository
	workers       int
	logger        *slog.Logger
	now           func() time.Time
}

// BatchCoordinatorParams holds dependencies for the batch coordinator, injected by Fx.
type BatchCoordinatorParams struct {
	fx.In

	Config        *config.Config
	Dispatcher    usecase.DispatchUsecase
	RecipientRepo repository.RecipientRepository
	RecordRepo    repository.DeliveryRecordRepository
	ReportRepo    repository.BatchReportRepository
	Logger        *slog.Logger
}

// NewBatchCoordinator creates the batch coordinator
func NewBatchCoordinator(params BatchCoordinatorParams) usecase.BatchUsecase {
	workers := params.Config.Dispatch.Workers
	if workers < 1 {
		workers = 1
	}

	return &batchCoordinator{
		dispatcher:    params.Dispatcher,
		recipientRepo: params.RecipientRepo,
		recordRepo:    params.RecordRepo,
		reportRepo:    params.ReportRepo,
		workers:       workers,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (c *batchCoordinator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// RunBatch dispatches to every recipient and returns the batch report
func (c *batchCoordinator) RunBatch(ctx context.Context, batchID string, recipients []*entity.Recipient) *entity.BatchReport {
	return c.runBatch(ctx, batchID, recipients, nil)
}

// DispatchRecipients loads the selected students and dispatches to the eligible ones
func (c *batchCoordinator) DispatchRecipients(ctx context.Context, req *usecase.BatchRequest) (*entity.BatchReport, error) {
	if req == nil || len(req.RecipientIDs) == 0 {
		return nil, domainerrors.ErrEmptyBatch
	}

	ids := uniqueIDs(req.RecipientIDs)
	if len(ids) == 0 {
		return nil, domainerrors.ErrEmptyBatch
	}

	found, err := c.recipientRepo.FindRecipientsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(errors.Join(domainerrors.ErrRosterUnavailable, err), "load batch recipients")
	}

	byID := make(map[string]*entity.Recipient, len(found))
	for _, recipient := range found {
		byID[recipient.ID] = recipient
	}

	selected := make([]*entity.Recipient, 0, len(ids))
	var skipped []string
	for _, id := range ids {
		recipient, ok := byID[id]
		if !ok || !recipient.IsEligible() {
			skipped = append(skipped, id)

			continue
		}
		selected = append(selected, recipient)
	}

	if len(skipped) > 0 {
		c.log(ctx).Info("Skipping recipients that are unknown or not eligible", slog.Any("recipient_ids", skipped))
	}

	return c.runBatch(ctx, req.BatchID, selected, skipped), nil
}

func (c *batchCoordinator) runBatch(ctx context.Context, batchID string, recipients []*entity.Recipient, skipped []string) *entity.BatchReport {
	if batchID == "" {
		batchID = uuid.NewString()
	}

	logger := c.log(ctx).With(slog.String("batch_id", batchID))
	startedAt := c.now()
	records := make([]*entity.DeliveryRecord, len(recipients))

	if len(recipients) > 0 {
		c.dispatchBatch(ctx, logger, batchID, recipients, records)
	}

	pending := 0
	finished := make([]*entity.DeliveryRecord, 0, len(records))
	for _, record := range records {
		if record == nil {
			pending++

			continue
		}
		finished = append(finished, record)
	}

	report := entity.NewBatchReport(batchID, startedAt, c.now(), finished)
	report.Pending = pending
	report.Cancelled = pending > 0
	report.Skipped = skipped

	c.persist(context.WithoutCancel(ctx), logger, report)

	logger.Info("Dispatch batch finished",
		slog.Int("total", report.Total),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("pending", report.Pending),
	)

	return report
}

func (c *batchCoordinator) dispatchBatch(
	ctx context.Context,
	logger *slog.Logger,
	batchID string,
	recipients []*entity.Recipient,
	records []*entity.DeliveryRecord,
) {
	transport, err := c.dispatcher.ResolveTransport(ctx)
	if err != nil {
		logger.Error("Failed to resolve push transport", slog.Any("error", err))
		for i, recipient := range recipients {
			records[i] = c.unavailableRecord(batchID, recipient)
		}

		return
	}

	logger.Info("Starting dispatch batch",
		slog.Int("recipients", len(recipients)),
		slog.String("dialect", transport.Dialect.String()),
		slog.Int("workers", c.workers),
	)
	c.dispatchAll(ctx, batchID, transport, recipients, records)
}

// dispatchAll fills records by submission index. Slots left nil were never started.
func (c *batchCoordinator) dispatchAll(
	ctx context.Context,
	batchID string,
	transport *entity.Transport,
	recipients []*entity.Recipient,
	records []*entity.DeliveryRecord,
) {
	if c.workers <= 1 {
		for i, recipient := range recipients {
			if ctx.Err() != nil {
				return
			}
			records[i] = c.dispatchOne(ctx, batchID, transport, recipient)
		}

		return
	}

	group := new(errgroup.Group)
	group.SetLimit(c.workers)

	for i, recipient := range recipients {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			// Go may have waited for a slot while the batch was cancelled.
			if ctx.Err() != nil {
				return nil
			}
			records[i] = c.dispatchOne(ctx, batchID, transport, recipient)

			return nil
		})
	}

	_ = group.Wait()
}

func (c *batchCoordinator) dispatchOne(ctx context.Context, batchID string, transport *entity.Transport, recipient *entity.Recipient) *entity.DeliveryRecord {
	record := c.dispatcher.Send(ctx, transport, recipient)
	record.BatchID = batchID

	if record.Sent() {
		if err := c.recipientRepo.MarkNotified(context.WithoutCancel(ctx), record.RecipientID); err != nil {
			c.log(ctx).Warn("Failed to mark recipient notified",
				slog.String("batch_id", batchID),
				slog.String("recipient_id", record.RecipientID),
				slog.Any("error", err),
			)
		}
	}

	return record
}

func (c *batchCoordinator) unavailableRecord(batchID string, recipient *entity.Recipient) *entity.DeliveryRecord {
	record := &entity.DeliveryRecord{
		ID:        uuid.New(),
		BatchID:   batchID,
		Timestamp: c.now(),
		Outcome:   entity.OutcomeFailed,
		Reason:    entity.ReasonCredentialUnavailable,
		Detail:    detailCredentialUnavailable,
	}
	if recipient != nil {
		record.RecipientID = recipient.ID
		record.RecipientName = recipient.DisplayName
		record.Kind = entity.AlertKindFor(recipient.AttendanceState)
	}

	return record
}

func (c *batchCoordinator) persist(ctx context.Context, logger *slog.Logger, report *entity.BatchReport) {
	if len(report.Records) > 0 {
		if err := c.recordRepo.AppendRecords(ctx, report.Records); err != nil {
			logger.Error("Failed to append delivery records", slog.Any("error", err))
		}
	}

	if err := c.reportRepo.SaveReport(ctx, report); err != nil {
		logger.Error("Failed to save batch report", slog.Any("error", err))
	}
}

// GetReport returns a cached report, rebuilding it from the delivery log on a miss
func (c *batchCoordinator) GetReport(ctx context.Context, batchID string) (*entity.BatchReport, error) {
	report, err := c.reportRepo.FindReport(ctx, batchID)
	if err == nil {
		return report, nil
	}
	if !errors.Is(err, repository.ErrReportNotFound) {
		c.log(ctx).Warn("Report store lookup failed", slog.String("batch_id", batchID), slog.Any("error", err))
	}

	records, err := c.recordRepo.FindRecordsByBatch(ctx, batchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load batch records")
	}
	if len(records) == 0 {
		return nil, domainerrors.ErrReportNotFound
	}

	report = entity.NewBatchReport(batchID, records[0].Timestamp, records[len(records)-1].Timestamp, records)
	if err := c.reportRepo.SaveReport(ctx, report); err != nil {
		c.log(ctx).Warn("Failed to cache rebuilt report", slog.String("batch_id", batchID), slog.Any("error", err))
	}

	return report, nil
}

// GetDeliveryHistory pages through the delivery log
func (c *batchCoordinator) GetDeliveryHistory(ctx context.Context, limit, offset int) ([]*entity.DeliveryRecord, error) {
	if offset < 0 {
		offset = 0
	}

	records, err := c.recordRepo.FindRecentRecords(ctx, clampLimit(limit), offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load delivery history")
	}

	return records, nil
}

// GetRecipientHistory returns the newest records for one student
func (c *batchCoordinator) GetRecipientHistory(ctx context.Context, recipientID string, limit int) ([]*entity.DeliveryRecord, error) {
	if recipientID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipient id is required")
	}

	records, err := c.recordRepo.FindRecordsByRecipient(ctx, recipientID, clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipient history")
	}

	return records, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return constants.DefaultHistoryLimit
	case limit > constants.MaxHistoryLimit:
		return constants.MaxHistoryLimit
	default:
		return limit
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
