package handler

import (
	"log/slog"
	"net/http"

	"rollcall/internal/delivery/api/middleware"
	"rollcall/internal/delivery/api/response"
	deliverycontext "rollcall/internal/delivery/context"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/domain/service"
	"rollcall/internal/errors"
	"rollcall/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	BatchUC   usecase.BatchUsecase
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// DispatchHandler starts dispatch batches and serves their reports.
type DispatchHandler struct {
	batchUC   usecase.BatchUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		batchUC:   params.BatchUC,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// DispatchRequest represents the request body for starting a batch
type DispatchRequest struct {
	RecipientIDs []string `json:"recipient_ids" validate:"required,min=1,dive,required"`
	// Async queues the batch for the dispatch worker instead of waiting for the report
	Async bool `json:"async"`
}

// QueuedBatch is returned when a batch was handed to the worker
type QueuedBatch struct {
	BatchID string `json:"batch_id"`
}

// Dispatch handles POST /dispatch
func (h *DispatchHandler) Dispatch(c echo.Context) error {
	var req DispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid dispatch input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if req.Async {
		return h.queue(c, &req)
	}

	report, err := h.batchUC.DispatchRecipients(ctx, &usecase.BatchRequest{RecipientIDs: req.RecipientIDs})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

func (h *DispatchHandler) queue(c echo.Context, req *DispatchRequest) error {
	ctx := c.Request().Context()
	staffID, _ := middleware.GetStaffID(c)

	event := &service.BatchEvent{
		RequestID:    deliverycontext.GetRequestID(c),
		BatchID:      uuid.NewString(),
		RecipientIDs: req.RecipientIDs,
		RequestedBy:  staffID,
	}

	if err := h.publisher.PublishBatchEvent(ctx, event); err != nil {
		if errors.Is(err, domainerrors.ErrAsyncDispatchDisabled) {
			return response.HandleAppError(c, err)
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to queue dispatch batch",
			slog.String("batch_id", event.BatchID),
			slog.Any("error", err),
		)

		return response.AppError(c, domainerrors.ErrPublishFailed)
	}

	return response.Success(c, http.StatusAccepted, QueuedBatch{BatchID: event.BatchID})
}

// GetBatch handles GET /dispatch/batches/:id
func (h *DispatchHandler) GetBatch(c echo.Context) error {
	report, err := h.batchUC.GetReport(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
