package handler

import (
	"net/http"

	"rollcall/internal/delivery/api/response"
	"rollcall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	BatchUC usecase.BatchUsecase
}

// HistoryHandler serves the delivery log.
type HistoryHandler struct {
	batchUC usecase.BatchUsecase
}

// NewHistoryHandler is the constructor for HistoryHandler
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{batchUC: params.BatchUC}
}

// HistoryQuery pages through the delivery log; zero values take the usecase defaults
type HistoryQuery struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// ListDeliveries handles GET /deliveries
func (h *HistoryHandler) ListDeliveries(c echo.Context) error {
	var query HistoryQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "limit and offset must be integers")
	}

	records, err := h.batchUC.GetDeliveryHistory(c.Request().Context(), query.Limit, query.Offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// ListRecipientDeliveries handles GET /recipients/:id/deliveries
func (h *HistoryHandler) ListRecipientDeliveries(c echo.Context) error {
	var query HistoryQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "limit must be an integer")
	}

	records, err := h.batchUC.GetRecipientHistory(c.Request().Context(), c.Param("id"), query.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}
