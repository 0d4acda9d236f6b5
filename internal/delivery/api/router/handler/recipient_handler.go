package handler

import (
	"log/slog"
	"net/http"

	"rollcall/internal/delivery/api/response"
	"rollcall/internal/domain/entity"
	"rollcall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecipientHandlerParams holds dependencies for RecipientHandler, injected by Fx.
type RecipientHandlerParams struct {
	fx.In

	RosterUC usecase.RosterUsecase
	Logger   *slog.Logger
}

// RecipientHandler serves the staff roster: listing, attendance and registration codes.
type RecipientHandler struct {
	rosterUC usecase.RosterUsecase
	logger   *slog.Logger
}

// NewRecipientHandler is the constructor for RecipientHandler
func NewRecipientHandler(params RecipientHandlerParams) *RecipientHandler {
	return &RecipientHandler{
		rosterUC: params.RosterUC,
		logger:   params.Logger,
	}
}

// RecipientQuery filters roster listings
type RecipientQuery struct {
	Grade     string `query:"grade"`
	ClassName string `query:"class"`
}

func (q RecipientQuery) filter() entity.RecipientFilter {
	return entity.RecipientFilter{Grade: q.Grade, ClassName: q.ClassName}
}

// MarkAttendanceRequest represents the request body for marking attendance
type MarkAttendanceRequest struct {
	State string `json:"state" validate:"required,attendance_state"`
}

// ListRecipients handles GET /recipients
func (h *RecipientHandler) ListRecipients(c echo.Context) error {
	var query RecipientQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "Invalid roster query")
	}

	recipients, err := h.rosterUC.ListRecipients(c.Request().Context(), query.filter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipients)
}

// ListEligible handles GET /recipients/eligible, the students a dispatch would alert
func (h *RecipientHandler) ListEligible(c echo.Context) error {
	var query RecipientQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "Invalid roster query")
	}

	recipients, err := h.rosterUC.ListEligible(c.Request().Context(), query.filter())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipients)
}

// MarkAttendance handles PUT /recipients/:id/attendance
func (h *RecipientHandler) MarkAttendance(c echo.Context) error {
	var req MarkAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid attendance input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	state, err := entity.ParseAttendanceState(req.State)
	if err != nil {
		return response.BindingError(c, "Invalid attendance state")
	}

	recipient, err := h.rosterUC.MarkAttendance(c.Request().Context(), c.Param("id"), state)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipient)
}

// RegistrationQR handles GET /recipients/:id/registration-qr
func (h *RecipientHandler) RegistrationQR(c echo.Context) error {
	png, err := h.rosterUC.RegistrationQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
