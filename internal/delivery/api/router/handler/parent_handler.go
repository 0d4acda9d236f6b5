package handler

import (
	"log/slog"
	"net/http"

	"rollcall/internal/delivery/api/response"
	deliverycontext "rollcall/internal/delivery/context"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/domain/service"
	"rollcall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ParentHandlerParams holds dependencies for ParentHandler, injected by Fx.
type ParentHandlerParams struct {
	fx.In

	RosterUC      usecase.RosterUsecase
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// ParentHandler receives device registrations from the parent app.
type ParentHandler struct {
	rosterUC      usecase.RosterUsecase
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

// NewParentHandler is the constructor for ParentHandler
func NewParentHandler(params ParentHandlerParams) *ParentHandler {
	return &ParentHandler{
		rosterUC:      params.RosterUC,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// DeviceAddressRequest represents the request body for storing a device address
type DeviceAddressRequest struct {
	DeviceAddress string `json:"device_address" validate:"required"`
}

// RegistrationRequest carries the scanned registration link and the device's push token
type RegistrationRequest struct {
	RegistrationLink string `json:"registration_link" validate:"required"`
	DeviceAddress    string `json:"device_address" validate:"required"`
}

// RegisteredDevice confirms which student the device now receives alerts for
type RegisteredDevice struct {
	RecipientID string `json:"recipient_id"`
}

// UpdateDeviceAddress handles PUT /parent/recipients/:id/device-address
func (h *ParentHandler) UpdateDeviceAddress(c echo.Context) error {
	var req DeviceAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device address input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recipientID := c.Param("id")
	if err := h.rosterUC.RegisterDeviceAddress(c.Request().Context(), recipientID, req.DeviceAddress); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RegisteredDevice{RecipientID: recipientID})
}

// Register handles POST /parent/registrations with the link decoded from the QR code
func (h *ParentHandler) Register(c echo.Context) error {
	var req RegistrationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()

	recipientID, err := h.qrCodeService.ParseRegistrationQR(req.RegistrationLink)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Rejected registration link", slog.Any("error", err))

		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("registration_link is not a valid registration code"))
	}

	if err := h.rosterUC.RegisterDeviceAddress(ctx, recipientID, req.DeviceAddress); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RegisteredDevice{RecipientID: recipientID})
}
