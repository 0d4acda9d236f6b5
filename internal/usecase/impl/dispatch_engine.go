package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"rollcall/config"
	deliverycontext "rollcall/internal/delivery/context"
	"rollcall/internal/domain/entity"
	"rollcall/internal/domain/service"
	"rollcall/internal/errors"
	"rollcall/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Record details shown to staff.
const (
	detailNoAddress       = "no device address registered"
	detailNotAlertable    = "student is not absent or late"
	detailAlreadyNotified = "parent already notified today"
	detailSimulated       = "simulated delivery (no push credential configured)"
	detailNoTransport     = "push transport not resolved"
	detailRoutesExhausted = "all routes exhausted"
)

type dispatchEngine struct {
	gateway        service.PushGateway
	credentials    service.CredentialProvider
	validator      *AddressValidator
	composer       *NotificationComposer
	selector       *TransportSelector
	simulatedDelay time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// DispatchEngineParams holds dependencies for the dispatch engine, injected by Fx.
type DispatchEngineParams struct {
	fx.In

	Config      *config.Config
	Gateway     service.PushGateway
	Credentials service.CredentialProvider
	Logger      *slog.Logger
}

// NewDispatchEngine creates the per-recipient dispatch engine
func NewDispatchEngine(params DispatchEngineParams) usecase.DispatchUsecase {
	cfg := params.Config.Dispatch

	return &dispatchEngine{
		gateway:        params.Gateway,
		credentials:    params.Credentials,
		validator:      NewAddressValidator(cfg.MinAddressLength),
		composer:       NewNotificationComposer(cfg.SchoolName),
		selector:       NewTransportSelector(cfg.Relays),
		simulatedDelay: cfg.SimulatedDelay,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (e *dispatchEngine) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// ResolveTransport reads the credential once and fixes dialect and routes for the batch.
func (e *dispatchEngine) ResolveTransport(ctx context.Context) (*entity.Transport, error) {
	credential, projectID, err := e.credentials.Credential(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "resolve push credential")
	}

	dialect := ResolveDialect(credential)
	if dialect == entity.DialectBearerTokenV1 && strings.TrimSpace(projectID) == "" {
		return nil, errors.New("project id is required for the v1 push API")
	}

	transport := &entity.Transport{
		Dialect:    dialect,
		Credential: NormalizeCredential(credential),
		ProjectID:  projectID,
		Routes:     e.selector.CandidateRoutes(dialect),
	}

	e.log(ctx).Info("Resolved push transport",
		slog.String("dialect", dialect.String()),
		slog.Int("routes", len(transport.Routes)),
	)

	return transport, nil
}

// Send runs the per-recipient state machine and always returns a finished record.
func (e *dispatchEngine) Send(ctx context.Context, transport *entity.Transport, recipient *entity.Recipient) (record *entity.DeliveryRecord) {
	record = e.newRecord(recipient)

	defer func() {
		if r := recover(); r != nil {
			e.log(ctx).Error("Dispatch panicked",
				slog.String("recipient_id", record.RecipientID),
				slog.Any("panic", r),
			)
			e.fail(record, entity.ReasonInternalError, fmt.Sprintf("dispatch aborted: %v", r))
		}
	}()

	if recipient == nil || !recipient.AttendanceState.Alertable() {
		return e.fail(record, entity.ReasonNotEligible, detailNotAlertable)
	}
	if !recipient.IsEligible() {
		return e.fail(record, entity.ReasonNotEligible, detailAlreadyNotified)
	}

	if !e.validator.IsDeliverable(recipient) {
		return e.fail(record, entity.ReasonNoAddress, detailNoAddress)
	}

	if transport == nil {
		return e.fail(record, entity.ReasonCredentialUnavailable, detailNoTransport)
	}

	message, err := e.composer.Compose(recipient)
	if err != nil {
		return e.fail(record, entity.ReasonNotEligible, detailNotAlertable)
	}

	// Once started, a recipient runs to a final outcome even if the batch is cancelled.
	detached := context.WithoutCancel(ctx)

	if transport.Dialect == entity.DialectSimulated {
		e.wait(detached, e.simulatedDelay)

		return e.succeed(record, "", entity.ReasonSimulated, detailSimulated)
	}

	return e.attemptRoutes(detached, transport, recipient, message, record)
}

// attemptRoutes tries each route in order until one produces a definitive outcome.
func (e *dispatchEngine) attemptRoutes(
	ctx context.Context,
	transport *entity.Transport,
	recipient *entity.Recipient,
	message *entity.OutboundMessage,
	record *entity.DeliveryRecord,
) *entity.DeliveryRecord {
	logger := e.log(ctx).With(slog.String("recipient_id", recipient.ID))

	var routeErrs error
	for _, route := range transport.Routes {
		record.Attempts++

		result, err := e.gateway.Attempt(ctx, &service.PushAttempt{
			Dialect:    transport.Dialect,
			Credential: transport.Credential,
			ProjectID:  transport.ProjectID,
			Route:      route,
			Address:    strings.TrimSpace(recipient.DeviceAddress),
			Message:    message,
		})
		if err != nil {
			result = &entity.AttemptResult{Class: entity.AttemptTransportFailure, Detail: err.Error()}
		}
		if result == nil {
			result = &entity.AttemptResult{Class: entity.AttemptTransportFailure, Detail: "no result from gateway"}
		}

		logger.Debug("Push attempt finished",
			slog.String("route", route.Name),
			slog.String("class", result.Class.String()),
			slog.Int("status", result.StatusCode),
			slog.String("provider_error", result.ProviderError),
		)

		switch result.Class {
		case entity.AttemptSuccess:
			return e.succeed(record, route.Name, entity.ReasonDelivered, "delivered")
		case entity.AttemptAuthFailure:
			return e.failOn(record, route.Name, entity.ReasonAuthFailure, "credential rejected by provider: "+result.Detail)
		case entity.AttemptRecipientInvalid:
			return e.failOn(record, route.Name, entity.ReasonRecipientInvalid, "device address rejected: "+result.Detail)
		default:
			routeErrs = errors.Append(routeErrs, errors.New(route.Name+": "+result.Detail))
		}
	}

	detail := detailRoutesExhausted
	if causes := errors.Flatten(routeErrs); len(causes) > 0 {
		parts := make([]string, 0, len(causes))
		for _, cause := range causes {
			parts = append(parts, cause.Error())
		}
		detail += ": " + strings.Join(parts, "; ")
	} else {
		detail += ": no routes configured"
	}

	logger.Warn("All push routes failed", slog.Int("attempts", record.Attempts))

	return e.fail(record, entity.ReasonRoutesExhausted, detail)
}

func (e *dispatchEngine) wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (e *dispatchEngine) newRecord(recipient *entity.Recipient) *entity.DeliveryRecord {
	record := &entity.DeliveryRecord{ID: uuid.New()}
	if recipient != nil {
		record.RecipientID = recipient.ID
		record.RecipientName = recipient.DisplayName
		record.Kind = entity.AlertKindFor(recipient.AttendanceState)
	}

	return record
}

func (e *dispatchEngine) succeed(record *entity.DeliveryRecord, route string, reason entity.DeliveryReason, detail string) *entity.DeliveryRecord {
	record.Outcome = entity.OutcomeSent
	record.Reason = reason
	record.Detail = detail
	record.Route = route
	record.Timestamp = e.now()

	return record
}

func (e *dispatchEngine) failOn(record *entity.DeliveryRecord, route string, reason entity.DeliveryReason, detail string) *entity.DeliveryRecord {
	record.Route = route

	return e.fail(record, reason, detail)
}

func (e *dispatchEngine) fail(record *entity.DeliveryRecord, reason entity.DeliveryReason, detail string) *entity.DeliveryRecord {
	record.Outcome = entity.OutcomeFailed
	record.Reason = reason
	record.Detail = detail
	record.Timestamp = e.now()

	return record
}
