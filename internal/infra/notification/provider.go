package notification

import (
	"log/slog"
	"net/http"

	"rollcall/config"
	"rollcall/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the push gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client          `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// NewPushGateway returns the HTTP gateway, instrumented when metrics are enabled.
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	gateway := NewHTTPGateway(params.Config.Dispatch, params.HTTPClient)

	if params.Config.Metrics == nil || !params.Config.Metrics.Enabled {
		return gateway, nil
	}

	reg := params.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	instrumented, err := NewMetricsGateway(gateway, reg)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Push attempt metrics enabled")

	return instrumented, nil
}
