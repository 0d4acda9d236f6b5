package notification

import (
	"io"
	"log/slog"
	"testing"

	"rollcall/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderConfig(metrics bool) *config.Config {
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: metrics}}
	cfg.ApplyDefaults()

	return cfg
}

func TestNewPushGateway_Plain(t *testing.T) {
	gateway, err := NewPushGateway(GatewayParams{
		Config: newProviderConfig(false),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, &HTTPGateway{}, gateway)
}

func TestNewPushGateway_Instrumented(t *testing.T) {
	reg := prometheus.NewRegistry()

	gateway, err := NewPushGateway(GatewayParams{
		Config:     newProviderConfig(true),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registerer: reg,
	})
	require.NoError(t, err)
	assert.IsType(t, &MetricsGateway{}, gateway)

	// A second registration of the same collectors is rejected.
	_, err = NewPushGateway(GatewayParams{
		Config:     newProviderConfig(true),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registerer: reg,
	})
	assert.ErrorContains(t, err, "register push metrics")
}
