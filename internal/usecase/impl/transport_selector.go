package impl

import (
	"strings"

	"rollcall/config"
	"rollcall/internal/domain/entity"
)

// Prefixes that identify an OAuth access token rather than a legacy server key.
var bearerPrefixes = []string{"ya29.", "bearer "}

// ResolveDialect classifies a credential. Blank selects simulated mode.
func ResolveDialect(credential string) entity.Dialect {
	trimmed := strings.TrimSpace(credential)
	if trimmed == "" {
		return entity.DialectSimulated
	}

	lower := strings.ToLower(trimmed)
	for _, prefix := range bearerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return entity.DialectBearerTokenV1
		}
	}

	return entity.DialectLegacyKeyed
}

// NormalizeCredential strips a "Bearer " prefix so the gateway can add its own header scheme.
func NormalizeCredential(credential string) string {
	trimmed := strings.TrimSpace(credential)
	if len(trimmed) >= len("bearer ") && strings.EqualFold(trimmed[:len("bearer ")], "bearer ") {
		return strings.TrimSpace(trimmed[len("bearer "):])
	}

	return trimmed
}

// TransportSelector orders the routes tried for each recipient.
type TransportSelector struct {
	relays []entity.Route
}

// NewTransportSelector keeps relays in configuration order.
func NewTransportSelector(relays []config.RelayConfig) *TransportSelector {
	routes := make([]entity.Route, 0, len(relays))
	for _, relay := range relays {
		if strings.TrimSpace(relay.Template) == "" {
			continue
		}
		routes = append(routes, entity.Route{
			Name:        relay.Name,
			Template:    relay.Template,
			Transparent: relay.Transparent,
		})
	}

	return &TransportSelector{relays: routes}
}

// CandidateRoutes returns direct first, then each relay. Simulated has no routes.
func (s *TransportSelector) CandidateRoutes(dialect entity.Dialect) []entity.Route {
	if dialect == entity.DialectSimulated {
		return []entity.Route{}
	}

	routes := make([]entity.Route, 0, len(s.relays)+1)
	routes = append(routes, entity.DirectRoute())

	return append(routes, s.relays...)
}
