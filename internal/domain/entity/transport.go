package entity

import (
	"net/url"
	"strings"
)

// Dialect is the push API flavour selected from the credential.
type Dialect int

const (
	// DialectSimulated is used when no credential is configured; nothing leaves the process.
	DialectSimulated Dialect = iota
	// DialectLegacyKeyed uses the legacy send endpoint with a server key.
	DialectLegacyKeyed
	// DialectBearerTokenV1 uses the v1 messages:send endpoint with an OAuth access token.
	DialectBearerTokenV1
)

func (d Dialect) String() string {
	switch d {
	case DialectSimulated:
		return "simulated"
	case DialectLegacyKeyed:
		return "legacy"
	case DialectBearerTokenV1:
		return "v1"
	default:
		return "unknown"
	}
}

// Template placeholders for relay routes.
const (
	PlaceholderEscaped = "{url}"
	PlaceholderRaw     = "{raw}"
)

// RouteDirect names the route that calls the provider without a relay.
const RouteDirect = "direct"

// Route is one network path to the provider.
type Route struct {
	Name string `json:"name"`
	// Template is empty for the direct route.
	Template string `json:"template,omitempty"`
	// Transparent relays forward the provider's status code and headers unchanged.
	Transparent bool `json:"transparent"`
}

// DirectRoute returns the route that calls the provider itself.
func DirectRoute() Route {
	return Route{Name: RouteDirect}
}

// IsDirect reports whether the route bypasses relays.
func (r Route) IsDirect() bool {
	return r.Template == ""
}

// TrustsStatus reports whether the HTTP status seen on this route is the provider's own.
func (r Route) TrustsStatus() bool {
	return r.IsDirect() || r.Transparent
}

// Resolve returns the URL to call for target through this route.
func (r Route) Resolve(target string) string {
	if r.IsDirect() {
		return target
	}

	resolved := strings.ReplaceAll(r.Template, PlaceholderEscaped, url.QueryEscape(target))

	return strings.ReplaceAll(resolved, PlaceholderRaw, target)
}

// Transport is resolved once per batch and shared by every recipient in it.
type Transport struct {
	Dialect    Dialect `json:"dialect"`
	Credential string  `json:"-"`
	ProjectID  string  `json:"project_id,omitempty"`
	Routes     []Route `json:"routes"`
}

// AttemptClass is the classified outcome of one network attempt.
type AttemptClass int

const (
	AttemptSuccess AttemptClass = iota
	// AttemptAuthFailure means the credential was rejected; other routes would fail the same way.
	AttemptAuthFailure
	// AttemptRecipientInvalid means the provider rejected this device address.
	AttemptRecipientInvalid
	// AttemptTransportFailure means this route failed; the next route may succeed.
	AttemptTransportFailure
)

func (c AttemptClass) String() string {
	switch c {
	case AttemptSuccess:
		return "success"
	case AttemptAuthFailure:
		return "auth_failure"
	case AttemptRecipientInvalid:
		return "recipient_invalid"
	case AttemptTransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// AttemptResult is what the gateway learned from one attempt.
type AttemptResult struct {
	Class         AttemptClass
	StatusCode    int    // HTTP status as observed on the route, 0 if no response.
	ProviderError string // Structured error code reported by the provider, if any.
	MessageID     string // Provider message id on success.
	Detail        string // Human-readable summary.
}
