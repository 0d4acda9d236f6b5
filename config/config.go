package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultLegacyEndpoint   = "https://fcm.googleapis.com/fcm/send"
	defaultV1Endpoint       = "https://fcm.googleapis.com/v1/projects"
	defaultAttemptTimeout   = 10 * time.Second
	defaultSimulatedDelay   = 800 * time.Millisecond
	defaultMinAddressLength = 10
	defaultWorkers          = 1
	defaultSchoolName       = "School"
	defaultReportTTL        = 24 * time.Hour
	defaultRosterCollection = "students"
)

// Roster backends.
const (
	RosterBackendPostgres  = "postgres"
	RosterBackendFirestore = "firestore"
)

// Credential sources for the push provider.
const (
	CredentialSourceStatic         = "static"
	CredentialSourceServiceAccount = "service_account"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Roster selects where students and their attendance live
	Roster *RosterConfig `json:"roster" yaml:"roster"`

	// Firebase credentials shared by the Firestore roster and the service account credential source
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Dispatch configures the notification dispatch engine
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// PubSub configuration for asynchronous batches
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for parent registration codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Reports *ReportsConfig `json:"reports" yaml:"reports"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RosterConfig defines the roster store backend
type RosterConfig struct {
	// Backend is "postgres" or "firestore"
	Backend string `json:"backend" yaml:"backend"`

	// Collection holds student documents when Backend is firestore
	Collection string `json:"collection" yaml:"collection"`

	// AutoMigrate creates the SQL tables on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// FirebaseConfig defines Firebase project credentials
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RelayConfig describes one relay route.
type RelayConfig struct {
	Name string `json:"name" yaml:"name"`

	// Template wraps the provider URL; {url} is replaced query-escaped, {raw} verbatim
	Template string `json:"template" yaml:"template"`

	// Transparent relays pass provider status codes through unchanged
	Transparent bool `json:"transparent" yaml:"transparent"`
}

// DispatchConfig defines the notification dispatch engine configuration
type DispatchConfig struct {
	// Credential is a legacy server key or an OAuth access token; empty enables simulated mode
	Credential string `json:"credential" yaml:"credential"`

	// CredentialSource is "static" (default) or "service_account"
	CredentialSource string `json:"credentialSource" yaml:"credentialSource"`

	// ProjectID is the push provider project used by the v1 API
	ProjectID string `json:"projectId" yaml:"projectId"`

	LegacyEndpoint string `json:"legacyEndpoint" yaml:"legacyEndpoint"`
	V1Endpoint     string `json:"v1Endpoint" yaml:"v1Endpoint"`

	// Relays are tried in order after the direct route
	Relays []RelayConfig `json:"relays" yaml:"relays"`

	AttemptTimeout   time.Duration `json:"attemptTimeout" yaml:"attemptTimeout"`
	SimulatedDelay   time.Duration `json:"simulatedDelay" yaml:"simulatedDelay"`
	MinAddressLength int           `json:"minAddressLength" yaml:"minAddressLength"`

	// Workers bounds concurrent recipients per batch; 1 dispatches sequentially
	Workers int `json:"workers" yaml:"workers"`

	SchoolName string `json:"schoolName" yaml:"schoolName"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// ReportsConfig controls how long batch reports stay in memory
type ReportsConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// DefaultRelays are the public relays used when none are configured.
func DefaultRelays() []RelayConfig {
	return []RelayConfig{
		{Name: "corsproxy", Template: "https://corsproxy.io/?{url}", Transparent: true},
		{Name: "thingproxy", Template: "https://thingproxy.freeboard.io/fetch/{raw}"},
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// DISPATCH_ATTEMPTTIMEOUT -> dispatch.attemptTimeout
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never nil-check.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Roster == nil {
		cfg.Roster = &RosterConfig{}
	}
	if cfg.Roster.Backend == "" {
		cfg.Roster.Backend = RosterBackendPostgres
	}
	if cfg.Roster.Collection == "" {
		cfg.Roster.Collection = defaultRosterCollection
	}

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	cfg.Dispatch.applyDefaults()

	if cfg.Reports == nil {
		cfg.Reports = &ReportsConfig{}
	}
	if cfg.Reports.TTL <= 0 {
		cfg.Reports.TTL = defaultReportTTL
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
}

func (d *DispatchConfig) applyDefaults() {
	if d.CredentialSource == "" {
		d.CredentialSource = CredentialSourceStatic
	}
	if d.LegacyEndpoint == "" {
		d.LegacyEndpoint = defaultLegacyEndpoint
	}
	if d.V1Endpoint == "" {
		d.V1Endpoint = defaultV1Endpoint
	}
	if d.Relays == nil {
		d.Relays = DefaultRelays()
	}
	if d.AttemptTimeout <= 0 {
		d.AttemptTimeout = defaultAttemptTimeout
	}
	if d.SimulatedDelay < 0 {
		d.SimulatedDelay = 0
	}
	if d.SimulatedDelay == 0 {
		d.SimulatedDelay = defaultSimulatedDelay
	}
	if d.MinAddressLength <= 0 {
		d.MinAddressLength = defaultMinAddressLength
	}
	if d.Workers <= 0 {
		d.Workers = defaultWorkers
	}
	if strings.TrimSpace(d.SchoolName) == "" {
		d.SchoolName = defaultSchoolName
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
