package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"nearby/internal/domain/constants"

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

	// Database selects the hub's store. Postgres is used when Driver is "postgres".
	Database *DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Transport configures the agents' realtime session to the hub
	Transport *TransportConfig `json:"transport" yaml:"transport"`

	// Presence configures the vendor presence publisher
	Presence *PresenceConfig `json:"presence" yaml:"presence"`

	// Notification configures the consumer notification engine
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// Preferences configures the remote profile client
	Preferences *PreferencesConfig `json:"preferences" yaml:"preferences"`

	// Location configures the agents' position source
	Location *LocationConfig `json:"location" yaml:"location"`

	// Matching configures the hub's proximity matching
	Matching *MatchingConfig `json:"matching" yaml:"matching"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
	// Output is stdout (default), stderr or a file path. Agents log to a
	// file so records do not interleave with the console.
	Output string `json:"output" yaml:"output"`
}

// DatabaseConfig selects the persistence driver
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// SQLiteDSN is used when Driver is "sqlite", e.g. "file:nearby.db" or ":memory:"
	SQLiteDSN string `json:"sqliteDsn" yaml:"sqliteDsn"`
}

// TransportConfig defines the realtime session parameters
type TransportConfig struct {
	// URL of the hub websocket endpoint, e.g. ws://localhost:8080/ws
	URL string `json:"url" yaml:"url"`

	// Token is the bearer credential presented at the handshake
	Token string `json:"token" yaml:"token"`

	BaseDelay   time.Duration `json:"baseDelay" yaml:"baseDelay"`
	MaxDelay    time.Duration `json:"maxDelay" yaml:"maxDelay"`
	PingPeriod  time.Duration `json:"pingPeriod" yaml:"pingPeriod"`
	PongWait    time.Duration `json:"pongWait" yaml:"pongWait"`
	WriteWait   time.Duration `json:"writeWait" yaml:"writeWait"`
	DialTimeout time.Duration `json:"dialTimeout" yaml:"dialTimeout"`
}

// PresenceConfig defines the vendor emission cadence and settings bounds
type PresenceConfig struct {
	MinMovementMeters  float64       `json:"minMovementMeters" yaml:"minMovementMeters"`
	MaxStaleness       time.Duration `json:"maxStaleness" yaml:"maxStaleness"`
	AcquisitionTimeout time.Duration `json:"acquisitionTimeout" yaml:"acquisitionTimeout"`
	MaxAge             time.Duration `json:"maxAge" yaml:"maxAge"`
	DefaultRadius      float64       `json:"defaultRadius" yaml:"defaultRadius"`
	MinRadius          float64       `json:"minRadius" yaml:"minRadius"`
	MaxRadius          float64       `json:"maxRadius" yaml:"maxRadius"`
}

// NotificationConfig defines the consumer notification lifecycle
type NotificationConfig struct {
	TTL       time.Duration `json:"ttl" yaml:"ttl"`
	MaxActive int           `json:"maxActive" yaml:"maxActive"`

	// Alerter is "log" for terminal alerts or "firebase" for push
	Alerter string `json:"alerter" yaml:"alerter"`

	// Permission seeds the host permission: default, granted or denied
	Permission string `json:"permission" yaml:"permission"`

	// DeviceToken is the FCM registration token used by the firebase alerter
	DeviceToken string `json:"deviceToken" yaml:"deviceToken"`

	// TimeZone evaluates quiet hours, e.g. "Asia/Kolkata". Empty means the host zone.
	TimeZone string `json:"timeZone" yaml:"timeZone"`
}

// PreferencesConfig defines the profile service client
type PreferencesConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// LocationConfig defines where agent positions come from
type LocationConfig struct {
	// ReplayFile is a GeoJSON track replayed as the device position
	ReplayFile string `json:"replayFile" yaml:"replayFile"`

	// Interval between replayed fixes
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Latitude/Longitude of a fixed position used when no replay file is set
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// MatchingConfig defines the hub proximity matcher
type MatchingConfig struct {
	MaxSearchRadiusMeters float64       `json:"maxSearchRadiusMeters" yaml:"maxSearchRadiusMeters"`
	Cooldown              time.Duration `json:"cooldown" yaml:"cooldown"`
	MaxProducts           int           `json:"maxProducts" yaml:"maxProducts"`
	InboundRate           float64       `json:"inboundRate" yaml:"inboundRate"`
	InboundBurst          int           `json:"inboundBurst" yaml:"inboundBurst"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills sections missing from the yaml file.
func applyDefaults(cfg *Config) {
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{Driver: constants.DatabaseDriverSQLite, SQLiteDSN: "file:nearby.db"}
	}
	if cfg.Transport == nil {
		cfg.Transport = &TransportConfig{}
	}
	if cfg.Transport.BaseDelay <= 0 {
		cfg.Transport.BaseDelay = time.Second
	}
	if cfg.Transport.MaxDelay <= 0 {
		cfg.Transport.MaxDelay = 30 * time.Second
	}
	if cfg.Transport.PongWait <= 0 {
		cfg.Transport.PongWait = 60 * time.Second
	}
	if cfg.Transport.PingPeriod <= 0 || cfg.Transport.PingPeriod >= cfg.Transport.PongWait {
		cfg.Transport.PingPeriod = cfg.Transport.PongWait * 9 / 10
	}
	if cfg.Transport.WriteWait <= 0 {
		cfg.Transport.WriteWait = 10 * time.Second
	}
	if cfg.Transport.DialTimeout <= 0 {
		cfg.Transport.DialTimeout = 10 * time.Second
	}

	if cfg.Presence == nil {
		cfg.Presence = &PresenceConfig{}
	}
	if cfg.Presence.MinMovementMeters <= 0 {
		cfg.Presence.MinMovementMeters = 10
	}
	if cfg.Presence.MaxStaleness <= 0 {
		cfg.Presence.MaxStaleness = 5 * time.Second
	}
	if cfg.Presence.AcquisitionTimeout <= 0 {
		cfg.Presence.AcquisitionTimeout = 10 * time.Second
	}
	if cfg.Presence.MinRadius <= 0 {
		cfg.Presence.MinRadius = 500
	}
	if cfg.Presence.MaxRadius <= 0 {
		cfg.Presence.MaxRadius = 5000
	}
	if cfg.Presence.DefaultRadius <= 0 {
		cfg.Presence.DefaultRadius = 2000
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.TTL <= 0 {
		cfg.Notification.TTL = 30 * time.Second
	}
	if cfg.Notification.MaxActive <= 0 {
		cfg.Notification.MaxActive = 10
	}
	if cfg.Notification.Alerter == "" {
		cfg.Notification.Alerter = constants.AlerterLog
	}
	if cfg.Notification.Permission == "" {
		cfg.Notification.Permission = "default"
	}

	if cfg.Preferences == nil {
		cfg.Preferences = &PreferencesConfig{}
	}
	if cfg.Preferences.RequestTimeout <= 0 {
		cfg.Preferences.RequestTimeout = 10 * time.Second
	}

	if cfg.Location == nil {
		cfg.Location = &LocationConfig{}
	}
	if cfg.Location.Interval <= 0 {
		cfg.Location.Interval = 5 * time.Second
	}

	if cfg.Matching == nil {
		cfg.Matching = &MatchingConfig{}
	}
	if cfg.Matching.MaxSearchRadiusMeters <= 0 {
		cfg.Matching.MaxSearchRadiusMeters = 5000
	}
	if cfg.Matching.Cooldown <= 0 {
		cfg.Matching.Cooldown = 5 * time.Minute
	}
	if cfg.Matching.MaxProducts <= 0 {
		cfg.Matching.MaxProducts = 5
	}
	if cfg.Matching.InboundRate <= 0 {
		cfg.Matching.InboundRate = 20
	}
	if cfg.Matching.InboundBurst <= 0 {
		cfg.Matching.InboundBurst = 40
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: constants.PubSubProviderNoop}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
