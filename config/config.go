package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultTimezone           = "Local"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
		// Timezone is the IANA zone meal windows and order dates are evaluated in.
		Timezone string `json:"timezone" yaml:"timezone"`
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

	// MealWindows is the boundary table of the four meal windows
	MealWindows []MealWindowConfig `json:"mealWindows" yaml:"mealWindows"`

	// Queue configuration for the live queue estimate
	Queue *QueueConfig `json:"queue" yaml:"queue"`

	// Analytics configuration for the admin insights
	Analytics *AnalyticsConfig `json:"analytics" yaml:"analytics"`

	// Store configuration for the document store
	Store *StoreConfig `json:"store" yaml:"store"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration shared by Firestore, Auth and Messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Blob configuration for menu images
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	// QRCode configuration for order pickup codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Metrics configuration for the Prometheus endpoint
	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// MealWindowConfig is one row of the meal window table: [StartHour, EndHour) in local time
type MealWindowConfig struct {
	Name      string `json:"name" yaml:"name"`
	StartHour int    `json:"startHour" yaml:"startHour"`
	EndHour   int    `json:"endHour" yaml:"endHour"`
}

// QueueConfig defines the constants of the live queue estimate
type QueueConfig struct {
	AveragePrepMinutes float64 `json:"averagePrepMinutes" yaml:"averagePrepMinutes"`
	ParallelStations   int     `json:"parallelStations" yaml:"parallelStations"`
}

// AnalyticsConfig defines the constants of the admin insights
type AnalyticsConfig struct {
	BaselineMinutes      float64 `json:"baselineMinutes" yaml:"baselineMinutes"`
	WastePerOrderKg      float64 `json:"wastePerOrderKg" yaml:"wastePerOrderKg"`
	SLAMinutes           float64 `json:"slaMinutes" yaml:"slaMinutes"`
	EfficiencyMaxMinutes float64 `json:"efficiencyMaxMinutes" yaml:"efficiencyMaxMinutes"`
	SLAMaxMinutes        float64 `json:"slaMaxMinutes" yaml:"slaMaxMinutes"`
	TrailingDays         int     `json:"trailingDays" yaml:"trailingDays"`
	ForecastWeeks        int     `json:"forecastWeeks" yaml:"forecastWeeks"`
	ForecastWindow       string  `json:"forecastWindow" yaml:"forecastWindow"`
}

// StoreConfig selects the document store
type StoreConfig struct {
	// Driver is "memory" for an in-process store or "firestore"
	Driver string `json:"driver" yaml:"driver"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider is "local" for the development identity provider or "firebase"
	Provider    string        `json:"provider" yaml:"provider"`
	BcryptCost  int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenSecret string        `json:"tokenSecret" yaml:"tokenSecret"`
	TokenTTL    time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
	// TrustLocalEmails marks local accounts as email-verified so they can claim provisioned profiles
	TrustLocalEmails bool `json:"trustLocalEmails" yaml:"trustLocalEmails"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// BlobConfig defines where menu images are stored
type BlobConfig struct {
	// BucketURL is a gocloud bucket URL such as file:///var/canteen/images or gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	// PublicBaseURL is prefixed to object keys to build image URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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

// MetricsConfig defines the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
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
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
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
	if strings.TrimSpace(cfg.Env.Timezone) == "" {
		cfg.Env.Timezone = defaultTimezone
	}

	return cfg, nil
}

// Location loads the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Env.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", c.Env.Timezone)
	}

	return loc, nil
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
