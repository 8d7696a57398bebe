package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"warehouse-gateway/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// Locale selects the language of user-facing messages.
	Locale string `mapstructure:"APP_LOCALE" default:"en"`

	// UpstreamTimeout bounds every call made to a provider API.
	UpstreamTimeout time.Duration `mapstructure:"UPSTREAM_TIMEOUT" default:"30s"`
	// AuthRetryAttempts is how many times a call is attempted when the provider rejects the token.
	AuthRetryAttempts int `mapstructure:"AUTH_RETRY_ATTEMPTS" default:"3"`

	Pagination PaginationConfig `mapstructure:",squash"`
	Redis      RedisConfig      `mapstructure:",squash"`
	ShipRelay  ShipRelayConfig  `mapstructure:",squash"`
	MintSoft   MintSoftConfig   `mapstructure:",squash"`
	Proxy      proxy.Settings   `mapstructure:",squash"`
	Telemetry  TelemetryConfig  `mapstructure:",squash"`
}

// PaginationConfig holds the defaults applied when a caller omits page or limit.
type PaginationConfig struct {
	Limit int `mapstructure:"PAGINATION_LIMIT" default:"10"`
	Page  int `mapstructure:"PAGINATION_PAGE" default:"1"`
}

// RedisConfig holds the connection details of the token cache store.
type RedisConfig struct {
	// URL, when set, replaces Host, Port, Password and DB.
	URL      string `mapstructure:"REDIS_URL"`
	Host     string `mapstructure:"REDIS_HOST" default:"localhost"`
	Port     int    `mapstructure:"REDIS_PORT" default:"6379"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
	// Prefix namespaces every key written by this deployment.
	Prefix string `mapstructure:"CACHE_PREFIX" default:"warehouse"`
}

// Addr returns the host:port pair of the Redis server.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ShipRelayConfig holds the credentials for the ShipRelay API.
type ShipRelayConfig struct {
	// URL is the base URL of the ShipRelay API.
	URL string `mapstructure:"SHIPRELAY_API_URL" required:"true"`
	// Email is the login of the API user.
	Email string `mapstructure:"SHIPRELAY_USER_EMAIL"`
	// Password is the password of the API user.
	Password string `mapstructure:"SHIPRELAY_USER_PASSWORD"`
	// TokenTTL is how long an acquired bearer token stays in the cache.
	TokenTTL time.Duration `mapstructure:"SHIPRELAY_TOKEN_TTL" default:"8760h"`
}

// MintSoftConfig holds the credentials for the MintSoft API.
type MintSoftConfig struct {
	// URL is the base URL of the MintSoft API.
	URL string `mapstructure:"MINTSOFT_API_URL" required:"true"`
	// APIKey is sent in the ms-apikey header.
	APIKey string `mapstructure:"MINTSOFT_API_KEY"`
	// TokenTTL is how long the API key stays in the cache.
	TokenTTL time.Duration `mapstructure:"MINTSOFT_TOKEN_TTL" default:"8760h"`
}

// TelemetryConfig holds the tracing exporter settings.
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"OTEL_ENABLED"`
	Endpoint    string `mapstructure:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName string `mapstructure:"SERVICE_NAME" default:"warehouse-gateway"`
	Version     string `mapstructure:"SERVICE_VERSION" default:"0.1.0"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
