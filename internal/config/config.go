package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "FEED"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Session      SessionConfig
	Kafka        KafkaConfig
	Notify       NotifyConfig
	Tracing      TracingConfig
	FeatureFlags FeatureFlagsConfig
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Session.ensureSecret(cfg.App); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env             string        `envconfig:"FEED_APP_ENV" default:"dev"`
	Name            string        `envconfig:"FEED_APP_NAME" default:"feed-catalog"`
	Port            string        `envconfig:"FEED_APP_PORT" default:"8080"`
	LogLevel        string        `envconfig:"FEED_LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"FEED_LOG_FORMAT" default:"json"`
	ShutdownTimeout time.Duration `envconfig:"FEED_SHUTDOWN_TIMEOUT" default:"15s"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

func (a AppConfig) Addr() string {
	if strings.HasPrefix(a.Port, ":") {
		return a.Port
	}
	return ":" + a.Port
}

// DBConfig points at an optional Postgres catalog source. Empty DSN means the
// built-in catalog is served.
type DBConfig struct {
	DSN             string        `envconfig:"FEED_DB_DSN"`
	MaxOpenConns    int           `envconfig:"FEED_DB_MAX_OPEN_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"FEED_DB_CONN_MAX_LIFETIME" default:"30m"`
	LoadTimeout     time.Duration `envconfig:"FEED_DB_LOAD_TIMEOUT" default:"10s"`
}

func (d DBConfig) Enabled() bool { return d.DSN != "" }

type RedisConfig struct {
	URL          string        `envconfig:"FEED_REDIS_URL"`
	DialTimeout  time.Duration `envconfig:"FEED_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FEED_REDIS_READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"FEED_REDIS_WRITE_TIMEOUT" default:"3s"`
}

func (r RedisConfig) Enabled() bool { return r.URL != "" }

// SessionConfig controls quote-draft sessions.
type SessionConfig struct {
	Secret   string        `envconfig:"FEED_SESSION_SECRET"`
	Issuer   string        `envconfig:"FEED_SESSION_ISSUER" default:"feed-catalog"`
	DraftTTL time.Duration `envconfig:"FEED_DRAFT_TTL" default:"72h"`
}

func (s *SessionConfig) ensureSecret(app AppConfig) error {
	if s.Secret != "" {
		return nil
	}
	if app.IsProd() {
		return fmt.Errorf("FEED_SESSION_SECRET is required when FEED_APP_ENV=%s", AppEnvProd)
	}
	// per-process secret: drafts do not survive a restart in dev
	s.Secret = uuid.NewString()
	return nil
}

type KafkaConfig struct {
	Brokers      []string      `envconfig:"FEED_KAFKA_BROKERS"`
	Topic        string        `envconfig:"FEED_KAFKA_TOPIC" default:"feed.inquiries"`
	WriteTimeout time.Duration `envconfig:"FEED_KAFKA_WRITE_TIMEOUT" default:"5s"`
}

func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }

type NotifyConfig struct {
	RedisChannel string        `envconfig:"FEED_NOTIFY_REDIS_CHANNEL" default:"feed:inquiries"`
	Timeout      time.Duration `envconfig:"FEED_NOTIFY_TIMEOUT" default:"3s"`
}

type TracingConfig struct {
	Endpoint string `envconfig:"FEED_OTLP_ENDPOINT"`
	Insecure bool   `envconfig:"FEED_OTLP_INSECURE" default:"true"`
}

func (t TracingConfig) Enabled() bool { return t.Endpoint != "" }

type FeatureFlagsConfig struct {
	RoxAPIKey    string        `envconfig:"FEED_ROX_API_KEY"`
	SetupTimeout time.Duration `envconfig:"FEED_ROX_SETUP_TIMEOUT" default:"20s"`
	PollInterval time.Duration `envconfig:"FEED_ROX_POLL_INTERVAL" default:"5s"`
}
