package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"gielinor-rush"`
	Version     string `env:"VERSION" envDefault:"dev"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`

	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"gielinorrush"`

	DBMaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"20" validate:"min=1"`
	DBMaxIdleTime     time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	APIKey         string   `env:"API_KEY" validate:"required"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// DiscordWebhookURL enables announcements when set.
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL" validate:"omitempty,url"`

	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5" validate:"min=0"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"1000" validate:"min=1"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5m"`

	GraphCacheSize int           `env:"GRAPH_CACHE_SIZE" envDefault:"64" validate:"min=1"`
	GraphCacheTTL  time.Duration `env:"GRAPH_CACHE_TTL" envDefault:"10m"`

	// EventSweepInterval is how often expired events are closed. Zero disables the sweep.
	EventSweepInterval time.Duration `env:"EVENT_SWEEP_INTERVAL" envDefault:"1m" validate:"min=0"`
	EventSweepTimeout  time.Duration `env:"EVENT_SWEEP_TIMEOUT" envDefault:"30s"`
	WorkerCount        int           `env:"WORKER_COUNT" envDefault:"2" validate:"min=1"`
	WorkerQueueSize    int           `env:"WORKER_QUEUE_SIZE" envDefault:"16" validate:"min=1"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether source locations should be logged.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
