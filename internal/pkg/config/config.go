package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional providers (SendGrid, Twilio, Redis) are disabled when their key is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Notify    NotifyConfig
	Worker    WorkerConfig
	Scheduler SchedulerConfig
	Booking   BookingConfig
	Tracing   TracingConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" required:"true"`
	SiteURL string `envconfig:"SITE_URL" default:"http://localhost:3000"`

	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Accra"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`

	// AutoMigrate applies embedded migrations when the API starts.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"GMT"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer string        `envconfig:"JWT_ISSUER" default:""`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`

	// Leeway absorbs clock drift between this API and the identity service.
	Leeway time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:""`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	ProgressTTL time.Duration `envconfig:"REDIS_PROGRESS_TTL" default:"30s"`
}

type NotifyConfig struct {
	FromEmail        string        `envconfig:"NOTIFY_FROM_EMAIL" default:"no-reply@cargoghana.com"`
	FromName         string        `envconfig:"NOTIFY_FROM_NAME" default:"Cargo Ghana"`
	AdminEmail       string        `envconfig:"ADMIN_EMAIL" default:"admin@cargoghana.com"`
	AdminWhatsApp    string        `envconfig:"ADMIN_WHATSAPP" default:""`
	SendGridAPIKey   string        `envconfig:"SENDGRID_API_KEY" default:""`
	SendGridBaseURL  string        `envconfig:"SENDGRID_BASE_URL" default:"https://api.sendgrid.com"`
	TwilioAccountSID string        `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	TwilioAuthToken  string        `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	TwilioWhatsApp   string        `envconfig:"TWILIO_WHATSAPP_NUMBER" default:""`
	TwilioBaseURL    string        `envconfig:"TWILIO_BASE_URL" default:"https://api.twilio.com"`
	HTTPTimeout      time.Duration `envconfig:"NOTIFY_HTTP_TIMEOUT" default:"15s"`
	HTTPMaxRetries   int           `envconfig:"NOTIFY_HTTP_MAX_RETRIES" default:"2"`
}

type WorkerConfig struct {
	Enabled      bool          `envconfig:"WORKER_ENABLED" default:"true"`
	PollInterval time.Duration `envconfig:"WORKER_POLL_INTERVAL" default:"2s"`
	MaxAttempts  int           `envconfig:"WORKER_MAX_ATTEMPTS" default:"4"`
	RetryDelay   time.Duration `envconfig:"WORKER_RETRY_DELAY" default:"60s"`
}

type SchedulerConfig struct {
	Enabled bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	Tick    time.Duration `envconfig:"SCHEDULER_TICK" default:"30s"`
}

type BookingConfig struct {
	TimeZone       string `envconfig:"BOOKING_TIMEZONE" default:"Africa/Accra"`
	MinAdvanceDays int    `envconfig:"BOOKING_MIN_ADVANCE_DAYS" default:"1"`
	MaxAdvanceDays int    `envconfig:"BOOKING_MAX_ADVANCE_DAYS" default:"30"`
}

type TracingConfig struct {
	Enabled     bool              `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName string            `envconfig:"OTEL_SERVICE_NAME" default:"cargo-consolidation"`
	Environment string            `envconfig:"OTEL_ENVIRONMENT" default:"local"`
	Endpoint    string            `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:""`
	Headers     map[string]string `envconfig:"OTEL_EXPORTER_OTLP_HEADERS" default:""`
	Insecure    bool              `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"false"`
	SampleRatio float64           `envconfig:"OTEL_SAMPLER_RATIO" default:"0.1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environments inject variables directly
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889", // Test port
			SiteURL: "http://localhost:3000",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret-key-for-cargo-consolidation",
			TTL:    time.Hour,
		},
		Redis: RedisConfig{
			ProgressTTL: 30 * time.Second,
		},
		Notify: NotifyConfig{
			FromEmail:      "no-reply@example.com",
			FromName:       "Cargo Test",
			AdminEmail:     "admin@example.com",
			HTTPTimeout:    5 * time.Second,
			HTTPMaxRetries: 0,
		},
		Worker: WorkerConfig{
			Enabled:      false,
			PollInterval: 100 * time.Millisecond,
			MaxAttempts:  4,
			RetryDelay:   time.Minute,
		},
		Scheduler: SchedulerConfig{
			Enabled: false,
			Tick:    time.Second,
		},
		Booking: BookingConfig{
			TimeZone:       "UTC",
			MinAdvanceDays: 1,
			MaxAdvanceDays: 30,
		},
	}
}
