package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (capture limits, sweep cadence, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Capture CaptureConfig
	Sweep   SweepConfig
	Queue   QueueConfig
	Export  ExportConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Public base used to build capture URLs in API responses.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// CaptureConfig bounds what an endpoint may be created with and what the
// capture path will accept.
type CaptureConfig struct {
	DefaultExpiry        time.Duration `envconfig:"CAPTURE_DEFAULT_EXPIRY" default:"60m"`
	DefaultQuota         int           `envconfig:"CAPTURE_DEFAULT_QUOTA" default:"500"`
	MaxQuota             int           `envconfig:"CAPTURE_MAX_QUOTA" default:"10000"`
	DefaultRetentionDays int           `envconfig:"CAPTURE_DEFAULT_RETENTION_DAYS" default:"7"`
	MaxRetentionDays     int           `envconfig:"CAPTURE_MAX_RETENTION_DAYS" default:"365"`
	MaxBodyBytes         int64         `envconfig:"CAPTURE_MAX_BODY_BYTES" default:"10485760"`
}

type SweepConfig struct {
	Enabled  bool          `envconfig:"SWEEP_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1h"`
}

type QueueConfig struct {
	Workers    int `envconfig:"QUEUE_WORKERS" default:"4"`
	BufferSize int `envconfig:"QUEUE_BUFFER_SIZE" default:"256"`
	MaxRetries int `envconfig:"QUEUE_MAX_RETRIES" default:"3"`
}

type ExportConfig struct {
	Dir string `envconfig:"EXPORT_DIR" default:"/var/tmp/hooklens/exports"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
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
			BaseURL: "http://localhost:8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeZoneOffset: 0,
			TimeFormat:     "2006-01-02 15:04:05.000",
		},
		Capture: CaptureConfig{
			DefaultExpiry:        60 * time.Minute,
			DefaultQuota:         500,
			MaxQuota:             10000,
			DefaultRetentionDays: 7,
			MaxRetentionDays:     365,
			MaxBodyBytes:         10 << 20,
		},
		Sweep: SweepConfig{
			Enabled:  false, // Tests trigger sweeps explicitly
			Interval: time.Hour,
		},
		Queue: QueueConfig{
			Workers:    2,
			BufferSize: 32,
			MaxRetries: 3,
		},
		Export: ExportConfig{
			Dir: "/tmp/hooklens-test-exports",
		},
	}
}
