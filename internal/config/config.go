package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

const (
	// MinStreamInterval and MaxStreamInterval bound the caller-facing
	// interval contract for the generation loop.
	MinStreamInterval = 500 * time.Millisecond
	MaxStreamInterval = 10 * time.Second
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	LogLevel    string `env:"LOG_LEVEL" default:"info"`
	LogFormat   string `env:"LOG_FORMAT" default:"text"`

	StreamInterval time.Duration `env:"STREAM_INTERVAL" default:"2s"`

	JobWorkers      int           `env:"JOB_WORKERS" default:"4"`
	JobQueueSize    int           `env:"JOB_QUEUE_SIZE" default:"16"`
	JobRetention    time.Duration `env:"JOB_RETENTION" default:"1h"`
	IngestChunkSize int           `env:"INGEST_CHUNK_SIZE" default:"500"`

	MaxWebSocketConnections int `env:"MAX_WEBSOCKET_CONNECTIONS" default:"1000"`
	UploadBurst             int `env:"UPLOAD_BURST" default:"5"`
	UploadRatePerMinute     int `env:"UPLOAD_RATE_PER_MINUTE" default:"10"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.StreamInterval < MinStreamInterval || cfg.StreamInterval > MaxStreamInterval {
		return fmt.Errorf("STREAM_INTERVAL must be between %s and %s, got %s", MinStreamInterval, MaxStreamInterval, cfg.StreamInterval)
	}
	if cfg.JobWorkers < 1 {
		return fmt.Errorf("JOB_WORKERS must be at least 1, got %d", cfg.JobWorkers)
	}
	if cfg.JobQueueSize < 1 {
		return fmt.Errorf("JOB_QUEUE_SIZE must be at least 1, got %d", cfg.JobQueueSize)
	}
	if cfg.IngestChunkSize < 1 {
		return fmt.Errorf("INGEST_CHUNK_SIZE must be at least 1, got %d", cfg.IngestChunkSize)
	}
	if cfg.MaxWebSocketConnections < 1 {
		return fmt.Errorf("MAX_WEBSOCKET_CONNECTIONS must be at least 1, got %d", cfg.MaxWebSocketConnections)
	}
	return nil
}
