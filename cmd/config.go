package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/jobs"
)

const (
	defaultHTTPPort      = "8080"
	defaultStatsCacheTTL = time.Minute
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisURL enables the courier stats cache when set.
	RedisURL string
	// StatsCacheTTL bounds how long a stats entry can outlive a concurrent invalidation.
	StatsCacheTTL time.Duration

	PackingStrategy  services.Strategy
	KnapsackMaxCells int

	// AuditSchedule is a cron expression with seconds. Empty disables the audit job.
	AuditSchedule string
}

// LookupFunc reads one configuration key, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadConfig reads the configuration through lookup. Unset keys take their defaults;
// malformed numbers, durations or strategies are reported together.
func LoadConfig(lookup LookupFunc) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:      get("HTTP_PORT", defaultHTTPPort),
		DBHost:        get("DB_HOST", "localhost"),
		DBPort:        get("DB_PORT", "5432"),
		DBUser:        get("DB_USER", ""),
		DBPassword:    get("DB_PASSWORD", ""),
		DBName:        get("DB_NAME", ""),
		DBSslMode:     get("DB_SSLMODE", "disable"),
		RedisURL:      get("REDIS_URL", ""),
		AuditSchedule: get("AUDIT_SCHEDULE", jobs.DefaultAuditSchedule),
	}

	var ttlErr, strategyErr, cellsErr error
	cfg.StatsCacheTTL, ttlErr = time.ParseDuration(get("STATS_CACHE_TTL", defaultStatsCacheTTL.String()))
	if ttlErr == nil && cfg.StatsCacheTTL <= 0 {
		ttlErr = fmt.Errorf("%s is not positive", cfg.StatsCacheTTL)
	}
	if ttlErr != nil {
		ttlErr = fmt.Errorf("STATS_CACHE_TTL: %w", ttlErr)
	}

	cfg.PackingStrategy, strategyErr = services.ParseStrategy(get("PACKING_STRATEGY", string(services.StrategyGreedy)))
	if strategyErr != nil {
		strategyErr = fmt.Errorf("PACKING_STRATEGY: %w", strategyErr)
	}

	cfg.KnapsackMaxCells, cellsErr = strconv.Atoi(get("KNAPSACK_MAX_CELLS", strconv.Itoa(services.DefaultKnapsackMaxCells)))
	if cellsErr == nil && cfg.KnapsackMaxCells <= 0 {
		cellsErr = fmt.Errorf("%d is not greater than 0", cfg.KnapsackMaxCells)
	}
	if cellsErr != nil {
		cellsErr = fmt.Errorf("KNAPSACK_MAX_CELLS: %w", cellsErr)
	}

	if err := errors.Join(ttlErr, strategyErr, cellsErr); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
