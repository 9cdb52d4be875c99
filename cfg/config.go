package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type FlightAPIConfig struct {
	BaseURL        string
	SecretCode     string
	APIKey         string
	TimeoutSeconds int
	RatePerSecond  float64
}

// PostgresConfig is optional. An empty Host disables the search audit log.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ObservabilityConfig is optional. An empty OTLPEndpoint disables export.
type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
}

type Config struct {
	AppEnv                 string
	AppPort                string
	FlightAPI              FlightAPIConfig
	RedisConfig            RedisConfig
	Postgres               PostgresConfig
	Observability          ObservabilityConfig
	SearchRetentionMinutes int
	SnowflakeNodeID        int64
}

func Load() (*Config, error) {
	var errs []error

	// a missing .env is fine, the environment may already be populated
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := envOr("APP_PORT", "8080")

	baseURL := mustEnv("FLIGHT_API_BASE_URL", &errs)
	secretCode := mustEnv("FLIGHT_API_SECRET_CODE", &errs)
	apiKey := mustEnv("FLIGHT_API_KEY", &errs)
	timeoutSeconds := intEnv("FLIGHT_API_TIMEOUT_SECONDS", 30, &errs)
	if timeoutSeconds == 0 {
		errs = append(errs, errors.New("invalid env: FLIGHT_API_TIMEOUT_SECONDS must be greater than zero"))
	}
	ratePerSecond := floatEnv("FLIGHT_API_RATE_PER_SECOND", 5, &errs)

	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := os.Getenv("REDIS_PASSWORD")

	retention := intEnv("SEARCH_RETENTION_MINUTES", 30, &errs)
	nodeID := intEnv("SNOWFLAKE_NODE_ID", 1, &errs)

	postgres := PostgresConfig{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     envOr("POSTGRES_PORT", "5432"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  envOr("POSTGRES_SSLMODE", "disable"),
	}
	if postgres.Host != "" {
		postgres.User = mustEnv("POSTGRES_USER", &errs)
		postgres.DBName = mustEnv("POSTGRES_DB", &errs)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		FlightAPI: FlightAPIConfig{
			BaseURL:        baseURL,
			SecretCode:     secretCode,
			APIKey:         apiKey,
			TimeoutSeconds: timeoutSeconds,
			RatePerSecond:  ratePerSecond,
		},
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		Postgres: postgres,
		Observability: ObservabilityConfig{
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName:  envOr("OTEL_SERVICE_NAME", "flightdesk"),
		},
		SearchRetentionMinutes: retention,
		SnowflakeNodeID:        int64(nodeID),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64, errs *[]error) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return f
}
