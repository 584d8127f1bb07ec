package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server       ServerConfig
	Snowflake    SnowflakeConfig
	Coordination CoordinationConfig
	RateLimit    RateLimitConfig
	Logging      LoggingConfig
}

type ServerConfig struct {
	Host        string
	GRPCPort    int
	GatewayPort int
	MetricsPort int
	HealthPort  int
	// AdvertiseHost is the hostname peers use to reach this process; it is
	// what gets written into the worker registry alongside the gRPC port.
	AdvertiseHost string
}

type SnowflakeConfig struct {
	// DatacenterID overrides the value stored under DatacenterIDPath when
	// non-negative.
	DatacenterID int64
	// WorkerID skips coordination-store allocation when non-negative.
	WorkerID           int64
	SanityCheckEnabled bool
	// StartupDelay is slept before the sanity check so a mass fleet restart
	// settles before peers start cross-checking each other.
	StartupDelay  time.Duration
	PeerTimeout   time.Duration
	SkewTolerance time.Duration
}

type CoordinationConfig struct {
	Endpoints        []string
	DialTimeout      time.Duration
	SessionTTL       time.Duration
	RegistryPath     string
	DatacenterIDPath string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond int
	Burst             int
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:          getEnv("SERVER_HOST", "0.0.0.0"),
			GRPCPort:      getEnvInt("GRPC_PORT", 7609),
			GatewayPort:   getEnvInt("GATEWAY_PORT", 8080),
			MetricsPort:   getEnvInt("METRICS_PORT", 9100),
			HealthPort:    getEnvInt("HEALTH_PORT", 8081),
			AdvertiseHost: getEnv("ADVERTISE_HOST", "localhost"),
		},
		Snowflake: SnowflakeConfig{
			DatacenterID:       getEnvInt64("SNOWFLAKE_DATACENTER_ID", -1),
			WorkerID:           getEnvInt64("SNOWFLAKE_WORKER_ID", -1),
			SanityCheckEnabled: getEnvBool("SANITY_CHECK_ENABLED", true),
			StartupDelay:       getEnvDuration("STARTUP_DELAY", 0),
			PeerTimeout:        getEnvDuration("PEER_TIMEOUT", 5*time.Second),
			SkewTolerance:      getEnvDuration("SKEW_TOLERANCE", 10*time.Second),
		},
		Coordination: CoordinationConfig{
			Endpoints:        getEnvList("ETCD_ENDPOINTS", []string{"localhost:2379"}),
			DialTimeout:      getEnvDuration("ETCD_DIAL_TIMEOUT", 5*time.Second),
			SessionTTL:       getEnvDuration("ETCD_SESSION_TTL", 10*time.Second),
			RegistryPath:     getEnv("REGISTRY_PATH", "/snowflaked/workers"),
			DatacenterIDPath: getEnv("DATACENTER_ID_PATH", "/snowflaked/datacenter-id"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getEnvBool("RATE_LIMIT_ENABLED", false),
			RequestsPerSecond: getEnvInt("RATE_LIMIT_REQUESTS_PER_SECOND", 100000),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 4096),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
