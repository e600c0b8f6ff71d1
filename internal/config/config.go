package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые хранилища кэша результатов
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config содержит конфигурацию сервиса расчета финансирования
type Config struct {
	Port             int
	MaxPropertyPrice float64
	MaxRate          float64
	MaxLoanTermYears int
	MaxRepayment     float64
	MaxCostRate      float64
	CacheBackend     string
	RedisAddr        string
	CacheTTL         time.Duration
	OTELEndpoint     string
	OTELServiceName  string
	LogLevel         string
	LogPretty        bool
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvInt("PORT", 8000),
		MaxPropertyPrice: getEnvFloat("MAX_PROPERTY_PRICE", 1e9),
		MaxRate:          getEnvFloat("MAX_RATE", 30),
		MaxLoanTermYears: getEnvInt("MAX_LOAN_TERM_YEARS", 50),
		MaxRepayment:     getEnvFloat("MAX_REPAYMENT", 1e8),
		MaxCostRate:      getEnvFloat("MAX_COST_RATE", 10),
		CacheBackend:     strings.ToLower(getEnvString("CACHE_BACKEND", CacheBackendMemory)),
		RedisAddr:        getEnvString("REDIS_ADDR", "localhost:6379"),
		CacheTTL:         getEnvDuration("CACHE_TTL", 10*time.Minute),
		OTELEndpoint:     getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:  getEnvString("OTEL_SERVICE_NAME", "mcp-financing-server"),
		LogLevel:         getEnvString("LOG_LEVEL", "info"),
		LogPretty:        getEnvBool("LOG_PRETTY", false),
	}

	switch cfg.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q, expected %s or %s",
			cfg.CacheBackend, CacheBackendMemory, CacheBackendRedis)
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
