package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Responder Config
	ResponderName string   `env:"RESPONDER_NAME" envDefault:"Responder"`
	ResolvePoints int      `env:"RESOLVE_POINTS" envDefault:"15"`
	HelperNames   []string `env:"HELPER_NAMES" envDefault:"Aarav,Neha,Riya,Vikram"`

	// Drill Config
	DrillBatchSize int   `env:"DRILL_BATCH_SIZE" envDefault:"50"`
	DrillSeed      int64 `env:"DRILL_SEED" envDefault:"0"`

	// Geo Config
	GeoSeed uint64 `env:"GEO_SEED" envDefault:"0"`

	// Redis Config, пустой адрес отключает очередь событий
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Журнал событий в PostgreSQL, пустой URL отключает журнал
	DatabaseURL string `env:"DATABASE_URL"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

var defaultHelperNames = []string{"Aarav", "Neha", "Riya", "Vikram"}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ResponderName:     getEnv("RESPONDER_NAME", "Responder"),
		ResolvePoints:     getEnvAsInt("RESOLVE_POINTS", 15),
		HelperNames:       getEnvAsList("HELPER_NAMES", defaultHelperNames),
		DrillBatchSize:    getEnvAsInt("DRILL_BATCH_SIZE", 50),
		DrillSeed:         getEnvAsInt64("DRILL_SEED", 0),
		GeoSeed:           uint64(getEnvAsInt64("GEO_SEED", 0)),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		APIKeys:           getEnvAsList("API_KEYS", nil),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, без которых сервис не может работать
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return errors.New("HTTP_PORT must not be empty")
	}
	if c.ResolvePoints <= 0 {
		return fmt.Errorf("RESOLVE_POINTS must be positive, got %d", c.ResolvePoints)
	}
	if c.DrillBatchSize <= 0 {
		return fmt.Errorf("DRILL_BATCH_SIZE must be positive, got %d", c.DrillBatchSize)
	}
	if len(c.HelperNames) == 0 {
		return errors.New("HELPER_NAMES must contain at least one helper")
	}
	if c.WebhookMaxRetries < 1 {
		c.WebhookMaxRetries = 1
	}
	return nil
}

// EventsEnabled сообщает, настроена ли очередь событий в Redis
func (c *Config) EventsEnabled() bool {
	return c.RedisAddr != ""
}

// JournalEnabled сообщает, настроен ли журнал событий в PostgreSQL
func (c *Config) JournalEnabled() bool {
	return c.DatabaseURL != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
