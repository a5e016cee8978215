package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// Store
	StoreDriver string
	SQLitePath  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret       string
	JWTAccessExpiry time.Duration

	// AI Providers
	GLMAPIKey      string
	GLMAPIURL      string
	GLMVisionModel string

	DeepSeekAPIKey string
	DeepSeekAPIURL string
	DeepSeekModel  string

	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string

	AITimeout time.Duration

	// Weather
	OpenWeatherAPIKey string
	OpenWeatherAPIURL string
	WeatherTimeout    time.Duration
	DefaultLocation   string

	// Cache and events (optional)
	RedisURL        string
	WeatherCacheTTL time.Duration
	RabbitMQURL     string
	EventsQueue     string

	// Server
	Port        string
	CORSOrigins string
	AppEnv      string
	SentryDSN   string

	// Logging
	LogLevel         string
	LogRetentionDays int

	// Demo data
	SeedSampleData   bool
	SeedUserPassword string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		SQLitePath:  v.GetString("SQLITE_PATH"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSLMODE"),

		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTAccessExpiry: duration(v, "JWT_ACCESS_EXPIRY", 24*time.Hour),

		GLMAPIKey:      v.GetString("GLM_API_KEY"),
		GLMAPIURL:      v.GetString("GLM_API_URL"),
		GLMVisionModel: v.GetString("GLM_VISION_MODEL"),

		DeepSeekAPIKey: v.GetString("DEEPSEEK_API_KEY"),
		DeepSeekAPIURL: v.GetString("DEEPSEEK_API_URL"),
		DeepSeekModel:  v.GetString("DEEPSEEK_MODEL"),

		OpenAIAPIKey: v.GetString("OPENAI_API_KEY"),
		OpenAIAPIURL: v.GetString("OPENAI_API_URL"),
		OpenAIModel:  v.GetString("OPENAI_MODEL"),

		AITimeout: duration(v, "AI_TIMEOUT", 60*time.Second),

		OpenWeatherAPIKey: v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherAPIURL: strings.TrimRight(v.GetString("OPENWEATHER_API_URL"), "/"),
		WeatherTimeout:    duration(v, "WEATHER_TIMEOUT", 10*time.Second),
		DefaultLocation:   v.GetString("DEFAULT_LOCATION"),

		RedisURL:        v.GetString("REDIS_URL"),
		WeatherCacheTTL: duration(v, "WEATHER_CACHE_TTL", 10*time.Minute),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		EventsQueue:     v.GetString("EVENTS_QUEUE"),

		Port:        v.GetString("PORT"),
		CORSOrigins: v.GetString("CORS_ORIGINS"),
		AppEnv:      v.GetString("APP_ENV"),
		SentryDSN:   v.GetString("SENTRY_DSN"),

		LogLevel:         v.GetString("LOG_LEVEL"),
		LogRetentionDays: v.GetInt("LOG_RETENTION_DAYS"),

		SeedSampleData:   v.GetBool("SEED_SAMPLE_DATA"),
		SeedUserPassword: v.GetString("SEED_USER_PASSWORD"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("SQLITE_PATH", "wardrobe.db")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "wardrobe_db")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ACCESS_EXPIRY", "24h")

	v.SetDefault("GLM_API_KEY", "")
	v.SetDefault("GLM_API_URL", "https://api.z.ai/api/paas/v4/chat/completions")
	v.SetDefault("GLM_VISION_MODEL", "glm-4v-plus")
	v.SetDefault("DEEPSEEK_API_KEY", "")
	v.SetDefault("DEEPSEEK_API_URL", "https://api.deepseek.com/v1/chat/completions")
	v.SetDefault("DEEPSEEK_MODEL", "deepseek-chat")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_API_URL", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("AI_TIMEOUT", "60s")

	v.SetDefault("OPENWEATHER_API_KEY", "")
	v.SetDefault("OPENWEATHER_API_URL", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("WEATHER_TIMEOUT", "10s")
	v.SetDefault("DEFAULT_LOCATION", "New York")

	v.SetDefault("REDIS_URL", "")
	v.SetDefault("WEATHER_CACHE_TTL", "10m")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EVENTS_QUEUE", "wardrobe_events")

	v.SetDefault("PORT", "8080")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SENTRY_DSN", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_RETENTION_DAYS", 30)

	v.SetDefault("SEED_SAMPLE_DATA", false)
	v.SetDefault("SEED_USER_PASSWORD", "")
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET environment variable is required"))
	}
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.DBPassword == "" {
			errs = append(errs, errors.New("DB_PASSWORD environment variable is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	if c.SeedSampleData && len(c.SeedUserPassword) < 8 {
		errs = append(errs, errors.New("SEED_USER_PASSWORD must be at least 8 characters when SEED_SAMPLE_DATA is set"))
	}
	return errors.Join(errs...)
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func duration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
