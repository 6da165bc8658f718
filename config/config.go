package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Dashboard behaviour.
	StatsCacheTTL    time.Duration `mapstructure:"STATS_CACHE_TTL"`
	DefaultPageLimit int           `mapstructure:"DEFAULT_PAGE_LIMIT"`
	MaxPageLimit     int           `mapstructure:"MAX_PAGE_LIMIT"`
	CompletionSweep  string        `mapstructure:"COMPLETION_SWEEP_SPEC"`

	// Request logging.
	LogBodyLimit int `mapstructure:"LOG_BODY_LIMIT"`

	// Comma separated list of allowed browser origins.
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`
}

var AppConfig Config

func LoadConfig() {
	// Values in .env become environment variables before viper reads them.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers the default value of every setting on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "eazywed")
	v.SetDefault("STATS_CACHE_TTL", "5m")
	v.SetDefault("DEFAULT_PAGE_LIMIT", 5)
	v.SetDefault("MAX_PAGE_LIMIT", 50)
	v.SetDefault("COMPLETION_SWEEP_SPEC", "@hourly")
	v.SetDefault("LOG_BODY_LIMIT", 1000)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
}

// AllowedOrigins splits CORSOrigins into trimmed, non-empty entries.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
