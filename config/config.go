package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type MongoConfig struct {
	URI         string
	Database    string
	Timeout     time.Duration
	Collections Collections
}

type Collections struct {
	Users      string
	Properties string
	Inquiries  string
	Favorites  string
	Blogs      string
}

type JWTConfig struct {
	Secret       string
	Expiry       time.Duration
	CookieDomain string
	CookieSecure bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type RateLimitConfig struct {
	Backend     string
	Max         int
	Window      time.Duration
	MaxKeys     int64
	MinFillTime time.Duration
	MaxFormAge  time.Duration
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type AMQPConfig struct {
	URL      string
	Exchange string
}

type LogConfig struct {
	Level  string
	Format string
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type SeedConfig struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	AdminPhone    string
}

type AppConfig struct {
	AppName     string
	Port        string
	StoreDriver string
	CORSOrigins []string
	Mongo       MongoConfig
	JWT         JWTConfig
	Redis       RedisConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
	Cloudinary  CloudinaryConfig
	AMQP        AMQPConfig
	Log         LogConfig
	FluentBit   FluentBitConfig
	Seed        SeedConfig
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. A missing .env file is not an error.
func Load(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath...)
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "egharbari-api")
	cfg.Port = getEnvAsString("PORT", "8080")
	cfg.StoreDriver = strings.ToLower(getEnvAsString("STORE_DRIVER", "mongo"))
	cfg.CORSOrigins = getEnvAsList("CORS_ORIGINS", []string{"*"})

	cfg.Mongo.URI = os.Getenv("MONGODB_URI")
	if cfg.Mongo.URI == "" && cfg.StoreDriver == "mongo" {
		return nil, fmt.Errorf("MONGODB_URI environment variable is required")
	}
	cfg.Mongo.Database = getEnvAsString("MONGODB_DATABASE", "egharbari")
	cfg.Mongo.Timeout = getEnvAsDuration("DB_TIMEOUT", 10*time.Second)
	cfg.Mongo.Collections = Collections{
		Users:      getEnvAsString("MONGODB_COLLECTION_USERS", "users"),
		Properties: getEnvAsString("MONGODB_COLLECTION_PROPERTIES", "properties"),
		Inquiries:  getEnvAsString("MONGODB_COLLECTION_INQUIRIES", "inquiries"),
		Favorites:  getEnvAsString("MONGODB_COLLECTION_FAVORITES", "favorites"),
		Blogs:      getEnvAsString("MONGODB_COLLECTION_BLOGS", "blogs"),
	}

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	cfg.JWT.Expiry = time.Duration(getEnvAsInt("JWT_EXPIRY_HOURS", 24*7)) * time.Hour
	cfg.JWT.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	cfg.JWT.CookieSecure = getEnvAsBool("COOKIE_SECURE", true)

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	cfg.Cache.Enabled = getEnvAsBool("CACHE_ENABLED", cfg.Redis.Addr != "")
	cfg.Cache.TTL = getEnvAsDuration("CACHE_TTL", 5*time.Minute)
	if cfg.Cache.Enabled && cfg.Redis.Addr == "" {
		log.Println("WARNING: CACHE_ENABLED is true, but REDIS_ADDR is not set. Disabling cache.")
		cfg.Cache.Enabled = false
	}

	cfg.RateLimit.Backend = strings.ToLower(getEnvAsString("RATE_LIMIT_BACKEND", "memory"))
	cfg.RateLimit.Max = getEnvAsInt("RATE_LIMIT_MAX", 3)
	cfg.RateLimit.Window = getEnvAsDuration("RATE_LIMIT_WINDOW", time.Hour)
	cfg.RateLimit.MaxKeys = int64(getEnvAsInt("RATE_LIMIT_MAX_KEYS", 10000))
	cfg.RateLimit.MinFillTime = getEnvAsDuration("FORM_MIN_FILL_TIME", 3*time.Second)
	cfg.RateLimit.MaxFormAge = getEnvAsDuration("FORM_MAX_AGE", time.Hour)
	if cfg.RateLimit.Backend == "redis" && cfg.Redis.Addr == "" {
		log.Println("WARNING: RATE_LIMIT_BACKEND is redis, but REDIS_ADDR is not set. Falling back to memory.")
		cfg.RateLimit.Backend = "memory"
	}

	cfg.Cloudinary.CloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	cfg.Cloudinary.APIKey = os.Getenv("CLOUDINARY_API_KEY")
	cfg.Cloudinary.APISecret = os.Getenv("CLOUDINARY_API_SECRET")
	cfg.Cloudinary.Folder = getEnvAsString("CLOUDINARY_FOLDER", "egharbari")

	cfg.AMQP.URL = os.Getenv("AMQP_URL")
	cfg.AMQP.Exchange = getEnvAsString("AMQP_EXCHANGE", "egharbari.events")

	cfg.Log.Level = getEnvAsString("LOG_LEVEL", "info")
	cfg.Log.Format = strings.ToLower(getEnvAsString("LOG_FORMAT", "text"))

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.Seed.AdminName = getEnvAsString("SEED_ADMIN_NAME", "Administrator")
	cfg.Seed.AdminEmail = strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	cfg.Seed.AdminPassword = os.Getenv("SEED_ADMIN_PASSWORD")
	cfg.Seed.AdminPhone = os.Getenv("SEED_ADMIN_PHONE")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}
	var values []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
