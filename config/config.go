package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	LogLevel      string
	AllowedOrigin string
	// Catalog seeding
	CatalogSize int
	CatalogSeed int64
	// Cache
	CacheProductTTL  time.Duration
	CacheCategoryTTL time.Duration
	// Sessions
	SessionCookieName string
	SessionTTL        time.Duration
	// Business Rules
	MaxCartQuantity int
	MaxPageSize     int
	DefaultPageSize int
	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int
}

func LoadConfig() *Config {
	// 1. Check if a specific config file is requested via env var
	configFile := os.Getenv("CONFIG_FILE")
	if configFile != "" {
		if err := godotenv.Load(configFile); err != nil {
			log.Printf("Warning: Failed to load config file '%s': %v", configFile, err)
		} else {
			log.Printf("Loaded configuration from %s", configFile)
		}
	} else {
		// 2. Default fallback: Try loading .env (standard local dev)
		// We don't error here because in pure docker/prod envs, .env might not exist,
		// and we rely on system env vars.
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading it, relying on system env vars")
		}
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		// Catalog: 305 products, fixed seed so restarts serve the same store
		CatalogSize: getIntEnv("CATALOG_SIZE", 305),
		CatalogSeed: getInt64Env("CATALOG_SEED", 1),

		// Cache defaults: 10m product listings, 30m category list
		CacheProductTTL:  getDurationEnv("CACHE_PRODUCT_TTL", 10*time.Minute),
		CacheCategoryTTL: getDurationEnv("CACHE_CATEGORY_TTL", 30*time.Minute),

		// Sessions: anonymous cookie, cart/wishlist expire with it
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "sid"),
		SessionTTL:        getDurationEnv("SESSION_TTL", 24*time.Hour),

		// Business rules: 1000 max cart quantity per line
		MaxCartQuantity: getIntEnv("MAX_CART_QUANTITY", 1000),
		MaxPageSize:     getIntEnv("MAX_PAGE_SIZE", 500),
		DefaultPageSize: getIntEnv("DEFAULT_PAGE_SIZE", 500),

		RateLimitRPS:   getFloatEnv("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getIntEnv("RATE_LIMIT_BURST", 100),
	}

	cfg.Validate()
	return cfg
}

func (c *Config) Validate() {
	if c.CatalogSize <= 0 {
		log.Fatal("CRITICAL: CATALOG_SIZE must be positive")
	}
	if c.DefaultPageSize > c.MaxPageSize {
		c.DefaultPageSize = c.MaxPageSize
	}
	if c.MaxCartQuantity < 1 {
		log.Fatal("CRITICAL: MAX_CART_QUANTITY must be at least 1")
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using fallback", key)
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("Invalid int for %s, using fallback", key)
	}
	return fallback
}

func getInt64Env(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
		log.Printf("Invalid int64 for %s, using fallback", key)
	}
	return fallback
}
