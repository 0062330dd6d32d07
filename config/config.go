package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the storefront service.
type Config struct {
	Port        string
	Environment string

	RedisURL string
	MongoURI string
	MongoDB  string

	CartTTL time.Duration

	KafkaBrokers  string
	CheckoutTopic string

	// WhatsApp checkout handoff
	WhatsAppNumber string

	// Totals policy
	CurrencyCode        string
	TaxRate             float64
	ShippingStandardFee float64
	ShippingReducedFee  float64

	// Image hosting
	PhotoBucket   string
	AWSRegion     string
	AWSEndpoint   string
	AWSAccessKey  string
	AWSSecretKey  string
	FallbackImage string
}

// Load reads configuration from the environment, falling back to defaults.
// A .env file is honored when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		RedisURL: getEnv("REDIS_URL", "redis://redis:6379"),
		MongoURI: getEnv("MONGO_URI", "mongodb://mongo:27017"),
		MongoDB:  getEnv("MONGO_DB", "fawaz_storefront"),

		CartTTL: getDurationEnv("CART_TTL", time.Hour*24*7),

		KafkaBrokers:  getEnv("KAFKA_BROKERS", ""),
		CheckoutTopic: getEnv("KAFKA_CHECKOUT_TOPIC", "checkout.requested"),

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "9647700000000"),

		CurrencyCode:        getEnv("CURRENCY_CODE", "IQD"),
		TaxRate:             getFloatEnv("TAX_RATE", 0),
		ShippingStandardFee: getFloatEnv("SHIPPING_STANDARD_FEE", 10000),
		ShippingReducedFee:  getFloatEnv("SHIPPING_REDUCED_FEE", 5000),

		PhotoBucket:   getEnv("PHOTO_BUCKET", "photo"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		AWSEndpoint:   getEnv("AWS_ENDPOINT", ""),
		AWSAccessKey:  getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		FallbackImage: getEnv("FALLBACK_IMAGE", "/default.png"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getFloatEnv(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}
