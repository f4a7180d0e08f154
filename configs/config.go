package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	SERVER_PORT                   string
	SERVICE_NAME                  string
	LOG_LEVEL                     string
	OTEL_URL                      string
	WORKER_POOL                   string
	TRUSTSCORE_URL                string
	TRUSTSCORE_X_API_KEY          string
	TRUSTSCORE_CA_CERTIFICATE     string
	TRUSTSCORE_CA_CERT_REQUIRED   bool
	TRUSTSCORE_EMBEDDED           bool
	AUTH_REQUIRED                 bool
	TIMEOUT_IN_SECONDS            int
	SESSION_COOKIE_NAME           string
	SESSION_TTL_MINUTES           int
	DISBURSEMENT_DELAY_MS         int
	ACCEPTANCE_IN_FLIGHT_TTL_SECS int
	TRANSACTION_REF_PREFIX        string
	KAFKA_ENABLED                 bool
	KAFKA_SERVER                  string
	KAFKA_SECURITY_PROTOCOL       string
	KAFKA_SASL_MECHANISM          string
	KAFKA_SASL_USERNAME           string
	KAFKA_SASL_PASSWORD           string
	KAFKA_SESSION_TIMEOUT_MS      int
	KAFKA_CLIENT_ID               string
	KAFKA_TOPIC                   string
	REDIS_ADDR                    string
	REDIS_PASSWORD                string
	REDIS_DB                      int
	REDIS_ENABLE_TLS              bool
	REDIS_CONNECT_TIMEOUT_SECONDS int
	REDIS_CERT_CONTENT            string
	PROJECT_ID                    string
	PUBSUB_TOPIC                  string
	PUBSUB_ENABLED                bool
	SMS_SOURCE_ADDRESS            string
	ACCEPTANCE_CONFIRMED_PATTERN  string
)

type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// PubSubConfig represents the Pub/Sub configuration
type PubSubConfig struct {
	ProjectID string `yaml:"project_id"`
	Topic     string `yaml:"topic"`
	Enabled   bool   `yaml:"enabled"`
}

// LoadEnv loads the environment variables from a .env file
func LoadEnv() error {
	err := godotenv.Load("./../.env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	LoadEnvValues()

	return nil
}

func LoadEnvValues() {
	SERVER_PORT = GetEnv("SERVER_PORT", "8080")
	SERVICE_NAME = GetEnv("SERVICE_NAME", "momomoreflow")
	LOG_LEVEL = GetEnv("LOG_LEVEL", "INFO")
	OTEL_URL = GetEnv("OTEL_URL", "")
	WORKER_POOL = GetEnv("WORKER_POOL", "5")

	TRUSTSCORE_URL = GetEnv("TRUSTSCORE_URL", "http://localhost:8080")
	TRUSTSCORE_X_API_KEY = GetEnv("TRUSTSCORE_X_API_KEY", "")
	TRUSTSCORE_CA_CERTIFICATE = GetEnv("TRUSTSCORE_CA_CERTIFICATE", "")
	TRUSTSCORE_CA_CERT_REQUIRED, _ = strconv.ParseBool(GetEnv("TRUSTSCORE_CA_CERT_REQUIRED", "false"))
	TRUSTSCORE_EMBEDDED, _ = strconv.ParseBool(GetEnv("TRUSTSCORE_EMBEDDED", "true"))
	AUTH_REQUIRED, _ = strconv.ParseBool(GetEnv("AUTH_REQUIRED", "false"))
	TIMEOUT_IN_SECONDS, _ = strconv.Atoi(GetEnv("TIMEOUT_IN_SECONDS", "20"))

	SESSION_COOKIE_NAME = GetEnv("SESSION_COOKIE_NAME", "momomore_session")
	SESSION_TTL_MINUTES, _ = strconv.Atoi(GetEnv("SESSION_TTL_MINUTES", "30"))
	DISBURSEMENT_DELAY_MS, _ = strconv.Atoi(GetEnv("DISBURSEMENT_DELAY_MS", "3000"))
	ACCEPTANCE_IN_FLIGHT_TTL_SECS, _ = strconv.Atoi(GetEnv("ACCEPTANCE_IN_FLIGHT_TTL_SECS", "30"))
	TRANSACTION_REF_PREFIX = GetEnv("TRANSACTION_REF_PREFIX", "MOMO")

	KAFKA_ENABLED, _ = strconv.ParseBool(GetEnv("KAFKA_ENABLED", "false"))
	KAFKA_SERVER = GetEnv("KAFKA_SERVER", "")
	KAFKA_SECURITY_PROTOCOL = GetEnv("KAFKA_SECURITY_PROTOCOL", "")
	KAFKA_SASL_MECHANISM = GetEnv("KAFKA_SASL_MECHANISM", "")
	KAFKA_SASL_USERNAME = GetEnv("KAFKA_SASL_USERNAME", "")
	KAFKA_SASL_PASSWORD = GetEnv("KAFKA_SASL_PASSWORD", "")
	KAFKA_SESSION_TIMEOUT_MS, _ = strconv.Atoi(GetEnv("KAFKA_SESSION_TIMEOUT_MS", "45000"))
	KAFKA_CLIENT_ID = GetEnv("KAFKA_CLIENT_ID", "momomore-loan-flow")
	KAFKA_TOPIC = GetEnv("KAFKA_TOPIC", "momomore-acceptance-ledger")

	REDIS_ADDR = GetEnv("REDIS_ADDR", "localhost:6379")
	REDIS_PASSWORD = GetEnv("REDIS_PASSWORD", "")
	REDIS_DB, _ = strconv.Atoi(GetEnv("REDIS_DB", "0"))
	REDIS_ENABLE_TLS, _ = strconv.ParseBool(GetEnv("REDIS_ENABLE_TLS", "false"))
	REDIS_CONNECT_TIMEOUT_SECONDS, _ = strconv.Atoi(GetEnv("REDIS_CONNECT_TIMEOUT_SECONDS", "5"))
	REDIS_CERT_CONTENT = GetEnv("REDIS_CERT_CONTENT", "")

	PROJECT_ID = GetEnv("PROJECT_ID", "")
	PUBSUB_TOPIC = GetEnv("PUBSUB_TOPIC", "momomore-sms-notification-topic")
	PUBSUB_ENABLED, _ = strconv.ParseBool(GetEnv("PUBSUB_ENABLED", "false"))
	SMS_SOURCE_ADDRESS = GetEnv("SMS_SOURCE_ADDRESS", "MoMoMore")
	ACCEPTANCE_CONFIRMED_PATTERN = GetEnv("ACCEPTANCE_CONFIRMED_PATTERN", "70201")
}

// GetRedisConfig returns a RedisConfig struct populated from environment variables
func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:           REDIS_ADDR,
		Password:       REDIS_PASSWORD,
		DB:             REDIS_DB,
		EnableTLS:      REDIS_ENABLE_TLS,
		ConnectTimeout: time.Duration(REDIS_CONNECT_TIMEOUT_SECONDS) * time.Second,
		CertContent:    REDIS_CERT_CONTENT,
	}
}

// GetPubSubConfig returns a PubSubConfig struct populated from environment variables
func GetPubSubConfig() PubSubConfig {
	return PubSubConfig{
		ProjectID: PROJECT_ID,
		Topic:     PUBSUB_TOPIC,
		Enabled:   PUBSUB_ENABLED,
	}
}

// GetEnv fetches the value of an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}
