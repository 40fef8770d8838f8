package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	JWT            JWTConfig
	Security       SecurityConfig
	Categorization CategorizationConfig
	Notification   NotificationConfig
	Cache          CacheConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// JWTConfig holds the verification side of token handling. Tokens are minted by the
// identity provider; only the public key is required here.
type JWTConfig struct {
	PublicKey  *rsa.PublicKey
	PrivateKey *rsa.PrivateKey
	Issuer     string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

// CategorizationConfig tunes the categorization chain and its AI stage
type CategorizationConfig struct {
	AIEnabled              bool
	AIEndpoint             string
	AIAPIKey               string
	AIModel                string
	AIConfidenceThreshold  float64
	AITimeout              time.Duration
	AIRequestsPerSecond    float64
	AIBurst                int
	AICacheTTL             time.Duration
	CircuitBreakerFailures int
	CircuitBreakerReset    time.Duration
	BatchWorkers           int
	BackfillInterval       time.Duration
	BackfillBatchSize      int
}

type NotificationConfig struct {
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

type CacheConfig struct {
	MaxEntries int
	TTL        time.Duration
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "budget_user"),
			Password:        getEnv("DB_PASSWORD", "budget_password"),
			Name:            getEnv("DB_NAME", "budget_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		JWT: JWTConfig{
			Issuer: getEnv("JWT_ISSUER", "budget-watch"),
		},
		Categorization: CategorizationConfig{
			AIEnabled:              getBoolEnv("AI_CLASSIFIER_ENABLED", false),
			AIEndpoint:             getEnv("AI_CLASSIFIER_ENDPOINT", "https://api.openai.com/v1/chat/completions"),
			AIAPIKey:               getEnv("AI_CLASSIFIER_API_KEY", ""),
			AIModel:                getEnv("AI_CLASSIFIER_MODEL", "gpt-4o-mini"),
			AIConfidenceThreshold:  getFloatEnv("AI_CONFIDENCE_THRESHOLD", 0.70),
			AITimeout:              getDurationEnv("AI_CLASSIFIER_TIMEOUT", 5*time.Second),
			AIRequestsPerSecond:    getFloatEnv("AI_REQUESTS_PER_SECOND", 2),
			AIBurst:                getIntEnv("AI_BURST", 4),
			AICacheTTL:             getDurationEnv("AI_CACHE_TTL", 24*time.Hour),
			CircuitBreakerFailures: getIntEnv("AI_CIRCUIT_BREAKER_FAILURES", 5),
			CircuitBreakerReset:    getDurationEnv("AI_CIRCUIT_BREAKER_RESET", 30*time.Second),
			BatchWorkers:           getIntEnv("CATEGORIZATION_BATCH_WORKERS", 8),
			BackfillInterval:       getDurationEnv("CATEGORIZATION_BACKFILL_INTERVAL", 5*time.Minute),
			BackfillBatchSize:      getIntEnv("CATEGORIZATION_BACKFILL_BATCH_SIZE", 200),
		},
		Notification: NotificationConfig{
			AMQPURL:      getEnv("AMQP_URL", ""),
			AMQPExchange: getEnv("AMQP_EXCHANGE", "budget-watch"),
			AMQPQueue:    getEnv("AMQP_ALERT_QUEUE", "budget-alerts"),
		},
		Cache: CacheConfig{
			MaxEntries: getIntEnv("ANALYTICS_CACHE_MAX_ENTRIES", 1000),
			TTL:        getDurationEnv("ANALYTICS_CACHE_TTL", 5*time.Minute),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var loadJWTKeysErr error
	config.JWT.PrivateKey, config.JWT.PublicKey, loadJWTKeysErr = config.loadJWTKeys()
	if loadJWTKeysErr != nil {
		slog.Error("failed to load JWT keys", "error", loadJWTKeysErr)
		os.Exit(1)
	}

	return config
}

// Validate rejects settings the categorization pipeline cannot run with
func (c *Config) Validate() error {
	cat := c.Categorization
	if cat.AIConfidenceThreshold <= 0 || cat.AIConfidenceThreshold > 1 {
		return fmt.Errorf("AI_CONFIDENCE_THRESHOLD must be in (0, 1], got %v", cat.AIConfidenceThreshold)
	}
	if cat.BatchWorkers <= 0 {
		return fmt.Errorf("CATEGORIZATION_BATCH_WORKERS must be positive, got %d", cat.BatchWorkers)
	}
	if cat.BackfillBatchSize <= 0 {
		return fmt.Errorf("CATEGORIZATION_BACKFILL_BATCH_SIZE must be positive, got %d", cat.BackfillBatchSize)
	}
	if cat.AIEnabled && cat.AIAPIKey == "" {
		return errors.New("AI_CLASSIFIER_API_KEY is required when AI_CLASSIFIER_ENABLED is true")
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("ANALYTICS_CACHE_MAX_ENTRIES must be positive, got %d", c.Cache.MaxEntries)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadJWTKeys resolves the RS256 keys used to verify bearer tokens.
// JWT_PUBLIC_KEY is enough in production. Outside production a throwaway pair is
// generated when nothing is configured, so local tokens can be minted for testing.
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	publicKeyB64 := os.Getenv("JWT_PUBLIC_KEY")
	privateKeyB64 := os.Getenv("JWT_PRIVATE_KEY")

	if publicKeyB64 != "" {
		slog.Info("loading JWT public key from environment")
		publicKey, err := decodePublicKey(publicKeyB64)
		if err != nil {
			return nil, nil, err
		}

		var privateKey *rsa.PrivateKey
		if privateKeyB64 != "" {
			privateKey, err = decodePrivateKey(privateKeyB64)
			if err != nil {
				return nil, nil, err
			}
		}
		return privateKey, publicKey, nil
	}

	if c.IsProduction() {
		return nil, nil, fmt.Errorf("JWT_PUBLIC_KEY environment variable must be set in production environments")
	}

	slog.Warn("JWT_PUBLIC_KEY not set, generating an ephemeral RSA keypair")
	return GenerateRSAKeyPair()
}

func decodePublicKey(publicKeyB64 string) (*rsa.PublicKey, error) {
	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return publicKey, nil
}

func decodePrivateKey(privateKeyB64 string) (*rsa.PrivateKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return privateKey, nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

// loadRSAPrivateKey loads an RSA private key from PEM format
func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return rsaKey, nil
}

// loadRSAPublicKey loads an RSA public key from PEM format
func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}
	return rsaPublicKey, nil
}
