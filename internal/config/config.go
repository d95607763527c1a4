package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	GRPC     GRPCConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
	AI       AIConfig
	Mock     MockConfig
	LogLevel string
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Path     string // SQLite DSN; defaults to a shared in-memory database
	SeedFile string // optional YAML dataset replacing the embedded one
}

// GRPCConfig contains gRPC server settings.
type GRPCConfig struct {
	Address string // gRPC server listen address (e.g., ":50051")
}

// HTTPConfig contains portal HTTP server settings.
type HTTPConfig struct {
	Address        string
	AllowedOrigins []string
}

// AuthConfig contains authentication settings.
type AuthConfig struct {
	JWTSecret string // JWT signing secret
	TokenTTL  time.Duration
}

// AIConfig points the text client at an OpenAI-compatible endpoint.
// An empty APIKey disables outbound calls.
type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// MockConfig controls mock store behaviour.
type MockConfig struct {
	Latency bool // apply per-operation artificial delays
}

const (
	DefaultDBPath      = "file:cityops?mode=memory&cache=shared"
	DefaultAIBaseURL   = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultAIModel     = "gemini-2.5-flash"
	devJWTSecret       = "dev-secret-change-me"
	defaultTTLMinutes  = 720
	defaultCORSOrigins = "http://localhost:5173"
)

// Load loads configuration from environment variables with sensible defaults.
// JWT_SECRET is required.
func Load() (*Config, error) {
	cfg, err := load(getEnv("JWT_SECRET", ""))
	if err != nil {
		return nil, err
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set; required for production")
	}
	return cfg, nil
}

// LoadWithDefaults is like Load but uses a safe default for JWT_SECRET in development.
// WARNING: Only use in development! Use Load() in production.
func LoadWithDefaults() (*Config, error) {
	return load(getEnv("JWT_SECRET", devJWTSecret))
}

func load(secret string) (*Config, error) {
	ttl, err := getEnvInt("JWT_TTL_MINUTES", defaultTTLMinutes)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("JWT_TTL_MINUTES must be positive, got %d", ttl)
	}
	latency, err := getEnvBool("MOCK_LATENCY", true)
	if err != nil {
		return nil, err
	}
	return &Config{
		Database: DatabaseConfig{
			Path:     getEnv("DB_PATH", DefaultDBPath),
			SeedFile: getEnv("SEED_FILE", ""),
		},
		GRPC: GRPCConfig{
			Address: getEnv("GRPC_ADDRESS", ":50051"),
		},
		HTTP: HTTPConfig{
			Address:        getEnv("HTTP_ADDRESS", ":8080"),
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),
		},
		Auth: AuthConfig{
			JWTSecret: secret,
			TokenTTL:  time.Duration(ttl) * time.Minute,
		},
		AI: AIConfig{
			APIKey:  getEnv("AI_API_KEY", ""),
			BaseURL: getEnv("AI_BASE_URL", DefaultAIBaseURL),
			Model:   getEnv("AI_MODEL", DefaultAIModel),
		},
		Mock:     MockConfig{Latency: latency},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	if value, exists := os.LookupEnv(key); exists {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		return b, nil
	}
	return defaultVal, nil
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a string representation of the config (sensitive values are masked).
func (c *Config) String() string {
	ai := "disabled"
	if c.AI.APIKey != "" {
		ai = c.AI.Model + " (key masked)"
	}
	return fmt.Sprintf("Config{DB: %s, gRPC: %s, HTTP: %s, Auth: *** (masked) ***, AI: %s, MockLatency: %t}",
		c.Database.Path, c.GRPC.Address, c.HTTP.Address, ai, c.Mock.Latency)
}
