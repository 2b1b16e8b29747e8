package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Public URLs
	ClientURL     string `mapstructure:"CLIENT_URL"`
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`

	// Uploads
	UploadDir      string `mapstructure:"UPLOAD_DIR"`
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"`

	// Embedding service
	EmbeddingEnabled bool          `mapstructure:"EMBEDDING_ENABLED"`
	EmbeddingURL     string        `mapstructure:"EMBEDDING_URL"`
	EmbeddingTimeout time.Duration `mapstructure:"EMBEDDING_TIMEOUT"`

	// Generation / vision model
	LLMAPIKey   string        `mapstructure:"LLM_API_KEY"`
	LLMBaseURL  string        `mapstructure:"LLM_BASE_URL"`
	LLMModel    string        `mapstructure:"LLM_MODEL"`
	LLMTimeout  time.Duration `mapstructure:"LLM_TIMEOUT"`
	PromptsFile string        `mapstructure:"PROMPTS_FILE"`

	// Retrieval
	SearchCandidatePool int `mapstructure:"SEARCH_CANDIDATE_POOL"`
	SearchLimit         int `mapstructure:"SEARCH_LIMIT"`

	// Share links
	ShareLinkTTL           time.Duration `mapstructure:"SHARE_LINK_TTL"`
	ShareLinkPurgeInterval time.Duration `mapstructure:"SHARE_LINK_PURGE_INTERVAL"`

	// Rate limiting for model-backed endpoints
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()
	bindAliases()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "big_brain")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})

	viper.SetDefault("CLIENT_URL", "http://localhost:5173")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:7008")

	viper.SetDefault("UPLOAD_DIR", "./uploads")
	viper.SetDefault("MAX_UPLOAD_BYTES", 10<<20)

	// Embedding defaults (all-MiniLM-L6-v2 served by text-embeddings-inference)
	viper.SetDefault("EMBEDDING_ENABLED", false)
	viper.SetDefault("EMBEDDING_URL", "http://localhost:8081")
	viper.SetDefault("EMBEDDING_TIMEOUT", 30*time.Second)

	// Gemini defaults
	viper.SetDefault("LLM_API_KEY", "")
	viper.SetDefault("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models")
	viper.SetDefault("LLM_MODEL", "gemini-2.0-flash")
	viper.SetDefault("LLM_TIMEOUT", 30*time.Second)
	viper.SetDefault("PROMPTS_FILE", "")

	viper.SetDefault("SEARCH_CANDIDATE_POOL", 1024)
	viper.SetDefault("SEARCH_LIMIT", 5)

	viper.SetDefault("SHARE_LINK_TTL", 24*time.Hour)
	viper.SetDefault("SHARE_LINK_PURGE_INTERVAL", time.Hour)

	viper.SetDefault("RATE_LIMIT_RPS", 1.0)
	viper.SetDefault("RATE_LIMIT_BURST", 5)
}

// bindAliases keeps the environment variable names used by older deployments working.
func bindAliases() {
	_ = viper.BindEnv("LLM_API_KEY", "LLM_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY")
	if viper.GetString("INITIALIZE_EMBEDDING") == "1" {
		viper.Set("EMBEDDING_ENABLED", true)
	}
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SearchLimit <= 0 {
		return fmt.Errorf("SEARCH_LIMIT must be positive")
	}
	if config.SearchCandidatePool < config.SearchLimit {
		return fmt.Errorf("SEARCH_CANDIDATE_POOL (%d) must not be smaller than SEARCH_LIMIT (%d)",
			config.SearchCandidatePool, config.SearchLimit)
	}

	if config.ShareLinkTTL <= 0 {
		return fmt.Errorf("SHARE_LINK_TTL must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
