package config

import (
	"fmt"
	"os"
	"strconv"

	"profile-stack/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube    YouTubeConfig    `yaml:"youtube"`
	AI         AIConfig         `yaml:"ai"`
	Cache      CacheConfig      `yaml:"cache"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Email      EmailConfig      `yaml:"email"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Takeout    TakeoutConfig    `yaml:"takeout"`
	Bio        models.UserBio   `yaml:"bio"`
	Schedule   string           `yaml:"schedule"`
	LogMode    string           `yaml:"log_mode"`
}

type YouTubeConfig struct {
	APIKey string `yaml:"api_key" env:"YOUTUBE_API_KEY"`
}

type AIConfig struct {
	GeminiAPIKey string  `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model        string  `yaml:"model"`
	Temperature  float64 `yaml:"temperature"`
}

type CacheConfig struct {
	RedisAddr     string `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"`
	Dir           string `yaml:"dir"`
	TTLHours      int    `yaml:"ttl_hours"`
}

type PipelineConfig struct {
	ProviderTimeoutSeconds int `yaml:"provider_timeout_seconds"`
	OracleTimeoutSeconds   int `yaml:"oracle_timeout_seconds"`
	MetadataBatchSize      int `yaml:"metadata_batch_size"`
}

type EmailConfig struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username" env:"EMAIL_USERNAME"`
	Password   string `yaml:"password" env:"EMAIL_PASSWORD"`
	FromEmail  string `yaml:"from_email"`
	ToEmail    string `yaml:"to_email"`
}

type MonitoringConfig struct {
	HealthPort int `yaml:"health_port"`
}

type TakeoutConfig struct {
	Dir    string `yaml:"dir"`
	OutDir string `yaml:"out_dir"`
	UserID string `yaml:"user_id"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if c.YouTube.APIKey == "" {
		c.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")
	}
	if c.AI.GeminiAPIKey == "" {
		c.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Cache.RedisAddr == "" {
		c.Cache.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	if c.Cache.RedisPassword == "" {
		c.Cache.RedisPassword = os.Getenv("REDIS_PASSWORD")
	}
	if c.Cache.RedisDB == 0 {
		if db, err := strconv.Atoi(os.Getenv("REDIS_DB")); err == nil {
			c.Cache.RedisDB = db
		}
	}
	if c.Email.Username == "" {
		c.Email.Username = os.Getenv("EMAIL_USERNAME")
	}
	if c.Email.Password == "" {
		c.Email.Password = os.Getenv("EMAIL_PASSWORD")
	}
}

func (c *Config) applyDefaults() {
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = 0.4
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = "data"
	}
	if c.Cache.TTLHours == 0 {
		c.Cache.TTLHours = 30 * 24
	}
	if c.Pipeline.ProviderTimeoutSeconds == 0 {
		c.Pipeline.ProviderTimeoutSeconds = 30
	}
	if c.Pipeline.OracleTimeoutSeconds == 0 {
		c.Pipeline.OracleTimeoutSeconds = 60
	}
	if c.Pipeline.MetadataBatchSize == 0 {
		c.Pipeline.MetadataBatchSize = 50
	}
	if c.Monitoring.HealthPort == 0 {
		c.Monitoring.HealthPort = 8080
	}
	if c.Takeout.Dir == "" {
		c.Takeout.Dir = "takeout"
	}
	if c.Takeout.OutDir == "" {
		c.Takeout.OutDir = "data/profiles"
	}
	if c.Takeout.UserID == "" {
		c.Takeout.UserID = "local"
	}
	if c.Schedule == "" {
		c.Schedule = "0 0 6 * * 1" // Weekly, Monday 6 AM
	}
	if c.LogMode == "" {
		c.LogMode = "dev"
	}
}

func (c *Config) validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("YouTube API key is required (set YOUTUBE_API_KEY or youtube.api_key)")
	}
	if c.AI.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or ai.gemini_api_key)")
	}
	if c.EmailEnabled() {
		if c.Email.Username == "" {
			return fmt.Errorf("Email username is required when email.to_email is set")
		}
		if c.Email.Password == "" {
			return fmt.Errorf("Email password is required when email.to_email is set")
		}
	}
	return nil
}

// EmailEnabled reports whether a finished profile should be mailed out.
func (c *Config) EmailEnabled() bool {
	return c.Email.ToEmail != ""
}
