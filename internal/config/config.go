package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"APP_PORT" default:"8080"`
	Interview InterviewConfig
	Groq      GroqConfig
	Redis     RedisConfig
	DB        DBConfig
	CORS      CORSConfig
}

// interview flow configuration
type InterviewConfig struct {
	// MaxTurns counts answered questions, including the introductory
	// one; once reached the session terminates.
	MaxTurns   int           `envconfig:"INTERVIEW_MAX_TURNS" default:"5"`
	HRKeywords []string      `envconfig:"INTERVIEW_HR_KEYWORDS" default:"hr,human resources,recruitment,managerial,non-technical,people management,talent acquisition"`
	SessionTTL time.Duration `envconfig:"INTERVIEW_SESSION_TTL" default:"2h"`
}

// Groq AI configuration (chat, whisper STT, speech TTS)
type GroqConfig struct {
	APIKey   string        `envconfig:"GROQ_API_KEY" required:"true"`
	Model    string        `envconfig:"GROQ_MODEL" default:"llama3-70b-8192"`
	STTModel string        `envconfig:"GROQ_STT_MODEL" default:"whisper-large-v3"`
	TTSModel string        `envconfig:"GROQ_TTS_MODEL" default:"playai-tts"`
	TTSVoice string        `envconfig:"GROQ_TTS_VOICE" default:"Fritz-PlayAI"`
	Timeout  time.Duration `envconfig:"GROQ_TIMEOUT" default:"120s"`
}

// optional Redis-backed session registry; empty Addr keeps sessions in
// memory
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// optional report archive; empty DSN disables it
type DBConfig struct {
	DSN string `envconfig:"DATABASE_URL" default:""`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.Interview.MaxTurns < 1 {
		return fmt.Errorf("INTERVIEW_MAX_TURNS must be at least 1")
	}
	if len(c.Interview.HRKeywords) == 0 {
		return fmt.Errorf("INTERVIEW_HR_KEYWORDS must not be empty")
	}
	if c.Interview.SessionTTL < time.Minute {
		return fmt.Errorf("INTERVIEW_SESSION_TTL must be at least 1m")
	}
	if c.Groq.Timeout < time.Second {
		return fmt.Errorf("GROQ_TIMEOUT must be at least 1s")
	}
	if len(c.CORS.TrustedOrigins) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// HRKeywordSet returns the HR keyword list lowercased and trimmed.
func (c *Config) HRKeywordSet() []string {
	keywords := make([]string, 0, len(c.Interview.HRKeywords))
	for _, kw := range c.Interview.HRKeywords {
		trimmed := strings.ToLower(strings.TrimSpace(kw))
		if trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, Interview.MaxTurns=%d, Interview.SessionTTL=%s, "+
		"Groq.Model=%s, Groq.STTModel=%s, Groq.TTSModel=%s, Redis=%t, Archive=%t, CORS.Origins=%d}",
		c.Env, c.Port, c.Interview.MaxTurns, c.Interview.SessionTTL,
		c.Groq.Model, c.Groq.STTModel, c.Groq.TTSModel, c.Redis.Addr != "", c.DB.DSN != "", len(c.CORS.TrustedOrigins))
}
