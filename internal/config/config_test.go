package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Env:  "development",
		Port: 8080,
		Interview: InterviewConfig{
			MaxTurns:   5,
			HRKeywords: []string{"hr"},
			SessionTTL: 2 * time.Hour,
		},
		Groq: GroqConfig{
			APIKey:  "key",
			Timeout: 120 * time.Second,
		},
		CORS: CORSConfig{
			TrustedOrigins: []string{"http://localhost:3000"},
		},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown env", func(c *Config) { c.Env = "prod" }},
		{"port too low", func(c *Config) { c.Port = 0 }},
		{"port too high", func(c *Config) { c.Port = 70000 }},
		{"zero turns", func(c *Config) { c.Interview.MaxTurns = 0 }},
		{"no hr keywords", func(c *Config) { c.Interview.HRKeywords = nil }},
		{"tiny ttl", func(c *Config) { c.Interview.SessionTTL = time.Second }},
		{"tiny timeout", func(c *Config) { c.Groq.Timeout = time.Millisecond }},
		{"no origins", func(c *Config) { c.CORS.TrustedOrigins = nil }},
	}

	for _, tc := range cases {
		cfg := validConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestHRKeywordSetNormalizes(t *testing.T) {
	cfg := validConfig()
	cfg.Interview.HRKeywords = []string{" HR ", "Human Resources", "", "  "}

	got := cfg.HRKeywordSet()
	if len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %v", got)
	}
	if got[0] != "hr" || got[1] != "human resources" {
		t.Fatalf("keywords not normalized: %v", got)
	}
}

func TestStringOmitsSecrets(t *testing.T) {
	cfg := validConfig()
	cfg.Groq.APIKey = "super-secret"

	if s := cfg.String(); strings.Contains(s, "super-secret") {
		t.Fatalf("config string leaks the api key: %s", s)
	}
}
