package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents runtime configuration for the service. Secrets (the
// Resend and AI-gateway API keys) are not part of the file; they are read
// from the process environment at request time.
type Config struct {
	BasicConfig BasicConfig   `json:"basic_config"`
	Redis       RedisConfig   `json:"redis"`
	Contact     ContactConfig `json:"contact"`
	Chat        ChatConfig    `json:"chat"`
}

type BasicConfig struct {
	ServerAddress string `json:"server_address"`
}

// RedisConfig is optional: when Host is empty the service falls back to the
// in-process rate limiter.
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	DB       int    `json:"db"`
}

type ContactConfig struct {
	OwnerEmail       string `json:"owner_email"`
	NotificationFrom string `json:"notification_from"`
	ConfirmationFrom string `json:"confirmation_from"`
	// Sliding window for accepted submissions, keyed by sender email.
	RateWindowMinutes int `json:"rate_window_minutes"`
	RateMaxRequests   int `json:"rate_max_requests"`
}

type ChatConfig struct {
	GatewayBaseURL string `json:"gateway_base_url"`
	Model          string `json:"model"`
	// Sliding window per client identifier.
	RateWindowSeconds int `json:"rate_window_seconds"`
	RateMaxRequests   int `json:"rate_max_requests"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the provided path (defaults to config.json).
// A missing default config file is not an error: built-in defaults are
// returned so the service can run from environment variables alone.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = "config.json"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.BasicConfig.ServerAddress == "" {
		c.BasicConfig.ServerAddress = ":8090"
	}
	if c.Contact.OwnerEmail == "" {
		c.Contact.OwnerEmail = "japhetndri15@gmail.com"
	}
	if c.Contact.NotificationFrom == "" {
		c.Contact.NotificationFrom = "Portfolio Contact <onboarding@resend.dev>"
	}
	if c.Contact.ConfirmationFrom == "" {
		c.Contact.ConfirmationFrom = "Japhet Calixte N'DRI <onboarding@resend.dev>"
	}
	if c.Contact.RateWindowMinutes <= 0 {
		c.Contact.RateWindowMinutes = 60
	}
	if c.Contact.RateMaxRequests <= 0 {
		c.Contact.RateMaxRequests = 3
	}
	if c.Chat.GatewayBaseURL == "" {
		c.Chat.GatewayBaseURL = "https://ai.gateway.lovable.dev/v1"
	}
	if c.Chat.Model == "" {
		c.Chat.Model = "google/gemini-2.5-flash"
	}
	if c.Chat.RateWindowSeconds <= 0 {
		c.Chat.RateWindowSeconds = 60
	}
	if c.Chat.RateMaxRequests <= 0 {
		c.Chat.RateMaxRequests = 10
	}
}
