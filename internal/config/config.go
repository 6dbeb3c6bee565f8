package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Email    EmailConfig    `mapstructure:"email"`
	Groq     GroqConfig     `mapstructure:"groq"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SMTPConfig holds the outbound SMTP session configuration
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// Addr returns the SMTP server address
func (c SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// EmailConfig holds recipient and sender settings
type EmailConfig struct {
	// Provider selects the delivery backend: "smtp" (default) or "gmail"
	Provider string `mapstructure:"provider"`
	// SenderName is the display name shown in the From header and signature
	SenderName string `mapstructure:"sender_name"`
	// Recipients is the comma-separated list of recipient addresses
	Recipients string `mapstructure:"recipients"`
	// LegacyRecipient is the original single-recipient setting, used only
	// when Recipients is empty
	LegacyRecipient string `mapstructure:"legacy_recipient"`
	// Gmail holds Gmail API configuration for the "gmail" provider
	Gmail GmailConfig `mapstructure:"gmail"`
}

// GmailConfig holds OAuth2 credentials for the Gmail API provider
type GmailConfig struct {
	ClientID      string `mapstructure:"client_id"`
	ClientSecret  string `mapstructure:"client_secret"`
	RefreshToken  string `mapstructure:"refresh_token"`
	SenderAddress string `mapstructure:"sender_address"`
}

// GroqConfig holds the chat-completions API configuration
type GroqConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	APIURL      string  `mapstructure:"api_url"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// ScheduleConfig holds the daily send time
type ScheduleConfig struct {
	Hour   int `mapstructure:"hour"`
	Minute int `mapstructure:"minute"`
}

// Recipients returns the resolved recipient list. The comma-separated
// recipients setting wins; the legacy single-recipient field is the fallback.
// An empty slice means no recipient is configured anywhere.
func (c *Config) Recipients() []string {
	var out []string
	for _, addr := range strings.Split(c.Email.Recipients, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	if len(out) > 0 {
		return out
	}
	if legacy := strings.TrimSpace(c.Email.LegacyRecipient); legacy != "" {
		return []string{legacy}
	}
	return nil
}

// Warnings reports missing required settings. Startup proceeds anyway; the
// affected operation fails at call time instead.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.SMTP.User == "" {
		warnings = append(warnings, "smtp.user is not set")
	}
	if c.SMTP.Password == "" {
		warnings = append(warnings, "smtp.password is not set")
	}
	if c.Groq.APIKey == "" {
		warnings = append(warnings, "groq.api_key is not set")
	}
	if len(c.Recipients()) == 0 {
		warnings = append(warnings, "no recipients configured: set email.recipients or email.legacy_recipient")
	}
	return warnings
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/motibot")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("MOTIBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// SMTP defaults
	v.SetDefault("smtp.host", "smtp.mail.yahoo.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.user", "")
	v.SetDefault("smtp.password", "")

	// Email defaults
	v.SetDefault("email.provider", "smtp")
	v.SetDefault("email.sender_name", "Mehdi")
	v.SetDefault("email.recipients", "")
	v.SetDefault("email.legacy_recipient", "")

	// Groq defaults
	v.SetDefault("groq.api_key", "")
	v.SetDefault("groq.api_url", "https://api.groq.com/openai/v1/chat/completions")
	v.SetDefault("groq.model", "llama-3.1-8b-instant")
	v.SetDefault("groq.temperature", 0.9)
	v.SetDefault("groq.max_tokens", 200)

	// Schedule defaults
	v.SetDefault("schedule.hour", 6)
	v.SetDefault("schedule.minute", 30)
}
