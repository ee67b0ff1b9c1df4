package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv         = "DOC_AUDITOR_CONFIG"
	databaseDSNEnv        = "DATABASE_DSN"
	remoteScorerURLEnv    = "REMOTE_SCORER_URL"
	remoteScorerAPIKeyEnv = "REMOTE_SCORER_API_KEY"
	telegramTokenEnv      = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv     = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
// Scoring weights, vocabularies and thresholds are deliberately absent:
// they are contractual constants, not configuration.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Fetch         FetchConfig        `yaml:"fetch"`
	Database      DatabaseConfig     `yaml:"database"`
	RemoteScorer  RemoteScorerConfig `yaml:"remoteScorer"`
	Notifications NotificationConfig `yaml:"notifications"`
	Scheduler     SchedulerConfig    `yaml:"scheduler"`
	Revision      RevisionConfig     `yaml:"revision"`
	Pages         []PageConfig       `yaml:"pages"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// FetchConfig bounds the content source's politeness and acceptance.
type FetchConfig struct {
	TimeoutSeconds   int `yaml:"timeoutSeconds"`
	MinDelayMillis   int `yaml:"minDelayMillis"`
	MaxDelayMillis   int `yaml:"maxDelayMillis"`
	MinContentLength int `yaml:"minContentLength"`
}

// Timeout resolves the per-request timeout.
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// MinDelay resolves the lower politeness-delay bound.
func (f FetchConfig) MinDelay() time.Duration {
	return time.Duration(f.MinDelayMillis) * time.Millisecond
}

// MaxDelay resolves the upper politeness-delay bound.
func (f FetchConfig) MaxDelay() time.Duration {
	return time.Duration(f.MaxDelayMillis) * time.Millisecond
}

// DatabaseConfig describes Postgres connection details.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// RemoteScorerConfig points at the optional external scoring backend.
type RemoteScorerConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"apiKey"`
}

// NotificationConfig encapsulates outbound channels.
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// SchedulerConfig defines how often configured pages are re-audited.
type SchedulerConfig struct {
	IntervalHours int `yaml:"intervalHours"`
}

// Interval resolves the re-audit interval.
func (s SchedulerConfig) Interval() time.Duration {
	return time.Duration(s.IntervalHours) * time.Hour
}

// RevisionConfig toggles the rewrite pass after each audit.
type RevisionConfig struct {
	Enabled bool `yaml:"enabled"`
}

// PageConfig names one documentation page to audit.
type PageConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Pages) == 0 {
		cfg.Pages = defaultConfig().Pages
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv(remoteScorerURLEnv); v != "" {
		c.RemoteScorer.Endpoint = v
	}
	if v := os.Getenv(remoteScorerAPIKeyEnv); v != "" {
		c.RemoteScorer.APIKey = v
	}
	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}
	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Fetch.TimeoutSeconds != 0 {
		base.Fetch.TimeoutSeconds = override.Fetch.TimeoutSeconds
	}
	if override.Fetch.MinDelayMillis != 0 {
		base.Fetch.MinDelayMillis = override.Fetch.MinDelayMillis
	}
	if override.Fetch.MaxDelayMillis != 0 {
		base.Fetch.MaxDelayMillis = override.Fetch.MaxDelayMillis
	}
	if override.Fetch.MinContentLength != 0 {
		base.Fetch.MinContentLength = override.Fetch.MinContentLength
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.RemoteScorer.Endpoint != "" {
		base.RemoteScorer.Endpoint = override.RemoteScorer.Endpoint
	}
	if override.RemoteScorer.APIKey != "" {
		base.RemoteScorer.APIKey = override.RemoteScorer.APIKey
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if override.Scheduler.IntervalHours != 0 {
		base.Scheduler = override.Scheduler
	}

	if override.Revision.Enabled {
		base.Revision = override.Revision
	}

	if len(override.Pages) > 0 {
		base.Pages = override.Pages
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Fetch: FetchConfig{
			TimeoutSeconds:   20,
			MinDelayMillis:   1000,
			MaxDelayMillis:   3000,
			MinContentLength: 100,
		},
		Database:     DatabaseConfig{DSN: ""},
		RemoteScorer: RemoteScorerConfig{Endpoint: "", APIKey: ""},
		Scheduler:    SchedulerConfig{IntervalHours: 24},
		Revision:     RevisionConfig{Enabled: false},
		Pages: []PageConfig{
			{
				Name: "notifications-received",
				URL:  "https://help.moengage.com/hc/en-us/articles/360035738832-Explore-the-Number-of-Notifications-Received-by-Users",
			},
		},
	}
}
