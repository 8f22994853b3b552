package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/BTreeMap/TradeMentor/internal/feedback"
	"github.com/BTreeMap/TradeMentor/internal/flow"
	"github.com/BTreeMap/TradeMentor/internal/models"
	"github.com/BTreeMap/TradeMentor/internal/util"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Default configuration constants
const (
	// DefaultStateDir is the default directory for TradeMentor state data
	DefaultStateDir = "/var/lib/trademento"
	// DefaultAppDBFileName is the default SQLite database filename for application data
	DefaultAppDBFileName = "trademento.db"
	// DefaultWhatsAppDBFileName is the default SQLite database filename for the whatsmeow device store
	DefaultWhatsAppDBFileName = "whatsmeow.db"
)

// Supported transports and text-generation providers.
const (
	TransportTelegram = "telegram"
	TransportWhatsApp = "whatsapp"
	TransportTwilio   = "twilio"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds the serve configuration. Environment variables supply the defaults and flags override them.
type Config struct {
	Transport     string
	TelegramToken string
	StateDir      string
	DBDSN         string
	WhatsAppDSN   string
	QROutput      string
	NumericCode   bool

	Provider  string
	OpenAIKey string
	GeminiKey string
	Model     string

	FeedbackTimeout time.Duration
	SessionTTL      time.Duration
	DailyLimit      int
	CommunityLink   string
	Timezone        string

	APIAddr         string
	TwilioPublicURL string
	Debug           bool
}

// loadDotEnv loads a .env file from the working directory when one exists.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	} else {
		slog.Debug("successfully loaded .env file")
	}
}

// loadEnvironmentConfig reads configuration defaults from the environment.
func loadEnvironmentConfig() Config {
	return Config{
		Transport:       strings.ToLower(util.GetEnv("TRANSPORT", TransportTelegram)),
		TelegramToken:   util.GetEnv("TELEGRAM_TOKEN", ""),
		StateDir:        util.GetEnv("TRADEMENTOR_STATE_DIR", DefaultStateDir),
		DBDSN:           util.GetEnv("DATABASE_URL", ""),
		WhatsAppDSN:     util.GetEnv("WHATSAPP_DB_DSN", ""),
		QROutput:        util.GetEnv("WHATSAPP_QR_OUTPUT", ""),
		NumericCode:     util.ParseBoolEnv("WHATSAPP_NUMERIC_CODE", false),
		Provider:        strings.ToLower(util.GetEnv("GENAI_PROVIDER", ProviderOpenAI)),
		OpenAIKey:       util.GetEnv("OPENAI_API_KEY", ""),
		GeminiKey:       util.GetEnv("GEMINI_API_KEY", ""),
		Model:           util.GetEnv("GENAI_MODEL", ""),
		FeedbackTimeout: util.ParseDurationEnv("FEEDBACK_TIMEOUT", feedback.DefaultTimeout),
		SessionTTL:      util.ParseDurationEnv("SESSION_TTL", flow.DefaultSessionTTL),
		DailyLimit:      util.ParseIntEnv("DAILY_INTERACTION_LIMIT", models.DefaultDailyInteractionLimit),
		CommunityLink:   util.GetEnv("COMMUNITY_LINK", flow.DefaultCommunityLink),
		Timezone:        util.GetEnv("TIMEZONE", ""),
		APIAddr:         util.GetEnv("API_ADDR", ":8080"),
		TwilioPublicURL: util.GetEnv("TWILIO_PUBLIC_URL", ""),
		Debug:           util.ParseBoolEnv("TRADEMENTOR_DEBUG", false),
	}
}

// bindServeFlags registers the serve flags with cfg values as defaults.
func bindServeFlags(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()
	f.StringVar(&cfg.Transport, "transport", cfg.Transport, "chat transport: telegram, whatsapp or twilio (overrides $TRANSPORT)")
	f.StringVar(&cfg.TelegramToken, "telegram-token", cfg.TelegramToken, "Telegram bot token (overrides $TELEGRAM_TOKEN)")
	f.StringVar(&cfg.WhatsAppDSN, "whatsapp-db-dsn", cfg.WhatsAppDSN, "whatsmeow device store DSN (overrides $WHATSAPP_DB_DSN)")
	f.StringVar(&cfg.QROutput, "qr-output", cfg.QROutput, "path to write the WhatsApp login QR code")
	f.BoolVar(&cfg.NumericCode, "numeric-code", cfg.NumericCode, "print a numeric WhatsApp login code instead of a QR code")
	f.StringVar(&cfg.Provider, "genai-provider", cfg.Provider, "text generation provider: openai or gemini (overrides $GENAI_PROVIDER)")
	f.StringVar(&cfg.OpenAIKey, "openai-api-key", cfg.OpenAIKey, "OpenAI API key (overrides $OPENAI_API_KEY)")
	f.StringVar(&cfg.GeminiKey, "gemini-api-key", cfg.GeminiKey, "Gemini API key (overrides $GEMINI_API_KEY)")
	f.StringVar(&cfg.Model, "genai-model", cfg.Model, "model name (overrides $GENAI_MODEL)")
	f.DurationVar(&cfg.FeedbackTimeout, "feedback-timeout", cfg.FeedbackTimeout, "timeout for one generation call (overrides $FEEDBACK_TIMEOUT)")
	f.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "idle time after which an unfinished dialog is discarded (overrides $SESSION_TTL)")
	f.IntVar(&cfg.DailyLimit, "daily-limit", cfg.DailyLimit, "ritual runs allowed per user per day (overrides $DAILY_INTERACTION_LIMIT)")
	f.StringVar(&cfg.CommunityLink, "community-link", cfg.CommunityLink, "link shown when onboarding completes (overrides $COMMUNITY_LINK)")
	f.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA time zone for daily plans and the daily cap (overrides $TIMEZONE)")
	f.StringVar(&cfg.APIAddr, "api-addr", cfg.APIAddr, "HTTP server address (overrides $API_ADDR)")
	f.StringVar(&cfg.TwilioPublicURL, "twilio-public-url", cfg.TwilioPublicURL, "webhook URL configured in Twilio, used for signature checks (overrides $TWILIO_PUBLIC_URL)")
}

// bindStorageFlags registers the flags shared by serve and migrate.
func bindStorageFlags(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()
	f.StringVar(&cfg.StateDir, "state-dir", cfg.StateDir, "state directory for TradeMentor data (overrides $TRADEMENTOR_STATE_DIR)")
	f.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "postgres DSN, SQLite path or \"memory\" (overrides $DATABASE_URL)")
}

// resolve fills path defaults derived from the state directory and validates enumerations.
func (c *Config) resolve() error {
	if c.DBDSN == "" {
		c.DBDSN = filepath.Join(c.StateDir, DefaultAppDBFileName)
		slog.Debug("No database DSN provided, defaulting to SQLite", "sqlite_path", c.DBDSN)
	}
	if c.WhatsAppDSN == "" {
		c.WhatsAppDSN = filepath.Join(c.StateDir, DefaultWhatsAppDBFileName)
	}
	c.Transport = strings.ToLower(strings.TrimSpace(c.Transport))
	switch c.Transport {
	case TransportTelegram, TransportWhatsApp, TransportTwilio:
	default:
		return fmt.Errorf("unknown transport %q (want telegram, whatsapp or twilio)", c.Transport)
	}
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown genai provider %q (want openai or gemini)", c.Provider)
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	return nil
}

// location returns the configured time zone, or nil to keep the engine default.
func (c *Config) location() *time.Location {
	if c.Timezone == "" {
		return nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil
	}
	return loc
}
