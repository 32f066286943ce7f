package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env             string        `mapstructure:"ENV"`
	Port            string        `mapstructure:"PORT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	CORSAllowed     string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	StaticDir       string        `mapstructure:"STATIC_DIR"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	OutboundTimeout time.Duration `mapstructure:"OUTBOUND_TIMEOUT"`

	SMTPHost string `mapstructure:"SMTP_HOST"`
	SMTPPort int    `mapstructure:"SMTP_PORT"`
	SMTPUser string `mapstructure:"SMTP_USER"`
	SMTPPass string `mapstructure:"SMTP_PASS"`
	MailFrom string `mapstructure:"MAIL_FROM"`
	MailTo   string `mapstructure:"MAIL_TO"`
	LogoPath string `mapstructure:"LOGO_PATH"`

	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `mapstructure:"TELEGRAM_CHAT_ID"`
	TelegramAPIURL   string `mapstructure:"TELEGRAM_API_URL"`

	GoogleAPIKey          string `mapstructure:"GOOGLE_API_KEY"`
	GooglePlaceID         string `mapstructure:"GOOGLE_PLACE_ID"`
	GooglePlacesURL       string `mapstructure:"GOOGLE_PLACES_URL"`
	GoogleReviewsLanguage string `mapstructure:"GOOGLE_REVIEWS_LANGUAGE"`

	BusinessName   string `mapstructure:"BUSINESS_NAME"`
	BusinessPhone  string `mapstructure:"BUSINESS_PHONE"`
	BusinessRegion string `mapstructure:"BUSINESS_REGION"`
	BusinessSite   string `mapstructure:"BUSINESS_SITE"`
}

// SMTPConfig is the subset of Config the mail transport needs.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	// Implicit TLS; only port 465 uses it, everything else negotiates STARTTLS.
	SSL bool
}

type ChatConfig struct {
	BotToken string
	ChatID   string
	APIURL   string
}

// Enabled reports whether both chat credentials are present.
func (c ChatConfig) Enabled() bool {
	return c.BotToken != "" && c.ChatID != ""
}

type ReviewsConfig struct {
	APIKey   string `validate:"required"`
	PlaceID  string `validate:"required"`
	URL      string
	Language string
}

type Brand struct {
	Name   string
	Phone  string
	Region string
	Site   string
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	// every key needs a default, otherwise Unmarshal ignores env-only values
	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "5000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("STATIC_DIR", "dist")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("OUTBOUND_TIMEOUT", "15s")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("MAIL_FROM", "ExpertRohr Kontaktformular <info@expertrohr.de>")
	v.SetDefault("MAIL_TO", "info@expertrohr.de")
	v.SetDefault("LOGO_PATH", "")

	v.SetDefault("TELEGRAM_BOT_TOKEN", "")
	v.SetDefault("TELEGRAM_CHAT_ID", "")
	v.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")

	v.SetDefault("GOOGLE_API_KEY", "")
	v.SetDefault("GOOGLE_PLACE_ID", "")
	v.SetDefault("GOOGLE_PLACES_URL", "https://maps.googleapis.com/maps/api/place/details/json")
	v.SetDefault("GOOGLE_REVIEWS_LANGUAGE", "de")

	v.SetDefault("BUSINESS_NAME", "ExpertRohr")
	v.SetDefault("BUSINESS_PHONE", "030-23323873")
	v.SetDefault("BUSINESS_REGION", "Berlin & Brandenburg")
	v.SetDefault("BUSINESS_SITE", "expertrohr.de")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) SMTP() SMTPConfig {
	return SMTPConfig{
		Host:     c.SMTPHost,
		Port:     c.SMTPPort,
		User:     c.SMTPUser,
		Password: c.SMTPPass,
		SSL:      c.SMTPPort == 465,
	}
}

func (c Config) Chat() ChatConfig {
	return ChatConfig{
		BotToken: strings.TrimSpace(c.TelegramBotToken),
		ChatID:   strings.TrimSpace(c.TelegramChatID),
		APIURL:   c.TelegramAPIURL,
	}
}

func (c Config) Reviews() ReviewsConfig {
	return ReviewsConfig{
		APIKey:   strings.TrimSpace(c.GoogleAPIKey),
		PlaceID:  strings.TrimSpace(c.GooglePlaceID),
		URL:      c.GooglePlacesURL,
		Language: c.GoogleReviewsLanguage,
	}
}

func (c Config) Brand() Brand {
	return Brand{
		Name:   c.BusinessName,
		Phone:  c.BusinessPhone,
		Region: c.BusinessRegion,
		Site:   c.BusinessSite,
	}
}

// CORSOrigins splits CORS_ALLOWED_ORIGINS; nil means every origin is allowed.
func (c Config) CORSOrigins() []string {
	raw := strings.TrimSpace(c.CORSAllowed)
	if raw == "" || raw == "*" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// Warnings lists missing mail settings. They do not stop the process;
// requests fail at dispatch time instead.
func (c Config) Warnings() []string {
	var out []string
	if strings.TrimSpace(c.SMTPHost) == "" {
		out = append(out, "SMTP_HOST is not set")
	}
	if strings.TrimSpace(c.SMTPUser) == "" {
		out = append(out, "SMTP_USER is not set")
	}
	if c.SMTPPass == "" {
		out = append(out, "SMTP_PASS is not set")
	}
	return out
}
