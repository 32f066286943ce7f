package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	// empty values fall back to defaults
	for _, key := range []string{"PORT", "SMTP_PORT", "MAIL_TO", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %s", cfg.Port)
	}
	if cfg.SMTPPort != 587 || cfg.SMTP().SSL {
		t.Fatalf("expected port 587 without implicit TLS, got %d ssl=%v", cfg.SMTPPort, cfg.SMTP().SSL)
	}
	if cfg.MailTo != "info@expertrohr.de" {
		t.Fatalf("unexpected MAIL_TO default: %s", cfg.MailTo)
	}
	if cfg.Chat().Enabled() {
		t.Fatalf("chat must be disabled without credentials")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("TELEGRAM_BOT_TOKEN", " token ")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("GOOGLE_PLACE_ID", "place-1")
	t.Setenv("OUTBOUND_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	smtp := cfg.SMTP()
	if smtp.Host != "smtp.example.com" || smtp.Port != 465 || !smtp.SSL {
		t.Fatalf("unexpected smtp config: %+v", smtp)
	}
	chat := cfg.Chat()
	if !chat.Enabled() || chat.BotToken != "token" {
		t.Fatalf("unexpected chat config: %+v", chat)
	}
	if cfg.Reviews().PlaceID != "place-1" {
		t.Fatalf("unexpected place id: %s", cfg.Reviews().PlaceID)
	}
	if cfg.OutboundTimeout.Seconds() != 3 {
		t.Fatalf("unexpected timeout: %s", cfg.OutboundTimeout)
	}
}

func TestWarningsForMissingMailCredentials(t *testing.T) {
	cfg := Config{SMTPHost: "smtp.example.com"}
	w := cfg.Warnings()
	if len(w) != 2 {
		t.Fatalf("expected 2 warnings, got %v", w)
	}
	cfg.SMTPUser = "u"
	cfg.SMTPPass = "p"
	if len(cfg.Warnings()) != 0 {
		t.Fatalf("expected no warnings, got %v", cfg.Warnings())
	}
}

func TestCORSOrigins(t *testing.T) {
	if got := (Config{CORSAllowed: "*"}).CORSOrigins(); got != nil {
		t.Fatalf("expected nil for wildcard, got %v", got)
	}
	got := (Config{CORSAllowed: "https://a.de, https://b.de,"}).CORSOrigins()
	if len(got) != 2 || got[0] != "https://a.de" || got[1] != "https://b.de" {
		t.Fatalf("unexpected origins: %v", got)
	}
}
