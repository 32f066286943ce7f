package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/expertrohr/web/internal/chat"
	"github.com/expertrohr/web/internal/config"
	"github.com/expertrohr/web/internal/db"
	httpapi "github.com/expertrohr/web/internal/http"
	"github.com/expertrohr/web/internal/mailer"
	"github.com/expertrohr/web/internal/relay"
	"github.com/expertrohr/web/internal/render"
	"github.com/expertrohr/web/internal/reviews"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := log.Level(level).With().Str("service", "expertrohr-web").Logger()

	for _, w := range cfg.Warnings() {
		logger.Warn().Msg(w + "; contact form emails will fail until it is configured")
	}

	logo, err := mailer.LoadInline(cfg.LogoPath, "ExpertRohr-min.png", render.LogoCID, render.Logo)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to embedded logo")
		logo = mailer.Inline{Filename: "ExpertRohr-min.png", ContentID: render.LogoCID, Data: render.Logo}
	}

	httpClient := &http.Client{Timeout: cfg.OutboundTimeout}

	var notifier chat.Notifier = chat.Disabled{}
	if chatCfg := cfg.Chat(); chatCfg.Enabled() {
		notifier = chat.TelegramNotifier{BaseURL: chatCfg.APIURL, Token: chatCfg.BotToken, ChatID: chatCfg.ChatID, Client: httpClient}
		logger.Info().Msg("telegram notifications enabled")
	} else {
		logger.Info().Msg("telegram not configured, chat notifications disabled")
	}

	ctx := context.Background()
	deps := httpapi.Deps{}
	rl := &relay.Relay{
		Mailer:   mailer.SMTPMailer{Config: cfg.SMTP()},
		Chat:     notifier,
		Brand:    cfg.Brand(),
		From:     cfg.MailFrom,
		Operator: cfg.MailTo,
		Logo:     logo,
		Logger:   logger.With().Str("component", "relay").Logger(),
	}

	if cfg.DatabaseURL != "" {
		store, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal().Err(err).Msg("failed to create dispatch journal schema")
		}
		rl.Recorder = store
		deps.Journal = store
		logger.Info().Msg("dispatch journal enabled")
	}

	deps.Relay = rl
	deps.Reviews = reviews.PlacesClient{Config: cfg.Reviews(), Client: httpClient, Validator: validator.New()}

	router := httpapi.Router(cfg, deps, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
