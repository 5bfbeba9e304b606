package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"action-item-extractor/config"
	_ "action-item-extractor/docs" // Swagger docs
	extractionHTTP "action-item-extractor/internal/extraction/delivery/http"
	tgDelivery "action-item-extractor/internal/extraction/delivery/telegram"
	"action-item-extractor/internal/extraction/usecase"
	"action-item-extractor/internal/httpserver"
	"action-item-extractor/internal/middleware"
	"action-item-extractor/pkg/llmprovider"
	"action-item-extractor/pkg/log"
	"action-item-extractor/pkg/telegram"
)

// @title       Action Item Extractor API
// @description Extracts action items (task, owner, due date) from multi-speaker chat transcripts using an LLM, with tolerant recovery of malformed model output.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Action Item Extractor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, warnings, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, w := range warnings {
		logger.Warn(ctx, w)
	}
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM config: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM providers ready: %d (primary: %s)", len(providers), providers[0].Name())

	// 4. Extraction domain
	extractionUC := usecase.New(logger, llm, usecase.Config{
		Temperature:      cfg.Extraction.Temperature,
		MaxTokens:        cfg.Extraction.MaxTokens,
		MaxDialogueChars: cfg.Extraction.MaxDialogueChars,
		DeepRepair:       cfg.Extraction.DeepRepair,
		JSONMode:         cfg.Extraction.JSONMode,
		CacheSize:        cfg.Extraction.CacheSize,
		CacheTTL:         cfg.Extraction.CacheTTL,
	})
	extractionHandler := extractionHTTP.New(logger, extractionUC)
	mw := middleware.New(logger, cfg.RateLimit)

	// 5. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, extractionUC, telegramBot, cfg.Telegram.WebhookSecret)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ExtractionHandler: extractionHandler,
		Middleware:        mw,
		TelegramHandler:   telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
