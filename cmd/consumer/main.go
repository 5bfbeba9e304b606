package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"action-item-extractor/config"
	natsDelivery "action-item-extractor/internal/extraction/delivery/nats"
	"action-item-extractor/internal/extraction/usecase"
	"action-item-extractor/pkg/llmprovider"
	"action-item-extractor/pkg/log"
	pkgNats "action-item-extractor/pkg/nats"
)

const drainSlack = 5 * time.Second

// main is the entry point for the background consumer service.
// It reads extraction requests from NATS and publishes the results.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases
//  3. Subscribe handlers
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	if cfg.NATS.URL == "" {
		logger.Error(ctx, "nats.url is required for the consumer")
		return
	}

	// LLM providers
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

	// UseCases
	extractionUC := usecase.New(logger, llm, usecase.Config{
		Temperature:      cfg.Extraction.Temperature,
		MaxTokens:        cfg.Extraction.MaxTokens,
		MaxDialogueChars: cfg.Extraction.MaxDialogueChars,
		DeepRepair:       cfg.Extraction.DeepRepair,
		JSONMode:         cfg.Extraction.JSONMode,
		CacheSize:        cfg.Extraction.CacheSize,
		CacheTTL:         cfg.Extraction.CacheTTL,
	})

	// Infrastructure
	// In-flight extractions may run for the whole LLM chain timeout before replying.
	drainTimeout := managerCfg.MaxTotalTimeout + drainSlack
	natsClient, err := pkgNats.NewClient(ctx, cfg.NATS.URL, cfg.NATS.Token, drainTimeout, logger)
	if err != nil {
		logger.Error(ctx, "Failed to connect to NATS: ", err)
		return
	}
	defer func() {
		natsClient.Close()
		logger.Info(context.Background(), "Consumer service stopped gracefully")
	}()

	consumer := natsDelivery.New(logger, extractionUC, natsClient, natsDelivery.Config{
		SubjectIn:  cfg.NATS.SubjectIn,
		SubjectOut: cfg.NATS.SubjectOut,
		QueueGroup: cfg.NATS.QueueGroup,
	})
	if err := consumer.Register(natsClient); err != nil {
		logger.Error(ctx, "Failed to subscribe: ", err)
		return
	}

	logger.Infof(ctx, "Consumer service running: %s -> %s", cfg.NATS.SubjectIn, cfg.NATS.SubjectOut)
	<-ctx.Done()
	logger.Info(context.Background(), "Shutting down, waiting for in-flight requests...")
}
