package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"household-calendar/config"
	_ "household-calendar/docs" // Swagger docs
	"household-calendar/internal/event"
	"household-calendar/internal/event/mirror"
	eventUC "household-calendar/internal/event/usecase"
	"household-calendar/internal/extraction"
	"household-calendar/internal/extraction/remote"
	extractionUC "household-calendar/internal/extraction/usecase"
	"household-calendar/internal/httpserver"
	"household-calendar/pkg/gcalendar"
	"household-calendar/pkg/llmprovider"
	"household-calendar/pkg/log"
)

// @title       Household Calendar API
// @description Natural-language event extraction and a workspace-scoped event store for a shared household calendar.
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

	logger.Info(ctx, "Starting Household Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Remote extractor (optional)
	var remoteExtractor extraction.RemoteExtractor
	remoteEnabled := false
	if cfg.Extraction.RemoteEnabled && len(cfg.LLM.Providers) > 0 {
		providers, pErr := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
		managerCfg, mErr := llmprovider.ManagerConfig(cfg.LLM)
		switch {
		case pErr != nil:
			logger.Warnf(ctx, "LLM providers unavailable, running deterministic-only: %v", pErr)
		case mErr != nil:
			logger.Warnf(ctx, "Invalid LLM manager config, running deterministic-only: %v", mErr)
		default:
			manager := llmprovider.NewManager(providers, managerCfg, logger)
			remoteExtractor = remote.New(logger, manager, cfg.Extraction.MaxHistoryTurns)
			remoteEnabled = true
			logger.Infof(ctx, "✅ Remote extraction enabled with %d provider(s)", len(providers))
		}
	} else {
		logger.Info(ctx, "Remote extraction disabled, running deterministic-only")
	}

	extractor := extractionUC.New(logger, remoteExtractor, extractionUC.Config{
		RemoteEnabled:    remoteEnabled,
		RemoteTimeout:    cfg.Extraction.RemoteTimeout,
		DefaultWeekCount: cfg.Extraction.DefaultWeekCount,
		MaxWeekCount:     cfg.Extraction.MaxWeekCount,
	})

	// 4. Event store
	repo, err := openRepository(ctx, cfg.Database, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open %s event store: %v", cfg.Database.Driver, err)
		return
	}
	defer repo.Close()

	// Google Calendar mirror (optional)
	var calendarMirror event.CalendarMirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
			CalendarID:      cfg.GoogleCalendar.CalendarID,
		})
		if gErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gErr)
			logger.Warn(ctx, "→ Run `calctl gcal-auth` to generate token.json")
		} else {
			calendarMirror = mirror.NewGoogle(logger, calendarClient)
			logger.Info(ctx, "✅ Google Calendar mirror initialized")
		}
	}

	events := eventUC.New(logger, repo, calendarMirror)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ChatPerMin:        cfg.RateLimit.ChatPerMin,
		ExtractionUseCase: extractor,
		RemoteExtraction:  remoteEnabled,
		EventUseCase:      events,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
