package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rkawale/mediawatch/app/api"
	"github.com/rkawale/mediawatch/app/categorize"
	"github.com/rkawale/mediawatch/app/cfg"
	"github.com/rkawale/mediawatch/app/database"
	"github.com/rkawale/mediawatch/app/events"
	"github.com/rkawale/mediawatch/app/ingest"
	"github.com/rkawale/mediawatch/app/notify"
	"github.com/rkawale/mediawatch/app/tasks"
	"github.com/rkawale/mediawatch/app/translate"
)

func main() {
	// .env is optional; flags and real environment variables win.
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting MediaWatch server", "version", appCfg.Version)

	db, err := database.NewConnectionWithFallback(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if db.Ephemeral {
		slog.Warn("Using ephemeral in-memory database, data will not survive restart")
	}

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "schema_version", version, "dirty", dirty)

	sourceRepo := database.NewSourceRepository(db)
	articleRepo := database.NewArticleRepository(db)
	analysisRepo := database.NewAnalysisRepository(db)
	deptRepo := database.NewDepartmentRepository(db)
	officerRepo := database.NewOfficerRepository(db)
	jobRepo := database.NewJobRepository(db)
	notifRepo := database.NewNotificationRepository(db)

	loaded, err := ingest.LoadSources(appCfg.SourcesDir, sourceRepo)
	if err != nil {
		slog.Error("Failed to load media source seeds", "dir", appCfg.SourcesDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Media sources registered", "count", loaded, "dir", appCfg.SourcesDir)

	var translator translate.Translator
	if appCfg.TranslateURL != "" {
		translator = translate.NewHTTPTranslator(appCfg.TranslateURL)
	} else {
		slog.Info("No translation endpoint configured, non-English content uses fallback")
		translator = translate.NewNoopTranslator()
	}

	hub := events.NewHub()
	fetcher := ingest.NewFetcher(&http.Client{}, appCfg.UserAgent)

	pipeline := ingest.NewPipeline(ingest.PipelineDeps{
		SourceRepo:   sourceRepo,
		ArticleRepo:  articleRepo,
		AnalysisRepo: analysisRepo,
		JobRepo:      jobRepo,
		Fetcher:      fetcher,
		Categorizer:  categorize.NewCategorizer(deptRepo),
		Notifier:     notify.NewEngine(officerRepo, notifRepo),
		Translator:   translator,
		Hub:          hub,
	})

	slog.Info("Starting background scheduler", "workers", appCfg.WorkerCount, "interval_seconds", appCfg.SchedulerInterval)
	scheduler := tasks.NewScheduler(sourceRepo, articleRepo, pipeline, fetcher, ingest.NewContentExtractor())
	scheduler.Start()
	defer scheduler.Stop()

	handler := api.NewHandler(sourceRepo, articleRepo, analysisRepo, notifRepo, pipeline, scheduler, hub)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	slog.Info("MediaWatch server started")

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	// Scheduler is stopped via defer
	slog.Info("Shutdown complete")
}
