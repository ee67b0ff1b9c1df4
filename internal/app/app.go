package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"

	"DocAuditor/internal/analysis"
	"DocAuditor/internal/config"
	"DocAuditor/internal/infrastructure/fetch"
	"DocAuditor/internal/infrastructure/remote"
	"DocAuditor/internal/infrastructure/scheduler"
	"DocAuditor/internal/infrastructure/storage"
	"DocAuditor/internal/infrastructure/telegram"
	"DocAuditor/internal/logging"
	"DocAuditor/internal/ports"
	"DocAuditor/internal/revision"
	"DocAuditor/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg       config.Config
	pipeline  *usecase.Pipeline
	scheduler ports.Scheduler
	db        *sql.DB
	logger    *slog.Logger
}

// New builds a runnable application instance. Optional adapters (database,
// remote scorer, notifier, reviser) are wired only when configured.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	source := fetch.NewSource(http.DefaultClient, fetch.Options{
		Timeout:          cfg.Fetch.Timeout(),
		MinDelay:         cfg.Fetch.MinDelay(),
		MaxDelay:         cfg.Fetch.MaxDelay(),
		MinContentLength: cfg.Fetch.MinContentLength,
	}, baseLogger.With("component", "source"))

	var remoteScorer ports.RemoteScorer
	if cfg.RemoteScorer.Endpoint != "" {
		remoteScorer = remote.NewScorer(cfg.RemoteScorer.Endpoint, cfg.RemoteScorer.APIKey)
	}

	var db *sql.DB
	var repository ports.ReportRepository
	if cfg.Database.DSN != "" {
		conn, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		db = conn
		repository = storage.NewPostgresRepository(conn)
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.BotToken != "" && cfg.Notifications.Telegram.ChatID != "" {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	var reviser *revision.Engine
	if cfg.Revision.Enabled {
		reviser = revision.NewEngine()
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     source,
		Engine:     analysis.NewEngine(),
		Remote:     remoteScorer,
		Repository: repository,
		Notifier:   notifier,
		Reviser:    reviser,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:       cfg,
		pipeline:  pipeline,
		scheduler: scheduler.NewTickerScheduler(cfg.Scheduler.Interval()),
		db:        db,
		logger:    baseLogger,
	}, nil
}

// Run audits the configured pages once, then keeps re-auditing them on the
// configured interval until the context is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if a.pipeline == nil {
		return nil
	}

	urls := make([]string, 0, len(a.cfg.Pages))
	for _, page := range a.cfg.Pages {
		urls = append(urls, page.URL)
	}

	job := func() {
		if err := a.pipeline.RunAll(ctx, urls); err != nil {
			a.logger.Error("audit cycle failed", "error", err)
		}
	}

	if err := a.scheduler.Start(ctx, job); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	<-ctx.Done()
	return a.Close(context.Background())
}

// RunOnce audits the configured pages a single time and exits.
func (a *Application) RunOnce(ctx context.Context) error {
	urls := make([]string, 0, len(a.cfg.Pages))
	for _, page := range a.cfg.Pages {
		urls = append(urls, page.URL)
	}
	return a.pipeline.RunAll(ctx, urls)
}

// Close releases held resources.
func (a *Application) Close(ctx context.Context) error {
	if a.scheduler != nil {
		_ = a.scheduler.Stop(ctx)
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
