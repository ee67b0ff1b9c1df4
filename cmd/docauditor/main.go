package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"DocAuditor/internal/app"
	"DocAuditor/internal/config"
	"DocAuditor/internal/logging"
)

func main() {
	once := flag.Bool("once", false, "audit configured pages a single time and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("application init failed", "error", err)
		os.Exit(1)
	}

	run := application.Run
	if *once {
		run = application.RunOnce
	}

	if err := run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
