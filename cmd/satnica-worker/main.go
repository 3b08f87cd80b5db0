package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"satnica/internal/amqp"
	"satnica/internal/cli"
	gsheet "satnica/internal/export/google"
	applog "satnica/internal/log"
	"satnica/internal/storage"
	"satnica/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(applog.ComponentWorker)

	logger.Info("Starting satnica-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	var deliverer worker.Deliverer = worker.LogDeliverer{}
	if cfg.WebhookURL != "" {
		deliverer = worker.NewWebhookDeliverer(cfg.WebhookURL, cfg.DeliverTimeout)
		logger.Info("Webhook delivery configured", "url", cfg.WebhookURL)
	} else {
		logger.Info("No webhook configured, alerts will be logged")
	}
	alerts := worker.NewAlertWorker(deliverer)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeEarningsAlerts(ctx, alerts.HandleAlert)
	})

	// The exporter reads the shared SQLite database directly; it only runs
	// when a spreadsheet is configured.
	if cfg.ExportSpreadsheetID != "" {
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()

		writer, err := gsheet.NewClient(ctx, cfg.ExportSpreadsheetID, cfg.ExportSheetName)
		if err != nil {
			logger.Error("Failed to initialize Sheets client", "error", err)
			os.Exit(1)
		}

		exporter := worker.NewExportWorker(repo, writer, cfg.ExportUserIDs, cfg.ExportInterval)
		g.Go(func() error {
			return exporter.Run(ctx)
		})
		logger.Info("Summary export configured",
			"spreadsheet_id", cfg.ExportSpreadsheetID,
			"sheet", cfg.ExportSheetName,
			"interval", cfg.ExportInterval,
			"users", len(cfg.ExportUserIDs))
	} else {
		logger.Info("Summary export disabled - no EXPORT_SPREADSHEET_ID provided")
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker shutdown complete")
}
