package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/billsnap/billsnap/internal/async"
	"github.com/billsnap/billsnap/internal/common"
	"github.com/billsnap/billsnap/internal/export"
	"github.com/billsnap/billsnap/internal/extract"
	"github.com/billsnap/billsnap/internal/ocr"
	"github.com/billsnap/billsnap/internal/pipeline"
	repo "github.com/billsnap/billsnap/internal/repository"
	"github.com/billsnap/billsnap/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	documents := repo.NewDocumentRepository(entc, logger)
	receipts := repo.NewReceiptRepository(entc, logger)
	bills := repo.NewBillRepository(entc, logger)
	methods := repo.NewPaymentMethodRepository(entc, logger)
	jobs := repo.NewExtractJobRepository(entc, logger)

	ocrClient := ocr.NewClient(ocr.Config{
		APIKey:   cfg.OCR.APIKey,
		Endpoint: cfg.OCR.Endpoint,
		Language: cfg.OCR.Language,
		Engine:   cfg.OCR.Engine,
		Timeout:  cfg.OCR.Timeout,
	}, logger)
	textExtractor := extract.NewOCRAdapter(ocrClient, logger)
	fieldExtractor := extract.HeuristicFieldExtractor{}

	ocrStage := pipeline.NewOCRStage(documents, jobs, textExtractor, logger)
	parseStage := pipeline.NewParseStage(
		logger,
		pipeline.Config{MinConfidence: cfg.Pipeline.MinConfidence},
		jobs, documents, receipts, bills, methods,
		fieldExtractor,
	)
	processor := pipeline.NewProcessor(logger, ocrStage, parseStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	exporter := export.NewService(receipts, bills, methods, logger)

	srv := server.New(server.Deps{
		Documents: documents,
		Receipts:  receipts,
		Bills:     bills,
		Methods:   methods,
		Jobs:      jobs,
		Queue:     queue,
		Exporter:  exporter,
		Text:      textExtractor,
		Fields:    fieldExtractor,
		HealthCheck: func(ctx context.Context) error {
			return repo.HealthCheck(ctx, pool, 2*time.Second, logger)
		},
	}, logger)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	queue.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
