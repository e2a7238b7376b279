package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"FakeNewsDetector/internal/config"
	"FakeNewsDetector/internal/extract"
	"FakeNewsDetector/internal/heuristic"
	"FakeNewsDetector/internal/infrastructure/extractor"
	"FakeNewsDetector/internal/infrastructure/model"
	"FakeNewsDetector/internal/infrastructure/server"
	"FakeNewsDetector/internal/infrastructure/storage"
	"FakeNewsDetector/internal/logging"
	"FakeNewsDetector/internal/ports"
	"FakeNewsDetector/internal/reputation"
	"FakeNewsDetector/internal/usecase"
)

// Application wires configs to the pipeline and the HTTP adapter.
type Application struct {
	cfg    config.Config
	server *server.Server
	db     *sql.DB
}

// New builds the application. The model artifact is loaded here, once: a
// missing or corrupt artifact fails startup and no request is ever served.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	store, err := model.Load(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	filter := reputation.NewFilter(cfg.Reputation.Trusted, cfg.Reputation.Suspicious)

	fetcher := extractor.NewFetcher(cfg.Extraction.Timeout(), cfg.Extraction.UserAgent)
	chain := extract.NewChain(cfg.Extraction.MinWordCount, baseLogger.With("component", "extract"),
		extractor.NewReadabilityStrategy(fetcher),
		extractor.NewSelectorStrategy(fetcher, cfg.Extraction.MinWordCount),
	)

	overlay := heuristic.NewOverlay(
		cfg.Classification.AlarmKeywords,
		cfg.Extraction.MinWordCount,
		cfg.Classification.HeuristicConfidence,
	)

	var (
		db         *sql.DB
		repository ports.VerdictRepository
		history    server.History
	)
	if cfg.Database.DSN != "" {
		db, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		pg := storage.NewPostgresRepository(db)
		repository = pg
		history = pg
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Reputation: filter,
		Extractor:  chain,
		Overlay:    overlay,
		Classifier: store,
		Repository: repository,
		Threshold:  cfg.Classification.ConfidenceThreshold,
		Logger:     baseLogger.With("component", "pipeline"),
	})

	srv := server.New(cfg.Server.Addr, pipeline, history, baseLogger.With("component", "server"))

	return &Application{cfg: cfg, server: srv, db: db}, nil
}

// Run serves HTTP until the context is cancelled.
func (a *Application) Run(ctx context.Context) error {
	if a.db != nil {
		defer a.db.Close()
	}
	return a.server.Run(ctx)
}
