package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/config"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/worker"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App wires the data bundle service together
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	router     *chi.Mux
	workerPool *worker.Pool
	server     *http.Server
	closers    []func()
}

// NewApp loads the configuration and builds every dependency.
// ctx bounds startup only: migrations, connections and the price table load.
func NewApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	deps, err := initDependencies(ctx, cfg, dbPool, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	router := setupRouter(deps, logger)
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		router:     router,
		workerPool: deps.workerPool,
		server:     server,
		closers:    deps.closers,
	}, nil
}

// Run serves HTTP and runs the reconciliation worker until ctx is done.
// The worker has its own context so it outlives the HTTP drain.
func (a *App) Run(ctx context.Context) error {
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	a.workerPool.Start(workerCtx)
	a.logger.Info("reconciliation worker started",
		zap.Int("workers", a.config.WorkerPoolSize),
		zap.Duration("reconcile_after", a.config.ReconcileAfter),
	)

	serveErr := a.runServer(ctx)
	a.shutdown(stopWorkers)

	return serveErr
}
