package app

import (
	"context"
	"fmt"

	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/config"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/domain"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/handlers"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/pricing"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/repository/postgres"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/service"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/utils/jwt"
	"github.com/danaasamuel2023/unlimiteddataManfred-sub000/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type repositories struct {
	wallets   domain.WalletRepository
	orders    domain.OrderRepository
	batches   domain.BatchRepository
	inventory domain.InventoryRepository
	prices    domain.PriceRepository
}

type services struct {
	purchase  domain.PurchaseService
	batch     domain.BatchService
	wallet    domain.WalletService
	orders    domain.OrderService
	admin     domain.AdminService
	inventory domain.InventoryService
}

type handlerSet struct {
	purchase *handlers.PurchaseHandler
	orders   *handlers.OrdersHandler
	wallet   *handlers.WalletHandler
	admin    *handlers.AdminHandler
	health   *handlers.HealthHandler
}

type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	closers    []func()
}

func initDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	repos := &repositories{
		wallets:   postgres.NewWalletRepository(dbPool),
		orders:    postgres.NewOrderRepository(dbPool),
		batches:   postgres.NewBatchRepository(dbPool),
		inventory: postgres.NewInventoryRepository(dbPool),
		prices:    postgres.NewPriceRepository(dbPool),
	}

	entries, err := repos.prices.LoadPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}
	prices, err := pricing.New(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid price table: %w", err)
	}
	logger.Info("price table loaded", zap.Int("bundles", len(entries)))

	router, err := initProviders(cfg, logger)
	if err != nil {
		return nil, err
	}

	notifier, closeNotifier, err := initNotifier(cfg, logger)
	if err != nil {
		return nil, err
	}
	guard, closeGuard := initCooldownGuard(ctx, cfg, repos.orders, logger)

	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	compensator := service.NewRefundEngine(repos.orders, notifier, logger)
	inventory := service.NewInventoryPolicy(repos.inventory, logger)

	sagaDeps := service.SagaDeps{
		Orders:      repos.orders,
		Prices:      prices,
		Router:      router,
		Inventory:   inventory,
		Compensator: compensator,
		Guard:       guard,
		Notifier:    notifier,
		Dispatcher:  service.NewDispatcher(cfg.ProviderTimeout, logger),
		Logger:      logger,
	}

	svcs := &services{
		purchase: service.NewPurchaseSaga(sagaDeps),
		batch: service.NewBatchProcessor(sagaDeps, repos.batches, service.BatchConfig{
			MaxBatchSize:     cfg.MaxBatchSize,
			PurchaseCooldown: cfg.PurchaseCooldown,
		}),
		wallet:    service.NewLedgerService(repos.wallets, logger),
		orders:    service.NewOrderQueryService(repos.orders),
		admin:     service.NewAdminOrderService(repos.orders, compensator, notifier, logger),
		inventory: inventory,
	}

	hdlrs := &handlerSet{
		purchase: handlers.NewPurchaseHandler(svcs.purchase, svcs.batch, prices, logger),
		orders:   handlers.NewOrdersHandler(svcs.orders, logger),
		wallet:   handlers.NewWalletHandler(svcs.wallet, logger),
		admin:    handlers.NewAdminHandler(svcs.admin, svcs.inventory, svcs.wallet, logger),
		health:   handlers.NewHealthHandler(dbPool, logger),
	}

	workerPool := worker.NewPool(worker.PoolConfig{
		Workers:        cfg.WorkerPoolSize,
		QueueSize:      cfg.WorkerQueueSize,
		ScanInterval:   cfg.WorkerScanInterval,
		ReconcileAfter: cfg.ReconcileAfter,
	}, repos.orders, repos.batches, router, compensator, notifier, logger)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
		closers:    []func(){closeGuard, closeNotifier},
	}, nil
}
