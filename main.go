package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/estore-labs/electrostore/internal/application/audit"
	appbasket "github.com/estore-labs/electrostore/internal/application/basket"
	appdeal "github.com/estore-labs/electrostore/internal/application/deal"
	appreceipt "github.com/estore-labs/electrostore/internal/application/receipt"
	"github.com/estore-labs/electrostore/internal/application/stock"
	"github.com/estore-labs/electrostore/internal/config"
	dombasket "github.com/estore-labs/electrostore/internal/domain/basket"
	"github.com/estore-labs/electrostore/internal/domain/catalog"
	domdeal "github.com/estore-labs/electrostore/internal/domain/deal"
	"github.com/estore-labs/electrostore/internal/infrastructure/eventbus"
	"github.com/estore-labs/electrostore/internal/infrastructure/id"
	"github.com/estore-labs/electrostore/internal/infrastructure/memory"
	"github.com/estore-labs/electrostore/internal/infrastructure/observability/oteltrace"
	"github.com/estore-labs/electrostore/internal/infrastructure/observability/prometrics"
	"github.com/estore-labs/electrostore/internal/infrastructure/observability/telemetry"
	"github.com/estore-labs/electrostore/internal/infrastructure/observability/zaplogger"
	redisstore "github.com/estore-labs/electrostore/internal/infrastructure/redis"
	"github.com/estore-labs/electrostore/internal/observability"
	"github.com/estore-labs/electrostore/internal/seed"
)

func main() {
	cfg := config.Load()

	logger := zaplogger.New(
		observability.F("service", cfg.ServiceName),
		observability.F("env", cfg.Env),
	)
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	metricsRegistry := prometrics.New(cfg.ServiceName, "")
	counters := map[observability.MetricKey]observability.Counter{
		observability.MUsecaseRequests: metricsRegistry.Counter(
			string(observability.MUsecaseRequests),
			"Total number of use case invocations.",
			"use_case", "outcome",
		),
		observability.MStockMovements: metricsRegistry.Counter(
			string(observability.MStockMovements),
			"Stock movement events processed, by direction.",
			"direction",
		),
	}
	histograms := map[observability.MetricKey]observability.Histogram{
		observability.MUsecaseDuration: metricsRegistry.Histogram(
			string(observability.MUsecaseDuration),
			"Duration of use case execution in seconds.",
			prometheus.DefBuckets,
			"use_case",
		),
	}
	tel := telemetry.New(oteltrace.New(cfg.ServiceName), logger, counters, histograms)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		products catalog.Repository
		baskets  dombasket.Repository
		deals    domdeal.Repository
	)
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		client := redisstore.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisstore.Ping(pingCtx, client)
		cancel()
		if err != nil {
			logger.Error("redis_unreachable",
				observability.F("addr", cfg.RedisAddr),
				observability.F("error", err.Error()),
			)
			os.Exit(1)
		}
		defer func() { _ = client.Close() }()
		products = redisstore.NewCatalogRepository(client)
		baskets = redisstore.NewBasketRepository(client)
		deals = redisstore.NewDealRepository(client)
	default:
		products = memory.NewCatalogRepository()
		baskets = memory.NewBasketRepository()
		deals = memory.NewDealRepository()
	}

	bus := eventbus.New(logger)
	bus.Start(ctx)
	defer bus.Stop(context.Background())

	idGenerator := id.NewUUIDGenerator()
	ledger := stock.NewLedger(products, bus, tel)
	dealCatalog := appdeal.NewCatalog(deals, products, tel)
	basketStore := appbasket.NewStore(baskets, idGenerator, tel)
	operations := appbasket.NewOperations(basketStore, ledger, tel)
	calculator := appreceipt.NewCalculator(basketStore, products, dealCatalog, tel)

	auditWorker := audit.New(bus, tel)
	auditWorker.Start()

	if cfg.SeedDemoData {
		loader := seed.NewLoader(products, dealCatalog, idGenerator, tel)
		if err := loader.Load(ctx); err != nil {
			logger.Error("seed_failed",
				observability.F("error", err.Error()),
			)
			os.Exit(1)
		}
		runDemo(ctx, operations, calculator, logger)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    cfg.MetricsAddress(),
		Handler: mux,
	}

	go func() {
		logger.Info("metrics_server_start",
			observability.F("addr", server.Addr),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics_server_error",
				observability.F("error", err.Error()),
			)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics_server_shutdown_error",
			observability.F("error", err.Error()),
		)
	} else {
		logger.Info("metrics_server_stopped")
	}
}

// runDemo walks one basket through the subsystem so a fresh checkout of the
// repo shows the ledger, basket, and receipt paths working end to end.
func runDemo(ctx context.Context, operations *appbasket.Operations, calculator *appreceipt.Calculator, logger observability.Logger) {
	const demoUser = "demo-user"

	if _, err := operations.AddProduct(ctx, demoUser, "laptop-pro-x1", 2); err != nil {
		logger.Warn("demo_add_failed", observability.F("error", err.Error()))
		return
	}
	if _, err := operations.AddProduct(ctx, demoUser, "lotr", 2); err != nil {
		logger.Warn("demo_add_failed", observability.F("error", err.Error()))
		return
	}

	receipt, err := calculator.Calculate(ctx, demoUser)
	if err != nil {
		logger.Warn("demo_receipt_failed", observability.F("error", err.Error()))
		return
	}
	logger.Info("demo_receipt",
		observability.F("lines", len(receipt.Items)),
		observability.F("deals_applied", receipt.DealsApplied),
		observability.F("total", receipt.TotalPrice.String()),
	)
}
