package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/gmatheus/commerce-core/pkg/config"
	"github.com/gmatheus/commerce-core/pkg/idempotency"
	"github.com/gmatheus/commerce-core/pkg/logging"
	"github.com/gmatheus/commerce-core/pkg/metrics"
	"github.com/gmatheus/commerce-core/pkg/shutdown"
	"github.com/gmatheus/commerce-core/pkg/tracing"

	catalogapp "github.com/gmatheus/commerce-core/internal/catalog/application"
	cataloghttp "github.com/gmatheus/commerce-core/internal/catalog/infrastructure/http"
	catalogpg "github.com/gmatheus/commerce-core/internal/catalog/infrastructure/postgres"
	checkoutapp "github.com/gmatheus/commerce-core/internal/checkout/application"
	checkouthttp "github.com/gmatheus/commerce-core/internal/checkout/infrastructure/http"
	"github.com/gmatheus/commerce-core/internal/checkout/infrastructure/inprocess"
	checkoutkafka "github.com/gmatheus/commerce-core/internal/checkout/infrastructure/kafka"
	checkoutpg "github.com/gmatheus/commerce-core/internal/checkout/infrastructure/postgres"
	clientapp "github.com/gmatheus/commerce-core/internal/client/application"
	clienthttp "github.com/gmatheus/commerce-core/internal/client/infrastructure/http"
	clientpg "github.com/gmatheus/commerce-core/internal/client/infrastructure/postgres"
	invoiceapp "github.com/gmatheus/commerce-core/internal/invoice/application"
	invoicehttp "github.com/gmatheus/commerce-core/internal/invoice/infrastructure/http"
	invoicepg "github.com/gmatheus/commerce-core/internal/invoice/infrastructure/postgres"
	paymentapp "github.com/gmatheus/commerce-core/internal/payment/application"
	paymentpg "github.com/gmatheus/commerce-core/internal/payment/infrastructure/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if cfg.OTLPEndpoint != "" {
		tp, err := tracing.Init(ctx, "checkout-service", cfg.OTLPEndpoint, log)
		if err != nil {
			log.Error("otel init failed", "err", err)
			os.Exit(1)
		}
		defer func() { _ = tp.Shutdown(ctx) }()
	}

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Error("pg connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Bounded contexts
	clientSvc := clientapp.NewService(clientpg.NewRepository(log, pool))
	catalogSvc := catalogapp.NewService(catalogpg.NewRepository(log, pool))
	paymentSvc := paymentapp.NewService(paymentpg.NewRepository(log, pool))
	invoiceSvc := invoiceapp.NewService(invoicepg.NewRepository(log, pool))

	// Optional event publisher
	var events checkoutapp.EventPublisher
	if cfg.KafkaBrokers != "" {
		publisher := checkoutkafka.NewPublisher(log, strings.Split(cfg.KafkaBrokers, ","), cfg.EventsTopic)
		defer func() { _ = publisher.Close() }()
		events = publisher
	}

	checkoutSvc := checkoutapp.NewService(
		log,
		inprocess.NewClientFacade(clientSvc),
		inprocess.NewCatalogFacade(catalogSvc),
		checkoutpg.NewRepository(log, pool),
		inprocess.NewPaymentFacade(paymentSvc),
		inprocess.NewInvoiceFacade(invoiceSvc),
		events,
	)

	// Optional idempotency store
	var idem *idempotency.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = rdb.Close() }()
		idem = idempotency.NewStore(rdb, 24*time.Hour)
	}

	m := metrics.NewServerMetrics("checkout")

	r := chi.NewRouter()
	r.Use(metrics.Middleware(m))
	r.Group(func(r chi.Router) {
		r.Use(idempotency.Middleware(idem))
		r.Mount("/checkout", checkouthttp.NewHandler(log, checkoutSvc).Routes())
	})
	r.Mount("/clients", clienthttp.NewHandler(log, clientSvc).Routes())
	r.Mount("/products", cataloghttp.NewHandler(log, catalogSvc).Routes())
	r.Mount("/invoice", invoicehttp.NewHandler(log, invoiceSvc).Routes())
	r.Handle("/metrics", metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	log.Info("checkout-service shutdown complete")
}
