package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/twmb/franz-go/pkg/kgo"

	lifecycleconfig "custodian/internal/lifecycle/config"
	"custodian/internal/lifecycle/handler"
	lifecyclemetrics "custodian/internal/lifecycle/metrics"
	"custodian/internal/lifecycle/ports"
	"custodian/internal/lifecycle/registry"
	"custodian/internal/lifecycle/retention"
	"custodian/internal/lifecycle/service"
	"custodian/internal/lifecycle/store/cache"
	"custodian/internal/lifecycle/store/keydestroy"
	"custodian/internal/lifecycle/store/relational"
	"custodian/internal/lifecycle/store/remote"
	"custodian/internal/platform/config"
	"custodian/internal/platform/httpserver"
	"custodian/internal/platform/logger"
	"custodian/internal/platform/middleware"
	platformpg "custodian/internal/platform/postgres"
	platformredis "custodian/internal/platform/redis"
	audit "custodian/pkg/platform/audit"
	auditmemory "custodian/pkg/platform/audit/store/memory"
	auditpg "custodian/pkg/platform/audit/store/postgres"
	auditworker "custodian/pkg/platform/audit/worker"
)

// main wires explicit dependencies: the module registry and every adapter
// handle arrive as constructor arguments and live for the process lifetime.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := platformpg.New(ctx, cfg.PostgresURL)
	if err != nil {
		log.Error("postgres init failed", "error", err)
		os.Exit(1)
	}
	redisClient, err := platformredis.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error("redis init failed", "error", err)
		os.Exit(1)
	}

	if cfg.KeyServiceURL == "" {
		// Key destruction is on the critical path of every erasure; a
		// deployment without it cannot honor erasure requests at all.
		log.Error("CUSTODIAN_KEY_SERVICE_URL is required")
		os.Exit(1)
	}
	keys := keydestroy.New(cfg.KeyServiceURL)

	// Adapter slice order is the erasure order: systems of record first,
	// derived stores after, key destruction last inside the eraser.
	var adapters []ports.BackendAdapter
	var relStore *relational.Store
	if db != nil {
		relStore = relational.New(db)
		adapters = append(adapters, relStore)
	}
	if redisClient != nil {
		adapters = append(adapters, cache.New(redisClient.Client))
	}
	if cfg.GraphStoreURL != "" {
		adapters = append(adapters, remote.NewGraph(cfg.GraphStoreURL))
	}
	if cfg.VectorStoreURL != "" {
		adapters = append(adapters, remote.NewVector(cfg.VectorStoreURL))
	}
	if cfg.MemoryStoreURL != "" {
		adapters = append(adapters, remote.NewMemory(cfg.MemoryStoreURL))
	}

	// Feature modules register here during wiring; duplicates are rejected
	// at startup rather than silently replaced.
	reg := registry.New()

	var auditStore audit.Store
	if db != nil {
		auditStore = auditpg.New(db)
	} else {
		auditStore = auditmemory.NewInMemoryStore()
	}
	publisher := audit.NewPublisher(auditStore)

	metrics := lifecyclemetrics.New()

	svc, err := service.New(reg, adapters, keys,
		service.WithLogger(log),
		service.WithAuditPublisher(publisher),
		service.WithMetrics(metrics),
		service.WithConfig(lifecycleconfig.DefaultConfig()),
	)
	if err != nil {
		log.Error("service init failed", "error", err)
		os.Exit(1)
	}

	if len(cfg.KafkaBrokers) > 0 && db != nil {
		kafkaClient, err := kgo.NewClient(kgo.SeedBrokers(cfg.KafkaBrokers...))
		if err != nil {
			log.Error("kafka init failed", "error", err)
			os.Exit(1)
		}
		defer kafkaClient.Close()

		relay, err := auditworker.NewRelay(db, kafkaClient, cfg.AuditTopic, auditworker.WithLogger(log))
		if err != nil {
			log.Error("audit relay init failed", "error", err)
			os.Exit(1)
		}
		go func() {
			if err := relay.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("audit relay stopped", "error", err)
			}
		}()
	}

	if relStore != nil && cfg.RetentionSweepSpec != "" {
		sweeper, err := retention.NewSweeper(retention.DefaultPolicy(), relStore,
			retention.WithLogger(log),
			retention.WithAuditPublisher(publisher),
		)
		if err != nil {
			log.Error("retention sweeper init failed", "error", err)
			os.Exit(1)
		}
		if _, err := sweeper.Start(cfg.RetentionSweepSpec); err != nil {
			log.Error("retention sweeper schedule failed", "error", err)
			os.Exit(1)
		}
		defer sweeper.Stop()
	}

	validator := middleware.NewJWTValidator(cfg.JWTSigningKey)
	h := handler.New(svc, log, validator)

	router := chi.NewRouter()
	h.Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting custodian", "addr", cfg.Addr, "adapters", len(adapters))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
