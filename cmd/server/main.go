package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	activityhandler "carelog/internal/activity/handler"
	activitymetrics "carelog/internal/activity/metrics"
	activityservice "carelog/internal/activity/service"
	activitystore "carelog/internal/activity/store"
	activitycache "carelog/internal/activity/store/cache"
	"carelog/internal/audit"
	audithandler "carelog/internal/audit/handler"
	auditpostgres "carelog/internal/audit/store/postgres"
	homehandler "carelog/internal/home/handler"
	homeservice "carelog/internal/home/service"
	homestore "carelog/internal/home/store"
	"carelog/internal/platform/config"
	"carelog/internal/platform/httpserver"
	"carelog/internal/platform/logger"
	platformmetrics "carelog/internal/platform/metrics"
	"carelog/internal/platform/middleware"
	platformredis "carelog/internal/platform/redis"
	reporthandler "carelog/internal/report/handler"
	reportservice "carelog/internal/report/service"
	residenthandler "carelog/internal/resident/handler"
	residentservice "carelog/internal/resident/service"
	residentstore "carelog/internal/resident/store"
	residencyhandler "carelog/internal/residency/handler"
	residencymetrics "carelog/internal/residency/metrics"
	residencyservice "carelog/internal/residency/service"
	residencystore "carelog/internal/residency/store"
	httptransport "carelog/internal/transport/http"
	workhandler "carelog/internal/work/handler"
	workservice "carelog/internal/work/service"
	workstore "carelog/internal/work/store"
	"carelog/pkg/platform/tx"
)

const auditBuffer = 1024

// main wires the stores, services and transport together. Business logic
// lives in the internal service packages; this file only composes them.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		log.Error("failed to open postgres", "error", err.Error())
		os.Exit(1)
	}
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Error("postgres unreachable", "error", err.Error())
		os.Exit(1)
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect redis", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	httpMetrics := platformmetrics.New()
	txRunner := tx.NewSQLRunner(db)

	auditStore := auditpostgres.New(db)
	auditPublisher := audit.NewAsyncPublisher(auditBuffer)
	auditWorker := audit.NewWorker(auditStore, auditPublisher.Inbox())

	residents := residentstore.NewPostgres(db)
	homes := homestore.NewPostgres(db)
	residencies := residencystore.NewPostgres(db)
	activities := activitystore.NewPostgres(db)
	work := workstore.NewPostgres(db)

	residentSvc := residentservice.New(residents, residentservice.WithLogger(log))
	homeSvc := homeservice.New(homes, homeservice.WithLogger(log))
	residencySvc := residencyservice.New(residencies, residents, homes, txRunner,
		residencyservice.WithLogger(log),
		residencyservice.WithMetrics(residencymetrics.New()),
		residencyservice.WithAuditPublisher(auditPublisher),
	)

	activityOpts := []activityservice.Option{
		activityservice.WithLogger(log),
		activityservice.WithAuditPublisher(auditPublisher),
	}
	activityMetrics := activitymetrics.New()
	activityOpts = append(activityOpts, activityservice.WithMetrics(activityMetrics))
	if redisClient != nil {
		countCache := activitycache.New(redisClient.Client, config.ActivityCountCacheTTL, activityMetrics)
		activityOpts = append(activityOpts, activityservice.WithCountCache(countCache))
	}
	activitySvc := activityservice.New(activities, residencySvc, residents, txRunner, activityOpts...)

	reportSvc := reportservice.New(activitySvc, residents, reportservice.WithLogger(log))
	workSvc := workservice.New(work, homes, workservice.WithLogger(log))

	health := map[string]httptransport.HealthCheck{
		"postgres": func(ctx context.Context) error { return db.PingContext(ctx) },
	}
	if redisClient != nil {
		health["redis"] = redisClient.Health
	}

	router := httptransport.NewRouter(
		httptransport.Options{
			Middleware: []func(http.Handler) http.Handler{
				middleware.RequestID,
				middleware.Recovery(log),
				middleware.Logger(log),
			},
			Metrics: httpMetrics,
			Health:  health,
		},
		residenthandler.New(residentSvc, log),
		homehandler.New(homeSvc, log),
		residencyhandler.New(residencySvc, log),
		activityhandler.New(activitySvc, log),
		reporthandler.New(reportSvc, log),
		workhandler.New(workSvc, log),
		audithandler.New(auditStore, log),
	)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("carelog listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := auditWorker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("carelog exited", "error", err.Error())
		os.Exit(1)
	}
	log.Info("carelog stopped")
}
