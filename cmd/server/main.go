package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	catalogcache "supplierhub/internal/catalog/cache"
	cataloghandler "supplierhub/internal/catalog/handler"
	catalogmetrics "supplierhub/internal/catalog/metrics"
	catalogservice "supplierhub/internal/catalog/service"
	catalogstore "supplierhub/internal/catalog/store"
	"supplierhub/internal/events"
	notificationhandler "supplierhub/internal/notification/handler"
	notificationservice "supplierhub/internal/notification/service"
	notificationstore "supplierhub/internal/notification/store"
	paymenthandler "supplierhub/internal/payment/handler"
	paymentservice "supplierhub/internal/payment/service"
	paymentstore "supplierhub/internal/payment/store"
	"supplierhub/internal/platform/config"
	"supplierhub/internal/platform/httpserver"
	"supplierhub/internal/platform/logger"
	"supplierhub/internal/platform/postgres"
	platformredis "supplierhub/internal/platform/redis"
	registrationhandler "supplierhub/internal/registration/handler"
	registrationmetrics "supplierhub/internal/registration/metrics"
	registrationservice "supplierhub/internal/registration/service"
	registrationstore "supplierhub/internal/registration/store"
	selectionhandler "supplierhub/internal/selection/handler"
	selectionmetrics "supplierhub/internal/selection/metrics"
	selectionservice "supplierhub/internal/selection/service"
	selectionstore "supplierhub/internal/selection/store"
	httptransport "supplierhub/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle
// small. Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Durable storage is optional: without a DSN the service runs on
	// memory stores (local development, demos).
	db, err := postgres.Open(cfg.PostgresDSN)
	if err != nil {
		log.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	bus := events.NewBus(256)

	// Catalog: store (+ seed when empty), optional cache, fallback.
	var catStore catalogservice.Store
	if db != nil {
		catStore = catalogstore.NewPostgres(db)
	} else {
		mem := catalogstore.NewInMemory()
		catalogstore.Seed(ctx, mem, time.Now())
		catStore = mem
	}
	catalogOpts := []catalogservice.Option{
		catalogservice.WithMetrics(catalogmetrics.New()),
		catalogservice.WithLogger(log),
	}
	if redisClient != nil {
		catalogOpts = append(catalogOpts,
			catalogservice.WithCache(catalogcache.NewRedis(redisClient.Client, config.CatalogCacheTTL)))
	}
	catalogSvc := catalogservice.New(catStore, catalogOpts...)

	// Registration: the sink confirmed selections land in.
	var regStore registrationservice.Store
	if db != nil {
		regStore = registrationstore.NewPostgres(db)
	} else {
		regStore = registrationstore.NewInMemory()
	}
	registrationSvc := registrationservice.New(regStore,
		registrationservice.WithPublisher(bus),
		registrationservice.WithMetrics(registrationmetrics.New()),
		registrationservice.WithLogger(log),
	)

	selectionSvc := selectionservice.New(selectionstore.NewInMemory(), catalogSvc, registrationSvc,
		selectionservice.WithPublisher(bus),
		selectionservice.WithMetrics(selectionmetrics.New()),
		selectionservice.WithLogger(log),
	)

	paymentSvc := paymentservice.New(paymentstore.NewInMemory(),
		paymentservice.WithPublisher(bus),
		paymentservice.WithLogger(log),
	)

	notificationSvc := notificationservice.New(notificationstore.NewInMemory(),
		notificationservice.WithLogger(log),
	)

	// Bus sinks: the notification builder always; Kafka when configured.
	sinks := []events.Sink{notificationSvc}
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := events.NewKafkaPublisher(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		sinks = append(sinks, kafka)
	}
	worker := events.NewWorker(bus, log, sinks...)

	router := httptransport.NewRouter(
		cataloghandler.New(catalogSvc, log),
		selectionhandler.New(selectionSvc, log),
		registrationhandler.New(registrationSvc, log),
		paymenthandler.New(paymentSvc, log),
		notificationhandler.New(notificationSvc, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Info("starting supplierhub", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		if err := worker.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
