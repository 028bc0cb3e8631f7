package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/UniLog/internal/broker"
	kafkabroker "github.com/Egor213/UniLog/internal/broker/kafka"
	"github.com/Egor213/UniLog/internal/config"
	grpccontroller "github.com/Egor213/UniLog/internal/controller/grpc"
	httpv1 "github.com/Egor213/UniLog/internal/controller/http/v1"
	"github.com/Egor213/UniLog/internal/metrics"
	"github.com/Egor213/UniLog/internal/repo"
	"github.com/Egor213/UniLog/internal/service"
	errorsUtils "github.com/Egor213/UniLog/pkg/errors"
	"github.com/Egor213/UniLog/pkg/grpcserver"
	"github.com/Egor213/UniLog/pkg/httpserver"
	"github.com/Egor213/UniLog/pkg/logger"
	"github.com/Egor213/UniLog/pkg/postgres"
	"github.com/benbjohnson/clock"
	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/health"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Metrics
	counters := metrics.New()

	// Broker
	var producer broker.Producer = broker.NopProducer{}
	if len(cfg.Kafka.Brokers) > 0 {
		log.WithField("brokers", cfg.Kafka.Brokers).Info("Kafka events enabled")
		kp := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer func() {
			if err := kp.Close(); err != nil {
				log.Error(errorsUtils.WrapPathErr(err))
			}
		}()
		producer = kp
	}

	// Services
	sysClock := clock.New()
	deps := service.ServicesDependencies{
		Repos:          repositories,
		Counters:       counters,
		BrokerProducer: producer,
		Clock:          sysClock,
		TraceRoot:      cfg.Trace.RootDir,
		SweepInterval:  cfg.Sweeper.Interval,
		HomeTenant:     cfg.Sweeper.HomeTenant,
	}
	services := service.NewServices(deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tenants
	if err := services.Setup.InstallAll(ctx, cfg.Tenants.IDs); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Retention sweeper
	go services.Sweeper.Run(ctx)

	// gRPC Server
	log.Infof("Starting gRPC server...")
	log.Debugf("Server port: %s", cfg.GRPC.Port)
	healthServer := health.NewServer()
	grpcServer, err := grpcserver.New(grpccontroller.RegisterServices(healthServer), grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	go grpccontroller.NewReadinessWatcher(pg, healthServer, sysClock, 0).Run(ctx)

	// HTTP API server
	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	apiHandler.HideBanner = true
	apiHandler.Use(metrics.Middleware())
	httpv1.ConfigureRouter(apiHandler, httpv1.NewRouterDependencies(services))
	httpServer := httpserver.New(apiHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	cancel()
	healthServer.Shutdown()

	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
}
