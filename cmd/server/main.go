package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/QuangTung97/promo-pricing/config"
	"github.com/QuangTung97/promo-pricing/pkg/grpclib"
	"github.com/QuangTung97/promo-pricing/pkg/memtable"
	"github.com/QuangTung97/promo-pricing/pkg/metrics"
	"github.com/QuangTung97/promo-pricing/pkg/otellib"
	"github.com/QuangTung97/promo-pricing/repository"
	"github.com/QuangTung97/promo-pricing/service/admin"
	"github.com/QuangTung97/promo-pricing/service/httpapi"
	"github.com/QuangTung97/promo-pricing/service/loader"
	"github.com/QuangTung97/promo-pricing/service/pricing"
	"github.com/QuangTung97/promo-pricing/service/scheduler"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "promo-pricing"

type app struct {
	conf    config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics

	catalog *pricing.Catalog
	store   *pricing.Store

	loader    *loader.Loader
	scheduler *scheduler.Scheduler

	httpServer *http.Server
	grpcServer *grpc.Server
	health     *health.Server
}

func newApp(conf config.Config, logger *zap.Logger) *app {
	m := metrics.New()
	db := conf.MySQL.MustConnect(logger)

	provider := repository.NewProvider(db)
	campaignRepo := repository.NewCampaign()
	categoryRepo := repository.NewCategory()
	productRepo := repository.NewProduct()

	catalog := pricing.NewCatalog()
	store := pricing.NewStore()
	clock := pricing.NewSystemClock()

	engine := pricing.NewEngine(catalog, store,
		pricing.WithClock(clock),
		pricing.WithPrecision(conf.Pricing.Precision),
		pricing.WithPriceCache(memtable.New(conf.Pricing.PriceCacheSize)),
		pricing.WithMetrics(m),
	)

	tracer := otel.GetTracerProvider().Tracer("service")

	adminService := admin.NewService(
		provider, campaignRepo, categoryRepo, productRepo,
		catalog, store, clock, logger,
	)

	handler := httpapi.NewHandler(
		pricing.NewIEngineWrapper(engine, tracer, "pricing::"),
		admin.NewIServiceWrapper(adminService, tracer, "admin::"),
		clock, conf.Pricing.Precision, logger, m,
	)

	a := &app{
		conf:    conf,
		logger:  logger,
		metrics: m,

		catalog: catalog,
		store:   store,

		loader: loader.New(
			provider, campaignRepo, categoryRepo, productRepo,
			catalog, store, conf.Sync.ReloadInterval, logger, m,
		),

		httpServer: &http.Server{
			Addr:    conf.Server.HTTP.ListenString(),
			Handler: handler.Router(),
		},
		grpcServer: newGRPCServer(logger),
		health:     health.NewServer(),
	}

	if conf.Scheduler.Enabled {
		a.scheduler = scheduler.New(store, adminService, clock,
			conf.Scheduler.SweepInterval, logger, m)
	}

	grpc_health_v1.RegisterHealthServer(a.grpcServer, a.health)
	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(a.grpcServer)
	m.Registry().MustRegister(grpc_prometheus.DefaultServerMetrics)

	return a
}

func newGRPCServer(logger *zap.Logger) *grpc.Server {
	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otelgrpc.UnaryServerInterceptor(),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			otelgrpc.StreamServerInterceptor(),
			grpc_zap.StreamServerInterceptor(logger),
		),
	)
}

func (a *app) run(ctx context.Context) {
	if _, err := a.loader.Load(ctx); err != nil {
		a.logger.Fatal("initial snapshot load", zap.Error(err))
	}
	a.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	go a.metrics.ConsumeCampaignEvents(ctx, a.store.Subscribe(1024))

	a.loader.Start(ctx)
	if a.scheduler != nil {
		a.scheduler.Start(ctx)
	}

	a.logger.Info("starting servers",
		zap.String("http", a.conf.Server.HTTP.ListenString()),
		zap.String("grpc", a.conf.Server.GRPC.ListenString()),
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := a.httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			a.logger.Fatal("http server", zap.Error(err))
		}
		a.logger.Info("shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", a.conf.Server.GRPC.ListenString())
		if err != nil {
			a.logger.Fatal("grpc listen", zap.Error(err))
		}

		err = a.grpcServer.Serve(listener)
		if err != nil {
			a.logger.Fatal("grpc server", zap.Error(err))
		}
		a.logger.Info("shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	<-ctx.Done()

	a.health.Shutdown()
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	a.loader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a.grpcServer.GracefulStop()
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("shutdown http server", zap.Error(err))
	}

	wg.Wait()
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	shutdown, err := otellib.InitOtel(serviceName, conf.Jaeger)
	if err != nil {
		logger.Fatal("init opentelemetry", zap.Error(err))
	}
	defer func() { _ = shutdown(context.Background()) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newApp(conf, logger).run(ctx)
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}
