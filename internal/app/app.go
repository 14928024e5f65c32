package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/food-delivery/internal/cfg"
	v1Grpc "github.com/DRSN-tech/food-delivery/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/food-delivery/internal/delivery/v1/http"
	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/infrastructure/backend"
	"github.com/DRSN-tech/food-delivery/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/food-delivery/internal/infrastructure/minio"
	"github.com/DRSN-tech/food-delivery/internal/infrastructure/osrm"
	s3Repo "github.com/DRSN-tech/food-delivery/internal/repository/minio"
	"github.com/DRSN-tech/food-delivery/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/food-delivery/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/food-delivery/internal/repository/redis"
	redisConv "github.com/DRSN-tech/food-delivery/internal/repository/redis/converter"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/clients"
	"github.com/DRSN-tech/food-delivery/pkg/closer"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/DRSN-tech/food-delivery/pkg/postgres"
	"github.com/DRSN-tech/food-delivery/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	initTimeout       = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
	forcedCloseWindow = 3 * time.Second
	topicTimeout      = 10 * time.Second
)

// App собирает зависимости сервиса и управляет его жизненным циклом.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv      *v1Http.Server
	grpcSrv      *v1Grpc.GRPCServer
	outboxWorker *kafka.OutboxWorker
	closer       *closer.Closer
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	cl := closer.NewCloser(forcedCloseWindow)

	initCtx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	db, err := initPGDB(initCtx, logger, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.AddSimple("postgres", db.Close)

	redisClient := clients.NewRedisClient(cfg.Redis)
	if err := redisClient.Ping(initCtx); err != nil {
		_ = cl.Close(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add("redis", redisClient.Close)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		_ = cl.Close(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := clients.EnsureBucket(initCtx, minioClient, cfg.Minio.BucketName); err != nil {
		_ = cl.Close(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// Репозитории PostgreSQL
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, pgdbConv.NewCategoryConverterImpl())
	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverterImpl())
	restaurantRepo := pgdb.NewRestaurantRepo(db.Pool, pgdbConv.NewRestaurantConverterImpl())
	orderRepo := pgdb.NewOrderRepo(db.Pool, pgdbConv.NewOrderConverterImpl())
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.NewOutboxEventConverterImpl())
	txRunner := tr.NewRunner(db.Pool)

	// Репозитории Redis
	cartRepo := redis.NewCartRepo(redisClient, redisConv.NewCartConverterImpl(), cfg.Redis, logger)
	sessionRepo := redis.NewSessionRepo(redisClient, redisConv.NewSessionConverterImpl(), cfg.Redis, logger)
	catalogCache := redis.NewCatalogCacheRepo(redisClient, redisConv.NewCatalogConverterImpl(), cfg.Redis, logger)
	submitGuard := redis.NewSubmitGuard(redisClient, cfg.Redis)

	// Инфраструктура
	images := minioInfra.NewImageResolver(s3Repo.NewImageRepo(minioClient, cfg.Minio), cfg.Minio, logger)
	backendClient := backend.NewClient(cfg.Backend, logger)
	routes := osrm.NewClient(cfg.Delivery)

	producer := kafka.NewOrderEventProducer(cfg.Kafka, logger)
	cl.Add("kafka producer", func(context.Context) error { return producer.Close() })
	topicCtx, cancelTopic := context.WithTimeout(context.Background(), topicTimeout)
	err = producer.EnsureTopic(topicCtx)
	cancelTopic()
	if err != nil {
		// Outbox копит события, пока брокер недоступен.
		logger.Warnf("kafka topic check failed, events will stay in outbox: %v", err)
	}

	defaultLang := domain.ParseLanguage(cfg.Storefront.DefaultLanguage, domain.LanguageRu)
	tariff := domain.DeliveryTariff{
		BaseRadiusKm: cfg.Delivery.BaseRadiusKm,
		BasePrice:    cfg.Delivery.BasePrice,
		PricePerKm:   cfg.Delivery.PricePerKm,
	}

	// Usecases
	menuUC := usecase.NewMenuUC(categoryRepo, productRepo, restaurantRepo, images, logger)
	orderUC := usecase.NewOrderUC(orderRepo, restaurantRepo, outboxRepo, kafka.NewProtoEncoder(), txRunner, logger)
	deliveryUC := usecase.NewDeliveryUC(restaurantRepo, routes, tariff, cfg.Delivery.StraightLineFactor, logger)

	catalogUC := usecase.NewCatalogUC(backendClient, catalogCache, sessionRepo, logger, defaultLang)
	sessionUC := usecase.NewSessionUC(sessionRepo, cartRepo, backendClient, logger, defaultLang)
	cartUC := usecase.NewCartUC(cartRepo, sessionRepo, catalogUC, logger, defaultLang)
	checkoutUC := usecase.NewCheckoutUC(cartRepo, sessionRepo, submitGuard, backendClient, logger, cfg.Storefront.Location, defaultLang)

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, cfg.Kafka, postgres.DSN(cfg.Db))

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(v1Http.UseCases{
		Menu:     menuUC,
		Order:    orderUC,
		Delivery: deliveryUC,
		Session:  sessionUC,
		Catalog:  catalogUC,
		Cart:     cartUC,
		Checkout: checkoutUC,
	}, defaultLang)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc, logger)
	grpcSrv.RegisterServices()

	return &App{
		cfg:          cfg,
		logger:       logger,
		httpSrv:      v1Http.NewServer(r, cfg.Http, logger),
		grpcSrv:      grpcSrv,
		outboxWorker: outboxWorker,
		closer:       cl,
	}, nil
}

// Run запускает серверы и воркер и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	a.outboxWorker.Start(workerCtx)
	a.closer.Add("outbox worker", func(ctx context.Context) error {
		stopWorker()
		return a.outboxWorker.Stop(ctx)
	})

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			grpcErrCh <- err
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		if err := a.httpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	a.grpcSrv.SetServing(true)

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	a.grpcSrv.SetServing(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.grpcSrv.Stop(shutdownCtx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			a.logger.Errorf(err, "gRPC server shutdown error")
		} else {
			a.logger.Warnf("gRPC server shutdown timeout")
		}
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "failed to release resources")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
