package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/msr-works/storefront-backend/internal/cfg"
	v1Http "github.com/msr-works/storefront-backend/internal/delivery/v1/http"
	"github.com/msr-works/storefront-backend/internal/domain"
	"github.com/msr-works/storefront-backend/internal/infrastructure/kafka"
	minioInfra "github.com/msr-works/storefront-backend/internal/infrastructure/minio"
	"github.com/msr-works/storefront-backend/internal/repository/memory"
	"github.com/msr-works/storefront-backend/internal/repository/pgdb"
	pgdbConv "github.com/msr-works/storefront-backend/internal/repository/pgdb/converter"
	redisRepo "github.com/msr-works/storefront-backend/internal/repository/redis"
	redisConv "github.com/msr-works/storefront-backend/internal/repository/redis/converter"
	"github.com/msr-works/storefront-backend/internal/usecase"
	"github.com/msr-works/storefront-backend/pkg/clients"
	"github.com/msr-works/storefront-backend/pkg/closer"
	"github.com/msr-works/storefront-backend/pkg/e"
	"github.com/msr-works/storefront-backend/pkg/logger"
	"github.com/msr-works/storefront-backend/pkg/postgres"
)

//	@title			Storefront Backend API
//	@version		1.0
//	@description	Сессионный бэкенд витрины мебельного магазина: каталог, корзина, навигация, оформление заказа.
//	@host			localhost:8080
//	@BasePath		/api/v1

func Run() {
	logger := logger.NewLogrusLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	appCloser := closer.New(2 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	appCloser.Add(func(_ context.Context) error {
		db.Close()
		return nil
	})

	// Каталог читается из Postgres один раз на старте: витрина работает
	// поверх неизменяемого снимка, перезагрузка каталога — рестарт приложения.
	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	catalogRepo := pgdb.NewCatalogRepo(db.Pool, prConv, catConv)

	catalogCtx, catalogCancel := context.WithTimeout(context.Background(), 30*time.Second)
	catalog, err := usecase.LoadCatalog(catalogCtx, catalogRepo)
	catalogCancel()
	if err != nil {
		logger.Errorf(err, "failed to load catalog")
		os.Exit(1)
	}
	logger.Infof("catalog loaded: %d products", catalog.Len())

	sessions, err := initSessionStore(logger, cfg, catalog, appCloser)
	if err != nil {
		logger.Errorf(err, "failed to initialize session store")
		os.Exit(1)
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	assets := minioInfra.NewAssetsInfra(minioClient, cfg.Minio, logger)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	appCloser.Add(func(_ context.Context) error {
		return producer.Close()
	})

	validator := domain.NewCheckoutValidator(domain.DefaultRegionRule)

	storefrontUC := usecase.NewStorefrontUC(
		catalog,
		sessions,
		assets,
		producer,
		validator,
		clock.New(),
		cfg.Payment,
		logger,
	)
	appCloser.Add(storefrontUC.WaitForPayments)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(storefrontUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := appCloser.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

// initSessionStore выбирает хранилище сессий по конфигурации:
// память процесса по умолчанию, Redis с TTL — для нескольких реплик.
func initSessionStore(logger logger.Logger, cfg *config.Config, catalog *domain.Catalog,
	appCloser *closer.Closer) (usecase.SessionRepository, error) {
	if cfg.Session.Store != config.SessionStoreRedis {
		logger.Infof("session store: memory")
		return memory.NewSessionRepo(), nil
	}

	redisClient := clients.NewRedisClient(cfg.Redis)

	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	appCloser.Add(func(_ context.Context) error {
		return redisClient.Client.Close()
	})

	logger.Infof("session store: redis, ttl %s", cfg.Session.TTL)
	sessConv := redisConv.NewSessionConverterImpl()
	return redisRepo.NewSessionRepo(redisClient, sessConv, catalog, cfg.Session, logger), nil
}
