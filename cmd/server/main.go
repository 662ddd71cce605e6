package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/immerseindia/backend/api/handler"
	"github.com/immerseindia/backend/internal/config"
	"github.com/immerseindia/backend/internal/infrastructure/monitor"
	"github.com/immerseindia/backend/internal/infrastructure/orientation"
	pgInfra "github.com/immerseindia/backend/internal/infrastructure/postgres"
	redisInfra "github.com/immerseindia/backend/internal/infrastructure/redis"
	"github.com/immerseindia/backend/internal/middleware"
	"github.com/immerseindia/backend/internal/router"
	"github.com/immerseindia/backend/internal/services"
	"github.com/immerseindia/backend/internal/services/lifecycle"
	"github.com/immerseindia/backend/pkg/httpcontext"
	"github.com/immerseindia/backend/pkg/logger"
	"github.com/immerseindia/backend/repository/postgres"
	redisRepo "github.com/immerseindia/backend/repository/redis"
	"github.com/immerseindia/backend/usecase"
	authUC "github.com/immerseindia/backend/usecase/auth"
	"github.com/immerseindia/backend/usecase/browse"
	"github.com/immerseindia/backend/usecase/dashboard"
	experienceUC "github.com/immerseindia/backend/usecase/experience"
	imageUC "github.com/immerseindia/backend/usecase/image"
	itineraryUC "github.com/immerseindia/backend/usecase/itinerary"
	searchUC "github.com/immerseindia/backend/usecase/search"
	updatesUC "github.com/immerseindia/backend/usecase/updates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	orientationStore, err := orientation.Open(cfg.Classifier.StorePath)
	if err != nil {
		zapLogger.Fatal("failed to open orientation store", zap.Error(err))
	}
	manager.Register("orientation_store", func(ctx context.Context) error {
		return orientationStore.Close()
	})

	mon := monitor.New(pool, redisClient, orientationStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	experienceRepo := postgres.NewExperienceRepository(pool)
	itineraryRepo := postgres.NewItineraryRepository(pool)
	imageRepo := postgres.NewImageRepository(pool)
	updateRepo := postgres.NewUpdateRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.JWT.SessionTTL)

	store := usecase.NewStore()

	experienceManager := experienceUC.New(experienceRepo, store, zapLogger)
	itineraryManager := itineraryUC.New(itineraryRepo, store, zapLogger)
	imageManager := imageUC.New(imageRepo, store, zapLogger)
	updateManager := updatesUC.New(updateRepo, store, zapLogger)

	warmup(appCtx, zapLogger,
		func(ctx context.Context) error { _, err := experienceManager.Refresh(ctx); return err },
		func(ctx context.Context) error { _, err := itineraryManager.Refresh(ctx); return err },
		func(ctx context.Context) error { _, err := imageManager.Refresh(ctx); return err },
		func(ctx context.Context) error { _, err := updateManager.Refresh(ctx); return err },
	)

	fetcher := services.NewImageFetcher(cfg.Classifier.FetchTimeout, cfg.Classifier.MaxBodySize)

	classifier := services.NewClassifier(store, orientationStore, fetcher, zapLogger, services.ClassifierConfig{
		Interval: cfg.Classifier.SweepInterval,
	})
	classifier.Start()
	manager.Register("classifier", func(ctx context.Context) error {
		classifier.Stop(ctx)
		return nil
	})

	authUseCase := authUC.New(userRepo, sessionRepo, authUC.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		SessionTTL: cfg.JWT.SessionTTL,
	}, zapLogger)
	searchEngine := searchUC.New(store, zapLogger)
	viewer := browse.New(store, orientationStore)
	shells := dashboard.NewRegistry()

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:       apiHandler.NewAuthHandler(authUseCase, shells, ctxAdapter, zapLogger),
		Experience: apiHandler.NewExperienceHandler(experienceManager, viewer, ctxAdapter, zapLogger),
		Itinerary:  apiHandler.NewItineraryHandler(itineraryManager, viewer, ctxAdapter, zapLogger),
		Image:      apiHandler.NewImageHandler(imageManager, viewer, fetcher, ctxAdapter, zapLogger),
		Update:     apiHandler.NewUpdateHandler(updateManager, viewer, ctxAdapter, zapLogger),
		Search:     apiHandler.NewSearchHandler(searchEngine, ctxAdapter, zapLogger),
		Dashboard:  apiHandler.NewDashboardHandler(shells, viewer, ctxAdapter, zapLogger),
		Health:     apiHandler.NewHealthHandler(mon, store, ctxAdapter, zapLogger),
	}

	sessionAuth := middleware.SessionAuth(cfg.JWT.Secret, authUseCase, zapLogger)
	requireAdmin := middleware.RequireAdmin(zapLogger)
	r := router.New(handlers, sessionAuth, requireAdmin)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

// warmup loads the initial catalog. A cold store is tolerated: the managers
// refetch after every mutation, so a failed warmup heals on first use.
func warmup(ctx context.Context, logger *zap.Logger, loaders ...func(context.Context) error) {
	warmCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	for _, load := range loaders {
		if err := load(warmCtx); err != nil {
			logger.Warn("catalog warmup failed", zap.Error(err))
		}
	}
}
