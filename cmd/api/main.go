package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/chaithanya-077/ridewave-r/internal/api/http"
	"github.com/chaithanya-077/ridewave-r/internal/api/http/handlers"
	"github.com/chaithanya-077/ridewave-r/internal/auth"
	"github.com/chaithanya-077/ridewave-r/internal/config"
	"github.com/chaithanya-077/ridewave-r/internal/events"
	"github.com/chaithanya-077/ridewave-r/internal/observability"
	"github.com/chaithanya-077/ridewave-r/internal/persistence"
	"github.com/chaithanya-077/ridewave-r/internal/repository"
	"github.com/chaithanya-077/ridewave-r/internal/service"
	"github.com/chaithanya-077/ridewave-r/internal/session"
	"github.com/chaithanya-077/ridewave-r/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	bikeRepo := repository.NewBikeRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{UserRepo: userRepo})
	catalogService := service.NewCatalogService(bikeRepo)
	bookingService := service.NewBookingService(service.BookingDependencies{
		BookingRepo: bookingRepo,
		BikeRepo:    bikeRepo,
		Dispatcher:  dispatcher,
	})
	reportService := service.NewReportService(userRepo, bookingRepo)

	confirmations := session.NewRedisConfirmationStore(redis.Client)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Bikes:          handlers.NewBikesHandler(catalogService),
		Bookings:       handlers.NewBookingsHandler(bookingService, confirmations, logger),
		Admin:          handlers.NewAdminHandler(bookingService, reportService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
