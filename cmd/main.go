package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"vehicle-booking-service/config"
	"vehicle-booking-service/internal/module/booking/events"
	"vehicle-booking-service/internal/module/booking/handler"
	"vehicle-booking-service/internal/module/booking/repositories"
	"vehicle-booking-service/internal/module/booking/usecases"
	"vehicle-booking-service/internal/pkg/database"
	"vehicle-booking-service/internal/pkg/http"
	log_internal "vehicle-booking-service/internal/pkg/log"
	"vehicle-booking-service/internal/pkg/messagestream"
	"vehicle-booking-service/internal/pkg/metrics"
	"vehicle-booking-service/internal/pkg/middleware"
	"vehicle-booking-service/internal/pkg/tracing"
	"vehicle-booking-service/internal/pkg/validator"
	router "vehicle-booking-service/internal/route"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

type closer func(ctx context.Context) error

func main() {
	cfg := config.InitConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, logger, closers := initService(ctx, cfg)

	logger.Info(ctx, "starting http server", "port", cfg.HttpServer.Port, "stage", cfg.Stage)
	if err := http.StartHttpServer(ctx, app, cfg.HttpServer.Port, cfg.HttpServer.ShutdownTimeout); err != nil {
		logger.Error(ctx, "http server stopped", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HttpServer.ShutdownTimeout)
	defer cancel()
	// reverse order of creation
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](shutdownCtx); err != nil {
			logger.Error(shutdownCtx, "error during shutdown", "error", err)
		}
	}
}

func initService(ctx context.Context, cfg *config.Config) (*fiber.App, log_internal.Logger, []closer) {
	var closers []closer

	// init logger
	logZap := log_internal.SetupLogger(cfg.Log.Level)
	logger := log_internal.New(logZap)
	closers = append(closers, func(context.Context) error {
		_ = logZap.Sync()
		return nil
	})

	// init tracer
	tp, shutdownTracer, err := tracing.InitTracer(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	closers = append(closers, closer(shutdownTracer))

	// init database
	repo, closeDB := initRepository(ctx, cfg, logger)
	closers = append(closers, closeDB)

	// init message stream
	publisher := messagestream.NewPublisher(&cfg.MessageStream, messagestream.NewLoggerAdapter(logZap))
	closers = append(closers, func(context.Context) error {
		return publisher.Close()
	})

	bookingRepo := repositories.NewTraced(repo, tp)
	bookingEvents := events.NewTraced(events.New(publisher, cfg.MessageStream.Bus, logger), tp)
	bookingUsecase := usecases.New(bookingRepo, bookingEvents)

	bookingMetrics := metrics.New(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	bookingHandler := handler.BookingHandler{
		Log:       logger,
		Validator: validator.New(),
		Usecase:   bookingUsecase,
		Metrics:   bookingMetrics,
	}
	middleware := middleware.Middleware{
		Log:     logger,
		Service: cfg.Service,
		Tracer:  tp,
	}

	serverHttp := http.SetupHttpEngine(cfg)
	r := router.Initialize(serverHttp, &bookingHandler, &middleware, bookingMetrics)

	return r, logger, closers
}

func initRepository(ctx context.Context, cfg *config.Config, logger log_internal.Logger) (repositories.Repositories, closer) {
	if cfg.Database.Driver == "postgres" {
		db, err := database.InitPostgres(cfg.Database)
		if err != nil {
			log.Fatal(err)
		}
		if err := repositories.EnsureSchema(ctx, db); err != nil {
			log.Fatal(err)
		}
		return repositories.NewPostgres(db, logger), func(context.Context) error {
			return db.Close()
		}
	}

	mongo := database.NewMongo(cfg.Database)
	return repositories.NewMongo(mongo, logger), mongo.Close
}
