package http

import (
	"context"
	"time"
	"vehicle-booking-service/config"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

const StageProd = "prod"

func SetupHttpEngine(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Service.Name,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		Immutable:             true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if corsCfg, ok := CorsConfig(cfg.Stage, cfg.HttpServer.AllowOrigins); ok {
		app.Use(cors.New(corsCfg))
	}

	return app
}

// CorsConfig allows any origin outside prod. In prod only the configured
// origins are allowed, none when the list is empty.
func CorsConfig(stage, allowOrigins string) (cors.Config, bool) {
	if stage != StageProd {
		return cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,OPTIONS"}, true
	}
	if allowOrigins == "" {
		return cors.Config{}, false
	}
	return cors.Config{AllowOrigins: allowOrigins, AllowMethods: "GET,POST,OPTIONS"}, true
}

// StartHttpServer serves until ctx is done, then drains in-flight requests for
// at most shutdownTimeout.
func StartHttpServer(ctx context.Context, app *fiber.App, port string, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
