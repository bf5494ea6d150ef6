package router

import (
	"vehicle-booking-service/internal/module/booking/handler"
	"vehicle-booking-service/internal/pkg/metrics"
	"vehicle-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware, metrics *metrics.Metrics) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	Api := app.Group("/api")

	v1 := Api.Group("/v1")
	v1.Post("/bookings", m.RequestContext, handlerBooking.CreateBooking)
	v1.Post("/bookings/complete", m.RequestContext, handlerBooking.CompleteBooking)

	return app

}
