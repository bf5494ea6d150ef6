package router_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"vehicle-booking-service/config"
	"vehicle-booking-service/internal/module/booking/handler"
	"vehicle-booking-service/internal/module/booking/mocks"
	"vehicle-booking-service/internal/module/booking/models/response"
	internal_http "vehicle-booking-service/internal/pkg/http"
	log_internal "vehicle-booking-service/internal/pkg/log"
	"vehicle-booking-service/internal/pkg/metrics"
	"vehicle-booking-service/internal/pkg/middleware"
	"vehicle-booking-service/internal/pkg/validator"
	router "vehicle-booking-service/internal/route"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestInitialize(t *testing.T) {
	cfg := &config.Config{Stage: "test", Service: config.ServiceConfig{Name: "VehicleBookingService", Domain: "Vehicle"}}
	usecaseMock := mocks.NewUsecase(t)
	m := metrics.NewRegistry()

	h := &handler.BookingHandler{
		Log:       log_internal.Nop(),
		Validator: validator.New(),
		Usecase:   usecaseMock,
		Metrics:   m,
	}
	mw := &middleware.Middleware{Log: log_internal.Nop(), Service: cfg.Service, Tracer: noop.NewTracerProvider()}
	app := router.Initialize(internal_http.SetupHttpEngine(cfg), h, mw, m)

	usecaseMock.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
		Return(response.VehicleBooking{BookingID: "b-1", Status: "BOOKED", UserID: "user-42"}, nil).Once()

	req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(
		`{"userId":"user-42","startDate":"2024-07-01T09:15:00Z","endDate":"2024-07-02T15:45:00Z"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))

	resp, err = app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "OK", string(body))

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `vehicle_booking_success_total{operation="CreateBooking"} 1`)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/bookings", nil))
	require.NoError(t, err)
	assert.Equal(t, 405, resp.StatusCode)
}
