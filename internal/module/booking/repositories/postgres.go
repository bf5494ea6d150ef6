package repositories

import (
	"context"
	"database/sql"
	"time"
	"vehicle-booking-service/internal/module/booking/models/entity"
	"vehicle-booking-service/internal/pkg/errors"
	"vehicle-booking-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const Schema = `CREATE TABLE IF NOT EXISTS vehicle_bookings (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_id TEXT NOT NULL,
	start_date TIMESTAMPTZ NOT NULL,
	end_date TIMESTAMPTZ NOT NULL,
	service_plan_id TEXT,
	vehicle JSONB,
	options JSONB,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertBookingQuery = `INSERT INTO vehicle_bookings (user_id, start_date, end_date, service_plan_id, vehicle, options, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`

type postgresRepository struct {
	db  *sqlx.DB
	log log.Logger
}

func NewPostgres(db *sqlx.DB, log log.Logger) Repositories {
	return &postgresRepository{
		db:  db,
		log: log,
	}
}

// EnsureSchema creates the bookings table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return errors.Persistence("error create vehicle_bookings table", err)
	}
	return nil
}

// CreateBooking implements Repositories.
func (r *postgresRepository) CreateBooking(ctx context.Context, booking entity.VehicleBooking) (entity.VehicleBooking, error) {
	r.log.Info(ctx, "saving booking to database", "userId", booking.UserID)

	vehicle, err := jsonColumn(booking.Vehicle != nil, booking.Vehicle)
	if err != nil {
		return entity.VehicleBooking{}, errors.Persistence("error marshal vehicle", err)
	}
	options, err := jsonColumn(booking.Options != nil, booking.Options)
	if err != nil {
		return entity.VehicleBooking{}, errors.Persistence("error marshal booking options", err)
	}

	servicePlanID := sql.NullString{}
	if booking.ServicePlanID != nil {
		servicePlanID = sql.NullString{String: *booking.ServicePlanID, Valid: true}
	}

	var (
		id        uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)
	err = r.db.QueryRowxContext(ctx, insertBookingQuery,
		booking.UserID,
		booking.StartDate,
		booking.EndDate,
		servicePlanID,
		vehicle,
		options,
		string(booking.Status),
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return entity.VehicleBooking{}, errors.Persistence("error insert booking", err)
	}

	stored := booking
	stored.BookingID = id.String()
	stored.CreatedAt = &createdAt
	stored.UpdatedAt = &updatedAt

	r.log.Info(ctx, "booking saved", "bookingId", stored.BookingID)
	return stored, nil
}

// jsonColumn encodes v for a JSONB column, NULL when the value is absent.
func jsonColumn(present bool, v interface{}) (interface{}, error) {
	if !present {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
