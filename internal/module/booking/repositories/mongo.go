package repositories

import (
	"context"
	"time"
	"vehicle-booking-service/internal/module/booking/models/entity"
	"vehicle-booking-service/internal/pkg/errors"
	"vehicle-booking-service/internal/pkg/log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionProvider hands out the bookings collection, connecting on first use.
type CollectionProvider interface {
	Collection(ctx context.Context) (*mongo.Collection, error)
}

type CollectionFunc func(ctx context.Context) (*mongo.Collection, error)

func (f CollectionFunc) Collection(ctx context.Context) (*mongo.Collection, error) {
	return f(ctx)
}

type bookingDocument struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty"`
	UserID        string                 `bson:"userId"`
	StartDate     time.Time              `bson:"startDate"`
	EndDate       time.Time              `bson:"endDate"`
	ServicePlanID *string                `bson:"servicePlanId,omitempty"`
	Vehicle       *entity.Vehicle        `bson:"vehicle,omitempty"`
	Options       *entity.BookingOptions `bson:"options,omitempty"`
	Status        entity.Status          `bson:"status"`
	CreatedAt     time.Time              `bson:"createdAt"`
	UpdatedAt     time.Time              `bson:"updatedAt"`
}

type mongoRepository struct {
	collection CollectionProvider
	log        log.Logger
	now        func() time.Time
}

func NewMongo(collection CollectionProvider, log log.Logger) Repositories {
	return &mongoRepository{
		collection: collection,
		log:        log,
		now:        time.Now,
	}
}

// CreateBooking implements Repositories.
func (r *mongoRepository) CreateBooking(ctx context.Context, booking entity.VehicleBooking) (entity.VehicleBooking, error) {
	r.log.Info(ctx, "saving booking to database", "userId", booking.UserID)

	coll, err := r.collection.Collection(ctx)
	if err != nil {
		return entity.VehicleBooking{}, errors.Persistence("error connect to database", err)
	}

	// BSON dates keep milliseconds only
	now := r.now().UTC().Truncate(time.Millisecond)
	doc := toDocument(booking)
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return entity.VehicleBooking{}, errors.Persistence("error insert booking", err)
	}

	stored := fromDocument(doc)
	r.log.Info(ctx, "booking saved", "bookingId", stored.BookingID)
	return stored, nil
}

func toDocument(b entity.VehicleBooking) bookingDocument {
	return bookingDocument{
		UserID:        b.UserID,
		StartDate:     b.StartDate.UTC(),
		EndDate:       b.EndDate.UTC(),
		ServicePlanID: b.ServicePlanID,
		Vehicle:       b.Vehicle,
		Options:       b.Options,
		Status:        b.Status,
	}
}

func fromDocument(doc bookingDocument) entity.VehicleBooking {
	createdAt, updatedAt := doc.CreatedAt, doc.UpdatedAt
	return entity.VehicleBooking{
		BookingID:     doc.ID.Hex(),
		UserID:        doc.UserID,
		StartDate:     doc.StartDate,
		EndDate:       doc.EndDate,
		ServicePlanID: doc.ServicePlanID,
		Vehicle:       doc.Vehicle,
		Options:       doc.Options,
		Status:        doc.Status,
		CreatedAt:     &createdAt,
		UpdatedAt:     &updatedAt,
	}
}
