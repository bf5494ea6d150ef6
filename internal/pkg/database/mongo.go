package database

import (
	"context"
	"vehicle-booking-service/config"
	"vehicle-booking-service/internal/pkg/lazy"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo connects on the first Collection call and keeps the client for the
// lifetime of the process.
type Mongo struct {
	cfg    config.DatabaseConfig
	client *lazy.Value[*mongo.Client]
}

func NewMongo(cfg config.DatabaseConfig) *Mongo {
	m := &Mongo{cfg: cfg}
	m.client = lazy.New(m.connect)
	return m
}

func ClientOptions(cfg config.DatabaseConfig) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout)
}

func (m *Mongo) connect(ctx context.Context) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, ClientOptions(m.cfg))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

func (m *Mongo) Client(ctx context.Context) (*mongo.Client, error) {
	return m.client.Get(ctx)
}

func (m *Mongo) Collection(ctx context.Context) (*mongo.Collection, error) {
	client, err := m.client.Get(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(m.cfg.Name).Collection(m.cfg.Collection), nil
}

// Close disconnects the client if it was ever opened.
func (m *Mongo) Close(ctx context.Context) error {
	client, ok := m.client.Peek()
	if !ok {
		return nil
	}
	return client.Disconnect(ctx)
}
