package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces every environment variable read by the service.
const Prefix = "BOOKING"

type Config struct {
	Stage         string              `envconfig:"STAGE" default:"dev"`
	Service       ServiceConfig       `envconfig:"SERVICE"`
	HttpServer    HttpServerConfig    `envconfig:"HTTP"`
	Log           LogConfig           `envconfig:"LOG"`
	Database      DatabaseConfig      `envconfig:"DB"`
	MessageStream MessageStreamConfig `envconfig:"EVENT"`
	Tracing       TracingConfig       `envconfig:"OTEL"`
}

type ServiceConfig struct {
	Name   string `envconfig:"NAME" required:"true" validate:"required"`
	Domain string `envconfig:"DOMAIN" required:"true" validate:"required"`
}

// AllowOrigins applies to the prod stage only, every other stage allows any origin.
type HttpServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	AllowOrigins    string        `envconfig:"ALLOW_ORIGINS"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
}

type DatabaseConfig struct {
	Driver         string        `envconfig:"DRIVER" default:"mongo" validate:"oneof=mongo postgres"`
	URI            string        `envconfig:"URI" required:"true" validate:"required"`
	Name           string        `envconfig:"NAME" default:"bookings"`
	Collection     string        `envconfig:"COLLECTION" default:"vehicleBookings"`
	MaxPoolSize    uint64        `envconfig:"MAX_POOL_SIZE" default:"10"`
	MinPoolSize    uint64        `envconfig:"MIN_POOL_SIZE" default:"1" validate:"ltefield=MaxPoolSize"`
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" default:"5s"`
}

type MessageStreamConfig struct {
	Driver        string   `envconfig:"DRIVER" default:"amqp" validate:"oneof=amqp kafka"`
	Bus           string   `envconfig:"BUS" required:"true" validate:"required"`
	AmqpURL       string   `envconfig:"AMQP_URL" validate:"required_if=Driver amqp"`
	KafkaBrokers  []string `envconfig:"KAFKA_BROKERS" validate:"required_if=Driver kafka"`
	KafkaClientID string   `envconfig:"KAFKA_CLIENT_ID" default:"vehicle-booking-service"`
}

type TracingConfig struct {
	Endpoint    string  `envconfig:"ENDPOINT"`
	Insecure    bool    `envconfig:"INSECURE" default:"true"`
	SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1" validate:"gte=0,lte=1"`
}

// Load reads the configuration from the environment. Unknown BOOKING_* keys
// are rejected so that typos fail the process instead of silently falling
// back to defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.CheckDisallowed(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func InitConfig() *Config {
	// .env is optional, real deployments inject the environment directly
	_ = godotenv.Load()

	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}
