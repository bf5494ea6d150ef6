package messagestream

import (
	"context"
	"vehicle-booking-service/config"
	"vehicle-booking-service/internal/pkg/lazy"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
)

type Amqp struct {
	cfg    *config.MessageStreamConfig
	logger watermill.LoggerAdapter
}

func NewAmqp(cfg *config.MessageStreamConfig, logger watermill.LoggerAdapter) *Amqp {
	return &Amqp{
		cfg:    cfg,
		logger: logger,
	}
}

// Config publishes to a durable fanout exchange named after the topic.
func (a *Amqp) Config() amqp.Config {
	return amqp.NewDurablePubSubConfig(a.cfg.AmqpURL, amqp.GenerateQueueNameTopicName)
}

// NewPublisher returns a publisher that dials the broker on the first Publish.
func (a *Amqp) NewPublisher() message.Publisher {
	return NewLazyPublisher(func(context.Context) (message.Publisher, error) {
		return amqp.NewPublisher(a.Config(), a.logger)
	})
}

// NewPublisher picks the broker configured in cfg.
func NewPublisher(cfg *config.MessageStreamConfig, logger watermill.LoggerAdapter) message.Publisher {
	if cfg.Driver == "kafka" {
		return NewKafkaPublisher(cfg)
	}
	return NewAmqp(cfg, logger).NewPublisher()
}

type lazyPublisher struct {
	pub *lazy.Value[message.Publisher]
}

// NewLazyPublisher opens the underlying publisher on first use. Concurrent
// first publishes share one open attempt; a failed attempt is retried by the
// next Publish.
func NewLazyPublisher(open func(ctx context.Context) (message.Publisher, error)) message.Publisher {
	return &lazyPublisher{pub: lazy.New(open)}
}

func (p *lazyPublisher) Publish(topic string, messages ...*message.Message) error {
	ctx := context.Background()
	if len(messages) > 0 {
		ctx = messages[0].Context()
	}

	pub, err := p.pub.Get(ctx)
	if err != nil {
		return err
	}
	return pub.Publish(topic, messages...)
}

func (p *lazyPublisher) Close() error {
	pub, ok := p.pub.Peek()
	if !ok {
		return nil
	}
	return pub.Close()
}
