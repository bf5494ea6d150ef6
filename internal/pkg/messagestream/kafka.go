package messagestream

import (
	"context"
	"sort"
	"vehicle-booking-service/config"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/segmentio/kafka-go"
)

// UUIDHeader carries the watermill message id.
const UUIDHeader = "_watermill_message_uuid"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher is a watermill publisher on top of a kafka-go writer. The
// writer connects on the first write.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(cfg *config.MessageStreamConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			MaxAttempts:  1,
			Transport: &kafka.Transport{
				ClientID: cfg.KafkaClientID,
			},
		},
	}
}

func (p *KafkaPublisher) Publish(topic string, messages ...*message.Message) error {
	if len(messages) == 0 {
		return nil
	}

	out := make([]kafka.Message, 0, len(messages))
	for _, msg := range messages {
		out = append(out, ToKafkaMessage(topic, msg))
	}
	return p.writer.WriteMessages(messages[0].Context(), out...)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// ToKafkaMessage keys the record by the message id and copies the metadata
// into headers.
func ToKafkaMessage(topic string, msg *message.Message) kafka.Message {
	keys := make([]string, 0, len(msg.Metadata))
	for k := range msg.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	headers := make([]kafka.Header, 0, len(keys)+1)
	headers = append(headers, kafka.Header{Key: UUIDHeader, Value: []byte(msg.UUID)})
	for _, k := range keys {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(msg.Metadata.Get(k))})
	}

	return kafka.Message{
		Topic:   topic,
		Key:     []byte(msg.UUID),
		Value:   msg.Payload,
		Headers: headers,
	}
}
