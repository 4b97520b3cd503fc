package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/parcels/pkg/config"
	"github.com/amirasaad/parcels/pkg/eventbus"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventBus implements a Kafka-backed event bus. All event types share
// one topic; the event type travels in the envelope and a header.
type KafkaEventBus struct {
	writer    messageWriter
	newReader func(groupID string) messageReader
	topic     string
	groupID   string
	types     map[string]func() eventbus.Event
	logger    *slog.Logger

	readersMtx sync.Mutex
	readers    []messageReader

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithKafka creates a new Kafka-backed event bus.
func NewWithKafka(cfg *config.EventBus, logger *slog.Logger) (*KafkaEventBus, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka event bus: brokers are required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka event bus: topic is required")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
	}
	newReader := func(groupID string) messageReader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.Brokers,
			GroupID:  groupID,
			Topic:    cfg.Topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}
	return newKafkaEventBus(writer, newReader, cfg.Topic, cfg.GroupID, logger), nil
}

func newKafkaEventBus(
	writer messageWriter,
	newReader func(groupID string) messageReader,
	topic, groupID string,
	logger *slog.Logger,
) *KafkaEventBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &KafkaEventBus{
		writer:    writer,
		newReader: newReader,
		topic:     topic,
		groupID:   groupID,
		types:     EventTypes,
		logger:    logger.With("bus", "kafka", "topic", topic),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Emit publishes an event to the topic, keyed by the event's partition key.
func (b *KafkaEventBus) Emit(ctx context.Context, event eventbus.Event) error {
	data, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(eventKey(event)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type())},
		},
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		b.logger.Error("failed to emit event", "error", err, "type", event.Type())
		return fmt.Errorf("kafka event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "type", event.Type())
	return nil
}

// Register starts a consumer group reader for eventType.
func (b *KafkaEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	reader := b.newReader(b.groupID + "." + eventType)
	b.readersMtx.Lock()
	b.readers = append(b.readers, reader)
	b.readersMtx.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consumeLoop(eventType, reader, handler)
	}()
	b.logger.Info("handler registered", "event_type", eventType)
}

func (b *KafkaEventBus) consumeLoop(eventType string, reader messageReader, handler eventbus.HandlerFunc) {
	for {
		msg, err := reader.FetchMessage(b.ctx)
		if err != nil {
			if b.ctx.Err() != nil {
				return
			}
			b.logger.Error("failed to fetch message", "error", err, "event_type", eventType)
			continue
		}
		b.processMessage(eventType, msg, handler)
		if err := reader.CommitMessages(b.ctx, msg); err != nil && b.ctx.Err() == nil {
			b.logger.Error("failed to commit message", "error", err, "offset", msg.Offset)
		}
	}
}

func (b *KafkaEventBus) processMessage(eventType string, msg kafka.Message, handler eventbus.HandlerFunc) {
	if t := headerValue(msg, "event_type"); t != "" && t != eventType {
		return
	}
	evt, err := decodeEnvelope(msg.Value, b.types)
	if err != nil {
		b.logger.Error("failed to decode event", "error", err, "offset", msg.Offset)
		return
	}
	if evt.Type() != eventType {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panic recovered", "panic", r, "event_type", eventType)
		}
	}()
	if err := handler(b.ctx, evt); err != nil {
		b.logger.Error("handler error", "error", err, "event_type", eventType, "offset", msg.Offset)
	}
}

// Close stops the consumers and flushes the writer.
func (b *KafkaEventBus) Close() error {
	b.cancel()
	b.readersMtx.Lock()
	var errs []error
	for _, r := range b.readers {
		errs = append(errs, r.Close())
	}
	b.readersMtx.Unlock()
	b.wg.Wait()
	errs = append(errs, b.writer.Close())
	return errors.Join(errs...)
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
