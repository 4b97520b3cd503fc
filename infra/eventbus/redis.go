package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/parcels/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

// RedisEventBus implements the Bus interface on Redis Streams.
// Every registered event type gets its own consumer group on the stream.
type RedisEventBus struct {
	client *redis.Client
	stream string
	group  string
	block  time.Duration
	types  map[string]func() eventbus.Event
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithRedis creates a Redis-backed event bus on an existing client.
func NewWithRedis(
	client *redis.Client,
	stream, group string,
	logger *slog.Logger,
) (*RedisEventBus, error) {
	if client == nil || stream == "" || group == "" {
		return nil, errors.New("redis event bus: client, stream, and group are required")
	}
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis event bus: connection failed: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client: client,
		stream: stream,
		group:  group,
		block:  5 * time.Second,
		types:  EventTypes,
		logger: logger.With("bus", "redis"),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Emit publishes an event to the Redis stream.
func (b *RedisEventBus) Emit(ctx context.Context, event eventbus.Event) error {
	data, err := encodeEnvelope(event)
	if err != nil {
		b.logger.Error("failed to marshal event", "error", err, "type", event.Type())
		return fmt.Errorf("redis event bus: %w", err)
	}

	_, err = b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: b.stream,
		Values: map[string]any{"event": string(data), "key": eventKey(event)},
	}).Result()
	if err != nil {
		b.logger.Error("failed to emit event", "error", err, "type", event.Type())
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "type", event.Type())
	return nil
}

// Register starts a consumer calling handler for each event of eventType.
func (b *RedisEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	group := b.group + ":" + eventType
	consumer := fmt.Sprintf("consumer-%s-%d", eventType, time.Now().UnixNano())
	err := b.client.XGroupCreateMkStream(b.ctx, b.stream, group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		b.logger.Error("failed to create consumer group", "group", group, "error", err)
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consume(eventType, group, consumer, handler)
	}()
	b.logger.Info("handler registered", "event_type", eventType, "consumer", consumer)
}

func (b *RedisEventBus) consume(eventType, group, consumer string, handler eventbus.HandlerFunc) {
	for {
		if b.ctx.Err() != nil {
			return
		}
		res, err := b.client.XReadGroup(b.ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: consumer,
			Streams:  []string{b.stream, ">"},
			Count:    10,
			Block:    b.block,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if b.ctx.Err() != nil {
				return
			}
			b.logger.Error("error reading from stream", "error", err, "consumer", consumer)
			select {
			case <-b.ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}

		for _, stream := range res {
			for _, msg := range stream.Messages {
				b.handle(eventType, group, msg, handler)
			}
		}
	}
}

func (b *RedisEventBus) handle(eventType, group string, msg redis.XMessage, handler eventbus.HandlerFunc) {
	defer func() {
		if err := b.client.XAck(b.ctx, b.stream, group, msg.ID).Err(); err != nil {
			b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
		}
	}()

	raw, ok := msg.Values["event"].(string)
	if !ok {
		return
	}
	evt, err := decodeEnvelope([]byte(raw), b.types)
	if err != nil {
		b.logger.Error("failed to decode event", "error", err, "msg_id", msg.ID)
		b.pushToDLQ(msg.Values)
		return
	}
	if evt.Type() != eventType {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panic recovered", "panic", r, "event_type", eventType)
			b.pushToDLQ(msg.Values)
		}
	}()
	if err := handler(b.ctx, evt); err != nil {
		b.logger.Error("handler error", "error", err, "event_type", eventType)
		b.pushToDLQ(msg.Values)
	}
}

// pushToDLQ pushes the raw message to a DLQ stream for inspection or reprocessing.
func (b *RedisEventBus) pushToDLQ(values map[string]any) {
	dlqStream := b.stream + "-DLQ"
	if _, err := b.client.XAdd(b.ctx, &redis.XAddArgs{
		Stream: dlqStream,
		Values: values,
	}).Result(); err != nil {
		b.logger.Error("failed to push to DLQ", "error", err, "stream", dlqStream)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlqStream)
}

// Close stops the consumers.
func (b *RedisEventBus) Close() error {
	b.cancel()
	b.wg.Wait()
	return nil
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
