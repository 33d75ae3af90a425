package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/jb131997/gymdesk/internal/config"
	"github.com/jb131997/gymdesk/internal/logger"
)

// Publisher is the event-emitting surface services depend on. A nil
// *Producer satisfies it as a disabled no-op, so wiring stays unconditional.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, event any)
}

// Producer lazily manages one Kafka writer per topic.
type Producer struct {
	brokers []string
	logger  *logger.Logger

	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewProducer creates a Producer for the configured brokers. When no
// brokers are configured, publishing is disabled and nil is returned.
func NewProducer(cfg config.Events, log *logger.Logger) *Producer {
	if len(cfg.Brokers) == 0 {
		log.Debug().Msg("event publishing disabled: no kafka brokers configured")
		return nil
	}

	return &Producer{
		brokers: cfg.Brokers,
		logger:  log,
		writers: make(map[string]*kafka.Writer),
	}
}

// Publish encodes event as JSON and writes it to the topic, keyed so that
// every event of one gym lands in the same partition. Failures are logged
// and swallowed: event delivery must never fail the request that caused it.
func (p *Producer) Publish(ctx context.Context, topic, key string, event any) {
	if p == nil {
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Err(err).Str("topic", topic).Msg("error encoding event")
		return
	}

	writer := p.writerForTopic(topic)
	err = writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		p.logger.Err(err).Str("topic", topic).Str("key", key).Msg("error publishing event")
	}
}

func (p *Producer) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}
