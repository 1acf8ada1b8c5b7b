package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// In-memory implementation used for the local environment and tests.
type MemoryPublisherFactory struct {
	broker *MemoryBroker
}

func NewMemoryPublisherFactory() *MemoryPublisherFactory {
	return &MemoryPublisherFactory{
		broker: GetMemoryBroker(),
	}
}

func (f *MemoryPublisherFactory) New(topic Topic, prototype Message) (Publisher, error) {
	return &MemoryPublisher{
		broker:    f.broker,
		topic:     topic,
		prototype: prototype,
	}, nil
}

type MemoryPublisher struct {
	broker    *MemoryBroker
	topic     Topic
	prototype Message
}

func (p *MemoryPublisher) Publish(ctx context.Context, key Key, message Message) error {
	return p.broker.Publish(p.topic, key, message)
}

type MemoryConsumerFactory struct {
	broker *MemoryBroker
	group  string
}

func NewMemoryConsumerFactory(group string) *MemoryConsumerFactory {
	return &MemoryConsumerFactory{
		broker: GetMemoryBroker(),
		group:  group,
	}
}

func (f *MemoryConsumerFactory) New() Consumer {
	return &MemoryConsumer{
		broker: f.broker,
		group:  f.group,
	}
}

type MemoryConsumer struct {
	broker *MemoryBroker
	group  string
}

func (c *MemoryConsumer) Consume(topic Topic, handler MessageHandler, prototype Prototype) error {
	return c.broker.Subscribe(topic, c.group, handler, prototype)
}

// MemoryBroker is a process-wide broker backing the in-memory factories.
type MemoryBroker struct {
	topics    map[Topic]*topicChannel
	consumers map[string]*consumerInfo
	mu        sync.RWMutex
}

type topicChannel struct {
	messages    chan messageEvent
	subscribers map[string][]*consumerInfo
	mu          sync.RWMutex
}

type messageEvent struct {
	key     Key
	message Message
	topic   Topic
}

type consumerInfo struct {
	group     string
	handler   MessageHandler
	prototype Prototype
	topic     Topic
	active    bool
}

var (
	memoryBroker     *MemoryBroker
	memoryBrokerOnce sync.Once
)

func GetMemoryBroker() *MemoryBroker {
	memoryBrokerOnce.Do(func() {
		memoryBroker = &MemoryBroker{
			topics:    make(map[Topic]*topicChannel),
			consumers: make(map[string]*consumerInfo),
		}
	})
	return memoryBroker
}

func (b *MemoryBroker) Publish(topic Topic, key Key, message Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	topicChan, exists := b.topics[topic]
	if !exists {
		topicChan = &topicChannel{
			messages:    make(chan messageEvent, 100),
			subscribers: make(map[string][]*consumerInfo),
		}
		b.topics[topic] = topicChan
	}

	event := messageEvent{
		key:     key,
		message: message,
		topic:   topic,
	}

	select {
	case topicChan.messages <- event:
		go b.processSubscribers(topicChan, event)
	default:
		return fmt.Errorf("topic channel buffer full")
	}

	return nil
}

func (b *MemoryBroker) Subscribe(topic Topic, group string, handler MessageHandler, prototype Prototype) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	consumerID := fmt.Sprintf("%s-%s", group, string(topic))

	consumer := &consumerInfo{
		group:     group,
		handler:   handler,
		prototype: prototype,
		topic:     topic,
		active:    true,
	}

	b.consumers[consumerID] = consumer

	topicChan, exists := b.topics[topic]
	if !exists {
		topicChan = &topicChannel{
			messages:    make(chan messageEvent, 100),
			subscribers: make(map[string][]*consumerInfo),
		}
		b.topics[topic] = topicChan
	}

	topicChan.mu.Lock()
	topicChan.subscribers[group] = append(topicChan.subscribers[group], consumer)
	topicChan.mu.Unlock()

	return nil
}

func (b *MemoryBroker) processSubscribers(topicChan *topicChannel, event messageEvent) {
	topicChan.mu.RLock()
	subscribers := topicChan.subscribers
	topicChan.mu.RUnlock()

	for _, consumers := range subscribers {
		for _, consumer := range consumers {
			if !consumer.active {
				continue
			}

			go func(c *consumerInfo) {
				defer func() {
					if r := recover(); r != nil {
						slog.Error("panic in message handler", slog.Any("panic", r))
					}
				}()

				if err := c.handler(context.Background(), event.key, event.message); err != nil {
					slog.Error("message handler failed", slog.String("error", err.Error()))
				}
			}(consumer)
		}
	}
}

// Reset clears all topics and consumers. Intended for tests.
func (b *MemoryBroker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.topics = make(map[Topic]*topicChannel)
	b.consumers = make(map[string]*consumerInfo)
}
