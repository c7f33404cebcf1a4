package messagebus

import (
	"log/slog"
	"sync"

	"github.com/okorolev/liftlog_backend/internal/domain"
)

type EventHandler func(event domain.Event) error

// MessageBus dispatches domain events to registered handlers. Handlers run
// in their own goroutines; Close waits for all in-flight handlers.
type MessageBus struct {
	logger   *slog.Logger
	handlers map[string][]EventHandler
	wg       sync.WaitGroup
}

func New(logger *slog.Logger) *MessageBus {
	return &MessageBus{
		logger:   logger,
		handlers: make(map[string][]EventHandler),
	}
}

func (b *MessageBus) Register(eventType string, handler EventHandler) {
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func (b *MessageBus) PublishEvents(events ...domain.Event) error {
	for _, event := range events {
		b.logger.Debug("publishing event", "type", event.Type(), "at", event.PublishedAt())
		for _, handler := range b.handlers[event.Type()] {
			b.wg.Add(1)
			go func(event domain.Event, handler EventHandler) {
				defer b.wg.Done()
				if err := handler(event); err != nil {
					b.logger.Error("failed to handle event", "type", event.Type(), "err", err)
				}
			}(event, handler)
		}
	}
	return nil
}

func (b *MessageBus) Close() {
	b.wg.Wait()
}
