package messaging

import (
	"context"
	"log/slog"
	"sync"
)

// Handler consumes one raw message body. A non-nil error asks the bus for
// redelivery where the transport supports it.
type Handler = func(ctx context.Context, body []byte) error

type inprocBinding struct {
	queue   string
	handler Handler
}

// InProc is a process-local topic bus. Publish dispatches synchronously to
// every queue bound to the routing key, which keeps single-process runs and
// tests deterministic. There is no redelivery: a failed handler is logged
// and the message is dropped.
type InProc struct {
	mu       sync.RWMutex
	bindings map[string][]inprocBinding
	logger   *slog.Logger
}

func NewInProc(logger *slog.Logger) *InProc {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProc{
		bindings: make(map[string][]inprocBinding),
		logger:   logger,
	}
}

func (b *InProc) Publish(ctx context.Context, routingKey string, body []byte) error {
	b.mu.RLock()
	bound := append([]inprocBinding(nil), b.bindings[routingKey]...)
	b.mu.RUnlock()

	for _, binding := range bound {
		if err := binding.handler(ctx, body); err != nil {
			b.logger.Error("inproc handler failed, message dropped",
				"event", "inproc_handler_failed",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"queue", binding.queue,
				"routing_key", routingKey,
				"error", err.Error(),
			)
		}
	}

	b.logger.Debug("message published",
		"event", "inproc_publish",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"routing_key", routingKey,
		"queue_count", len(bound),
	)
	return nil
}

func (b *InProc) Subscribe(ctx context.Context, queue, routingKey string, handler Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.bindings[routingKey] = append(b.bindings[routingKey], inprocBinding{
		queue:   queue,
		handler: handler,
	})
	return nil
}
