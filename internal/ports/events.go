package ports

import "context"

// DomainEvent is a widget state change published for observers such as the
// log and the activity journal. Event type names are defined next to the
// widgets that emit them.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to subscribers. Publish is synchronous and
// returns after every handler ran. Implementations must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes one event. Failures are returned, not panicked, so
// the publisher can log them and keep delivering.
type EventHandler func(context.Context, DomainEvent) error

// Subscription is a registered handler.
type Subscription interface {
	Unsubscribe()
}
