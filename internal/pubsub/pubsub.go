// Package pubsub carries application events between services and modules.
package pubsub

import "context"

// Message is one event on the bus.
type Message struct {
	Topic string
	// UserID is the user the event is about, if any.
	UserID  string
	Payload []byte
	// Metadata travels alongside the payload untouched.
	Metadata map[string]string
}

// Handler processes a delivered message. Returned errors are logged; the
// message is not redelivered.
type Handler func(ctx context.Context, msg Message) error

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

type Subscriber interface {
	// Subscribe consumes topic in the background until ctx is canceled or
	// the subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
