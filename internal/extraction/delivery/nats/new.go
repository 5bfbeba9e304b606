package nats

import (
	"action-item-extractor/internal/extraction"
	pkgLog "action-item-extractor/pkg/log"
	pkgNats "action-item-extractor/pkg/nats"
)

// Consumer handles extraction requests arriving over NATS.
type Consumer interface {
	// Register subscribes the consumer to its request subject.
	Register(sub Subscriber) error
}

// Publisher publishes a JSON-encoded payload.
type Publisher interface {
	Publish(subject string, data any) error
}

// Subscriber is the subscription side of the NATS client.
type Subscriber interface {
	QueueSubscribe(subject, queue string, handler pkgNats.Handler) error
}

// Config holds the subjects the consumer reads from and replies to.
type Config struct {
	SubjectIn  string
	SubjectOut string
	QueueGroup string
}

type consumer struct {
	l   pkgLog.Logger
	uc  extraction.UseCase
	pub Publisher
	cfg Config
}

// New creates a new NATS consumer.
func New(l pkgLog.Logger, uc extraction.UseCase, pub Publisher, cfg Config) Consumer {
	return &consumer{
		l:   l,
		uc:  uc,
		pub: pub,
		cfg: cfg,
	}
}

var (
	_ Publisher  = (*pkgNats.Client)(nil)
	_ Subscriber = (*pkgNats.Client)(nil)
)
