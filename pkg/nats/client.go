package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"action-item-extractor/pkg/log"
)

const (
	defaultMaxReconnects = 60
	defaultReconnectWait = 2 * time.Second
	defaultDrainTimeout  = 10 * time.Second
	// closeGrace covers the gap between the drain deadline and the closed callback.
	closeGrace = 2 * time.Second
)

// Handler processes one message body received on subject.
type Handler func(ctx context.Context, subject string, data []byte)

// conn is the part of *nats.Conn the client uses.
type conn interface {
	Publish(subj string, data []byte) error
	Subscribe(subj string, cb nats.MsgHandler) (*nats.Subscription, error)
	QueueSubscribe(subj, queue string, cb nats.MsgHandler) (*nats.Subscription, error)
	Drain() error
	Close()
}

// Client is a thin JSON publish/subscribe wrapper around a NATS connection.
type Client struct {
	conn         conn
	l            log.Logger
	closed       chan struct{}
	drainTimeout time.Duration

	mu   sync.Mutex
	subs []*nats.Subscription
}

// NewClient connects to url. The connection keeps retrying in the background
// when the server is not reachable yet. drainTimeout bounds how long Close
// waits for in-flight handlers; values below 10s are raised to 10s.
func NewClient(ctx context.Context, url, token string, drainTimeout time.Duration, l log.Logger) (*Client, error) {
	if drainTimeout < defaultDrainTimeout {
		drainTimeout = defaultDrainTimeout
	}
	closed := make(chan struct{})
	var closeOnce sync.Once

	opts := []nats.Option{
		nats.Name("action-item-extractor"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(defaultMaxReconnects),
		nats.ReconnectWait(defaultReconnectWait),
		nats.DrainTimeout(drainTimeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				l.Warn(ctx, "nats disconnected", "error", err.Error())
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			l.Info(ctx, "nats reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			closeOnce.Do(func() { close(closed) })
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, l: l, closed: closed, drainTimeout: drainTimeout}, nil
}

// Publish sends data as JSON.
func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

// QueueSubscribe delivers each message on subject to exactly one member of queue.
// An empty queue makes a plain subscription.
func (c *Client) QueueSubscribe(subject, queue string, handler Handler) error {
	cb := func(msg *nats.Msg) {
		handler(context.Background(), msg.Subject, msg.Data)
	}

	var (
		sub *nats.Subscription
		err error
	)
	if queue == "" {
		sub, err = c.conn.Subscribe(subject, cb)
	} else {
		sub, err = c.conn.QueueSubscribe(subject, queue, cb)
	}
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}

	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	c.l.Info(context.Background(), "subscribed", "subject", subject, "queue", queue)
	return nil
}

// Close drains the subscriptions and blocks until the connection is closed,
// so handlers already running can publish their replies. Drain is
// asynchronous; completion is signalled by the closed callback.
func (c *Client) Close() {
	ctx := context.Background()
	if err := c.conn.Drain(); err != nil {
		c.l.Warnf(ctx, "nats drain: %v", err)
		c.conn.Close()
		return
	}

	select {
	case <-c.closed:
		c.l.Info(ctx, "nats connection drained")
	case <-time.After(c.drainTimeout + closeGrace):
		c.l.Warnf(ctx, "nats drain did not finish within %s, closing", c.drainTimeout)
		c.conn.Close()
	}
}
