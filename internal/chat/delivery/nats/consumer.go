// Package nats serves chat requests over NATS request/reply.
package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"campus-advisor/internal/chat"
	"campus-advisor/pkg/log"
)

const (
	DefaultSubject = "advisor.chat.ask"
	DefaultTimeout = 2 * time.Minute
)

// Config selects the subject and queue group the consumer listens on.
type Config struct {
	Subject    string
	QueueGroup string
	// Timeout bounds one request, generation included.
	Timeout time.Duration
}

type Consumer struct {
	conn *nats.Conn
	sub  *nats.Subscription
	uc   chat.UseCase
	l    log.Logger
	cfg  Config
	wg   sync.WaitGroup
}

func New(conn *nats.Conn, uc chat.UseCase, l log.Logger, cfg Config) *Consumer {
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Consumer{conn: conn, uc: uc, l: l, cfg: cfg}
}

// Connect dials NATS with infinite reconnects.
func Connect(url, name string, timeout time.Duration) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(timeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return conn, nil
}

// Start subscribes. Each request is handled in its own goroutine so a slow
// generation does not hold up the subscription. Requests outlive ctx; use
// Drain to finish them.
func (c *Consumer) Start(ctx context.Context) error {
	base := context.WithoutCancel(ctx)
	handler := func(msg *nats.Msg) {
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.serve(base, msg)
		}()
	}

	var err error
	if c.cfg.QueueGroup != "" {
		c.sub, err = c.conn.QueueSubscribe(c.cfg.Subject, c.cfg.QueueGroup, handler)
	} else {
		c.sub, err = c.conn.Subscribe(c.cfg.Subject, handler)
	}
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", c.cfg.Subject, err)
	}

	c.l.Infof(ctx, "chat.nats.Start: listening on %s (queue %q)", c.cfg.Subject, c.cfg.QueueGroup)
	return nil
}

func (c *Consumer) serve(ctx context.Context, msg *nats.Msg) {
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if err := msg.Respond(c.handle(reqCtx, msg.Data)); err != nil {
		c.l.Warnf(ctx, "chat.nats.serve: respond: %v", err)
	}
}

// handle decodes one request and encodes the reply. It never returns nil.
func (c *Consumer) handle(ctx context.Context, data []byte) []byte {
	var req askRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return encode(askReply{ToolsUsed: []string{}, Error: "invalid request format"})
	}

	ctx = log.WithUserID(ctx, req.UserID)
	out, err := c.uc.Ask(ctx, chat.AskInput{UserID: req.UserID, SessionID: req.SessionID, Message: req.Message})
	if err != nil {
		msg := "failed to process message"
		if errors.Is(err, chat.ErrEmptyMessage) || errors.Is(err, chat.ErrMissingUser) {
			msg = err.Error()
		}
		c.l.Warnf(ctx, "chat.nats.handle: %v", err)
		return encode(askReply{ToolsUsed: []string{}, Error: msg})
	}
	return encode(newAskReply(out))
}

func encode(r askReply) []byte {
	b, err := json.Marshal(r)
	if err != nil {
		return []byte(`{"error":"failed to encode reply"}`)
	}
	return b
}

// Drain stops taking requests and waits for in-flight ones, up to ctx.
func (c *Consumer) Drain(ctx context.Context) error {
	if c.sub == nil {
		return nil
	}
	if err := c.sub.Drain(); err != nil {
		return fmt.Errorf("drain %s: %w", c.cfg.Subject, err)
	}

	// No callback can start once the subscription is closed.
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for c.sub.IsValid() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
		}
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
