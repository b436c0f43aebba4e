package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Handler consumes one NOTIFY payload. Handlers run on the receive loop
// goroutine and must not block.
type Handler func(payload []byte)

// Listener holds a dedicated LISTEN connection and dispatches incoming
// notifications to registered handlers. The channel set is fixed at
// registration time; Start subscribes to every channel with a handler.
type Listener struct {
	connString string
	handlers   map[string][]Handler

	conn   *pgx.Conn
	connMu sync.Mutex

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
	startOnce  sync.Once
}

// NewListener creates a listener. Register handlers before Start.
func NewListener(connString string) *Listener {
	return &Listener{
		connString: connString,
		handlers:   make(map[string][]Handler),
	}
}

// Handle registers a handler for a channel. Not safe to call after Start.
func (l *Listener) Handle(channel string, fn Handler) {
	l.handlers[channel] = append(l.handlers[channel], fn)
}

// Start establishes the dedicated connection, LISTENs on every registered
// channel, and begins the receive loop.
func (l *Listener) Start(ctx context.Context) error {
	var startErr error
	l.startOnce.Do(func() {
		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			startErr = fmt.Errorf("failed to connect for LISTEN: %w", err)
			return
		}
		if err := l.listenAll(ctx, conn); err != nil {
			_ = conn.Close(ctx)
			startErr = err
			return
		}

		l.connMu.Lock()
		l.conn = conn
		l.connMu.Unlock()

		loopCtx, cancel := context.WithCancel(ctx)
		l.cancelLoop = cancel
		l.loopDone = make(chan struct{})
		go func() {
			defer close(l.loopDone)
			l.receiveLoop(loopCtx)
		}()

		slog.Info("NOTIFY listener started", "channels", len(l.handlers))
	})
	return startErr
}

func (l *Listener) listenAll(ctx context.Context, conn *pgx.Conn) error {
	for channel := range l.handlers {
		sanitized := pgx.Identifier{channel}.Sanitize()
		if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
			return fmt.Errorf("LISTEN %s failed: %w", sanitized, err)
		}
	}
	return nil
}

// receiveLoop is the sole goroutine touching the pgx connection.
func (l *Listener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return // shutting down
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		for _, fn := range l.handlers[notification.Channel] {
			fn([]byte(notification.Payload))
		}
	}
}

// reconnect re-establishes the LISTEN connection with backoff and
// re-subscribes every registered channel.
func (l *Listener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		if err := l.listenAll(ctx, conn); err != nil {
			slog.Error("Re-LISTEN failed", "error", err)
			_ = conn.Close(ctx)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}

		l.conn = conn
		slog.Info("NOTIFY listener reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it, then closes the
// connection.
func (l *Listener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
