// Package websocket adapts gorilla/websocket connections to the domain Transport.
package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"
	"unicode/utf8"

	"nomad/config"
	"nomad/internal/domain/entity"
	"nomad/internal/errors"

	gws "github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// maxCloseReason is the largest close frame reason allowed by RFC 6455.
const maxCloseReason = 123

// ErrClosed is returned by Send after the connection has been closed.
var ErrClosed = errors.New("websocket: connection closed")

// Frame is an inbound client frame.
type Frame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Upgrader upgrades HTTP requests into transports using the presence settings.
type Upgrader struct {
	upgrader gws.Upgrader
	cfg      *config.PresenceConfig
	logger   *slog.Logger
}

// NewUpgrader creates an Upgrader.
func NewUpgrader(cfg *config.Config, logger *slog.Logger) *Upgrader {
	presence := cfg.Presence
	if presence == nil {
		presence = config.DefaultPresenceConfig()
	}

	return &Upgrader{
		upgrader: gws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Clients are mobile apps authenticated by token, not browsers holding cookies.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		cfg:    presence,
		logger: logger.With("component", "websocket"),
	}
}

// Upgrade hijacks the request and returns the live transport.
func (u *Upgrader) Upgrade(w http.ResponseWriter, r *http.Request) (*Conn, error) {
	ws, err := u.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, errors.Wrap(err, "upgrade websocket")
	}

	ws.SetReadLimit(u.cfg.MaxMessageBytes)

	return &Conn{
		ws:      ws,
		cfg:     u.cfg,
		limiter: rate.NewLimiter(rate.Limit(u.cfg.SendRateLimit), u.cfg.SendBurst),
		done:    make(chan struct{}),
		logger:  u.logger,
	}, nil
}

// Conn is one websocket session. Send and Close are safe for concurrent use.
type Conn struct {
	ws        *gws.Conn
	cfg       *config.PresenceConfig
	limiter   *rate.Limiter
	writeMu   sync.Mutex
	closeOnce sync.Once
	done      chan struct{}
	logger    *slog.Logger
}

var _ entity.Transport = (*Conn)(nil)

// Send writes payload as a JSON text frame.
func (c *Conn) Send(ctx context.Context, payload *entity.Payload) error {
	select {
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	default:
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.ws.SetWriteDeadline(c.writeDeadline(ctx)); err != nil {
		return errors.Wrap(err, "set write deadline")
	}
	if err := c.ws.WriteJSON(payload); err != nil {
		return errors.Wrap(err, "write frame")
	}

	return nil
}

// Close sends a going-away close frame and releases the socket.
func (c *Conn) Close(reason string) error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)

		msg := gws.FormatCloseMessage(gws.CloseGoingAway, truncateReason(reason))
		_ = c.ws.WriteControl(gws.CloseMessage, msg, time.Now().Add(c.cfg.WriteTimeout))

		err = c.ws.Close()
	})

	return err
}

// truncateReason cuts reason to maxCloseReason bytes without splitting a rune.
func truncateReason(reason string) string {
	if len(reason) <= maxCloseReason {
		return reason
	}

	n := maxCloseReason
	for n > 0 && !utf8.RuneStart(reason[n]) {
		n--
	}

	return reason[:n]
}

// Done is closed once the connection is closed.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Allow reports whether the client may send another message frame now.
func (c *Conn) Allow() bool {
	return c.limiter.Allow()
}

// ReadLoop reads frames until the client goes away or ctx ends, handing each
// to handle. It keeps the session alive with pings. The connection is closed
// when ReadLoop returns.
func (c *Conn) ReadLoop(ctx context.Context, handle func(ctx context.Context, frame *Frame)) error {
	defer c.Close("connection closed")

	_ = c.ws.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	go c.keepAlive(ctx)

	for {
		var frame Frame
		if err := c.ws.ReadJSON(&frame); err != nil {
			select {
			case <-c.done:
				return nil
			default:
			}
			if gws.IsCloseError(err, gws.CloseNormalClosure, gws.CloseGoingAway, gws.CloseNoStatusReceived) {
				return nil
			}
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				c.logger.DebugContext(ctx, "malformed frame", slog.Any("error", err))
				handle(ctx, &Frame{Type: "invalid"})

				continue
			}

			return errors.Wrap(err, "read frame")
		}

		_ = c.ws.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
		handle(ctx, &frame)
	}
}

func (c *Conn) keepAlive(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ctx.Done():
			_ = c.Close("server shutting down")

			return
		case <-ticker.C:
			if err := c.ws.WriteControl(gws.PingMessage, nil, time.Now().Add(c.cfg.WriteTimeout)); err != nil {
				c.logger.DebugContext(ctx, "ping failed", slog.Any("error", err))
				_ = c.Close("ping failed")

				return
			}
		}
	}
}

func (c *Conn) writeDeadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.cfg.WriteTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		return d
	}

	return deadline
}
