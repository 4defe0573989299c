package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"nomad/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher implements EventPublisher by POSTing Pub/Sub push
// envelopes straight to the consuming process, for development without
// Google Cloud. Context changes go to the worker and notification events to
// the API process.
type localHTTPPublisher struct {
	contextEndpoint      string
	notificationEndpoint string
	httpClient           *http.Client
	logger               *slog.Logger
}

// PushMessage is the JSON body Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Decode returns the base64 decoded message data.
func (m *PushMessage) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push message data")
	}

	return data, nil
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development.
// An empty notificationEndpoint drops notification events.
func NewLocalHTTPPublisher(contextEndpoint, notificationEndpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		contextEndpoint:      contextEndpoint,
		notificationEndpoint: notificationEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishContextChanged posts a context.changed event to the worker.
func (p *localHTTPPublisher) PublishContextChanged(ctx context.Context, event *service.ContextChangedEvent) error {
	msg, err := contextChanged(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, p.contextEndpoint, msg)
}

// PublishNotificationCreated posts a notification.created event to the API process.
func (p *localHTTPPublisher) PublishNotificationCreated(ctx context.Context, event *service.NotificationCreatedEvent) error {
	if p.notificationEndpoint == "" {
		p.logger.DebugContext(ctx, "[LocalPubSub] No notification endpoint, skipping",
			slog.String("notification_id", event.NotificationID),
		)

		return nil
	}

	msg, err := notificationCreated(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, p.notificationEndpoint, msg)
}

func (p *localHTTPPublisher) publish(ctx context.Context, endpoint string, msg *outbound) error {
	pushMsg := PushMessage{
		Subscription: "projects/local/subscriptions/nomad-events",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(msg.Data)
	pushMsg.Message.MessageID = msg.ID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = msg.Attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID := msg.Attributes[AttrRequestID]; requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("%s returned non-success status: %d", endpoint, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Event published",
		slog.String("endpoint", endpoint),
		slog.String("event_type", msg.Attributes[AttrEventType]),
		slog.String("message_id", msg.ID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
