package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"nomad/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a publisher for an existing topic.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishContextChanged publishes a context.changed event.
func (p *googlePubSubPublisher) PublishContextChanged(ctx context.Context, event *service.ContextChangedEvent) error {
	msg, err := contextChanged(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, msg)
}

// PublishNotificationCreated publishes a notification.created event.
func (p *googlePubSubPublisher) PublishNotificationCreated(ctx context.Context, event *service.NotificationCreatedEvent) error {
	msg, err := notificationCreated(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, msg)
}

func (p *googlePubSubPublisher) publish(ctx context.Context, msg *outbound) error {
	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       msg.Data,
		Attributes: msg.Attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s", msg.Attributes[AttrEventType])
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Event published",
		slog.String("event_type", msg.Attributes[AttrEventType]),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
