package pubsub

import (
	"encoding/json"
	"strconv"

	"nomad/internal/domain/constants"
	"nomad/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Message attribute names.
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
	AttrUserID    = "user_id"
	// AttrDelivered lets subscriptions filter notification events that
	// still need delivery.
	AttrDelivered = "delivered"
)

// outbound is a serialized event ready for any publisher.
type outbound struct {
	ID         string
	Data       []byte
	Attributes map[string]string
}

func newOutbound(eventType, requestID string, payload any, extra map[string]string) (*outbound, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{AttrEventType: eventType}
	for k, v := range extra {
		attributes[k] = v
	}
	if requestID != "" {
		attributes[AttrRequestID] = requestID
	}

	return &outbound{
		ID:         uuid.NewString(),
		Data:       data,
		Attributes: attributes,
	}, nil
}

func contextChanged(event *service.ContextChangedEvent) (*outbound, error) {
	if event.Context == nil {
		return nil, errors.New("context changed event without context")
	}

	return newOutbound(constants.EventTypeContextChanged, event.RequestID, event, map[string]string{
		AttrUserID: event.Context.UserID.String(),
	})
}

func notificationCreated(event *service.NotificationCreatedEvent) (*outbound, error) {
	return newOutbound(constants.EventTypeNotificationCreated, event.RequestID, event, map[string]string{
		"notification_id": event.NotificationID,
		"business_id":     event.BusinessID,
		AttrDelivered:     strconv.FormatBool(event.Delivered),
	})
}
