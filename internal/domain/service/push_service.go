package service

import "context"

// PushMessage is a device notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushService delivers notifications to devices of users that are not connected.
type PushService interface {
	// SendBatch pushes msg to every token. It returns how many tokens
	// succeeded and failed, and which tokens are no longer registered.
	SendBatch(ctx context.Context, tokens []string, msg *PushMessage) (successCount, failureCount int, invalidTokens []string, err error)
}
