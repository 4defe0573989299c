// Package notification sends device push notifications.
package notification

import (
	"context"
	"log/slog"

	"nomad/config"
	"nomad/internal/domain/service"
	"nomad/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit of tokens per multicast request.
const maxMulticastTokens = 500

type firebaseService struct {
	client *messaging.Client
}

// New returns the FCM push service, or a logging no-op when Firebase is not configured.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, device push disabled")

		return NewNoopService(logger), nil
	}

	return NewFirebaseService(ctx, cfg.Firebase)
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendBatch sends msg to the tokens in chunks of at most 500 and collects
// the tokens FCM reports as invalid or unregistered.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (successCount, failureCount int, invalidTokens []string, err error) {
	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := min(start+maxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				invalidTokens = append(invalidTokens, chunk[idx])
			}
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
