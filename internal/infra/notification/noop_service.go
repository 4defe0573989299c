package notification

import (
	"context"
	"log/slog"

	"nomad/internal/domain/service"
)

// noopService records pushes in the log instead of sending them.
type noopService struct {
	logger *slog.Logger
}

// NewNoopService creates a push service for environments without Firebase.
func NewNoopService(logger *slog.Logger) service.PushService {
	return &noopService{logger: logger}
}

func (s *noopService) SendBatch(ctx context.Context, tokens []string, msg *service.PushMessage) (int, int, []string, error) {
	s.logger.DebugContext(ctx, "push skipped",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
	)

	return 0, 0, nil, nil
}
