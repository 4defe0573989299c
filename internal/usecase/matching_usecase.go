package usecase

import (
	"context"

	"nomad/internal/domain/entity"
)

// MatchingUsecase evaluates users against business targeting criteria.
type MatchingUsecase interface {
	// Evaluate matches the user context against candidate businesses and
	// returns the notifications it created. Re-evaluating an unchanged
	// context creates nothing new.
	Evaluate(ctx context.Context, userContext *entity.UserContext) ([]*entity.BusinessNotification, error)

	// Enqueue hands a context change to the match worker.
	Enqueue(ctx context.Context, userContext *entity.UserContext) error
}
