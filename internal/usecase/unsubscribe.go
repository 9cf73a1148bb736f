package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierca1/ligue-mailer/internal/entity"
)

type UnsubscribeUseCase struct {
	Subscribers SubscriberRepositoryInterface
}

func NewUnsubscribeUseCase(subscribers SubscriberRepositoryInterface) *UnsubscribeUseCase {
	return &UnsubscribeUseCase{Subscribers: subscribers}
}

// Execute flips the subscriber to unsubscribed. Only existence is checked:
// unsubscribing an already-unsubscribed subscriber succeeds again, and the
// flag never goes back to true.
func (uc *UnsubscribeUseCase) Execute(ctx context.Context, subscriberID string) error {
	if strings.TrimSpace(subscriberID) == "" {
		return NewConfigurationError("subscriber id is required")
	}

	sub, err := uc.Subscribers.FindByID(ctx, subscriberID)
	if err != nil {
		if err == entity.ErrSubscriberNotFound {
			return NewNotFoundError(err.Error())
		}
		return fmt.Errorf("failed to load subscriber: %w", err)
	}

	if err := uc.Subscribers.UpdateSubscribed(ctx, sub.ID, false); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}

	return nil
}
