package repository

import (
	"context"

	"agrimarket/entities"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, s *entities.Subscription) error
	// CurrentByUser returns the user's most recent subscription, or nil
	// when the user has never subscribed.
	CurrentByUser(ctx context.Context, uid uint) (*entities.Subscription, error)
	Save(ctx context.Context, s *entities.Subscription) error
}
