package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrimarket/entities"
	"agrimarket/pkg/subscription/repository"
)

type subRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SubscriptionRepository { return &subRepo{db} }

func (r *subRepo) Create(ctx context.Context, s *entities.Subscription) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *subRepo) CurrentByUser(ctx context.Context, uid uint) (*entities.Subscription, error) {
	var s entities.Subscription
	err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("subscription_id DESC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *subRepo) Save(ctx context.Context, s *entities.Subscription) error {
	return r.db.WithContext(ctx).Save(s).Error
}
