package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrimarket/entities"
	"agrimarket/pkg/creditscore/repository"
)

type scoreRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScoreRepository { return &scoreRepo{db} }

func (r *scoreRepo) Append(ctx context.Context, e *entities.CreditScore) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *scoreRepo) LatestByUser(ctx context.Context, uid uint) (*entities.CreditScore, error) {
	var e entities.CreditScore
	err := r.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("calculated_at DESC, entry_id DESC").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *scoreRepo) HistoryByUser(ctx context.Context, uid uint) ([]entities.CreditScore, error) {
	var out []entities.CreditScore
	err := r.db.WithContext(ctx).
		Where("user_id = ?", uid).
		Order("calculated_at DESC, entry_id DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
