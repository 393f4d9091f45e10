package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"agrimarket/entities"
	"agrimarket/pkg/diagnostic/repository"
)

type diagRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DiagnosticRepository { return &diagRepo{db} }

func (r *diagRepo) Create(ctx context.Context, d *entities.Diagnostic) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *diagRepo) ListByFarm(ctx context.Context, farmID uint) ([]entities.Diagnostic, error) {
	var out []entities.Diagnostic
	if err := r.db.WithContext(ctx).Where("farm_id = ?", farmID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *diagRepo) RecentByUser(ctx context.Context, uid uint, since time.Time) ([]entities.Diagnostic, error) {
	var out []entities.Diagnostic
	err := r.db.WithContext(ctx).
		Joins("JOIN farms ON farms.farm_id = diagnostics.farm_id").
		Where("farms.user_id = ? AND diagnostics.created_at >= ?", uid, since).
		Order("diagnostics.created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
