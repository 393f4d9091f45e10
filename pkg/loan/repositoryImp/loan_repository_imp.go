package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agrimarket/entities"
	"agrimarket/pkg/loan/repository"
)

type loanRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LoanRepository { return &loanRepo{db} }

func (r *loanRepo) Create(ctx context.Context, l *entities.LoanApplication) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *loanRepo) ListByUser(ctx context.Context, uid uint) ([]entities.LoanApplication, error) {
	var out []entities.LoanApplication
	if err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("loan_id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *loanRepo) FindByID(ctx context.Context, id uint) (*entities.LoanApplication, error) {
	var l entities.LoanApplication
	if err := r.db.WithContext(ctx).Where("loan_id = ?", id).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *loanRepo) UpdateStatus(ctx context.Context, id uint, status entities.LoanStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.LoanApplication{}).
		Where("loan_id = ?", id).
		Update("status", status).Error
}
