package repository

import (
	"context"

	"agrimarket/entities"
)

type LoanRepository interface {
	Create(ctx context.Context, l *entities.LoanApplication) error
	ListByUser(ctx context.Context, uid uint) ([]entities.LoanApplication, error)
	FindByID(ctx context.Context, id uint) (*entities.LoanApplication, error)
	UpdateStatus(ctx context.Context, id uint, status entities.LoanStatus) error
}
