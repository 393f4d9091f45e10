package repository

import (
	"context"

	"agrimarket/entities"
)

// ScoreRepository is the append-only credit-score ledger. Entries are
// never updated or deleted; concurrent appends for one user are allowed
// and reads always take the most recent entry.
type ScoreRepository interface {
	Append(ctx context.Context, e *entities.CreditScore) error
	// LatestByUser returns the most recently calculated entry, or nil
	// when the user has no ledger history yet.
	LatestByUser(ctx context.Context, uid uint) (*entities.CreditScore, error)
	HistoryByUser(ctx context.Context, uid uint) ([]entities.CreditScore, error)
}
