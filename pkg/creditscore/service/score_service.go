package service

import (
	"context"

	"agrimarket/entities"
	"agrimarket/pkg/creditscore/types"
)

type ScoreService interface {
	// GetCreditScore returns the caller's score, recomputing it when the
	// cached ledger entry is older than the freshness window. The bool
	// reports whether the result was freshly computed.
	GetCreditScore(ctx context.Context, userID uint) (types.Result, bool, error)
	History(ctx context.Context, userID uint) ([]entities.CreditScore, error)
}
