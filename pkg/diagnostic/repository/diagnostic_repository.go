package repository

import (
	"context"
	"time"

	"agrimarket/entities"
)

type DiagnosticRepository interface {
	Create(ctx context.Context, d *entities.Diagnostic) error
	ListByFarm(ctx context.Context, farmID uint) ([]entities.Diagnostic, error)
	// RecentByUser returns all of a user's scan events since the cutoff,
	// across every farm they own.
	RecentByUser(ctx context.Context, uid uint, since time.Time) ([]entities.Diagnostic, error)
}
