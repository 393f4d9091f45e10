package repository

import (
	"context"

	"agrimarket/entities"
)

type FarmRepository interface {
	Create(ctx context.Context, f *entities.Farm) error
	FindByID(ctx context.Context, id uint, uid uint) (*entities.Farm, error)
	ListByUser(ctx context.Context, uid uint) ([]entities.Farm, error)
	// FirstByUser returns the user's primary (oldest) farm, or nil when the
	// user has no farm yet.
	FirstByUser(ctx context.Context, uid uint) (*entities.Farm, error)

	CreateCrop(ctx context.Context, cr *entities.Crop) error
	CropsByFarm(ctx context.Context, farmID uint) ([]entities.Crop, error)
	CropsByUser(ctx context.Context, uid uint) ([]entities.Crop, error)
	FindCropByID(ctx context.Context, cropID uint, uid uint) (*entities.Crop, error)
	SaveCrop(ctx context.Context, cr *entities.Crop) error
}
