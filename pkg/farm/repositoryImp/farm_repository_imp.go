package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"agrimarket/entities"
	"agrimarket/pkg/farm/repository"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(ctx context.Context, f *entities.Farm) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *farmRepo) FindByID(ctx context.Context, id uint, uid uint) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.WithContext(ctx).Where("farm_id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) ListByUser(ctx context.Context, uid uint) ([]entities.Farm, error) {
	var fs []entities.Farm
	if err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("farm_id ASC").Find(&fs).Error; err != nil {
		return nil, err
	}
	return fs, nil
}

func (r *farmRepo) FirstByUser(ctx context.Context, uid uint) (*entities.Farm, error) {
	var f entities.Farm
	err := r.db.WithContext(ctx).Where("user_id = ?", uid).Order("farm_id ASC").First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmRepo) CreateCrop(ctx context.Context, cr *entities.Crop) error {
	return r.db.WithContext(ctx).Create(cr).Error
}

func (r *farmRepo) CropsByFarm(ctx context.Context, farmID uint) ([]entities.Crop, error) {
	var cs []entities.Crop
	if err := r.db.WithContext(ctx).Where("farm_id = ?", farmID).Order("crop_id ASC").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *farmRepo) CropsByUser(ctx context.Context, uid uint) ([]entities.Crop, error) {
	var cs []entities.Crop
	err := r.db.WithContext(ctx).
		Joins("JOIN farms ON farms.farm_id = crops.farm_id").
		Where("farms.user_id = ?", uid).
		Order("crops.crop_id ASC").
		Find(&cs).Error
	if err != nil {
		return nil, err
	}
	return cs, nil
}

func (r *farmRepo) FindCropByID(ctx context.Context, cropID uint, uid uint) (*entities.Crop, error) {
	var cr entities.Crop
	err := r.db.WithContext(ctx).
		Joins("JOIN farms ON farms.farm_id = crops.farm_id").
		Where("crops.crop_id = ? AND farms.user_id = ?", cropID, uid).
		First(&cr).Error
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *farmRepo) SaveCrop(ctx context.Context, cr *entities.Crop) error {
	return r.db.WithContext(ctx).Save(cr).Error
}
