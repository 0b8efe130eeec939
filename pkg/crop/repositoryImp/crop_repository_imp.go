package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agri/database"
	"agri/entities"
	"agri/pkg/crop/repository"
)

const entity = "Crop"

var mutable = []string{"crop_type", "allocated_area"}

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	return database.Translate(entity, "create crop", r.db.WithContext(ctx).Create(c).Error)
}

func (r *cropRepo) FindByID(ctx context.Context, id uint) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, database.Translate(entity, "get crop", err)
	}
	return &c, nil
}

func (r *cropRepo) Update(ctx context.Context, c *entities.Crop) error {
	res := r.db.WithContext(ctx).Model(&entities.Crop{ID: c.ID}).Select(mutable).Updates(c)
	if res.Error != nil {
		return database.Translate(entity, "update crop", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "update crop", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *cropRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Crop{}, id)
	if res.Error != nil {
		return database.Translate(entity, "delete crop", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "delete crop", gorm.ErrRecordNotFound)
	}
	return nil
}
