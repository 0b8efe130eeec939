package service

import (
	"context"

	"agri/entities"
)

type CropService interface {
	Create(ctx context.Context, c *entities.Crop) (*entities.Crop, error)
	Get(ctx context.Context, id uint) (*entities.Crop, error)
	ListByLocation(ctx context.Context, locationID uint) ([]entities.Crop, error)
	Update(ctx context.Context, id uint, c *entities.Crop) (*entities.Crop, error)
	Delete(ctx context.Context, id uint) error
}
