package repository

import (
	"context"

	"agri/entities"
)

type CropRepository interface {
	Create(ctx context.Context, c *entities.Crop) error
	FindByID(ctx context.Context, id uint) (*entities.Crop, error)
	Update(ctx context.Context, c *entities.Crop) error
	Delete(ctx context.Context, id uint) error
}
