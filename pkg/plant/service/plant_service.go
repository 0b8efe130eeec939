package service

import (
	"context"

	"agri/entities"
	"agri/pkg/listing"
)

type PlantService interface {
	Create(ctx context.Context, p *entities.Plant) (*entities.Plant, error)
	Get(ctx context.Context, id uint) (*entities.Plant, error)
	List(ctx context.Context, p listing.Params) ([]entities.Plant, int64, error)
	Update(ctx context.Context, id uint, p *entities.Plant) (*entities.Plant, error)
	Delete(ctx context.Context, id uint) error
}
