package service

import (
	"context"

	"agri/entities"
	"agri/pkg/listing"
)

type DiseaseService interface {
	Create(ctx context.Context, d *entities.Disease) (*entities.Disease, error)
	Get(ctx context.Context, id uint) (*entities.Disease, error)
	List(ctx context.Context, p listing.Params) ([]entities.Disease, int64, error)
	ListByPlant(ctx context.Context, plantID uint) ([]entities.Disease, error)
	Update(ctx context.Context, id uint, d *entities.Disease) (*entities.Disease, error)
	Delete(ctx context.Context, id uint) error
}
