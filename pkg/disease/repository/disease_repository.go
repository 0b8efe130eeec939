package repository

import (
	"context"

	"agri/entities"
	"agri/pkg/listing"
)

type DiseaseRepository interface {
	Create(ctx context.Context, d *entities.Disease) error
	FindByID(ctx context.Context, id uint) (*entities.Disease, error)
	List(ctx context.Context, p listing.Params) ([]entities.Disease, int64, error)
	Update(ctx context.Context, d *entities.Disease) error
	Delete(ctx context.Context, id uint) error
}
