package repository

import (
	"context"

	"agri/entities"
	"agri/pkg/listing"
)

type PlantRepository interface {
	Create(ctx context.Context, p *entities.Plant) error
	FindByID(ctx context.Context, id uint) (*entities.Plant, error)
	FindByName(ctx context.Context, name string) (*entities.Plant, error)
	// List filters on name+date; PerPage == 0 returns every match.
	List(ctx context.Context, p listing.Params) ([]entities.Plant, int64, error)
	Update(ctx context.Context, p *entities.Plant) error
	Delete(ctx context.Context, id uint) error
	// DeleteWithDiseases removes the plant and its diseases in one transaction.
	DeleteWithDiseases(ctx context.Context, id uint) (int64, error)
}
