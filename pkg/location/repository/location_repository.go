package repository

import (
	"context"

	"agri/entities"
	"agri/pkg/listing"
)

type LocationRepository interface {
	Create(ctx context.Context, l *entities.Location) error
	FindByID(ctx context.Context, id uint) (*entities.Location, error)
	// List filters on city; PerPage == 0 returns every match.
	List(ctx context.Context, p listing.Params) ([]entities.Location, int64, error)
	Update(ctx context.Context, l *entities.Location) error
	Delete(ctx context.Context, id uint) error
	// DeleteWithCrops removes the location and its crops in one transaction.
	DeleteWithCrops(ctx context.Context, id uint) (int64, error)
}
