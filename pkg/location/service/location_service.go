package service

import (
	"context"

	"agri/entities"
	"agri/pkg/listing"
	"agri/pkg/relation"
)

type LocationService interface {
	Create(ctx context.Context, l *entities.Location) (*entities.Location, error)
	Get(ctx context.Context, id uint) (*entities.Location, error)
	List(ctx context.Context, p listing.Params) ([]entities.Location, int64, error)
	Update(ctx context.Context, id uint, l *entities.Location) (*entities.Location, error)
	Delete(ctx context.Context, id uint) error
	Allocation(ctx context.Context, id uint) (relation.Allocation, error)
}
