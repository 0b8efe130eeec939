package repository

import (
	"context"

	"agri/entities"
	"agri/pkg/listing"
)

type UserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, p listing.Params) ([]entities.User, int64, error)
	Update(ctx context.Context, u *entities.User) error
	Delete(ctx context.Context, id uint) error
}
