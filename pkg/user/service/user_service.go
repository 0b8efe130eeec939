package service

import (
	"context"

	"agri/entities"
	"agri/pkg/listing"
)

type UserService interface {
	Create(ctx context.Context, u *entities.User) (*entities.User, error)
	Get(ctx context.Context, id uint) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, p listing.Params) ([]entities.User, int64, error)
	Update(ctx context.Context, id uint, u *entities.User) (*entities.User, error)
	Delete(ctx context.Context, id uint) error
}
