package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agri/database"
	"agri/entities"
	"agri/pkg/listing"
	"agri/pkg/user/repository"
)

const entity = "User"

var mutable = []string{"name", "email", "role", "photo_url"}

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(ctx context.Context, u *entities.User) error {
	return database.Translate(entity, "create user", r.db.WithContext(ctx).Create(u).Error)
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, database.Translate(entity, "get user", err)
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, database.Translate(entity, "get user by email", err)
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context, p listing.Params) ([]entities.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.User{})
	if p.Query != "" {
		q = q.Where(`LOWER(name || ' ' || email) LIKE ? ESCAPE '\'`, listing.LikePattern(p.Query))
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, database.Translate(entity, "count users", err)
	}
	if p.PerPage > 0 {
		q = q.Offset(p.Offset()).Limit(p.PerPage)
	}
	var out []entities.User
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, 0, database.Translate(entity, "list users", err)
	}
	return out, total, nil
}

func (r *userRepo) Update(ctx context.Context, u *entities.User) error {
	res := r.db.WithContext(ctx).Model(&entities.User{ID: u.ID}).Select(mutable).Updates(u)
	if res.Error != nil {
		return database.Translate(entity, "update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "update user", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.User{}, id)
	if res.Error != nil {
		return database.Translate(entity, "delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "delete user", gorm.ErrRecordNotFound)
	}
	return nil
}
