package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agri/database"
	"agri/entities"
	"agri/pkg/listing"
	"agri/pkg/location/repository"
)

const entity = "Location"

var mutable = []string{
	"province", "district", "city", "latitude", "longitude",
	"area_size", "area_value", "area_unit", "soil_type", "irrigation_type",
}

type locationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LocationRepository { return &locationRepo{db} }

func (r *locationRepo) Create(ctx context.Context, l *entities.Location) error {
	return database.Translate(entity, "create location", r.db.WithContext(ctx).Create(l).Error)
}

func (r *locationRepo) FindByID(ctx context.Context, id uint) (*entities.Location, error) {
	var l entities.Location
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, database.Translate(entity, "get location", err)
	}
	return &l, nil
}

func (r *locationRepo) List(ctx context.Context, p listing.Params) ([]entities.Location, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.Location{})
	if p.Query != "" {
		q = q.Where(`LOWER(city) LIKE ? ESCAPE '\'`, listing.LikePattern(p.Query))
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, database.Translate(entity, "count locations", err)
	}
	if p.PerPage > 0 {
		q = q.Offset(p.Offset()).Limit(p.PerPage)
	}
	var out []entities.Location
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, 0, database.Translate(entity, "list locations", err)
	}
	return out, total, nil
}

func (r *locationRepo) Update(ctx context.Context, l *entities.Location) error {
	res := r.db.WithContext(ctx).Model(&entities.Location{ID: l.ID}).Select(mutable).Updates(l)
	if res.Error != nil {
		return database.Translate(entity, "update location", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "update location", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *locationRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Location{}, id)
	if res.Error != nil {
		return database.Translate(entity, "delete location", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "delete location", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *locationRepo) DeleteWithCrops(ctx context.Context, id uint) (int64, error) {
	var children int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("location_id = ?", id).Delete(&entities.Crop{})
		if res.Error != nil {
			return res.Error
		}
		children = res.RowsAffected
		res = tx.Delete(&entities.Location{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, database.Translate(entity, "delete location", err)
	}
	return children, nil
}
