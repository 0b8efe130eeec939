package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agri/database"
	"agri/entities"
	"agri/pkg/listing"
	"agri/pkg/plant/repository"
)

const entity = "Plant"

// mutable is the full-replace column set for Update.
var mutable = []string{"name", "description", "climate", "soil_ph", "land_preparation", "fertilizers", "image_url", "date"}

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) Create(ctx context.Context, p *entities.Plant) error {
	return database.Translate(entity, "create plant", r.db.WithContext(ctx).Create(p).Error)
}

func (r *plantRepo) FindByID(ctx context.Context, id uint) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, database.Translate(entity, "get plant", err)
	}
	return &p, nil
}

func (r *plantRepo) FindByName(ctx context.Context, name string) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&p).Error; err != nil {
		return nil, database.Translate(entity, "get plant by name", err)
	}
	return &p, nil
}

func (r *plantRepo) List(ctx context.Context, p listing.Params) ([]entities.Plant, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.Plant{})
	if p.Query != "" {
		q = q.Where(`LOWER(name || ' ' || date) LIKE ? ESCAPE '\'`, listing.LikePattern(p.Query))
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, database.Translate(entity, "count plants", err)
	}
	if p.PerPage > 0 {
		q = q.Offset(p.Offset()).Limit(p.PerPage)
	}
	var out []entities.Plant
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, 0, database.Translate(entity, "list plants", err)
	}
	return out, total, nil
}

func (r *plantRepo) Update(ctx context.Context, p *entities.Plant) error {
	res := r.db.WithContext(ctx).Model(&entities.Plant{ID: p.ID}).Select(mutable).Updates(p)
	if res.Error != nil {
		return database.Translate(entity, "update plant", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "update plant", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *plantRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Plant{}, id)
	if res.Error != nil {
		return database.Translate(entity, "delete plant", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "delete plant", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *plantRepo) DeleteWithDiseases(ctx context.Context, id uint) (int64, error) {
	var children int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("plant_id = ?", id).Delete(&entities.Disease{})
		if res.Error != nil {
			return res.Error
		}
		children = res.RowsAffected
		res = tx.Delete(&entities.Plant{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return 0, database.Translate(entity, "delete plant", err)
	}
	return children, nil
}
