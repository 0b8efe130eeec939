package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agri/database"
	"agri/entities"
	"agri/pkg/disease/repository"
	"agri/pkg/listing"
)

const entity = "Disease"

// plant_id is not in the set: a disease stays with the plant it was filed under.
var mutable = []string{"name", "causal_agent", "disease_transmission", "disease_symptoms", "control", "fertilizers", "image_url"}

type diseaseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DiseaseRepository { return &diseaseRepo{db} }

func (r *diseaseRepo) Create(ctx context.Context, d *entities.Disease) error {
	return database.Translate(entity, "create disease", r.db.WithContext(ctx).Create(d).Error)
}

func (r *diseaseRepo) FindByID(ctx context.Context, id uint) (*entities.Disease, error) {
	var d entities.Disease
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, database.Translate(entity, "get disease", err)
	}
	return &d, nil
}

func (r *diseaseRepo) List(ctx context.Context, p listing.Params) ([]entities.Disease, int64, error) {
	q := r.db.WithContext(ctx).Model(&entities.Disease{})
	if p.Query != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, listing.LikePattern(p.Query))
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, database.Translate(entity, "count diseases", err)
	}
	if p.PerPage > 0 {
		q = q.Offset(p.Offset()).Limit(p.PerPage)
	}
	var out []entities.Disease
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, 0, database.Translate(entity, "list diseases", err)
	}
	return out, total, nil
}

func (r *diseaseRepo) Update(ctx context.Context, d *entities.Disease) error {
	res := r.db.WithContext(ctx).Model(&entities.Disease{ID: d.ID}).Select(mutable).Updates(d)
	if res.Error != nil {
		return database.Translate(entity, "update disease", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "update disease", gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *diseaseRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entities.Disease{}, id)
	if res.Error != nil {
		return database.Translate(entity, "delete disease", res.Error)
	}
	if res.RowsAffected == 0 {
		return database.Translate(entity, "delete disease", gorm.ErrRecordNotFound)
	}
	return nil
}
