package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"agri/database"
	"agri/entities"
	"agri/pkg/calculation/repository"
)

const entity = "Calculation"

type calculationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CalculationRepository { return &calculationRepo{db} }

func (r *calculationRepo) Create(ctx context.Context, c *entities.Calculation) error {
	return database.Translate(entity, "create calculation", r.db.WithContext(ctx).Create(c).Error)
}

func (r *calculationRepo) FindByID(ctx context.Context, id uint) (*entities.Calculation, error) {
	var c entities.Calculation
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, database.Translate(entity, "get calculation", err)
	}
	return &c, nil
}

func (r *calculationRepo) ListByUser(ctx context.Context, userID string) ([]entities.Calculation, error) {
	q := r.db.WithContext(ctx)
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	out := []entities.Calculation{}
	if err := q.Order("created_at ASC, id ASC").Find(&out).Error; err != nil {
		return nil, database.Translate(entity, "list calculations", err)
	}
	return out, nil
}
