package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"agri/config"
	"agri/entities"
	"agri/pkg/apperrors"
	"agri/pkg/listing"
	"agri/pkg/metrics"
	repo "agri/pkg/plant/repository"
	"agri/pkg/plant/service"
)

type childCounter interface {
	CountDiseases(ctx context.Context, plantID uint) (int64, error)
}

type plantSvc struct {
	r        repo.PlantRepository
	children childCounter
	policy   string
	log      *zap.Logger
	m        *metrics.Metrics
}

func NewPlantService(r repo.PlantRepository, children childCounter, policy string, log *zap.Logger, m *metrics.Metrics) service.PlantService {
	return &plantSvc{r: r, children: children, policy: policy, log: log.Named("plant"), m: m}
}

func normalize(p *entities.Plant) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Climate = strings.TrimSpace(p.Climate)
	p.SoilPh = strings.TrimSpace(p.SoilPh)
	p.LandPreparation = strings.TrimSpace(p.LandPreparation)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.Date = strings.TrimSpace(p.Date)
	p.Fertilizers = entities.NormalizeList(p.Fertilizers)
	return apperrors.Required("name", p.Name)
}

func (s *plantSvc) Create(ctx context.Context, p *entities.Plant) (*entities.Plant, error) {
	if err := normalize(p); err != nil {
		return nil, err
	}
	p.ID = 0
	if err := s.r.Create(ctx, p); err != nil {
		return nil, err
	}
	s.m.Write("plant", "create")
	return p, nil
}

func (s *plantSvc) Get(ctx context.Context, id uint) (*entities.Plant, error) {
	return s.r.FindByID(ctx, id)
}

func (s *plantSvc) List(ctx context.Context, p listing.Params) ([]entities.Plant, int64, error) {
	return s.r.List(ctx, p)
}

func (s *plantSvc) Update(ctx context.Context, id uint, p *entities.Plant) (*entities.Plant, error) {
	if err := normalize(p); err != nil {
		return nil, err
	}
	p.ID = id
	if err := s.r.Update(ctx, p); err != nil {
		return nil, err
	}
	s.m.Write("plant", "update")
	return s.r.FindByID(ctx, id)
}

func (s *plantSvc) Delete(ctx context.Context, id uint) error {
	switch s.policy {
	case config.DeleteCascade:
		n, err := s.r.DeleteWithDiseases(ctx, id)
		if err != nil {
			return err
		}
		s.log.Info("plant deleted with diseases", zap.Uint("plant_id", id), zap.Int64("diseases", n))
	case config.DeleteRestrict:
		n, err := s.children.CountDiseases(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperrors.Conflict("plant %d still has %d disease(s)", id, n)
		}
		if err := s.r.Delete(ctx, id); err != nil {
			return err
		}
	default:
		n, err := s.children.CountDiseases(ctx, id)
		if err != nil {
			return err
		}
		if err := s.r.Delete(ctx, id); err != nil {
			return err
		}
		if n > 0 {
			s.log.Warn("plant deleted, diseases left orphaned", zap.Uint("plant_id", id), zap.Int64("diseases", n))
		}
	}
	s.m.Write("plant", "delete")
	return nil
}
