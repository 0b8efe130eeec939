package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"agri/config"
	"agri/entities"
	"agri/pkg/apperrors"
	"agri/pkg/area"
	"agri/pkg/listing"
	repo "agri/pkg/location/repository"
	"agri/pkg/location/service"
	"agri/pkg/metrics"
	"agri/pkg/relation"
)

type crops interface {
	CountCrops(ctx context.Context, locationID uint) (int64, error)
	Allocation(ctx context.Context, locationID uint) (relation.Allocation, error)
}

type locationSvc struct {
	r      repo.LocationRepository
	crops  crops
	policy string
	log    *zap.Logger
	m      *metrics.Metrics
}

func NewLocationService(r repo.LocationRepository, crops crops, policy string, log *zap.Logger, m *metrics.Metrics) service.LocationService {
	return &locationSvc{r: r, crops: crops, policy: policy, log: log.Named("location"), m: m}
}

// normalize trims every field and derives AreaValue/AreaUnit from AreaSize.
func normalize(l *entities.Location) error {
	for _, f := range []*string{
		&l.Province, &l.District, &l.City, &l.Latitude, &l.Longitude,
		&l.AreaSize, &l.SoilType, &l.IrrigationType,
	} {
		*f = strings.TrimSpace(*f)
	}
	l.AreaValue, l.AreaUnit = nil, ""
	if m, ok := area.Parse(l.AreaSize); ok {
		v := m.Value
		l.AreaValue, l.AreaUnit = &v, m.Unit
	}
	for _, req := range []struct{ field, v string }{
		{"province", l.Province}, {"district", l.District}, {"city", l.City},
	} {
		if err := apperrors.Required(req.field, req.v); err != nil {
			return err
		}
	}
	return nil
}

func (s *locationSvc) Create(ctx context.Context, l *entities.Location) (*entities.Location, error) {
	if err := normalize(l); err != nil {
		return nil, err
	}
	l.ID = 0
	if err := s.r.Create(ctx, l); err != nil {
		return nil, err
	}
	s.m.Write("location", "create")
	return l, nil
}

func (s *locationSvc) Get(ctx context.Context, id uint) (*entities.Location, error) {
	return s.r.FindByID(ctx, id)
}

func (s *locationSvc) List(ctx context.Context, p listing.Params) ([]entities.Location, int64, error) {
	return s.r.List(ctx, p)
}

func (s *locationSvc) Update(ctx context.Context, id uint, l *entities.Location) (*entities.Location, error) {
	if err := normalize(l); err != nil {
		return nil, err
	}
	l.ID = id
	if err := s.r.Update(ctx, l); err != nil {
		return nil, err
	}
	s.m.Write("location", "update")
	return s.r.FindByID(ctx, id)
}

func (s *locationSvc) Allocation(ctx context.Context, id uint) (relation.Allocation, error) {
	return s.crops.Allocation(ctx, id)
}

func (s *locationSvc) Delete(ctx context.Context, id uint) error {
	if s.policy == config.DeleteCascade {
		n, err := s.r.DeleteWithCrops(ctx, id)
		if err != nil {
			return err
		}
		s.log.Info("location deleted with crops", zap.Uint("location_id", id), zap.Int64("crops", n))
		s.m.Write("location", "delete")
		return nil
	}

	n, err := s.crops.CountCrops(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 && s.policy == config.DeleteRestrict {
		return apperrors.Conflict("location %d still has %d crop(s)", id, n)
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	if n > 0 {
		s.log.Warn("location deleted, crops left orphaned", zap.Uint("location_id", id), zap.Int64("crops", n))
	}
	s.m.Write("location", "delete")
	return nil
}
