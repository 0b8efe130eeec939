package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"agri/entities"
	"agri/pkg/apperrors"
	repo "agri/pkg/crop/repository"
	"agri/pkg/crop/service"
	"agri/pkg/metrics"
)

type locations interface {
	LocationExists(ctx context.Context, id uint) (bool, error)
	CropsForLocation(ctx context.Context, locationID uint) ([]entities.Crop, error)
	CheckAllocation(ctx context.Context, locationID, exceptCrop uint, add float64) error
}

type cropSvc struct {
	r         repo.CropRepository
	locations locations
	enforce   bool
	log       *zap.Logger
	m         *metrics.Metrics
}

// NewCropService builds the crop service. With enforceCap set, writes that
// push a location past its parsed area are rejected.
func NewCropService(r repo.CropRepository, locations locations, enforceCap bool, log *zap.Logger, m *metrics.Metrics) service.CropService {
	return &cropSvc{r: r, locations: locations, enforce: enforceCap, log: log.Named("crop"), m: m}
}

func normalize(c *entities.Crop) error {
	c.CropType = strings.TrimSpace(c.CropType)
	if err := apperrors.Required("cropType", c.CropType); err != nil {
		return err
	}
	if c.AllocatedArea <= 0 {
		return apperrors.Invalid("allocatedArea", "must be greater than zero")
	}
	return nil
}

func (s *cropSvc) Create(ctx context.Context, c *entities.Crop) (*entities.Crop, error) {
	if err := normalize(c); err != nil {
		return nil, err
	}
	if c.LocationID == 0 {
		return nil, apperrors.Invalid("locationId", "is required")
	}
	ok, err := s.locations.LocationExists(ctx, c.LocationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Invalid("locationId", "location %d does not exist", c.LocationID)
	}
	if s.enforce {
		if err := s.locations.CheckAllocation(ctx, c.LocationID, 0, c.AllocatedArea); err != nil {
			return nil, err
		}
	}
	c.ID = 0
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	s.m.Write("crop", "create")
	return c, nil
}

func (s *cropSvc) Get(ctx context.Context, id uint) (*entities.Crop, error) {
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) ListByLocation(ctx context.Context, locationID uint) ([]entities.Crop, error) {
	return s.locations.CropsForLocation(ctx, locationID)
}

// Update replaces cropType and allocatedArea. A crop never moves between
// locations.
func (s *cropSvc) Update(ctx context.Context, id uint, c *entities.Crop) (*entities.Crop, error) {
	if err := normalize(c); err != nil {
		return nil, err
	}
	cur, err := s.r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.enforce {
		if err := s.locations.CheckAllocation(ctx, cur.LocationID, id, c.AllocatedArea); err != nil {
			return nil, err
		}
	}
	c.ID, c.LocationID = id, cur.LocationID
	if err := s.r.Update(ctx, c); err != nil {
		return nil, err
	}
	s.m.Write("crop", "update")
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) Delete(ctx context.Context, id uint) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.m.Write("crop", "delete")
	return nil
}
