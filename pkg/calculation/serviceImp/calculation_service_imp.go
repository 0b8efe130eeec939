package serviceImp

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"agri/entities"
	"agri/pkg/apperrors"
	repo "agri/pkg/calculation/repository"
	"agri/pkg/calculation/service"
	"agri/pkg/cost"
	"agri/pkg/metrics"
)

// plantNames is consulted only when crop names must match a stored plant.
type plantNames interface {
	FindByName(ctx context.Context, name string) (*entities.Plant, error)
}

type Options struct {
	StrictCropNames bool
}

type calculationSvc struct {
	r      repo.CalculationRepository
	table  *cost.Table
	plants plantNames
	opts   Options
	log    *zap.Logger
	m      *metrics.Metrics
}

func NewCalculationService(r repo.CalculationRepository, table *cost.Table, plants plantNames, opts Options, log *zap.Logger, m *metrics.Metrics) service.CalculationService {
	return &calculationSvc{r: r, table: table, plants: plants, opts: opts, log: log.Named("calculation"), m: m}
}

func (s *calculationSvc) Calculate(ctx context.Context, userID string, req cost.Request) (*entities.Calculation, error) {
	userID = strings.TrimSpace(userID)
	if err := apperrors.Required("userId", userID); err != nil {
		return nil, err
	}
	if s.opts.StrictCropNames && strings.TrimSpace(req.Crop) != "" {
		if _, err := s.plants.FindByName(ctx, strings.TrimSpace(req.Crop)); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.Invalid("crop", "no plant named %q", req.Crop)
			}
			return nil, err
		}
	}

	est, err := cost.Calculate(s.table, req)
	if err != nil {
		return nil, err
	}
	c := &entities.Calculation{
		UserID:          userID,
		Crop:            est.Crop,
		Area:            est.Area,
		WaterResources:  string(est.WaterResources),
		SoilType:        string(est.SoilType),
		EstimatedCost:   est.EstimatedCost,
		FertilizerNeeds: est.FertilizerNeeds,
		WaterNeeds:      est.WaterNeeds,
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	s.m.Calculation(c.Crop)
	s.log.Info("calculation stored",
		zap.Uint("id", c.ID),
		zap.String("user_id", userID),
		zap.String("crop", c.Crop),
		zap.Float64("estimated_cost", c.EstimatedCost),
	)
	return c, nil
}

func (s *calculationSvc) Get(ctx context.Context, id uint) (*entities.Calculation, error) {
	return s.r.FindByID(ctx, id)
}

func (s *calculationSvc) History(ctx context.Context, userID string) ([]entities.Calculation, error) {
	userID = strings.TrimSpace(userID)
	if err := apperrors.Required("userId", userID); err != nil {
		return nil, err
	}
	return s.r.ListByUser(ctx, userID)
}

func (s *calculationSvc) All(ctx context.Context) ([]entities.Calculation, error) {
	return s.r.ListByUser(ctx, "")
}
