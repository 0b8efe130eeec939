package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"agri/entities"
	"agri/pkg/apperrors"
	repo "agri/pkg/disease/repository"
	"agri/pkg/disease/service"
	"agri/pkg/listing"
	"agri/pkg/metrics"
)

type plants interface {
	PlantExists(ctx context.Context, id uint) (bool, error)
	DiseasesForPlant(ctx context.Context, plantID uint) ([]entities.Disease, error)
}

type diseaseSvc struct {
	r      repo.DiseaseRepository
	plants plants
	log    *zap.Logger
	m      *metrics.Metrics
}

func NewDiseaseService(r repo.DiseaseRepository, plants plants, log *zap.Logger, m *metrics.Metrics) service.DiseaseService {
	return &diseaseSvc{r: r, plants: plants, log: log.Named("disease"), m: m}
}

func normalize(d *entities.Disease) error {
	d.Name = strings.TrimSpace(d.Name)
	d.CausalAgent = strings.TrimSpace(d.CausalAgent)
	d.DiseaseTransmission = strings.TrimSpace(d.DiseaseTransmission)
	d.DiseaseSymptoms = strings.TrimSpace(d.DiseaseSymptoms)
	d.Control = strings.TrimSpace(d.Control)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	d.Fertilizers = entities.NormalizeList(d.Fertilizers)
	return apperrors.Required("name", d.Name)
}

func (s *diseaseSvc) Create(ctx context.Context, d *entities.Disease) (*entities.Disease, error) {
	if err := normalize(d); err != nil {
		return nil, err
	}
	if d.PlantID == 0 {
		return nil, apperrors.Invalid("plantId", "is required")
	}
	ok, err := s.plants.PlantExists(ctx, d.PlantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.Invalid("plantId", "plant %d does not exist", d.PlantID)
	}
	d.ID = 0
	if err := s.r.Create(ctx, d); err != nil {
		return nil, err
	}
	s.m.Write("disease", "create")
	s.log.Debug("disease created", zap.Uint("id", d.ID), zap.Uint("plant_id", d.PlantID))
	return d, nil
}

func (s *diseaseSvc) Get(ctx context.Context, id uint) (*entities.Disease, error) {
	return s.r.FindByID(ctx, id)
}

func (s *diseaseSvc) List(ctx context.Context, p listing.Params) ([]entities.Disease, int64, error) {
	return s.r.List(ctx, p)
}

func (s *diseaseSvc) ListByPlant(ctx context.Context, plantID uint) ([]entities.Disease, error) {
	return s.plants.DiseasesForPlant(ctx, plantID)
}

func (s *diseaseSvc) Update(ctx context.Context, id uint, d *entities.Disease) (*entities.Disease, error) {
	if err := normalize(d); err != nil {
		return nil, err
	}
	d.ID = id
	if err := s.r.Update(ctx, d); err != nil {
		return nil, err
	}
	s.m.Write("disease", "update")
	return s.r.FindByID(ctx, id)
}

func (s *diseaseSvc) Delete(ctx context.Context, id uint) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.m.Write("disease", "delete")
	return nil
}
