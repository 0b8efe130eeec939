// Package relation answers parent/child questions across entities: which
// diseases belong to a plant, which crops sit on a location, and how much
// of a location's area those crops have claimed.
//
// A missing parent is never an error here; lookups return empty results.
package relation

import (
	"context"
	"math"

	"gorm.io/gorm"

	"agri/database"
	"agri/entities"
	"agri/pkg/apperrors"
	"agri/pkg/area"
)

type Resolver struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Resolver { return &Resolver{db: db} }

func (r *Resolver) DiseasesForPlant(ctx context.Context, plantID uint) ([]entities.Disease, error) {
	out := []entities.Disease{}
	err := r.db.WithContext(ctx).Where("plant_id = ?", plantID).Order("id ASC").Find(&out).Error
	return out, database.Translate("Disease", "list diseases by plant", err)
}

func (r *Resolver) CropsForLocation(ctx context.Context, locationID uint) ([]entities.Crop, error) {
	out := []entities.Crop{}
	err := r.db.WithContext(ctx).Where("location_id = ?", locationID).Order("id ASC").Find(&out).Error
	return out, database.Translate("Crop", "list crops by location", err)
}

func (r *Resolver) CountDiseases(ctx context.Context, plantID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.Disease{}).Where("plant_id = ?", plantID).Count(&n).Error
	return n, database.Translate("Disease", "count diseases", err)
}

func (r *Resolver) CountCrops(ctx context.Context, locationID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.Crop{}).Where("location_id = ?", locationID).Count(&n).Error
	return n, database.Translate("Crop", "count crops", err)
}

func (r *Resolver) PlantExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &entities.Plant{}, id)
}

func (r *Resolver) LocationExists(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, &entities.Location{}, id)
}

func (r *Resolver) exists(ctx context.Context, model any, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var n int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, apperrors.Persistence("check parent", err)
	}
	return n > 0, nil
}

// AreaBound is the numeric size of loc. The stored AreaValue wins; rows
// written before it existed fall back to parsing AreaSize.
func AreaBound(loc entities.Location) (area.Measure, bool) {
	if loc.AreaValue != nil {
		return area.Measure{Value: *loc.AreaValue, Unit: loc.AreaUnit}, true
	}
	return area.Parse(loc.AreaSize)
}

// Allocation summarizes how much of a location the crops have claimed.
// Capacity and Remaining are nil when the location size has no number.
type Allocation struct {
	LocationID    uint     `json:"locationId"`
	Capacity      *float64 `json:"capacity"`
	Unit          string   `json:"unit"`
	Allocated     float64  `json:"allocated"`
	Remaining     *float64 `json:"remaining"`
	OverAllocated bool     `json:"overAllocated"`
	Crops         int      `json:"crops"`
}

func (r *Resolver) Allocation(ctx context.Context, locationID uint) (Allocation, error) {
	var loc entities.Location
	if err := r.db.WithContext(ctx).First(&loc, locationID).Error; err != nil {
		return Allocation{}, database.Translate("Location", "get location", err)
	}
	crops, err := r.CropsForLocation(ctx, locationID)
	if err != nil {
		return Allocation{}, err
	}
	a := Allocation{LocationID: locationID, Crops: len(crops)}
	for _, c := range crops {
		a.Allocated += c.AllocatedArea
	}
	a.Allocated = round4(a.Allocated)
	if m, ok := AreaBound(loc); ok {
		capacity := m.Value
		remaining := round4(capacity - a.Allocated)
		a.Capacity, a.Unit, a.Remaining = &capacity, m.Unit, &remaining
		a.OverAllocated = a.Allocated > capacity
	}
	return a, nil
}

// CheckAllocation rejects a crop write that would push the location past
// its size. exceptCrop is the crop being replaced on update (0 on create).
// Locations without a numeric size are unbounded.
func (r *Resolver) CheckAllocation(ctx context.Context, locationID, exceptCrop uint, add float64) error {
	var loc entities.Location
	if err := r.db.WithContext(ctx).First(&loc, locationID).Error; err != nil {
		return database.Translate("Location", "get location", err)
	}
	m, ok := AreaBound(loc)
	if !ok {
		return nil
	}
	var used float64
	err := r.db.WithContext(ctx).Model(&entities.Crop{}).
		Where("location_id = ? AND id <> ?", locationID, exceptCrop).
		Select("COALESCE(SUM(allocated_area), 0)").Scan(&used).Error
	if err != nil {
		return apperrors.Persistence("sum allocated area", err)
	}
	if round4(used+add) > m.Value {
		return apperrors.Invalid("allocatedArea", "%.2f exceeds remaining area %.2f %s of location %d",
			add, math.Max(m.Value-used, 0), m.Unit, locationID)
	}
	return nil
}

func round4(v float64) float64 { return math.Round(v*1e4) / 1e4 }
