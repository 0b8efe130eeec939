package relation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri/entities"
	"agri/pkg/apperrors"
	"agri/pkg/testhelpers"
)

func seed(t *testing.T, r *Resolver, rows ...any) {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, r.db.Create(row).Error)
	}
}

func TestDiseasesForPlant(t *testing.T) {
	r := New(testhelpers.NewDB(t))
	ctx := context.Background()
	rice := &entities.Plant{Name: "Rice"}
	seed(t, r, rice)
	seed(t, r,
		&entities.Disease{Name: "Blast", PlantID: rice.ID},
		&entities.Disease{Name: "Sheath blight", PlantID: rice.ID},
		&entities.Disease{Name: "Late blight", PlantID: rice.ID + 100},
	)

	got, err := r.DiseasesForPlant(ctx, rice.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Blast", got[0].Name)

	n, err := r.CountDiseases(ctx, rice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	// unknown parent: empty, not an error
	got, err = r.DiseasesForPlant(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExists(t *testing.T) {
	r := New(testhelpers.NewDB(t))
	loc := &entities.Location{Province: "P", District: "D", City: "C"}
	seed(t, r, loc)

	ok, err := r.LocationExists(context.Background(), loc.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.PlantExists(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAreaBound(t *testing.T) {
	v := 4.0
	m, ok := AreaBound(entities.Location{AreaSize: "12.5 acres", AreaValue: &v, AreaUnit: "ha"})
	assert.True(t, ok)
	assert.Equal(t, 4.0, m.Value)
	assert.Equal(t, "ha", m.Unit)

	m, ok = AreaBound(entities.Location{AreaSize: "about 7 acres"})
	assert.True(t, ok)
	assert.Equal(t, 7.0, m.Value)

	_, ok = AreaBound(entities.Location{AreaSize: "large"})
	assert.False(t, ok)
}

func TestAllocation(t *testing.T) {
	r := New(testhelpers.NewDB(t))
	ctx := context.Background()
	ten := 10.0
	loc := &entities.Location{City: "Kandy", AreaSize: "10 acres", AreaValue: &ten, AreaUnit: "acres"}
	seed(t, r, loc)
	seed(t, r,
		&entities.Crop{LocationID: loc.ID, CropType: "Rice", AllocatedArea: 6},
		&entities.Crop{LocationID: loc.ID, CropType: "Maize", AllocatedArea: 6.5},
	)

	a, err := r.Allocation(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, 12.5, a.Allocated)
	require.NotNil(t, a.Capacity)
	assert.Equal(t, 10.0, *a.Capacity)
	assert.Equal(t, -2.5, *a.Remaining)
	assert.True(t, a.OverAllocated)
	assert.Equal(t, 2, a.Crops)

	_, err = r.Allocation(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAllocationUnbounded(t *testing.T) {
	r := New(testhelpers.NewDB(t))
	loc := &entities.Location{City: "Galle", AreaSize: "unknown"}
	seed(t, r, loc)
	seed(t, r, &entities.Crop{LocationID: loc.ID, CropType: "Tea", AllocatedArea: 100})

	a, err := r.Allocation(context.Background(), loc.ID)
	require.NoError(t, err)
	assert.Nil(t, a.Capacity)
	assert.Nil(t, a.Remaining)
	assert.False(t, a.OverAllocated)

	assert.NoError(t, r.CheckAllocation(context.Background(), loc.ID, 0, 1e6))
}

func TestCheckAllocation(t *testing.T) {
	r := New(testhelpers.NewDB(t))
	ctx := context.Background()
	ten := 10.0
	loc := &entities.Location{City: "Kandy", AreaValue: &ten}
	seed(t, r, loc)
	rice := &entities.Crop{LocationID: loc.ID, CropType: "Rice", AllocatedArea: 6}
	seed(t, r, rice)

	assert.NoError(t, r.CheckAllocation(ctx, loc.ID, 0, 4))
	assert.ErrorIs(t, r.CheckAllocation(ctx, loc.ID, 0, 4.5), apperrors.ErrValidation)
	// replacing rice itself frees its 6
	assert.NoError(t, r.CheckAllocation(ctx, loc.ID, rice.ID, 10))
	assert.ErrorIs(t, r.CheckAllocation(ctx, 9999, 0, 1), apperrors.ErrNotFound)
}
