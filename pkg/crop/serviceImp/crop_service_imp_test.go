package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agri/entities"
	"agri/pkg/apperrors"
	"agri/pkg/crop/repositoryImp"
	"agri/pkg/crop/service"
	"agri/pkg/relation"
	"agri/pkg/testhelpers"
)

func newSvc(t *testing.T, enforce bool) (service.CropService, *gorm.DB) {
	t.Helper()
	db := testhelpers.NewDB(t)
	return NewCropService(repositoryImp.New(db), relation.New(db), enforce, zap.NewNop(), nil), db
}

func location(t *testing.T, db *gorm.DB, size float64) uint {
	t.Helper()
	l := &entities.Location{Province: "Central", District: "Kandy", City: "Kandy", AreaValue: &size, AreaUnit: "acres"}
	require.NoError(t, db.Create(l).Error)
	return l.ID
}

func TestCreateValidation(t *testing.T) {
	svc, db := newSvc(t, false)
	ctx := context.Background()
	loc := location(t, db, 10)

	for _, c := range []*entities.Crop{
		{LocationID: loc, AllocatedArea: 1},
		{LocationID: loc, CropType: "Rice"},
		{LocationID: loc, CropType: "Rice", AllocatedArea: -1},
		{CropType: "Rice", AllocatedArea: 1},
		{LocationID: loc + 1, CropType: "Rice", AllocatedArea: 1},
	} {
		_, err := svc.Create(ctx, c)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "%+v", c)
	}
}

func TestUnenforcedCapAllowsOverAllocation(t *testing.T) {
	svc, db := newSvc(t, false)
	ctx := context.Background()
	loc := location(t, db, 10)

	_, err := svc.Create(ctx, &entities.Crop{LocationID: loc, CropType: "Rice", AllocatedArea: 8})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &entities.Crop{LocationID: loc, CropType: "Maize", AllocatedArea: 8})
	require.NoError(t, err)

	a, err := relation.New(db).Allocation(ctx, loc)
	require.NoError(t, err)
	assert.True(t, a.OverAllocated)
}

func TestEnforcedCap(t *testing.T) {
	svc, db := newSvc(t, true)
	ctx := context.Background()
	loc := location(t, db, 10)

	rice, err := svc.Create(ctx, &entities.Crop{LocationID: loc, CropType: "Rice", AllocatedArea: 8})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &entities.Crop{LocationID: loc, CropType: "Maize", AllocatedArea: 3})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// growing rice to the full 10 is fine, it only competes with others
	got, err := svc.Update(ctx, rice.ID, &entities.Crop{CropType: "Rice", AllocatedArea: 10})
	require.NoError(t, err)
	assert.Equal(t, 10.0, got.AllocatedArea)
	_, err = svc.Update(ctx, rice.ID, &entities.Crop{CropType: "Rice", AllocatedArea: 10.5})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListUpdateDelete(t *testing.T) {
	svc, db := newSvc(t, false)
	ctx := context.Background()
	a, b, c := location(t, db, 5), location(t, db, 5), location(t, db, 5)

	want := map[uint][]string{a: {"Rice", "Maize"}, b: {"Rice"}, c: {"Tea", "Rice", "Pepper"}}
	for loc, types := range want {
		for _, ct := range types {
			_, err := svc.Create(ctx, &entities.Crop{LocationID: loc, CropType: ct, AllocatedArea: 1})
			require.NoError(t, err)
		}
	}
	for loc, types := range want {
		got, err := svc.ListByLocation(ctx, loc)
		require.NoError(t, err)
		var names []string
		for _, cr := range got {
			names = append(names, cr.CropType)
		}
		assert.ElementsMatch(t, types, names)
	}

	list, err := svc.ListByLocation(ctx, b)
	require.NoError(t, err)
	id := list[0].ID

	got, err := svc.Update(ctx, id, &entities.Crop{LocationID: c, CropType: "Paddy", AllocatedArea: 2})
	require.NoError(t, err)
	assert.Equal(t, b, got.LocationID)
	assert.Equal(t, "Paddy", got.CropType)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = svc.Update(ctx, id, &entities.Crop{CropType: "x", AllocatedArea: 1})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
