package serviceImp

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"agri/entities"
	"agri/pkg/apperrors"
	"agri/pkg/calculation/repositoryImp"
	"agri/pkg/cost"
	"agri/pkg/metrics"
	plantrepo "agri/pkg/plant/repositoryImp"
	"agri/pkg/testhelpers"
)

func newSvc(t *testing.T, opts Options) (*calculationSvc, *gorm.DB) {
	t.Helper()
	db := testhelpers.NewDB(t)
	svc := NewCalculationService(repositoryImp.New(db), cost.DefaultTable(), plantrepo.New(db), opts, zap.NewNop(), metrics.New())
	return svc.(*calculationSvc), db
}

var riceScarceSandy = cost.Request{Crop: "Rice", Area: 2, WaterResources: "Scarce", SoilType: "Sandy"}

func TestCalculateAppendsExactlyOne(t *testing.T) {
	svc, _ := newSvc(t, Options{})
	ctx := context.Background()

	_, err := svc.Calculate(ctx, "other-user", riceScarceSandy)
	require.NoError(t, err)
	before, err := svc.History(ctx, "u-1")
	require.NoError(t, err)
	require.Empty(t, before)

	c, err := svc.Calculate(ctx, "u-1", riceScarceSandy)
	require.NoError(t, err)
	assert.Equal(t, 139725.00, c.EstimatedCost)
	assert.Equal(t, "250.00 kg Urea", c.FertilizerNeeds)
	assert.Equal(t, "Scarce", c.WaterResources)

	after, err := svc.History(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, c.ID, after[0].ID)
	assert.Equal(t, c.EstimatedCost, after[0].EstimatedCost)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.NoError(t, testutil.GatherAndCompare(svc.m.Registry, strings.NewReader(`
# HELP agri_cost_calculations_total Persisted cost calculations by crop.
# TYPE agri_cost_calculations_total counter
agri_cost_calculations_total{crop="Rice"} 2
`), "agri_cost_calculations_total"))
}

func TestCalculateIsDeterministic(t *testing.T) {
	svc, _ := newSvc(t, Options{})
	a, err := svc.Calculate(context.Background(), "u-1", riceScarceSandy)
	require.NoError(t, err)
	b, err := svc.Calculate(context.Background(), "u-1", riceScarceSandy)
	require.NoError(t, err)
	assert.Equal(t, a.EstimatedCost, b.EstimatedCost)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestInvalidRequestPersistsNothing(t *testing.T) {
	svc, _ := newSvc(t, Options{})
	ctx := context.Background()
	for _, r := range []cost.Request{
		{Crop: "Rice", Area: 0, WaterResources: "Scarce", SoilType: "Sandy"},
		{Crop: "", Area: 1, WaterResources: "Scarce", SoilType: "Sandy"},
		{Crop: "Rice", Area: 1, WaterResources: "Flooded", SoilType: "Sandy"},
		{Crop: "Rice", Area: 1, WaterResources: "Scarce", SoilType: "Clay"},
	} {
		_, err := svc.Calculate(ctx, "u-1", r)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "%+v", r)
	}
	_, err := svc.Calculate(ctx, " ", riceScarceSandy)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	h, err := svc.History(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestStrictCropNames(t *testing.T) {
	svc, db := newSvc(t, Options{StrictCropNames: true})
	ctx := context.Background()

	_, err := svc.Calculate(ctx, "u-1", riceScarceSandy)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	require.NoError(t, db.Create(&entities.Plant{Name: "rice"}).Error)
	_, err = svc.Calculate(ctx, "u-1", riceScarceSandy)
	assert.NoError(t, err)
}

func TestGetAndHistoryRequiresUser(t *testing.T) {
	svc, _ := newSvc(t, Options{})
	ctx := context.Background()
	c, err := svc.Calculate(ctx, "u-1", riceScarceSandy)
	require.NoError(t, err)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)

	_, err = svc.Get(ctx, c.ID+1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = svc.History(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
