package repositoryImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agri/entities"
	"agri/pkg/apperrors"
	"agri/pkg/listing"
	"agri/pkg/testhelpers"
)

func TestCreateAndFind(t *testing.T) {
	r := New(testhelpers.NewDB(t))
	ctx := context.Background()

	p := &entities.Plant{Name: "Rice", Fertilizers: entities.StringList{"Urea", "TSP"}}
	require.NoError(t, r.Create(ctx, p))
	require.NotZero(t, p.ID)

	got, err := r.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StringList{"Urea", "TSP"}, got.Fertilizers)

	got, err = r.FindByName(ctx, "rice")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = r.FindByID(ctx, p.ID+1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.EqualError(t, err, "Plant not found")
}

func TestListSearchAndPage(t *testing.T) {
	r := New(testhelpers.NewDB(t))
	ctx := context.Background()
	for _, p := range []entities.Plant{
		{Name: "Rice", Date: "2024-01-10"},
		{Name: "Red Onion", Date: "2024-02-01"},
		{Name: "Maize", Date: "2023-12-01"},
		{Name: "100%_Tea", Date: "2024-03-03"},
	} {
		p := p
		require.NoError(t, r.Create(ctx, &p))
	}

	all, total, err := r.List(ctx, listing.Params{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, all, 4)

	hits, total, err := r.List(ctx, listing.Params{Query: "2024"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, hits, 3)

	hits, _, err = r.List(ctx, listing.Params{Query: "RED"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Red Onion", hits[0].Name)

	// LIKE wildcards in the query are literal
	hits, _, err = r.List(ctx, listing.Params{Query: "%_"})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "100%_Tea", hits[0].Name)

	page, total, err := r.List(ctx, listing.Params{Page: 2, PerPage: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, page, 1)
	assert.Equal(t, "100%_Tea", page[0].Name)
}

func TestUpdateReplacesMutableFields(t *testing.T) {
	r := New(testhelpers.NewDB(t))
	ctx := context.Background()
	p := &entities.Plant{Name: "Rice", Climate: "Wet", Fertilizers: entities.StringList{"Urea"}}
	require.NoError(t, r.Create(ctx, p))

	// blank fields are written too
	require.NoError(t, r.Update(ctx, &entities.Plant{ID: p.ID, Name: "Paddy"}))
	got, err := r.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paddy", got.Name)
	assert.Empty(t, got.Climate)
	assert.Empty(t, got.Fertilizers)

	err = r.Update(ctx, &entities.Plant{ID: 999, Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := testhelpers.NewDB(t)
	r := New(db)
	ctx := context.Background()
	p := &entities.Plant{Name: "Rice"}
	require.NoError(t, r.Create(ctx, p))
	require.NoError(t, db.Create(&entities.Disease{Name: "Blast", PlantID: p.ID}).Error)
	require.NoError(t, db.Create(&entities.Disease{Name: "Brown spot", PlantID: p.ID}).Error)

	n, err := r.DeleteWithDiseases(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	var left int64
	require.NoError(t, db.Model(&entities.Disease{}).Count(&left).Error)
	assert.Zero(t, left)

	assert.ErrorIs(t, r.Delete(ctx, p.ID), apperrors.ErrNotFound)
	_, err = r.DeleteWithDiseases(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
