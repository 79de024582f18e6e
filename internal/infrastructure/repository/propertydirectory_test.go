package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/instamakaan/instamakaan/internal/domain/property"
	"github.com/instamakaan/instamakaan/internal/infrastructure/database/dbtest"
)

func TestPropertyDirectory(t *testing.T) {
	gdb := dbtest.NewSQLite(t)
	dbtest.SeedListing(t, gdb, "prop_1", "own_1", "2BHK Baner")
	dbtest.SeedListing(t, gdb, "prop_2", "own_1", "Studio Wakad")
	dbtest.SeedListing(t, gdb, "prop_3", "own_2", "Villa Aundh")

	dir := NewPropertyDirectory(gdb)
	ctx := context.Background()

	l, err := dir.GetListing(ctx, "prop_3")
	require.NoError(t, err)
	assert.Equal(t, "own_2", l.OwnerID)

	_, err = dir.GetListing(ctx, "prop_x")
	assert.ErrorIs(t, err, property.ErrListingNotFound)

	owned, err := dir.ListingsOfOwner(ctx, "own_1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "prop_1", owned[0].ID)

	byID, err := dir.GetListings(ctx, []string{"prop_2", "prop_x"})
	require.NoError(t, err)
	assert.Len(t, byID, 1)
	assert.Equal(t, "Studio Wakad", byID["prop_2"].Title)
}

func TestPropertyDirectory_Upsert(t *testing.T) {
	gdb := dbtest.NewSQLite(t)
	dir := NewPropertyDirectory(gdb)
	ctx := context.Background()

	require.NoError(t, dir.Upsert(ctx, &property.Listing{ID: "prop_1", OwnerID: "own_1", Title: "1BHK Kothrud"}))
	require.NoError(t, dir.Upsert(ctx, &property.Listing{ID: "prop_1", OwnerID: "own_2", Title: "1BHK Kothrud (renovated)"}))

	l, err := dir.GetListing(ctx, "prop_1")
	require.NoError(t, err)
	assert.Equal(t, "own_2", l.OwnerID)
	assert.Equal(t, "1BHK Kothrud (renovated)", l.Title)
}
