package main

import (
	"testing"

	"nearby/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFromSeed(t *testing.T) {
	inactive := false
	rating := 4.5

	vendor, items := catalogFromSeed(config.VendorSeed{
		ID:             "v1",
		Name:           "Tea Cart",
		Rating:         &rating,
		DeliveryRadius: 1500,
		Products: []config.ProductSeed{
			{ID: "chai", Name: "Chai", Category: "beverages", Price: 20, Unit: "cup", Quantity: 10},
			{ID: "okra", Name: "Okra", Category: "vegetables", Price: 60, Unit: "kg", Quantity: 5, Active: &inactive},
		},
	})

	assert.Equal(t, "v1", vendor.ID)
	assert.Equal(t, &rating, vendor.Rating)
	assert.InDelta(t, 1500.0, vendor.DeliveryRadiusMeters, 1e-9)
	assert.False(t, vendor.AcceptingOrders)

	require.Len(t, items, 2)
	assert.True(t, items[0].IsActive)
	assert.Equal(t, "cup", items[0].Unit)
	assert.False(t, items[1].IsActive)
}
