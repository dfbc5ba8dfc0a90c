package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvertisementStatus_Valid(t *testing.T) {
	assert.True(t, AdStatusPending.Valid())
	assert.True(t, AdStatusApproved.Valid())
	assert.True(t, AdStatusActive.Valid())
	assert.True(t, AdStatusRejected.Valid())

	assert.False(t, AdvertisementStatus("archived").Valid())
	assert.False(t, AdvertisementStatus("").Valid())
}

func TestAdvertisement_LiveOn(t *testing.T) {
	ad := &Advertisement{
		Status:    AdStatusApproved,
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	}

	// Both window bounds are inclusive.
	assert.True(t, ad.LiveOn("2026-03-01"))
	assert.True(t, ad.LiveOn("2026-03-15"))
	assert.True(t, ad.LiveOn("2026-03-31"))
	assert.False(t, ad.LiveOn("2026-02-28"))
	assert.False(t, ad.LiveOn("2026-04-01"))

	ad.Status = AdStatusActive
	assert.True(t, ad.LiveOn("2026-03-15"))

	ad.Status = AdStatusPending
	assert.False(t, ad.LiveOn("2026-03-15"))

	ad.Status = AdStatusRejected
	assert.False(t, ad.LiveOn("2026-03-15"))
}
