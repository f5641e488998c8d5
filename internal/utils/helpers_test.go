package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

func TestCentsToDollars(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1180, "11.80"},
		{123456789, "1234567.89"},
		{-1250, "-12.50"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CentsToDollars(c.cents))
	}
}

func TestToPBComparisonRecomputesSelectionFlags(t *testing.T) {
	rec := &entity.Comparison{
		ID:     uuid.New(),
		Title:  "flags",
		Status: constants.StatusCompleted,
		Items: []entity.ComparisonItem{
			{Name: "Rebar", PricesByVendor: map[int]int64{0: 900, 1: 900, 2: 950}},
			{Name: "Sealant", PricesByVendor: map[int]int64{}},
		},
		Vendors:    []entity.VendorRef{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		TotalCents: 900,
	}

	pb := ToPBComparison(rec)
	require.Len(t, pb.Items, 2)

	tied := pb.Items[0]
	require.NotNil(t, tied.MinCents)
	assert.Equal(t, int64(900), *tied.MinCents)
	assert.Equal(t, []int32{0, 1}, tied.LowestVendors)
	assert.Equal(t, []int32{2}, tied.HighestVendors)

	absent := pb.Items[1]
	assert.Nil(t, absent.MinCents)
	assert.Empty(t, absent.LowestVendors)

	assert.False(t, pb.DataAbsent)
}

func TestToPBComparisonDataAbsent(t *testing.T) {
	rec := &entity.Comparison{
		ID:     uuid.New(),
		Status: constants.StatusCompleted,
	}
	pb := ToPBComparison(rec)
	assert.True(t, pb.DataAbsent)
	assert.Empty(t, pb.Items)
}
