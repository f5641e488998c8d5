package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

func TestAggregatePicksMinAndMaxPerItem(t *testing.T) {
	items := []entity.ComparisonItem{
		{Name: "Steel Beams", PricesByVendor: map[int]int64{0: 1250, 1: 1180, 2: 1350}},
	}

	res := Aggregate(items)
	require.Len(t, res.PerItem, 1)

	st := res.PerItem[0]
	require.NotNil(t, st.MinCents)
	require.NotNil(t, st.MaxCents)
	assert.Equal(t, int64(1180), *st.MinCents)
	assert.Equal(t, int64(1350), *st.MaxCents)
	assert.Equal(t, []int{1}, st.MinVendors)
	assert.Equal(t, []int{2}, st.MaxVendors)
	assert.Equal(t, int64(1180), res.TotalCents)
}

func TestAggregateTiesIncludeAllVendors(t *testing.T) {
	items := []entity.ComparisonItem{
		{Name: "Rebar", PricesByVendor: map[int]int64{0: 900, 1: 900, 2: 950}},
	}

	res := Aggregate(items)
	st := res.PerItem[0]

	assert.Equal(t, []int{0, 1}, st.MinVendors, "both vendors tied at the minimum")
	assert.Equal(t, []int{2}, st.MaxVendors)
	assert.Equal(t, int64(900), res.TotalCents, "a tie is counted once")
}

func TestAggregateAbsentPricesExcluded(t *testing.T) {
	items := []entity.ComparisonItem{
		{Name: "Lumber", PricesByVendor: map[int]int64{1: 4200}},
		{Name: "Sealant", PricesByVendor: map[int]int64{}},
		{Name: "Pipe", PricesByVendor: map[int]int64{0: 100, 2: 300}},
	}

	res := Aggregate(items)
	require.Len(t, res.PerItem, 3)

	// single present price is both min and max
	assert.Equal(t, []int{1}, res.PerItem[0].MinVendors)
	assert.Equal(t, []int{1}, res.PerItem[0].MaxVendors)

	// no present price: nil stats, contributes 0
	assert.Nil(t, res.PerItem[1].MinCents)
	assert.Nil(t, res.PerItem[1].MaxCents)
	assert.Empty(t, res.PerItem[1].MinVendors)

	assert.Equal(t, int64(4200+100), res.TotalCents)
}

func TestAggregateEmptyInput(t *testing.T) {
	res := Aggregate(nil)
	assert.Empty(t, res.PerItem)
	assert.Zero(t, res.TotalCents)
}

func TestAggregateIsIdempotent(t *testing.T) {
	items := []entity.ComparisonItem{
		{Name: "A", PricesByVendor: map[int]int64{0: 500, 1: 500, 2: 700}},
		{Name: "B", PricesByVendor: map[int]int64{2: 150}},
		{Name: "C", PricesByVendor: map[int]int64{0: 99, 1: 98, 2: 97}},
	}

	first := Aggregate(items)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Aggregate(items), "map iteration order must not leak into results")
	}
}

func TestAggregateMinNeverExceedsAnyPresentPrice(t *testing.T) {
	items := []entity.ComparisonItem{
		{Name: "X", PricesByVendor: map[int]int64{0: 13_37, 1: 12_00, 2: 12_00}},
		{Name: "Y", PricesByVendor: map[int]int64{0: 1, 2: 1_000_000}},
	}

	res := Aggregate(items)
	for i, item := range items {
		st := res.PerItem[i]
		for _, cents := range item.PricesByVendor {
			assert.LessOrEqual(t, *st.MinCents, cents)
			assert.GreaterOrEqual(t, *st.MaxCents, cents)
		}
	}
}
