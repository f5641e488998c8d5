package normalize

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
)

func fp(v float64) *float64 { return &v }

func TestNormalizeMergesDuplicateNames(t *testing.T) {
	raw := llm.RawExtraction{
		Items: []llm.RawItem{
			{ItemName: "Steel Beams", VendorAPrice: fp(10.00)},
			{ItemName: "  steel   beams ", VendorBPrice: fp(12.50)},
		},
	}

	items, vendors, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Steel Beams", items[0].Name, "first spelling wins for display")
	assert.Equal(t, map[int]int64{0: 1000, 1: 1250}, items[0].PricesByVendor)
	require.Len(t, vendors, 2)
	assert.Equal(t, "Vendor A", vendors[0].Name)
	assert.Equal(t, "Vendor B", vendors[1].Name)
}

func TestNormalizeLastUsablePriceWins(t *testing.T) {
	raw := llm.RawExtraction{
		Items: []llm.RawItem{
			{ItemName: "Rebar", VendorAPrice: fp(5.00)},
			{ItemName: "rebar", VendorAPrice: fp(6.00)},
			{ItemName: "REBAR", VendorAPrice: fp(-1)}, // unusable, must not clobber
		},
	}

	items, _, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(600), items[0].PricesByVendor[0])
}

func TestNormalizeDropsNonPositiveAndNonFinitePrices(t *testing.T) {
	raw := llm.RawExtraction{
		Items: []llm.RawItem{
			{
				ItemName:     "Lumber",
				VendorAPrice: fp(0),
				VendorBPrice: fp(-3.50),
				VendorCPrice: fp(math.NaN()),
			},
			{
				ItemName:     "Concrete",
				VendorAPrice: fp(math.Inf(1)),
				VendorBPrice: fp(99.99),
			},
		},
	}

	items, vendors, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Empty(t, items[0].PricesByVendor, "priceless item kept with empty map")
	assert.Equal(t, map[int]int64{1: 9999}, items[1].PricesByVendor)
	// highest usable slot is B, so only two vendor columns exist
	require.Len(t, vendors, 2)
}

func TestNormalizeOverflowingPricesTreatedAsAbsent(t *testing.T) {
	raw := llm.RawExtraction{
		Items: []llm.RawItem{
			{ItemName: "Turbine", VendorAPrice: fp(1e17), VendorBPrice: fp(42.50)},
			{ItemName: "Gasket", VendorAPrice: fp(math.MaxFloat64)},
		},
	}

	items, _, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// the rounded-to-cents value of 1e17 does not fit in int64; it must be
	// a no-bid, never a negative price
	assert.Equal(t, map[int]int64{1: 4250}, items[0].PricesByVendor)
	assert.Empty(t, items[1].PricesByVendor)
	for _, item := range items {
		for _, cents := range item.PricesByVendor {
			assert.Positive(t, cents)
		}
	}
}

func TestNormalizeRoundsToCents(t *testing.T) {
	raw := llm.RawExtraction{
		Items: []llm.RawItem{
			{ItemName: "Pipe", VendorAPrice: fp(10.005), VendorBPrice: fp(0.014)},
		},
	}

	items, _, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), items[0].PricesByVendor[0])
	assert.Equal(t, int64(1), items[0].PricesByVendor[1])
}

func TestNormalizeVendorMetadataWins(t *testing.T) {
	raw := llm.RawExtraction{
		Items: []llm.RawItem{
			{ItemName: "Glass", VendorAPrice: fp(1), VendorCPrice: fp(2)},
		},
		Vendors: []llm.RawVendor{
			{Name: "  Acme  Corp ", Contact: " acme@example.com "},
		},
	}

	_, vendors, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, vendors, 3, "slot C holds a price, so three columns")

	assert.Equal(t, "Acme Corp", vendors[0].Name)
	assert.Equal(t, "acme@example.com", vendors[0].Contact)
	// tail beyond the metadata keeps positional defaults
	assert.Equal(t, "Vendor B", vendors[1].Name)
	assert.Equal(t, "Vendor C", vendors[2].Name)
}

func TestNormalizeBlankVendorNameFallsBackToDefault(t *testing.T) {
	raw := llm.RawExtraction{
		Items: []llm.RawItem{
			{ItemName: "Glass", VendorAPrice: fp(1), VendorBPrice: fp(2)},
		},
		Vendors: []llm.RawVendor{
			{Name: "   "},
			{Name: "Benton Supply"},
		},
	}

	_, vendors, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "Vendor A", vendors[0].Name)
	assert.Equal(t, "Benton Supply", vendors[1].Name)
}

func TestNormalizeEmptyPayloadIsNotAnError(t *testing.T) {
	items, vendors, err := Normalize(llm.RawExtraction{})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, vendors)
}

func TestNormalizeAllItemsUnusableIsAnError(t *testing.T) {
	raw := llm.RawExtraction{
		Items: []llm.RawItem{
			{ItemName: "   "},
			{ItemName: ""},
		},
	}

	_, _, err := Normalize(raw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNormalization))
}

func TestNormalizePreservesFirstSeenOrder(t *testing.T) {
	raw := llm.RawExtraction{
		Items: []llm.RawItem{
			{ItemName: "Zinc", VendorAPrice: fp(3)},
			{ItemName: "Alum", VendorAPrice: fp(2)},
			{ItemName: "zinc", VendorBPrice: fp(4)},
		},
	}

	items, _, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Zinc", items[0].Name)
	assert.Equal(t, "Alum", items[1].Name)
}
