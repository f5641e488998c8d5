// Package aggregate computes per-item min/max vendor prices and the best
// achievable total for a normalized comparison. Pure and idempotent: same
// input always yields the same output, safe to call any number of times.
package aggregate

import (
	"sort"

	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

// ItemStats holds the min/max selection for one matrix row. MinCents and
// MaxCents are nil when the item has no present price; flagging logic must
// skip such items. MinVendors/MaxVendors hold ALL vendors tied at the
// extreme, ascending by vendor index.
type ItemStats struct {
	MinCents   *int64
	MaxCents   *int64
	MinVendors []int
	MaxVendors []int
}

// Result is the aggregation of a whole record.
type Result struct {
	PerItem []ItemStats
	// TotalCents is the sum of per-item minimums; items with no present
	// price contribute 0 (absence is excluded, not penalized).
	TotalCents int64
}

// Aggregate computes Result for the given items. Prices are integer cents
// throughout, so summation introduces no floating-point drift.
func Aggregate(items []entity.ComparisonItem) Result {
	res := Result{PerItem: make([]ItemStats, len(items))}
	for i, item := range items {
		st := itemStats(item)
		res.PerItem[i] = st
		if st.MinCents != nil {
			res.TotalCents += *st.MinCents
		}
	}
	return res
}

func itemStats(item entity.ComparisonItem) ItemStats {
	var st ItemStats
	for vendor, cents := range item.PricesByVendor {
		if st.MinCents == nil {
			lo, hi := cents, cents
			st.MinCents, st.MaxCents = &lo, &hi
			st.MinVendors = []int{vendor}
			st.MaxVendors = []int{vendor}
			continue
		}
		if cents < *st.MinCents {
			v := cents
			st.MinCents = &v
			st.MinVendors = st.MinVendors[:0]
		}
		if cents == *st.MinCents {
			st.MinVendors = append(st.MinVendors, vendor)
		}
		if cents > *st.MaxCents {
			v := cents
			st.MaxCents = &v
			st.MaxVendors = st.MaxVendors[:0]
		}
		if cents == *st.MaxCents {
			st.MaxVendors = append(st.MaxVendors, vendor)
		}
	}
	sort.Ints(st.MinVendors)
	sort.Ints(st.MaxVendors)
	return st
}
