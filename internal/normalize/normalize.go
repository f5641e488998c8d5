// Package normalize converts raw extraction payloads into the canonical
// item/vendor matrix. It is pure computation: no I/O, no mutation of its
// input, tolerant of partial data.
package normalize

import (
	"math"
	"strings"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/internal/common"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
	"github.com/harshmriduhash/iq-procure-assist/internal/llm"
)

// Normalize converts a raw extraction into canonical items and vendors.
//
// Vendor identity: explicit metadata wins, taken in given order; otherwise
// vendors are the positional slots, up to the highest slot holding a usable
// price. Item names equal after lowercasing and whitespace collapsing are
// merged; per vendor slot the last usable price wins. Prices that are
// non-numeric, negative, or zero are absent, not $0 bids. Items with no
// usable price are retained with an empty price map.
//
// A payload with items that are all unusable is a normalization failure; a
// payload with zero items is not (that is the "no data found" case).
func Normalize(raw llm.RawExtraction) ([]entity.ComparisonItem, []entity.VendorRef, error) {
	type row struct {
		name  string
		unit  string
		cents map[int]int64
	}

	var order []string
	rows := make(map[string]*row)
	maxSlot := -1

	for _, ri := range raw.Items {
		display := collapseSpace(ri.ItemName)
		if display == "" {
			continue
		}
		key := strings.ToLower(display)
		r, seen := rows[key]
		if !seen {
			r = &row{name: display, cents: make(map[int]int64)}
			rows[key] = r
			order = append(order, key)
		}
		if u := collapseSpace(ri.Unit); u != "" {
			r.unit = u
		}
		for slot, p := range ri.SlotPrices() {
			c, ok := toCents(p)
			if !ok {
				continue
			}
			r.cents[slot] = c
			if slot > maxSlot {
				maxSlot = slot
			}
		}
	}

	if len(raw.Items) > 0 && len(order) == 0 {
		return nil, nil, common.NormalizationError("no usable items after cleaning")
	}

	items := make([]entity.ComparisonItem, 0, len(order))
	for _, key := range order {
		r := rows[key]
		items = append(items, entity.ComparisonItem{
			Name:           r.name,
			Unit:           r.unit,
			PricesByVendor: r.cents,
		})
	}

	vendors := resolveVendors(raw.Vendors, maxSlot)
	return items, vendors, nil
}

// resolveVendors builds the vendor column list. maxSlot is the highest
// positional slot carrying a price, or -1 when no price survived.
func resolveVendors(meta []llm.RawVendor, maxSlot int) []entity.VendorRef {
	n := maxSlot + 1
	if len(meta) > n {
		n = len(meta)
	}
	if n > constants.MaxVendorSlots {
		n = constants.MaxVendorSlots
	}
	if n == 0 {
		return nil
	}

	vendors := make([]entity.VendorRef, n)
	for i := range vendors {
		if i < len(meta) && collapseSpace(meta[i].Name) != "" {
			vendors[i] = entity.VendorRef{
				Name:    collapseSpace(meta[i].Name),
				Contact: strings.TrimSpace(meta[i].Contact),
			}
			continue
		}
		// tail slots beyond the metadata keep their positional default so
		// no price column is orphaned
		vendors[i] = entity.VendorRef{Name: constants.DefaultVendorNames[i]}
	}
	return vendors
}

// toCents converts a raw price to integer cents. Absent, non-finite,
// zero, and negative values are all "no bid", as is anything past
// llm.MaxPrice: rounding such a value to cents would overflow int64 and
// surface as a negative price.
func toCents(p *float64) (int64, bool) {
	if p == nil {
		return 0, false
	}
	v := *p
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > llm.MaxPrice {
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
