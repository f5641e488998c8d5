package utils

import (
	"fmt"
	"time"

	"github.com/harshmriduhash/iq-procure-assist/constants"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent"
	procurementpb "github.com/harshmriduhash/iq-procure-assist/gen/proto/procurement/v1"
	"github.com/harshmriduhash/iq-procure-assist/internal/aggregate"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// CentsToDollars renders integer cents as a 2-decimal dollar string,
// avoiding float formatting entirely.
func CentsToDollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ToComparison converts an ent row (with its files edge loaded, if any)
// into the transport entity.
func ToComparison(row *ent.Comparison) *entity.Comparison {
	out := &entity.Comparison{
		ID:            row.ID,
		Title:         row.Title,
		Status:        constants.ComparisonStatus(row.Status),
		Items:         row.Items,
		Vendors:       row.Vendors,
		TotalCents:    row.TotalCents,
		ItemCount:     row.ItemCount,
		VendorCount:   row.VendorCount,
		Memo:          row.Memo,
		FailureReason: row.FailureReason,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	for _, f := range row.Edges.Files {
		out.Files = append(out.Files, entity.QuoteFile{
			ID:          f.ID,
			Filename:    f.Filename,
			StoragePath: f.StoragePath,
			FileSize:    f.FileSize,
			VendorSlot:  f.VendorSlot,
			UploadedAt:  f.UploadedAt,
		})
	}
	return out
}

// ToPBComparison converts the entity to its protobuf shape. Per-item
// min/max flags are recomputed here rather than read from storage; the
// stored record never carries derived selection state.
func ToPBComparison(c *entity.Comparison) *procurementpb.Comparison {
	res := aggregate.Aggregate(c.Items)

	items := make([]*procurementpb.ComparisonItem, len(c.Items))
	for i, item := range c.Items {
		prices := make(map[int32]int64, len(item.PricesByVendor))
		for vendor, cents := range item.PricesByVendor {
			prices[int32(vendor)] = cents
		}
		pbItem := &procurementpb.ComparisonItem{
			Name:                item.Name,
			Unit:                item.Unit,
			PricesByVendorCents: prices,
			LowestVendors:       toInt32s(res.PerItem[i].MinVendors),
			HighestVendors:      toInt32s(res.PerItem[i].MaxVendors),
		}
		if res.PerItem[i].MinCents != nil {
			pbItem.MinCents = res.PerItem[i].MinCents
			pbItem.MaxCents = res.PerItem[i].MaxCents
		}
		items[i] = pbItem
	}

	vendors := make([]*procurementpb.VendorRef, len(c.Vendors))
	for i, v := range c.Vendors {
		vendors[i] = &procurementpb.VendorRef{Name: v.Name, Contact: v.Contact}
	}

	files := make([]*procurementpb.QuoteFile, len(c.Files))
	for i, f := range c.Files {
		pbFile := &procurementpb.QuoteFile{
			Id:          f.ID.String(),
			Filename:    f.Filename,
			StoragePath: f.StoragePath,
			FileSize:    f.FileSize,
			UploadedAt:  f.UploadedAt.UTC().Format(time.RFC3339),
		}
		if f.VendorSlot != nil {
			slot := int32(*f.VendorSlot)
			pbFile.VendorSlot = &slot
		}
		files[i] = pbFile
	}

	return &procurementpb.Comparison{
		Id:            c.ID.String(),
		Title:         c.Title,
		Status:        string(c.Status),
		Files:         files,
		Items:         items,
		Vendors:       vendors,
		TotalCents:    c.TotalCents,
		ItemCount:     int32(c.ItemCount),
		VendorCount:   int32(c.VendorCount),
		Memo:          strOrEmpty(c.Memo),
		FailureReason: strOrEmpty(c.FailureReason),
		DataAbsent:    c.DataAbsent(),
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toInt32s(in []int) []int32 {
	if len(in) == 0 {
		return nil
	}
	out := make([]int32, len(in))
	for i, v := range in {
		out[i] = int32(v)
	}
	return out
}
