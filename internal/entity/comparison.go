package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/harshmriduhash/iq-procure-assist/constants"
)

// VendorRef identifies one vendor column of the comparison matrix.
// Order within Comparison.Vendors defines the column order used for
// price lookups.
type VendorRef struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// ComparisonItem is one row of the matrix. PricesByVendor maps a vendor
// index (into Comparison.Vendors) to a price in integer cents; a vendor
// with no price for this item is absent from the map, never a zero.
type ComparisonItem struct {
	Name           string        `json:"name"`
	Unit           string        `json:"unit,omitempty"`
	PricesByVendor map[int]int64 `json:"prices_by_vendor"`
}

// QuoteFile is one uploaded quote-document reference. Set once at record
// creation, immutable afterward.
type QuoteFile struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	FileSize    int64     `json:"file_size"`
	VendorSlot  *int      `json:"vendor_slot,omitempty"` // declared slot, if the uploader knew it
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Comparison is the unit of work: one multi-vendor pricing comparison
// tracked from submission through completion.
type Comparison struct {
	ID            uuid.UUID                  `json:"id"`
	Title         string                     `json:"title"`
	Status        constants.ComparisonStatus `json:"status"`
	Files         []QuoteFile                `json:"files"`
	Items         []ComparisonItem           `json:"items,omitempty"`
	Vendors       []VendorRef                `json:"vendors,omitempty"`
	TotalCents    int64                      `json:"total_cents"`
	ItemCount     int                        `json:"item_count"`
	VendorCount   int                        `json:"vendor_count"`
	Memo          *string                    `json:"memo,omitempty"`
	FailureReason *string                    `json:"failure_reason,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// DataAbsent reports the "no data found" sub-state: the pipeline ran to
// completion but extraction produced zero items. Distinct from failed.
func (c *Comparison) DataAbsent() bool {
	return c.Status == constants.StatusCompleted && len(c.Items) == 0
}
