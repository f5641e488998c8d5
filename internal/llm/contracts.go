package llm

import "context"

// DocumentText is one resolved quote document: decoded text content plus
// the filename used to label it in the prompt.
type DocumentText struct {
	Filename string
	Content  string
	Size     int64
}

// RawItem is one extracted line as the gateway reports it: a name plus a
// sparse set of positional vendor prices. Pointers distinguish "absent"
// from zero; zero is still treated as absent downstream.
type RawItem struct {
	ItemName     string   `json:"item_name"`
	Unit         string   `json:"unit,omitempty"`
	VendorAPrice *float64 `json:"vendor_a_price,omitempty"`
	VendorBPrice *float64 `json:"vendor_b_price,omitempty"`
	VendorCPrice *float64 `json:"vendor_c_price,omitempty"`
}

// SlotPrices returns the positional slot prices in order.
func (r RawItem) SlotPrices() [3]*float64 {
	return [3]*float64{r.VendorAPrice, r.VendorBPrice, r.VendorCPrice}
}

// RawVendor is optional vendor metadata returned alongside the items.
type RawVendor struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// RawExtraction is the validated structured payload the gateway produced.
type RawExtraction struct {
	Items   []RawItem   `json:"items"`
	Vendors []RawVendor `json:"vendors,omitempty"`
}

// PriceExtractor turns raw document text into structured vendor pricing.
// The raw JSON of the tool payload is returned for diagnostics.
type PriceExtractor interface {
	ExtractPrices(ctx context.Context, docs []DocumentText) (RawExtraction, []byte, error)
}

// MemoRequest carries the finalized comparison figures the memo is
// written from.
type MemoRequest struct {
	Title        string
	ItemCount    int
	VendorCount  int
	TotalDollars string
	ItemAnalysis string // one "name: Vendor: $price, ..." line per item
}

// MemoWriter produces the narrative procurement memo. The returned text is
// stored verbatim and never parsed back.
type MemoWriter interface {
	WriteMemo(ctx context.Context, req MemoRequest) (string, error)
}
