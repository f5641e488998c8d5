package llm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var priceKeys = []string{"vendor_a_price", "vendor_b_price", "vendor_c_price"}

var knownItemKeys = map[string]struct{}{
	"item_name": {}, "unit": {},
	"vendor_a_price": {}, "vendor_b_price": {}, "vendor_c_price": {},
}

// SanitizePayload removes or normalizes optional fields that don't meet our
// stricter schema, so the overall payload can still validate. Only optionals
// are touched: a payload without a usable items array stays invalid.
func SanitizePayload(doc []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	var dropped []string

	// top level: anything besides items/vendors goes
	for k := range m {
		if k != "items" && k != "vendors" {
			delete(m, k)
			dropped = append(dropped, k)
		}
	}

	if rawItems, ok := m["items"].([]any); ok {
		cleaned := make([]any, 0, len(rawItems))
		for i, ri := range rawItems {
			item, ok := ri.(map[string]any)
			if !ok {
				dropped = append(dropped, fmt.Sprintf("items[%d]", i))
				continue
			}
			for k, v := range item {
				if _, known := knownItemKeys[k]; !known {
					delete(item, k)
					dropped = append(dropped, fmt.Sprintf("items[%d].%s", i, k))
					continue
				}
				switch k {
				case "item_name", "unit":
					s, isStr := v.(string)
					if !isStr || strings.TrimSpace(s) == "" {
						delete(item, k)
						dropped = append(dropped, fmt.Sprintf("items[%d].%s", i, k))
					}
				}
			}
			for _, k := range priceKeys {
				v, present := item[k]
				if !present {
					continue
				}
				switch t := v.(type) {
				case float64:
					if t > MaxPrice {
						delete(item, k)
						dropped = append(dropped, fmt.Sprintf("items[%d].%s", i, k))
					}
				case string:
					// models sometimes quote numbers or prefix currency
					s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "$"))
					if f, err := strconv.ParseFloat(s, 64); err == nil && f <= MaxPrice {
						item[k] = f
					} else {
						delete(item, k)
						dropped = append(dropped, fmt.Sprintf("items[%d].%s", i, k))
					}
				default:
					delete(item, k)
					dropped = append(dropped, fmt.Sprintf("items[%d].%s", i, k))
				}
			}
			// items without a name cannot validate; drop the row
			if _, ok := item["item_name"]; !ok {
				dropped = append(dropped, fmt.Sprintf("items[%d]", i))
				continue
			}
			cleaned = append(cleaned, item)
		}
		m["items"] = cleaned
	}

	if rawVendors, ok := m["vendors"].([]any); ok {
		cleaned := make([]any, 0, len(rawVendors))
		for i, rv := range rawVendors {
			vendor, ok := rv.(map[string]any)
			if !ok {
				dropped = append(dropped, fmt.Sprintf("vendors[%d]", i))
				continue
			}
			name, ok := vendor["name"].(string)
			if !ok || strings.TrimSpace(name) == "" {
				dropped = append(dropped, fmt.Sprintf("vendors[%d]", i))
				continue
			}
			for k, v := range vendor {
				if k != "name" && k != "contact" {
					delete(vendor, k)
					dropped = append(dropped, fmt.Sprintf("vendors[%d].%s", i, k))
					continue
				}
				if _, isStr := v.(string); !isStr {
					delete(vendor, k)
					dropped = append(dropped, fmt.Sprintf("vendors[%d].%s", i, k))
				}
			}
			cleaned = append(cleaned, vendor)
		}
		m["vendors"] = cleaned
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
