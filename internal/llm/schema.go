package llm

// MaxPrice is the largest unit price a payload may carry. No real quote
// goes anywhere near it; values past it are model garbage and would
// overflow int64 when rounded to cents.
const MaxPrice = 1e15

// BuildExtractionJSONSchema returns a JSON-Schema (draft 2020-12 subset) as
// a generic map. We pass this to the gateway as the tool parameter schema
// and also use it locally to validate the returned payload.
func BuildExtractionJSONSchema() map[string]any {
	itemProps := map[string]any{
		"item_name":      map[string]any{"type": "string", "minLength": 1, "description": "Name/description of the item"},
		"unit":           map[string]any{"type": "string", "description": "Unit of measurement"},
		"vendor_a_price": priceProp("Price from first vendor"),
		"vendor_b_price": priceProp("Price from second vendor"),
		"vendor_c_price": priceProp("Price from third vendor"),
	}

	vendorProps := map[string]any{
		"name":    map[string]any{"type": "string", "minLength": 1},
		"contact": map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           itemProps,
					"required":             []string{"item_name"},
				},
			},
			"vendors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties":           vendorProps,
					"required":             []string{"name"},
				},
			},
		},
		"required": []string{"items"},
	}
}

func priceProp(desc string) map[string]any {
	return map[string]any{"type": "number", "maximum": float64(MaxPrice), "description": desc}
}
