package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePayloadCoercesQuotedPrices(t *testing.T) {
	cleaned, dropped, err := SanitizePayload([]byte(`{
		"items": [{"item_name": "Steel", "vendor_a_price": "$1,234", "vendor_b_price": " $12.50 ", "vendor_c_price": 3}]
	}`))
	require.NoError(t, err)

	var out RawExtraction
	require.NoError(t, json.Unmarshal(cleaned, &out))
	require.Len(t, out.Items, 1)

	// "$1,234" does not parse; the field is dropped, not zeroed
	assert.Nil(t, out.Items[0].VendorAPrice)
	assert.Contains(t, dropped, "items[0].vendor_a_price")
	require.NotNil(t, out.Items[0].VendorBPrice)
	assert.Equal(t, 12.5, *out.Items[0].VendorBPrice)
	require.NotNil(t, out.Items[0].VendorCPrice)
	assert.Equal(t, 3.0, *out.Items[0].VendorCPrice)
}

func TestSanitizePayloadDropsUnknownKeysAndNamelessRows(t *testing.T) {
	cleaned, dropped, err := SanitizePayload([]byte(`{
		"items": [
			{"item_name": "Steel", "confidence": 0.9},
			{"unit": "ea", "vendor_a_price": 5}
		],
		"vendors": [
			{"name": "Acme", "rating": 5},
			{"contact": "nobody@example.com"}
		],
		"notes": "free text"
	}`))
	require.NoError(t, err)

	assert.Contains(t, dropped, "notes")
	assert.Contains(t, dropped, "items[0].confidence")
	assert.Contains(t, dropped, "items[1]")
	assert.Contains(t, dropped, "vendors[0].rating")
	assert.Contains(t, dropped, "vendors[1]")

	var out RawExtraction
	require.NoError(t, json.Unmarshal(cleaned, &out))
	require.Len(t, out.Items, 1)
	require.Len(t, out.Vendors, 1)
	assert.Equal(t, "Acme", out.Vendors[0].Name)
}

func TestSanitizePayloadOutputValidates(t *testing.T) {
	cleaned, _, err := SanitizePayload([]byte(`{
		"items": [{"item_name": "Steel", "vendor_a_price": "9.99", "source": "page 2"}],
		"vendors": [{"name": "Acme", "contact": 12345}]
	}`))
	require.NoError(t, err)
	assert.NoError(t, ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), cleaned))
}

func TestSanitizePayloadDropsAbsurdPrices(t *testing.T) {
	cleaned, dropped, err := SanitizePayload([]byte(`{
		"items": [{"item_name": "Turbine", "vendor_a_price": 1e17, "vendor_b_price": "99999999999999999999", "vendor_c_price": 42.5}]
	}`))
	require.NoError(t, err)

	assert.Contains(t, dropped, "items[0].vendor_a_price")
	assert.Contains(t, dropped, "items[0].vendor_b_price")

	var out RawExtraction
	require.NoError(t, json.Unmarshal(cleaned, &out))
	require.Len(t, out.Items, 1)
	assert.Nil(t, out.Items[0].VendorAPrice)
	assert.Nil(t, out.Items[0].VendorBPrice)
	require.NotNil(t, out.Items[0].VendorCPrice)
	assert.Equal(t, 42.5, *out.Items[0].VendorCPrice)

	assert.NoError(t, ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), cleaned))
}

func TestSanitizePayloadInvalidJSON(t *testing.T) {
	_, _, err := SanitizePayload([]byte(`not json`))
	assert.Error(t, err)
}

func TestValidateRejectsMissingItems(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildExtractionJSONSchema(), []byte(`{"vendors": []}`))
	assert.Error(t, err, "items stays required even after sanitizing")
}

func TestValidateRejectsPricesAboveCap(t *testing.T) {
	err := ValidateJSONAgainstSchema(BuildExtractionJSONSchema(),
		[]byte(`{"items": [{"item_name": "Turbine", "vendor_a_price": 1e16}]}`))
	assert.Error(t, err)
}
