package llm

import (
	"fmt"
	"strings"
)

// BuildExtractionSystemPrompt composes the system message for the pricing
// extraction tool call.
func BuildExtractionSystemPrompt() string {
	parts := []string{
		"You are a procurement data extraction specialist.",
		"Extract every item with its prices from each vendor document.",
		"Use the vendor_a/vendor_b/vendor_c price fields in the order the documents are given.",
		"Report prices as plain numbers without currency symbols.",
		"If a vendor does not quote an item, omit that vendor's price field entirely. Never output null or zero for a missing price.",
		"Include vendor names and contacts in 'vendors' when the documents state them, in document order.",
	}
	return strings.Join(parts, " ")
}

// BuildExtractionUserPrompt labels each document with its filename, the way
// the documents were given to the gateway.
func BuildExtractionUserPrompt(docs []DocumentText) string {
	var b strings.Builder
	b.WriteString("Analyze the following vendor documents and extract pricing information.\n\nDocuments:\n")
	for _, d := range docs {
		fmt.Fprintf(&b, "\n--- %s ---\n%s\n", d.Filename, d.Content)
	}
	b.WriteString("\nExtract all items with their prices from each vendor.")
	return b.String()
}

// BuildMemoSystemPrompt is the system message for memo generation.
func BuildMemoSystemPrompt() string {
	return "You are a professional procurement analyst. Generate detailed, actionable procurement memos with specific recommendations and financial analysis."
}

// BuildMemoUserPrompt composes the analysis prompt from the finalized
// comparison figures.
func BuildMemoUserPrompt(req MemoRequest) string {
	var b strings.Builder
	b.WriteString("Analyze the following vendor price comparison and generate a professional procurement approval memo.\n\n")
	b.WriteString("COMPARISON DATA:\n")
	fmt.Fprintf(&b, "Title: %s\n", req.Title)
	fmt.Fprintf(&b, "Total Items: %d\n", req.ItemCount)
	fmt.Fprintf(&b, "Number of Vendors: %d\n", req.VendorCount)
	fmt.Fprintf(&b, "Total Value: $%s\n\n", req.TotalDollars)
	b.WriteString("ITEM PRICING:\n")
	b.WriteString(req.ItemAnalysis)
	b.WriteString("\n\nGenerate a comprehensive procurement approval memo that includes:\n")
	b.WriteString("1. Executive Summary with clear recommendation\n")
	b.WriteString("2. Detailed vendor analysis with pricing breakdowns\n")
	b.WriteString("3. Financial impact assessment\n")
	b.WriteString("4. Risk assessment\n")
	b.WriteString("5. Next steps\n\n")
	b.WriteString("Format the memo professionally with proper sections and make specific recommendations based on the lowest prices for each item.")
	return b.String()
}
