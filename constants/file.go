package constants

import "strings"

// MaxVendorSlots is the number of vendor price columns the canonical
// comparison shape recognizes.
const MaxVendorSlots = 3

// DefaultVendorNames label the positional slots when the extraction payload
// carries no vendor metadata.
var DefaultVendorNames = [MaxVendorSlots]string{"Vendor A", "Vendor B", "Vendor C"}

// AllowedExtensions holds the accepted file extensions for quote documents.
// The pipeline consumes decoded text, so only text-friendly formats qualify.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"csv":  {},
	"md":   {},
	"json": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// AllowedExt reports whether a normalized extension is accepted.
func AllowedExt(ext string) bool {
	_, ok := AllowedExtensions[ext]
	return ok
}
