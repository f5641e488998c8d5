// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/harshmriduhash/iq-procure-assist/db/ent/schema"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/comparison"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/quotefile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	comparisonFields := schema.Comparison{}.Fields()
	_ = comparisonFields
	// comparisonDescTitle is the schema descriptor for title field.
	comparisonDescTitle := comparisonFields[1].Descriptor()
	// comparison.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	comparison.TitleValidator = comparisonDescTitle.Validators[0].(func(string) error)
	// comparisonDescStatus is the schema descriptor for status field.
	comparisonDescStatus := comparisonFields[2].Descriptor()
	// comparison.DefaultStatus holds the default value on creation for the status field.
	comparison.DefaultStatus = comparisonDescStatus.Default.(string)
	// comparison.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	comparison.StatusValidator = comparisonDescStatus.Validators[0].(func(string) error)
	// comparisonDescTotalCents is the schema descriptor for total_cents field.
	comparisonDescTotalCents := comparisonFields[5].Descriptor()
	// comparison.DefaultTotalCents holds the default value on creation for the total_cents field.
	comparison.DefaultTotalCents = comparisonDescTotalCents.Default.(int64)
	// comparisonDescItemCount is the schema descriptor for item_count field.
	comparisonDescItemCount := comparisonFields[6].Descriptor()
	// comparison.DefaultItemCount holds the default value on creation for the item_count field.
	comparison.DefaultItemCount = comparisonDescItemCount.Default.(int)
	// comparison.ItemCountValidator is a validator for the "item_count" field. It is called by the builders before save.
	comparison.ItemCountValidator = comparisonDescItemCount.Validators[0].(func(int) error)
	// comparisonDescVendorCount is the schema descriptor for vendor_count field.
	comparisonDescVendorCount := comparisonFields[7].Descriptor()
	// comparison.DefaultVendorCount holds the default value on creation for the vendor_count field.
	comparison.DefaultVendorCount = comparisonDescVendorCount.Default.(int)
	// comparison.VendorCountValidator is a validator for the "vendor_count" field. It is called by the builders before save.
	comparison.VendorCountValidator = comparisonDescVendorCount.Validators[0].(func(int) error)
	// comparisonDescCreatedAt is the schema descriptor for created_at field.
	comparisonDescCreatedAt := comparisonFields[10].Descriptor()
	// comparison.DefaultCreatedAt holds the default value on creation for the created_at field.
	comparison.DefaultCreatedAt = comparisonDescCreatedAt.Default.(func() time.Time)
	// comparisonDescUpdatedAt is the schema descriptor for updated_at field.
	comparisonDescUpdatedAt := comparisonFields[11].Descriptor()
	// comparison.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	comparison.DefaultUpdatedAt = comparisonDescUpdatedAt.Default.(func() time.Time)
	// comparison.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	comparison.UpdateDefaultUpdatedAt = comparisonDescUpdatedAt.UpdateDefault.(func() time.Time)
	// comparisonDescID is the schema descriptor for id field.
	comparisonDescID := comparisonFields[0].Descriptor()
	// comparison.DefaultID holds the default value on creation for the id field.
	comparison.DefaultID = comparisonDescID.Default.(func() uuid.UUID)
	quotefileFields := schema.QuoteFile{}.Fields()
	_ = quotefileFields
	// quotefileDescFilename is the schema descriptor for filename field.
	quotefileDescFilename := quotefileFields[2].Descriptor()
	// quotefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	quotefile.FilenameValidator = quotefileDescFilename.Validators[0].(func(string) error)
	// quotefileDescStoragePath is the schema descriptor for storage_path field.
	quotefileDescStoragePath := quotefileFields[3].Descriptor()
	// quotefile.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	quotefile.StoragePathValidator = quotefileDescStoragePath.Validators[0].(func(string) error)
	// quotefileDescFileSize is the schema descriptor for file_size field.
	quotefileDescFileSize := quotefileFields[4].Descriptor()
	// quotefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	quotefile.FileSizeValidator = quotefileDescFileSize.Validators[0].(func(int64) error)
	// quotefileDescUploadedAt is the schema descriptor for uploaded_at field.
	quotefileDescUploadedAt := quotefileFields[6].Descriptor()
	// quotefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	quotefile.DefaultUploadedAt = quotefileDescUploadedAt.Default.(func() time.Time)
	// quotefileDescID is the schema descriptor for id field.
	quotefileDescID := quotefileFields[0].Descriptor()
	// quotefile.DefaultID holds the default value on creation for the id field.
	quotefile.DefaultID = quotefileDescID.Default.(func() uuid.UUID)
}
