// Code generated by ent, DO NOT EDIT.

package quotefile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the quotefile type in the database.
	Label = "quote_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldComparisonID holds the string denoting the comparison_id field in the database.
	FieldComparisonID = "comparison_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldStoragePath holds the string denoting the storage_path field in the database.
	FieldStoragePath = "storage_path"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldVendorSlot holds the string denoting the vendor_slot field in the database.
	FieldVendorSlot = "vendor_slot"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// EdgeComparison holds the string denoting the comparison edge name in mutations.
	EdgeComparison = "comparison"
	// Table holds the table name of the quotefile in the database.
	Table = "quote_files"
	// ComparisonTable is the table that holds the comparison relation/edge.
	ComparisonTable = "quote_files"
	// ComparisonInverseTable is the table name for the Comparison entity.
	// It exists in this package in order to avoid circular dependency with the "comparison" package.
	ComparisonInverseTable = "comparisons"
	// ComparisonColumn is the table column denoting the comparison relation/edge.
	ComparisonColumn = "comparison_id"
)

// Columns holds all SQL columns for quotefile fields.
var Columns = []string{
	FieldID,
	FieldComparisonID,
	FieldFilename,
	FieldStoragePath,
	FieldFileSize,
	FieldVendorSlot,
	FieldUploadedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	StoragePathValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int64) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the QuoteFile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByComparisonID orders the results by the comparison_id field.
func ByComparisonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComparisonID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByStoragePath orders the results by the storage_path field.
func ByStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoragePath, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByVendorSlot orders the results by the vendor_slot field.
func ByVendorSlot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorSlot, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByComparisonField orders the results by comparison field.
func ByComparisonField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newComparisonStep(), sql.OrderByField(field, opts...))
	}
}
func newComparisonStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ComparisonInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ComparisonTable, ComparisonColumn),
	)
}
