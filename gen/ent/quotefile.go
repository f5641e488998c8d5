// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/comparison"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/quotefile"
)

// QuoteFile is the model entity for the QuoteFile schema.
type QuoteFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ComparisonID holds the value of the "comparison_id" field.
	ComparisonID uuid.UUID `json:"comparison_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// StoragePath holds the value of the "storage_path" field.
	StoragePath string `json:"storage_path,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// VendorSlot holds the value of the "vendor_slot" field.
	VendorSlot *int `json:"vendor_slot,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuoteFileQuery when eager-loading is set.
	Edges        QuoteFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuoteFileEdges holds the relations/edges for other nodes in the graph.
type QuoteFileEdges struct {
	// Comparison holds the value of the comparison edge.
	Comparison *Comparison `json:"comparison,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ComparisonOrErr returns the Comparison value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuoteFileEdges) ComparisonOrErr() (*Comparison, error) {
	if e.Comparison != nil {
		return e.Comparison, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: comparison.Label}
	}
	return nil, &NotLoadedError{edge: "comparison"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuoteFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quotefile.FieldFileSize, quotefile.FieldVendorSlot:
			values[i] = new(sql.NullInt64)
		case quotefile.FieldFilename, quotefile.FieldStoragePath:
			values[i] = new(sql.NullString)
		case quotefile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case quotefile.FieldID, quotefile.FieldComparisonID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuoteFile fields.
func (_m *QuoteFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quotefile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case quotefile.FieldComparisonID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field comparison_id", values[i])
			} else if value != nil {
				_m.ComparisonID = *value
			}
		case quotefile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case quotefile.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				_m.StoragePath = value.String
			}
		case quotefile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case quotefile.FieldVendorSlot:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_slot", values[i])
			} else if value.Valid {
				_m.VendorSlot = new(int)
				*_m.VendorSlot = int(value.Int64)
			}
		case quotefile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuoteFile.
// This includes values selected through modifiers, order, etc.
func (_m *QuoteFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryComparison queries the "comparison" edge of the QuoteFile entity.
func (_m *QuoteFile) QueryComparison() *ComparisonQuery {
	return NewQuoteFileClient(_m.config).QueryComparison(_m)
}

// Update returns a builder for updating this QuoteFile.
// Note that you need to call QuoteFile.Unwrap() before calling this method if this QuoteFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuoteFile) Update() *QuoteFileUpdateOne {
	return NewQuoteFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuoteFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuoteFile) Unwrap() *QuoteFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuoteFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuoteFile) String() string {
	var builder strings.Builder
	builder.WriteString("QuoteFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("comparison_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ComparisonID))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("storage_path=")
	builder.WriteString(_m.StoragePath)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	if v := _m.VendorSlot; v != nil {
		builder.WriteString("vendor_slot=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuoteFiles is a parsable slice of QuoteFile.
type QuoteFiles []*QuoteFile
