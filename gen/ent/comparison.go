// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/comparison"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

// Comparison is the model entity for the Comparison schema.
type Comparison struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Items holds the value of the "items" field.
	Items []entity.ComparisonItem `json:"items,omitempty"`
	// Vendors holds the value of the "vendors" field.
	Vendors []entity.VendorRef `json:"vendors,omitempty"`
	// TotalCents holds the value of the "total_cents" field.
	TotalCents int64 `json:"total_cents,omitempty"`
	// ItemCount holds the value of the "item_count" field.
	ItemCount int `json:"item_count,omitempty"`
	// VendorCount holds the value of the "vendor_count" field.
	VendorCount int `json:"vendor_count,omitempty"`
	// Memo holds the value of the "memo" field.
	Memo *string `json:"memo,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ComparisonQuery when eager-loading is set.
	Edges        ComparisonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ComparisonEdges holds the relations/edges for other nodes in the graph.
type ComparisonEdges struct {
	// Files holds the value of the files edge.
	Files []*QuoteFile `json:"files,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FilesOrErr returns the Files value or an error if the edge
// was not loaded in eager-loading.
func (e ComparisonEdges) FilesOrErr() ([]*QuoteFile, error) {
	if e.loadedTypes[0] {
		return e.Files, nil
	}
	return nil, &NotLoadedError{edge: "files"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Comparison) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case comparison.FieldItems, comparison.FieldVendors:
			values[i] = new([]byte)
		case comparison.FieldTotalCents, comparison.FieldItemCount, comparison.FieldVendorCount:
			values[i] = new(sql.NullInt64)
		case comparison.FieldTitle, comparison.FieldStatus, comparison.FieldMemo, comparison.FieldFailureReason:
			values[i] = new(sql.NullString)
		case comparison.FieldCreatedAt, comparison.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case comparison.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Comparison fields.
func (_m *Comparison) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case comparison.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case comparison.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case comparison.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case comparison.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case comparison.FieldVendors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vendors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Vendors); err != nil {
					return fmt.Errorf("unmarshal field vendors: %w", err)
				}
			}
		case comparison.FieldTotalCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cents", values[i])
			} else if value.Valid {
				_m.TotalCents = value.Int64
			}
		case comparison.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = int(value.Int64)
			}
		case comparison.FieldVendorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_count", values[i])
			} else if value.Valid {
				_m.VendorCount = int(value.Int64)
			}
		case comparison.FieldMemo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memo", values[i])
			} else if value.Valid {
				_m.Memo = new(string)
				*_m.Memo = value.String
			}
		case comparison.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		case comparison.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case comparison.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Comparison.
// This includes values selected through modifiers, order, etc.
func (_m *Comparison) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFiles queries the "files" edge of the Comparison entity.
func (_m *Comparison) QueryFiles() *QuoteFileQuery {
	return NewComparisonClient(_m.config).QueryFiles(_m)
}

// Update returns a builder for updating this Comparison.
// Note that you need to call Comparison.Unwrap() before calling this method if this Comparison
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Comparison) Update() *ComparisonUpdateOne {
	return NewComparisonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Comparison entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Comparison) Unwrap() *Comparison {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Comparison is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Comparison) String() string {
	var builder strings.Builder
	builder.WriteString("Comparison(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	builder.WriteString("vendors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vendors))
	builder.WriteString(", ")
	builder.WriteString("total_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalCents))
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemCount))
	builder.WriteString(", ")
	builder.WriteString("vendor_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.VendorCount))
	builder.WriteString(", ")
	if v := _m.Memo; v != nil {
		builder.WriteString("memo=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Comparisons is a parsable slice of Comparison.
type Comparisons []*Comparison
