// Code generated by ent, DO NOT EDIT.

package quotefile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLTE(FieldID, id))
}

// ComparisonID applies equality check predicate on the "comparison_id" field. It's identical to ComparisonIDEQ.
func ComparisonID(v uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldComparisonID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldFilename, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldStoragePath, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldFileSize, v))
}

// VendorSlot applies equality check predicate on the "vendor_slot" field. It's identical to VendorSlotEQ.
func VendorSlot(v int) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldVendorSlot, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldUploadedAt, v))
}

// ComparisonIDEQ applies the EQ predicate on the "comparison_id" field.
func ComparisonIDEQ(v uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldComparisonID, v))
}

// ComparisonIDNEQ applies the NEQ predicate on the "comparison_id" field.
func ComparisonIDNEQ(v uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNEQ(FieldComparisonID, v))
}

// ComparisonIDIn applies the In predicate on the "comparison_id" field.
func ComparisonIDIn(vs ...uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldIn(FieldComparisonID, vs...))
}

// ComparisonIDNotIn applies the NotIn predicate on the "comparison_id" field.
func ComparisonIDNotIn(vs ...uuid.UUID) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNotIn(FieldComparisonID, vs...))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldContainsFold(FieldFilename, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldContainsFold(FieldStoragePath, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLTE(FieldFileSize, v))
}

// VendorSlotEQ applies the EQ predicate on the "vendor_slot" field.
func VendorSlotEQ(v int) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldVendorSlot, v))
}

// VendorSlotNEQ applies the NEQ predicate on the "vendor_slot" field.
func VendorSlotNEQ(v int) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNEQ(FieldVendorSlot, v))
}

// VendorSlotIn applies the In predicate on the "vendor_slot" field.
func VendorSlotIn(vs ...int) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldIn(FieldVendorSlot, vs...))
}

// VendorSlotNotIn applies the NotIn predicate on the "vendor_slot" field.
func VendorSlotNotIn(vs ...int) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNotIn(FieldVendorSlot, vs...))
}

// VendorSlotGT applies the GT predicate on the "vendor_slot" field.
func VendorSlotGT(v int) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGT(FieldVendorSlot, v))
}

// VendorSlotGTE applies the GTE predicate on the "vendor_slot" field.
func VendorSlotGTE(v int) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGTE(FieldVendorSlot, v))
}

// VendorSlotLT applies the LT predicate on the "vendor_slot" field.
func VendorSlotLT(v int) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLT(FieldVendorSlot, v))
}

// VendorSlotLTE applies the LTE predicate on the "vendor_slot" field.
func VendorSlotLTE(v int) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLTE(FieldVendorSlot, v))
}

// VendorSlotIsNil applies the IsNil predicate on the "vendor_slot" field.
func VendorSlotIsNil() predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldIsNull(FieldVendorSlot))
}

// VendorSlotNotNil applies the NotNil predicate on the "vendor_slot" field.
func VendorSlotNotNil() predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNotNull(FieldVendorSlot))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.QuoteFile {
	return predicate.QuoteFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasComparison applies the HasEdge predicate on the "comparison" edge.
func HasComparison() predicate.QuoteFile {
	return predicate.QuoteFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ComparisonTable, ComparisonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasComparisonWith applies the HasEdge predicate on the "comparison" edge with a given conditions (other predicates).
func HasComparisonWith(preds ...predicate.Comparison) predicate.QuoteFile {
	return predicate.QuoteFile(func(s *sql.Selector) {
		step := newComparisonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuoteFile) predicate.QuoteFile {
	return predicate.QuoteFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuoteFile) predicate.QuoteFile {
	return predicate.QuoteFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuoteFile) predicate.QuoteFile {
	return predicate.QuoteFile(sql.NotPredicates(p))
}
