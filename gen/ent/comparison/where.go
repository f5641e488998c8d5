// Code generated by ent, DO NOT EDIT.

package comparison

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldTitle, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldStatus, v))
}

// TotalCents applies equality check predicate on the "total_cents" field. It's identical to TotalCentsEQ.
func TotalCents(v int64) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldTotalCents, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldItemCount, v))
}

// VendorCount applies equality check predicate on the "vendor_count" field. It's identical to VendorCountEQ.
func VendorCount(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldVendorCount, v))
}

// Memo applies equality check predicate on the "memo" field. It's identical to MemoEQ.
func Memo(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldMemo, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldFailureReason, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContainsFold(FieldTitle, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContainsFold(FieldStatus, v))
}

// ItemsIsNil applies the IsNil predicate on the "items" field.
func ItemsIsNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldIsNull(FieldItems))
}

// ItemsNotNil applies the NotNil predicate on the "items" field.
func ItemsNotNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldNotNull(FieldItems))
}

// VendorsIsNil applies the IsNil predicate on the "vendors" field.
func VendorsIsNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldIsNull(FieldVendors))
}

// VendorsNotNil applies the NotNil predicate on the "vendors" field.
func VendorsNotNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldNotNull(FieldVendors))
}

// TotalCentsEQ applies the EQ predicate on the "total_cents" field.
func TotalCentsEQ(v int64) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldTotalCents, v))
}

// TotalCentsNEQ applies the NEQ predicate on the "total_cents" field.
func TotalCentsNEQ(v int64) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldTotalCents, v))
}

// TotalCentsIn applies the In predicate on the "total_cents" field.
func TotalCentsIn(vs ...int64) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldTotalCents, vs...))
}

// TotalCentsNotIn applies the NotIn predicate on the "total_cents" field.
func TotalCentsNotIn(vs ...int64) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldTotalCents, vs...))
}

// TotalCentsGT applies the GT predicate on the "total_cents" field.
func TotalCentsGT(v int64) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldTotalCents, v))
}

// TotalCentsGTE applies the GTE predicate on the "total_cents" field.
func TotalCentsGTE(v int64) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldTotalCents, v))
}

// TotalCentsLT applies the LT predicate on the "total_cents" field.
func TotalCentsLT(v int64) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldTotalCents, v))
}

// TotalCentsLTE applies the LTE predicate on the "total_cents" field.
func TotalCentsLTE(v int64) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldTotalCents, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldItemCount, v))
}

// VendorCountEQ applies the EQ predicate on the "vendor_count" field.
func VendorCountEQ(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldVendorCount, v))
}

// VendorCountNEQ applies the NEQ predicate on the "vendor_count" field.
func VendorCountNEQ(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldVendorCount, v))
}

// VendorCountIn applies the In predicate on the "vendor_count" field.
func VendorCountIn(vs ...int) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldVendorCount, vs...))
}

// VendorCountNotIn applies the NotIn predicate on the "vendor_count" field.
func VendorCountNotIn(vs ...int) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldVendorCount, vs...))
}

// VendorCountGT applies the GT predicate on the "vendor_count" field.
func VendorCountGT(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldVendorCount, v))
}

// VendorCountGTE applies the GTE predicate on the "vendor_count" field.
func VendorCountGTE(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldVendorCount, v))
}

// VendorCountLT applies the LT predicate on the "vendor_count" field.
func VendorCountLT(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldVendorCount, v))
}

// VendorCountLTE applies the LTE predicate on the "vendor_count" field.
func VendorCountLTE(v int) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldVendorCount, v))
}

// MemoEQ applies the EQ predicate on the "memo" field.
func MemoEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldMemo, v))
}

// MemoNEQ applies the NEQ predicate on the "memo" field.
func MemoNEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldMemo, v))
}

// MemoIn applies the In predicate on the "memo" field.
func MemoIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldMemo, vs...))
}

// MemoNotIn applies the NotIn predicate on the "memo" field.
func MemoNotIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldMemo, vs...))
}

// MemoGT applies the GT predicate on the "memo" field.
func MemoGT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldMemo, v))
}

// MemoGTE applies the GTE predicate on the "memo" field.
func MemoGTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldMemo, v))
}

// MemoLT applies the LT predicate on the "memo" field.
func MemoLT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldMemo, v))
}

// MemoLTE applies the LTE predicate on the "memo" field.
func MemoLTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldMemo, v))
}

// MemoContains applies the Contains predicate on the "memo" field.
func MemoContains(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContains(FieldMemo, v))
}

// MemoHasPrefix applies the HasPrefix predicate on the "memo" field.
func MemoHasPrefix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasPrefix(FieldMemo, v))
}

// MemoHasSuffix applies the HasSuffix predicate on the "memo" field.
func MemoHasSuffix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasSuffix(FieldMemo, v))
}

// MemoIsNil applies the IsNil predicate on the "memo" field.
func MemoIsNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldIsNull(FieldMemo))
}

// MemoNotNil applies the NotNil predicate on the "memo" field.
func MemoNotNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldNotNull(FieldMemo))
}

// MemoEqualFold applies the EqualFold predicate on the "memo" field.
func MemoEqualFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEqualFold(FieldMemo, v))
}

// MemoContainsFold applies the ContainsFold predicate on the "memo" field.
func MemoContainsFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContainsFold(FieldMemo, v))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Comparison {
	return predicate.Comparison(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Comparison {
	return predicate.Comparison(sql.FieldContainsFold(FieldFailureReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Comparison {
	return predicate.Comparison(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Comparison {
	return predicate.Comparison(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.QuoteFile) predicate.Comparison {
	return predicate.Comparison(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Comparison) predicate.Comparison {
	return predicate.Comparison(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Comparison) predicate.Comparison {
	return predicate.Comparison(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Comparison) predicate.Comparison {
	return predicate.Comparison(sql.NotPredicates(p))
}
