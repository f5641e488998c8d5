// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/comparison"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/predicate"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/quotefile"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

// ComparisonUpdate is the builder for updating Comparison entities.
type ComparisonUpdate struct {
	config
	hooks    []Hook
	mutation *ComparisonMutation
}

// Where appends a list predicates to the ComparisonUpdate builder.
func (_u *ComparisonUpdate) Where(ps ...predicate.Comparison) *ComparisonUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ComparisonUpdate) SetTitle(v string) *ComparisonUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableTitle(v *string) *ComparisonUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ComparisonUpdate) SetStatus(v string) *ComparisonUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableStatus(v *string) *ComparisonUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *ComparisonUpdate) SetItems(v []entity.ComparisonItem) *ComparisonUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ComparisonUpdate) AppendItems(v []entity.ComparisonItem) *ComparisonUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *ComparisonUpdate) ClearItems() *ComparisonUpdate {
	_u.mutation.ClearItems()
	return _u
}

// SetVendors sets the "vendors" field.
func (_u *ComparisonUpdate) SetVendors(v []entity.VendorRef) *ComparisonUpdate {
	_u.mutation.SetVendors(v)
	return _u
}

// AppendVendors appends value to the "vendors" field.
func (_u *ComparisonUpdate) AppendVendors(v []entity.VendorRef) *ComparisonUpdate {
	_u.mutation.AppendVendors(v)
	return _u
}

// ClearVendors clears the value of the "vendors" field.
func (_u *ComparisonUpdate) ClearVendors() *ComparisonUpdate {
	_u.mutation.ClearVendors()
	return _u
}

// SetTotalCents sets the "total_cents" field.
func (_u *ComparisonUpdate) SetTotalCents(v int64) *ComparisonUpdate {
	_u.mutation.ResetTotalCents()
	_u.mutation.SetTotalCents(v)
	return _u
}

// SetNillableTotalCents sets the "total_cents" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableTotalCents(v *int64) *ComparisonUpdate {
	if v != nil {
		_u.SetTotalCents(*v)
	}
	return _u
}

// AddTotalCents adds value to the "total_cents" field.
func (_u *ComparisonUpdate) AddTotalCents(v int64) *ComparisonUpdate {
	_u.mutation.AddTotalCents(v)
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *ComparisonUpdate) SetItemCount(v int) *ComparisonUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableItemCount(v *int) *ComparisonUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *ComparisonUpdate) AddItemCount(v int) *ComparisonUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetVendorCount sets the "vendor_count" field.
func (_u *ComparisonUpdate) SetVendorCount(v int) *ComparisonUpdate {
	_u.mutation.ResetVendorCount()
	_u.mutation.SetVendorCount(v)
	return _u
}

// SetNillableVendorCount sets the "vendor_count" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableVendorCount(v *int) *ComparisonUpdate {
	if v != nil {
		_u.SetVendorCount(*v)
	}
	return _u
}

// AddVendorCount adds value to the "vendor_count" field.
func (_u *ComparisonUpdate) AddVendorCount(v int) *ComparisonUpdate {
	_u.mutation.AddVendorCount(v)
	return _u
}

// SetMemo sets the "memo" field.
func (_u *ComparisonUpdate) SetMemo(v string) *ComparisonUpdate {
	_u.mutation.SetMemo(v)
	return _u
}

// SetNillableMemo sets the "memo" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableMemo(v *string) *ComparisonUpdate {
	if v != nil {
		_u.SetMemo(*v)
	}
	return _u
}

// ClearMemo clears the value of the "memo" field.
func (_u *ComparisonUpdate) ClearMemo() *ComparisonUpdate {
	_u.mutation.ClearMemo()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ComparisonUpdate) SetFailureReason(v string) *ComparisonUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ComparisonUpdate) SetNillableFailureReason(v *string) *ComparisonUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ComparisonUpdate) ClearFailureReason() *ComparisonUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComparisonUpdate) SetUpdatedAt(v time.Time) *ComparisonUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the QuoteFile entity by IDs.
func (_u *ComparisonUpdate) AddFileIDs(ids ...uuid.UUID) *ComparisonUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the QuoteFile entity.
func (_u *ComparisonUpdate) AddFiles(v ...*QuoteFile) *ComparisonUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the ComparisonMutation object of the builder.
func (_u *ComparisonUpdate) Mutation() *ComparisonMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the QuoteFile entity.
func (_u *ComparisonUpdate) ClearFiles() *ComparisonUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to QuoteFile entities by IDs.
func (_u *ComparisonUpdate) RemoveFileIDs(ids ...uuid.UUID) *ComparisonUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to QuoteFile entities.
func (_u *ComparisonUpdate) RemoveFiles(v ...*QuoteFile) *ComparisonUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComparisonUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComparisonUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComparisonUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComparisonUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ComparisonUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := comparison.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComparisonUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := comparison.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Comparison.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := comparison.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Comparison.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := comparison.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "Comparison.item_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorCount(); ok {
		if err := comparison.VendorCountValidator(v); err != nil {
			return &ValidationError{Name: "vendor_count", err: fmt.Errorf(`ent: validator failed for field "Comparison.vendor_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ComparisonUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comparison.Table, comparison.Columns, sqlgraph.NewFieldSpec(comparison.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(comparison.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(comparison.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(comparison.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, comparison.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(comparison.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Vendors(); ok {
		_spec.SetField(comparison.FieldVendors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVendors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, comparison.FieldVendors, value)
		})
	}
	if _u.mutation.VendorsCleared() {
		_spec.ClearField(comparison.FieldVendors, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalCents(); ok {
		_spec.SetField(comparison.FieldTotalCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCents(); ok {
		_spec.AddField(comparison.FieldTotalCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(comparison.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(comparison.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VendorCount(); ok {
		_spec.SetField(comparison.FieldVendorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVendorCount(); ok {
		_spec.AddField(comparison.FieldVendorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Memo(); ok {
		_spec.SetField(comparison.FieldMemo, field.TypeString, value)
	}
	if _u.mutation.MemoCleared() {
		_spec.ClearField(comparison.FieldMemo, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(comparison.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(comparison.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(comparison.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   comparison.FilesTable,
			Columns: []string{comparison.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   comparison.FilesTable,
			Columns: []string{comparison.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   comparison.FilesTable,
			Columns: []string{comparison.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comparison.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComparisonUpdateOne is the builder for updating a single Comparison entity.
type ComparisonUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComparisonMutation
}

// SetTitle sets the "title" field.
func (_u *ComparisonUpdateOne) SetTitle(v string) *ComparisonUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableTitle(v *string) *ComparisonUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ComparisonUpdateOne) SetStatus(v string) *ComparisonUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableStatus(v *string) *ComparisonUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *ComparisonUpdateOne) SetItems(v []entity.ComparisonItem) *ComparisonUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *ComparisonUpdateOne) AppendItems(v []entity.ComparisonItem) *ComparisonUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// ClearItems clears the value of the "items" field.
func (_u *ComparisonUpdateOne) ClearItems() *ComparisonUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// SetVendors sets the "vendors" field.
func (_u *ComparisonUpdateOne) SetVendors(v []entity.VendorRef) *ComparisonUpdateOne {
	_u.mutation.SetVendors(v)
	return _u
}

// AppendVendors appends value to the "vendors" field.
func (_u *ComparisonUpdateOne) AppendVendors(v []entity.VendorRef) *ComparisonUpdateOne {
	_u.mutation.AppendVendors(v)
	return _u
}

// ClearVendors clears the value of the "vendors" field.
func (_u *ComparisonUpdateOne) ClearVendors() *ComparisonUpdateOne {
	_u.mutation.ClearVendors()
	return _u
}

// SetTotalCents sets the "total_cents" field.
func (_u *ComparisonUpdateOne) SetTotalCents(v int64) *ComparisonUpdateOne {
	_u.mutation.ResetTotalCents()
	_u.mutation.SetTotalCents(v)
	return _u
}

// SetNillableTotalCents sets the "total_cents" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableTotalCents(v *int64) *ComparisonUpdateOne {
	if v != nil {
		_u.SetTotalCents(*v)
	}
	return _u
}

// AddTotalCents adds value to the "total_cents" field.
func (_u *ComparisonUpdateOne) AddTotalCents(v int64) *ComparisonUpdateOne {
	_u.mutation.AddTotalCents(v)
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *ComparisonUpdateOne) SetItemCount(v int) *ComparisonUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableItemCount(v *int) *ComparisonUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *ComparisonUpdateOne) AddItemCount(v int) *ComparisonUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetVendorCount sets the "vendor_count" field.
func (_u *ComparisonUpdateOne) SetVendorCount(v int) *ComparisonUpdateOne {
	_u.mutation.ResetVendorCount()
	_u.mutation.SetVendorCount(v)
	return _u
}

// SetNillableVendorCount sets the "vendor_count" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableVendorCount(v *int) *ComparisonUpdateOne {
	if v != nil {
		_u.SetVendorCount(*v)
	}
	return _u
}

// AddVendorCount adds value to the "vendor_count" field.
func (_u *ComparisonUpdateOne) AddVendorCount(v int) *ComparisonUpdateOne {
	_u.mutation.AddVendorCount(v)
	return _u
}

// SetMemo sets the "memo" field.
func (_u *ComparisonUpdateOne) SetMemo(v string) *ComparisonUpdateOne {
	_u.mutation.SetMemo(v)
	return _u
}

// SetNillableMemo sets the "memo" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableMemo(v *string) *ComparisonUpdateOne {
	if v != nil {
		_u.SetMemo(*v)
	}
	return _u
}

// ClearMemo clears the value of the "memo" field.
func (_u *ComparisonUpdateOne) ClearMemo() *ComparisonUpdateOne {
	_u.mutation.ClearMemo()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ComparisonUpdateOne) SetFailureReason(v string) *ComparisonUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ComparisonUpdateOne) SetNillableFailureReason(v *string) *ComparisonUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ComparisonUpdateOne) ClearFailureReason() *ComparisonUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComparisonUpdateOne) SetUpdatedAt(v time.Time) *ComparisonUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the QuoteFile entity by IDs.
func (_u *ComparisonUpdateOne) AddFileIDs(ids ...uuid.UUID) *ComparisonUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the QuoteFile entity.
func (_u *ComparisonUpdateOne) AddFiles(v ...*QuoteFile) *ComparisonUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the ComparisonMutation object of the builder.
func (_u *ComparisonUpdateOne) Mutation() *ComparisonMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the QuoteFile entity.
func (_u *ComparisonUpdateOne) ClearFiles() *ComparisonUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to QuoteFile entities by IDs.
func (_u *ComparisonUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *ComparisonUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to QuoteFile entities.
func (_u *ComparisonUpdateOne) RemoveFiles(v ...*QuoteFile) *ComparisonUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the ComparisonUpdate builder.
func (_u *ComparisonUpdateOne) Where(ps ...predicate.Comparison) *ComparisonUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComparisonUpdateOne) Select(field string, fields ...string) *ComparisonUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Comparison entity.
func (_u *ComparisonUpdateOne) Save(ctx context.Context) (*Comparison, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComparisonUpdateOne) SaveX(ctx context.Context) *Comparison {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComparisonUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComparisonUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ComparisonUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := comparison.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComparisonUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := comparison.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Comparison.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := comparison.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Comparison.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemCount(); ok {
		if err := comparison.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "Comparison.item_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorCount(); ok {
		if err := comparison.VendorCountValidator(v); err != nil {
			return &ValidationError{Name: "vendor_count", err: fmt.Errorf(`ent: validator failed for field "Comparison.vendor_count": %w`, err)}
		}
	}
	return nil
}

func (_u *ComparisonUpdateOne) sqlSave(ctx context.Context) (_node *Comparison, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(comparison.Table, comparison.Columns, sqlgraph.NewFieldSpec(comparison.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Comparison.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, comparison.FieldID)
		for _, f := range fields {
			if !comparison.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != comparison.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(comparison.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(comparison.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(comparison.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, comparison.FieldItems, value)
		})
	}
	if _u.mutation.ItemsCleared() {
		_spec.ClearField(comparison.FieldItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Vendors(); ok {
		_spec.SetField(comparison.FieldVendors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVendors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, comparison.FieldVendors, value)
		})
	}
	if _u.mutation.VendorsCleared() {
		_spec.ClearField(comparison.FieldVendors, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalCents(); ok {
		_spec.SetField(comparison.FieldTotalCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCents(); ok {
		_spec.AddField(comparison.FieldTotalCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(comparison.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(comparison.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.VendorCount(); ok {
		_spec.SetField(comparison.FieldVendorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVendorCount(); ok {
		_spec.AddField(comparison.FieldVendorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Memo(); ok {
		_spec.SetField(comparison.FieldMemo, field.TypeString, value)
	}
	if _u.mutation.MemoCleared() {
		_spec.ClearField(comparison.FieldMemo, field.TypeString)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(comparison.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(comparison.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(comparison.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   comparison.FilesTable,
			Columns: []string{comparison.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotefile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   comparison.FilesTable,
			Columns: []string{comparison.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   comparison.FilesTable,
			Columns: []string{comparison.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quotefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Comparison{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{comparison.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
