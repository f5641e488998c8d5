// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/comparison"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/quotefile"
	"github.com/harshmriduhash/iq-procure-assist/internal/entity"
)

// ComparisonCreate is the builder for creating a Comparison entity.
type ComparisonCreate struct {
	config
	mutation *ComparisonMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ComparisonCreate) SetTitle(v string) *ComparisonCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ComparisonCreate) SetStatus(v string) *ComparisonCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableStatus(v *string) *ComparisonCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetItems sets the "items" field.
func (_c *ComparisonCreate) SetItems(v []entity.ComparisonItem) *ComparisonCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetVendors sets the "vendors" field.
func (_c *ComparisonCreate) SetVendors(v []entity.VendorRef) *ComparisonCreate {
	_c.mutation.SetVendors(v)
	return _c
}

// SetTotalCents sets the "total_cents" field.
func (_c *ComparisonCreate) SetTotalCents(v int64) *ComparisonCreate {
	_c.mutation.SetTotalCents(v)
	return _c
}

// SetNillableTotalCents sets the "total_cents" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableTotalCents(v *int64) *ComparisonCreate {
	if v != nil {
		_c.SetTotalCents(*v)
	}
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *ComparisonCreate) SetItemCount(v int) *ComparisonCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableItemCount(v *int) *ComparisonCreate {
	if v != nil {
		_c.SetItemCount(*v)
	}
	return _c
}

// SetVendorCount sets the "vendor_count" field.
func (_c *ComparisonCreate) SetVendorCount(v int) *ComparisonCreate {
	_c.mutation.SetVendorCount(v)
	return _c
}

// SetNillableVendorCount sets the "vendor_count" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableVendorCount(v *int) *ComparisonCreate {
	if v != nil {
		_c.SetVendorCount(*v)
	}
	return _c
}

// SetMemo sets the "memo" field.
func (_c *ComparisonCreate) SetMemo(v string) *ComparisonCreate {
	_c.mutation.SetMemo(v)
	return _c
}

// SetNillableMemo sets the "memo" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableMemo(v *string) *ComparisonCreate {
	if v != nil {
		_c.SetMemo(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *ComparisonCreate) SetFailureReason(v string) *ComparisonCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableFailureReason(v *string) *ComparisonCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ComparisonCreate) SetCreatedAt(v time.Time) *ComparisonCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableCreatedAt(v *time.Time) *ComparisonCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ComparisonCreate) SetUpdatedAt(v time.Time) *ComparisonCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableUpdatedAt(v *time.Time) *ComparisonCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ComparisonCreate) SetID(v uuid.UUID) *ComparisonCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ComparisonCreate) SetNillableID(v *uuid.UUID) *ComparisonCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFileIDs adds the "files" edge to the QuoteFile entity by IDs.
func (_c *ComparisonCreate) AddFileIDs(ids ...uuid.UUID) *ComparisonCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the QuoteFile entity.
func (_c *ComparisonCreate) AddFiles(v ...*QuoteFile) *ComparisonCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// Mutation returns the ComparisonMutation object of the builder.
func (_c *ComparisonCreate) Mutation() *ComparisonMutation {
	return _c.mutation
}

// Save creates the Comparison in the database.
func (_c *ComparisonCreate) Save(ctx context.Context) (*Comparison, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComparisonCreate) SaveX(ctx context.Context) *Comparison {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComparisonCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComparisonCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ComparisonCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := comparison.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalCents(); !ok {
		v := comparison.DefaultTotalCents
		_c.mutation.SetTotalCents(v)
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		v := comparison.DefaultItemCount
		_c.mutation.SetItemCount(v)
	}
	if _, ok := _c.mutation.VendorCount(); !ok {
		v := comparison.DefaultVendorCount
		_c.mutation.SetVendorCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := comparison.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := comparison.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := comparison.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComparisonCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Comparison.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := comparison.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Comparison.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Comparison.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := comparison.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Comparison.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCents(); !ok {
		return &ValidationError{Name: "total_cents", err: errors.New(`ent: missing required field "Comparison.total_cents"`)}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "Comparison.item_count"`)}
	}
	if v, ok := _c.mutation.ItemCount(); ok {
		if err := comparison.ItemCountValidator(v); err != nil {
			return &ValidationError{Name: "item_count", err: fmt.Errorf(`ent: validator failed for field "Comparison.item_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VendorCount(); !ok {
		return &ValidationError{Name: "vendor_count", err: errors.New(`ent: missing required field "Comparison.vendor_count"`)}
	}
	if v, ok := _c.mutation.VendorCount(); ok {
		if err := comparison.VendorCountValidator(v); err != nil {
			return &ValidationError{Name: "vendor_count", err: fmt.Errorf(`ent: validator failed for field "Comparison.vendor_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Comparison.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Comparison.updated_at"`)}
	}
	return nil
}

func (_c *ComparisonCreate) sqlSave(ctx context.Context) (*Comparison, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ComparisonCreate) createSpec() (*Comparison, *sqlgraph.CreateSpec) {
	var (
		_node = &Comparison{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(comparison.Table, sqlgraph.NewFieldSpec(comparison.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(comparison.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(comparison.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(comparison.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.Vendors(); ok {
		_spec.SetField(comparison.FieldVendors, field.TypeJSON, value)
		_node.Vendors = value
	}
	if value, ok := _c.mutation.TotalCents(); ok {
		_spec.SetField(comparison.FieldTotalCents, field.TypeInt64, value)
		_node.TotalCents = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(comparison.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.VendorCount(); ok {
		_spec.SetField(comparison.FieldVendorCount, field.TypeInt, value)
		_node.VendorCount = value
	}
	if value, ok := _c.mutation.Memo(); ok {
		_spec.SetField(comparison.FieldMemo, field.TypeString, value)
		_node.Memo = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(comparison.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(comparison.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(comparison.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ComparisonCreateBulk is the builder for creating many Comparison entities in bulk.
type ComparisonCreateBulk struct {
	config
	err      error
	builders []*ComparisonCreate
}

// Save creates the Comparison entities in the database.
func (_c *ComparisonCreateBulk) Save(ctx context.Context) ([]*Comparison, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Comparison, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComparisonMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ComparisonCreateBulk) SaveX(ctx context.Context) []*Comparison {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComparisonCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComparisonCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
