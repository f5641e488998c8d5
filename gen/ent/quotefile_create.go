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
)

// QuoteFileCreate is the builder for creating a QuoteFile entity.
type QuoteFileCreate struct {
	config
	mutation *QuoteFileMutation
	hooks    []Hook
}

// SetComparisonID sets the "comparison_id" field.
func (_c *QuoteFileCreate) SetComparisonID(v uuid.UUID) *QuoteFileCreate {
	_c.mutation.SetComparisonID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *QuoteFileCreate) SetFilename(v string) *QuoteFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *QuoteFileCreate) SetStoragePath(v string) *QuoteFileCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *QuoteFileCreate) SetFileSize(v int64) *QuoteFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetVendorSlot sets the "vendor_slot" field.
func (_c *QuoteFileCreate) SetVendorSlot(v int) *QuoteFileCreate {
	_c.mutation.SetVendorSlot(v)
	return _c
}

// SetNillableVendorSlot sets the "vendor_slot" field if the given value is not nil.
func (_c *QuoteFileCreate) SetNillableVendorSlot(v *int) *QuoteFileCreate {
	if v != nil {
		_c.SetVendorSlot(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *QuoteFileCreate) SetUploadedAt(v time.Time) *QuoteFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *QuoteFileCreate) SetNillableUploadedAt(v *time.Time) *QuoteFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuoteFileCreate) SetID(v uuid.UUID) *QuoteFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QuoteFileCreate) SetNillableID(v *uuid.UUID) *QuoteFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetComparison sets the "comparison" edge to the Comparison entity.
func (_c *QuoteFileCreate) SetComparison(v *Comparison) *QuoteFileCreate {
	return _c.SetComparisonID(v.ID)
}

// Mutation returns the QuoteFileMutation object of the builder.
func (_c *QuoteFileCreate) Mutation() *QuoteFileMutation {
	return _c.mutation
}

// Save creates the QuoteFile in the database.
func (_c *QuoteFileCreate) Save(ctx context.Context) (*QuoteFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuoteFileCreate) SaveX(ctx context.Context) *QuoteFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuoteFileCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := quotefile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := quotefile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuoteFileCreate) check() error {
	if _, ok := _c.mutation.ComparisonID(); !ok {
		return &ValidationError{Name: "comparison_id", err: errors.New(`ent: missing required field "QuoteFile.comparison_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "QuoteFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := quotefile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "QuoteFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "QuoteFile.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := quotefile.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "QuoteFile.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "QuoteFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := quotefile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "QuoteFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "QuoteFile.uploaded_at"`)}
	}
	if len(_c.mutation.ComparisonIDs()) == 0 {
		return &ValidationError{Name: "comparison", err: errors.New(`ent: missing required edge "QuoteFile.comparison"`)}
	}
	return nil
}

func (_c *QuoteFileCreate) sqlSave(ctx context.Context) (*QuoteFile, error) {
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

func (_c *QuoteFileCreate) createSpec() (*QuoteFile, *sqlgraph.CreateSpec) {
	var (
		_node = &QuoteFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quotefile.Table, sqlgraph.NewFieldSpec(quotefile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(quotefile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(quotefile.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(quotefile.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.VendorSlot(); ok {
		_spec.SetField(quotefile.FieldVendorSlot, field.TypeInt, value)
		_node.VendorSlot = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(quotefile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.ComparisonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quotefile.ComparisonTable,
			Columns: []string{quotefile.ComparisonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comparison.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ComparisonID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuoteFileCreateBulk is the builder for creating many QuoteFile entities in bulk.
type QuoteFileCreateBulk struct {
	config
	err      error
	builders []*QuoteFileCreate
}

// Save creates the QuoteFile entities in the database.
func (_c *QuoteFileCreateBulk) Save(ctx context.Context) ([]*QuoteFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuoteFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuoteFileMutation)
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
func (_c *QuoteFileCreateBulk) SaveX(ctx context.Context) []*QuoteFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuoteFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuoteFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
