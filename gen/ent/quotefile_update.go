// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/predicate"
	"github.com/harshmriduhash/iq-procure-assist/gen/ent/quotefile"
)

// QuoteFileUpdate is the builder for updating QuoteFile entities.
type QuoteFileUpdate struct {
	config
	hooks    []Hook
	mutation *QuoteFileMutation
}

// Where appends a list predicates to the QuoteFileUpdate builder.
func (_u *QuoteFileUpdate) Where(ps ...predicate.QuoteFile) *QuoteFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the QuoteFileMutation object of the builder.
func (_u *QuoteFileUpdate) Mutation() *QuoteFileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuoteFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuoteFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteFileUpdate) check() error {
	if _u.mutation.ComparisonCleared() && len(_u.mutation.ComparisonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteFile.comparison"`)
	}
	return nil
}

func (_u *QuoteFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotefile.Table, quotefile.Columns, sqlgraph.NewFieldSpec(quotefile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.VendorSlotCleared() {
		_spec.ClearField(quotefile.FieldVendorSlot, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuoteFileUpdateOne is the builder for updating a single QuoteFile entity.
type QuoteFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuoteFileMutation
}

// Mutation returns the QuoteFileMutation object of the builder.
func (_u *QuoteFileUpdateOne) Mutation() *QuoteFileMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuoteFileUpdate builder.
func (_u *QuoteFileUpdateOne) Where(ps ...predicate.QuoteFile) *QuoteFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuoteFileUpdateOne) Select(field string, fields ...string) *QuoteFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuoteFile entity.
func (_u *QuoteFileUpdateOne) Save(ctx context.Context) (*QuoteFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuoteFileUpdateOne) SaveX(ctx context.Context) *QuoteFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuoteFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuoteFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuoteFileUpdateOne) check() error {
	if _u.mutation.ComparisonCleared() && len(_u.mutation.ComparisonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuoteFile.comparison"`)
	}
	return nil
}

func (_u *QuoteFileUpdateOne) sqlSave(ctx context.Context) (_node *QuoteFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quotefile.Table, quotefile.Columns, sqlgraph.NewFieldSpec(quotefile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuoteFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quotefile.FieldID)
		for _, f := range fields {
			if !quotefile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quotefile.FieldID {
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
	if _u.mutation.VendorSlotCleared() {
		_spec.ClearField(quotefile.FieldVendorSlot, field.TypeInt)
	}
	_node = &QuoteFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quotefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
