// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/osokin/lingvo/ent/predicate"
	"github.com/osokin/lingvo/ent/vocabentry"
)

// VocabEntryUpdate is the builder for updating VocabEntry entities.
type VocabEntryUpdate struct {
	config
	hooks    []Hook
	mutation *VocabEntryMutation
}

// Where appends a list predicates to the VocabEntryUpdate builder.
func (_u *VocabEntryUpdate) Where(ps ...predicate.VocabEntry) *VocabEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRepeatCount sets the "repeat_count" field.
func (_u *VocabEntryUpdate) SetRepeatCount(v int) *VocabEntryUpdate {
	_u.mutation.ResetRepeatCount()
	_u.mutation.SetRepeatCount(v)
	return _u
}

// SetNillableRepeatCount sets the "repeat_count" field if the given value is not nil.
func (_u *VocabEntryUpdate) SetNillableRepeatCount(v *int) *VocabEntryUpdate {
	if v != nil {
		_u.SetRepeatCount(*v)
	}
	return _u
}

// AddRepeatCount adds value to the "repeat_count" field.
func (_u *VocabEntryUpdate) AddRepeatCount(v int) *VocabEntryUpdate {
	_u.mutation.AddRepeatCount(v)
	return _u
}

// Mutation returns the VocabEntryMutation object of the builder.
func (_u *VocabEntryUpdate) Mutation() *VocabEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VocabEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VocabEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabEntryUpdate) check() error {
	if v, ok := _u.mutation.RepeatCount(); ok {
		if err := vocabentry.RepeatCountValidator(v); err != nil {
			return &ValidationError{Name: "repeat_count", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.repeat_count": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabentry.Table, vocabentry.Columns, sqlgraph.NewFieldSpec(vocabentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RepeatCount(); ok {
		_spec.SetField(vocabentry.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepeatCount(); ok {
		_spec.AddField(vocabentry.FieldRepeatCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VocabEntryUpdateOne is the builder for updating a single VocabEntry entity.
type VocabEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VocabEntryMutation
}

// SetRepeatCount sets the "repeat_count" field.
func (_u *VocabEntryUpdateOne) SetRepeatCount(v int) *VocabEntryUpdateOne {
	_u.mutation.ResetRepeatCount()
	_u.mutation.SetRepeatCount(v)
	return _u
}

// SetNillableRepeatCount sets the "repeat_count" field if the given value is not nil.
func (_u *VocabEntryUpdateOne) SetNillableRepeatCount(v *int) *VocabEntryUpdateOne {
	if v != nil {
		_u.SetRepeatCount(*v)
	}
	return _u
}

// AddRepeatCount adds value to the "repeat_count" field.
func (_u *VocabEntryUpdateOne) AddRepeatCount(v int) *VocabEntryUpdateOne {
	_u.mutation.AddRepeatCount(v)
	return _u
}

// Mutation returns the VocabEntryMutation object of the builder.
func (_u *VocabEntryUpdateOne) Mutation() *VocabEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the VocabEntryUpdate builder.
func (_u *VocabEntryUpdateOne) Where(ps ...predicate.VocabEntry) *VocabEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VocabEntryUpdateOne) Select(field string, fields ...string) *VocabEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VocabEntry entity.
func (_u *VocabEntryUpdateOne) Save(ctx context.Context) (*VocabEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VocabEntryUpdateOne) SaveX(ctx context.Context) *VocabEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VocabEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VocabEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VocabEntryUpdateOne) check() error {
	if v, ok := _u.mutation.RepeatCount(); ok {
		if err := vocabentry.RepeatCountValidator(v); err != nil {
			return &ValidationError{Name: "repeat_count", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.repeat_count": %w`, err)}
		}
	}
	return nil
}

func (_u *VocabEntryUpdateOne) sqlSave(ctx context.Context) (_node *VocabEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vocabentry.Table, vocabentry.Columns, sqlgraph.NewFieldSpec(vocabentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VocabEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vocabentry.FieldID)
		for _, f := range fields {
			if !vocabentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vocabentry.FieldID {
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
	if value, ok := _u.mutation.RepeatCount(); ok {
		_spec.SetField(vocabentry.FieldRepeatCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepeatCount(); ok {
		_spec.AddField(vocabentry.FieldRepeatCount, field.TypeInt, value)
	}
	_node = &VocabEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vocabentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
