// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/osokin/lingvo/ent/messageevent"
	"github.com/osokin/lingvo/ent/predicate"
)

// MessageEventUpdate is the builder for updating MessageEvent entities.
type MessageEventUpdate struct {
	config
	hooks    []Hook
	mutation *MessageEventMutation
}

// Where appends a list predicates to the MessageEventUpdate builder.
func (_u *MessageEventUpdate) Where(ps ...predicate.MessageEvent) *MessageEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MessageEventUpdate) SetUserID(v string) *MessageEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MessageEventUpdate) SetNillableUserID(v *string) *MessageEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MessageEventUpdate) SetKind(v string) *MessageEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MessageEventUpdate) SetNillableKind(v *string) *MessageEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *MessageEventUpdate) SetText(v string) *MessageEventUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *MessageEventUpdate) SetNillableText(v *string) *MessageEventUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *MessageEventUpdate) SetState(v string) *MessageEventUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *MessageEventUpdate) SetNillableState(v *string) *MessageEventUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MessageEventUpdate) SetSessionID(v string) *MessageEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MessageEventUpdate) SetNillableSessionID(v *string) *MessageEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the MessageEventMutation object of the builder.
func (_u *MessageEventUpdate) Mutation() *MessageEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := messageevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageevent.Table, messageevent.Columns, sqlgraph.NewFieldSpec(messageevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(messageevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(messageevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(messageevent.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(messageevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(messageevent.FieldSessionID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageEventUpdateOne is the builder for updating a single MessageEvent entity.
type MessageEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *MessageEventUpdateOne) SetUserID(v string) *MessageEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MessageEventUpdateOne) SetNillableUserID(v *string) *MessageEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *MessageEventUpdateOne) SetKind(v string) *MessageEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *MessageEventUpdateOne) SetNillableKind(v *string) *MessageEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *MessageEventUpdateOne) SetText(v string) *MessageEventUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *MessageEventUpdateOne) SetNillableText(v *string) *MessageEventUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *MessageEventUpdateOne) SetState(v string) *MessageEventUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *MessageEventUpdateOne) SetNillableState(v *string) *MessageEventUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MessageEventUpdateOne) SetSessionID(v string) *MessageEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MessageEventUpdateOne) SetNillableSessionID(v *string) *MessageEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// Mutation returns the MessageEventMutation object of the builder.
func (_u *MessageEventUpdateOne) Mutation() *MessageEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageEventUpdate builder.
func (_u *MessageEventUpdateOne) Where(ps ...predicate.MessageEvent) *MessageEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageEventUpdateOne) Select(field string, fields ...string) *MessageEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MessageEvent entity.
func (_u *MessageEventUpdateOne) Save(ctx context.Context) (*MessageEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageEventUpdateOne) SaveX(ctx context.Context) *MessageEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := messageevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MessageEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *MessageEventUpdateOne) sqlSave(ctx context.Context) (_node *MessageEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(messageevent.Table, messageevent.Columns, sqlgraph.NewFieldSpec(messageevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MessageEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, messageevent.FieldID)
		for _, f := range fields {
			if !messageevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != messageevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(messageevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(messageevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(messageevent.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(messageevent.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(messageevent.FieldSessionID, field.TypeString, value)
	}
	_node = &MessageEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{messageevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
