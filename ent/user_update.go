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
	"github.com/osokin/lingvo/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *UserUpdate) SetLanguage(v string) *UserUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLanguage(v *string) *UserUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *UserUpdate) SetLevel(v string) *UserUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLevel(v *string) *UserUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetReminderHour sets the "reminder_hour" field.
func (_u *UserUpdate) SetReminderHour(v int) *UserUpdate {
	_u.mutation.ResetReminderHour()
	_u.mutation.SetReminderHour(v)
	return _u
}

// SetNillableReminderHour sets the "reminder_hour" field if the given value is not nil.
func (_u *UserUpdate) SetNillableReminderHour(v *int) *UserUpdate {
	if v != nil {
		_u.SetReminderHour(*v)
	}
	return _u
}

// AddReminderHour adds value to the "reminder_hour" field.
func (_u *UserUpdate) AddReminderHour(v int) *UserUpdate {
	_u.mutation.AddReminderHour(v)
	return _u
}

// ClearReminderHour clears the value of the "reminder_hour" field.
func (_u *UserUpdate) ClearReminderHour() *UserUpdate {
	_u.mutation.ClearReminderHour()
	return _u
}

// SetLastRemindedOn sets the "last_reminded_on" field.
func (_u *UserUpdate) SetLastRemindedOn(v string) *UserUpdate {
	_u.mutation.SetLastRemindedOn(v)
	return _u
}

// SetNillableLastRemindedOn sets the "last_reminded_on" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastRemindedOn(v *string) *UserUpdate {
	if v != nil {
		_u.SetLastRemindedOn(*v)
	}
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.ReminderHour(); ok {
		if err := user.ReminderHourValidator(v); err != nil {
			return &ValidationError{Name: "reminder_hour", err: fmt.Errorf(`ent: validator failed for field "User.reminder_hour": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(user.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(user.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReminderHour(); ok {
		_spec.SetField(user.FieldReminderHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderHour(); ok {
		_spec.AddField(user.FieldReminderHour, field.TypeInt, value)
	}
	if _u.mutation.ReminderHourCleared() {
		_spec.ClearField(user.FieldReminderHour, field.TypeInt)
	}
	if value, ok := _u.mutation.LastRemindedOn(); ok {
		_spec.SetField(user.FieldLastRemindedOn, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *UserUpdateOne) SetLanguage(v string) *UserUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLanguage(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *UserUpdateOne) SetLevel(v string) *UserUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLevel(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetReminderHour sets the "reminder_hour" field.
func (_u *UserUpdateOne) SetReminderHour(v int) *UserUpdateOne {
	_u.mutation.ResetReminderHour()
	_u.mutation.SetReminderHour(v)
	return _u
}

// SetNillableReminderHour sets the "reminder_hour" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableReminderHour(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetReminderHour(*v)
	}
	return _u
}

// AddReminderHour adds value to the "reminder_hour" field.
func (_u *UserUpdateOne) AddReminderHour(v int) *UserUpdateOne {
	_u.mutation.AddReminderHour(v)
	return _u
}

// ClearReminderHour clears the value of the "reminder_hour" field.
func (_u *UserUpdateOne) ClearReminderHour() *UserUpdateOne {
	_u.mutation.ClearReminderHour()
	return _u
}

// SetLastRemindedOn sets the "last_reminded_on" field.
func (_u *UserUpdateOne) SetLastRemindedOn(v string) *UserUpdateOne {
	_u.mutation.SetLastRemindedOn(v)
	return _u
}

// SetNillableLastRemindedOn sets the "last_reminded_on" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastRemindedOn(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetLastRemindedOn(*v)
	}
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.ReminderHour(); ok {
		if err := user.ReminderHourValidator(v); err != nil {
			return &ValidationError{Name: "reminder_hour", err: fmt.Errorf(`ent: validator failed for field "User.reminder_hour": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(user.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(user.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReminderHour(); ok {
		_spec.SetField(user.FieldReminderHour, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReminderHour(); ok {
		_spec.AddField(user.FieldReminderHour, field.TypeInt, value)
	}
	if _u.mutation.ReminderHourCleared() {
		_spec.ClearField(user.FieldReminderHour, field.TypeInt)
	}
	if value, ok := _u.mutation.LastRemindedOn(); ok {
		_spec.SetField(user.FieldLastRemindedOn, field.TypeString, value)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
