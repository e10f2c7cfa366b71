// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/osokin/lingvo/ent/vocabentry"
)

// VocabEntryCreate is the builder for creating a VocabEntry entity.
type VocabEntryCreate struct {
	config
	mutation *VocabEntryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *VocabEntryCreate) SetUserID(v string) *VocabEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *VocabEntryCreate) SetLanguage(v string) *VocabEntryCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetTerm sets the "term" field.
func (_c *VocabEntryCreate) SetTerm(v string) *VocabEntryCreate {
	_c.mutation.SetTerm(v)
	return _c
}

// SetTranslation sets the "translation" field.
func (_c *VocabEntryCreate) SetTranslation(v string) *VocabEntryCreate {
	_c.mutation.SetTranslation(v)
	return _c
}

// SetRepeatCount sets the "repeat_count" field.
func (_c *VocabEntryCreate) SetRepeatCount(v int) *VocabEntryCreate {
	_c.mutation.SetRepeatCount(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VocabEntryCreate) SetCreatedAt(v time.Time) *VocabEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VocabEntryCreate) SetNillableCreatedAt(v *time.Time) *VocabEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the VocabEntryMutation object of the builder.
func (_c *VocabEntryCreate) Mutation() *VocabEntryMutation {
	return _c.mutation
}

// Save creates the VocabEntry in the database.
func (_c *VocabEntryCreate) Save(ctx context.Context) (*VocabEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VocabEntryCreate) SaveX(ctx context.Context) *VocabEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VocabEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vocabentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VocabEntryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "VocabEntry.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := vocabentry.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "VocabEntry.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := vocabentry.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Term(); !ok {
		return &ValidationError{Name: "term", err: errors.New(`ent: missing required field "VocabEntry.term"`)}
	}
	if v, ok := _c.mutation.Term(); ok {
		if err := vocabentry.TermValidator(v); err != nil {
			return &ValidationError{Name: "term", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.term": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Translation(); !ok {
		return &ValidationError{Name: "translation", err: errors.New(`ent: missing required field "VocabEntry.translation"`)}
	}
	if v, ok := _c.mutation.Translation(); ok {
		if err := vocabentry.TranslationValidator(v); err != nil {
			return &ValidationError{Name: "translation", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.translation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RepeatCount(); !ok {
		return &ValidationError{Name: "repeat_count", err: errors.New(`ent: missing required field "VocabEntry.repeat_count"`)}
	}
	if v, ok := _c.mutation.RepeatCount(); ok {
		if err := vocabentry.RepeatCountValidator(v); err != nil {
			return &ValidationError{Name: "repeat_count", err: fmt.Errorf(`ent: validator failed for field "VocabEntry.repeat_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VocabEntry.created_at"`)}
	}
	return nil
}

func (_c *VocabEntryCreate) sqlSave(ctx context.Context) (*VocabEntry, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VocabEntryCreate) createSpec() (*VocabEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &VocabEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vocabentry.Table, sqlgraph.NewFieldSpec(vocabentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(vocabentry.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(vocabentry.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Term(); ok {
		_spec.SetField(vocabentry.FieldTerm, field.TypeString, value)
		_node.Term = value
	}
	if value, ok := _c.mutation.Translation(); ok {
		_spec.SetField(vocabentry.FieldTranslation, field.TypeString, value)
		_node.Translation = value
	}
	if value, ok := _c.mutation.RepeatCount(); ok {
		_spec.SetField(vocabentry.FieldRepeatCount, field.TypeInt, value)
		_node.RepeatCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vocabentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VocabEntryCreateBulk is the builder for creating many VocabEntry entities in bulk.
type VocabEntryCreateBulk struct {
	config
	err      error
	builders []*VocabEntryCreate
}

// Save creates the VocabEntry entities in the database.
func (_c *VocabEntryCreateBulk) Save(ctx context.Context) ([]*VocabEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VocabEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VocabEntryMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *VocabEntryCreateBulk) SaveX(ctx context.Context) []*VocabEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VocabEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VocabEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
