// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorkit/tutorkit/ent/concept"
)

// ConceptCreate is the builder for creating a Concept entity.
type ConceptCreate struct {
	config
	mutation *ConceptMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (_c *ConceptCreate) SetCourseID(v string) *ConceptCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ConceptCreate) SetConceptID(v string) *ConceptCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *ConceptCreate) SetUnitID(v string) *ConceptCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ConceptCreate) SetName(v string) *ConceptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetBloomLevel sets the "bloom_level" field.
func (_c *ConceptCreate) SetBloomLevel(v string) *ConceptCreate {
	_c.mutation.SetBloomLevel(v)
	return _c
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableBloomLevel(v *string) *ConceptCreate {
	if v != nil {
		_c.SetBloomLevel(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConceptCreate) SetStatus(v string) *ConceptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableStatus(v *string) *ConceptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPrerequisites sets the "prerequisites" field.
func (_c *ConceptCreate) SetPrerequisites(v []string) *ConceptCreate {
	_c.mutation.SetPrerequisites(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ConceptCreate) SetDifficulty(v float64) *ConceptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableDifficulty(v *float64) *ConceptCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetBloomTarget sets the "bloom_target" field.
func (_c *ConceptCreate) SetBloomTarget(v string) *ConceptCreate {
	_c.mutation.SetBloomTarget(v)
	return _c
}

// SetNillableBloomTarget sets the "bloom_target" field if the given value is not nil.
func (_c *ConceptCreate) SetNillableBloomTarget(v *string) *ConceptCreate {
	if v != nil {
		_c.SetBloomTarget(*v)
	}
	return _c
}

// Mutation returns the ConceptMutation object of the builder.
func (_c *ConceptCreate) Mutation() *ConceptMutation {
	return _c.mutation
}

// Save creates the Concept in the database.
func (_c *ConceptCreate) Save(ctx context.Context) (*Concept, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConceptCreate) SaveX(ctx context.Context) *Concept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConceptCreate) defaults() {
	if _, ok := _c.mutation.BloomLevel(); !ok {
		v := concept.DefaultBloomLevel
		_c.mutation.SetBloomLevel(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := concept.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := concept.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.BloomTarget(); !ok {
		v := concept.DefaultBloomTarget
		_c.mutation.SetBloomTarget(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConceptCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Concept.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := concept.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Concept.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "Concept.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := concept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Concept.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "Concept.unit_id"`)}
	}
	if v, ok := _c.mutation.UnitID(); ok {
		if err := concept.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "Concept.unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Concept.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BloomLevel(); !ok {
		return &ValidationError{Name: "bloom_level", err: errors.New(`ent: missing required field "Concept.bloom_level"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Concept.status"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Concept.difficulty"`)}
	}
	if _, ok := _c.mutation.BloomTarget(); !ok {
		return &ValidationError{Name: "bloom_target", err: errors.New(`ent: missing required field "Concept.bloom_target"`)}
	}
	return nil
}

func (_c *ConceptCreate) sqlSave(ctx context.Context) (*Concept, error) {
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

func (_c *ConceptCreate) createSpec() (*Concept, *sqlgraph.CreateSpec) {
	var (
		_node = &Concept{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(concept.Table, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(concept.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(concept.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(concept.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.BloomLevel(); ok {
		_spec.SetField(concept.FieldBloomLevel, field.TypeString, value)
		_node.BloomLevel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(concept.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Prerequisites(); ok {
		_spec.SetField(concept.FieldPrerequisites, field.TypeJSON, value)
		_node.Prerequisites = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(concept.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.BloomTarget(); ok {
		_spec.SetField(concept.FieldBloomTarget, field.TypeString, value)
		_node.BloomTarget = value
	}
	return _node, _spec
}

// ConceptCreateBulk is the builder for creating many Concept entities in bulk.
type ConceptCreateBulk struct {
	config
	err      error
	builders []*ConceptCreate
}

// Save creates the Concept entities in the database.
func (_c *ConceptCreateBulk) Save(ctx context.Context) ([]*Concept, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Concept, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConceptMutation)
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
func (_c *ConceptCreateBulk) SaveX(ctx context.Context) []*Concept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConceptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConceptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
