// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tutorkit/tutorkit/ent/concept"
	"github.com/tutorkit/tutorkit/ent/predicate"
)

// ConceptUpdate is the builder for updating Concept entities.
type ConceptUpdate struct {
	config
	hooks    []Hook
	mutation *ConceptMutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (_u *ConceptUpdate) Where(ps ...predicate.Concept) *ConceptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ConceptUpdate) SetCourseID(v string) *ConceptUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableCourseID(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptUpdate) SetConceptID(v string) *ConceptUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableConceptID(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ConceptUpdate) SetUnitID(v string) *ConceptUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableUnitID(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConceptUpdate) SetName(v string) *ConceptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableName(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *ConceptUpdate) SetBloomLevel(v string) *ConceptUpdate {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableBloomLevel(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConceptUpdate) SetStatus(v string) *ConceptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableStatus(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *ConceptUpdate) SetPrerequisites(v []string) *ConceptUpdate {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *ConceptUpdate) AppendPrerequisites(v []string) *ConceptUpdate {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *ConceptUpdate) ClearPrerequisites() *ConceptUpdate {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ConceptUpdate) SetDifficulty(v float64) *ConceptUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableDifficulty(v *float64) *ConceptUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ConceptUpdate) AddDifficulty(v float64) *ConceptUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetBloomTarget sets the "bloom_target" field.
func (_u *ConceptUpdate) SetBloomTarget(v string) *ConceptUpdate {
	_u.mutation.SetBloomTarget(v)
	return _u
}

// SetNillableBloomTarget sets the "bloom_target" field if the given value is not nil.
func (_u *ConceptUpdate) SetNillableBloomTarget(v *string) *ConceptUpdate {
	if v != nil {
		_u.SetBloomTarget(*v)
	}
	return _u
}

// Mutation returns the ConceptMutation object of the builder.
func (_u *ConceptUpdate) Mutation() *ConceptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConceptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConceptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := concept.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Concept.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := concept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Concept.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := concept.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "Concept.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(concept.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(concept.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(concept.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(concept.FieldBloomLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(concept.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(concept.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, concept.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(concept.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(concept.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(concept.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BloomTarget(); ok {
		_spec.SetField(concept.FieldBloomTarget, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConceptUpdateOne is the builder for updating a single Concept entity.
type ConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConceptMutation
}

// SetCourseID sets the "course_id" field.
func (_u *ConceptUpdateOne) SetCourseID(v string) *ConceptUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableCourseID(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ConceptUpdateOne) SetConceptID(v string) *ConceptUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableConceptID(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *ConceptUpdateOne) SetUnitID(v string) *ConceptUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableUnitID(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConceptUpdateOne) SetName(v string) *ConceptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableName(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *ConceptUpdateOne) SetBloomLevel(v string) *ConceptUpdateOne {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableBloomLevel(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConceptUpdateOne) SetStatus(v string) *ConceptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableStatus(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPrerequisites sets the "prerequisites" field.
func (_u *ConceptUpdateOne) SetPrerequisites(v []string) *ConceptUpdateOne {
	_u.mutation.SetPrerequisites(v)
	return _u
}

// AppendPrerequisites appends value to the "prerequisites" field.
func (_u *ConceptUpdateOne) AppendPrerequisites(v []string) *ConceptUpdateOne {
	_u.mutation.AppendPrerequisites(v)
	return _u
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (_u *ConceptUpdateOne) ClearPrerequisites() *ConceptUpdateOne {
	_u.mutation.ClearPrerequisites()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ConceptUpdateOne) SetDifficulty(v float64) *ConceptUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableDifficulty(v *float64) *ConceptUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ConceptUpdateOne) AddDifficulty(v float64) *ConceptUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetBloomTarget sets the "bloom_target" field.
func (_u *ConceptUpdateOne) SetBloomTarget(v string) *ConceptUpdateOne {
	_u.mutation.SetBloomTarget(v)
	return _u
}

// SetNillableBloomTarget sets the "bloom_target" field if the given value is not nil.
func (_u *ConceptUpdateOne) SetNillableBloomTarget(v *string) *ConceptUpdateOne {
	if v != nil {
		_u.SetBloomTarget(*v)
	}
	return _u
}

// Mutation returns the ConceptMutation object of the builder.
func (_u *ConceptUpdateOne) Mutation() *ConceptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConceptUpdate builder.
func (_u *ConceptUpdateOne) Where(ps ...predicate.Concept) *ConceptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConceptUpdateOne) Select(field string, fields ...string) *ConceptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Concept entity.
func (_u *ConceptUpdateOne) Save(ctx context.Context) (*Concept, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConceptUpdateOne) SaveX(ctx context.Context) *Concept {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConceptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConceptUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := concept.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Concept.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := concept.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "Concept.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitID(); ok {
		if err := concept.UnitIDValidator(v); err != nil {
			return &ValidationError{Name: "unit_id", err: fmt.Errorf(`ent: validator failed for field "Concept.unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := concept.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Concept.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ConceptUpdateOne) sqlSave(ctx context.Context) (_node *Concept, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(concept.Table, concept.Columns, sqlgraph.NewFieldSpec(concept.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Concept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, concept.FieldID)
		for _, f := range fields {
			if !concept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != concept.FieldID {
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
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(concept.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(concept.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(concept.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(concept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(concept.FieldBloomLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(concept.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prerequisites(); ok {
		_spec.SetField(concept.FieldPrerequisites, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrerequisites(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, concept.FieldPrerequisites, value)
		})
	}
	if _u.mutation.PrerequisitesCleared() {
		_spec.ClearField(concept.FieldPrerequisites, field.TypeJSON)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(concept.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(concept.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BloomTarget(); ok {
		_spec.SetField(concept.FieldBloomTarget, field.TypeString, value)
	}
	_node = &Concept{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{concept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
