// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorkit/tutorkit/ent/predicate"
	"github.com/tutorkit/tutorkit/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ReviewEventUpdate) SetCourseID(v string) *ReviewEventUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCourseID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ReviewEventUpdate) SetConceptID(v string) *ReviewEventUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableConceptID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdate) SetRating(v int) *ReviewEventUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableRating(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewEventUpdate) AddRating(v int) *ReviewEventUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdate) SetCorrect(v bool) *ReviewEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCorrect(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *ReviewEventUpdate) SetErrorClass(v string) *ReviewEventUpdate {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableErrorClass(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *ReviewEventUpdate) ClearErrorClass() *ReviewEventUpdate {
	_u.mutation.ClearErrorClass()
	return _u
}

// SetStability sets the "stability" field.
func (_u *ReviewEventUpdate) SetStability(v float64) *ReviewEventUpdate {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStability(v *float64) *ReviewEventUpdate {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewEventUpdate) AddStability(v float64) *ReviewEventUpdate {
	_u.mutation.AddStability(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdate) SetIntervalDays(v int) *ReviewEventUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIntervalDays(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdate) AddIntervalDays(v int) *ReviewEventUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdate) SetSessionID(v string) *ReviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSessionID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ReviewEventUpdate) ClearSessionID() *ReviewEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := reviewevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := reviewevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewevent.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(reviewevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(reviewevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(reviewevent.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(reviewevent.FieldErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(reviewevent.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetCourseID sets the "course_id" field.
func (_u *ReviewEventUpdateOne) SetCourseID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCourseID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ReviewEventUpdateOne) SetConceptID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableConceptID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewEventUpdateOne) SetRating(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableRating(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewEventUpdateOne) AddRating(v int) *ReviewEventUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdateOne) SetCorrect(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCorrect(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetErrorClass sets the "error_class" field.
func (_u *ReviewEventUpdateOne) SetErrorClass(v string) *ReviewEventUpdateOne {
	_u.mutation.SetErrorClass(v)
	return _u
}

// SetNillableErrorClass sets the "error_class" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableErrorClass(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetErrorClass(*v)
	}
	return _u
}

// ClearErrorClass clears the value of the "error_class" field.
func (_u *ReviewEventUpdateOne) ClearErrorClass() *ReviewEventUpdateOne {
	_u.mutation.ClearErrorClass()
	return _u
}

// SetStability sets the "stability" field.
func (_u *ReviewEventUpdateOne) SetStability(v float64) *ReviewEventUpdateOne {
	_u.mutation.ResetStability()
	_u.mutation.SetStability(v)
	return _u
}

// SetNillableStability sets the "stability" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStability(v *float64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStability(*v)
	}
	return _u
}

// AddStability adds value to the "stability" field.
func (_u *ReviewEventUpdateOne) AddStability(v float64) *ReviewEventUpdateOne {
	_u.mutation.AddStability(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEventUpdateOne) SetIntervalDays(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIntervalDays(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEventUpdateOne) AddIntervalDays(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdateOne) SetSessionID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSessionID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ReviewEventUpdateOne) ClearSessionID() *ReviewEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := reviewevent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := reviewevent.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := reviewevent.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewevent.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.interval_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
		_spec.SetField(reviewevent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(reviewevent.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(reviewevent.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorClass(); ok {
		_spec.SetField(reviewevent.FieldErrorClass, field.TypeString, value)
	}
	if _u.mutation.ErrorClassCleared() {
		_spec.ClearField(reviewevent.FieldErrorClass, field.TypeString)
	}
	if value, ok := _u.mutation.Stability(); ok {
		_spec.SetField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStability(); ok {
		_spec.AddField(reviewevent.FieldStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(reviewevent.FieldSessionID, field.TypeString)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
