// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tutorkit/tutorkit/ent/predicate"
	"github.com/tutorkit/tutorkit/ent/schema"
	"github.com/tutorkit/tutorkit/ent/sessionlog"
)

// SessionLogUpdate is the builder for updating SessionLog entities.
type SessionLogUpdate struct {
	config
	hooks    []Hook
	mutation *SessionLogMutation
}

// Where appends a list predicates to the SessionLogUpdate builder.
func (_u *SessionLogUpdate) Where(ps ...predicate.SessionLog) *SessionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *SessionLogUpdate) SetCourseID(v string) *SessionLogUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableCourseID(v *string) *SessionLogUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionLogUpdate) SetSessionID(v string) *SessionLogUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableSessionID(v *string) *SessionLogUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *SessionLogUpdate) SetSessionType(v string) *SessionLogUpdate {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableSessionType(v *string) *SessionLogUpdate {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionLogUpdate) SetStartedAt(v time.Time) *SessionLogUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableStartedAt(v *time.Time) *SessionLogUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionLogUpdate) SetEndedAt(v time.Time) *SessionLogUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableEndedAt(v *time.Time) *SessionLogUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *SessionLogUpdate) SetConceptIds(v []string) *SessionLogUpdate {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *SessionLogUpdate) AppendConceptIds(v []string) *SessionLogUpdate {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// ClearConceptIds clears the value of the "concept_ids" field.
func (_u *SessionLogUpdate) ClearConceptIds() *SessionLogUpdate {
	_u.mutation.ClearConceptIds()
	return _u
}

// SetExercises sets the "exercises" field.
func (_u *SessionLogUpdate) SetExercises(v []string) *SessionLogUpdate {
	_u.mutation.SetExercises(v)
	return _u
}

// AppendExercises appends value to the "exercises" field.
func (_u *SessionLogUpdate) AppendExercises(v []string) *SessionLogUpdate {
	_u.mutation.AppendExercises(v)
	return _u
}

// ClearExercises clears the value of the "exercises" field.
func (_u *SessionLogUpdate) ClearExercises() *SessionLogUpdate {
	_u.mutation.ClearExercises()
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionLogUpdate) SetScore(v *schema.ScoreSummary) *SessionLogUpdate {
	_u.mutation.SetScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *SessionLogUpdate) ClearScore() *SessionLogUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionLogUpdate) SetSummary(v string) *SessionLogUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionLogUpdate) SetNillableSummary(v *string) *SessionLogUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionLogUpdate) ClearSummary() *SessionLogUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the SessionLogMutation object of the builder.
func (_u *SessionLogUpdate) Mutation() *SessionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionLogUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := sessionlog.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := sessionlog.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlog.Table, sessionlog.Columns, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(sessionlog.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(sessionlog.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionlog.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(sessionlog.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(sessionlog.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionlog.FieldConceptIds, value)
		})
	}
	if _u.mutation.ConceptIdsCleared() {
		_spec.ClearField(sessionlog.FieldConceptIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Exercises(); ok {
		_spec.SetField(sessionlog.FieldExercises, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExercises(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionlog.FieldExercises, value)
		})
	}
	if _u.mutation.ExercisesCleared() {
		_spec.ClearField(sessionlog.FieldExercises, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionlog.FieldScore, field.TypeJSON, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(sessionlog.FieldScore, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sessionlog.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(sessionlog.FieldSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionLogUpdateOne is the builder for updating a single SessionLog entity.
type SessionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionLogMutation
}

// SetCourseID sets the "course_id" field.
func (_u *SessionLogUpdateOne) SetCourseID(v string) *SessionLogUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableCourseID(v *string) *SessionLogUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionLogUpdateOne) SetSessionID(v string) *SessionLogUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableSessionID(v *string) *SessionLogUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSessionType sets the "session_type" field.
func (_u *SessionLogUpdateOne) SetSessionType(v string) *SessionLogUpdateOne {
	_u.mutation.SetSessionType(v)
	return _u
}

// SetNillableSessionType sets the "session_type" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableSessionType(v *string) *SessionLogUpdateOne {
	if v != nil {
		_u.SetSessionType(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionLogUpdateOne) SetStartedAt(v time.Time) *SessionLogUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableStartedAt(v *time.Time) *SessionLogUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionLogUpdateOne) SetEndedAt(v time.Time) *SessionLogUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableEndedAt(v *time.Time) *SessionLogUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetConceptIds sets the "concept_ids" field.
func (_u *SessionLogUpdateOne) SetConceptIds(v []string) *SessionLogUpdateOne {
	_u.mutation.SetConceptIds(v)
	return _u
}

// AppendConceptIds appends value to the "concept_ids" field.
func (_u *SessionLogUpdateOne) AppendConceptIds(v []string) *SessionLogUpdateOne {
	_u.mutation.AppendConceptIds(v)
	return _u
}

// ClearConceptIds clears the value of the "concept_ids" field.
func (_u *SessionLogUpdateOne) ClearConceptIds() *SessionLogUpdateOne {
	_u.mutation.ClearConceptIds()
	return _u
}

// SetExercises sets the "exercises" field.
func (_u *SessionLogUpdateOne) SetExercises(v []string) *SessionLogUpdateOne {
	_u.mutation.SetExercises(v)
	return _u
}

// AppendExercises appends value to the "exercises" field.
func (_u *SessionLogUpdateOne) AppendExercises(v []string) *SessionLogUpdateOne {
	_u.mutation.AppendExercises(v)
	return _u
}

// ClearExercises clears the value of the "exercises" field.
func (_u *SessionLogUpdateOne) ClearExercises() *SessionLogUpdateOne {
	_u.mutation.ClearExercises()
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionLogUpdateOne) SetScore(v *schema.ScoreSummary) *SessionLogUpdateOne {
	_u.mutation.SetScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *SessionLogUpdateOne) ClearScore() *SessionLogUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionLogUpdateOne) SetSummary(v string) *SessionLogUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionLogUpdateOne) SetNillableSummary(v *string) *SessionLogUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionLogUpdateOne) ClearSummary() *SessionLogUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the SessionLogMutation object of the builder.
func (_u *SessionLogUpdateOne) Mutation() *SessionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionLogUpdate builder.
func (_u *SessionLogUpdateOne) Where(ps ...predicate.SessionLog) *SessionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionLogUpdateOne) Select(field string, fields ...string) *SessionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionLog entity.
func (_u *SessionLogUpdateOne) Save(ctx context.Context) (*SessionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionLogUpdateOne) SaveX(ctx context.Context) *SessionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionLogUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := sessionlog.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionType(); ok {
		if err := sessionlog.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_type": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionLogUpdateOne) sqlSave(ctx context.Context) (_node *SessionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionlog.Table, sessionlog.Columns, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionlog.FieldID)
		for _, f := range fields {
			if !sessionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionlog.FieldID {
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
		_spec.SetField(sessionlog.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionlog.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionType(); ok {
		_spec.SetField(sessionlog.FieldSessionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionlog.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(sessionlog.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ConceptIds(); ok {
		_spec.SetField(sessionlog.FieldConceptIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConceptIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionlog.FieldConceptIds, value)
		})
	}
	if _u.mutation.ConceptIdsCleared() {
		_spec.ClearField(sessionlog.FieldConceptIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Exercises(); ok {
		_spec.SetField(sessionlog.FieldExercises, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExercises(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionlog.FieldExercises, value)
		})
	}
	if _u.mutation.ExercisesCleared() {
		_spec.ClearField(sessionlog.FieldExercises, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionlog.FieldScore, field.TypeJSON, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(sessionlog.FieldScore, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sessionlog.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(sessionlog.FieldSummary, field.TypeString)
	}
	_node = &SessionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
