// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorkit/tutorkit/ent/schema"
	"github.com/tutorkit/tutorkit/ent/sessionlog"
)

// SessionLogCreate is the builder for creating a SessionLog entity.
type SessionLogCreate struct {
	config
	mutation *SessionLogMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SessionLogCreate) SetSequence(v int64) *SessionLogCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionLogCreate) SetTimestamp(v time.Time) *SessionLogCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableTimestamp(v *time.Time) *SessionLogCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *SessionLogCreate) SetCourseID(v string) *SessionLogCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionLogCreate) SetSessionID(v string) *SessionLogCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSessionType sets the "session_type" field.
func (_c *SessionLogCreate) SetSessionType(v string) *SessionLogCreate {
	_c.mutation.SetSessionType(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionLogCreate) SetStartedAt(v time.Time) *SessionLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *SessionLogCreate) SetEndedAt(v time.Time) *SessionLogCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetConceptIds sets the "concept_ids" field.
func (_c *SessionLogCreate) SetConceptIds(v []string) *SessionLogCreate {
	_c.mutation.SetConceptIds(v)
	return _c
}

// SetExercises sets the "exercises" field.
func (_c *SessionLogCreate) SetExercises(v []string) *SessionLogCreate {
	_c.mutation.SetExercises(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SessionLogCreate) SetScore(v *schema.ScoreSummary) *SessionLogCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SessionLogCreate) SetSummary(v string) *SessionLogCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *SessionLogCreate) SetNillableSummary(v *string) *SessionLogCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// Mutation returns the SessionLogMutation object of the builder.
func (_c *SessionLogCreate) Mutation() *SessionLogMutation {
	return _c.mutation
}

// Save creates the SessionLog in the database.
func (_c *SessionLogCreate) Save(ctx context.Context) (*SessionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionLogCreate) SaveX(ctx context.Context) *SessionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionLogCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionlog.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionLogCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SessionLog.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionLog.timestamp"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "SessionLog.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := sessionlog.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionLog.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionlog.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionType(); !ok {
		return &ValidationError{Name: "session_type", err: errors.New(`ent: missing required field "SessionLog.session_type"`)}
	}
	if v, ok := _c.mutation.SessionType(); ok {
		if err := sessionlog.SessionTypeValidator(v); err != nil {
			return &ValidationError{Name: "session_type", err: fmt.Errorf(`ent: validator failed for field "SessionLog.session_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SessionLog.started_at"`)}
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		return &ValidationError{Name: "ended_at", err: errors.New(`ent: missing required field "SessionLog.ended_at"`)}
	}
	return nil
}

func (_c *SessionLogCreate) sqlSave(ctx context.Context) (*SessionLog, error) {
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

func (_c *SessionLogCreate) createSpec() (*SessionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionlog.Table, sqlgraph.NewFieldSpec(sessionlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(sessionlog.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionlog.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(sessionlog.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionlog.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SessionType(); ok {
		_spec.SetField(sessionlog.FieldSessionType, field.TypeString, value)
		_node.SessionType = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sessionlog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(sessionlog.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if value, ok := _c.mutation.ConceptIds(); ok {
		_spec.SetField(sessionlog.FieldConceptIds, field.TypeJSON, value)
		_node.ConceptIds = value
	}
	if value, ok := _c.mutation.Exercises(); ok {
		_spec.SetField(sessionlog.FieldExercises, field.TypeJSON, value)
		_node.Exercises = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(sessionlog.FieldScore, field.TypeJSON, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(sessionlog.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	return _node, _spec
}

// SessionLogCreateBulk is the builder for creating many SessionLog entities in bulk.
type SessionLogCreateBulk struct {
	config
	err      error
	builders []*SessionLogCreate
}

// Save creates the SessionLog entities in the database.
func (_c *SessionLogCreateBulk) Save(ctx context.Context) ([]*SessionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionLogMutation)
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
func (_c *SessionLogCreateBulk) SaveX(ctx context.Context) []*SessionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
