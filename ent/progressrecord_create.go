// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorkit/tutorkit/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (_c *ProgressRecordCreate) SetCourseID(v string) *ProgressRecordCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetConceptID sets the "concept_id" field.
func (_c *ProgressRecordCreate) SetConceptID(v string) *ProgressRecordCreate {
	_c.mutation.SetConceptID(v)
	return _c
}

// SetPracticeCount sets the "practice_count" field.
func (_c *ProgressRecordCreate) SetPracticeCount(v int) *ProgressRecordCreate {
	_c.mutation.SetPracticeCount(v)
	return _c
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillablePracticeCount(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetPracticeCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *ProgressRecordCreate) SetCorrectCount(v int) *ProgressRecordCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCorrectCount(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetRecentResults sets the "recent_results" field.
func (_c *ProgressRecordCreate) SetRecentResults(v []bool) *ProgressRecordCreate {
	_c.mutation.SetRecentResults(v)
	return _c
}

// SetMasteryScore sets the "mastery_score" field.
func (_c *ProgressRecordCreate) SetMasteryScore(v float64) *ProgressRecordCreate {
	_c.mutation.SetMasteryScore(v)
	return _c
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableMasteryScore(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetMasteryScore(*v)
	}
	return _c
}

// SetFsrsStability sets the "fsrs_stability" field.
func (_c *ProgressRecordCreate) SetFsrsStability(v float64) *ProgressRecordCreate {
	_c.mutation.SetFsrsStability(v)
	return _c
}

// SetNillableFsrsStability sets the "fsrs_stability" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableFsrsStability(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetFsrsStability(*v)
	}
	return _c
}

// SetFsrsDifficulty sets the "fsrs_difficulty" field.
func (_c *ProgressRecordCreate) SetFsrsDifficulty(v float64) *ProgressRecordCreate {
	_c.mutation.SetFsrsDifficulty(v)
	return _c
}

// SetNillableFsrsDifficulty sets the "fsrs_difficulty" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableFsrsDifficulty(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetFsrsDifficulty(*v)
	}
	return _c
}

// SetFsrsElapsedDays sets the "fsrs_elapsed_days" field.
func (_c *ProgressRecordCreate) SetFsrsElapsedDays(v float64) *ProgressRecordCreate {
	_c.mutation.SetFsrsElapsedDays(v)
	return _c
}

// SetNillableFsrsElapsedDays sets the "fsrs_elapsed_days" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableFsrsElapsedDays(v *float64) *ProgressRecordCreate {
	if v != nil {
		_c.SetFsrsElapsedDays(*v)
	}
	return _c
}

// SetFsrsScheduledDays sets the "fsrs_scheduled_days" field.
func (_c *ProgressRecordCreate) SetFsrsScheduledDays(v int) *ProgressRecordCreate {
	_c.mutation.SetFsrsScheduledDays(v)
	return _c
}

// SetNillableFsrsScheduledDays sets the "fsrs_scheduled_days" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableFsrsScheduledDays(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetFsrsScheduledDays(*v)
	}
	return _c
}

// SetFsrsReps sets the "fsrs_reps" field.
func (_c *ProgressRecordCreate) SetFsrsReps(v int) *ProgressRecordCreate {
	_c.mutation.SetFsrsReps(v)
	return _c
}

// SetNillableFsrsReps sets the "fsrs_reps" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableFsrsReps(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetFsrsReps(*v)
	}
	return _c
}

// SetFsrsLapses sets the "fsrs_lapses" field.
func (_c *ProgressRecordCreate) SetFsrsLapses(v int) *ProgressRecordCreate {
	_c.mutation.SetFsrsLapses(v)
	return _c
}

// SetNillableFsrsLapses sets the "fsrs_lapses" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableFsrsLapses(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetFsrsLapses(*v)
	}
	return _c
}

// SetFsrsState sets the "fsrs_state" field.
func (_c *ProgressRecordCreate) SetFsrsState(v string) *ProgressRecordCreate {
	_c.mutation.SetFsrsState(v)
	return _c
}

// SetNillableFsrsState sets the "fsrs_state" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableFsrsState(v *string) *ProgressRecordCreate {
	if v != nil {
		_c.SetFsrsState(*v)
	}
	return _c
}

// SetDue sets the "due" field.
func (_c *ProgressRecordCreate) SetDue(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetDue(v)
	return _c
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableDue(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetDue(*v)
	}
	return _c
}

// SetLastPracticed sets the "last_practiced" field.
func (_c *ProgressRecordCreate) SetLastPracticed(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetLastPracticed(v)
	return _c
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableLastPracticed(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetLastPracticed(*v)
	}
	return _c
}

// SetErrorHistory sets the "error_history" field.
func (_c *ProgressRecordCreate) SetErrorHistory(v []string) *ProgressRecordCreate {
	_c.mutation.SetErrorHistory(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ProgressRecordCreate) SetVersion(v int64) *ProgressRecordCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableVersion(v *int64) *ProgressRecordCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.PracticeCount(); !ok {
		v := progressrecord.DefaultPracticeCount
		_c.mutation.SetPracticeCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := progressrecord.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		v := progressrecord.DefaultMasteryScore
		_c.mutation.SetMasteryScore(v)
	}
	if _, ok := _c.mutation.FsrsStability(); !ok {
		v := progressrecord.DefaultFsrsStability
		_c.mutation.SetFsrsStability(v)
	}
	if _, ok := _c.mutation.FsrsDifficulty(); !ok {
		v := progressrecord.DefaultFsrsDifficulty
		_c.mutation.SetFsrsDifficulty(v)
	}
	if _, ok := _c.mutation.FsrsElapsedDays(); !ok {
		v := progressrecord.DefaultFsrsElapsedDays
		_c.mutation.SetFsrsElapsedDays(v)
	}
	if _, ok := _c.mutation.FsrsScheduledDays(); !ok {
		v := progressrecord.DefaultFsrsScheduledDays
		_c.mutation.SetFsrsScheduledDays(v)
	}
	if _, ok := _c.mutation.FsrsReps(); !ok {
		v := progressrecord.DefaultFsrsReps
		_c.mutation.SetFsrsReps(v)
	}
	if _, ok := _c.mutation.FsrsLapses(); !ok {
		v := progressrecord.DefaultFsrsLapses
		_c.mutation.SetFsrsLapses(v)
	}
	if _, ok := _c.mutation.FsrsState(); !ok {
		v := progressrecord.DefaultFsrsState
		_c.mutation.SetFsrsState(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := progressrecord.DefaultVersion
		_c.mutation.SetVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "ProgressRecord.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := progressrecord.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConceptID(); !ok {
		return &ValidationError{Name: "concept_id", err: errors.New(`ent: missing required field "ProgressRecord.concept_id"`)}
	}
	if v, ok := _c.mutation.ConceptID(); ok {
		if err := progressrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.concept_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PracticeCount(); !ok {
		return &ValidationError{Name: "practice_count", err: errors.New(`ent: missing required field "ProgressRecord.practice_count"`)}
	}
	if v, ok := _c.mutation.PracticeCount(); ok {
		if err := progressrecord.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.practice_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "ProgressRecord.correct_count"`)}
	}
	if v, ok := _c.mutation.CorrectCount(); ok {
		if err := progressrecord.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.correct_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryScore(); !ok {
		return &ValidationError{Name: "mastery_score", err: errors.New(`ent: missing required field "ProgressRecord.mastery_score"`)}
	}
	if _, ok := _c.mutation.FsrsStability(); !ok {
		return &ValidationError{Name: "fsrs_stability", err: errors.New(`ent: missing required field "ProgressRecord.fsrs_stability"`)}
	}
	if _, ok := _c.mutation.FsrsDifficulty(); !ok {
		return &ValidationError{Name: "fsrs_difficulty", err: errors.New(`ent: missing required field "ProgressRecord.fsrs_difficulty"`)}
	}
	if _, ok := _c.mutation.FsrsElapsedDays(); !ok {
		return &ValidationError{Name: "fsrs_elapsed_days", err: errors.New(`ent: missing required field "ProgressRecord.fsrs_elapsed_days"`)}
	}
	if _, ok := _c.mutation.FsrsScheduledDays(); !ok {
		return &ValidationError{Name: "fsrs_scheduled_days", err: errors.New(`ent: missing required field "ProgressRecord.fsrs_scheduled_days"`)}
	}
	if v, ok := _c.mutation.FsrsScheduledDays(); ok {
		if err := progressrecord.FsrsScheduledDaysValidator(v); err != nil {
			return &ValidationError{Name: "fsrs_scheduled_days", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.fsrs_scheduled_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FsrsReps(); !ok {
		return &ValidationError{Name: "fsrs_reps", err: errors.New(`ent: missing required field "ProgressRecord.fsrs_reps"`)}
	}
	if v, ok := _c.mutation.FsrsReps(); ok {
		if err := progressrecord.FsrsRepsValidator(v); err != nil {
			return &ValidationError{Name: "fsrs_reps", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.fsrs_reps": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FsrsLapses(); !ok {
		return &ValidationError{Name: "fsrs_lapses", err: errors.New(`ent: missing required field "ProgressRecord.fsrs_lapses"`)}
	}
	if v, ok := _c.mutation.FsrsLapses(); ok {
		if err := progressrecord.FsrsLapsesValidator(v); err != nil {
			return &ValidationError{Name: "fsrs_lapses", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.fsrs_lapses": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FsrsState(); !ok {
		return &ValidationError{Name: "fsrs_state", err: errors.New(`ent: missing required field "ProgressRecord.fsrs_state"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ProgressRecord.version"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
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

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(progressrecord.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.ConceptID(); ok {
		_spec.SetField(progressrecord.FieldConceptID, field.TypeString, value)
		_node.ConceptID = value
	}
	if value, ok := _c.mutation.PracticeCount(); ok {
		_spec.SetField(progressrecord.FieldPracticeCount, field.TypeInt, value)
		_node.PracticeCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(progressrecord.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.RecentResults(); ok {
		_spec.SetField(progressrecord.FieldRecentResults, field.TypeJSON, value)
		_node.RecentResults = value
	}
	if value, ok := _c.mutation.MasteryScore(); ok {
		_spec.SetField(progressrecord.FieldMasteryScore, field.TypeFloat64, value)
		_node.MasteryScore = value
	}
	if value, ok := _c.mutation.FsrsStability(); ok {
		_spec.SetField(progressrecord.FieldFsrsStability, field.TypeFloat64, value)
		_node.FsrsStability = value
	}
	if value, ok := _c.mutation.FsrsDifficulty(); ok {
		_spec.SetField(progressrecord.FieldFsrsDifficulty, field.TypeFloat64, value)
		_node.FsrsDifficulty = value
	}
	if value, ok := _c.mutation.FsrsElapsedDays(); ok {
		_spec.SetField(progressrecord.FieldFsrsElapsedDays, field.TypeFloat64, value)
		_node.FsrsElapsedDays = value
	}
	if value, ok := _c.mutation.FsrsScheduledDays(); ok {
		_spec.SetField(progressrecord.FieldFsrsScheduledDays, field.TypeInt, value)
		_node.FsrsScheduledDays = value
	}
	if value, ok := _c.mutation.FsrsReps(); ok {
		_spec.SetField(progressrecord.FieldFsrsReps, field.TypeInt, value)
		_node.FsrsReps = value
	}
	if value, ok := _c.mutation.FsrsLapses(); ok {
		_spec.SetField(progressrecord.FieldFsrsLapses, field.TypeInt, value)
		_node.FsrsLapses = value
	}
	if value, ok := _c.mutation.FsrsState(); ok {
		_spec.SetField(progressrecord.FieldFsrsState, field.TypeString, value)
		_node.FsrsState = value
	}
	if value, ok := _c.mutation.Due(); ok {
		_spec.SetField(progressrecord.FieldDue, field.TypeTime, value)
		_node.Due = &value
	}
	if value, ok := _c.mutation.LastPracticed(); ok {
		_spec.SetField(progressrecord.FieldLastPracticed, field.TypeTime, value)
		_node.LastPracticed = &value
	}
	if value, ok := _c.mutation.ErrorHistory(); ok {
		_spec.SetField(progressrecord.FieldErrorHistory, field.TypeJSON, value)
		_node.ErrorHistory = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
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
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
