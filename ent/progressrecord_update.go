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
	"github.com/tutorkit/tutorkit/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *ProgressRecordUpdate) SetCourseID(v string) *ProgressRecordUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCourseID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ProgressRecordUpdate) SetConceptID(v string) *ProgressRecordUpdate {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableConceptID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *ProgressRecordUpdate) SetPracticeCount(v int) *ProgressRecordUpdate {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillablePracticeCount(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *ProgressRecordUpdate) AddPracticeCount(v int) *ProgressRecordUpdate {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ProgressRecordUpdate) SetCorrectCount(v int) *ProgressRecordUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCorrectCount(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ProgressRecordUpdate) AddCorrectCount(v int) *ProgressRecordUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetRecentResults sets the "recent_results" field.
func (_u *ProgressRecordUpdate) SetRecentResults(v []bool) *ProgressRecordUpdate {
	_u.mutation.SetRecentResults(v)
	return _u
}

// AppendRecentResults appends value to the "recent_results" field.
func (_u *ProgressRecordUpdate) AppendRecentResults(v []bool) *ProgressRecordUpdate {
	_u.mutation.AppendRecentResults(v)
	return _u
}

// ClearRecentResults clears the value of the "recent_results" field.
func (_u *ProgressRecordUpdate) ClearRecentResults() *ProgressRecordUpdate {
	_u.mutation.ClearRecentResults()
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ProgressRecordUpdate) SetMasteryScore(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableMasteryScore(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ProgressRecordUpdate) AddMasteryScore(v float64) *ProgressRecordUpdate {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetFsrsStability sets the "fsrs_stability" field.
func (_u *ProgressRecordUpdate) SetFsrsStability(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetFsrsStability()
	_u.mutation.SetFsrsStability(v)
	return _u
}

// SetNillableFsrsStability sets the "fsrs_stability" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableFsrsStability(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetFsrsStability(*v)
	}
	return _u
}

// AddFsrsStability adds value to the "fsrs_stability" field.
func (_u *ProgressRecordUpdate) AddFsrsStability(v float64) *ProgressRecordUpdate {
	_u.mutation.AddFsrsStability(v)
	return _u
}

// SetFsrsDifficulty sets the "fsrs_difficulty" field.
func (_u *ProgressRecordUpdate) SetFsrsDifficulty(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetFsrsDifficulty()
	_u.mutation.SetFsrsDifficulty(v)
	return _u
}

// SetNillableFsrsDifficulty sets the "fsrs_difficulty" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableFsrsDifficulty(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetFsrsDifficulty(*v)
	}
	return _u
}

// AddFsrsDifficulty adds value to the "fsrs_difficulty" field.
func (_u *ProgressRecordUpdate) AddFsrsDifficulty(v float64) *ProgressRecordUpdate {
	_u.mutation.AddFsrsDifficulty(v)
	return _u
}

// SetFsrsElapsedDays sets the "fsrs_elapsed_days" field.
func (_u *ProgressRecordUpdate) SetFsrsElapsedDays(v float64) *ProgressRecordUpdate {
	_u.mutation.ResetFsrsElapsedDays()
	_u.mutation.SetFsrsElapsedDays(v)
	return _u
}

// SetNillableFsrsElapsedDays sets the "fsrs_elapsed_days" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableFsrsElapsedDays(v *float64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetFsrsElapsedDays(*v)
	}
	return _u
}

// AddFsrsElapsedDays adds value to the "fsrs_elapsed_days" field.
func (_u *ProgressRecordUpdate) AddFsrsElapsedDays(v float64) *ProgressRecordUpdate {
	_u.mutation.AddFsrsElapsedDays(v)
	return _u
}

// SetFsrsScheduledDays sets the "fsrs_scheduled_days" field.
func (_u *ProgressRecordUpdate) SetFsrsScheduledDays(v int) *ProgressRecordUpdate {
	_u.mutation.ResetFsrsScheduledDays()
	_u.mutation.SetFsrsScheduledDays(v)
	return _u
}

// SetNillableFsrsScheduledDays sets the "fsrs_scheduled_days" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableFsrsScheduledDays(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetFsrsScheduledDays(*v)
	}
	return _u
}

// AddFsrsScheduledDays adds value to the "fsrs_scheduled_days" field.
func (_u *ProgressRecordUpdate) AddFsrsScheduledDays(v int) *ProgressRecordUpdate {
	_u.mutation.AddFsrsScheduledDays(v)
	return _u
}

// SetFsrsReps sets the "fsrs_reps" field.
func (_u *ProgressRecordUpdate) SetFsrsReps(v int) *ProgressRecordUpdate {
	_u.mutation.ResetFsrsReps()
	_u.mutation.SetFsrsReps(v)
	return _u
}

// SetNillableFsrsReps sets the "fsrs_reps" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableFsrsReps(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetFsrsReps(*v)
	}
	return _u
}

// AddFsrsReps adds value to the "fsrs_reps" field.
func (_u *ProgressRecordUpdate) AddFsrsReps(v int) *ProgressRecordUpdate {
	_u.mutation.AddFsrsReps(v)
	return _u
}

// SetFsrsLapses sets the "fsrs_lapses" field.
func (_u *ProgressRecordUpdate) SetFsrsLapses(v int) *ProgressRecordUpdate {
	_u.mutation.ResetFsrsLapses()
	_u.mutation.SetFsrsLapses(v)
	return _u
}

// SetNillableFsrsLapses sets the "fsrs_lapses" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableFsrsLapses(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetFsrsLapses(*v)
	}
	return _u
}

// AddFsrsLapses adds value to the "fsrs_lapses" field.
func (_u *ProgressRecordUpdate) AddFsrsLapses(v int) *ProgressRecordUpdate {
	_u.mutation.AddFsrsLapses(v)
	return _u
}

// SetFsrsState sets the "fsrs_state" field.
func (_u *ProgressRecordUpdate) SetFsrsState(v string) *ProgressRecordUpdate {
	_u.mutation.SetFsrsState(v)
	return _u
}

// SetNillableFsrsState sets the "fsrs_state" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableFsrsState(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetFsrsState(*v)
	}
	return _u
}

// SetDue sets the "due" field.
func (_u *ProgressRecordUpdate) SetDue(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableDue(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// ClearDue clears the value of the "due" field.
func (_u *ProgressRecordUpdate) ClearDue() *ProgressRecordUpdate {
	_u.mutation.ClearDue()
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *ProgressRecordUpdate) SetLastPracticed(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableLastPracticed(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *ProgressRecordUpdate) ClearLastPracticed() *ProgressRecordUpdate {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetErrorHistory sets the "error_history" field.
func (_u *ProgressRecordUpdate) SetErrorHistory(v []string) *ProgressRecordUpdate {
	_u.mutation.SetErrorHistory(v)
	return _u
}

// AppendErrorHistory appends value to the "error_history" field.
func (_u *ProgressRecordUpdate) AppendErrorHistory(v []string) *ProgressRecordUpdate {
	_u.mutation.AppendErrorHistory(v)
	return _u
}

// ClearErrorHistory clears the value of the "error_history" field.
func (_u *ProgressRecordUpdate) ClearErrorHistory() *ProgressRecordUpdate {
	_u.mutation.ClearErrorHistory()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdate) SetVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableVersion(v *int64) *ProgressRecordUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdate) AddVersion(v int64) *ProgressRecordUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := progressrecord.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := progressrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := progressrecord.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.practice_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := progressrecord.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FsrsScheduledDays(); ok {
		if err := progressrecord.FsrsScheduledDaysValidator(v); err != nil {
			return &ValidationError{Name: "fsrs_scheduled_days", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.fsrs_scheduled_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FsrsReps(); ok {
		if err := progressrecord.FsrsRepsValidator(v); err != nil {
			return &ValidationError{Name: "fsrs_reps", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.fsrs_reps": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FsrsLapses(); ok {
		if err := progressrecord.FsrsLapsesValidator(v); err != nil {
			return &ValidationError{Name: "fsrs_lapses", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.fsrs_lapses": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(progressrecord.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(progressrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(progressrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(progressrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(progressrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(progressrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecentResults(); ok {
		_spec.SetField(progressrecord.FieldRecentResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldRecentResults, value)
		})
	}
	if _u.mutation.RecentResultsCleared() {
		_spec.ClearField(progressrecord.FieldRecentResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(progressrecord.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(progressrecord.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FsrsStability(); ok {
		_spec.SetField(progressrecord.FieldFsrsStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFsrsStability(); ok {
		_spec.AddField(progressrecord.FieldFsrsStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FsrsDifficulty(); ok {
		_spec.SetField(progressrecord.FieldFsrsDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFsrsDifficulty(); ok {
		_spec.AddField(progressrecord.FieldFsrsDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FsrsElapsedDays(); ok {
		_spec.SetField(progressrecord.FieldFsrsElapsedDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFsrsElapsedDays(); ok {
		_spec.AddField(progressrecord.FieldFsrsElapsedDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FsrsScheduledDays(); ok {
		_spec.SetField(progressrecord.FieldFsrsScheduledDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFsrsScheduledDays(); ok {
		_spec.AddField(progressrecord.FieldFsrsScheduledDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FsrsReps(); ok {
		_spec.SetField(progressrecord.FieldFsrsReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFsrsReps(); ok {
		_spec.AddField(progressrecord.FieldFsrsReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FsrsLapses(); ok {
		_spec.SetField(progressrecord.FieldFsrsLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFsrsLapses(); ok {
		_spec.AddField(progressrecord.FieldFsrsLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FsrsState(); ok {
		_spec.SetField(progressrecord.FieldFsrsState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(progressrecord.FieldDue, field.TypeTime, value)
	}
	if _u.mutation.DueCleared() {
		_spec.ClearField(progressrecord.FieldDue, field.TypeTime)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(progressrecord.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(progressrecord.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorHistory(); ok {
		_spec.SetField(progressrecord.FieldErrorHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldErrorHistory, value)
		})
	}
	if _u.mutation.ErrorHistoryCleared() {
		_spec.ClearField(progressrecord.FieldErrorHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetCourseID sets the "course_id" field.
func (_u *ProgressRecordUpdateOne) SetCourseID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCourseID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetConceptID sets the "concept_id" field.
func (_u *ProgressRecordUpdateOne) SetConceptID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetConceptID(v)
	return _u
}

// SetNillableConceptID sets the "concept_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableConceptID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetConceptID(*v)
	}
	return _u
}

// SetPracticeCount sets the "practice_count" field.
func (_u *ProgressRecordUpdateOne) SetPracticeCount(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetPracticeCount()
	_u.mutation.SetPracticeCount(v)
	return _u
}

// SetNillablePracticeCount sets the "practice_count" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillablePracticeCount(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetPracticeCount(*v)
	}
	return _u
}

// AddPracticeCount adds value to the "practice_count" field.
func (_u *ProgressRecordUpdateOne) AddPracticeCount(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddPracticeCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *ProgressRecordUpdateOne) SetCorrectCount(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCorrectCount(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *ProgressRecordUpdateOne) AddCorrectCount(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetRecentResults sets the "recent_results" field.
func (_u *ProgressRecordUpdateOne) SetRecentResults(v []bool) *ProgressRecordUpdateOne {
	_u.mutation.SetRecentResults(v)
	return _u
}

// AppendRecentResults appends value to the "recent_results" field.
func (_u *ProgressRecordUpdateOne) AppendRecentResults(v []bool) *ProgressRecordUpdateOne {
	_u.mutation.AppendRecentResults(v)
	return _u
}

// ClearRecentResults clears the value of the "recent_results" field.
func (_u *ProgressRecordUpdateOne) ClearRecentResults() *ProgressRecordUpdateOne {
	_u.mutation.ClearRecentResults()
	return _u
}

// SetMasteryScore sets the "mastery_score" field.
func (_u *ProgressRecordUpdateOne) SetMasteryScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetMasteryScore()
	_u.mutation.SetMasteryScore(v)
	return _u
}

// SetNillableMasteryScore sets the "mastery_score" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableMasteryScore(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetMasteryScore(*v)
	}
	return _u
}

// AddMasteryScore adds value to the "mastery_score" field.
func (_u *ProgressRecordUpdateOne) AddMasteryScore(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddMasteryScore(v)
	return _u
}

// SetFsrsStability sets the "fsrs_stability" field.
func (_u *ProgressRecordUpdateOne) SetFsrsStability(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetFsrsStability()
	_u.mutation.SetFsrsStability(v)
	return _u
}

// SetNillableFsrsStability sets the "fsrs_stability" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableFsrsStability(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetFsrsStability(*v)
	}
	return _u
}

// AddFsrsStability adds value to the "fsrs_stability" field.
func (_u *ProgressRecordUpdateOne) AddFsrsStability(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddFsrsStability(v)
	return _u
}

// SetFsrsDifficulty sets the "fsrs_difficulty" field.
func (_u *ProgressRecordUpdateOne) SetFsrsDifficulty(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetFsrsDifficulty()
	_u.mutation.SetFsrsDifficulty(v)
	return _u
}

// SetNillableFsrsDifficulty sets the "fsrs_difficulty" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableFsrsDifficulty(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetFsrsDifficulty(*v)
	}
	return _u
}

// AddFsrsDifficulty adds value to the "fsrs_difficulty" field.
func (_u *ProgressRecordUpdateOne) AddFsrsDifficulty(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddFsrsDifficulty(v)
	return _u
}

// SetFsrsElapsedDays sets the "fsrs_elapsed_days" field.
func (_u *ProgressRecordUpdateOne) SetFsrsElapsedDays(v float64) *ProgressRecordUpdateOne {
	_u.mutation.ResetFsrsElapsedDays()
	_u.mutation.SetFsrsElapsedDays(v)
	return _u
}

// SetNillableFsrsElapsedDays sets the "fsrs_elapsed_days" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableFsrsElapsedDays(v *float64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetFsrsElapsedDays(*v)
	}
	return _u
}

// AddFsrsElapsedDays adds value to the "fsrs_elapsed_days" field.
func (_u *ProgressRecordUpdateOne) AddFsrsElapsedDays(v float64) *ProgressRecordUpdateOne {
	_u.mutation.AddFsrsElapsedDays(v)
	return _u
}

// SetFsrsScheduledDays sets the "fsrs_scheduled_days" field.
func (_u *ProgressRecordUpdateOne) SetFsrsScheduledDays(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetFsrsScheduledDays()
	_u.mutation.SetFsrsScheduledDays(v)
	return _u
}

// SetNillableFsrsScheduledDays sets the "fsrs_scheduled_days" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableFsrsScheduledDays(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetFsrsScheduledDays(*v)
	}
	return _u
}

// AddFsrsScheduledDays adds value to the "fsrs_scheduled_days" field.
func (_u *ProgressRecordUpdateOne) AddFsrsScheduledDays(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddFsrsScheduledDays(v)
	return _u
}

// SetFsrsReps sets the "fsrs_reps" field.
func (_u *ProgressRecordUpdateOne) SetFsrsReps(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetFsrsReps()
	_u.mutation.SetFsrsReps(v)
	return _u
}

// SetNillableFsrsReps sets the "fsrs_reps" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableFsrsReps(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetFsrsReps(*v)
	}
	return _u
}

// AddFsrsReps adds value to the "fsrs_reps" field.
func (_u *ProgressRecordUpdateOne) AddFsrsReps(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddFsrsReps(v)
	return _u
}

// SetFsrsLapses sets the "fsrs_lapses" field.
func (_u *ProgressRecordUpdateOne) SetFsrsLapses(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetFsrsLapses()
	_u.mutation.SetFsrsLapses(v)
	return _u
}

// SetNillableFsrsLapses sets the "fsrs_lapses" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableFsrsLapses(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetFsrsLapses(*v)
	}
	return _u
}

// AddFsrsLapses adds value to the "fsrs_lapses" field.
func (_u *ProgressRecordUpdateOne) AddFsrsLapses(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddFsrsLapses(v)
	return _u
}

// SetFsrsState sets the "fsrs_state" field.
func (_u *ProgressRecordUpdateOne) SetFsrsState(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetFsrsState(v)
	return _u
}

// SetNillableFsrsState sets the "fsrs_state" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableFsrsState(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetFsrsState(*v)
	}
	return _u
}

// SetDue sets the "due" field.
func (_u *ProgressRecordUpdateOne) SetDue(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetDue(v)
	return _u
}

// SetNillableDue sets the "due" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableDue(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetDue(*v)
	}
	return _u
}

// ClearDue clears the value of the "due" field.
func (_u *ProgressRecordUpdateOne) ClearDue() *ProgressRecordUpdateOne {
	_u.mutation.ClearDue()
	return _u
}

// SetLastPracticed sets the "last_practiced" field.
func (_u *ProgressRecordUpdateOne) SetLastPracticed(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetLastPracticed(v)
	return _u
}

// SetNillableLastPracticed sets the "last_practiced" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableLastPracticed(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetLastPracticed(*v)
	}
	return _u
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (_u *ProgressRecordUpdateOne) ClearLastPracticed() *ProgressRecordUpdateOne {
	_u.mutation.ClearLastPracticed()
	return _u
}

// SetErrorHistory sets the "error_history" field.
func (_u *ProgressRecordUpdateOne) SetErrorHistory(v []string) *ProgressRecordUpdateOne {
	_u.mutation.SetErrorHistory(v)
	return _u
}

// AppendErrorHistory appends value to the "error_history" field.
func (_u *ProgressRecordUpdateOne) AppendErrorHistory(v []string) *ProgressRecordUpdateOne {
	_u.mutation.AppendErrorHistory(v)
	return _u
}

// ClearErrorHistory clears the value of the "error_history" field.
func (_u *ProgressRecordUpdateOne) ClearErrorHistory() *ProgressRecordUpdateOne {
	_u.mutation.ClearErrorHistory()
	return _u
}

// SetVersion sets the "version" field.
func (_u *ProgressRecordUpdateOne) SetVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableVersion(v *int64) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ProgressRecordUpdateOne) AddVersion(v int64) *ProgressRecordUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := progressrecord.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConceptID(); ok {
		if err := progressrecord.ConceptIDValidator(v); err != nil {
			return &ValidationError{Name: "concept_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.concept_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PracticeCount(); ok {
		if err := progressrecord.PracticeCountValidator(v); err != nil {
			return &ValidationError{Name: "practice_count", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.practice_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectCount(); ok {
		if err := progressrecord.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.correct_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FsrsScheduledDays(); ok {
		if err := progressrecord.FsrsScheduledDaysValidator(v); err != nil {
			return &ValidationError{Name: "fsrs_scheduled_days", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.fsrs_scheduled_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FsrsReps(); ok {
		if err := progressrecord.FsrsRepsValidator(v); err != nil {
			return &ValidationError{Name: "fsrs_reps", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.fsrs_reps": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FsrsLapses(); ok {
		if err := progressrecord.FsrsLapsesValidator(v); err != nil {
			return &ValidationError{Name: "fsrs_lapses", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.fsrs_lapses": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
		_spec.SetField(progressrecord.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConceptID(); ok {
		_spec.SetField(progressrecord.FieldConceptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeCount(); ok {
		_spec.SetField(progressrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPracticeCount(); ok {
		_spec.AddField(progressrecord.FieldPracticeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(progressrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(progressrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecentResults(); ok {
		_spec.SetField(progressrecord.FieldRecentResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecentResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldRecentResults, value)
		})
	}
	if _u.mutation.RecentResultsCleared() {
		_spec.ClearField(progressrecord.FieldRecentResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.MasteryScore(); ok {
		_spec.SetField(progressrecord.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryScore(); ok {
		_spec.AddField(progressrecord.FieldMasteryScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FsrsStability(); ok {
		_spec.SetField(progressrecord.FieldFsrsStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFsrsStability(); ok {
		_spec.AddField(progressrecord.FieldFsrsStability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FsrsDifficulty(); ok {
		_spec.SetField(progressrecord.FieldFsrsDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFsrsDifficulty(); ok {
		_spec.AddField(progressrecord.FieldFsrsDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FsrsElapsedDays(); ok {
		_spec.SetField(progressrecord.FieldFsrsElapsedDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFsrsElapsedDays(); ok {
		_spec.AddField(progressrecord.FieldFsrsElapsedDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FsrsScheduledDays(); ok {
		_spec.SetField(progressrecord.FieldFsrsScheduledDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFsrsScheduledDays(); ok {
		_spec.AddField(progressrecord.FieldFsrsScheduledDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FsrsReps(); ok {
		_spec.SetField(progressrecord.FieldFsrsReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFsrsReps(); ok {
		_spec.AddField(progressrecord.FieldFsrsReps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FsrsLapses(); ok {
		_spec.SetField(progressrecord.FieldFsrsLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFsrsLapses(); ok {
		_spec.AddField(progressrecord.FieldFsrsLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FsrsState(); ok {
		_spec.SetField(progressrecord.FieldFsrsState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Due(); ok {
		_spec.SetField(progressrecord.FieldDue, field.TypeTime, value)
	}
	if _u.mutation.DueCleared() {
		_spec.ClearField(progressrecord.FieldDue, field.TypeTime)
	}
	if value, ok := _u.mutation.LastPracticed(); ok {
		_spec.SetField(progressrecord.FieldLastPracticed, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedCleared() {
		_spec.ClearField(progressrecord.FieldLastPracticed, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorHistory(); ok {
		_spec.SetField(progressrecord.FieldErrorHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldErrorHistory, value)
		})
	}
	if _u.mutation.ErrorHistoryCleared() {
		_spec.ClearField(progressrecord.FieldErrorHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(progressrecord.FieldVersion, field.TypeInt64, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
