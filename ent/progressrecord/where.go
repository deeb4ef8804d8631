// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tutorkit/tutorkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldID, id))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCourseID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldConceptID, v))
}

// PracticeCount applies equality check predicate on the "practice_count" field. It's identical to PracticeCountEQ.
func PracticeCount(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldPracticeCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCorrectCount, v))
}

// MasteryScore applies equality check predicate on the "mastery_score" field. It's identical to MasteryScoreEQ.
func MasteryScore(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldMasteryScore, v))
}

// FsrsStability applies equality check predicate on the "fsrs_stability" field. It's identical to FsrsStabilityEQ.
func FsrsStability(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsStability, v))
}

// FsrsDifficulty applies equality check predicate on the "fsrs_difficulty" field. It's identical to FsrsDifficultyEQ.
func FsrsDifficulty(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsDifficulty, v))
}

// FsrsElapsedDays applies equality check predicate on the "fsrs_elapsed_days" field. It's identical to FsrsElapsedDaysEQ.
func FsrsElapsedDays(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsElapsedDays, v))
}

// FsrsScheduledDays applies equality check predicate on the "fsrs_scheduled_days" field. It's identical to FsrsScheduledDaysEQ.
func FsrsScheduledDays(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsScheduledDays, v))
}

// FsrsReps applies equality check predicate on the "fsrs_reps" field. It's identical to FsrsRepsEQ.
func FsrsReps(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsReps, v))
}

// FsrsLapses applies equality check predicate on the "fsrs_lapses" field. It's identical to FsrsLapsesEQ.
func FsrsLapses(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsLapses, v))
}

// FsrsState applies equality check predicate on the "fsrs_state" field. It's identical to FsrsStateEQ.
func FsrsState(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsState, v))
}

// Due applies equality check predicate on the "due" field. It's identical to DueEQ.
func Due(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldDue, v))
}

// LastPracticed applies equality check predicate on the "last_practiced" field. It's identical to LastPracticedEQ.
func LastPracticed(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldLastPracticed, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldVersion, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContainsFold(FieldCourseID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContainsFold(FieldConceptID, v))
}

// PracticeCountEQ applies the EQ predicate on the "practice_count" field.
func PracticeCountEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldPracticeCount, v))
}

// PracticeCountNEQ applies the NEQ predicate on the "practice_count" field.
func PracticeCountNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldPracticeCount, v))
}

// PracticeCountIn applies the In predicate on the "practice_count" field.
func PracticeCountIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldPracticeCount, vs...))
}

// PracticeCountNotIn applies the NotIn predicate on the "practice_count" field.
func PracticeCountNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldPracticeCount, vs...))
}

// PracticeCountGT applies the GT predicate on the "practice_count" field.
func PracticeCountGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldPracticeCount, v))
}

// PracticeCountGTE applies the GTE predicate on the "practice_count" field.
func PracticeCountGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldPracticeCount, v))
}

// PracticeCountLT applies the LT predicate on the "practice_count" field.
func PracticeCountLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldPracticeCount, v))
}

// PracticeCountLTE applies the LTE predicate on the "practice_count" field.
func PracticeCountLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldPracticeCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldCorrectCount, v))
}

// RecentResultsIsNil applies the IsNil predicate on the "recent_results" field.
func RecentResultsIsNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIsNull(FieldRecentResults))
}

// RecentResultsNotNil applies the NotNil predicate on the "recent_results" field.
func RecentResultsNotNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotNull(FieldRecentResults))
}

// MasteryScoreEQ applies the EQ predicate on the "mastery_score" field.
func MasteryScoreEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldMasteryScore, v))
}

// MasteryScoreNEQ applies the NEQ predicate on the "mastery_score" field.
func MasteryScoreNEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldMasteryScore, v))
}

// MasteryScoreIn applies the In predicate on the "mastery_score" field.
func MasteryScoreIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldMasteryScore, vs...))
}

// MasteryScoreNotIn applies the NotIn predicate on the "mastery_score" field.
func MasteryScoreNotIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldMasteryScore, vs...))
}

// MasteryScoreGT applies the GT predicate on the "mastery_score" field.
func MasteryScoreGT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldMasteryScore, v))
}

// MasteryScoreGTE applies the GTE predicate on the "mastery_score" field.
func MasteryScoreGTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldMasteryScore, v))
}

// MasteryScoreLT applies the LT predicate on the "mastery_score" field.
func MasteryScoreLT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldMasteryScore, v))
}

// MasteryScoreLTE applies the LTE predicate on the "mastery_score" field.
func MasteryScoreLTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldMasteryScore, v))
}

// FsrsStabilityEQ applies the EQ predicate on the "fsrs_stability" field.
func FsrsStabilityEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsStability, v))
}

// FsrsStabilityNEQ applies the NEQ predicate on the "fsrs_stability" field.
func FsrsStabilityNEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldFsrsStability, v))
}

// FsrsStabilityIn applies the In predicate on the "fsrs_stability" field.
func FsrsStabilityIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldFsrsStability, vs...))
}

// FsrsStabilityNotIn applies the NotIn predicate on the "fsrs_stability" field.
func FsrsStabilityNotIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldFsrsStability, vs...))
}

// FsrsStabilityGT applies the GT predicate on the "fsrs_stability" field.
func FsrsStabilityGT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldFsrsStability, v))
}

// FsrsStabilityGTE applies the GTE predicate on the "fsrs_stability" field.
func FsrsStabilityGTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldFsrsStability, v))
}

// FsrsStabilityLT applies the LT predicate on the "fsrs_stability" field.
func FsrsStabilityLT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldFsrsStability, v))
}

// FsrsStabilityLTE applies the LTE predicate on the "fsrs_stability" field.
func FsrsStabilityLTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldFsrsStability, v))
}

// FsrsDifficultyEQ applies the EQ predicate on the "fsrs_difficulty" field.
func FsrsDifficultyEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsDifficulty, v))
}

// FsrsDifficultyNEQ applies the NEQ predicate on the "fsrs_difficulty" field.
func FsrsDifficultyNEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldFsrsDifficulty, v))
}

// FsrsDifficultyIn applies the In predicate on the "fsrs_difficulty" field.
func FsrsDifficultyIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldFsrsDifficulty, vs...))
}

// FsrsDifficultyNotIn applies the NotIn predicate on the "fsrs_difficulty" field.
func FsrsDifficultyNotIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldFsrsDifficulty, vs...))
}

// FsrsDifficultyGT applies the GT predicate on the "fsrs_difficulty" field.
func FsrsDifficultyGT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldFsrsDifficulty, v))
}

// FsrsDifficultyGTE applies the GTE predicate on the "fsrs_difficulty" field.
func FsrsDifficultyGTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldFsrsDifficulty, v))
}

// FsrsDifficultyLT applies the LT predicate on the "fsrs_difficulty" field.
func FsrsDifficultyLT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldFsrsDifficulty, v))
}

// FsrsDifficultyLTE applies the LTE predicate on the "fsrs_difficulty" field.
func FsrsDifficultyLTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldFsrsDifficulty, v))
}

// FsrsElapsedDaysEQ applies the EQ predicate on the "fsrs_elapsed_days" field.
func FsrsElapsedDaysEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsElapsedDays, v))
}

// FsrsElapsedDaysNEQ applies the NEQ predicate on the "fsrs_elapsed_days" field.
func FsrsElapsedDaysNEQ(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldFsrsElapsedDays, v))
}

// FsrsElapsedDaysIn applies the In predicate on the "fsrs_elapsed_days" field.
func FsrsElapsedDaysIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldFsrsElapsedDays, vs...))
}

// FsrsElapsedDaysNotIn applies the NotIn predicate on the "fsrs_elapsed_days" field.
func FsrsElapsedDaysNotIn(vs ...float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldFsrsElapsedDays, vs...))
}

// FsrsElapsedDaysGT applies the GT predicate on the "fsrs_elapsed_days" field.
func FsrsElapsedDaysGT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldFsrsElapsedDays, v))
}

// FsrsElapsedDaysGTE applies the GTE predicate on the "fsrs_elapsed_days" field.
func FsrsElapsedDaysGTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldFsrsElapsedDays, v))
}

// FsrsElapsedDaysLT applies the LT predicate on the "fsrs_elapsed_days" field.
func FsrsElapsedDaysLT(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldFsrsElapsedDays, v))
}

// FsrsElapsedDaysLTE applies the LTE predicate on the "fsrs_elapsed_days" field.
func FsrsElapsedDaysLTE(v float64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldFsrsElapsedDays, v))
}

// FsrsScheduledDaysEQ applies the EQ predicate on the "fsrs_scheduled_days" field.
func FsrsScheduledDaysEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsScheduledDays, v))
}

// FsrsScheduledDaysNEQ applies the NEQ predicate on the "fsrs_scheduled_days" field.
func FsrsScheduledDaysNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldFsrsScheduledDays, v))
}

// FsrsScheduledDaysIn applies the In predicate on the "fsrs_scheduled_days" field.
func FsrsScheduledDaysIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldFsrsScheduledDays, vs...))
}

// FsrsScheduledDaysNotIn applies the NotIn predicate on the "fsrs_scheduled_days" field.
func FsrsScheduledDaysNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldFsrsScheduledDays, vs...))
}

// FsrsScheduledDaysGT applies the GT predicate on the "fsrs_scheduled_days" field.
func FsrsScheduledDaysGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldFsrsScheduledDays, v))
}

// FsrsScheduledDaysGTE applies the GTE predicate on the "fsrs_scheduled_days" field.
func FsrsScheduledDaysGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldFsrsScheduledDays, v))
}

// FsrsScheduledDaysLT applies the LT predicate on the "fsrs_scheduled_days" field.
func FsrsScheduledDaysLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldFsrsScheduledDays, v))
}

// FsrsScheduledDaysLTE applies the LTE predicate on the "fsrs_scheduled_days" field.
func FsrsScheduledDaysLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldFsrsScheduledDays, v))
}

// FsrsRepsEQ applies the EQ predicate on the "fsrs_reps" field.
func FsrsRepsEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsReps, v))
}

// FsrsRepsNEQ applies the NEQ predicate on the "fsrs_reps" field.
func FsrsRepsNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldFsrsReps, v))
}

// FsrsRepsIn applies the In predicate on the "fsrs_reps" field.
func FsrsRepsIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldFsrsReps, vs...))
}

// FsrsRepsNotIn applies the NotIn predicate on the "fsrs_reps" field.
func FsrsRepsNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldFsrsReps, vs...))
}

// FsrsRepsGT applies the GT predicate on the "fsrs_reps" field.
func FsrsRepsGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldFsrsReps, v))
}

// FsrsRepsGTE applies the GTE predicate on the "fsrs_reps" field.
func FsrsRepsGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldFsrsReps, v))
}

// FsrsRepsLT applies the LT predicate on the "fsrs_reps" field.
func FsrsRepsLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldFsrsReps, v))
}

// FsrsRepsLTE applies the LTE predicate on the "fsrs_reps" field.
func FsrsRepsLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldFsrsReps, v))
}

// FsrsLapsesEQ applies the EQ predicate on the "fsrs_lapses" field.
func FsrsLapsesEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsLapses, v))
}

// FsrsLapsesNEQ applies the NEQ predicate on the "fsrs_lapses" field.
func FsrsLapsesNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldFsrsLapses, v))
}

// FsrsLapsesIn applies the In predicate on the "fsrs_lapses" field.
func FsrsLapsesIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldFsrsLapses, vs...))
}

// FsrsLapsesNotIn applies the NotIn predicate on the "fsrs_lapses" field.
func FsrsLapsesNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldFsrsLapses, vs...))
}

// FsrsLapsesGT applies the GT predicate on the "fsrs_lapses" field.
func FsrsLapsesGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldFsrsLapses, v))
}

// FsrsLapsesGTE applies the GTE predicate on the "fsrs_lapses" field.
func FsrsLapsesGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldFsrsLapses, v))
}

// FsrsLapsesLT applies the LT predicate on the "fsrs_lapses" field.
func FsrsLapsesLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldFsrsLapses, v))
}

// FsrsLapsesLTE applies the LTE predicate on the "fsrs_lapses" field.
func FsrsLapsesLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldFsrsLapses, v))
}

// FsrsStateEQ applies the EQ predicate on the "fsrs_state" field.
func FsrsStateEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldFsrsState, v))
}

// FsrsStateNEQ applies the NEQ predicate on the "fsrs_state" field.
func FsrsStateNEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldFsrsState, v))
}

// FsrsStateIn applies the In predicate on the "fsrs_state" field.
func FsrsStateIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldFsrsState, vs...))
}

// FsrsStateNotIn applies the NotIn predicate on the "fsrs_state" field.
func FsrsStateNotIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldFsrsState, vs...))
}

// FsrsStateGT applies the GT predicate on the "fsrs_state" field.
func FsrsStateGT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldFsrsState, v))
}

// FsrsStateGTE applies the GTE predicate on the "fsrs_state" field.
func FsrsStateGTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldFsrsState, v))
}

// FsrsStateLT applies the LT predicate on the "fsrs_state" field.
func FsrsStateLT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldFsrsState, v))
}

// FsrsStateLTE applies the LTE predicate on the "fsrs_state" field.
func FsrsStateLTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldFsrsState, v))
}

// FsrsStateContains applies the Contains predicate on the "fsrs_state" field.
func FsrsStateContains(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContains(FieldFsrsState, v))
}

// FsrsStateHasPrefix applies the HasPrefix predicate on the "fsrs_state" field.
func FsrsStateHasPrefix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasPrefix(FieldFsrsState, v))
}

// FsrsStateHasSuffix applies the HasSuffix predicate on the "fsrs_state" field.
func FsrsStateHasSuffix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasSuffix(FieldFsrsState, v))
}

// FsrsStateEqualFold applies the EqualFold predicate on the "fsrs_state" field.
func FsrsStateEqualFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEqualFold(FieldFsrsState, v))
}

// FsrsStateContainsFold applies the ContainsFold predicate on the "fsrs_state" field.
func FsrsStateContainsFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContainsFold(FieldFsrsState, v))
}

// DueEQ applies the EQ predicate on the "due" field.
func DueEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldDue, v))
}

// DueNEQ applies the NEQ predicate on the "due" field.
func DueNEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldDue, v))
}

// DueIn applies the In predicate on the "due" field.
func DueIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldDue, vs...))
}

// DueNotIn applies the NotIn predicate on the "due" field.
func DueNotIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldDue, vs...))
}

// DueGT applies the GT predicate on the "due" field.
func DueGT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldDue, v))
}

// DueGTE applies the GTE predicate on the "due" field.
func DueGTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldDue, v))
}

// DueLT applies the LT predicate on the "due" field.
func DueLT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldDue, v))
}

// DueLTE applies the LTE predicate on the "due" field.
func DueLTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldDue, v))
}

// DueIsNil applies the IsNil predicate on the "due" field.
func DueIsNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIsNull(FieldDue))
}

// DueNotNil applies the NotNil predicate on the "due" field.
func DueNotNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotNull(FieldDue))
}

// LastPracticedEQ applies the EQ predicate on the "last_practiced" field.
func LastPracticedEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldLastPracticed, v))
}

// LastPracticedNEQ applies the NEQ predicate on the "last_practiced" field.
func LastPracticedNEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldLastPracticed, v))
}

// LastPracticedIn applies the In predicate on the "last_practiced" field.
func LastPracticedIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldLastPracticed, vs...))
}

// LastPracticedNotIn applies the NotIn predicate on the "last_practiced" field.
func LastPracticedNotIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldLastPracticed, vs...))
}

// LastPracticedGT applies the GT predicate on the "last_practiced" field.
func LastPracticedGT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldLastPracticed, v))
}

// LastPracticedGTE applies the GTE predicate on the "last_practiced" field.
func LastPracticedGTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldLastPracticed, v))
}

// LastPracticedLT applies the LT predicate on the "last_practiced" field.
func LastPracticedLT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldLastPracticed, v))
}

// LastPracticedLTE applies the LTE predicate on the "last_practiced" field.
func LastPracticedLTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldLastPracticed, v))
}

// LastPracticedIsNil applies the IsNil predicate on the "last_practiced" field.
func LastPracticedIsNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIsNull(FieldLastPracticed))
}

// LastPracticedNotNil applies the NotNil predicate on the "last_practiced" field.
func LastPracticedNotNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotNull(FieldLastPracticed))
}

// ErrorHistoryIsNil applies the IsNil predicate on the "error_history" field.
func ErrorHistoryIsNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIsNull(FieldErrorHistory))
}

// ErrorHistoryNotNil applies the NotNil predicate on the "error_history" field.
func ErrorHistoryNotNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotNull(FieldErrorHistory))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldVersion, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.NotPredicates(p))
}
