// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tutorkit/tutorkit/ent/concept"
	"github.com/tutorkit/tutorkit/ent/course"
	"github.com/tutorkit/tutorkit/ent/progressrecord"
	"github.com/tutorkit/tutorkit/ent/reviewevent"
	"github.com/tutorkit/tutorkit/ent/schema"
	"github.com/tutorkit/tutorkit/ent/sessionlog"
	"github.com/tutorkit/tutorkit/ent/transitionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conceptFields := schema.Concept{}.Fields()
	_ = conceptFields
	// conceptDescCourseID is the schema descriptor for course_id field.
	conceptDescCourseID := conceptFields[0].Descriptor()
	// concept.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	concept.CourseIDValidator = conceptDescCourseID.Validators[0].(func(string) error)
	// conceptDescConceptID is the schema descriptor for concept_id field.
	conceptDescConceptID := conceptFields[1].Descriptor()
	// concept.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	concept.ConceptIDValidator = conceptDescConceptID.Validators[0].(func(string) error)
	// conceptDescUnitID is the schema descriptor for unit_id field.
	conceptDescUnitID := conceptFields[2].Descriptor()
	// concept.UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	concept.UnitIDValidator = conceptDescUnitID.Validators[0].(func(string) error)
	// conceptDescName is the schema descriptor for name field.
	conceptDescName := conceptFields[3].Descriptor()
	// concept.NameValidator is a validator for the "name" field. It is called by the builders before save.
	concept.NameValidator = conceptDescName.Validators[0].(func(string) error)
	// conceptDescBloomLevel is the schema descriptor for bloom_level field.
	conceptDescBloomLevel := conceptFields[4].Descriptor()
	// concept.DefaultBloomLevel holds the default value on creation for the bloom_level field.
	concept.DefaultBloomLevel = conceptDescBloomLevel.Default.(string)
	// conceptDescStatus is the schema descriptor for status field.
	conceptDescStatus := conceptFields[5].Descriptor()
	// concept.DefaultStatus holds the default value on creation for the status field.
	concept.DefaultStatus = conceptDescStatus.Default.(string)
	// conceptDescDifficulty is the schema descriptor for difficulty field.
	conceptDescDifficulty := conceptFields[7].Descriptor()
	// concept.DefaultDifficulty holds the default value on creation for the difficulty field.
	concept.DefaultDifficulty = conceptDescDifficulty.Default.(float64)
	// conceptDescBloomTarget is the schema descriptor for bloom_target field.
	conceptDescBloomTarget := conceptFields[8].Descriptor()
	// concept.DefaultBloomTarget holds the default value on creation for the bloom_target field.
	concept.DefaultBloomTarget = conceptDescBloomTarget.Default.(string)
	courseFields := schema.Course{}.Fields()
	_ = courseFields
	// courseDescName is the schema descriptor for name field.
	courseDescName := courseFields[1].Descriptor()
	// course.NameValidator is a validator for the "name" field. It is called by the builders before save.
	course.NameValidator = courseDescName.Validators[0].(func(string) error)
	// courseDescCreatedAt is the schema descriptor for created_at field.
	courseDescCreatedAt := courseFields[3].Descriptor()
	// course.DefaultCreatedAt holds the default value on creation for the created_at field.
	course.DefaultCreatedAt = courseDescCreatedAt.Default.(func() time.Time)
	// courseDescID is the schema descriptor for id field.
	courseDescID := courseFields[0].Descriptor()
	// course.IDValidator is a validator for the "id" field. It is called by the builders before save.
	course.IDValidator = courseDescID.Validators[0].(func(string) error)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescCourseID is the schema descriptor for course_id field.
	progressrecordDescCourseID := progressrecordFields[0].Descriptor()
	// progressrecord.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	progressrecord.CourseIDValidator = progressrecordDescCourseID.Validators[0].(func(string) error)
	// progressrecordDescConceptID is the schema descriptor for concept_id field.
	progressrecordDescConceptID := progressrecordFields[1].Descriptor()
	// progressrecord.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	progressrecord.ConceptIDValidator = progressrecordDescConceptID.Validators[0].(func(string) error)
	// progressrecordDescPracticeCount is the schema descriptor for practice_count field.
	progressrecordDescPracticeCount := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultPracticeCount holds the default value on creation for the practice_count field.
	progressrecord.DefaultPracticeCount = progressrecordDescPracticeCount.Default.(int)
	// progressrecord.PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	progressrecord.PracticeCountValidator = progressrecordDescPracticeCount.Validators[0].(func(int) error)
	// progressrecordDescCorrectCount is the schema descriptor for correct_count field.
	progressrecordDescCorrectCount := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultCorrectCount holds the default value on creation for the correct_count field.
	progressrecord.DefaultCorrectCount = progressrecordDescCorrectCount.Default.(int)
	// progressrecord.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	progressrecord.CorrectCountValidator = progressrecordDescCorrectCount.Validators[0].(func(int) error)
	// progressrecordDescMasteryScore is the schema descriptor for mastery_score field.
	progressrecordDescMasteryScore := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	progressrecord.DefaultMasteryScore = progressrecordDescMasteryScore.Default.(float64)
	// progressrecordDescFsrsStability is the schema descriptor for fsrs_stability field.
	progressrecordDescFsrsStability := progressrecordFields[6].Descriptor()
	// progressrecord.DefaultFsrsStability holds the default value on creation for the fsrs_stability field.
	progressrecord.DefaultFsrsStability = progressrecordDescFsrsStability.Default.(float64)
	// progressrecordDescFsrsDifficulty is the schema descriptor for fsrs_difficulty field.
	progressrecordDescFsrsDifficulty := progressrecordFields[7].Descriptor()
	// progressrecord.DefaultFsrsDifficulty holds the default value on creation for the fsrs_difficulty field.
	progressrecord.DefaultFsrsDifficulty = progressrecordDescFsrsDifficulty.Default.(float64)
	// progressrecordDescFsrsElapsedDays is the schema descriptor for fsrs_elapsed_days field.
	progressrecordDescFsrsElapsedDays := progressrecordFields[8].Descriptor()
	// progressrecord.DefaultFsrsElapsedDays holds the default value on creation for the fsrs_elapsed_days field.
	progressrecord.DefaultFsrsElapsedDays = progressrecordDescFsrsElapsedDays.Default.(float64)
	// progressrecordDescFsrsScheduledDays is the schema descriptor for fsrs_scheduled_days field.
	progressrecordDescFsrsScheduledDays := progressrecordFields[9].Descriptor()
	// progressrecord.DefaultFsrsScheduledDays holds the default value on creation for the fsrs_scheduled_days field.
	progressrecord.DefaultFsrsScheduledDays = progressrecordDescFsrsScheduledDays.Default.(int)
	// progressrecord.FsrsScheduledDaysValidator is a validator for the "fsrs_scheduled_days" field. It is called by the builders before save.
	progressrecord.FsrsScheduledDaysValidator = progressrecordDescFsrsScheduledDays.Validators[0].(func(int) error)
	// progressrecordDescFsrsReps is the schema descriptor for fsrs_reps field.
	progressrecordDescFsrsReps := progressrecordFields[10].Descriptor()
	// progressrecord.DefaultFsrsReps holds the default value on creation for the fsrs_reps field.
	progressrecord.DefaultFsrsReps = progressrecordDescFsrsReps.Default.(int)
	// progressrecord.FsrsRepsValidator is a validator for the "fsrs_reps" field. It is called by the builders before save.
	progressrecord.FsrsRepsValidator = progressrecordDescFsrsReps.Validators[0].(func(int) error)
	// progressrecordDescFsrsLapses is the schema descriptor for fsrs_lapses field.
	progressrecordDescFsrsLapses := progressrecordFields[11].Descriptor()
	// progressrecord.DefaultFsrsLapses holds the default value on creation for the fsrs_lapses field.
	progressrecord.DefaultFsrsLapses = progressrecordDescFsrsLapses.Default.(int)
	// progressrecord.FsrsLapsesValidator is a validator for the "fsrs_lapses" field. It is called by the builders before save.
	progressrecord.FsrsLapsesValidator = progressrecordDescFsrsLapses.Validators[0].(func(int) error)
	// progressrecordDescFsrsState is the schema descriptor for fsrs_state field.
	progressrecordDescFsrsState := progressrecordFields[12].Descriptor()
	// progressrecord.DefaultFsrsState holds the default value on creation for the fsrs_state field.
	progressrecord.DefaultFsrsState = progressrecordDescFsrsState.Default.(string)
	// progressrecordDescVersion is the schema descriptor for version field.
	progressrecordDescVersion := progressrecordFields[16].Descriptor()
	// progressrecord.DefaultVersion holds the default value on creation for the version field.
	progressrecord.DefaultVersion = progressrecordDescVersion.Default.(int64)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescCourseID is the schema descriptor for course_id field.
	revieweventDescCourseID := revieweventFields[0].Descriptor()
	// reviewevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	reviewevent.CourseIDValidator = revieweventDescCourseID.Validators[0].(func(string) error)
	// revieweventDescConceptID is the schema descriptor for concept_id field.
	revieweventDescConceptID := revieweventFields[1].Descriptor()
	// reviewevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	reviewevent.ConceptIDValidator = revieweventDescConceptID.Validators[0].(func(string) error)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[2].Descriptor()
	// reviewevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	reviewevent.RatingValidator = revieweventDescRating.Validators[0].(func(int) error)
	// revieweventDescIntervalDays is the schema descriptor for interval_days field.
	revieweventDescIntervalDays := revieweventFields[6].Descriptor()
	// reviewevent.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewevent.IntervalDaysValidator = revieweventDescIntervalDays.Validators[0].(func(int) error)
	sessionlogMixin := schema.SessionLog{}.Mixin()
	sessionlogMixinFields0 := sessionlogMixin[0].Fields()
	_ = sessionlogMixinFields0
	sessionlogFields := schema.SessionLog{}.Fields()
	_ = sessionlogFields
	// sessionlogDescTimestamp is the schema descriptor for timestamp field.
	sessionlogDescTimestamp := sessionlogMixinFields0[1].Descriptor()
	// sessionlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionlog.DefaultTimestamp = sessionlogDescTimestamp.Default.(func() time.Time)
	// sessionlogDescCourseID is the schema descriptor for course_id field.
	sessionlogDescCourseID := sessionlogFields[0].Descriptor()
	// sessionlog.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	sessionlog.CourseIDValidator = sessionlogDescCourseID.Validators[0].(func(string) error)
	// sessionlogDescSessionID is the schema descriptor for session_id field.
	sessionlogDescSessionID := sessionlogFields[1].Descriptor()
	// sessionlog.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionlog.SessionIDValidator = sessionlogDescSessionID.Validators[0].(func(string) error)
	// sessionlogDescSessionType is the schema descriptor for session_type field.
	sessionlogDescSessionType := sessionlogFields[2].Descriptor()
	// sessionlog.SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	sessionlog.SessionTypeValidator = sessionlogDescSessionType.Validators[0].(func(string) error)
	transitioneventMixin := schema.TransitionEvent{}.Mixin()
	transitioneventMixinFields0 := transitioneventMixin[0].Fields()
	_ = transitioneventMixinFields0
	transitioneventFields := schema.TransitionEvent{}.Fields()
	_ = transitioneventFields
	// transitioneventDescTimestamp is the schema descriptor for timestamp field.
	transitioneventDescTimestamp := transitioneventMixinFields0[1].Descriptor()
	// transitionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	transitionevent.DefaultTimestamp = transitioneventDescTimestamp.Default.(func() time.Time)
	// transitioneventDescCourseID is the schema descriptor for course_id field.
	transitioneventDescCourseID := transitioneventFields[0].Descriptor()
	// transitionevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	transitionevent.CourseIDValidator = transitioneventDescCourseID.Validators[0].(func(string) error)
	// transitioneventDescConceptID is the schema descriptor for concept_id field.
	transitioneventDescConceptID := transitioneventFields[1].Descriptor()
	// transitionevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	transitionevent.ConceptIDValidator = transitioneventDescConceptID.Validators[0].(func(string) error)
	// transitioneventDescFromStatus is the schema descriptor for from_status field.
	transitioneventDescFromStatus := transitioneventFields[2].Descriptor()
	// transitionevent.FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	transitionevent.FromStatusValidator = transitioneventDescFromStatus.Validators[0].(func(string) error)
	// transitioneventDescToStatus is the schema descriptor for to_status field.
	transitioneventDescToStatus := transitioneventFields[3].Descriptor()
	// transitionevent.ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	transitionevent.ToStatusValidator = transitioneventDescToStatus.Validators[0].(func(string) error)
	// transitioneventDescTrigger is the schema descriptor for trigger field.
	transitioneventDescTrigger := transitioneventFields[4].Descriptor()
	// transitionevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	transitionevent.TriggerValidator = transitioneventDescTrigger.Validators[0].(func(string) error)
}
