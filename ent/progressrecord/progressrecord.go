// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressrecord type in the database.
	Label = "progress_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldPracticeCount holds the string denoting the practice_count field in the database.
	FieldPracticeCount = "practice_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldRecentResults holds the string denoting the recent_results field in the database.
	FieldRecentResults = "recent_results"
	// FieldMasteryScore holds the string denoting the mastery_score field in the database.
	FieldMasteryScore = "mastery_score"
	// FieldFsrsStability holds the string denoting the fsrs_stability field in the database.
	FieldFsrsStability = "fsrs_stability"
	// FieldFsrsDifficulty holds the string denoting the fsrs_difficulty field in the database.
	FieldFsrsDifficulty = "fsrs_difficulty"
	// FieldFsrsElapsedDays holds the string denoting the fsrs_elapsed_days field in the database.
	FieldFsrsElapsedDays = "fsrs_elapsed_days"
	// FieldFsrsScheduledDays holds the string denoting the fsrs_scheduled_days field in the database.
	FieldFsrsScheduledDays = "fsrs_scheduled_days"
	// FieldFsrsReps holds the string denoting the fsrs_reps field in the database.
	FieldFsrsReps = "fsrs_reps"
	// FieldFsrsLapses holds the string denoting the fsrs_lapses field in the database.
	FieldFsrsLapses = "fsrs_lapses"
	// FieldFsrsState holds the string denoting the fsrs_state field in the database.
	FieldFsrsState = "fsrs_state"
	// FieldDue holds the string denoting the due field in the database.
	FieldDue = "due"
	// FieldLastPracticed holds the string denoting the last_practiced field in the database.
	FieldLastPracticed = "last_practiced"
	// FieldErrorHistory holds the string denoting the error_history field in the database.
	FieldErrorHistory = "error_history"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// Table holds the table name of the progressrecord in the database.
	Table = "progress_records"
)

// Columns holds all SQL columns for progressrecord fields.
var Columns = []string{
	FieldID,
	FieldCourseID,
	FieldConceptID,
	FieldPracticeCount,
	FieldCorrectCount,
	FieldRecentResults,
	FieldMasteryScore,
	FieldFsrsStability,
	FieldFsrsDifficulty,
	FieldFsrsElapsedDays,
	FieldFsrsScheduledDays,
	FieldFsrsReps,
	FieldFsrsLapses,
	FieldFsrsState,
	FieldDue,
	FieldLastPracticed,
	FieldErrorHistory,
	FieldVersion,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	CourseIDValidator func(string) error
	// ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	ConceptIDValidator func(string) error
	// DefaultPracticeCount holds the default value on creation for the "practice_count" field.
	DefaultPracticeCount int
	// PracticeCountValidator is a validator for the "practice_count" field. It is called by the builders before save.
	PracticeCountValidator func(int) error
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	CorrectCountValidator func(int) error
	// DefaultMasteryScore holds the default value on creation for the "mastery_score" field.
	DefaultMasteryScore float64
	// DefaultFsrsStability holds the default value on creation for the "fsrs_stability" field.
	DefaultFsrsStability float64
	// DefaultFsrsDifficulty holds the default value on creation for the "fsrs_difficulty" field.
	DefaultFsrsDifficulty float64
	// DefaultFsrsElapsedDays holds the default value on creation for the "fsrs_elapsed_days" field.
	DefaultFsrsElapsedDays float64
	// DefaultFsrsScheduledDays holds the default value on creation for the "fsrs_scheduled_days" field.
	DefaultFsrsScheduledDays int
	// FsrsScheduledDaysValidator is a validator for the "fsrs_scheduled_days" field. It is called by the builders before save.
	FsrsScheduledDaysValidator func(int) error
	// DefaultFsrsReps holds the default value on creation for the "fsrs_reps" field.
	DefaultFsrsReps int
	// FsrsRepsValidator is a validator for the "fsrs_reps" field. It is called by the builders before save.
	FsrsRepsValidator func(int) error
	// DefaultFsrsLapses holds the default value on creation for the "fsrs_lapses" field.
	DefaultFsrsLapses int
	// FsrsLapsesValidator is a validator for the "fsrs_lapses" field. It is called by the builders before save.
	FsrsLapsesValidator func(int) error
	// DefaultFsrsState holds the default value on creation for the "fsrs_state" field.
	DefaultFsrsState string
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
)

// OrderOption defines the ordering options for the ProgressRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByConceptID orders the results by the concept_id field.
func ByConceptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptID, opts...).ToFunc()
}

// ByPracticeCount orders the results by the practice_count field.
func ByPracticeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPracticeCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByMasteryScore orders the results by the mastery_score field.
func ByMasteryScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryScore, opts...).ToFunc()
}

// ByFsrsStability orders the results by the fsrs_stability field.
func ByFsrsStability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFsrsStability, opts...).ToFunc()
}

// ByFsrsDifficulty orders the results by the fsrs_difficulty field.
func ByFsrsDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFsrsDifficulty, opts...).ToFunc()
}

// ByFsrsElapsedDays orders the results by the fsrs_elapsed_days field.
func ByFsrsElapsedDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFsrsElapsedDays, opts...).ToFunc()
}

// ByFsrsScheduledDays orders the results by the fsrs_scheduled_days field.
func ByFsrsScheduledDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFsrsScheduledDays, opts...).ToFunc()
}

// ByFsrsReps orders the results by the fsrs_reps field.
func ByFsrsReps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFsrsReps, opts...).ToFunc()
}

// ByFsrsLapses orders the results by the fsrs_lapses field.
func ByFsrsLapses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFsrsLapses, opts...).ToFunc()
}

// ByFsrsState orders the results by the fsrs_state field.
func ByFsrsState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFsrsState, opts...).ToFunc()
}

// ByDue orders the results by the due field.
func ByDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDue, opts...).ToFunc()
}

// ByLastPracticed orders the results by the last_practiced field.
func ByLastPracticed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticed, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}
