// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorkit/tutorkit/ent/progressrecord"
)

// ProgressRecord is the model entity for the ProgressRecord schema.
type ProgressRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// PracticeCount holds the value of the "practice_count" field.
	PracticeCount int `json:"practice_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// Ring buffer of the last 10 outcomes, oldest first
	RecentResults []bool `json:"recent_results,omitempty"`
	// Composite mastery confidence in [0,1]
	MasteryScore float64 `json:"mastery_score,omitempty"`
	// Memory stability in days
	FsrsStability float64 `json:"fsrs_stability,omitempty"`
	// FSRS difficulty, clamped to [1,10] once reviewed
	FsrsDifficulty float64 `json:"fsrs_difficulty,omitempty"`
	// FsrsElapsedDays holds the value of the "fsrs_elapsed_days" field.
	FsrsElapsedDays float64 `json:"fsrs_elapsed_days,omitempty"`
	// FsrsScheduledDays holds the value of the "fsrs_scheduled_days" field.
	FsrsScheduledDays int `json:"fsrs_scheduled_days,omitempty"`
	// FsrsReps holds the value of the "fsrs_reps" field.
	FsrsReps int `json:"fsrs_reps,omitempty"`
	// FsrsLapses holds the value of the "fsrs_lapses" field.
	FsrsLapses int `json:"fsrs_lapses,omitempty"`
	// new|learning|review|relearning
	FsrsState string `json:"fsrs_state,omitempty"`
	// Due holds the value of the "due" field.
	Due *time.Time `json:"due,omitempty"`
	// LastPracticed holds the value of the "last_practiced" field.
	LastPracticed *time.Time `json:"last_practiced,omitempty"`
	// Append-only classified errors: slip|misconception|gap
	ErrorHistory []string `json:"error_history,omitempty"`
	// Optimistic concurrency token, bumped on every update
	Version      int64 `json:"version,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressrecord.FieldRecentResults, progressrecord.FieldErrorHistory:
			values[i] = new([]byte)
		case progressrecord.FieldMasteryScore, progressrecord.FieldFsrsStability, progressrecord.FieldFsrsDifficulty, progressrecord.FieldFsrsElapsedDays:
			values[i] = new(sql.NullFloat64)
		case progressrecord.FieldID, progressrecord.FieldPracticeCount, progressrecord.FieldCorrectCount, progressrecord.FieldFsrsScheduledDays, progressrecord.FieldFsrsReps, progressrecord.FieldFsrsLapses, progressrecord.FieldVersion:
			values[i] = new(sql.NullInt64)
		case progressrecord.FieldCourseID, progressrecord.FieldConceptID, progressrecord.FieldFsrsState:
			values[i] = new(sql.NullString)
		case progressrecord.FieldDue, progressrecord.FieldLastPracticed:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressRecord fields.
func (_m *ProgressRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progressrecord.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case progressrecord.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case progressrecord.FieldPracticeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field practice_count", values[i])
			} else if value.Valid {
				_m.PracticeCount = int(value.Int64)
			}
		case progressrecord.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case progressrecord.FieldRecentResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recent_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecentResults); err != nil {
					return fmt.Errorf("unmarshal field recent_results: %w", err)
				}
			}
		case progressrecord.FieldMasteryScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_score", values[i])
			} else if value.Valid {
				_m.MasteryScore = value.Float64
			}
		case progressrecord.FieldFsrsStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fsrs_stability", values[i])
			} else if value.Valid {
				_m.FsrsStability = value.Float64
			}
		case progressrecord.FieldFsrsDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fsrs_difficulty", values[i])
			} else if value.Valid {
				_m.FsrsDifficulty = value.Float64
			}
		case progressrecord.FieldFsrsElapsedDays:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fsrs_elapsed_days", values[i])
			} else if value.Valid {
				_m.FsrsElapsedDays = value.Float64
			}
		case progressrecord.FieldFsrsScheduledDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fsrs_scheduled_days", values[i])
			} else if value.Valid {
				_m.FsrsScheduledDays = int(value.Int64)
			}
		case progressrecord.FieldFsrsReps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fsrs_reps", values[i])
			} else if value.Valid {
				_m.FsrsReps = int(value.Int64)
			}
		case progressrecord.FieldFsrsLapses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fsrs_lapses", values[i])
			} else if value.Valid {
				_m.FsrsLapses = int(value.Int64)
			}
		case progressrecord.FieldFsrsState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fsrs_state", values[i])
			} else if value.Valid {
				_m.FsrsState = value.String
			}
		case progressrecord.FieldDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due", values[i])
			} else if value.Valid {
				_m.Due = new(time.Time)
				*_m.Due = value.Time
			}
		case progressrecord.FieldLastPracticed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced", values[i])
			} else if value.Valid {
				_m.LastPracticed = new(time.Time)
				*_m.LastPracticed = value.Time
			}
		case progressrecord.FieldErrorHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ErrorHistory); err != nil {
					return fmt.Errorf("unmarshal field error_history: %w", err)
				}
			}
		case progressrecord.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ProgressRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressRecord.
// Note that you need to call ProgressRecord.Unwrap() before calling this method if this ProgressRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProgressRecord) Update() *ProgressRecordUpdateOne {
	return NewProgressRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProgressRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProgressRecord) Unwrap() *ProgressRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProgressRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("practice_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PracticeCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("recent_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecentResults))
	builder.WriteString(", ")
	builder.WriteString("mastery_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryScore))
	builder.WriteString(", ")
	builder.WriteString("fsrs_stability=")
	builder.WriteString(fmt.Sprintf("%v", _m.FsrsStability))
	builder.WriteString(", ")
	builder.WriteString("fsrs_difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.FsrsDifficulty))
	builder.WriteString(", ")
	builder.WriteString("fsrs_elapsed_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.FsrsElapsedDays))
	builder.WriteString(", ")
	builder.WriteString("fsrs_scheduled_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.FsrsScheduledDays))
	builder.WriteString(", ")
	builder.WriteString("fsrs_reps=")
	builder.WriteString(fmt.Sprintf("%v", _m.FsrsReps))
	builder.WriteString(", ")
	builder.WriteString("fsrs_lapses=")
	builder.WriteString(fmt.Sprintf("%v", _m.FsrsLapses))
	builder.WriteString(", ")
	builder.WriteString("fsrs_state=")
	builder.WriteString(_m.FsrsState)
	builder.WriteString(", ")
	if v := _m.Due; v != nil {
		builder.WriteString("due=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastPracticed; v != nil {
		builder.WriteString("last_practiced=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("error_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorHistory))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressRecords is a parsable slice of ProgressRecord.
type ProgressRecords []*ProgressRecord
