// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorkit/tutorkit/ent/schema"
	"github.com/tutorkit/tutorkit/ent/sessionlog"
)

// SessionLog is the model entity for the SessionLog schema.
type SessionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the append
	Timestamp time.Time `json:"timestamp,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// UUID grouping events in a session
	SessionID string `json:"session_id,omitempty"`
	// study or quiz
	SessionType string `json:"session_type,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt time.Time `json:"ended_at,omitempty"`
	// Concepts touched, in first-touch order
	ConceptIds []string `json:"concept_ids,omitempty"`
	// Exercise identifiers produced during the session
	Exercises []string `json:"exercises,omitempty"`
	// Score holds the value of the "score" field.
	Score *schema.ScoreSummary `json:"score,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary      string `json:"summary,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionlog.FieldConceptIds, sessionlog.FieldExercises, sessionlog.FieldScore:
			values[i] = new([]byte)
		case sessionlog.FieldID, sessionlog.FieldSequence:
			values[i] = new(sql.NullInt64)
		case sessionlog.FieldCourseID, sessionlog.FieldSessionID, sessionlog.FieldSessionType, sessionlog.FieldSummary:
			values[i] = new(sql.NullString)
		case sessionlog.FieldTimestamp, sessionlog.FieldStartedAt, sessionlog.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionLog fields.
func (_m *SessionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionlog.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionlog.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionlog.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case sessionlog.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionlog.FieldSessionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_type", values[i])
			} else if value.Valid {
				_m.SessionType = value.String
			}
		case sessionlog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case sessionlog.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = value.Time
			}
		case sessionlog.FieldConceptIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field concept_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConceptIds); err != nil {
					return fmt.Errorf("unmarshal field concept_ids: %w", err)
				}
			}
		case sessionlog.FieldExercises:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exercises", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Exercises); err != nil {
					return fmt.Errorf("unmarshal field exercises: %w", err)
				}
			}
		case sessionlog.FieldScore:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Score); err != nil {
					return fmt.Errorf("unmarshal field score: %w", err)
				}
			}
		case sessionlog.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionLog.
// This includes values selected through modifiers, order, etc.
func (_m *SessionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionLog.
// Note that you need to call SessionLog.Unwrap() before calling this method if this SessionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionLog) Update() *SessionLogUpdateOne {
	return NewSessionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionLog) Unwrap() *SessionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionLog) String() string {
	var builder strings.Builder
	builder.WriteString("SessionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("session_type=")
	builder.WriteString(_m.SessionType)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("ended_at=")
	builder.WriteString(_m.EndedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("concept_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConceptIds))
	builder.WriteString(", ")
	builder.WriteString("exercises=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exercises))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteByte(')')
	return builder.String()
}

// SessionLogs is a parsable slice of SessionLog.
type SessionLogs []*SessionLog
