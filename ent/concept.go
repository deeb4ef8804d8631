// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorkit/tutorkit/ent/concept"
)

// Concept is the model entity for the Concept schema.
type Concept struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// ConceptID holds the value of the "concept_id" field.
	ConceptID string `json:"concept_id,omitempty"`
	// UnitID holds the value of the "unit_id" field.
	UnitID string `json:"unit_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// remember|understand|apply|analyze|evaluate|create
	BloomLevel string `json:"bloom_level,omitempty"`
	// new|learning|active|mastered|dropped
	Status string `json:"status,omitempty"`
	// Concept ids within the same course
	Prerequisites []string `json:"prerequisites,omitempty"`
	// Authoring-time difficulty estimate in [0,1]
	Difficulty float64 `json:"difficulty,omitempty"`
	// Bloom level the course author considers sufficient
	BloomTarget  string `json:"bloom_target,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Concept) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case concept.FieldPrerequisites:
			values[i] = new([]byte)
		case concept.FieldDifficulty:
			values[i] = new(sql.NullFloat64)
		case concept.FieldID:
			values[i] = new(sql.NullInt64)
		case concept.FieldCourseID, concept.FieldConceptID, concept.FieldUnitID, concept.FieldName, concept.FieldBloomLevel, concept.FieldStatus, concept.FieldBloomTarget:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Concept fields.
func (_m *Concept) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case concept.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case concept.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case concept.FieldConceptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field concept_id", values[i])
			} else if value.Valid {
				_m.ConceptID = value.String
			}
		case concept.FieldUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit_id", values[i])
			} else if value.Valid {
				_m.UnitID = value.String
			}
		case concept.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case concept.FieldBloomLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bloom_level", values[i])
			} else if value.Valid {
				_m.BloomLevel = value.String
			}
		case concept.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case concept.FieldPrerequisites:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prerequisites", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Prerequisites); err != nil {
					return fmt.Errorf("unmarshal field prerequisites: %w", err)
				}
			}
		case concept.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.Float64
			}
		case concept.FieldBloomTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bloom_target", values[i])
			} else if value.Valid {
				_m.BloomTarget = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Concept.
// This includes values selected through modifiers, order, etc.
func (_m *Concept) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Concept.
// Note that you need to call Concept.Unwrap() before calling this method if this Concept
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Concept) Update() *ConceptUpdateOne {
	return NewConceptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Concept entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Concept) Unwrap() *Concept {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Concept is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Concept) String() string {
	var builder strings.Builder
	builder.WriteString("Concept(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("concept_id=")
	builder.WriteString(_m.ConceptID)
	builder.WriteString(", ")
	builder.WriteString("unit_id=")
	builder.WriteString(_m.UnitID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("bloom_level=")
	builder.WriteString(_m.BloomLevel)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("prerequisites=")
	builder.WriteString(fmt.Sprintf("%v", _m.Prerequisites))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("bloom_target=")
	builder.WriteString(_m.BloomTarget)
	builder.WriteByte(')')
	return builder.String()
}

// Concepts is a parsable slice of Concept.
type Concepts []*Concept
