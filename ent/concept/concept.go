// Code generated by ent, DO NOT EDIT.

package concept

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the concept type in the database.
	Label = "concept"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldConceptID holds the string denoting the concept_id field in the database.
	FieldConceptID = "concept_id"
	// FieldUnitID holds the string denoting the unit_id field in the database.
	FieldUnitID = "unit_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldBloomLevel holds the string denoting the bloom_level field in the database.
	FieldBloomLevel = "bloom_level"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPrerequisites holds the string denoting the prerequisites field in the database.
	FieldPrerequisites = "prerequisites"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldBloomTarget holds the string denoting the bloom_target field in the database.
	FieldBloomTarget = "bloom_target"
	// Table holds the table name of the concept in the database.
	Table = "concepts"
)

// Columns holds all SQL columns for concept fields.
var Columns = []string{
	FieldID,
	FieldCourseID,
	FieldConceptID,
	FieldUnitID,
	FieldName,
	FieldBloomLevel,
	FieldStatus,
	FieldPrerequisites,
	FieldDifficulty,
	FieldBloomTarget,
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
	// UnitIDValidator is a validator for the "unit_id" field. It is called by the builders before save.
	UnitIDValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultBloomLevel holds the default value on creation for the "bloom_level" field.
	DefaultBloomLevel string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty float64
	// DefaultBloomTarget holds the default value on creation for the "bloom_target" field.
	DefaultBloomTarget string
)

// OrderOption defines the ordering options for the Concept queries.
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

// ByUnitID orders the results by the unit_id field.
func ByUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByBloomLevel orders the results by the bloom_level field.
func ByBloomLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloomLevel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByBloomTarget orders the results by the bloom_target field.
func ByBloomTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloomTarget, opts...).ToFunc()
}
