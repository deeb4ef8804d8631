// Code generated by ent, DO NOT EDIT.

package concept

import (
	"entgo.io/ent/dialect/sql"
	"github.com/tutorkit/tutorkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldID, id))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldCourseID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldConceptID, v))
}

// UnitID applies equality check predicate on the "unit_id" field. It's identical to UnitIDEQ.
func UnitID(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldUnitID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldName, v))
}

// BloomLevel applies equality check predicate on the "bloom_level" field. It's identical to BloomLevelEQ.
func BloomLevel(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldBloomLevel, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldStatus, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldDifficulty, v))
}

// BloomTarget applies equality check predicate on the "bloom_target" field. It's identical to BloomTargetEQ.
func BloomTarget(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldBloomTarget, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldCourseID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldConceptID, v))
}

// UnitIDEQ applies the EQ predicate on the "unit_id" field.
func UnitIDEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldUnitID, v))
}

// UnitIDNEQ applies the NEQ predicate on the "unit_id" field.
func UnitIDNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldUnitID, v))
}

// UnitIDIn applies the In predicate on the "unit_id" field.
func UnitIDIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldUnitID, vs...))
}

// UnitIDNotIn applies the NotIn predicate on the "unit_id" field.
func UnitIDNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldUnitID, vs...))
}

// UnitIDGT applies the GT predicate on the "unit_id" field.
func UnitIDGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldUnitID, v))
}

// UnitIDGTE applies the GTE predicate on the "unit_id" field.
func UnitIDGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldUnitID, v))
}

// UnitIDLT applies the LT predicate on the "unit_id" field.
func UnitIDLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldUnitID, v))
}

// UnitIDLTE applies the LTE predicate on the "unit_id" field.
func UnitIDLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldUnitID, v))
}

// UnitIDContains applies the Contains predicate on the "unit_id" field.
func UnitIDContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldUnitID, v))
}

// UnitIDHasPrefix applies the HasPrefix predicate on the "unit_id" field.
func UnitIDHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldUnitID, v))
}

// UnitIDHasSuffix applies the HasSuffix predicate on the "unit_id" field.
func UnitIDHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldUnitID, v))
}

// UnitIDEqualFold applies the EqualFold predicate on the "unit_id" field.
func UnitIDEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldUnitID, v))
}

// UnitIDContainsFold applies the ContainsFold predicate on the "unit_id" field.
func UnitIDContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldUnitID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldName, v))
}

// BloomLevelEQ applies the EQ predicate on the "bloom_level" field.
func BloomLevelEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldBloomLevel, v))
}

// BloomLevelNEQ applies the NEQ predicate on the "bloom_level" field.
func BloomLevelNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldBloomLevel, v))
}

// BloomLevelIn applies the In predicate on the "bloom_level" field.
func BloomLevelIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldBloomLevel, vs...))
}

// BloomLevelNotIn applies the NotIn predicate on the "bloom_level" field.
func BloomLevelNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldBloomLevel, vs...))
}

// BloomLevelGT applies the GT predicate on the "bloom_level" field.
func BloomLevelGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldBloomLevel, v))
}

// BloomLevelGTE applies the GTE predicate on the "bloom_level" field.
func BloomLevelGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldBloomLevel, v))
}

// BloomLevelLT applies the LT predicate on the "bloom_level" field.
func BloomLevelLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldBloomLevel, v))
}

// BloomLevelLTE applies the LTE predicate on the "bloom_level" field.
func BloomLevelLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldBloomLevel, v))
}

// BloomLevelContains applies the Contains predicate on the "bloom_level" field.
func BloomLevelContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldBloomLevel, v))
}

// BloomLevelHasPrefix applies the HasPrefix predicate on the "bloom_level" field.
func BloomLevelHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldBloomLevel, v))
}

// BloomLevelHasSuffix applies the HasSuffix predicate on the "bloom_level" field.
func BloomLevelHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldBloomLevel, v))
}

// BloomLevelEqualFold applies the EqualFold predicate on the "bloom_level" field.
func BloomLevelEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldBloomLevel, v))
}

// BloomLevelContainsFold applies the ContainsFold predicate on the "bloom_level" field.
func BloomLevelContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldBloomLevel, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldStatus, v))
}

// PrerequisitesIsNil applies the IsNil predicate on the "prerequisites" field.
func PrerequisitesIsNil() predicate.Concept {
	return predicate.Concept(sql.FieldIsNull(FieldPrerequisites))
}

// PrerequisitesNotNil applies the NotNil predicate on the "prerequisites" field.
func PrerequisitesNotNil() predicate.Concept {
	return predicate.Concept(sql.FieldNotNull(FieldPrerequisites))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldDifficulty, v))
}

// BloomTargetEQ applies the EQ predicate on the "bloom_target" field.
func BloomTargetEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEQ(FieldBloomTarget, v))
}

// BloomTargetNEQ applies the NEQ predicate on the "bloom_target" field.
func BloomTargetNEQ(v string) predicate.Concept {
	return predicate.Concept(sql.FieldNEQ(FieldBloomTarget, v))
}

// BloomTargetIn applies the In predicate on the "bloom_target" field.
func BloomTargetIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldIn(FieldBloomTarget, vs...))
}

// BloomTargetNotIn applies the NotIn predicate on the "bloom_target" field.
func BloomTargetNotIn(vs ...string) predicate.Concept {
	return predicate.Concept(sql.FieldNotIn(FieldBloomTarget, vs...))
}

// BloomTargetGT applies the GT predicate on the "bloom_target" field.
func BloomTargetGT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGT(FieldBloomTarget, v))
}

// BloomTargetGTE applies the GTE predicate on the "bloom_target" field.
func BloomTargetGTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldGTE(FieldBloomTarget, v))
}

// BloomTargetLT applies the LT predicate on the "bloom_target" field.
func BloomTargetLT(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLT(FieldBloomTarget, v))
}

// BloomTargetLTE applies the LTE predicate on the "bloom_target" field.
func BloomTargetLTE(v string) predicate.Concept {
	return predicate.Concept(sql.FieldLTE(FieldBloomTarget, v))
}

// BloomTargetContains applies the Contains predicate on the "bloom_target" field.
func BloomTargetContains(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContains(FieldBloomTarget, v))
}

// BloomTargetHasPrefix applies the HasPrefix predicate on the "bloom_target" field.
func BloomTargetHasPrefix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasPrefix(FieldBloomTarget, v))
}

// BloomTargetHasSuffix applies the HasSuffix predicate on the "bloom_target" field.
func BloomTargetHasSuffix(v string) predicate.Concept {
	return predicate.Concept(sql.FieldHasSuffix(FieldBloomTarget, v))
}

// BloomTargetEqualFold applies the EqualFold predicate on the "bloom_target" field.
func BloomTargetEqualFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldEqualFold(FieldBloomTarget, v))
}

// BloomTargetContainsFold applies the ContainsFold predicate on the "bloom_target" field.
func BloomTargetContainsFold(v string) predicate.Concept {
	return predicate.Concept(sql.FieldContainsFold(FieldBloomTarget, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Concept) predicate.Concept {
	return predicate.Concept(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Concept) predicate.Concept {
	return predicate.Concept(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Concept) predicate.Concept {
	return predicate.Concept(sql.NotPredicates(p))
}
