// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorkit/tutorkit/ent/concept"
	"github.com/tutorkit/tutorkit/ent/course"
	"github.com/tutorkit/tutorkit/ent/predicate"
	"github.com/tutorkit/tutorkit/ent/progressrecord"
	"github.com/tutorkit/tutorkit/ent/reviewevent"
	"github.com/tutorkit/tutorkit/ent/schema"
	"github.com/tutorkit/tutorkit/ent/sessionlog"
	"github.com/tutorkit/tutorkit/ent/transitionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConcept         = "Concept"
	TypeCourse          = "Course"
	TypeProgressRecord  = "ProgressRecord"
	TypeReviewEvent     = "ReviewEvent"
	TypeSessionLog      = "SessionLog"
	TypeTransitionEvent = "TransitionEvent"
)

// ConceptMutation represents an operation that mutates the Concept nodes in the graph.
type ConceptMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	course_id           *string
	concept_id          *string
	unit_id             *string
	name                *string
	bloom_level         *string
	status              *string
	prerequisites       *[]string
	appendprerequisites []string
	difficulty          *float64
	adddifficulty       *float64
	bloom_target        *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Concept, error)
	predicates          []predicate.Concept
}

var _ ent.Mutation = (*ConceptMutation)(nil)

// conceptOption allows management of the mutation configuration using functional options.
type conceptOption func(*ConceptMutation)

// newConceptMutation creates new mutation for the Concept entity.
func newConceptMutation(c config, op Op, opts ...conceptOption) *ConceptMutation {
	m := &ConceptMutation{
		config:        c,
		op:            op,
		typ:           TypeConcept,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConceptID sets the ID field of the mutation.
func withConceptID(id int) conceptOption {
	return func(m *ConceptMutation) {
		var (
			err   error
			once  sync.Once
			value *Concept
		)
		m.oldValue = func(ctx context.Context) (*Concept, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Concept.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConcept sets the old Concept of the mutation.
func withConcept(node *Concept) conceptOption {
	return func(m *ConceptMutation) {
		m.oldValue = func(context.Context) (*Concept, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConceptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConceptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConceptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConceptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Concept.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseID sets the "course_id" field.
func (m *ConceptMutation) SetCourseID(s string) {
	m.course_id = &s
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *ConceptMutation) CourseID() (r string, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldCourseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *ConceptMutation) ResetCourseID() {
	m.course_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *ConceptMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *ConceptMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *ConceptMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetUnitID sets the "unit_id" field.
func (m *ConceptMutation) SetUnitID(s string) {
	m.unit_id = &s
}

// UnitID returns the value of the "unit_id" field in the mutation.
func (m *ConceptMutation) UnitID() (r string, exists bool) {
	v := m.unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitID returns the old "unit_id" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldUnitID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitID: %w", err)
	}
	return oldValue.UnitID, nil
}

// ResetUnitID resets all changes to the "unit_id" field.
func (m *ConceptMutation) ResetUnitID() {
	m.unit_id = nil
}

// SetName sets the "name" field.
func (m *ConceptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConceptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ConceptMutation) ResetName() {
	m.name = nil
}

// SetBloomLevel sets the "bloom_level" field.
func (m *ConceptMutation) SetBloomLevel(s string) {
	m.bloom_level = &s
}

// BloomLevel returns the value of the "bloom_level" field in the mutation.
func (m *ConceptMutation) BloomLevel() (r string, exists bool) {
	v := m.bloom_level
	if v == nil {
		return
	}
	return *v, true
}

// OldBloomLevel returns the old "bloom_level" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldBloomLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloomLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloomLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloomLevel: %w", err)
	}
	return oldValue.BloomLevel, nil
}

// ResetBloomLevel resets all changes to the "bloom_level" field.
func (m *ConceptMutation) ResetBloomLevel() {
	m.bloom_level = nil
}

// SetStatus sets the "status" field.
func (m *ConceptMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ConceptMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConceptMutation) ResetStatus() {
	m.status = nil
}

// SetPrerequisites sets the "prerequisites" field.
func (m *ConceptMutation) SetPrerequisites(s []string) {
	m.prerequisites = &s
	m.appendprerequisites = nil
}

// Prerequisites returns the value of the "prerequisites" field in the mutation.
func (m *ConceptMutation) Prerequisites() (r []string, exists bool) {
	v := m.prerequisites
	if v == nil {
		return
	}
	return *v, true
}

// OldPrerequisites returns the old "prerequisites" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldPrerequisites(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrerequisites is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrerequisites requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrerequisites: %w", err)
	}
	return oldValue.Prerequisites, nil
}

// AppendPrerequisites adds s to the "prerequisites" field.
func (m *ConceptMutation) AppendPrerequisites(s []string) {
	m.appendprerequisites = append(m.appendprerequisites, s...)
}

// AppendedPrerequisites returns the list of values that were appended to the "prerequisites" field in this mutation.
func (m *ConceptMutation) AppendedPrerequisites() ([]string, bool) {
	if len(m.appendprerequisites) == 0 {
		return nil, false
	}
	return m.appendprerequisites, true
}

// ClearPrerequisites clears the value of the "prerequisites" field.
func (m *ConceptMutation) ClearPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	m.clearedFields[concept.FieldPrerequisites] = struct{}{}
}

// PrerequisitesCleared returns if the "prerequisites" field was cleared in this mutation.
func (m *ConceptMutation) PrerequisitesCleared() bool {
	_, ok := m.clearedFields[concept.FieldPrerequisites]
	return ok
}

// ResetPrerequisites resets all changes to the "prerequisites" field.
func (m *ConceptMutation) ResetPrerequisites() {
	m.prerequisites = nil
	m.appendprerequisites = nil
	delete(m.clearedFields, concept.FieldPrerequisites)
}

// SetDifficulty sets the "difficulty" field.
func (m *ConceptMutation) SetDifficulty(f float64) {
	m.difficulty = &f
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ConceptMutation) Difficulty() (r float64, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds f to the "difficulty" field.
func (m *ConceptMutation) AddDifficulty(f float64) {
	if m.adddifficulty != nil {
		*m.adddifficulty += f
	} else {
		m.adddifficulty = &f
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *ConceptMutation) AddedDifficulty() (r float64, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ConceptMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetBloomTarget sets the "bloom_target" field.
func (m *ConceptMutation) SetBloomTarget(s string) {
	m.bloom_target = &s
}

// BloomTarget returns the value of the "bloom_target" field in the mutation.
func (m *ConceptMutation) BloomTarget() (r string, exists bool) {
	v := m.bloom_target
	if v == nil {
		return
	}
	return *v, true
}

// OldBloomTarget returns the old "bloom_target" field's value of the Concept entity.
// If the Concept object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConceptMutation) OldBloomTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBloomTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBloomTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBloomTarget: %w", err)
	}
	return oldValue.BloomTarget, nil
}

// ResetBloomTarget resets all changes to the "bloom_target" field.
func (m *ConceptMutation) ResetBloomTarget() {
	m.bloom_target = nil
}

// Where appends a list predicates to the ConceptMutation builder.
func (m *ConceptMutation) Where(ps ...predicate.Concept) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConceptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConceptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Concept, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConceptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConceptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Concept).
func (m *ConceptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConceptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.course_id != nil {
		fields = append(fields, concept.FieldCourseID)
	}
	if m.concept_id != nil {
		fields = append(fields, concept.FieldConceptID)
	}
	if m.unit_id != nil {
		fields = append(fields, concept.FieldUnitID)
	}
	if m.name != nil {
		fields = append(fields, concept.FieldName)
	}
	if m.bloom_level != nil {
		fields = append(fields, concept.FieldBloomLevel)
	}
	if m.status != nil {
		fields = append(fields, concept.FieldStatus)
	}
	if m.prerequisites != nil {
		fields = append(fields, concept.FieldPrerequisites)
	}
	if m.difficulty != nil {
		fields = append(fields, concept.FieldDifficulty)
	}
	if m.bloom_target != nil {
		fields = append(fields, concept.FieldBloomTarget)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConceptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case concept.FieldCourseID:
		return m.CourseID()
	case concept.FieldConceptID:
		return m.ConceptID()
	case concept.FieldUnitID:
		return m.UnitID()
	case concept.FieldName:
		return m.Name()
	case concept.FieldBloomLevel:
		return m.BloomLevel()
	case concept.FieldStatus:
		return m.Status()
	case concept.FieldPrerequisites:
		return m.Prerequisites()
	case concept.FieldDifficulty:
		return m.Difficulty()
	case concept.FieldBloomTarget:
		return m.BloomTarget()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConceptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case concept.FieldCourseID:
		return m.OldCourseID(ctx)
	case concept.FieldConceptID:
		return m.OldConceptID(ctx)
	case concept.FieldUnitID:
		return m.OldUnitID(ctx)
	case concept.FieldName:
		return m.OldName(ctx)
	case concept.FieldBloomLevel:
		return m.OldBloomLevel(ctx)
	case concept.FieldStatus:
		return m.OldStatus(ctx)
	case concept.FieldPrerequisites:
		return m.OldPrerequisites(ctx)
	case concept.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case concept.FieldBloomTarget:
		return m.OldBloomTarget(ctx)
	}
	return nil, fmt.Errorf("unknown Concept field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case concept.FieldCourseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case concept.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case concept.FieldUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitID(v)
		return nil
	case concept.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case concept.FieldBloomLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloomLevel(v)
		return nil
	case concept.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case concept.FieldPrerequisites:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrerequisites(v)
		return nil
	case concept.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case concept.FieldBloomTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBloomTarget(v)
		return nil
	}
	return fmt.Errorf("unknown Concept field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConceptMutation) AddedFields() []string {
	var fields []string
	if m.adddifficulty != nil {
		fields = append(fields, concept.FieldDifficulty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConceptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case concept.FieldDifficulty:
		return m.AddedDifficulty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConceptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case concept.FieldDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown Concept numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConceptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(concept.FieldPrerequisites) {
		fields = append(fields, concept.FieldPrerequisites)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConceptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConceptMutation) ClearField(name string) error {
	switch name {
	case concept.FieldPrerequisites:
		m.ClearPrerequisites()
		return nil
	}
	return fmt.Errorf("unknown Concept nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConceptMutation) ResetField(name string) error {
	switch name {
	case concept.FieldCourseID:
		m.ResetCourseID()
		return nil
	case concept.FieldConceptID:
		m.ResetConceptID()
		return nil
	case concept.FieldUnitID:
		m.ResetUnitID()
		return nil
	case concept.FieldName:
		m.ResetName()
		return nil
	case concept.FieldBloomLevel:
		m.ResetBloomLevel()
		return nil
	case concept.FieldStatus:
		m.ResetStatus()
		return nil
	case concept.FieldPrerequisites:
		m.ResetPrerequisites()
		return nil
	case concept.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case concept.FieldBloomTarget:
		m.ResetBloomTarget()
		return nil
	}
	return fmt.Errorf("unknown Concept field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConceptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConceptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConceptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConceptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConceptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConceptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConceptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Concept unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConceptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Concept edge %s", name)
}

// CourseMutation represents an operation that mutates the Course nodes in the graph.
type CourseMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	units         *[]string
	appendunits   []string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Course, error)
	predicates    []predicate.Course
}

var _ ent.Mutation = (*CourseMutation)(nil)

// courseOption allows management of the mutation configuration using functional options.
type courseOption func(*CourseMutation)

// newCourseMutation creates new mutation for the Course entity.
func newCourseMutation(c config, op Op, opts ...courseOption) *CourseMutation {
	m := &CourseMutation{
		config:        c,
		op:            op,
		typ:           TypeCourse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseID sets the ID field of the mutation.
func withCourseID(id string) courseOption {
	return func(m *CourseMutation) {
		var (
			err   error
			once  sync.Once
			value *Course
		)
		m.oldValue = func(ctx context.Context) (*Course, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Course.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourse sets the old Course of the mutation.
func withCourse(node *Course) courseOption {
	return func(m *CourseMutation) {
		m.oldValue = func(context.Context) (*Course, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Course entities.
func (m *CourseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Course.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CourseMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CourseMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CourseMutation) ResetName() {
	m.name = nil
}

// SetUnits sets the "units" field.
func (m *CourseMutation) SetUnits(s []string) {
	m.units = &s
	m.appendunits = nil
}

// Units returns the value of the "units" field in the mutation.
func (m *CourseMutation) Units() (r []string, exists bool) {
	v := m.units
	if v == nil {
		return
	}
	return *v, true
}

// OldUnits returns the old "units" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldUnits(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnits: %w", err)
	}
	return oldValue.Units, nil
}

// AppendUnits adds s to the "units" field.
func (m *CourseMutation) AppendUnits(s []string) {
	m.appendunits = append(m.appendunits, s...)
}

// AppendedUnits returns the list of values that were appended to the "units" field in this mutation.
func (m *CourseMutation) AppendedUnits() ([]string, bool) {
	if len(m.appendunits) == 0 {
		return nil, false
	}
	return m.appendunits, true
}

// ResetUnits resets all changes to the "units" field.
func (m *CourseMutation) ResetUnits() {
	m.units = nil
	m.appendunits = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CourseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CourseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Course entity.
// If the Course object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CourseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CourseMutation builder.
func (m *CourseMutation) Where(ps ...predicate.Course) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Course, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Course).
func (m *CourseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, course.FieldName)
	}
	if m.units != nil {
		fields = append(fields, course.FieldUnits)
	}
	if m.created_at != nil {
		fields = append(fields, course.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case course.FieldName:
		return m.Name()
	case course.FieldUnits:
		return m.Units()
	case course.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case course.FieldName:
		return m.OldName(ctx)
	case course.FieldUnits:
		return m.OldUnits(ctx)
	case course.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Course field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case course.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case course.FieldUnits:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnits(v)
		return nil
	case course.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Course numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Course nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseMutation) ResetField(name string) error {
	switch name {
	case course.FieldName:
		m.ResetName()
		return nil
	case course.FieldUnits:
		m.ResetUnits()
		return nil
	case course.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Course field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Course unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Course edge %s", name)
}

// ProgressRecordMutation represents an operation that mutates the ProgressRecord nodes in the graph.
type ProgressRecordMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	course_id              *string
	concept_id             *string
	practice_count         *int
	addpractice_count      *int
	correct_count          *int
	addcorrect_count       *int
	recent_results         *[]bool
	appendrecent_results   []bool
	mastery_score          *float64
	addmastery_score       *float64
	fsrs_stability         *float64
	addfsrs_stability      *float64
	fsrs_difficulty        *float64
	addfsrs_difficulty     *float64
	fsrs_elapsed_days      *float64
	addfsrs_elapsed_days   *float64
	fsrs_scheduled_days    *int
	addfsrs_scheduled_days *int
	fsrs_reps              *int
	addfsrs_reps           *int
	fsrs_lapses            *int
	addfsrs_lapses         *int
	fsrs_state             *string
	due                    *time.Time
	last_practiced         *time.Time
	error_history          *[]string
	appenderror_history    []string
	version                *int64
	addversion             *int64
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ProgressRecord, error)
	predicates             []predicate.ProgressRecord
}

var _ ent.Mutation = (*ProgressRecordMutation)(nil)

// progressrecordOption allows management of the mutation configuration using functional options.
type progressrecordOption func(*ProgressRecordMutation)

// newProgressRecordMutation creates new mutation for the ProgressRecord entity.
func newProgressRecordMutation(c config, op Op, opts ...progressrecordOption) *ProgressRecordMutation {
	m := &ProgressRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressRecordID sets the ID field of the mutation.
func withProgressRecordID(id int) progressrecordOption {
	return func(m *ProgressRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressRecord
		)
		m.oldValue = func(ctx context.Context) (*ProgressRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressRecord sets the old ProgressRecord of the mutation.
func withProgressRecord(node *ProgressRecord) progressrecordOption {
	return func(m *ProgressRecordMutation) {
		m.oldValue = func(context.Context) (*ProgressRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCourseID sets the "course_id" field.
func (m *ProgressRecordMutation) SetCourseID(s string) {
	m.course_id = &s
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *ProgressRecordMutation) CourseID() (r string, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldCourseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *ProgressRecordMutation) ResetCourseID() {
	m.course_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *ProgressRecordMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *ProgressRecordMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *ProgressRecordMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetPracticeCount sets the "practice_count" field.
func (m *ProgressRecordMutation) SetPracticeCount(i int) {
	m.practice_count = &i
	m.addpractice_count = nil
}

// PracticeCount returns the value of the "practice_count" field in the mutation.
func (m *ProgressRecordMutation) PracticeCount() (r int, exists bool) {
	v := m.practice_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeCount returns the old "practice_count" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldPracticeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeCount: %w", err)
	}
	return oldValue.PracticeCount, nil
}

// AddPracticeCount adds i to the "practice_count" field.
func (m *ProgressRecordMutation) AddPracticeCount(i int) {
	if m.addpractice_count != nil {
		*m.addpractice_count += i
	} else {
		m.addpractice_count = &i
	}
}

// AddedPracticeCount returns the value that was added to the "practice_count" field in this mutation.
func (m *ProgressRecordMutation) AddedPracticeCount() (r int, exists bool) {
	v := m.addpractice_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPracticeCount resets all changes to the "practice_count" field.
func (m *ProgressRecordMutation) ResetPracticeCount() {
	m.practice_count = nil
	m.addpractice_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *ProgressRecordMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *ProgressRecordMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *ProgressRecordMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *ProgressRecordMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *ProgressRecordMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetRecentResults sets the "recent_results" field.
func (m *ProgressRecordMutation) SetRecentResults(b []bool) {
	m.recent_results = &b
	m.appendrecent_results = nil
}

// RecentResults returns the value of the "recent_results" field in the mutation.
func (m *ProgressRecordMutation) RecentResults() (r []bool, exists bool) {
	v := m.recent_results
	if v == nil {
		return
	}
	return *v, true
}

// OldRecentResults returns the old "recent_results" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldRecentResults(ctx context.Context) (v []bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecentResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecentResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecentResults: %w", err)
	}
	return oldValue.RecentResults, nil
}

// AppendRecentResults adds b to the "recent_results" field.
func (m *ProgressRecordMutation) AppendRecentResults(b []bool) {
	m.appendrecent_results = append(m.appendrecent_results, b...)
}

// AppendedRecentResults returns the list of values that were appended to the "recent_results" field in this mutation.
func (m *ProgressRecordMutation) AppendedRecentResults() ([]bool, bool) {
	if len(m.appendrecent_results) == 0 {
		return nil, false
	}
	return m.appendrecent_results, true
}

// ClearRecentResults clears the value of the "recent_results" field.
func (m *ProgressRecordMutation) ClearRecentResults() {
	m.recent_results = nil
	m.appendrecent_results = nil
	m.clearedFields[progressrecord.FieldRecentResults] = struct{}{}
}

// RecentResultsCleared returns if the "recent_results" field was cleared in this mutation.
func (m *ProgressRecordMutation) RecentResultsCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldRecentResults]
	return ok
}

// ResetRecentResults resets all changes to the "recent_results" field.
func (m *ProgressRecordMutation) ResetRecentResults() {
	m.recent_results = nil
	m.appendrecent_results = nil
	delete(m.clearedFields, progressrecord.FieldRecentResults)
}

// SetMasteryScore sets the "mastery_score" field.
func (m *ProgressRecordMutation) SetMasteryScore(f float64) {
	m.mastery_score = &f
	m.addmastery_score = nil
}

// MasteryScore returns the value of the "mastery_score" field in the mutation.
func (m *ProgressRecordMutation) MasteryScore() (r float64, exists bool) {
	v := m.mastery_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryScore returns the old "mastery_score" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldMasteryScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryScore: %w", err)
	}
	return oldValue.MasteryScore, nil
}

// AddMasteryScore adds f to the "mastery_score" field.
func (m *ProgressRecordMutation) AddMasteryScore(f float64) {
	if m.addmastery_score != nil {
		*m.addmastery_score += f
	} else {
		m.addmastery_score = &f
	}
}

// AddedMasteryScore returns the value that was added to the "mastery_score" field in this mutation.
func (m *ProgressRecordMutation) AddedMasteryScore() (r float64, exists bool) {
	v := m.addmastery_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryScore resets all changes to the "mastery_score" field.
func (m *ProgressRecordMutation) ResetMasteryScore() {
	m.mastery_score = nil
	m.addmastery_score = nil
}

// SetFsrsStability sets the "fsrs_stability" field.
func (m *ProgressRecordMutation) SetFsrsStability(f float64) {
	m.fsrs_stability = &f
	m.addfsrs_stability = nil
}

// FsrsStability returns the value of the "fsrs_stability" field in the mutation.
func (m *ProgressRecordMutation) FsrsStability() (r float64, exists bool) {
	v := m.fsrs_stability
	if v == nil {
		return
	}
	return *v, true
}

// OldFsrsStability returns the old "fsrs_stability" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldFsrsStability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFsrsStability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFsrsStability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFsrsStability: %w", err)
	}
	return oldValue.FsrsStability, nil
}

// AddFsrsStability adds f to the "fsrs_stability" field.
func (m *ProgressRecordMutation) AddFsrsStability(f float64) {
	if m.addfsrs_stability != nil {
		*m.addfsrs_stability += f
	} else {
		m.addfsrs_stability = &f
	}
}

// AddedFsrsStability returns the value that was added to the "fsrs_stability" field in this mutation.
func (m *ProgressRecordMutation) AddedFsrsStability() (r float64, exists bool) {
	v := m.addfsrs_stability
	if v == nil {
		return
	}
	return *v, true
}

// ResetFsrsStability resets all changes to the "fsrs_stability" field.
func (m *ProgressRecordMutation) ResetFsrsStability() {
	m.fsrs_stability = nil
	m.addfsrs_stability = nil
}

// SetFsrsDifficulty sets the "fsrs_difficulty" field.
func (m *ProgressRecordMutation) SetFsrsDifficulty(f float64) {
	m.fsrs_difficulty = &f
	m.addfsrs_difficulty = nil
}

// FsrsDifficulty returns the value of the "fsrs_difficulty" field in the mutation.
func (m *ProgressRecordMutation) FsrsDifficulty() (r float64, exists bool) {
	v := m.fsrs_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldFsrsDifficulty returns the old "fsrs_difficulty" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldFsrsDifficulty(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFsrsDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFsrsDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFsrsDifficulty: %w", err)
	}
	return oldValue.FsrsDifficulty, nil
}

// AddFsrsDifficulty adds f to the "fsrs_difficulty" field.
func (m *ProgressRecordMutation) AddFsrsDifficulty(f float64) {
	if m.addfsrs_difficulty != nil {
		*m.addfsrs_difficulty += f
	} else {
		m.addfsrs_difficulty = &f
	}
}

// AddedFsrsDifficulty returns the value that was added to the "fsrs_difficulty" field in this mutation.
func (m *ProgressRecordMutation) AddedFsrsDifficulty() (r float64, exists bool) {
	v := m.addfsrs_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetFsrsDifficulty resets all changes to the "fsrs_difficulty" field.
func (m *ProgressRecordMutation) ResetFsrsDifficulty() {
	m.fsrs_difficulty = nil
	m.addfsrs_difficulty = nil
}

// SetFsrsElapsedDays sets the "fsrs_elapsed_days" field.
func (m *ProgressRecordMutation) SetFsrsElapsedDays(f float64) {
	m.fsrs_elapsed_days = &f
	m.addfsrs_elapsed_days = nil
}

// FsrsElapsedDays returns the value of the "fsrs_elapsed_days" field in the mutation.
func (m *ProgressRecordMutation) FsrsElapsedDays() (r float64, exists bool) {
	v := m.fsrs_elapsed_days
	if v == nil {
		return
	}
	return *v, true
}

// OldFsrsElapsedDays returns the old "fsrs_elapsed_days" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldFsrsElapsedDays(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFsrsElapsedDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFsrsElapsedDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFsrsElapsedDays: %w", err)
	}
	return oldValue.FsrsElapsedDays, nil
}

// AddFsrsElapsedDays adds f to the "fsrs_elapsed_days" field.
func (m *ProgressRecordMutation) AddFsrsElapsedDays(f float64) {
	if m.addfsrs_elapsed_days != nil {
		*m.addfsrs_elapsed_days += f
	} else {
		m.addfsrs_elapsed_days = &f
	}
}

// AddedFsrsElapsedDays returns the value that was added to the "fsrs_elapsed_days" field in this mutation.
func (m *ProgressRecordMutation) AddedFsrsElapsedDays() (r float64, exists bool) {
	v := m.addfsrs_elapsed_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetFsrsElapsedDays resets all changes to the "fsrs_elapsed_days" field.
func (m *ProgressRecordMutation) ResetFsrsElapsedDays() {
	m.fsrs_elapsed_days = nil
	m.addfsrs_elapsed_days = nil
}

// SetFsrsScheduledDays sets the "fsrs_scheduled_days" field.
func (m *ProgressRecordMutation) SetFsrsScheduledDays(i int) {
	m.fsrs_scheduled_days = &i
	m.addfsrs_scheduled_days = nil
}

// FsrsScheduledDays returns the value of the "fsrs_scheduled_days" field in the mutation.
func (m *ProgressRecordMutation) FsrsScheduledDays() (r int, exists bool) {
	v := m.fsrs_scheduled_days
	if v == nil {
		return
	}
	return *v, true
}

// OldFsrsScheduledDays returns the old "fsrs_scheduled_days" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldFsrsScheduledDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFsrsScheduledDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFsrsScheduledDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFsrsScheduledDays: %w", err)
	}
	return oldValue.FsrsScheduledDays, nil
}

// AddFsrsScheduledDays adds i to the "fsrs_scheduled_days" field.
func (m *ProgressRecordMutation) AddFsrsScheduledDays(i int) {
	if m.addfsrs_scheduled_days != nil {
		*m.addfsrs_scheduled_days += i
	} else {
		m.addfsrs_scheduled_days = &i
	}
}

// AddedFsrsScheduledDays returns the value that was added to the "fsrs_scheduled_days" field in this mutation.
func (m *ProgressRecordMutation) AddedFsrsScheduledDays() (r int, exists bool) {
	v := m.addfsrs_scheduled_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetFsrsScheduledDays resets all changes to the "fsrs_scheduled_days" field.
func (m *ProgressRecordMutation) ResetFsrsScheduledDays() {
	m.fsrs_scheduled_days = nil
	m.addfsrs_scheduled_days = nil
}

// SetFsrsReps sets the "fsrs_reps" field.
func (m *ProgressRecordMutation) SetFsrsReps(i int) {
	m.fsrs_reps = &i
	m.addfsrs_reps = nil
}

// FsrsReps returns the value of the "fsrs_reps" field in the mutation.
func (m *ProgressRecordMutation) FsrsReps() (r int, exists bool) {
	v := m.fsrs_reps
	if v == nil {
		return
	}
	return *v, true
}

// OldFsrsReps returns the old "fsrs_reps" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldFsrsReps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFsrsReps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFsrsReps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFsrsReps: %w", err)
	}
	return oldValue.FsrsReps, nil
}

// AddFsrsReps adds i to the "fsrs_reps" field.
func (m *ProgressRecordMutation) AddFsrsReps(i int) {
	if m.addfsrs_reps != nil {
		*m.addfsrs_reps += i
	} else {
		m.addfsrs_reps = &i
	}
}

// AddedFsrsReps returns the value that was added to the "fsrs_reps" field in this mutation.
func (m *ProgressRecordMutation) AddedFsrsReps() (r int, exists bool) {
	v := m.addfsrs_reps
	if v == nil {
		return
	}
	return *v, true
}

// ResetFsrsReps resets all changes to the "fsrs_reps" field.
func (m *ProgressRecordMutation) ResetFsrsReps() {
	m.fsrs_reps = nil
	m.addfsrs_reps = nil
}

// SetFsrsLapses sets the "fsrs_lapses" field.
func (m *ProgressRecordMutation) SetFsrsLapses(i int) {
	m.fsrs_lapses = &i
	m.addfsrs_lapses = nil
}

// FsrsLapses returns the value of the "fsrs_lapses" field in the mutation.
func (m *ProgressRecordMutation) FsrsLapses() (r int, exists bool) {
	v := m.fsrs_lapses
	if v == nil {
		return
	}
	return *v, true
}

// OldFsrsLapses returns the old "fsrs_lapses" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldFsrsLapses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFsrsLapses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFsrsLapses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFsrsLapses: %w", err)
	}
	return oldValue.FsrsLapses, nil
}

// AddFsrsLapses adds i to the "fsrs_lapses" field.
func (m *ProgressRecordMutation) AddFsrsLapses(i int) {
	if m.addfsrs_lapses != nil {
		*m.addfsrs_lapses += i
	} else {
		m.addfsrs_lapses = &i
	}
}

// AddedFsrsLapses returns the value that was added to the "fsrs_lapses" field in this mutation.
func (m *ProgressRecordMutation) AddedFsrsLapses() (r int, exists bool) {
	v := m.addfsrs_lapses
	if v == nil {
		return
	}
	return *v, true
}

// ResetFsrsLapses resets all changes to the "fsrs_lapses" field.
func (m *ProgressRecordMutation) ResetFsrsLapses() {
	m.fsrs_lapses = nil
	m.addfsrs_lapses = nil
}

// SetFsrsState sets the "fsrs_state" field.
func (m *ProgressRecordMutation) SetFsrsState(s string) {
	m.fsrs_state = &s
}

// FsrsState returns the value of the "fsrs_state" field in the mutation.
func (m *ProgressRecordMutation) FsrsState() (r string, exists bool) {
	v := m.fsrs_state
	if v == nil {
		return
	}
	return *v, true
}

// OldFsrsState returns the old "fsrs_state" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldFsrsState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFsrsState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFsrsState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFsrsState: %w", err)
	}
	return oldValue.FsrsState, nil
}

// ResetFsrsState resets all changes to the "fsrs_state" field.
func (m *ProgressRecordMutation) ResetFsrsState() {
	m.fsrs_state = nil
}

// SetDue sets the "due" field.
func (m *ProgressRecordMutation) SetDue(t time.Time) {
	m.due = &t
}

// Due returns the value of the "due" field in the mutation.
func (m *ProgressRecordMutation) Due() (r time.Time, exists bool) {
	v := m.due
	if v == nil {
		return
	}
	return *v, true
}

// OldDue returns the old "due" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldDue(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDue: %w", err)
	}
	return oldValue.Due, nil
}

// ClearDue clears the value of the "due" field.
func (m *ProgressRecordMutation) ClearDue() {
	m.due = nil
	m.clearedFields[progressrecord.FieldDue] = struct{}{}
}

// DueCleared returns if the "due" field was cleared in this mutation.
func (m *ProgressRecordMutation) DueCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldDue]
	return ok
}

// ResetDue resets all changes to the "due" field.
func (m *ProgressRecordMutation) ResetDue() {
	m.due = nil
	delete(m.clearedFields, progressrecord.FieldDue)
}

// SetLastPracticed sets the "last_practiced" field.
func (m *ProgressRecordMutation) SetLastPracticed(t time.Time) {
	m.last_practiced = &t
}

// LastPracticed returns the value of the "last_practiced" field in the mutation.
func (m *ProgressRecordMutation) LastPracticed() (r time.Time, exists bool) {
	v := m.last_practiced
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPracticed returns the old "last_practiced" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldLastPracticed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPracticed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPracticed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPracticed: %w", err)
	}
	return oldValue.LastPracticed, nil
}

// ClearLastPracticed clears the value of the "last_practiced" field.
func (m *ProgressRecordMutation) ClearLastPracticed() {
	m.last_practiced = nil
	m.clearedFields[progressrecord.FieldLastPracticed] = struct{}{}
}

// LastPracticedCleared returns if the "last_practiced" field was cleared in this mutation.
func (m *ProgressRecordMutation) LastPracticedCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldLastPracticed]
	return ok
}

// ResetLastPracticed resets all changes to the "last_practiced" field.
func (m *ProgressRecordMutation) ResetLastPracticed() {
	m.last_practiced = nil
	delete(m.clearedFields, progressrecord.FieldLastPracticed)
}

// SetErrorHistory sets the "error_history" field.
func (m *ProgressRecordMutation) SetErrorHistory(s []string) {
	m.error_history = &s
	m.appenderror_history = nil
}

// ErrorHistory returns the value of the "error_history" field in the mutation.
func (m *ProgressRecordMutation) ErrorHistory() (r []string, exists bool) {
	v := m.error_history
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorHistory returns the old "error_history" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldErrorHistory(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorHistory: %w", err)
	}
	return oldValue.ErrorHistory, nil
}

// AppendErrorHistory adds s to the "error_history" field.
func (m *ProgressRecordMutation) AppendErrorHistory(s []string) {
	m.appenderror_history = append(m.appenderror_history, s...)
}

// AppendedErrorHistory returns the list of values that were appended to the "error_history" field in this mutation.
func (m *ProgressRecordMutation) AppendedErrorHistory() ([]string, bool) {
	if len(m.appenderror_history) == 0 {
		return nil, false
	}
	return m.appenderror_history, true
}

// ClearErrorHistory clears the value of the "error_history" field.
func (m *ProgressRecordMutation) ClearErrorHistory() {
	m.error_history = nil
	m.appenderror_history = nil
	m.clearedFields[progressrecord.FieldErrorHistory] = struct{}{}
}

// ErrorHistoryCleared returns if the "error_history" field was cleared in this mutation.
func (m *ProgressRecordMutation) ErrorHistoryCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldErrorHistory]
	return ok
}

// ResetErrorHistory resets all changes to the "error_history" field.
func (m *ProgressRecordMutation) ResetErrorHistory() {
	m.error_history = nil
	m.appenderror_history = nil
	delete(m.clearedFields, progressrecord.FieldErrorHistory)
}

// SetVersion sets the "version" field.
func (m *ProgressRecordMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ProgressRecordMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ProgressRecordMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ProgressRecordMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ProgressRecordMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// Where appends a list predicates to the ProgressRecordMutation builder.
func (m *ProgressRecordMutation) Where(ps ...predicate.ProgressRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressRecord).
func (m *ProgressRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressRecordMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.course_id != nil {
		fields = append(fields, progressrecord.FieldCourseID)
	}
	if m.concept_id != nil {
		fields = append(fields, progressrecord.FieldConceptID)
	}
	if m.practice_count != nil {
		fields = append(fields, progressrecord.FieldPracticeCount)
	}
	if m.correct_count != nil {
		fields = append(fields, progressrecord.FieldCorrectCount)
	}
	if m.recent_results != nil {
		fields = append(fields, progressrecord.FieldRecentResults)
	}
	if m.mastery_score != nil {
		fields = append(fields, progressrecord.FieldMasteryScore)
	}
	if m.fsrs_stability != nil {
		fields = append(fields, progressrecord.FieldFsrsStability)
	}
	if m.fsrs_difficulty != nil {
		fields = append(fields, progressrecord.FieldFsrsDifficulty)
	}
	if m.fsrs_elapsed_days != nil {
		fields = append(fields, progressrecord.FieldFsrsElapsedDays)
	}
	if m.fsrs_scheduled_days != nil {
		fields = append(fields, progressrecord.FieldFsrsScheduledDays)
	}
	if m.fsrs_reps != nil {
		fields = append(fields, progressrecord.FieldFsrsReps)
	}
	if m.fsrs_lapses != nil {
		fields = append(fields, progressrecord.FieldFsrsLapses)
	}
	if m.fsrs_state != nil {
		fields = append(fields, progressrecord.FieldFsrsState)
	}
	if m.due != nil {
		fields = append(fields, progressrecord.FieldDue)
	}
	if m.last_practiced != nil {
		fields = append(fields, progressrecord.FieldLastPracticed)
	}
	if m.error_history != nil {
		fields = append(fields, progressrecord.FieldErrorHistory)
	}
	if m.version != nil {
		fields = append(fields, progressrecord.FieldVersion)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressrecord.FieldCourseID:
		return m.CourseID()
	case progressrecord.FieldConceptID:
		return m.ConceptID()
	case progressrecord.FieldPracticeCount:
		return m.PracticeCount()
	case progressrecord.FieldCorrectCount:
		return m.CorrectCount()
	case progressrecord.FieldRecentResults:
		return m.RecentResults()
	case progressrecord.FieldMasteryScore:
		return m.MasteryScore()
	case progressrecord.FieldFsrsStability:
		return m.FsrsStability()
	case progressrecord.FieldFsrsDifficulty:
		return m.FsrsDifficulty()
	case progressrecord.FieldFsrsElapsedDays:
		return m.FsrsElapsedDays()
	case progressrecord.FieldFsrsScheduledDays:
		return m.FsrsScheduledDays()
	case progressrecord.FieldFsrsReps:
		return m.FsrsReps()
	case progressrecord.FieldFsrsLapses:
		return m.FsrsLapses()
	case progressrecord.FieldFsrsState:
		return m.FsrsState()
	case progressrecord.FieldDue:
		return m.Due()
	case progressrecord.FieldLastPracticed:
		return m.LastPracticed()
	case progressrecord.FieldErrorHistory:
		return m.ErrorHistory()
	case progressrecord.FieldVersion:
		return m.Version()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressrecord.FieldCourseID:
		return m.OldCourseID(ctx)
	case progressrecord.FieldConceptID:
		return m.OldConceptID(ctx)
	case progressrecord.FieldPracticeCount:
		return m.OldPracticeCount(ctx)
	case progressrecord.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case progressrecord.FieldRecentResults:
		return m.OldRecentResults(ctx)
	case progressrecord.FieldMasteryScore:
		return m.OldMasteryScore(ctx)
	case progressrecord.FieldFsrsStability:
		return m.OldFsrsStability(ctx)
	case progressrecord.FieldFsrsDifficulty:
		return m.OldFsrsDifficulty(ctx)
	case progressrecord.FieldFsrsElapsedDays:
		return m.OldFsrsElapsedDays(ctx)
	case progressrecord.FieldFsrsScheduledDays:
		return m.OldFsrsScheduledDays(ctx)
	case progressrecord.FieldFsrsReps:
		return m.OldFsrsReps(ctx)
	case progressrecord.FieldFsrsLapses:
		return m.OldFsrsLapses(ctx)
	case progressrecord.FieldFsrsState:
		return m.OldFsrsState(ctx)
	case progressrecord.FieldDue:
		return m.OldDue(ctx)
	case progressrecord.FieldLastPracticed:
		return m.OldLastPracticed(ctx)
	case progressrecord.FieldErrorHistory:
		return m.OldErrorHistory(ctx)
	case progressrecord.FieldVersion:
		return m.OldVersion(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressrecord.FieldCourseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case progressrecord.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case progressrecord.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeCount(v)
		return nil
	case progressrecord.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case progressrecord.FieldRecentResults:
		v, ok := value.([]bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecentResults(v)
		return nil
	case progressrecord.FieldMasteryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryScore(v)
		return nil
	case progressrecord.FieldFsrsStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFsrsStability(v)
		return nil
	case progressrecord.FieldFsrsDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFsrsDifficulty(v)
		return nil
	case progressrecord.FieldFsrsElapsedDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFsrsElapsedDays(v)
		return nil
	case progressrecord.FieldFsrsScheduledDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFsrsScheduledDays(v)
		return nil
	case progressrecord.FieldFsrsReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFsrsReps(v)
		return nil
	case progressrecord.FieldFsrsLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFsrsLapses(v)
		return nil
	case progressrecord.FieldFsrsState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFsrsState(v)
		return nil
	case progressrecord.FieldDue:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDue(v)
		return nil
	case progressrecord.FieldLastPracticed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPracticed(v)
		return nil
	case progressrecord.FieldErrorHistory:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorHistory(v)
		return nil
	case progressrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressRecordMutation) AddedFields() []string {
	var fields []string
	if m.addpractice_count != nil {
		fields = append(fields, progressrecord.FieldPracticeCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, progressrecord.FieldCorrectCount)
	}
	if m.addmastery_score != nil {
		fields = append(fields, progressrecord.FieldMasteryScore)
	}
	if m.addfsrs_stability != nil {
		fields = append(fields, progressrecord.FieldFsrsStability)
	}
	if m.addfsrs_difficulty != nil {
		fields = append(fields, progressrecord.FieldFsrsDifficulty)
	}
	if m.addfsrs_elapsed_days != nil {
		fields = append(fields, progressrecord.FieldFsrsElapsedDays)
	}
	if m.addfsrs_scheduled_days != nil {
		fields = append(fields, progressrecord.FieldFsrsScheduledDays)
	}
	if m.addfsrs_reps != nil {
		fields = append(fields, progressrecord.FieldFsrsReps)
	}
	if m.addfsrs_lapses != nil {
		fields = append(fields, progressrecord.FieldFsrsLapses)
	}
	if m.addversion != nil {
		fields = append(fields, progressrecord.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progressrecord.FieldPracticeCount:
		return m.AddedPracticeCount()
	case progressrecord.FieldCorrectCount:
		return m.AddedCorrectCount()
	case progressrecord.FieldMasteryScore:
		return m.AddedMasteryScore()
	case progressrecord.FieldFsrsStability:
		return m.AddedFsrsStability()
	case progressrecord.FieldFsrsDifficulty:
		return m.AddedFsrsDifficulty()
	case progressrecord.FieldFsrsElapsedDays:
		return m.AddedFsrsElapsedDays()
	case progressrecord.FieldFsrsScheduledDays:
		return m.AddedFsrsScheduledDays()
	case progressrecord.FieldFsrsReps:
		return m.AddedFsrsReps()
	case progressrecord.FieldFsrsLapses:
		return m.AddedFsrsLapses()
	case progressrecord.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progressrecord.FieldPracticeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPracticeCount(v)
		return nil
	case progressrecord.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case progressrecord.FieldMasteryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryScore(v)
		return nil
	case progressrecord.FieldFsrsStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFsrsStability(v)
		return nil
	case progressrecord.FieldFsrsDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFsrsDifficulty(v)
		return nil
	case progressrecord.FieldFsrsElapsedDays:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFsrsElapsedDays(v)
		return nil
	case progressrecord.FieldFsrsScheduledDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFsrsScheduledDays(v)
		return nil
	case progressrecord.FieldFsrsReps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFsrsReps(v)
		return nil
	case progressrecord.FieldFsrsLapses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFsrsLapses(v)
		return nil
	case progressrecord.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(progressrecord.FieldRecentResults) {
		fields = append(fields, progressrecord.FieldRecentResults)
	}
	if m.FieldCleared(progressrecord.FieldDue) {
		fields = append(fields, progressrecord.FieldDue)
	}
	if m.FieldCleared(progressrecord.FieldLastPracticed) {
		fields = append(fields, progressrecord.FieldLastPracticed)
	}
	if m.FieldCleared(progressrecord.FieldErrorHistory) {
		fields = append(fields, progressrecord.FieldErrorHistory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressRecordMutation) ClearField(name string) error {
	switch name {
	case progressrecord.FieldRecentResults:
		m.ClearRecentResults()
		return nil
	case progressrecord.FieldDue:
		m.ClearDue()
		return nil
	case progressrecord.FieldLastPracticed:
		m.ClearLastPracticed()
		return nil
	case progressrecord.FieldErrorHistory:
		m.ClearErrorHistory()
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressRecordMutation) ResetField(name string) error {
	switch name {
	case progressrecord.FieldCourseID:
		m.ResetCourseID()
		return nil
	case progressrecord.FieldConceptID:
		m.ResetConceptID()
		return nil
	case progressrecord.FieldPracticeCount:
		m.ResetPracticeCount()
		return nil
	case progressrecord.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case progressrecord.FieldRecentResults:
		m.ResetRecentResults()
		return nil
	case progressrecord.FieldMasteryScore:
		m.ResetMasteryScore()
		return nil
	case progressrecord.FieldFsrsStability:
		m.ResetFsrsStability()
		return nil
	case progressrecord.FieldFsrsDifficulty:
		m.ResetFsrsDifficulty()
		return nil
	case progressrecord.FieldFsrsElapsedDays:
		m.ResetFsrsElapsedDays()
		return nil
	case progressrecord.FieldFsrsScheduledDays:
		m.ResetFsrsScheduledDays()
		return nil
	case progressrecord.FieldFsrsReps:
		m.ResetFsrsReps()
		return nil
	case progressrecord.FieldFsrsLapses:
		m.ResetFsrsLapses()
		return nil
	case progressrecord.FieldFsrsState:
		m.ResetFsrsState()
		return nil
	case progressrecord.FieldDue:
		m.ResetDue()
		return nil
	case progressrecord.FieldLastPracticed:
		m.ResetLastPracticed()
		return nil
	case progressrecord.FieldErrorHistory:
		m.ResetErrorHistory()
		return nil
	case progressrecord.FieldVersion:
		m.ResetVersion()
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressRecord edge %s", name)
}

// ReviewEventMutation represents an operation that mutates the ReviewEvent nodes in the graph.
type ReviewEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	course_id        *string
	concept_id       *string
	rating           *int
	addrating        *int
	correct          *bool
	error_class      *string
	stability        *float64
	addstability     *float64
	interval_days    *int
	addinterval_days *int
	session_id       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ReviewEvent, error)
	predicates       []predicate.ReviewEvent
}

var _ ent.Mutation = (*ReviewEventMutation)(nil)

// revieweventOption allows management of the mutation configuration using functional options.
type revieweventOption func(*ReviewEventMutation)

// newReviewEventMutation creates new mutation for the ReviewEvent entity.
func newReviewEventMutation(c config, op Op, opts ...revieweventOption) *ReviewEventMutation {
	m := &ReviewEventMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEventID sets the ID field of the mutation.
func withReviewEventID(id int) revieweventOption {
	return func(m *ReviewEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEvent
		)
		m.oldValue = func(ctx context.Context) (*ReviewEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEvent sets the old ReviewEvent of the mutation.
func withReviewEvent(node *ReviewEvent) revieweventOption {
	return func(m *ReviewEventMutation) {
		m.oldValue = func(context.Context) (*ReviewEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ReviewEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ReviewEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ReviewEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ReviewEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ReviewEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReviewEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReviewEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReviewEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCourseID sets the "course_id" field.
func (m *ReviewEventMutation) SetCourseID(s string) {
	m.course_id = &s
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *ReviewEventMutation) CourseID() (r string, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldCourseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *ReviewEventMutation) ResetCourseID() {
	m.course_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *ReviewEventMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *ReviewEventMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *ReviewEventMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetRating sets the "rating" field.
func (m *ReviewEventMutation) SetRating(i int) {
	m.rating = &i
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ReviewEventMutation) Rating() (r int, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldRating(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds i to the "rating" field.
func (m *ReviewEventMutation) AddRating(i int) {
	if m.addrating != nil {
		*m.addrating += i
	} else {
		m.addrating = &i
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ReviewEventMutation) AddedRating() (r int, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *ReviewEventMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetCorrect sets the "correct" field.
func (m *ReviewEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ReviewEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ReviewEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetErrorClass sets the "error_class" field.
func (m *ReviewEventMutation) SetErrorClass(s string) {
	m.error_class = &s
}

// ErrorClass returns the value of the "error_class" field in the mutation.
func (m *ReviewEventMutation) ErrorClass() (r string, exists bool) {
	v := m.error_class
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorClass returns the old "error_class" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldErrorClass(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorClass is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorClass requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorClass: %w", err)
	}
	return oldValue.ErrorClass, nil
}

// ClearErrorClass clears the value of the "error_class" field.
func (m *ReviewEventMutation) ClearErrorClass() {
	m.error_class = nil
	m.clearedFields[reviewevent.FieldErrorClass] = struct{}{}
}

// ErrorClassCleared returns if the "error_class" field was cleared in this mutation.
func (m *ReviewEventMutation) ErrorClassCleared() bool {
	_, ok := m.clearedFields[reviewevent.FieldErrorClass]
	return ok
}

// ResetErrorClass resets all changes to the "error_class" field.
func (m *ReviewEventMutation) ResetErrorClass() {
	m.error_class = nil
	delete(m.clearedFields, reviewevent.FieldErrorClass)
}

// SetStability sets the "stability" field.
func (m *ReviewEventMutation) SetStability(f float64) {
	m.stability = &f
	m.addstability = nil
}

// Stability returns the value of the "stability" field in the mutation.
func (m *ReviewEventMutation) Stability() (r float64, exists bool) {
	v := m.stability
	if v == nil {
		return
	}
	return *v, true
}

// OldStability returns the old "stability" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldStability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStability: %w", err)
	}
	return oldValue.Stability, nil
}

// AddStability adds f to the "stability" field.
func (m *ReviewEventMutation) AddStability(f float64) {
	if m.addstability != nil {
		*m.addstability += f
	} else {
		m.addstability = &f
	}
}

// AddedStability returns the value that was added to the "stability" field in this mutation.
func (m *ReviewEventMutation) AddedStability() (r float64, exists bool) {
	v := m.addstability
	if v == nil {
		return
	}
	return *v, true
}

// ResetStability resets all changes to the "stability" field.
func (m *ReviewEventMutation) ResetStability() {
	m.stability = nil
	m.addstability = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewEventMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewEventMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewEventMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewEventMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewEventMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetSessionID sets the "session_id" field.
func (m *ReviewEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ReviewEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ReviewEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[reviewevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ReviewEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[reviewevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ReviewEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, reviewevent.FieldSessionID)
}

// Where appends a list predicates to the ReviewEventMutation builder.
func (m *ReviewEventMutation) Where(ps ...predicate.ReviewEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEvent).
func (m *ReviewEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, reviewevent.FieldTimestamp)
	}
	if m.course_id != nil {
		fields = append(fields, reviewevent.FieldCourseID)
	}
	if m.concept_id != nil {
		fields = append(fields, reviewevent.FieldConceptID)
	}
	if m.rating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	if m.correct != nil {
		fields = append(fields, reviewevent.FieldCorrect)
	}
	if m.error_class != nil {
		fields = append(fields, reviewevent.FieldErrorClass)
	}
	if m.stability != nil {
		fields = append(fields, reviewevent.FieldStability)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewevent.FieldIntervalDays)
	}
	if m.session_id != nil {
		fields = append(fields, reviewevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.Sequence()
	case reviewevent.FieldTimestamp:
		return m.Timestamp()
	case reviewevent.FieldCourseID:
		return m.CourseID()
	case reviewevent.FieldConceptID:
		return m.ConceptID()
	case reviewevent.FieldRating:
		return m.Rating()
	case reviewevent.FieldCorrect:
		return m.Correct()
	case reviewevent.FieldErrorClass:
		return m.ErrorClass()
	case reviewevent.FieldStability:
		return m.Stability()
	case reviewevent.FieldIntervalDays:
		return m.IntervalDays()
	case reviewevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewevent.FieldSequence:
		return m.OldSequence(ctx)
	case reviewevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case reviewevent.FieldCourseID:
		return m.OldCourseID(ctx)
	case reviewevent.FieldConceptID:
		return m.OldConceptID(ctx)
	case reviewevent.FieldRating:
		return m.OldRating(ctx)
	case reviewevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case reviewevent.FieldErrorClass:
		return m.OldErrorClass(ctx)
	case reviewevent.FieldStability:
		return m.OldStability(ctx)
	case reviewevent.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case reviewevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case reviewevent.FieldCourseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case reviewevent.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case reviewevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case reviewevent.FieldErrorClass:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorClass(v)
		return nil
	case reviewevent.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStability(v)
		return nil
	case reviewevent.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.addrating != nil {
		fields = append(fields, reviewevent.FieldRating)
	}
	if m.addstability != nil {
		fields = append(fields, reviewevent.FieldStability)
	}
	if m.addinterval_days != nil {
		fields = append(fields, reviewevent.FieldIntervalDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.AddedSequence()
	case reviewevent.FieldRating:
		return m.AddedRating()
	case reviewevent.FieldStability:
		return m.AddedStability()
	case reviewevent.FieldIntervalDays:
		return m.AddedIntervalDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case reviewevent.FieldRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case reviewevent.FieldStability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStability(v)
		return nil
	case reviewevent.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewevent.FieldErrorClass) {
		fields = append(fields, reviewevent.FieldErrorClass)
	}
	if m.FieldCleared(reviewevent.FieldSessionID) {
		fields = append(fields, reviewevent.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEventMutation) ClearField(name string) error {
	switch name {
	case reviewevent.FieldErrorClass:
		m.ClearErrorClass()
		return nil
	case reviewevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEventMutation) ResetField(name string) error {
	switch name {
	case reviewevent.FieldSequence:
		m.ResetSequence()
		return nil
	case reviewevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case reviewevent.FieldCourseID:
		m.ResetCourseID()
		return nil
	case reviewevent.FieldConceptID:
		m.ResetConceptID()
		return nil
	case reviewevent.FieldRating:
		m.ResetRating()
		return nil
	case reviewevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case reviewevent.FieldErrorClass:
		m.ResetErrorClass()
		return nil
	case reviewevent.FieldStability:
		m.ResetStability()
		return nil
	case reviewevent.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent edge %s", name)
}

// SessionLogMutation represents an operation that mutates the SessionLog nodes in the graph.
type SessionLogMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	course_id         *string
	session_id        *string
	session_type      *string
	started_at        *time.Time
	ended_at          *time.Time
	concept_ids       *[]string
	appendconcept_ids []string
	exercises         *[]string
	appendexercises   []string
	score             **schema.ScoreSummary
	summary           *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*SessionLog, error)
	predicates        []predicate.SessionLog
}

var _ ent.Mutation = (*SessionLogMutation)(nil)

// sessionlogOption allows management of the mutation configuration using functional options.
type sessionlogOption func(*SessionLogMutation)

// newSessionLogMutation creates new mutation for the SessionLog entity.
func newSessionLogMutation(c config, op Op, opts ...sessionlogOption) *SessionLogMutation {
	m := &SessionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionLogID sets the ID field of the mutation.
func withSessionLogID(id int) sessionlogOption {
	return func(m *SessionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionLog
		)
		m.oldValue = func(ctx context.Context) (*SessionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionLog sets the old SessionLog of the mutation.
func withSessionLog(node *SessionLog) sessionlogOption {
	return func(m *SessionLogMutation) {
		m.oldValue = func(context.Context) (*SessionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionLogMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionLogMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionLogMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionLogMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionLogMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCourseID sets the "course_id" field.
func (m *SessionLogMutation) SetCourseID(s string) {
	m.course_id = &s
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *SessionLogMutation) CourseID() (r string, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldCourseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *SessionLogMutation) ResetCourseID() {
	m.course_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionLogMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionLogMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionLogMutation) ResetSessionID() {
	m.session_id = nil
}

// SetSessionType sets the "session_type" field.
func (m *SessionLogMutation) SetSessionType(s string) {
	m.session_type = &s
}

// SessionType returns the value of the "session_type" field in the mutation.
func (m *SessionLogMutation) SessionType() (r string, exists bool) {
	v := m.session_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionType returns the old "session_type" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldSessionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionType: %w", err)
	}
	return oldValue.SessionType, nil
}

// ResetSessionType resets all changes to the "session_type" field.
func (m *SessionLogMutation) ResetSessionType() {
	m.session_type = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *SessionLogMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *SessionLogMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldEndedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *SessionLogMutation) ResetEndedAt() {
	m.ended_at = nil
}

// SetConceptIds sets the "concept_ids" field.
func (m *SessionLogMutation) SetConceptIds(s []string) {
	m.concept_ids = &s
	m.appendconcept_ids = nil
}

// ConceptIds returns the value of the "concept_ids" field in the mutation.
func (m *SessionLogMutation) ConceptIds() (r []string, exists bool) {
	v := m.concept_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptIds returns the old "concept_ids" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldConceptIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptIds: %w", err)
	}
	return oldValue.ConceptIds, nil
}

// AppendConceptIds adds s to the "concept_ids" field.
func (m *SessionLogMutation) AppendConceptIds(s []string) {
	m.appendconcept_ids = append(m.appendconcept_ids, s...)
}

// AppendedConceptIds returns the list of values that were appended to the "concept_ids" field in this mutation.
func (m *SessionLogMutation) AppendedConceptIds() ([]string, bool) {
	if len(m.appendconcept_ids) == 0 {
		return nil, false
	}
	return m.appendconcept_ids, true
}

// ClearConceptIds clears the value of the "concept_ids" field.
func (m *SessionLogMutation) ClearConceptIds() {
	m.concept_ids = nil
	m.appendconcept_ids = nil
	m.clearedFields[sessionlog.FieldConceptIds] = struct{}{}
}

// ConceptIdsCleared returns if the "concept_ids" field was cleared in this mutation.
func (m *SessionLogMutation) ConceptIdsCleared() bool {
	_, ok := m.clearedFields[sessionlog.FieldConceptIds]
	return ok
}

// ResetConceptIds resets all changes to the "concept_ids" field.
func (m *SessionLogMutation) ResetConceptIds() {
	m.concept_ids = nil
	m.appendconcept_ids = nil
	delete(m.clearedFields, sessionlog.FieldConceptIds)
}

// SetExercises sets the "exercises" field.
func (m *SessionLogMutation) SetExercises(s []string) {
	m.exercises = &s
	m.appendexercises = nil
}

// Exercises returns the value of the "exercises" field in the mutation.
func (m *SessionLogMutation) Exercises() (r []string, exists bool) {
	v := m.exercises
	if v == nil {
		return
	}
	return *v, true
}

// OldExercises returns the old "exercises" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldExercises(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExercises is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExercises requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExercises: %w", err)
	}
	return oldValue.Exercises, nil
}

// AppendExercises adds s to the "exercises" field.
func (m *SessionLogMutation) AppendExercises(s []string) {
	m.appendexercises = append(m.appendexercises, s...)
}

// AppendedExercises returns the list of values that were appended to the "exercises" field in this mutation.
func (m *SessionLogMutation) AppendedExercises() ([]string, bool) {
	if len(m.appendexercises) == 0 {
		return nil, false
	}
	return m.appendexercises, true
}

// ClearExercises clears the value of the "exercises" field.
func (m *SessionLogMutation) ClearExercises() {
	m.exercises = nil
	m.appendexercises = nil
	m.clearedFields[sessionlog.FieldExercises] = struct{}{}
}

// ExercisesCleared returns if the "exercises" field was cleared in this mutation.
func (m *SessionLogMutation) ExercisesCleared() bool {
	_, ok := m.clearedFields[sessionlog.FieldExercises]
	return ok
}

// ResetExercises resets all changes to the "exercises" field.
func (m *SessionLogMutation) ResetExercises() {
	m.exercises = nil
	m.appendexercises = nil
	delete(m.clearedFields, sessionlog.FieldExercises)
}

// SetScore sets the "score" field.
func (m *SessionLogMutation) SetScore(ss *schema.ScoreSummary) {
	m.score = &ss
}

// Score returns the value of the "score" field in the mutation.
func (m *SessionLogMutation) Score() (r *schema.ScoreSummary, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldScore(ctx context.Context) (v *schema.ScoreSummary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// ClearScore clears the value of the "score" field.
func (m *SessionLogMutation) ClearScore() {
	m.score = nil
	m.clearedFields[sessionlog.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *SessionLogMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[sessionlog.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *SessionLogMutation) ResetScore() {
	m.score = nil
	delete(m.clearedFields, sessionlog.FieldScore)
}

// SetSummary sets the "summary" field.
func (m *SessionLogMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SessionLogMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the SessionLog entity.
// If the SessionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionLogMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *SessionLogMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[sessionlog.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *SessionLogMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[sessionlog.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *SessionLogMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, sessionlog.FieldSummary)
}

// Where appends a list predicates to the SessionLogMutation builder.
func (m *SessionLogMutation) Where(ps ...predicate.SessionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionLog).
func (m *SessionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionLogMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, sessionlog.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionlog.FieldTimestamp)
	}
	if m.course_id != nil {
		fields = append(fields, sessionlog.FieldCourseID)
	}
	if m.session_id != nil {
		fields = append(fields, sessionlog.FieldSessionID)
	}
	if m.session_type != nil {
		fields = append(fields, sessionlog.FieldSessionType)
	}
	if m.started_at != nil {
		fields = append(fields, sessionlog.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, sessionlog.FieldEndedAt)
	}
	if m.concept_ids != nil {
		fields = append(fields, sessionlog.FieldConceptIds)
	}
	if m.exercises != nil {
		fields = append(fields, sessionlog.FieldExercises)
	}
	if m.score != nil {
		fields = append(fields, sessionlog.FieldScore)
	}
	if m.summary != nil {
		fields = append(fields, sessionlog.FieldSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionlog.FieldSequence:
		return m.Sequence()
	case sessionlog.FieldTimestamp:
		return m.Timestamp()
	case sessionlog.FieldCourseID:
		return m.CourseID()
	case sessionlog.FieldSessionID:
		return m.SessionID()
	case sessionlog.FieldSessionType:
		return m.SessionType()
	case sessionlog.FieldStartedAt:
		return m.StartedAt()
	case sessionlog.FieldEndedAt:
		return m.EndedAt()
	case sessionlog.FieldConceptIds:
		return m.ConceptIds()
	case sessionlog.FieldExercises:
		return m.Exercises()
	case sessionlog.FieldScore:
		return m.Score()
	case sessionlog.FieldSummary:
		return m.Summary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionlog.FieldSequence:
		return m.OldSequence(ctx)
	case sessionlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionlog.FieldCourseID:
		return m.OldCourseID(ctx)
	case sessionlog.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionlog.FieldSessionType:
		return m.OldSessionType(ctx)
	case sessionlog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sessionlog.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case sessionlog.FieldConceptIds:
		return m.OldConceptIds(ctx)
	case sessionlog.FieldExercises:
		return m.OldExercises(ctx)
	case sessionlog.FieldScore:
		return m.OldScore(ctx)
	case sessionlog.FieldSummary:
		return m.OldSummary(ctx)
	}
	return nil, fmt.Errorf("unknown SessionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionlog.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionlog.FieldCourseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case sessionlog.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionlog.FieldSessionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionType(v)
		return nil
	case sessionlog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sessionlog.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case sessionlog.FieldConceptIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptIds(v)
		return nil
	case sessionlog.FieldExercises:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExercises(v)
		return nil
	case sessionlog.FieldScore:
		v, ok := value.(*schema.ScoreSummary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case sessionlog.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	}
	return fmt.Errorf("unknown SessionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionLogMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionlog.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionlog.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionlog.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown SessionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionlog.FieldConceptIds) {
		fields = append(fields, sessionlog.FieldConceptIds)
	}
	if m.FieldCleared(sessionlog.FieldExercises) {
		fields = append(fields, sessionlog.FieldExercises)
	}
	if m.FieldCleared(sessionlog.FieldScore) {
		fields = append(fields, sessionlog.FieldScore)
	}
	if m.FieldCleared(sessionlog.FieldSummary) {
		fields = append(fields, sessionlog.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionLogMutation) ClearField(name string) error {
	switch name {
	case sessionlog.FieldConceptIds:
		m.ClearConceptIds()
		return nil
	case sessionlog.FieldExercises:
		m.ClearExercises()
		return nil
	case sessionlog.FieldScore:
		m.ClearScore()
		return nil
	case sessionlog.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown SessionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionLogMutation) ResetField(name string) error {
	switch name {
	case sessionlog.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionlog.FieldCourseID:
		m.ResetCourseID()
		return nil
	case sessionlog.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionlog.FieldSessionType:
		m.ResetSessionType()
		return nil
	case sessionlog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sessionlog.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case sessionlog.FieldConceptIds:
		m.ResetConceptIds()
		return nil
	case sessionlog.FieldExercises:
		m.ResetExercises()
		return nil
	case sessionlog.FieldScore:
		m.ResetScore()
		return nil
	case sessionlog.FieldSummary:
		m.ResetSummary()
		return nil
	}
	return fmt.Errorf("unknown SessionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionLog edge %s", name)
}

// TransitionEventMutation represents an operation that mutates the TransitionEvent nodes in the graph.
type TransitionEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	course_id        *string
	concept_id       *string
	from_status      *string
	to_status        *string
	trigger          *string
	mastery_score    *float64
	addmastery_score *float64
	session_id       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TransitionEvent, error)
	predicates       []predicate.TransitionEvent
}

var _ ent.Mutation = (*TransitionEventMutation)(nil)

// transitioneventOption allows management of the mutation configuration using functional options.
type transitioneventOption func(*TransitionEventMutation)

// newTransitionEventMutation creates new mutation for the TransitionEvent entity.
func newTransitionEventMutation(c config, op Op, opts ...transitioneventOption) *TransitionEventMutation {
	m := &TransitionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTransitionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransitionEventID sets the ID field of the mutation.
func withTransitionEventID(id int) transitioneventOption {
	return func(m *TransitionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TransitionEvent
		)
		m.oldValue = func(ctx context.Context) (*TransitionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TransitionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransitionEvent sets the old TransitionEvent of the mutation.
func withTransitionEvent(node *TransitionEvent) transitioneventOption {
	return func(m *TransitionEventMutation) {
		m.oldValue = func(context.Context) (*TransitionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransitionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransitionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransitionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransitionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TransitionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TransitionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TransitionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TransitionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TransitionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TransitionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TransitionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TransitionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TransitionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCourseID sets the "course_id" field.
func (m *TransitionEventMutation) SetCourseID(s string) {
	m.course_id = &s
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *TransitionEventMutation) CourseID() (r string, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldCourseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *TransitionEventMutation) ResetCourseID() {
	m.course_id = nil
}

// SetConceptID sets the "concept_id" field.
func (m *TransitionEventMutation) SetConceptID(s string) {
	m.concept_id = &s
}

// ConceptID returns the value of the "concept_id" field in the mutation.
func (m *TransitionEventMutation) ConceptID() (r string, exists bool) {
	v := m.concept_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConceptID returns the old "concept_id" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldConceptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConceptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConceptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConceptID: %w", err)
	}
	return oldValue.ConceptID, nil
}

// ResetConceptID resets all changes to the "concept_id" field.
func (m *TransitionEventMutation) ResetConceptID() {
	m.concept_id = nil
}

// SetFromStatus sets the "from_status" field.
func (m *TransitionEventMutation) SetFromStatus(s string) {
	m.from_status = &s
}

// FromStatus returns the value of the "from_status" field in the mutation.
func (m *TransitionEventMutation) FromStatus() (r string, exists bool) {
	v := m.from_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStatus returns the old "from_status" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldFromStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStatus: %w", err)
	}
	return oldValue.FromStatus, nil
}

// ResetFromStatus resets all changes to the "from_status" field.
func (m *TransitionEventMutation) ResetFromStatus() {
	m.from_status = nil
}

// SetToStatus sets the "to_status" field.
func (m *TransitionEventMutation) SetToStatus(s string) {
	m.to_status = &s
}

// ToStatus returns the value of the "to_status" field in the mutation.
func (m *TransitionEventMutation) ToStatus() (r string, exists bool) {
	v := m.to_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToStatus returns the old "to_status" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldToStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStatus: %w", err)
	}
	return oldValue.ToStatus, nil
}

// ResetToStatus resets all changes to the "to_status" field.
func (m *TransitionEventMutation) ResetToStatus() {
	m.to_status = nil
}

// SetTrigger sets the "trigger" field.
func (m *TransitionEventMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *TransitionEventMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *TransitionEventMutation) ResetTrigger() {
	m.trigger = nil
}

// SetMasteryScore sets the "mastery_score" field.
func (m *TransitionEventMutation) SetMasteryScore(f float64) {
	m.mastery_score = &f
	m.addmastery_score = nil
}

// MasteryScore returns the value of the "mastery_score" field in the mutation.
func (m *TransitionEventMutation) MasteryScore() (r float64, exists bool) {
	v := m.mastery_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryScore returns the old "mastery_score" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldMasteryScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryScore: %w", err)
	}
	return oldValue.MasteryScore, nil
}

// AddMasteryScore adds f to the "mastery_score" field.
func (m *TransitionEventMutation) AddMasteryScore(f float64) {
	if m.addmastery_score != nil {
		*m.addmastery_score += f
	} else {
		m.addmastery_score = &f
	}
}

// AddedMasteryScore returns the value that was added to the "mastery_score" field in this mutation.
func (m *TransitionEventMutation) AddedMasteryScore() (r float64, exists bool) {
	v := m.addmastery_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryScore resets all changes to the "mastery_score" field.
func (m *TransitionEventMutation) ResetMasteryScore() {
	m.mastery_score = nil
	m.addmastery_score = nil
}

// SetSessionID sets the "session_id" field.
func (m *TransitionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TransitionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TransitionEvent entity.
// If the TransitionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransitionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *TransitionEventMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[transitionevent.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *TransitionEventMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[transitionevent.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TransitionEventMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, transitionevent.FieldSessionID)
}

// Where appends a list predicates to the TransitionEventMutation builder.
func (m *TransitionEventMutation) Where(ps ...predicate.TransitionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransitionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransitionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TransitionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransitionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransitionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TransitionEvent).
func (m *TransitionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransitionEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, transitionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, transitionevent.FieldTimestamp)
	}
	if m.course_id != nil {
		fields = append(fields, transitionevent.FieldCourseID)
	}
	if m.concept_id != nil {
		fields = append(fields, transitionevent.FieldConceptID)
	}
	if m.from_status != nil {
		fields = append(fields, transitionevent.FieldFromStatus)
	}
	if m.to_status != nil {
		fields = append(fields, transitionevent.FieldToStatus)
	}
	if m.trigger != nil {
		fields = append(fields, transitionevent.FieldTrigger)
	}
	if m.mastery_score != nil {
		fields = append(fields, transitionevent.FieldMasteryScore)
	}
	if m.session_id != nil {
		fields = append(fields, transitionevent.FieldSessionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransitionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transitionevent.FieldSequence:
		return m.Sequence()
	case transitionevent.FieldTimestamp:
		return m.Timestamp()
	case transitionevent.FieldCourseID:
		return m.CourseID()
	case transitionevent.FieldConceptID:
		return m.ConceptID()
	case transitionevent.FieldFromStatus:
		return m.FromStatus()
	case transitionevent.FieldToStatus:
		return m.ToStatus()
	case transitionevent.FieldTrigger:
		return m.Trigger()
	case transitionevent.FieldMasteryScore:
		return m.MasteryScore()
	case transitionevent.FieldSessionID:
		return m.SessionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransitionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transitionevent.FieldSequence:
		return m.OldSequence(ctx)
	case transitionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case transitionevent.FieldCourseID:
		return m.OldCourseID(ctx)
	case transitionevent.FieldConceptID:
		return m.OldConceptID(ctx)
	case transitionevent.FieldFromStatus:
		return m.OldFromStatus(ctx)
	case transitionevent.FieldToStatus:
		return m.OldToStatus(ctx)
	case transitionevent.FieldTrigger:
		return m.OldTrigger(ctx)
	case transitionevent.FieldMasteryScore:
		return m.OldMasteryScore(ctx)
	case transitionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	}
	return nil, fmt.Errorf("unknown TransitionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransitionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transitionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case transitionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case transitionevent.FieldCourseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case transitionevent.FieldConceptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConceptID(v)
		return nil
	case transitionevent.FieldFromStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStatus(v)
		return nil
	case transitionevent.FieldToStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStatus(v)
		return nil
	case transitionevent.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case transitionevent.FieldMasteryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryScore(v)
		return nil
	case transitionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	}
	return fmt.Errorf("unknown TransitionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransitionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, transitionevent.FieldSequence)
	}
	if m.addmastery_score != nil {
		fields = append(fields, transitionevent.FieldMasteryScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransitionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transitionevent.FieldSequence:
		return m.AddedSequence()
	case transitionevent.FieldMasteryScore:
		return m.AddedMasteryScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransitionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transitionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case transitionevent.FieldMasteryScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryScore(v)
		return nil
	}
	return fmt.Errorf("unknown TransitionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransitionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transitionevent.FieldSessionID) {
		fields = append(fields, transitionevent.FieldSessionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransitionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransitionEventMutation) ClearField(name string) error {
	switch name {
	case transitionevent.FieldSessionID:
		m.ClearSessionID()
		return nil
	}
	return fmt.Errorf("unknown TransitionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransitionEventMutation) ResetField(name string) error {
	switch name {
	case transitionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case transitionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case transitionevent.FieldCourseID:
		m.ResetCourseID()
		return nil
	case transitionevent.FieldConceptID:
		m.ResetConceptID()
		return nil
	case transitionevent.FieldFromStatus:
		m.ResetFromStatus()
		return nil
	case transitionevent.FieldToStatus:
		m.ResetToStatus()
		return nil
	case transitionevent.FieldTrigger:
		m.ResetTrigger()
		return nil
	case transitionevent.FieldMasteryScore:
		m.ResetMasteryScore()
		return nil
	case transitionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	}
	return fmt.Errorf("unknown TransitionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransitionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransitionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransitionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransitionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransitionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransitionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransitionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TransitionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransitionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TransitionEvent edge %s", name)
}
