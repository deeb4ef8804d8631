package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Concept is a single teachable idea declared by a course's unit list.
// Lifecycle state (status) and the current Bloom level live here; the
// per-practice numbers live on ProgressRecord.
type Concept struct {
	ent.Schema
}

func (Concept) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.String("unit_id").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("bloom_level").
			Default("remember").
			Comment("remember|understand|apply|analyze|evaluate|create"),
		field.String("status").
			Default("new").
			Comment("new|learning|active|mastered|dropped"),
		field.JSON("prerequisites", []string{}).
			Optional().
			Comment("Concept ids within the same course"),
		field.Float("difficulty").
			Default(0.5).
			Comment("Authoring-time difficulty estimate in [0,1]"),
		field.String("bloom_target").
			Default("apply").
			Comment("Bloom level the course author considers sufficient"),
	}
}

func (Concept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "concept_id").Unique(),
		index.Fields("course_id", "status"),
	}
}
