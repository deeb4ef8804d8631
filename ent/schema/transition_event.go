package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TransitionEvent records a concept status change for audit and analytics.
type TransitionEvent struct {
	ent.Schema
}

func (TransitionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TransitionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.String("from_status").NotEmpty(),
		field.String("to_status").NotEmpty(),
		field.String("trigger").NotEmpty(),
		field.Float("mastery_score"),
		field.String("session_id").Optional(),
	}
}

func (TransitionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "concept_id"),
	}
}
