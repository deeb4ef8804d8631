package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single graded review for audit and analytics.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.Int("rating").
			Range(1, 4).
			Comment("1=again 2=hard 3=good 4=easy"),
		field.Bool("correct"),
		field.String("error_class").
			Optional().
			Comment("slip|misconception|gap, set on incorrect answers"),
		field.Float("stability").
			Comment("Post-review stability in days"),
		field.Int("interval_days").
			NonNegative(),
		field.String("session_id").Optional(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "concept_id"),
	}
}
