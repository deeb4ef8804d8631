package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord holds the per-(course, concept) practice counters and the
// embedded FSRS memory state. A record exists only once the concept has
// been practiced at least once.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.String("concept_id").NotEmpty(),
		field.Int("practice_count").
			Default(0).
			NonNegative(),
		field.Int("correct_count").
			Default(0).
			NonNegative(),
		field.JSON("recent_results", []bool{}).
			Optional().
			Comment("Ring buffer of the last 10 outcomes, oldest first"),
		field.Float("mastery_score").
			Default(0).
			Comment("Composite mastery confidence in [0,1]"),
		field.Float("fsrs_stability").
			Default(0).
			Comment("Memory stability in days"),
		field.Float("fsrs_difficulty").
			Default(0).
			Comment("FSRS difficulty, clamped to [1,10] once reviewed"),
		field.Float("fsrs_elapsed_days").
			Default(0),
		field.Int("fsrs_scheduled_days").
			Default(0).
			NonNegative(),
		field.Int("fsrs_reps").
			Default(0).
			NonNegative(),
		field.Int("fsrs_lapses").
			Default(0).
			NonNegative(),
		field.String("fsrs_state").
			Default("new").
			Comment("new|learning|review|relearning"),
		field.Time("due").
			Optional().
			Nillable(),
		field.Time("last_practiced").
			Optional().
			Nillable(),
		field.JSON("error_history", []string{}).
			Optional().
			Comment("Append-only classified errors: slip|misconception|gap"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency token, bumped on every update"),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id", "concept_id").Unique(),
		index.Fields("course_id", "due"),
	}
}
