package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionLog records one completed study or quiz session. Entries are
// append-only and never mutated.
type SessionLog struct {
	ent.Schema
}

func (SessionLog) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// ScoreSummary is the serialized optional score tuple of a session.
type ScoreSummary struct {
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

func (SessionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").NotEmpty(),
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("session_type").
			NotEmpty().
			Comment("study or quiz"),
		field.Time("started_at"),
		field.Time("ended_at"),
		field.JSON("concept_ids", []string{}).
			Optional().
			Comment("Concepts touched, in first-touch order"),
		field.JSON("exercises", []string{}).
			Optional().
			Comment("Exercise identifiers produced during the session"),
		field.JSON("score", &ScoreSummary{}).
			Optional(),
		field.String("summary").
			Optional(),
	}
}

func (SessionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("session_id"),
	}
}
