package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Course is a unit of study: a stable identifier, a display name, and an
// ordered list of unit ids. Courses are immutable once created except for
// unit additions.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable().
			Comment("Stable course identifier, unique across the store"),
		field.String("name").
			NotEmpty(),
		field.JSON("units", []string{}).
			Comment("Ordered unit identifiers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
