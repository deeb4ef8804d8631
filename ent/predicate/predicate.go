// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Concept is the predicate function for concept builders.
type Concept func(*sql.Selector)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// SessionLog is the predicate function for sessionlog builders.
type SessionLog func(*sql.Selector)

// TransitionEvent is the predicate function for transitionevent builders.
type TransitionEvent func(*sql.Selector)
