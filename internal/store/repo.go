package store

import (
	"context"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/mastery"
)

// CourseRepo manages course metadata and the concepts a course declares.
type CourseRepo interface {
	// List returns all courses ordered by id. An empty store yields an
	// empty slice, never an error.
	List(ctx context.Context) ([]Course, error)

	// Get returns a course or ErrCourseNotFound.
	Get(ctx context.Context, courseID string) (*Course, error)

	// Create persists a new course. Fails with ErrCourseExists if the id
	// is taken.
	Create(ctx context.Context, c Course) error

	// AddUnit appends a unit id to the course's ordered unit list. Adding
	// an existing unit is a no-op.
	AddUnit(ctx context.Context, courseID, unitID string) error

	// Concepts returns the concepts declared by the course's units.
	Concepts(ctx context.Context, courseID string) ([]Concept, error)

	// DeclareConcepts persists new concept declarations for a course.
	// Already-declared concept ids are left untouched.
	DeclareConcepts(ctx context.Context, courseID string, concepts []Concept) error

	// SetConceptStatus applies an explicit external status change (the
	// only way a concept becomes dropped). Illegal transitions fail with
	// ErrInvalidPatch.
	SetConceptStatus(ctx context.Context, courseID, conceptID string, to mastery.Status) error
}

// ProgressRepo manages per-concept progress records.
type ProgressRepo interface {
	// Load returns the full concept_id -> record mapping for a course.
	// Courses where nothing has been practiced yield an empty map.
	// Records failing invariant validation fail the load with
	// ErrCorruptState.
	Load(ctx context.Context, courseID string) (map[string]ProgressRecord, error)

	// Update atomically applies a partial patch to one concept's record,
	// creating the record with defaults if none exists, and returns the
	// full updated mapping. Either the whole patch is persisted or none
	// of it.
	Update(ctx context.Context, courseID, conceptID string, patch ConceptPatch) (map[string]ProgressRecord, error)
}

// SessionRepo is the append-only session log.
type SessionRepo interface {
	// Append persists a session log entry. Prior entries are never
	// mutated.
	Append(ctx context.Context, courseID string, entry SessionLogEntry) error

	// List returns a course's entries in append order.
	List(ctx context.Context, courseID string) ([]SessionLogEntry, error)
}

// ReviewEventData captures one graded review for the audit log.
type ReviewEventData struct {
	CourseID     string
	ConceptID    string
	SessionID    string
	Rating       fsrs.Rating
	Correct      bool
	ErrorClass   ErrorClass
	Stability    float64
	IntervalDays int
}

// TransitionEventData captures one status change for the audit log.
type TransitionEventData struct {
	CourseID     string
	ConceptID    string
	SessionID    string
	From         mastery.Status
	To           mastery.Status
	Trigger      string
	MasteryScore float64
}

// EventRepo provides append access to the audit event tables. All events
// share one global sequence so cross-table ordering is well defined.
type EventRepo interface {
	AppendReview(ctx context.Context, data ReviewEventData) error
	AppendTransition(ctx context.Context, data TransitionEventData) error

	// RecentReviewAccuracy returns the accuracy over the last n reviews
	// of a concept and how many reviews that covered.
	RecentReviewAccuracy(ctx context.Context, courseID, conceptID string, n int) (float64, int, error)
}
