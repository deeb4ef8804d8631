package store

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the store's failure taxonomy. Callers match
// with errors.Is.
var (
	// ErrCourseNotFound is returned for operations on an unknown course.
	// The store never creates a course implicitly.
	ErrCourseNotFound = errors.New("course not found")

	// ErrCourseExists is returned when creating a course whose id is taken.
	ErrCourseExists = errors.New("course already exists")

	// ErrConceptNotFound is returned when a concept id is not declared in
	// the course's unit list.
	ErrConceptNotFound = errors.New("concept not found")

	// ErrInvalidPatch is returned before any mutation when a progress
	// patch carries an out-of-range value or an illegal transition.
	ErrInvalidPatch = errors.New("invalid patch")

	// ErrStaleWrite is returned when an update raced a concurrent writer.
	// The caller should re-read and retry; the store never retries itself.
	ErrStaleWrite = errors.New("stale write conflict")

	// ErrCorruptState is returned when a persisted record fails invariant
	// validation on load. It is fatal for that course's load and is never
	// auto-repaired.
	ErrCorruptState = errors.New("corrupt state")
)

// CorruptStateError reports which record failed validation and why. It
// unwraps to ErrCorruptState.
type CorruptStateError struct {
	CourseID  string
	ConceptID string
	Reason    string
}

func (e *CorruptStateError) Error() string {
	if e.ConceptID == "" {
		return fmt.Sprintf("corrupt state in course %q: %s", e.CourseID, e.Reason)
	}
	return fmt.Sprintf("corrupt state in course %q concept %q: %s", e.CourseID, e.ConceptID, e.Reason)
}

func (e *CorruptStateError) Unwrap() error { return ErrCorruptState }
