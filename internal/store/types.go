package store

import (
	"fmt"
	"time"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/mastery"
)

// RecentResultsCap bounds the recent_results ring buffer. The oldest
// entry is evicted when a new result pushes past the cap.
const RecentResultsCap = 10

// Course is a unit of study. Units is the ordered unit id list; courses
// are immutable once created except for unit additions.
type Course struct {
	ID        string
	Name      string
	Units     []string
	CreatedAt time.Time
}

// Concept is a teachable idea declared by a course, carrying its
// lifecycle state and current Bloom level.
type Concept struct {
	ID            string
	Name          string
	Unit          string
	Bloom         mastery.BloomLevel
	Status        mastery.Status
	Prerequisites []string
	Difficulty    float64
	BloomTarget   mastery.BloomLevel
}

// ErrorClass classifies a wrong answer, as judged by the external
// assessor: a slip (knew it, fumbled), a misconception (confidently
// wrong model), or a gap (missing prerequisite knowledge).
type ErrorClass string

const (
	ErrorSlip          ErrorClass = "slip"
	ErrorMisconception ErrorClass = "misconception"
	ErrorGap           ErrorClass = "gap"
)

// Valid reports whether c is a defined error class.
func (c ErrorClass) Valid() bool {
	switch c {
	case ErrorSlip, ErrorMisconception, ErrorGap:
		return true
	}
	return false
}

// ProgressRecord is the per-(course, concept) practice state. A record
// exists iff the concept has been practiced at least once.
type ProgressRecord struct {
	ConceptID     string
	PracticeCount int
	CorrectCount  int
	RecentResults []bool // ring buffer, oldest first
	MasteryScore  float64
	FSRS          fsrs.Memory
	LastPracticed *time.Time
	ErrorHistory  []ErrorClass // append-only
	Version       int64        // 0 until first persisted
}

// NewProgressRecord returns the default record created on first practice.
func NewProgressRecord(conceptID string) ProgressRecord {
	return ProgressRecord{
		ConceptID: conceptID,
		FSRS:      fsrs.NewMemory(),
	}
}

// View projects the record into the mastery engine's input shape.
func (r ProgressRecord) View(bloom mastery.BloomLevel) mastery.ProgressView {
	return mastery.ProgressView{
		PracticeCount: r.PracticeCount,
		CorrectCount:  r.CorrectCount,
		RecentResults: r.RecentResults,
		Stability:     r.FSRS.Stability,
		Bloom:         bloom,
	}
}

// validateRecord checks the persisted-record invariants. Violations mean
// the stored row is corrupt, not that the caller erred.
func validateRecord(courseID string, r ProgressRecord) error {
	fail := func(reason string) error {
		return &CorruptStateError{CourseID: courseID, ConceptID: r.ConceptID, Reason: reason}
	}
	if r.PracticeCount < 0 || r.CorrectCount < 0 {
		return fail("negative practice counters")
	}
	if r.CorrectCount > r.PracticeCount {
		return fail(fmt.Sprintf("correct_count %d exceeds practice_count %d", r.CorrectCount, r.PracticeCount))
	}
	if len(r.RecentResults) > RecentResultsCap {
		return fail(fmt.Sprintf("recent_results holds %d entries, cap is %d", len(r.RecentResults), RecentResultsCap))
	}
	if r.MasteryScore < 0 || r.MasteryScore > 1 {
		return fail(fmt.Sprintf("mastery_score %v outside [0,1]", r.MasteryScore))
	}
	switch r.FSRS.State {
	case fsrs.StateNew:
	case fsrs.StateLearning, fsrs.StateReview, fsrs.StateRelearning:
		if r.FSRS.Stability <= 0 {
			return fail("non-positive stability on a reviewed concept")
		}
		if r.FSRS.Difficulty < 1 || r.FSRS.Difficulty > 10 {
			return fail(fmt.Sprintf("difficulty %v outside [1,10]", r.FSRS.Difficulty))
		}
	default:
		return fail(fmt.Sprintf("unknown fsrs state %q", r.FSRS.State))
	}
	if r.FSRS.ScheduledDays < 0 || r.FSRS.Reps < 0 || r.FSRS.Lapses < 0 {
		return fail("negative fsrs counters")
	}
	for _, e := range r.ErrorHistory {
		if !e.Valid() {
			return fail(fmt.Sprintf("unknown error class %q", e))
		}
	}
	return nil
}

// SessionType distinguishes study sessions from graded quizzes.
type SessionType string

const (
	SessionStudy SessionType = "study"
	SessionQuiz  SessionType = "quiz"
)

// Valid reports whether t is a defined session type.
func (t SessionType) Valid() bool { return t == SessionStudy || t == SessionQuiz }

// Score is the optional graded outcome of a session.
type Score struct {
	Correct int
	Total   int
	Percent float64
}

// SessionLogEntry is one completed session. Entries are immutable once
// appended.
type SessionLogEntry struct {
	Sequence   int64 // assigned by the store on append
	SessionID  string
	Type       SessionType
	StartedAt  time.Time
	EndedAt    time.Time
	ConceptIDs []string
	Exercises  []string
	Score      *Score
	Summary    string
}
