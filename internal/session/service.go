// Package session orchestrates a practice session: it threads graded
// outcomes through the scheduler and the mastery policy, persists the
// resulting patch atomically, and logs the session when it ends. It holds
// no learner state of its own; every call re-reads from the store.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/mastery"
	"github.com/tutorkit/tutorkit/internal/store"
)

// ErrConceptDropped is returned when an outcome targets a dropped
// concept. Dropped concepts are frozen: no reviews, no score changes.
var ErrConceptDropped = errors.New("concept is dropped")

// Service wires the pure scheduling and mastery policies to the store
// repositories. Clock is swappable for tests and defaults to time.Now.
type Service struct {
	Courses  store.CourseRepo
	Progress store.ProgressRepo
	Sessions store.SessionRepo
	Events   store.EventRepo

	Params fsrs.Params
	Policy mastery.Config
	Clock  func() time.Time
}

// NewService builds a Service over the store with default policies.
func NewService(s *store.Store) *Service {
	return &Service{
		Courses:  s.Courses(),
		Progress: s.Progress(),
		Sessions: s.Sessions(),
		Events:   s.Events(),
		Params:   fsrs.DefaultParams(),
		Policy:   mastery.DefaultConfig(),
		Clock:    time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Session tracks one in-flight practice session. It lives in memory only;
// nothing is persisted until End.
type Session struct {
	ID        string
	CourseID  string
	Type      store.SessionType
	StartedAt time.Time

	conceptIDs []string // first-touch order
	seen       map[string]bool
	exercises  []string
	correct    int
	total      int
}

// Start opens a session against an existing course.
func (s *Service) Start(ctx context.Context, courseID string, sessionType store.SessionType) (*Session, error) {
	if !sessionType.Valid() {
		return nil, fmt.Errorf("%w: unknown session type %q", store.ErrInvalidPatch, sessionType)
	}
	if _, err := s.Courses.Get(ctx, courseID); err != nil {
		return nil, err
	}
	return &Session{
		ID:        uuid.NewString(),
		CourseID:  courseID,
		Type:      sessionType,
		StartedAt: s.now(),
		seen:      make(map[string]bool),
	}, nil
}

// Track records that an exercise on conceptID was attempted in this
// session. It only updates the session tally; RecordOutcome does the
// persistence.
func (sess *Session) Track(conceptID, exercise string, correct bool) {
	if !sess.seen[conceptID] {
		sess.seen[conceptID] = true
		sess.conceptIDs = append(sess.conceptIDs, conceptID)
	}
	if exercise != "" {
		sess.exercises = append(sess.exercises, exercise)
	}
	sess.total++
	if correct {
		sess.correct++
	}
}

// Outcome is one graded answer.
type Outcome struct {
	Rating     fsrs.Rating
	Correct    bool
	ErrorClass store.ErrorClass // set on incorrect answers only
	SessionID  string
}

// Result reports the state after an outcome was applied.
type Result struct {
	Record     store.ProgressRecord
	Bloom      mastery.BloomLevel
	Status     mastery.Status
	Transition *mastery.Transition
	Score      float64
	Adjustment mastery.Adjustment
	NextDue    time.Time
}

// RecordOutcome applies one graded outcome to a concept: FSRS reschedules
// the memory, the mastery policy rescores and possibly advances Bloom
// level and status, and the whole change lands as a single versioned
// patch. Review and transition events are appended afterwards.
func (s *Service) RecordOutcome(ctx context.Context, courseID, conceptID string, out Outcome) (*Result, error) {
	if err := validateOutcome(out); err != nil {
		return nil, err
	}

	concepts, err := s.Courses.Concepts(ctx, courseID)
	if err != nil {
		return nil, err
	}
	var target *store.Concept
	for i := range concepts {
		if concepts[i].ID == conceptID {
			target = &concepts[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("concept %q: %w", conceptID, store.ErrConceptNotFound)
	}
	if target.Status == mastery.StatusDropped {
		return nil, fmt.Errorf("concept %q: %w", conceptID, ErrConceptDropped)
	}

	records, err := s.Progress.Load(ctx, courseID)
	if err != nil {
		return nil, err
	}
	cur, ok := records[conceptID]
	if !ok {
		cur = store.NewProgressRecord(conceptID)
	}

	now := s.now()
	mem, err := fsrs.Review(cur.FSRS, out.Rating, now, s.Params)
	if err != nil {
		return nil, err
	}

	practice := cur.PracticeCount + 1
	correctCount := cur.CorrectCount
	if out.Correct {
		correctCount++
	}

	// Score against the post-outcome window so the new result counts.
	window := append(append([]bool(nil), cur.RecentResults...), out.Correct)
	if len(window) > store.RecentResultsCap {
		window = window[len(window)-store.RecentResultsCap:]
	}
	view := mastery.ProgressView{
		PracticeCount: practice,
		CorrectCount:  correctCount,
		RecentResults: window,
		Stability:     mem.Stability,
		Bloom:         target.Bloom,
	}

	bloom := target.Bloom
	if next, ok := bloom.Next(); ok && s.Policy.ShouldAdvance(view) {
		bloom = next
		view.Bloom = bloom
	}

	status := s.Policy.NextStatus(target.Status, view)
	score := s.Policy.Score(view)

	patch := store.ConceptPatch{
		PracticeCount:   &practice,
		CorrectCount:    &correctCount,
		PushResult:      &out.Correct,
		MasteryScore:    &score,
		FSRS:            &mem,
		LastPracticed:   &now,
		ExpectedVersion: &cur.Version,
	}
	if !out.Correct && out.ErrorClass != "" {
		errClass := out.ErrorClass
		patch.PushError = &errClass
	}
	if status != target.Status {
		st := status
		patch.Status = &st
	}
	if bloom != target.Bloom {
		b := bloom
		patch.Bloom = &b
	}

	updated, err := s.Progress.Update(ctx, courseID, conceptID, patch)
	if err != nil {
		return nil, err
	}

	if err := s.Events.AppendReview(ctx, store.ReviewEventData{
		CourseID:     courseID,
		ConceptID:    conceptID,
		SessionID:    out.SessionID,
		Rating:       out.Rating,
		Correct:      out.Correct,
		ErrorClass:   out.ErrorClass,
		Stability:    mem.Stability,
		IntervalDays: mem.ScheduledDays,
	}); err != nil {
		return nil, err
	}

	result := &Result{
		Record:     updated[conceptID],
		Bloom:      bloom,
		Status:     status,
		Score:      score,
		Adjustment: s.Policy.DifficultyAdjustment(view),
		NextDue:    mem.Due,
	}
	if status != target.Status {
		result.Transition = &mastery.Transition{
			ConceptID: conceptID,
			From:      target.Status,
			To:        status,
			Trigger:   transitionTrigger(target.Status, status),
		}
		if err := s.Events.AppendTransition(ctx, store.TransitionEventData{
			CourseID:     courseID,
			ConceptID:    conceptID,
			SessionID:    out.SessionID,
			From:         target.Status,
			To:           status,
			Trigger:      result.Transition.Trigger,
			MasteryScore: score,
		}); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// End closes the session and appends its log entry. Quiz sessions carry
// their score tuple; study sessions do not.
func (s *Service) End(ctx context.Context, sess *Session, summary string) error {
	entry := store.SessionLogEntry{
		SessionID:  sess.ID,
		Type:       sess.Type,
		StartedAt:  sess.StartedAt,
		EndedAt:    s.now(),
		ConceptIDs: sess.conceptIDs,
		Exercises:  sess.exercises,
		Summary:    summary,
	}
	if sess.Type == store.SessionQuiz && sess.total > 0 {
		entry.Score = &store.Score{
			Correct: sess.correct,
			Total:   sess.total,
			Percent: 100 * float64(sess.correct) / float64(sess.total),
		}
	}
	return s.Sessions.Append(ctx, sess.CourseID, entry)
}

func validateOutcome(out Outcome) error {
	if !out.Rating.Valid() {
		return fmt.Errorf("%w: rating %d", store.ErrInvalidPatch, out.Rating)
	}
	if out.Correct && out.ErrorClass != "" {
		return fmt.Errorf("%w: error class on a correct answer", store.ErrInvalidPatch)
	}
	if out.ErrorClass != "" && !out.ErrorClass.Valid() {
		return fmt.Errorf("%w: unknown error class %q", store.ErrInvalidPatch, out.ErrorClass)
	}
	return nil
}

func transitionTrigger(from, to mastery.Status) string {
	switch {
	case from == mastery.StatusNew && to == mastery.StatusLearning:
		return "first-practice"
	case from == mastery.StatusLearning && to == mastery.StatusActive:
		return "bloom-apply"
	case from == mastery.StatusActive && to == mastery.StatusMastered:
		return "mastery"
	}
	return "practice"
}
