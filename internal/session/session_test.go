package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/mastery"
	"github.com/tutorkit/tutorkit/internal/store"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type mockCourseRepo struct {
	course   store.Course
	concepts []store.Concept
}

func (m *mockCourseRepo) List(ctx context.Context) ([]store.Course, error) {
	return []store.Course{m.course}, nil
}

func (m *mockCourseRepo) Get(ctx context.Context, courseID string) (*store.Course, error) {
	if courseID != m.course.ID {
		return nil, store.ErrCourseNotFound
	}
	c := m.course
	return &c, nil
}

func (m *mockCourseRepo) Create(ctx context.Context, c store.Course) error { return nil }

func (m *mockCourseRepo) AddUnit(ctx context.Context, courseID, unitID string) error { return nil }

func (m *mockCourseRepo) Concepts(ctx context.Context, courseID string) ([]store.Concept, error) {
	if courseID != m.course.ID {
		return nil, store.ErrCourseNotFound
	}
	return append([]store.Concept(nil), m.concepts...), nil
}

func (m *mockCourseRepo) DeclareConcepts(ctx context.Context, courseID string, concepts []store.Concept) error {
	return nil
}

func (m *mockCourseRepo) SetConceptStatus(ctx context.Context, courseID, conceptID string, to mastery.Status) error {
	return nil
}

type mockProgressRepo struct {
	records   map[string]store.ProgressRecord
	lastPatch *store.ConceptPatch
}

func (m *mockProgressRepo) Load(ctx context.Context, courseID string) (map[string]store.ProgressRecord, error) {
	out := make(map[string]store.ProgressRecord, len(m.records))
	for k, v := range m.records {
		out[k] = v
	}
	return out, nil
}

func (m *mockProgressRepo) Update(ctx context.Context, courseID, conceptID string, patch store.ConceptPatch) (map[string]store.ProgressRecord, error) {
	rec, ok := m.records[conceptID]
	if !ok {
		rec = store.NewProgressRecord(conceptID)
	}
	if patch.ExpectedVersion != nil && *patch.ExpectedVersion != rec.Version {
		return nil, store.ErrStaleWrite
	}
	if patch.PracticeCount != nil {
		rec.PracticeCount = *patch.PracticeCount
	}
	if patch.CorrectCount != nil {
		rec.CorrectCount = *patch.CorrectCount
	}
	if patch.PushResult != nil {
		rec.RecentResults = append(rec.RecentResults, *patch.PushResult)
		if len(rec.RecentResults) > store.RecentResultsCap {
			rec.RecentResults = rec.RecentResults[len(rec.RecentResults)-store.RecentResultsCap:]
		}
	}
	if patch.MasteryScore != nil {
		rec.MasteryScore = *patch.MasteryScore
	}
	if patch.FSRS != nil {
		rec.FSRS = *patch.FSRS
	}
	if patch.LastPracticed != nil {
		t := *patch.LastPracticed
		rec.LastPracticed = &t
	}
	if patch.PushError != nil {
		rec.ErrorHistory = append(rec.ErrorHistory, *patch.PushError)
	}
	rec.Version++
	if m.records == nil {
		m.records = make(map[string]store.ProgressRecord)
	}
	m.records[conceptID] = rec
	m.lastPatch = &patch
	return m.Load(ctx, courseID)
}

type mockSessionRepo struct {
	entries []store.SessionLogEntry
}

func (m *mockSessionRepo) Append(ctx context.Context, courseID string, entry store.SessionLogEntry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockSessionRepo) List(ctx context.Context, courseID string) ([]store.SessionLogEntry, error) {
	return m.entries, nil
}

type mockEventRepo struct {
	reviews     []store.ReviewEventData
	transitions []store.TransitionEventData
}

func (m *mockEventRepo) AppendReview(ctx context.Context, data store.ReviewEventData) error {
	m.reviews = append(m.reviews, data)
	return nil
}

func (m *mockEventRepo) AppendTransition(ctx context.Context, data store.TransitionEventData) error {
	m.transitions = append(m.transitions, data)
	return nil
}

func (m *mockEventRepo) RecentReviewAccuracy(ctx context.Context, courseID, conceptID string, n int) (float64, int, error) {
	return 0, 0, nil
}

type fixture struct {
	svc      *Service
	courses  *mockCourseRepo
	progress *mockProgressRepo
	sessions *mockSessionRepo
	events   *mockEventRepo
}

func newFixture(concepts ...store.Concept) *fixture {
	f := &fixture{
		courses: &mockCourseRepo{
			course:   store.Course{ID: "c1", Name: "Course", Units: []string{"u1"}},
			concepts: concepts,
		},
		progress: &mockProgressRepo{records: make(map[string]store.ProgressRecord)},
		sessions: &mockSessionRepo{},
		events:   &mockEventRepo{},
	}
	f.svc = &Service{
		Courses:  f.courses,
		Progress: f.progress,
		Sessions: f.sessions,
		Events:   f.events,
		Params:   fsrs.DefaultParams(),
		Policy:   mastery.DefaultConfig(),
		Clock:    func() time.Time { return testNow },
	}
	return f
}

func conceptFixture(id string, status mastery.Status, bloom mastery.BloomLevel) store.Concept {
	return store.Concept{
		ID:          id,
		Name:        id,
		Unit:        "u1",
		Bloom:       bloom,
		Status:      status,
		Difficulty:  0.5,
		BloomTarget: mastery.Apply,
	}
}

func TestRecordOutcomeFirstPractice(t *testing.T) {
	f := newFixture(conceptFixture("vars", mastery.StatusNew, mastery.Remember))
	ctx := context.Background()

	res, err := f.svc.RecordOutcome(ctx, "c1", "vars", Outcome{Rating: fsrs.Good, Correct: true})
	if err != nil {
		t.Fatalf("record outcome: %v", err)
	}

	if res.Record.PracticeCount != 1 || res.Record.CorrectCount != 1 {
		t.Errorf("counters = %d/%d, want 1/1", res.Record.CorrectCount, res.Record.PracticeCount)
	}
	if res.Record.FSRS.State != fsrs.StateReview {
		t.Errorf("fsrs state = %s, want review after first good", res.Record.FSRS.State)
	}
	if !res.NextDue.Equal(testNow.AddDate(0, 0, res.Record.FSRS.ScheduledDays)) {
		t.Errorf("next due = %v, scheduled days = %d", res.NextDue, res.Record.FSRS.ScheduledDays)
	}
	if res.Transition == nil || res.Transition.From != mastery.StatusNew || res.Transition.To != mastery.StatusLearning {
		t.Fatalf("transition = %+v, want new -> learning", res.Transition)
	}
	if res.Transition.Trigger != "first-practice" {
		t.Errorf("trigger = %q", res.Transition.Trigger)
	}

	if len(f.events.reviews) != 1 {
		t.Fatalf("got %d review events, want 1", len(f.events.reviews))
	}
	if f.events.reviews[0].Rating != fsrs.Good || !f.events.reviews[0].Correct {
		t.Errorf("review event = %+v", f.events.reviews[0])
	}
	if len(f.events.transitions) != 1 || f.events.transitions[0].To != mastery.StatusLearning {
		t.Errorf("transition events = %+v", f.events.transitions)
	}
	if f.progress.lastPatch.Status == nil || *f.progress.lastPatch.Status != mastery.StatusLearning {
		t.Errorf("patch did not carry the status change")
	}
	if f.progress.lastPatch.ExpectedVersion == nil || *f.progress.lastPatch.ExpectedVersion != 0 {
		t.Errorf("patch must assert the version that was read")
	}
}

func TestRecordOutcomeDroppedConcept(t *testing.T) {
	f := newFixture(conceptFixture("vars", mastery.StatusDropped, mastery.Understand))

	_, err := f.svc.RecordOutcome(context.Background(), "c1", "vars", Outcome{Rating: fsrs.Good, Correct: true})
	if !errors.Is(err, ErrConceptDropped) {
		t.Fatalf("got %v, want ErrConceptDropped", err)
	}
	if len(f.events.reviews) != 0 {
		t.Error("dropped concept produced a review event")
	}
	if len(f.progress.records) != 0 {
		t.Error("dropped concept produced a progress record")
	}
}

func TestRecordOutcomeUnknownConcept(t *testing.T) {
	f := newFixture(conceptFixture("vars", mastery.StatusNew, mastery.Remember))
	_, err := f.svc.RecordOutcome(context.Background(), "c1", "ghost", Outcome{Rating: fsrs.Good, Correct: true})
	if !errors.Is(err, store.ErrConceptNotFound) {
		t.Fatalf("got %v, want ErrConceptNotFound", err)
	}
}

func TestRecordOutcomeRejectsBadInput(t *testing.T) {
	f := newFixture(conceptFixture("vars", mastery.StatusNew, mastery.Remember))
	ctx := context.Background()

	_, err := f.svc.RecordOutcome(ctx, "c1", "vars", Outcome{Rating: 9, Correct: true})
	if !errors.Is(err, store.ErrInvalidPatch) {
		t.Errorf("bad rating: got %v, want ErrInvalidPatch", err)
	}
	_, err = f.svc.RecordOutcome(ctx, "c1", "vars", Outcome{Rating: fsrs.Good, Correct: true, ErrorClass: store.ErrorSlip})
	if !errors.Is(err, store.ErrInvalidPatch) {
		t.Errorf("error class on correct answer: got %v, want ErrInvalidPatch", err)
	}
	_, err = f.svc.RecordOutcome(ctx, "c1", "vars", Outcome{Rating: fsrs.Again, Correct: false, ErrorClass: "typo"})
	if !errors.Is(err, store.ErrInvalidPatch) {
		t.Errorf("unknown error class: got %v, want ErrInvalidPatch", err)
	}
}

func TestRecordOutcomeIncorrectTracksError(t *testing.T) {
	f := newFixture(conceptFixture("vars", mastery.StatusLearning, mastery.Understand))
	f.progress.records["vars"] = store.ProgressRecord{
		ConceptID:     "vars",
		PracticeCount: 4,
		CorrectCount:  3,
		RecentResults: []bool{true, true, false, true},
		FSRS: fsrs.Memory{
			Stability:     5,
			Difficulty:    5,
			ScheduledDays: 5,
			Reps:          4,
			State:         fsrs.StateReview,
			Due:           testNow.AddDate(0, 0, -1),
		},
		Version: 4,
	}

	res, err := f.svc.RecordOutcome(context.Background(), "c1", "vars", Outcome{
		Rating:     fsrs.Again,
		Correct:    false,
		ErrorClass: store.ErrorMisconception,
	})
	if err != nil {
		t.Fatalf("record outcome: %v", err)
	}

	if res.Record.FSRS.State != fsrs.StateRelearning {
		t.Errorf("state = %s, want relearning after a lapse", res.Record.FSRS.State)
	}
	if res.Record.FSRS.Lapses != 1 {
		t.Errorf("lapses = %d, want 1", res.Record.FSRS.Lapses)
	}
	if len(res.Record.ErrorHistory) != 1 || res.Record.ErrorHistory[0] != store.ErrorMisconception {
		t.Errorf("error history = %v", res.Record.ErrorHistory)
	}
	if res.Transition != nil {
		t.Errorf("unexpected transition %+v", res.Transition)
	}
	if f.events.reviews[0].ErrorClass != store.ErrorMisconception {
		t.Errorf("review event error class = %q", f.events.reviews[0].ErrorClass)
	}
}

func TestRecordOutcomeBloomAdvance(t *testing.T) {
	f := newFixture(conceptFixture("vars", mastery.StatusLearning, mastery.Understand))
	f.progress.records["vars"] = store.ProgressRecord{
		ConceptID:     "vars",
		PracticeCount: 6,
		CorrectCount:  6,
		RecentResults: []bool{true, true, true, true, true, true},
		FSRS: fsrs.Memory{
			Stability:     20,
			Difficulty:    4,
			ScheduledDays: 20,
			Reps:          6,
			State:         fsrs.StateReview,
			Due:           testNow,
		},
		Version: 6,
	}

	res, err := f.svc.RecordOutcome(context.Background(), "c1", "vars", Outcome{Rating: fsrs.Good, Correct: true})
	if err != nil {
		t.Fatalf("record outcome: %v", err)
	}
	if res.Bloom != mastery.Apply {
		t.Errorf("bloom = %s, want apply", res.Bloom)
	}
	if res.Status != mastery.StatusActive {
		t.Errorf("status = %s, want active once bloom reaches apply", res.Status)
	}
	if res.Transition == nil || res.Transition.Trigger != "bloom-apply" {
		t.Errorf("transition = %+v", res.Transition)
	}
	if f.progress.lastPatch.Bloom == nil || *f.progress.lastPatch.Bloom != mastery.Apply {
		t.Error("patch did not carry the bloom advance")
	}
}

func TestRecordOutcomeMastery(t *testing.T) {
	f := newFixture(conceptFixture("vars", mastery.StatusActive, mastery.Evaluate))
	f.progress.records["vars"] = store.ProgressRecord{
		ConceptID:     "vars",
		PracticeCount: 20,
		CorrectCount:  20,
		RecentResults: []bool{true, true, true, true, true, true, true, true, true, true},
		FSRS: fsrs.Memory{
			Stability:     40,
			Difficulty:    3,
			ScheduledDays: 40,
			Reps:          20,
			State:         fsrs.StateReview,
			Due:           testNow,
		},
		Version: 20,
	}

	res, err := f.svc.RecordOutcome(context.Background(), "c1", "vars", Outcome{Rating: fsrs.Easy, Correct: true})
	if err != nil {
		t.Fatalf("record outcome: %v", err)
	}
	if res.Bloom != mastery.Create {
		t.Errorf("bloom = %s, want create", res.Bloom)
	}
	if res.Status != mastery.StatusMastered {
		t.Errorf("status = %s, want mastered", res.Status)
	}
	if res.Transition == nil || res.Transition.Trigger != "mastery" {
		t.Errorf("transition = %+v", res.Transition)
	}
	if res.Score < 0.90 {
		t.Errorf("score = %v, want at least the mastery threshold", res.Score)
	}
}

func TestStartAndEndQuizSession(t *testing.T) {
	f := newFixture(conceptFixture("vars", mastery.StatusLearning, mastery.Understand))
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "c1", store.SessionQuiz)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("empty session id")
	}

	sess.Track("vars", "ex-1", true)
	sess.Track("vars", "ex-2", false)
	sess.Track("funcs", "ex-3", true)

	if err := f.svc.End(ctx, sess, "quiz over vars and funcs"); err != nil {
		t.Fatalf("end: %v", err)
	}

	if len(f.sessions.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(f.sessions.entries))
	}
	entry := f.sessions.entries[0]
	if entry.SessionID != sess.ID || entry.Type != store.SessionQuiz {
		t.Errorf("entry = %+v", entry)
	}
	if len(entry.ConceptIDs) != 2 || entry.ConceptIDs[0] != "vars" || entry.ConceptIDs[1] != "funcs" {
		t.Errorf("concept ids = %v, want first-touch order [vars funcs]", entry.ConceptIDs)
	}
	if len(entry.Exercises) != 3 {
		t.Errorf("exercises = %v", entry.Exercises)
	}
	if entry.Score == nil || entry.Score.Correct != 2 || entry.Score.Total != 3 {
		t.Fatalf("score = %+v", entry.Score)
	}
}

func TestEndStudySessionHasNoScore(t *testing.T) {
	f := newFixture(conceptFixture("vars", mastery.StatusLearning, mastery.Understand))
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "c1", store.SessionStudy)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	sess.Track("vars", "", true)
	if err := f.svc.End(ctx, sess, ""); err != nil {
		t.Fatalf("end: %v", err)
	}
	if f.sessions.entries[0].Score != nil {
		t.Errorf("study session grew a score: %+v", f.sessions.entries[0].Score)
	}
}

func TestStartUnknownCourse(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Start(context.Background(), "ghost", store.SessionStudy)
	if !errors.Is(err, store.ErrCourseNotFound) {
		t.Fatalf("got %v, want ErrCourseNotFound", err)
	}
}
