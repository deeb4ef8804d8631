package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/mastery"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedCourse(t *testing.T, s *Store, courseID string, conceptIDs ...string) {
	t.Helper()
	ctx := context.Background()
	err := s.Courses().Create(ctx, Course{ID: courseID, Name: "Test Course", Units: []string{"u1"}})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	var concepts []Concept
	for _, id := range conceptIDs {
		concepts = append(concepts, Concept{
			ID:          id,
			Name:        id,
			Unit:        "u1",
			Bloom:       mastery.Remember,
			Status:      mastery.StatusNew,
			Difficulty:  0.5,
			BloomTarget: mastery.Apply,
		})
	}
	if err := s.Courses().DeclareConcepts(ctx, courseID, concepts); err != nil {
		t.Fatalf("declare concepts: %v", err)
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCourseCreateGetList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Courses()

	if _, err := repo.Get(ctx, "go-basics"); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("get missing course: got %v, want ErrCourseNotFound", err)
	}

	err := repo.Create(ctx, Course{ID: "go-basics", Name: "Go Basics", Units: []string{"u1", "u2"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, Course{ID: "go-basics", Name: "Dup"}); !errors.Is(err, ErrCourseExists) {
		t.Fatalf("duplicate create: got %v, want ErrCourseExists", err)
	}

	c, err := repo.Get(ctx, "go-basics")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if c.Name != "Go Basics" || len(c.Units) != 2 {
		t.Fatalf("unexpected course: %+v", c)
	}

	courses, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("list returned %d courses, want 1", len(courses))
	}
}

func TestCourseAddUnitIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Courses()

	if err := repo.Create(ctx, Course{ID: "c1", Name: "C1", Units: []string{"u1"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.AddUnit(ctx, "c1", "u2"); err != nil {
		t.Fatalf("add unit: %v", err)
	}
	if err := repo.AddUnit(ctx, "c1", "u2"); err != nil {
		t.Fatalf("re-add unit: %v", err)
	}
	c, err := repo.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(c.Units) != 2 || c.Units[0] != "u1" || c.Units[1] != "u2" {
		t.Fatalf("units = %v, want [u1 u2]", c.Units)
	}
}

func TestDeclareConceptsSkipsExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedCourse(t, s, "c1", "vars")

	// Re-declare with a different name; the original must survive.
	err := s.Courses().DeclareConcepts(ctx, "c1", []Concept{
		{ID: "vars", Name: "Changed", Unit: "u1"},
		{ID: "funcs", Name: "Functions", Unit: "u1"},
	})
	if err != nil {
		t.Fatalf("declare: %v", err)
	}

	concepts, err := s.Courses().Concepts(ctx, "c1")
	if err != nil {
		t.Fatalf("concepts: %v", err)
	}
	if len(concepts) != 2 {
		t.Fatalf("got %d concepts, want 2", len(concepts))
	}
	byID := map[string]Concept{}
	for _, c := range concepts {
		byID[c.ID] = c
	}
	if byID["vars"].Name != "vars" {
		t.Errorf("existing concept was overwritten: name = %q", byID["vars"].Name)
	}
	if byID["funcs"].Status != mastery.StatusNew || byID["funcs"].Bloom != mastery.Remember {
		t.Errorf("new concept defaults wrong: %+v", byID["funcs"])
	}
}

func TestProgressLoadEmptyCourse(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")

	records, err := s.Progress().Load(context.Background(), "c1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty map, got %d records", len(records))
	}
}

func TestProgressLoadUnknownCourse(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Progress().Load(context.Background(), "ghost")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("got %v, want ErrCourseNotFound", err)
	}
}

func TestProgressUpdateUnknownConcept(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")

	one := 1
	_, err := s.Progress().Update(context.Background(), "c1", "ghost", ConceptPatch{PracticeCount: &one})
	if !errors.Is(err, ErrConceptNotFound) {
		t.Fatalf("got %v, want ErrConceptNotFound", err)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	mem := fsrs.Memory{
		Stability:     4.93,
		Difficulty:    5.2,
		ElapsedDays:   0,
		ScheduledDays: 5,
		Reps:          1,
		Lapses:        0,
		State:         fsrs.StateReview,
		Due:           now.AddDate(0, 0, 5),
	}
	practice, correct := 1, 1
	result := true
	score := 0.42
	errClass := ErrorSlip

	records, err := s.Progress().Update(ctx, "c1", "vars", ConceptPatch{
		PracticeCount: &practice,
		CorrectCount:  &correct,
		PushResult:    &result,
		MasteryScore:  &score,
		FSRS:          &mem,
		LastPracticed: &now,
		PushError:     &errClass,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	rec, ok := records["vars"]
	if !ok {
		t.Fatal("record missing after update")
	}
	if rec.PracticeCount != 1 || rec.CorrectCount != 1 {
		t.Errorf("counters = %d/%d, want 1/1", rec.CorrectCount, rec.PracticeCount)
	}
	if len(rec.RecentResults) != 1 || !rec.RecentResults[0] {
		t.Errorf("recent results = %v, want [true]", rec.RecentResults)
	}
	if rec.MasteryScore != 0.42 {
		t.Errorf("mastery score = %v, want 0.42", rec.MasteryScore)
	}
	if rec.FSRS.Stability != 4.93 || rec.FSRS.State != fsrs.StateReview {
		t.Errorf("fsrs = %+v", rec.FSRS)
	}
	if !rec.FSRS.Due.Equal(now.AddDate(0, 0, 5)) {
		t.Errorf("due = %v", rec.FSRS.Due)
	}
	if rec.LastPracticed == nil || !rec.LastPracticed.Equal(now) {
		t.Errorf("last practiced = %v", rec.LastPracticed)
	}
	if len(rec.ErrorHistory) != 1 || rec.ErrorHistory[0] != ErrorSlip {
		t.Errorf("error history = %v", rec.ErrorHistory)
	}
	if rec.Version != 1 {
		t.Errorf("version = %d, want 1 on first persist", rec.Version)
	}

	// A second read must see the same state.
	again, err := s.Progress().Load(ctx, "c1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	rec2 := again["vars"]
	if rec2.FSRS.Stability != rec.FSRS.Stability || rec2.Version != rec.Version {
		t.Errorf("reload drifted: %+v vs %+v", rec2, rec)
	}
}

func TestProgressRingBufferEviction(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()

	// Push cap+2 results: first two are failures, all later are passes.
	for i := 0; i < RecentResultsCap+2; i++ {
		result := i >= 2
		if _, err := s.Progress().Update(ctx, "c1", "vars", ConceptPatch{PushResult: &result}); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	records, err := s.Progress().Load(ctx, "c1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rec := records["vars"]
	if len(rec.RecentResults) != RecentResultsCap {
		t.Fatalf("ring holds %d entries, want %d", len(rec.RecentResults), RecentResultsCap)
	}
	for i, r := range rec.RecentResults {
		if !r {
			t.Errorf("entry %d is a failure; the two oldest failures should have been evicted", i)
		}
	}
	if rec.Version != int64(RecentResultsCap+2) {
		t.Errorf("version = %d, want %d", rec.Version, RecentResultsCap+2)
	}
}

func TestProgressStaleWrite(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()

	result := true
	if _, err := s.Progress().Update(ctx, "c1", "vars", ConceptPatch{PushResult: &result}); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// Caller read version 1, another write bumps it to 2, the stale
	// caller must be rejected.
	if _, err := s.Progress().Update(ctx, "c1", "vars", ConceptPatch{PushResult: &result}); err != nil {
		t.Fatalf("second update: %v", err)
	}
	stale := int64(1)
	_, err := s.Progress().Update(ctx, "c1", "vars", ConceptPatch{PushResult: &result, ExpectedVersion: &stale})
	if !errors.Is(err, ErrStaleWrite) {
		t.Fatalf("got %v, want ErrStaleWrite", err)
	}

	// The matching version succeeds.
	current := int64(2)
	records, err := s.Progress().Update(ctx, "c1", "vars", ConceptPatch{PushResult: &result, ExpectedVersion: &current})
	if err != nil {
		t.Fatalf("matched update: %v", err)
	}
	if records["vars"].Version != 3 {
		t.Errorf("version = %d, want 3", records["vars"].Version)
	}
}

func TestProgressInvalidPatch(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()

	neg := -1
	if _, err := s.Progress().Update(ctx, "c1", "vars", ConceptPatch{PracticeCount: &neg}); !errors.Is(err, ErrInvalidPatch) {
		t.Errorf("negative counter: got %v, want ErrInvalidPatch", err)
	}

	practice, correct := 1, 2
	if _, err := s.Progress().Update(ctx, "c1", "vars", ConceptPatch{PracticeCount: &practice, CorrectCount: &correct}); !errors.Is(err, ErrInvalidPatch) {
		t.Errorf("correct > practice: got %v, want ErrInvalidPatch", err)
	}

	// Failed patch leaves no record behind.
	records, err := s.Progress().Load(ctx, "c1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("rejected patch persisted a record: %+v", records)
	}
}

func TestProgressStatusTransitionAtomic(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()

	result := true
	learning := mastery.StatusLearning
	bloom := mastery.Understand
	if _, err := s.Progress().Update(ctx, "c1", "vars", ConceptPatch{
		PushResult: &result,
		Status:     &learning,
		Bloom:      &bloom,
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	concepts, err := s.Courses().Concepts(ctx, "c1")
	if err != nil {
		t.Fatalf("concepts: %v", err)
	}
	if concepts[0].Status != mastery.StatusLearning {
		t.Errorf("status = %s, want learning", concepts[0].Status)
	}
	if concepts[0].Bloom != mastery.Understand {
		t.Errorf("bloom = %s, want understand", concepts[0].Bloom)
	}

	// An illegal transition rolls everything back, counters included.
	mastered := mastery.StatusMastered
	_, err = s.Progress().Update(ctx, "c1", "vars", ConceptPatch{PushResult: &result, Status: &mastered})
	if !errors.Is(err, ErrInvalidPatch) {
		t.Fatalf("illegal transition: got %v, want ErrInvalidPatch", err)
	}
	records, err := s.Progress().Load(ctx, "c1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := len(records["vars"].RecentResults); got != 1 {
		t.Errorf("rolled-back patch leaked: ring has %d entries, want 1", got)
	}
}

func TestSetConceptStatus(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()

	if err := s.Courses().SetConceptStatus(ctx, "c1", "vars", mastery.StatusDropped); err != nil {
		t.Fatalf("drop: %v", err)
	}
	// Dropped is terminal.
	err := s.Courses().SetConceptStatus(ctx, "c1", "vars", mastery.StatusLearning)
	if !errors.Is(err, ErrInvalidPatch) {
		t.Fatalf("revive dropped: got %v, want ErrInvalidPatch", err)
	}
	if err := s.Courses().SetConceptStatus(ctx, "c1", "ghost", mastery.StatusDropped); !errors.Is(err, ErrConceptNotFound) {
		t.Fatalf("unknown concept: got %v, want ErrConceptNotFound", err)
	}
}

func TestSessionLogAppendList(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()
	repo := s.Sessions()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	first := SessionLogEntry{
		SessionID:  "sess-1",
		Type:       SessionStudy,
		StartedAt:  start,
		EndedAt:    start.Add(20 * time.Minute),
		ConceptIDs: []string{"vars"},
		Summary:    "introduced variables",
	}
	second := SessionLogEntry{
		SessionID: "sess-2",
		Type:      SessionQuiz,
		StartedAt: start.Add(time.Hour),
		EndedAt:   start.Add(90 * time.Minute),
		Score:     &Score{Correct: 4, Total: 5, Percent: 80},
	}
	if err := repo.Append(ctx, "c1", first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := repo.Append(ctx, "c1", second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	entries, err := repo.List(ctx, "c1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].SessionID != "sess-1" || entries[1].SessionID != "sess-2" {
		t.Errorf("entries out of append order: %s, %s", entries[0].SessionID, entries[1].SessionID)
	}
	if entries[0].Sequence >= entries[1].Sequence {
		t.Errorf("sequences not increasing: %d, %d", entries[0].Sequence, entries[1].Sequence)
	}
	if entries[0].Score != nil {
		t.Errorf("study session grew a score: %+v", entries[0].Score)
	}
	if entries[1].Score == nil || entries[1].Score.Percent != 80 {
		t.Errorf("quiz score = %+v", entries[1].Score)
	}
}

func TestSessionLogRejectsBadEntry(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()

	err := s.Sessions().Append(ctx, "c1", SessionLogEntry{SessionID: "", Type: SessionStudy})
	if !errors.Is(err, ErrInvalidPatch) {
		t.Errorf("empty session id: got %v, want ErrInvalidPatch", err)
	}
	err = s.Sessions().Append(ctx, "c1", SessionLogEntry{SessionID: "x", Type: "exam"})
	if !errors.Is(err, ErrInvalidPatch) {
		t.Errorf("bad type: got %v, want ErrInvalidPatch", err)
	}
	err = s.Sessions().Append(ctx, "ghost", SessionLogEntry{SessionID: "x", Type: SessionStudy})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("unknown course: got %v, want ErrCourseNotFound", err)
	}
}

func TestEventAppendAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()
	repo := s.Events()

	outcomes := []bool{true, false, true, true}
	for _, correct := range outcomes {
		rating := fsrs.Good
		errClass := ErrorClass("")
		if !correct {
			rating = fsrs.Again
			errClass = ErrorMisconception
		}
		err := repo.AppendReview(ctx, ReviewEventData{
			CourseID:     "c1",
			ConceptID:    "vars",
			Rating:       rating,
			Correct:      correct,
			ErrorClass:   errClass,
			Stability:    2.4,
			IntervalDays: 2,
		})
		if err != nil {
			t.Fatalf("append review: %v", err)
		}
	}

	acc, n, err := repo.RecentReviewAccuracy(ctx, "c1", "vars", 10)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if n != 4 || acc != 0.75 {
		t.Errorf("accuracy = %v over %d, want 0.75 over 4", acc, n)
	}

	// Window smaller than history: only the newest reviews count.
	acc, n, err = repo.RecentReviewAccuracy(ctx, "c1", "vars", 2)
	if err != nil {
		t.Fatalf("accuracy window: %v", err)
	}
	if n != 2 || acc != 1.0 {
		t.Errorf("windowed accuracy = %v over %d, want 1.0 over 2", acc, n)
	}

	// No events yet for another concept.
	acc, n, err = repo.RecentReviewAccuracy(ctx, "c1", "funcs", 5)
	if err != nil {
		t.Fatalf("accuracy empty: %v", err)
	}
	if n != 0 || acc != 0 {
		t.Errorf("empty accuracy = %v over %d, want 0 over 0", acc, n)
	}
}

func TestTransitionEventAppend(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()

	err := s.Events().AppendTransition(ctx, TransitionEventData{
		CourseID:     "c1",
		ConceptID:    "vars",
		From:         mastery.StatusNew,
		To:           mastery.StatusLearning,
		Trigger:      "first_practice",
		MasteryScore: 0.1,
	})
	if err != nil {
		t.Fatalf("append transition: %v", err)
	}

	err = s.Events().AppendTransition(ctx, TransitionEventData{
		CourseID:  "c1",
		ConceptID: "vars",
		From:      "bogus",
		To:        mastery.StatusActive,
	})
	if !errors.Is(err, ErrInvalidPatch) {
		t.Errorf("bogus status: got %v, want ErrInvalidPatch", err)
	}
}

func TestSequenceSpansTables(t *testing.T) {
	s := openTestStore(t)
	seedCourse(t, s, "c1", "vars")
	ctx := context.Background()

	start := time.Now().UTC()
	if err := s.Sessions().Append(ctx, "c1", SessionLogEntry{SessionID: "a", Type: SessionStudy, StartedAt: start, EndedAt: start}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := s.Events().AppendReview(ctx, ReviewEventData{CourseID: "c1", ConceptID: "vars", Rating: fsrs.Good, Correct: true, Stability: 1, IntervalDays: 1}); err != nil {
		t.Fatalf("append review: %v", err)
	}
	if err := s.Sessions().Append(ctx, "c1", SessionLogEntry{SessionID: "b", Type: SessionStudy, StartedAt: start, EndedAt: start}); err != nil {
		t.Fatalf("append session: %v", err)
	}

	entries, err := s.Sessions().List(ctx, "c1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// The review event consumed a sequence number between the two
	// session appends.
	if entries[1].Sequence-entries[0].Sequence < 2 {
		t.Errorf("sequences %d and %d do not span the interleaved event", entries[0].Sequence, entries[1].Sequence)
	}
}
