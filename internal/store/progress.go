package store

import (
	"context"
	"fmt"

	"github.com/tutorkit/tutorkit/ent"
	"github.com/tutorkit/tutorkit/ent/concept"
	"github.com/tutorkit/tutorkit/ent/course"
	"github.com/tutorkit/tutorkit/ent/progressrecord"
	"github.com/tutorkit/tutorkit/internal/fsrs"
	"github.com/tutorkit/tutorkit/internal/mastery"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context, courseID string) (map[string]ProgressRecord, error) {
	if err := requireCourse(ctx, r.client, courseID); err != nil {
		return nil, err
	}
	return loadProgress(ctx, r.client.ProgressRecord, courseID)
}

// loadProgress reads and validates all records of a course. Shared by
// Load and the post-update re-read inside Update's transaction view.
func loadProgress(ctx context.Context, q *ent.ProgressRecordClient, courseID string) (map[string]ProgressRecord, error) {
	rows, err := q.Query().
		Where(progressrecord.CourseID(courseID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	records := make(map[string]ProgressRecord, len(rows))
	for _, row := range rows {
		rec := recordFromRow(row)
		if err := validateRecord(courseID, rec); err != nil {
			return nil, err
		}
		records[rec.ConceptID] = rec
	}
	return records, nil
}

func (r *progressRepo) Update(ctx context.Context, courseID, conceptID string, patch ConceptPatch) (map[string]ProgressRecord, error) {
	// Reject malformed patches before touching storage.
	if err := patch.validate(); err != nil {
		return nil, err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	if err := r.updateInTx(ctx, tx, courseID, conceptID, patch); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return nil, fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r.Load(ctx, courseID)
}

func (r *progressRepo) updateInTx(ctx context.Context, tx *ent.Tx, courseID, conceptID string, patch ConceptPatch) error {
	if err := requireCourseTx(ctx, tx, courseID); err != nil {
		return err
	}

	// The concept must be declared by the course; progress is never
	// tracked for unknown concepts.
	conceptRow, err := tx.Concept.Query().
		Where(concept.CourseID(courseID), concept.ConceptID(conceptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("concept %q: %w", conceptID, ErrConceptNotFound)
		}
		return fmt.Errorf("get concept: %w", err)
	}

	cur := NewProgressRecord(conceptID)
	var row *ent.ProgressRecord
	row, err = tx.ProgressRecord.Query().
		Where(progressrecord.CourseID(courseID), progressrecord.ConceptID(conceptID)).
		Only(ctx)
	switch {
	case err == nil:
		cur = recordFromRow(row)
		if err := validateRecord(courseID, cur); err != nil {
			return err
		}
	case ent.IsNotFound(err):
		row = nil
	default:
		return fmt.Errorf("get progress: %w", err)
	}

	if patch.ExpectedVersion != nil && *patch.ExpectedVersion != cur.Version {
		return fmt.Errorf("concept %q: version %d, caller read %d: %w",
			conceptID, cur.Version, *patch.ExpectedVersion, ErrStaleWrite)
	}

	next := patch.apply(cur)
	if next.CorrectCount > next.PracticeCount {
		return fmt.Errorf("%w: correct_count %d exceeds practice_count %d",
			ErrInvalidPatch, next.CorrectCount, next.PracticeCount)
	}

	if row == nil {
		if err := createRecord(ctx, tx, courseID, next); err != nil {
			return err
		}
	} else {
		if err := guardedUpdate(ctx, tx, courseID, conceptID, cur.Version, next); err != nil {
			return err
		}
	}

	// Status and Bloom changes ride in the same transaction so a caller
	// never observes the counters without the transition.
	if patch.Status != nil || patch.Bloom != nil {
		upd := tx.Concept.UpdateOne(conceptRow)
		if patch.Status != nil {
			from, err := mastery.ParseStatus(conceptRow.Status)
			if err != nil {
				return &CorruptStateError{CourseID: courseID, ConceptID: conceptID, Reason: err.Error()}
			}
			if !mastery.CanTransition(from, *patch.Status) {
				return fmt.Errorf("%w: illegal transition %s -> %s", ErrInvalidPatch, from, *patch.Status)
			}
			upd = upd.SetStatus(string(*patch.Status))
		}
		if patch.Bloom != nil {
			upd = upd.SetBloomLevel(patch.Bloom.String())
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update concept: %w", err)
		}
	}
	return nil
}

func createRecord(ctx context.Context, tx *ent.Tx, courseID string, rec ProgressRecord) error {
	create := tx.ProgressRecord.Create().
		SetCourseID(courseID).
		SetConceptID(rec.ConceptID).
		SetPracticeCount(rec.PracticeCount).
		SetCorrectCount(rec.CorrectCount).
		SetRecentResults(rec.RecentResults).
		SetMasteryScore(rec.MasteryScore).
		SetFsrsStability(rec.FSRS.Stability).
		SetFsrsDifficulty(rec.FSRS.Difficulty).
		SetFsrsElapsedDays(rec.FSRS.ElapsedDays).
		SetFsrsScheduledDays(rec.FSRS.ScheduledDays).
		SetFsrsReps(rec.FSRS.Reps).
		SetFsrsLapses(rec.FSRS.Lapses).
		SetFsrsState(string(rec.FSRS.State)).
		SetErrorHistory(errorStrings(rec.ErrorHistory)).
		SetVersion(1)
	if !rec.FSRS.Due.IsZero() {
		create = create.SetDue(rec.FSRS.Due)
	}
	if rec.LastPracticed != nil {
		create = create.SetLastPracticed(*rec.LastPracticed)
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Another writer created the record between our read and
			// this insert.
			return fmt.Errorf("concept %q: %w", rec.ConceptID, ErrStaleWrite)
		}
		return fmt.Errorf("create progress: %w", err)
	}
	return nil
}

func guardedUpdate(ctx context.Context, tx *ent.Tx, courseID, conceptID string, readVersion int64, rec ProgressRecord) error {
	upd := tx.ProgressRecord.Update().
		Where(
			progressrecord.CourseID(courseID),
			progressrecord.ConceptID(conceptID),
			progressrecord.Version(readVersion),
		).
		SetPracticeCount(rec.PracticeCount).
		SetCorrectCount(rec.CorrectCount).
		SetRecentResults(rec.RecentResults).
		SetMasteryScore(rec.MasteryScore).
		SetFsrsStability(rec.FSRS.Stability).
		SetFsrsDifficulty(rec.FSRS.Difficulty).
		SetFsrsElapsedDays(rec.FSRS.ElapsedDays).
		SetFsrsScheduledDays(rec.FSRS.ScheduledDays).
		SetFsrsReps(rec.FSRS.Reps).
		SetFsrsLapses(rec.FSRS.Lapses).
		SetFsrsState(string(rec.FSRS.State)).
		SetErrorHistory(errorStrings(rec.ErrorHistory)).
		SetVersion(readVersion + 1)
	if !rec.FSRS.Due.IsZero() {
		upd = upd.SetDue(rec.FSRS.Due)
	}
	if rec.LastPracticed != nil {
		upd = upd.SetLastPracticed(*rec.LastPracticed)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	if n == 0 {
		// The version guard missed: someone else wrote since our read.
		return fmt.Errorf("concept %q: %w", conceptID, ErrStaleWrite)
	}
	return nil
}

func requireCourseTx(ctx context.Context, tx *ent.Tx, courseID string) error {
	exists, err := tx.Course.Query().
		Where(course.ID(courseID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check course: %w", err)
	}
	if !exists {
		return fmt.Errorf("course %q: %w", courseID, ErrCourseNotFound)
	}
	return nil
}

func recordFromRow(row *ent.ProgressRecord) ProgressRecord {
	rec := ProgressRecord{
		ConceptID:     row.ConceptID,
		PracticeCount: row.PracticeCount,
		CorrectCount:  row.CorrectCount,
		RecentResults: append([]bool(nil), row.RecentResults...),
		MasteryScore:  row.MasteryScore,
		FSRS: fsrs.Memory{
			Stability:     row.FsrsStability,
			Difficulty:    row.FsrsDifficulty,
			ElapsedDays:   row.FsrsElapsedDays,
			ScheduledDays: row.FsrsScheduledDays,
			Reps:          row.FsrsReps,
			Lapses:        row.FsrsLapses,
			State:         fsrs.State(row.FsrsState),
		},
		Version: row.Version,
	}
	if row.Due != nil {
		rec.FSRS.Due = *row.Due
	}
	if row.LastPracticed != nil {
		t := *row.LastPracticed
		rec.LastPracticed = &t
	}
	for _, e := range row.ErrorHistory {
		rec.ErrorHistory = append(rec.ErrorHistory, ErrorClass(e))
	}
	return rec
}

func errorStrings(history []ErrorClass) []string {
	out := make([]string, len(history))
	for i, e := range history {
		out[i] = string(e)
	}
	return out
}
