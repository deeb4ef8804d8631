package store

import (
	"context"
	"fmt"

	"github.com/tutorkit/tutorkit/ent"
	"github.com/tutorkit/tutorkit/ent/schema"
	"github.com/tutorkit/tutorkit/ent/sessionlog"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) Append(ctx context.Context, courseID string, entry SessionLogEntry) error {
	if err := requireCourse(ctx, r.client, courseID); err != nil {
		return err
	}
	if entry.SessionID == "" {
		return fmt.Errorf("%w: empty session id", ErrInvalidPatch)
	}
	if !entry.Type.Valid() {
		return fmt.Errorf("%w: unknown session type %q", ErrInvalidPatch, entry.Type)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	create := r.client.SessionLog.Create().
		SetSequence(seq).
		SetCourseID(courseID).
		SetSessionID(entry.SessionID).
		SetSessionType(string(entry.Type)).
		SetStartedAt(entry.StartedAt).
		SetEndedAt(entry.EndedAt).
		SetConceptIds(entry.ConceptIDs).
		SetExercises(entry.Exercises).
		SetSummary(entry.Summary)
	if entry.Score != nil {
		create = create.SetScore(&schema.ScoreSummary{
			Correct: entry.Score.Correct,
			Total:   entry.Score.Total,
			Percent: entry.Score.Percent,
		})
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append session log: %w", err)
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context, courseID string) ([]SessionLogEntry, error) {
	if err := requireCourse(ctx, r.client, courseID); err != nil {
		return nil, err
	}
	rows, err := r.client.SessionLog.Query().
		Where(sessionlog.CourseID(courseID)).
		Order(ent.Asc(sessionlog.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session logs: %w", err)
	}
	entries := make([]SessionLogEntry, 0, len(rows))
	for _, row := range rows {
		entry := SessionLogEntry{
			Sequence:   row.Sequence,
			SessionID:  row.SessionID,
			Type:       SessionType(row.SessionType),
			StartedAt:  row.StartedAt,
			EndedAt:    row.EndedAt,
			ConceptIDs: append([]string(nil), row.ConceptIds...),
			Exercises:  append([]string(nil), row.Exercises...),
			Summary:    row.Summary,
		}
		if row.Score != nil {
			entry.Score = &Score{
				Correct: row.Score.Correct,
				Total:   row.Score.Total,
				Percent: row.Score.Percent,
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
