package store

import (
	"context"
	"fmt"

	"github.com/tutorkit/tutorkit/ent"
	"github.com/tutorkit/tutorkit/ent/reviewevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	if !data.Rating.Valid() {
		return fmt.Errorf("%w: rating %d", ErrInvalidPatch, data.Rating)
	}
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	create := r.client.ReviewEvent.Create().
		SetSequence(seq).
		SetCourseID(data.CourseID).
		SetConceptID(data.ConceptID).
		SetRating(int(data.Rating)).
		SetCorrect(data.Correct).
		SetStability(data.Stability).
		SetIntervalDays(data.IntervalDays)
	if data.ErrorClass != "" {
		if !data.ErrorClass.Valid() {
			return fmt.Errorf("%w: unknown error class %q", ErrInvalidPatch, data.ErrorClass)
		}
		create = create.SetErrorClass(string(data.ErrorClass))
	}
	if data.SessionID != "" {
		create = create.SetSessionID(data.SessionID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendTransition(ctx context.Context, data TransitionEventData) error {
	if !data.From.Valid() || !data.To.Valid() {
		return fmt.Errorf("%w: transition %q -> %q", ErrInvalidPatch, data.From, data.To)
	}
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	create := r.client.TransitionEvent.Create().
		SetSequence(seq).
		SetCourseID(data.CourseID).
		SetConceptID(data.ConceptID).
		SetFromStatus(string(data.From)).
		SetToStatus(string(data.To)).
		SetTrigger(data.Trigger).
		SetMasteryScore(data.MasteryScore)
	if data.SessionID != "" {
		create = create.SetSessionID(data.SessionID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append transition event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentReviewAccuracy(ctx context.Context, courseID, conceptID string, n int) (float64, int, error) {
	if n <= 0 {
		return 0, 0, fmt.Errorf("%w: window %d", ErrInvalidPatch, n)
	}
	rows, err := r.client.ReviewEvent.Query().
		Where(reviewevent.CourseID(courseID), reviewevent.ConceptID(conceptID)).
		Order(ent.Desc(reviewevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query review events: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	correct := 0
	for _, row := range rows {
		if row.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(rows)), len(rows), nil
}
