package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/tutorkit/tutorkit/ent"
	"github.com/tutorkit/tutorkit/ent/concept"
	"github.com/tutorkit/tutorkit/ent/course"
	"github.com/tutorkit/tutorkit/internal/mastery"
)

// courseRepo implements CourseRepo using the ent client.
type courseRepo struct {
	client *ent.Client
}

func (r *courseRepo) List(ctx context.Context) ([]Course, error) {
	rows, err := r.client.Course.Query().
		Order(ent.Asc(course.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	courses := make([]Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, courseFromRow(row))
	}
	return courses, nil
}

func (r *courseRepo) Get(ctx context.Context, courseID string) (*Course, error) {
	row, err := r.client.Course.Get(ctx, courseID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("course %q: %w", courseID, ErrCourseNotFound)
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	c := courseFromRow(row)
	return &c, nil
}

func (r *courseRepo) Create(ctx context.Context, c Course) error {
	_, err := r.client.Course.Create().
		SetID(c.ID).
		SetName(c.Name).
		SetUnits(c.Units).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return fmt.Errorf("course %q: %w", c.ID, ErrCourseExists)
		}
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

func (r *courseRepo) AddUnit(ctx context.Context, courseID, unitID string) error {
	row, err := r.client.Course.Get(ctx, courseID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("course %q: %w", courseID, ErrCourseNotFound)
		}
		return fmt.Errorf("get course: %w", err)
	}
	if slices.Contains(row.Units, unitID) {
		return nil
	}
	_, err = r.client.Course.UpdateOne(row).
		SetUnits(append(row.Units, unitID)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("add unit: %w", err)
	}
	return nil
}

func (r *courseRepo) Concepts(ctx context.Context, courseID string) ([]Concept, error) {
	if err := requireCourse(ctx, r.client, courseID); err != nil {
		return nil, err
	}
	rows, err := r.client.Concept.Query().
		Where(concept.CourseID(courseID)).
		Order(ent.Asc(concept.FieldConceptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query concepts: %w", err)
	}
	concepts := make([]Concept, 0, len(rows))
	for _, row := range rows {
		c, err := conceptFromRow(courseID, row)
		if err != nil {
			return nil, err
		}
		concepts = append(concepts, c)
	}
	return concepts, nil
}

func (r *courseRepo) DeclareConcepts(ctx context.Context, courseID string, concepts []Concept) error {
	if err := requireCourse(ctx, r.client, courseID); err != nil {
		return err
	}
	existing, err := r.client.Concept.Query().
		Where(concept.CourseID(courseID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query concepts: %w", err)
	}
	declared := make(map[string]bool, len(existing))
	for _, row := range existing {
		declared[row.ConceptID] = true
	}

	var builders []*ent.ConceptCreate
	for _, c := range concepts {
		if declared[c.ID] {
			continue
		}
		bloom := c.Bloom
		if !bloom.Valid() {
			bloom = mastery.Remember
		}
		status := c.Status
		if !status.Valid() {
			status = mastery.StatusNew
		}
		target := c.BloomTarget
		if !target.Valid() {
			target = mastery.Apply
		}
		builders = append(builders, r.client.Concept.Create().
			SetCourseID(courseID).
			SetConceptID(c.ID).
			SetUnitID(c.Unit).
			SetName(c.Name).
			SetBloomLevel(bloom.String()).
			SetStatus(string(status)).
			SetPrerequisites(c.Prerequisites).
			SetDifficulty(c.Difficulty).
			SetBloomTarget(target.String()))
	}
	if len(builders) == 0 {
		return nil
	}
	if _, err := r.client.Concept.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("declare concepts: %w", err)
	}
	return nil
}

func (r *courseRepo) SetConceptStatus(ctx context.Context, courseID, conceptID string, to mastery.Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidPatch, to)
	}
	if err := requireCourse(ctx, r.client, courseID); err != nil {
		return err
	}
	row, err := r.client.Concept.Query().
		Where(concept.CourseID(courseID), concept.ConceptID(conceptID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("concept %q: %w", conceptID, ErrConceptNotFound)
		}
		return fmt.Errorf("get concept: %w", err)
	}
	from, err := mastery.ParseStatus(row.Status)
	if err != nil {
		return &CorruptStateError{CourseID: courseID, ConceptID: conceptID, Reason: err.Error()}
	}
	if !mastery.CanTransition(from, to) {
		return fmt.Errorf("%w: illegal transition %s -> %s", ErrInvalidPatch, from, to)
	}
	if _, err := r.client.Concept.UpdateOne(row).SetStatus(string(to)).Save(ctx); err != nil {
		return fmt.Errorf("set concept status: %w", err)
	}
	return nil
}

// requireCourse fails with ErrCourseNotFound when the course is absent.
func requireCourse(ctx context.Context, client *ent.Client, courseID string) error {
	exists, err := client.Course.Query().
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

func courseFromRow(row *ent.Course) Course {
	return Course{
		ID:        row.ID,
		Name:      row.Name,
		Units:     append([]string(nil), row.Units...),
		CreatedAt: row.CreatedAt,
	}
}

func conceptFromRow(courseID string, row *ent.Concept) (Concept, error) {
	bloom, err := mastery.ParseBloom(row.BloomLevel)
	if err != nil {
		return Concept{}, &CorruptStateError{CourseID: courseID, ConceptID: row.ConceptID, Reason: err.Error()}
	}
	status, err := mastery.ParseStatus(row.Status)
	if err != nil {
		return Concept{}, &CorruptStateError{CourseID: courseID, ConceptID: row.ConceptID, Reason: err.Error()}
	}
	target, err := mastery.ParseBloom(row.BloomTarget)
	if err != nil {
		return Concept{}, &CorruptStateError{CourseID: courseID, ConceptID: row.ConceptID, Reason: err.Error()}
	}
	return Concept{
		ID:            row.ConceptID,
		Name:          row.Name,
		Unit:          row.UnitID,
		Bloom:         bloom,
		Status:        status,
		Prerequisites: append([]string(nil), row.Prerequisites...),
		Difficulty:    row.Difficulty,
		BloomTarget:   target,
	}, nil
}
