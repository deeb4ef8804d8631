package session

import (
	"sort"
	"time"

	"github.com/tutorkit/tutorkit/internal/conceptgraph"
	"github.com/tutorkit/tutorkit/internal/mastery"
	"github.com/tutorkit/tutorkit/internal/review"
	"github.com/tutorkit/tutorkit/internal/store"
)

// DefaultTotalSlots is the standard session length in concept slots.
const DefaultTotalSlots = 5

// Category labels what a plan slot is for.
type Category string

const (
	CategoryFrontier Category = "frontier" // new material whose prerequisites are in place
	CategoryReview   Category = "review"   // scheduled spaced-repetition review
)

// Slot is one planned concept.
type Slot struct {
	ConceptID string
	Category  Category
}

// Plan is an ordered list of slots for one session.
type Plan struct {
	Slots []Slot
}

// PlanSession builds a session plan mixing frontier concepts with due
// reviews, roughly 60/40. When one side has too few candidates its slots
// go to the other; the plan is shorter than totalSlots only when both run
// out. Dropped concepts never appear.
func PlanSession(concepts []store.Concept, records map[string]store.ProgressRecord, now time.Time, totalSlots int) (*Plan, error) {
	if totalSlots <= 0 {
		totalSlots = DefaultTotalSlots
	}

	nodes := make([]conceptgraph.Concept, 0, len(concepts))
	for _, c := range concepts {
		nodes = append(nodes, conceptgraph.Concept{
			ID:            c.ID,
			Name:          c.Name,
			Unit:          c.Unit,
			Prerequisites: c.Prerequisites,
			Difficulty:    c.Difficulty,
			BloomTarget:   c.BloomTarget,
		})
	}
	g, err := conceptgraph.New(nodes)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]store.Concept, len(concepts))
	mastered := make(map[string]bool)
	for _, c := range concepts {
		byID[c.ID] = c
		if c.Status == mastery.StatusMastered {
			mastered[c.ID] = true
		}
	}

	due := review.DueConcepts(concepts, records, now)
	dueSet := make(map[string]bool, len(due))
	for _, item := range due {
		dueSet[item.ConceptID] = true
	}
	frontier := frontierCandidates(g, byID, records, mastered, dueSet)

	frontierCount := (totalSlots*3 + 4) / 5 // 60%, rounded up
	reviewCount := totalSlots - frontierCount

	// Give unusable slots to the other side.
	if len(due) < reviewCount {
		frontierCount += reviewCount - len(due)
		reviewCount = len(due)
	}
	if len(frontier) < frontierCount {
		spill := frontierCount - len(frontier)
		frontierCount = len(frontier)
		if reviewCount+spill <= len(due) {
			reviewCount += spill
		} else {
			reviewCount = len(due)
		}
	}

	plan := &Plan{}
	fi, ri := 0, 0
	// Interleave so reviews break up new material rather than tailing it.
	for len(plan.Slots) < frontierCount+reviewCount {
		if fi < frontierCount {
			plan.Slots = append(plan.Slots, Slot{ConceptID: frontier[fi], Category: CategoryFrontier})
			fi++
		}
		if ri < reviewCount && len(plan.Slots) < frontierCount+reviewCount {
			plan.Slots = append(plan.Slots, Slot{ConceptID: due[ri].ConceptID, Category: CategoryReview})
			ri++
		}
	}
	return plan, nil
}

// frontierCandidates orders the graph frontier for planning: least
// practiced first, then easiest, then id. Dropped concepts and concepts
// already due for review are excluded so a concept fills one slot kind at
// most.
func frontierCandidates(g *conceptgraph.Graph, byID map[string]store.Concept, records map[string]store.ProgressRecord, mastered, due map[string]bool) []string {
	var candidates []string
	for _, id := range g.Frontier(mastered) {
		c := byID[id]
		if c.Status == mastery.StatusDropped || due[id] {
			continue
		}
		candidates = append(candidates, id)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		pi := records[candidates[i]].PracticeCount
		pj := records[candidates[j]].PracticeCount
		if pi != pj {
			return pi < pj
		}
		di := byID[candidates[i]].Difficulty
		dj := byID[candidates[j]].Difficulty
		if di != dj {
			return di < dj
		}
		return candidates[i] < candidates[j]
	})
	return candidates
}
