package conceptgraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tutorkit/tutorkit/internal/mastery"
)

// validate performs all structural checks on the concept set. Returns a
// combined error describing every problem found, or nil.
func validate(concepts []Concept) error {
	var errs []string

	idSet := make(map[string]bool, len(concepts))
	for _, c := range concepts {
		if c.ID == "" {
			errs = append(errs, "concept with empty id")
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept id %q", c.ID))
		}
		idSet[c.ID] = true
	}

	for _, c := range concepts {
		for _, prereq := range c.Prerequisites {
			if !idSet[prereq] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", c.ID, prereq))
			}
		}
	}

	// Cycle detection via Kahn's algorithm.
	inDegree := make(map[string]int, len(concepts))
	adj := make(map[string][]string)
	for _, c := range concepts {
		inDegree[c.ID] = 0
	}
	for _, c := range concepts {
		for _, prereq := range c.Prerequisites {
			if idSet[prereq] {
				adj[prereq] = append(adj[prereq], c.ID)
				inDegree[c.ID]++
			}
		}
	}
	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(inDegree) {
		errs = append(errs, "prerequisite graph contains a cycle")
	}

	// Orphans only matter once there are concepts to connect to.
	if len(concepts) >= 2 {
		dependedOn := make(map[string]bool)
		hasPrereqs := make(map[string]bool)
		for _, c := range concepts {
			if len(c.Prerequisites) > 0 {
				hasPrereqs[c.ID] = true
				for _, prereq := range c.Prerequisites {
					dependedOn[prereq] = true
				}
			}
		}
		for _, c := range concepts {
			if !dependedOn[c.ID] && !hasPrereqs[c.ID] {
				errs = append(errs, fmt.Sprintf("concept %q is orphaned (no connections)", c.ID))
			}
		}
	}

	if len(errs) > 0 {
		return errors.New("invalid concept graph:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}

// Warnings reports pedagogical issues that do not invalidate the graph:
// heavy prerequisite fan-in, very deep chains, and Bloom targets that
// look inconsistent with the authored difficulty.
func (g *Graph) Warnings() []string {
	var warnings []string

	for _, c := range g.concepts {
		if len(c.Prerequisites) > 5 {
			warnings = append(warnings, fmt.Sprintf(
				"concept %q has %d prerequisites; consider whether all are necessary",
				c.ID, len(c.Prerequisites)))
		}
	}

	maxDepth := 0
	for _, c := range g.concepts {
		if d := len(g.PrerequisiteChain(c.ID)); d > maxDepth {
			maxDepth = d
		}
	}
	if maxDepth > 10 {
		warnings = append(warnings, fmt.Sprintf(
			"deepest prerequisite chain is %d levels; consider parallelising intermediate concepts", maxDepth))
	}

	for _, c := range g.concepts {
		if c.BloomTarget.Valid() && c.BloomTarget <= mastery.Understand && c.Difficulty > 0.7 {
			warnings = append(warnings, fmt.Sprintf(
				"concept %q has difficulty %.2f but targets %q; should it target a higher level?",
				c.ID, c.Difficulty, c.BloomTarget))
		}
	}

	return warnings
}
