// Package conceptgraph models a course's concepts as a prerequisite DAG
// with precomputed indices for frontier selection and traversal.
package conceptgraph

import (
	"sort"

	"github.com/tutorkit/tutorkit/internal/mastery"
)

// Concept is one node of the graph, as declared by the course author.
type Concept struct {
	ID            string
	Name          string
	Unit          string
	Prerequisites []string
	Difficulty    float64
	BloomTarget   mastery.BloomLevel
}

// Graph holds the concept DAG with precomputed indices.
type Graph struct {
	concepts   []Concept
	byID       map[string]*Concept
	dependents map[string][]string
	topoOrder  []string
	topoIndex  map[string]int
}

// New validates the concept set and builds the graph. Structural problems
// (duplicate ids, dangling prerequisites, cycles, orphans) are returned as
// a single combined error.
func New(concepts []Concept) (*Graph, error) {
	if err := validate(concepts); err != nil {
		return nil, err
	}

	g := &Graph{
		concepts:   concepts,
		byID:       make(map[string]*Concept, len(concepts)),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(concepts)),
	}

	for i := range g.concepts {
		g.byID[g.concepts[i].ID] = &g.concepts[i]
	}
	for i := range g.concepts {
		for _, prereq := range g.concepts[i].Prerequisites {
			g.dependents[prereq] = append(g.dependents[prereq], g.concepts[i].ID)
		}
	}

	// Topological order via Kahn's algorithm, with sorted queues for
	// deterministic output.
	inDegree := make(map[string]int, len(concepts))
	for _, c := range concepts {
		inDegree[c.ID] = len(c.Prerequisites)
	}
	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		g.topoIndex[id] = len(g.topoOrder)
		g.topoOrder = append(g.topoOrder, id)

		deps := append([]string(nil), g.dependents[id]...)
		sort.Strings(deps)
		for _, dep := range deps {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	return g, nil
}

// Concept returns the node with the given id.
func (g *Graph) Concept(id string) (Concept, bool) {
	c, ok := g.byID[id]
	if !ok {
		return Concept{}, false
	}
	return *c, true
}

// Concepts returns all nodes in topological order.
func (g *Graph) Concepts() []Concept {
	out := make([]Concept, 0, len(g.topoOrder))
	for _, id := range g.topoOrder {
		out = append(out, *g.byID[id])
	}
	return out
}

// Len returns the number of concepts.
func (g *Graph) Len() int { return len(g.concepts) }

// Frontier returns concept ids whose prerequisites are all mastered but
// which are not themselves mastered, sorted by id. A concept with no
// prerequisites is on the frontier until mastered.
func (g *Graph) Frontier(mastered map[string]bool) []string {
	var frontier []string
	for _, c := range g.concepts {
		if mastered[c.ID] {
			continue
		}
		ready := true
		for _, prereq := range c.Prerequisites {
			if !mastered[prereq] {
				ready = false
				break
			}
		}
		if ready {
			frontier = append(frontier, c.ID)
		}
	}
	sort.Strings(frontier)
	return frontier
}

// PrerequisiteChain returns every transitive prerequisite of id in
// topological order, not including id itself.
func (g *Graph) PrerequisiteChain(id string) []string {
	target, ok := g.byID[id]
	if !ok {
		return nil
	}

	seen := make(map[string]bool)
	var chain []string
	var visit func(string)
	visit = func(cid string) {
		if seen[cid] {
			return
		}
		seen[cid] = true
		if c, ok := g.byID[cid]; ok {
			for _, prereq := range c.Prerequisites {
				visit(prereq)
			}
		}
		chain = append(chain, cid)
	}
	for _, prereq := range target.Prerequisites {
		visit(prereq)
	}
	return chain
}

// Dependents returns the ids that transitively depend on id.
func (g *Graph) Dependents(id string) map[string]bool {
	out := make(map[string]bool)
	var collect func(string)
	collect = func(cid string) {
		for _, dep := range g.dependents[cid] {
			if !out[dep] {
				out[dep] = true
				collect(dep)
			}
		}
	}
	collect(id)
	return out
}

// SuggestPivot returns up to three alternative frontier concepts for a
// learner stuck on current, easiest first. Concepts that depend on
// current are excluded since they would hit the same wall.
func (g *Graph) SuggestPivot(mastered map[string]bool, current string) []string {
	dependents := g.Dependents(current)

	var candidates []string
	for _, id := range g.Frontier(mastered) {
		if id == current || dependents[id] {
			continue
		}
		candidates = append(candidates, id)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return g.byID[candidates[i]].Difficulty < g.byID[candidates[j]].Difficulty
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}
	return candidates
}
