package conceptgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorkit/tutorkit/internal/mastery"
)

func linearCourse() []Concept {
	return []Concept{
		{ID: "vars", Name: "Variables", Unit: "u1", Difficulty: 0.2, BloomTarget: mastery.Apply},
		{ID: "funcs", Name: "Functions", Unit: "u1", Prerequisites: []string{"vars"}, Difficulty: 0.4, BloomTarget: mastery.Apply},
		{ID: "closures", Name: "Closures", Unit: "u2", Prerequisites: []string{"funcs"}, Difficulty: 0.7, BloomTarget: mastery.Analyze},
		{ID: "slices", Name: "Slices", Unit: "u1", Prerequisites: []string{"vars"}, Difficulty: 0.3, BloomTarget: mastery.Apply},
	}
}

func TestNewBuildsTopoOrder(t *testing.T) {
	g, err := New(linearCourse())
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())

	pos := make(map[string]int)
	for i, c := range g.Concepts() {
		pos[c.ID] = i
	}
	assert.Less(t, pos["vars"], pos["funcs"])
	assert.Less(t, pos["funcs"], pos["closures"])
	assert.Less(t, pos["vars"], pos["slices"])
}

func TestNewRejectsBadGraphs(t *testing.T) {
	tests := []struct {
		name     string
		concepts []Concept
		wantErr  string
	}{
		{
			"duplicate id",
			[]Concept{{ID: "a"}, {ID: "a", Prerequisites: []string{"a"}}},
			"duplicate concept id",
		},
		{
			"dangling prerequisite",
			[]Concept{{ID: "a", Prerequisites: []string{"ghost"}}},
			"nonexistent prerequisite",
		},
		{
			"cycle",
			[]Concept{
				{ID: "a", Prerequisites: []string{"b"}},
				{ID: "b", Prerequisites: []string{"a"}},
			},
			"cycle",
		},
		{
			"orphan",
			[]Concept{
				{ID: "a"},
				{ID: "b", Prerequisites: []string{"a"}},
				{ID: "island"},
			},
			"orphaned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.concepts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSingleConceptGraphIsValid(t *testing.T) {
	_, err := New([]Concept{{ID: "only"}})
	assert.NoError(t, err)
}

func TestFrontier(t *testing.T) {
	g, err := New(linearCourse())
	require.NoError(t, err)

	// Nothing mastered: only roots are ready.
	assert.Equal(t, []string{"vars"}, g.Frontier(nil))

	// Mastering vars opens funcs and slices.
	assert.Equal(t, []string{"funcs", "slices"}, g.Frontier(map[string]bool{"vars": true}))

	// Mastered concepts leave the frontier.
	assert.Equal(t, []string{"closures", "slices"},
		g.Frontier(map[string]bool{"vars": true, "funcs": true}))
}

func TestPrerequisiteChain(t *testing.T) {
	g, err := New(linearCourse())
	require.NoError(t, err)

	assert.Equal(t, []string{"vars", "funcs"}, g.PrerequisiteChain("closures"))
	assert.Empty(t, g.PrerequisiteChain("vars"))
	assert.Empty(t, g.PrerequisiteChain("nope"))
}

func TestSuggestPivot(t *testing.T) {
	g, err := New(linearCourse())
	require.NoError(t, err)

	// Stuck on funcs with vars mastered: slices is the only alternative
	// (closures depends on funcs).
	got := g.SuggestPivot(map[string]bool{"vars": true}, "funcs")
	assert.Equal(t, []string{"slices"}, got)
}

func TestWarnings(t *testing.T) {
	concepts := []Concept{
		{ID: "hard-recall", Difficulty: 0.9, BloomTarget: mastery.Remember},
		{ID: "child", Prerequisites: []string{"hard-recall"}, BloomTarget: mastery.Apply},
	}
	g, err := New(concepts)
	require.NoError(t, err)

	warnings := g.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "hard-recall")
}
