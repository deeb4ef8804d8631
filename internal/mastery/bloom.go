package mastery

import "fmt"

// BloomLevel is the ordered cognitive-skill tier used to gate question
// difficulty: remember < understand < apply < analyze < evaluate < create.
type BloomLevel int

const (
	Remember BloomLevel = iota + 1
	Understand
	Apply
	Analyze
	Evaluate
	Create
)

var bloomNames = map[BloomLevel]string{
	Remember:   "remember",
	Understand: "understand",
	Apply:      "apply",
	Analyze:    "analyze",
	Evaluate:   "evaluate",
	Create:     "create",
}

func (l BloomLevel) String() string {
	if name, ok := bloomNames[l]; ok {
		return name
	}
	return fmt.Sprintf("bloom(%d)", int(l))
}

// Valid reports whether l is one of the six defined levels.
func (l BloomLevel) Valid() bool { return l >= Remember && l <= Create }

// Next returns the successor level. The second result is false at the
// ceiling: create has no successor.
func (l BloomLevel) Next() (BloomLevel, bool) {
	if l >= Create || !l.Valid() {
		return l, false
	}
	return l + 1, true
}

// ParseBloom converts the wire spelling of a Bloom level.
func ParseBloom(s string) (BloomLevel, error) {
	for l, name := range bloomNames {
		if name == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown bloom level %q", s)
}
