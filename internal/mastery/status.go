package mastery

import "fmt"

// Status is a concept's position in the learning lifecycle.
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusActive   Status = "active"
	StatusMastered Status = "mastered"
	StatusDropped  Status = "dropped"
)

// transitions is the explicit edge set of the status state machine.
// Anything not listed is illegal; in particular there is no path out of
// dropped and no shortcut from new to mastered. Dropped is reachable from
// every live state but only by explicit external action.
var transitions = map[Status][]Status{
	StatusNew:      {StatusLearning, StatusDropped},
	StatusLearning: {StatusActive, StatusDropped},
	StatusActive:   {StatusMastered, StatusDropped},
	StatusMastered: {StatusDropped},
	StatusDropped:  {},
}

// Valid reports whether s is a defined status.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether from -> to is a legal edge. Self
// transitions are allowed (a practice that changes nothing).
func CanTransition(from, to Status) bool {
	if from == to {
		return from.Valid()
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseStatus converts the wire spelling of a status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

// Transition records a status change for event logging and display.
type Transition struct {
	ConceptID string
	From      Status
	To        Status
	Trigger   string // "first-practice", "bloom-apply", "mastery", "dropped"
}
