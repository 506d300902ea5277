package action

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnrecognizedAction is returned when a raw symbol is not an action
var ErrUnrecognizedAction = errors.New("unrecognized action")

// Action represents a decision a seat can make
type Action string

// action constants
const (
	Fold  Action = "F"
	Call  Action = "C"
	Raise Action = "R"
)

var allowedActions = map[Action]bool{
	Fold:  true,
	Call:  true,
	Raise: true,
}

// FromString returns the action for the given symbol
func FromString(s string) (Action, error) {
	if _, ok := allowedActions[Action(s)]; ok {
		return Action(s), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnrecognizedAction, s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	}

	panic("unknown action")
}

// Verb returns the verb used when narrating the action
func (a Action) Verb() string {
	switch a {
	case Fold:
		return "folds"
	case Call:
		return "calls"
	case Raise:
		return "raises"
	}

	return ""
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}
