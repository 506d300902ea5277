package holdem

import (
	"errors"
	"fmt"
	"strings"

	"headsup-poker/pkg/deck"
)

// ErrMalformedState is returned when an encoded hand state cannot be parsed
var ErrMalformedState = errors.New("malformed hand state")

// State is a decoded "<history>:<board>" string
type State struct {
	History string
	Board   deck.Hand
	Round   Round
}

// ParseState decodes the output of Hand.State()
// The round is derived from the number of separators in the history
func ParseState(s string) (*State, error) {
	history, board, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("%w: missing board separator in %q", ErrMalformedState, s)
	}

	for i := 0; i < len(history); i++ {
		switch history[i] {
		case historyCall, historyRaise, historySeparator:
		default:
			return nil, fmt.Errorf("%w: unexpected %q in history", ErrMalformedState, history[i])
		}
	}

	round, err := RoundFromHistory(history)
	if err != nil {
		return nil, err
	}

	cards, err := deck.ParseCards(board)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}

	if len(cards) != round.BoardSize() {
		return nil, fmt.Errorf("%w: %d board cards during the %s", ErrMalformedState, len(cards), round)
	}

	for i, c := range cards {
		if cards[:i].HasCard(c) {
			return nil, fmt.Errorf("%w: duplicate board card %s", ErrMalformedState, c.WireCode())
		}
	}

	return &State{
		History: history,
		Board:   cards,
		Round:   round,
	}, nil
}

// RoundFromHistory derives the betting round from the separators in a history
// A history can never reach the showdown since the final call is not followed by a separator
func RoundFromHistory(history string) (Round, error) {
	n := strings.Count(history, string(historySeparator))
	if n > int(River) {
		return 0, fmt.Errorf("%w: %d round separators", ErrMalformedState, n)
	}

	return Round(n), nil
}

// CurrentRound returns the actions of the round in progress
func (s *State) CurrentRound() string {
	if i := strings.LastIndexByte(s.History, historySeparator); i >= 0 {
		return s.History[i+1:]
	}

	return s.History
}

// RaisesThisRound returns the number of raises in the round in progress
func (s *State) RaisesThisRound() int {
	return strings.Count(s.CurrentRound(), string(historyRaise))
}

// FacingRaise returns true if the last action of the current round was a raise
func (s *State) FacingRaise() bool {
	current := s.CurrentRound()
	return current != "" && current[len(current)-1] == historyRaise
}

// ActivePlayer returns the seat to act
func (s *State) ActivePlayer() Seat {
	first := FirstToActPostFlop
	if s.Round == PreFlop {
		first = SmallBlind
	}

	return Seat((int(first) + len(s.CurrentRound())) % 2)
}
