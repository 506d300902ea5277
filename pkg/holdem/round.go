package holdem

import "encoding/json"

// Round represents the betting round of a hand
type Round int

// constants for Round
const (
	PreFlop Round = iota
	Flop
	Turn
	River
	Showdown
)

// boardSizes is the number of community cards on the table during each round
var boardSizes = [...]int{
	PreFlop:  0,
	Flop:     3,
	Turn:     4,
	River:    5,
	Showdown: 5,
}

// BoardSize returns how many community cards are dealt once the round is reached
func (r Round) BoardSize() int {
	return boardSizes[r]
}

// IsBettingRound returns true if actions can be applied during the round
func (r Round) IsBettingRound() bool {
	return r >= PreFlop && r < Showdown
}

// BetIncrement returns the amount the pot grows by for a raise in the round
// The turn and the river use the big bet.
func BetIncrement(r Round) int {
	if r >= Turn {
		return 2
	}

	return 1
}

func (r Round) String() string {
	switch r {
	case PreFlop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(r),
		Name: r.String(),
	})
}

// Seat is one of the two heads-up positions
type Seat int

// seat constants
const (
	SmallBlind Seat = iota
	BigBlind
)

// FirstToActPostFlop is the seat that opens the flop, turn and river
const FirstToActPostFlop = BigBlind

// Other returns the opposing seat
func (s Seat) Other() Seat {
	return 1 - s
}

// Name returns the full name of the seat
func (s Seat) Name() string {
	if s == SmallBlind {
		return "Small Blind"
	}

	return "Big Blind"
}

func (s Seat) String() string {
	if s == SmallBlind {
		return "SB"
	}

	return "BB"
}
