package room

import "headsup-poker/pkg/holdem"

// Outcome is how a hand ended
type Outcome string

// outcome constants
const (
	OutcomeFold     Outcome = "fold"
	OutcomeShowdown Outcome = "showdown"
)

// Result is the final state of a hand
type Result struct {
	HandID  string       `json:"handId"`
	Outcome Outcome      `json:"outcome"`
	Round   holdem.Round `json:"round"`
	Pot     int          `json:"pot"`
	State   string       `json:"state"`

	// Folder is only set when the outcome is a fold
	Folder holdem.Seat `json:"folder"`

	// Winner is not set when the pot is split
	Winner holdem.Seat `json:"winner"`
	Split  bool        `json:"split"`

	// Descriptions of each seat's best hand, only set at the showdown
	Descriptions [2]string `json:"descriptions"`

	Clients [2]string     `json:"clients"`
	Log     []*LogMessage `json:"log"`
}
