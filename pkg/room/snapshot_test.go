package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"headsup-poker/pkg/snapshot"
)

type handSnapshot struct {
	State   string   `json:"state"`
	Pot     int      `json:"pot"`
	Outcome Outcome  `json:"outcome"`
	Winner  string   `json:"winner"`
	Actions []string `json:"actions"`
}

func snapshotOf(r *Result) handSnapshot {
	s := handSnapshot{
		State:   r.State,
		Pot:     r.Pot,
		Outcome: r.Outcome,
		Winner:  r.Winner.String(),
	}

	for _, m := range r.Log {
		if m.Seat != nil {
			s.Actions = append(s.Actions, m.Message)
		}
	}

	return s
}

func TestDealer_Play_snapshots(t *testing.T) {
	for _, scripts := range [][2][]string{
		{{"R", "F"}, {"R"}},
		{{"C", "R"}, {"C", "R", "F"}},
	} {
		sb := &scriptedClient{actions: scripts[0]}
		bb := &scriptedClient{actions: scripts[1]}

		d, _ := newTestDealer(t, straightVsPair, sb, bb, Options{})
		result, err := d.Play(context.Background())
		assert.NoError(t, err)

		snapshot.ValidateSnapshot(t, snapshotOf(result))
	}
}
