package room

import (
	"headsup-poker/pkg/deck"
	"headsup-poker/pkg/holdem"
)

func (d *Dealer) showdown() (*Result, error) {
	d.logf("")
	d.logf("SHOWDOWN")
	d.showCards()

	r := d.newResult(OutcomeShowdown)
	board := d.hand.TableCards()

	var scores [2]int16
	for _, seat := range []holdem.Seat{holdem.SmallBlind, holdem.BigBlind} {
		cards := append(board.Clone(), d.hand.CardsFor(seat)...)

		score, err := deck.Evaluate(cards)
		if err != nil {
			return nil, err
		}

		desc, err := deck.Describe(cards)
		if err != nil {
			return nil, err
		}

		scores[seat] = score
		r.Descriptions[seat] = desc
	}

	switch {
	case scores[holdem.SmallBlind] > scores[holdem.BigBlind]:
		r.Winner = holdem.SmallBlind
	case scores[holdem.BigBlind] > scores[holdem.SmallBlind]:
		r.Winner = holdem.BigBlind
	default:
		r.Split = true
		d.logf("Split pot of %d (%s)", r.Pot, r.Descriptions[holdem.SmallBlind])
		return r, nil
	}

	d.seatLogf(r.Winner, "%s wins the pot of %d with %s", r.Winner, r.Pot, r.Descriptions[r.Winner])
	return r, nil
}
