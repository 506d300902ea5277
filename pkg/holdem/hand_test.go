package holdem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"headsup-poker/internal/rng"
	"headsup-poker/pkg/deck"
)

// stackedDeck returns a full deck where the cards are dealt in the order provided
func stackedDeck(dealt string) *deck.Deck {
	first := deck.CardsFromString(dealt)

	cards := make(deck.Hand, 0, 52)
	for _, c := range deck.New().Cards() {
		if !first.HasCard(c) {
			cards = append(cards, c)
		}
	}

	for i := len(first) - 1; i >= 0; i-- {
		cards = append(cards, first[i])
	}

	return deck.FromCards(cards)
}

// sb, bb, flop, turn, river
const fixtureDeal = "AsKs" + "2c7d" + "ThJcJd" + "Qs" + "3h"

func assertInvariants(t *testing.T, h *Hand) {
	t.Helper()

	a := assert.New(t)
	a.Equal(52, h.CardsLeft()+len(h.SmallBlindCards())+len(h.BigBlindCards())+len(h.TableCards()), "card conservation")
	a.Equal(h.Round().BoardSize(), len(h.TableCards()), "board size during the %s", h.Round())

	round, err := RoundFromHistory(h.History())
	a.NoError(err)
	if h.Round() == Showdown {
		a.Equal(River, round)
	} else {
		a.Equal(h.Round(), round, "round derived from history")
	}
}

func TestNewHand(t *testing.T) {
	a := assert.New(t)
	h := NewHand(rng.NewSeeded(42))

	a.Equal(1, h.Pot())
	a.Equal(PreFlop, h.Round())
	a.Equal(SmallBlind, h.ActivePlayer())
	a.False(h.HasActed(SmallBlind))
	a.False(h.HasActed(BigBlind))
	a.Len(h.SmallBlindCards(), 2)
	a.Len(h.BigBlindCards(), 2)
	a.Len(h.TableCards(), 0)
	a.Equal(48, h.CardsLeft())
	a.Equal(":", h.State())
	a.False(h.IsOver())
	assertInvariants(t, h)

	for _, c := range h.SmallBlindCards() {
		a.False(h.BigBlindCards().HasCard(c))
	}
}

func TestNewHandFromDeck(t *testing.T) {
	a := assert.New(t)
	h := NewHandFromDeck(stackedDeck(fixtureDeal))

	a.Equal("AsKs", h.SmallBlindCards().WireString())
	a.Equal("2c7d", h.BigBlindCards().WireString())
	a.Equal("AsKs", h.CardsFor(SmallBlind).WireString())
	a.Equal("2c7d", h.CardsFor(BigBlind).WireString())
}

func TestHand_fixture(t *testing.T) {
	a := assert.New(t)
	h := NewHandFromDeck(stackedDeck(fixtureDeal))

	// preflop: raise, re-raise, call
	h.ApplyRaise()
	h.ApplyRaise()
	h.ApplyCall()
	a.Equal(Flop, h.Round())
	a.Equal(3, h.Pot())

	// flop: check, check
	h.ApplyCall()
	h.ApplyCall()
	a.Equal(Turn, h.Round())
	a.Equal(3, h.Pot())

	// turn: raise, re-raise
	h.ApplyRaise()
	h.ApplyRaise()
	a.Equal(Turn, h.Round())
	a.Equal(7, h.Pot())

	a.Equal("rrc/cc/rr:ThJcJdQs", h.State())
	assertInvariants(t, h)
}

func TestHand_ApplyCall(t *testing.T) {
	a := assert.New(t)
	h := NewHandFromDeck(stackedDeck(fixtureDeal))

	h.ApplyCall()
	a.Equal(PreFlop, h.Round(), "one call does not close the round")
	a.Equal(BigBlind, h.ActivePlayer())
	a.True(h.HasActed(SmallBlind))
	a.False(h.HasActed(BigBlind))
	a.Equal("c:", h.State())

	h.ApplyCall()
	a.Equal(Flop, h.Round())
	a.Equal(FirstToActPostFlop, h.ActivePlayer())
	a.False(h.HasActed(SmallBlind))
	a.False(h.HasActed(BigBlind))
	a.Equal("cc/:ThJcJd", h.State())
	a.Equal(1, h.Pot())
	assertInvariants(t, h)
}

func TestHand_ApplyRaise(t *testing.T) {
	a := assert.New(t)
	h := NewHandFromDeck(stackedDeck(fixtureDeal))

	h.ApplyRaise()
	a.Equal(PreFlop, h.Round())
	a.Equal(BigBlind, h.ActivePlayer())
	a.Equal(2, h.Pot())
	a.Equal(1, h.RaisesThisRound())

	// both players have acted, but a raise always leaves the other seat to act
	h.ApplyRaise()
	a.Equal(PreFlop, h.Round())
	a.Equal(SmallBlind, h.ActivePlayer())
	a.Equal(3, h.Pot())
	a.Equal(2, h.RaisesThisRound())

	h.ApplyCall()
	a.Equal(Flop, h.Round())
	a.Equal(0, h.RaisesThisRound())
}

func TestHand_fullHand(t *testing.T) {
	a := assert.New(t)
	h := NewHandFromDeck(stackedDeck(fixtureDeal))

	for round := PreFlop; round < Showdown; round++ {
		a.Equal(round, h.Round())
		h.ApplyRaise()
		h.ApplyCall()
		assertInvariants(t, h)
	}

	a.Equal(Showdown, h.Round())
	a.True(h.IsOver())
	a.Equal(1+1+1+2+2, h.Pot())
	a.Equal("rc/rc/rc/rc:ThJcJdQs3h", h.State(), "no separator at the showdown")
	a.Equal(43, h.CardsLeft())

	a.PanicsWithValue(ErrHandIsOver, func() { h.ApplyCall() })
	a.PanicsWithValue(ErrHandIsOver, func() { h.ApplyRaise() })
	a.Equal("rc/rc/rc/rc:ThJcJdQs3h", h.State())
	a.Equal(7, h.Pot())
}

func TestHand_showdownKeepsActivePlayer(t *testing.T) {
	h := NewHandFromDeck(stackedDeck(fixtureDeal))
	for i := 0; i < 8; i++ {
		h.ApplyCall()
	}

	assert.Equal(t, Showdown, h.Round())
	assert.Equal(t, SmallBlind, h.ActivePlayer())
	assert.Equal(t, "cc/cc/cc/cc:ThJcJdQs3h", h.State())
}

func TestHand_preflopClosesOnlyWhenBothActed(t *testing.T) {
	a := assert.New(t)

	h := NewHandFromDeck(stackedDeck(fixtureDeal))
	h.ApplyCall()
	a.Equal(PreFlop, h.Round())
	h.ApplyRaise()
	a.Equal(PreFlop, h.Round())
	h.ApplyCall()
	a.Equal(Flop, h.Round())
	a.Equal("crc/:ThJcJd", h.State())

	h = NewHandFromDeck(stackedDeck(fixtureDeal))
	h.ApplyRaise()
	h.ApplyCall()
	a.Equal(Flop, h.Round())
	a.Equal("rc/:ThJcJd", h.State())
}

func TestHand_mustDeal(t *testing.T) {
	d := deck.FromCards(deck.CardsFromString("2c3c4c5c"))
	h := NewHandFromDeck(d)
	assert.Equal(t, 0, h.CardsLeft())

	h.ApplyCall()
	assert.Panics(t, func() { h.ApplyCall() }, "the flop cannot be dealt")

	assert.Panics(t, func() { NewHandFromDeck(deck.FromCards(deck.CardsFromString("2c3c"))) })
}

func TestBetIncrement(t *testing.T) {
	assert.Equal(t, 1, BetIncrement(PreFlop))
	assert.Equal(t, 1, BetIncrement(Flop))
	assert.Equal(t, 2, BetIncrement(Turn))
	assert.Equal(t, 2, BetIncrement(River))
}

// plays random sequences of actions and checks the invariants after every step
func TestHand_randomSequences(t *testing.T) {
	gen := rng.NewSeeded(7)

	for i := 0; i < 500; i++ {
		h := NewHand(gen)
		prevPot := h.Pot()
		prevBoard := 0
		transitions := 0

		for !h.IsOver() {
			round := h.Round()
			raises := strings.Count(h.History(), "r")

			// cap the raises so every sequence terminates
			if gen.Intn(3) == 0 && h.RaisesThisRound() < 4 {
				h.ApplyRaise()
				assert.Equal(t, prevPot+BetIncrement(round), h.Pot())
				assert.Equal(t, round, h.Round(), "a raise never ends the round")
				assert.Equal(t, raises+1, strings.Count(h.History(), "r"))
			} else {
				h.ApplyCall()
				assert.Equal(t, prevPot, h.Pot())
				if h.Round() != round {
					assert.Equal(t, round+1, h.Round())
					transitions++
				}
			}

			assert.GreaterOrEqual(t, len(h.TableCards()), prevBoard)
			prevBoard = len(h.TableCards())
			prevPot = h.Pot()

			if !h.IsOver() {
				assert.Equal(t, transitions, strings.Count(h.History(), "/"))
			}

			assertInvariants(t, h)
		}

		assert.Equal(t, 3, strings.Count(h.History(), "/"))
		assert.Equal(t, 5, len(h.TableCards()))
	}
}

func TestRound_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("preflop", PreFlop.String())
	a.Equal("flop", Flop.String())
	a.Equal("turn", Turn.String())
	a.Equal("river", River.String())
	a.Equal("showdown", Showdown.String())
	a.Equal("", Round(9).String())

	b, err := Flop.MarshalJSON()
	a.NoError(err)
	a.JSONEq(`{"id":1,"name":"flop"}`, string(b))
}

func TestSeat(t *testing.T) {
	a := assert.New(t)

	a.Equal(BigBlind, SmallBlind.Other())
	a.Equal(SmallBlind, BigBlind.Other())
	a.Equal("SB", SmallBlind.String())
	a.Equal("BB", BigBlind.String())
	a.Equal("Small Blind", SmallBlind.Name())
	a.Equal("Big Blind", BigBlind.Name())
}
