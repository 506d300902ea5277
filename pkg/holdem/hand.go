package holdem

import (
	"errors"
	"fmt"
	"strings"

	"headsup-poker/internal/rng"
	"headsup-poker/pkg/deck"
)

// ErrHandIsOver is the panic value when an action is applied after the showdown
var ErrHandIsOver = errors.New("hand is over")

// history characters
const (
	historyCall      = 'c'
	historyRaise     = 'r'
	historySeparator = '/'
)

// Hand is a single heads-up hand of Limit Hold'em
// It is driven exclusively through ApplyCall() and ApplyRaise()
type Hand struct {
	pot          int
	round        Round
	deck         *deck.Deck
	tableCards   deck.Hand
	history      strings.Builder
	activePlayer Seat
	hasActed     [2]bool
	raises       int
	sbCards      deck.Hand
	bbCards      deck.Hand
}

// NewHand returns a new hand dealt from a freshly shuffled deck
func NewHand(gen rng.Generator) *Hand {
	return NewHandFromDeck(deck.Generate(gen))
}

// NewHandFromDeck returns a new hand dealt from the provided deck
// The small blind receives the first two cards, the big blind the next two
func NewHandFromDeck(d *deck.Deck) *Hand {
	h := &Hand{
		pot:          1,
		round:        PreFlop,
		deck:         d,
		tableCards:   make(deck.Hand, 0, 5),
		activePlayer: SmallBlind,
	}

	h.sbCards = h.mustDeal(2)
	h.bbCards = h.mustDeal(2)

	return h
}

func (h *Hand) mustDeal(n int) deck.Hand {
	cards, err := h.deck.BulkPop(n)
	if err != nil {
		panic(fmt.Sprintf("could not deal %d cards: %v", n, err))
	}

	return cards
}

// ApplyCall records a call (or a check) by the active player
// The round ends once both players have acted
func (h *Hand) ApplyCall() {
	h.mustBeInProgress()

	h.history.WriteByte(historyCall)
	h.hasActed[h.activePlayer] = true

	if h.hasActed[SmallBlind] && h.hasActed[BigBlind] {
		h.nextRound()
		return
	}

	h.activePlayer = h.activePlayer.Other()
}

// ApplyRaise records a raise by the active player
// A raise never ends the round, the other player must respond
func (h *Hand) ApplyRaise() {
	h.mustBeInProgress()

	h.history.WriteByte(historyRaise)
	h.hasActed[h.activePlayer] = true
	h.pot += BetIncrement(h.round)
	h.raises++
	h.activePlayer = h.activePlayer.Other()
}

func (h *Hand) mustBeInProgress() {
	if !h.round.IsBettingRound() {
		panic(ErrHandIsOver)
	}
}

func (h *Hand) nextRound() {
	h.round++
	if h.round == Showdown {
		return
	}

	h.history.WriteByte(historySeparator)
	h.tableCards = append(h.tableCards, h.mustDeal(h.round.BoardSize()-len(h.tableCards))...)

	h.activePlayer = FirstToActPostFlop
	h.hasActed = [2]bool{}
	h.raises = 0
}

// State returns the hand encoded as "<history>:<board>" (i.e., "rrc/cc/rr:ThJcJdQs")
func (h *Hand) State() string {
	return h.history.String() + ":" + h.tableCards.WireString()
}

// Pot returns the number of chips contributed by both players
func (h *Hand) Pot() int {
	return h.pot
}

// Round returns the current round
func (h *Hand) Round() Round {
	return h.round
}

// IsOver returns true once the showdown has been reached
func (h *Hand) IsOver() bool {
	return h.round == Showdown
}

// ActivePlayer returns the seat that must act next
func (h *Hand) ActivePlayer() Seat {
	return h.activePlayer
}

// HasActed returns true if the seat has acted in the current round
func (h *Hand) HasActed(seat Seat) bool {
	return h.hasActed[seat]
}

// RaisesThisRound returns the number of raises made in the current round
func (h *Hand) RaisesThisRound() int {
	return h.raises
}

// History returns the betting history
func (h *Hand) History() string {
	return h.history.String()
}

// TableCards returns a copy of the community cards
func (h *Hand) TableCards() deck.Hand {
	return h.tableCards.Clone()
}

// SmallBlindCards returns the small blind's private cards
func (h *Hand) SmallBlindCards() deck.Hand {
	return h.sbCards.Clone()
}

// BigBlindCards returns the big blind's private cards
func (h *Hand) BigBlindCards() deck.Hand {
	return h.bbCards.Clone()
}

// CardsFor returns the private cards of the seat
func (h *Hand) CardsFor(seat Seat) deck.Hand {
	if seat == SmallBlind {
		return h.SmallBlindCards()
	}

	return h.BigBlindCards()
}

// CardsLeft returns the number of undealt cards
func (h *Hand) CardsLeft() int {
	return h.deck.CardsLeft()
}
