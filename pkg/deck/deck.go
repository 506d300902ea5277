package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"sort"

	"headsup-poker/internal/rng"
)

// ErrNotEnoughCards is an error when more cards are requested than the deck holds
var ErrNotEnoughCards = errors.New("not enough cards left in the deck")

// Deck represents a playing deck
// Cards are dealt from the end of the slice
type Deck struct {
	cards []Card
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. Use Generate() for a shuffled deck
func New() *Deck {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	return &Deck{cards: cards}
}

// Generate returns a new shuffled deck of 52 cards
func Generate(gen rng.Generator) *Deck {
	d := New()
	d.shuffle(gen)
	return d
}

// FromCards returns a deck holding exactly the provided cards
// The last card is the first one dealt
func FromCards(cards []Card) *Deck {
	c := make([]Card, len(cards))
	copy(c, cards)

	return &Deck{cards: c}
}

func (d *Deck) shuffle(gen rng.Generator) {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Sort orders the deck so the lowest card is dealt first
func (d *Deck) Sort() {
	sort.Slice(d.cards, func(i, j int) bool {
		return d.cards[j].Less(d.cards[i])
	})
}

// BulkPop removes the last n cards of the deck and returns them in removal order
// If there are not enough cards, ErrNotEnoughCards is returned and the deck is left untouched
func (d *Deck) BulkPop(n int) (Hand, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d, have %d", ErrNotEnoughCards, n, len(d.cards))
	}

	popped := make(Hand, 0, n)
	for i := 0; i < n; i++ {
		last := len(d.cards) - 1
		popped = append(popped, d.cards[last])
		d.cards = d.cards[:last]
	}

	return popped, nil
}

// Pop removes and returns the last card of the deck
func (d *Deck) Pop() (Card, error) {
	cards, err := d.BulkPop(1)
	if err != nil {
		return Card{}, err
	}

	return cards[0], nil
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards
func (d *Deck) Cards() Hand {
	return Hand(d.cards).Clone()
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.cards {
		_, _ = hash.Write([]byte(card.WireCode()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
