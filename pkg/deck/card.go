package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// ErrInvalidCard is returned when a wire code cannot be parsed into a card
var ErrInvalidCard = errors.New("invalid card")

// Rank is the rank of a card. Aces are always high.
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from the highest to the lowest
var Ranks = [...]Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

const rankChars = "23456789TJQKA"

// Char returns the single character wire code of the rank
func (r Rank) Char() byte {
	if r < Two || r > Ace {
		panic(fmt.Sprintf("unknown rank: %d", int(r)))
	}

	return rankChars[r-Two]
}

func (r Rank) String() string {
	return string(r.Char())
}

// Suit represents a card suit
// The order only exists for deterministic sorting, it has no bearing on strength
type Suit int

// suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in sort order
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

const suitLetters = "cdhs"

// Letter returns the single character wire code of the suit
func (s Suit) Letter() byte {
	if s < Clubs || s > Spades {
		panic(fmt.Sprintf("unknown suit: %d", int(s)))
	}

	return suitLetters[s]
}

// Symbol returns the display glyph of the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}

	panic("unknown suit")
}

// Color returns the display color of the suit
func (s Suit) Color() pterm.Color {
	switch s {
	case Clubs:
		return pterm.FgGreen
	case Diamonds:
		return pterm.FgYellow
	case Hearts:
		return pterm.FgRed
	case Spades:
		return pterm.FgWhite
	}

	panic("unknown suit")
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	}

	return ""
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Compare orders cards by rank, then by suit
// It returns -1 if c sorts before other, 1 if after and 0 if they are the same card
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	case c.Suit < other.Suit:
		return -1
	case c.Suit > other.Suit:
		return 1
	}

	return 0
}

// Less returns true if c sorts before other
func (c Card) Less(other Card) bool {
	return c.Compare(other) < 0
}

// WireCode returns the two character code of the card (i.e., "As" for the ace of spades)
func (c Card) WireCode() string {
	return string([]byte{c.Rank.Char(), c.Suit.Letter()})
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Pretty returns the display string in the color of the suit
func (c Card) Pretty() string {
	return pterm.NewStyle(c.Suit.Color(), pterm.Bold).Sprint(c.String())
}

// ParseCard parses a two character wire code
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	r := strings.IndexByte(rankChars, s[0])
	if r < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, s)
	}

	suit := strings.IndexByte(suitLetters, s[1])
	if suit < 0 {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, s)
	}

	return Card{Rank: Two + Rank(r), Suit: Suit(suit)}, nil
}

// ParseCards parses concatenated wire codes (i.e., "ThJcJdQs")
func ParseCards(s string) (Hand, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length board %q", ErrInvalidCard, s)
	}

	cards := make(Hand, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}

		cards = append(cards, card)
	}

	return cards, nil
}

// CardFromString returns a Card from the wire code
// Panics if the card cannot be parsed
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString returns the cards of concatenated wire codes
// Panics if any card cannot be parsed
func CardsFromString(s string) Hand {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}
