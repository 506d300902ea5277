package deck

import (
	"fmt"

	"github.com/paulhankin/poker"
)

var pokerSuits = [...]poker.Suit{
	Clubs:    poker.Club,
	Diamonds: poker.Diamond,
	Hearts:   poker.Heart,
	Spades:   poker.Spade,
}

// pokerCard converts the card for the evaluator, which ranks aces as 1
func (c Card) pokerCard() (poker.Card, error) {
	rank := poker.Rank(c.Rank)
	if c.Rank == Ace {
		rank = 1
	}

	return poker.MakeCard(pokerSuits[c.Suit], rank)
}

func sevenCards(cards Hand) (*[7]poker.Card, error) {
	if len(cards) != 7 {
		return nil, fmt.Errorf("expected 7 cards to evaluate, got %d", len(cards))
	}

	var pc [7]poker.Card
	for i, c := range cards {
		card, err := c.pokerCard()
		if err != nil {
			return nil, fmt.Errorf("invalid card %s: %w", c.WireCode(), err)
		}

		pc[i] = card
	}

	return &pc, nil
}

// Evaluate scores the best five card hand out of seven cards
// A higher score is a better hand
func Evaluate(cards Hand) (int16, error) {
	pc, err := sevenCards(cards)
	if err != nil {
		return 0, err
	}

	return poker.Eval7(pc), nil
}

// Describe names the best five card hand out of seven cards
func Describe(cards Hand) (string, error) {
	pc, err := sevenCards(cards)
	if err != nil {
		return "", err
	}

	return poker.Describe(pc[:])
}
