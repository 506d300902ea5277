package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := CardsFromString("2c3c4d")
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_SortDescending(t *testing.T) {
	a := assert.New(t)

	hand := CardsFromString("7dAh")
	a.Equal("Ah7d", hand.SortDescending().WireString())
	a.Equal("7dAh", hand.WireString(), "the receiver is untouched")

	a.Equal("KsKc", CardsFromString("KcKs").SortDescending().WireString())
	a.Equal("QdQc", CardsFromString("QdQc").SortDescending().WireString())
}

func TestHand_String(t *testing.T) {
	a := assert.New(t)

	hand := CardsFromString("AsTd")
	a.Equal("A♠ T♦", hand.String())
	a.Equal("AsTd", hand.WireString())
	a.Equal("", Hand{}.WireString())
	a.Contains(hand.Pretty(), "A♠")
}
