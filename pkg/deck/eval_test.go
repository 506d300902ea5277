package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	a := assert.New(t)

	straight, err := Evaluate(CardsFromString("ThJcJdQs3hAsKs"))
	a.NoError(err)
	pair, err := Evaluate(CardsFromString("ThJcJdQs3h2c7d"))
	a.NoError(err)
	a.Greater(straight, pair)

	wheel, err := Evaluate(CardsFromString("As2c3d4h5s9cTd"))
	a.NoError(err)
	a.Greater(wheel, pair, "aces play low in a wheel")

	_, err = Evaluate(CardsFromString("AsKs"))
	a.EqualError(err, "expected 7 cards to evaluate, got 2")
}

func TestDescribe(t *testing.T) {
	desc, err := Describe(CardsFromString("AsKsQsJsTs2c3d"))
	assert.NoError(t, err)
	assert.NotEmpty(t, desc)

	_, err = Describe(CardsFromString("AsKsQs"))
	assert.Error(t, err)
}
