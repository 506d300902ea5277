package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"headsup-poker/internal/rng"
)

type sequence []int

func (s *sequence) Intn(n int) int {
	v := (*s)[0] % n
	*s = (*s)[1:]
	return v
}

func (s *sequence) Float64() float64 {
	return 0
}

func TestGetRandomName(t *testing.T) {
	assert.Equal(t, "Fast Dog", GetRandomName(&sequence{0, 0}))
	assert.Equal(t, "Bluffing Lion", GetRandomName(&sequence{6, 9}))
	assert.Equal(t, "Leaping Panda", GetRandomName(&sequence{len(adjectives) - 1, len(animals) - 1}))
}

func TestUniqueNames(t *testing.T) {
	names := UniqueNames(&sequence{0, 0, 0, 0, 1, 1}, 2)
	assert.Equal(t, []string{"Fast Dog", "Slow Cat"}, names)

	names = UniqueNames(rng.NewSeeded(5), 10)
	assert.Len(t, names, 10)
	for _, name := range names {
		assert.Len(t, strings.Fields(name), 2)
	}
}
