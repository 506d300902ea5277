package deck

import (
	"sort"
	"strings"
)

// Hand represents an ordered collection of cards
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Less(h[j])
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c == card {
			return true
		}
	}

	return false
}

// WireString concatenates the wire code of every card in order
func (h Hand) WireString() string {
	var sb strings.Builder
	sb.Grow(len(h) * 2)
	for _, c := range h {
		sb.WriteString(c.WireCode())
	}

	return sb.String()
}

func (h Hand) String() string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.String()
	}

	return strings.Join(s, " ")
}

// Pretty returns the colored display string of the hand
func (h Hand) Pretty() string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.Pretty()
	}

	return strings.Join(s, " ")
}

// SortDescending returns a copy of the hand with the highest card first
func (h Hand) SortDescending() Hand {
	h2 := h.Clone()
	sort.Sort(sort.Reverse(h2))

	return h2
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
