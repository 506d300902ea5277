package strategy

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"headsup-poker/pkg/client"
	"headsup-poker/pkg/deck"
	"headsup-poker/pkg/holdem"
)

// Header is the first line of a strategy response
const Header = "hand fold call raise"

// Probabilities of each action for a hand, they sum to 1
type Probabilities struct {
	Fold  float64 `json:"fold"`
	Call  float64 `json:"call"`
	Raise float64 `json:"raise"`
}

// Line is the response line of a single hand
type Line struct {
	Hand string
	Probabilities
}

func (l Line) String() string {
	return l.Hand + " " +
		strconv.FormatFloat(l.Fold, 'f', 6, 64) + " " +
		strconv.FormatFloat(l.Call, 'f', 6, 64) + " " +
		strconv.FormatFloat(l.Raise, 'f', 6, 64)
}

// Chart is a fixed strategy that scores private cards against the board
type Chart struct {
	// RaiseCap is the number of raises in a round after which the chart stops raising, 0 for no limit
	RaiseCap int
}

// Combinations returns every pair of private cards, strongest card first
func Combinations() []deck.Hand {
	cards := deck.New().Cards()
	combos := make([]deck.Hand, 0, len(cards)*(len(cards)-1)/2)
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			combos = append(combos, deck.Hand{cards[i], cards[j]}.SortDescending())
		}
	}

	return combos
}

// Lines returns the probabilities of every combination of private cards for the state
func (c Chart) Lines(state *holdem.State) ([]Line, error) {
	var river *riverRanking
	if state.Round == holdem.River {
		r, err := newRiverRanking(state.Board)
		if err != nil {
			return nil, err
		}

		river = r
	}

	combos := Combinations()
	lines := make([]Line, len(combos))
	for i, cards := range combos {
		score := holeScore(cards)
		switch {
		case overlaps(cards, state.Board):
		case river != nil:
			s, err := river.percentile(cards)
			if err != nil {
				return nil, err
			}

			score = s
		case len(state.Board) > 0:
			score = clamp(score/2 + boardBonus(cards, state.Board))
		}

		lines[i] = Line{
			Hand:          client.HandCode(cards),
			Probabilities: c.probabilities(state, score),
		}
	}

	return lines, nil
}

// Write writes the response for the state
func (c Chart) Write(w io.Writer, state *holdem.State) error {
	lines, err := c.Lines(state)
	if err != nil {
		return err
	}

	return WriteLines(w, lines)
}

// WriteLines writes the header followed by one line per hand
func WriteLines(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(bw, l.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// probabilities turns a score in [0, 1] into action probabilities
// The chart never folds when it does not face a raise
func (c Chart) probabilities(state *holdem.State, score float64) Probabilities {
	var p Probabilities

	if c.RaiseCap == 0 || state.RaisesThisRound() < c.RaiseCap {
		p.Raise = score * score
	}

	if state.FacingRaise() {
		p.Fold = (1 - score) * (1 - score) * 0.8
	}

	p.Call = 1 - p.Fold - p.Raise
	return p
}

// holeScore rates two private cards on their own
func holeScore(cards deck.Hand) float64 {
	hi, lo := cards[0], cards[1]
	if hi.Rank < lo.Rank {
		hi, lo = lo, hi
	}

	if hi.Rank == lo.Rank {
		return 0.5 + float64(hi.Rank-deck.Two)/24
	}

	score := float64(2*(hi.Rank-deck.Two)+(lo.Rank-deck.Two)) / 36 * 0.6
	if hi.Suit == lo.Suit {
		score += 0.06
	}

	switch hi.Rank - lo.Rank {
	case 1:
		score += 0.04
	case 2:
		score += 0.02
	}

	return clamp(score)
}

// boardBonus rates what the private cards make with the flop or the turn
func boardBonus(cards, board deck.Hand) float64 {
	var bonus float64
	var highest deck.Rank
	ranks := make(map[deck.Rank]int)
	suits := make(map[deck.Suit]int)
	for _, c := range board {
		ranks[c.Rank]++
		suits[c.Suit]++
		if c.Rank > highest {
			highest = c.Rank
		}
	}

	if cards[0].Rank == cards[1].Rank {
		switch {
		case ranks[cards[0].Rank] > 0:
			bonus += 0.45
		case cards[0].Rank > highest:
			bonus += 0.2
		}
	} else {
		for _, c := range cards {
			switch ranks[c.Rank] {
			case 0:
			case 1:
				bonus += 0.15 + float64(c.Rank)/140
			default:
				bonus += 0.35
			}
		}
	}

	flush := 0
	for _, c := range cards {
		n := suits[c.Suit]
		for _, other := range cards {
			if other.Suit == c.Suit {
				n++
			}
		}

		if n > flush {
			flush = n
		}
	}

	switch {
	case flush >= 5:
		bonus += 0.4
	case flush == 4:
		bonus += 0.1
	}

	return bonus
}

func overlaps(cards, board deck.Hand) bool {
	for _, c := range cards {
		if board.HasCard(c) {
			return true
		}
	}

	return false
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}

	return f
}

// riverRanking holds the sorted scores of every pair of private cards on a complete board
type riverRanking struct {
	board  deck.Hand
	scores []int16
}

func newRiverRanking(board deck.Hand) (*riverRanking, error) {
	r := &riverRanking{board: board}
	for _, cards := range Combinations() {
		if overlaps(cards, board) {
			continue
		}

		score, err := r.evaluate(cards)
		if err != nil {
			return nil, err
		}

		r.scores = append(r.scores, score)
	}

	sort.Slice(r.scores, func(i, j int) bool {
		return r.scores[i] < r.scores[j]
	})

	return r, nil
}

func (r *riverRanking) evaluate(cards deck.Hand) (int16, error) {
	return deck.Evaluate(append(r.board.Clone(), cards...))
}

// percentile returns the share of the other combinations that the cards beat, ties count half
func (r *riverRanking) percentile(cards deck.Hand) (float64, error) {
	score, err := r.evaluate(cards)
	if err != nil {
		return 0, err
	}

	below := sort.Search(len(r.scores), func(i int) bool {
		return r.scores[i] >= score
	})
	notAbove := sort.Search(len(r.scores), func(i int) bool {
		return r.scores[i] > score
	})

	// the cards themselves are one of the ties
	ties := notAbove - below - 1
	others := len(r.scores) - 1

	return (float64(below) + float64(ties)/2) / float64(others), nil
}
