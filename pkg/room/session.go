package room

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"headsup-poker/internal/rng"
	"headsup-poker/pkg/client"
	"headsup-poker/pkg/holdem"
)

// ErrPlayerCount is returned when a session is not created with exactly two players
var ErrPlayerCount = errors.New("a session needs exactly two players")

// Player is a named participant who is seated through a client factory
type Player struct {
	Name    string
	Factory client.Factory
}

// Summary counts the outcomes of the hands played in a session
type Summary struct {
	Hands     int            `json:"hands"`
	Failed    int            `json:"failed"`
	Folds     int            `json:"folds"`
	Showdowns int            `json:"showdowns"`
	Splits    int            `json:"splits"`
	Wins      map[string]int `json:"wins"`
}

// Session plays consecutive hands between two players, who swap seats after every hand
type Session struct {
	logger  logrus.FieldLogger
	sink    io.Writer
	gen     rng.Generator
	options Options
	players [2]Player

	// OnResult is called after every completed hand
	OnResult func(*Result)
}

// NewSession returns a session for the players
// The players are seated in a random order for the first hand
func NewSession(logger logrus.FieldLogger, sink io.Writer, gen rng.Generator, opts Options, players ...Player) (*Session, error) {
	if len(players) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrPlayerCount, len(players))
	}

	s := &Session{
		logger:  logger,
		sink:    sink,
		gen:     gen,
		options: opts,
	}

	first := gen.Intn(2)
	s.players[holdem.SmallBlind] = players[first]
	s.players[holdem.BigBlind] = players[1-first]

	return s, nil
}

// Seating returns the player names by seat for the next hand
func (s *Session) Seating() [2]string {
	return [2]string{s.players[holdem.SmallBlind].Name, s.players[holdem.BigBlind].Name}
}

// Run plays hands until the count is reached, or forever if hands is 0
// A hand that fails because of its clients is logged and skipped, unless the
// context was cancelled or the console input was closed
func (s *Session) Run(ctx context.Context, hands int) (*Summary, error) {
	summary := &Summary{Wins: make(map[string]int)}

	for i := 0; hands == 0 || i < hands; i++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := s.playHand(ctx, i+1)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, client.ErrInputClosed) || errors.Is(err, errSeating) {
				return summary, err
			}

			s.logger.WithError(err).Error("hand failed")
			if _, werr := fmt.Fprintf(s.sink, "Hand failed: %v\n", err); werr != nil {
				s.logger.WithError(werr).Warn("could not write to the hand log")
			}

			summary.Failed++
		} else {
			summary.record(result, s.Seating())
			if s.OnResult != nil {
				s.OnResult(result)
			}
		}

		summary.Hands++
		s.players[0], s.players[1] = s.players[1], s.players[0]
	}

	return summary, nil
}

var errSeating = errors.New("could not seat the players")

func (s *Session) playHand(ctx context.Context, number int) (*Result, error) {
	hand := holdem.NewHand(s.gen)
	sb, bb := s.players[holdem.SmallBlind], s.players[holdem.BigBlind]

	d, err := NewDealer(s.logger, s.sink, hand, sb.Factory, bb.Factory, s.options)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errSeating, err)
	}

	d.logf("")
	d.logf("Hand #%d: %s is the %s, %s is the %s", number, sb.Name, holdem.SmallBlind.Name(), bb.Name, holdem.BigBlind.Name())
	s.logger.WithFields(logrus.Fields{
		"hand":       d.ID(),
		"number":     number,
		"smallBlind": sb.Name,
		"bigBlind":   bb.Name,
	}).Info("starting hand")

	return d.Play(ctx)
}

func (sum *Summary) record(r *Result, seating [2]string) {
	switch r.Outcome {
	case OutcomeFold:
		sum.Folds++
	case OutcomeShowdown:
		sum.Showdowns++
	}

	if r.Split {
		sum.Splits++
		return
	}

	sum.Wins[seating[r.Winner]]++
}
