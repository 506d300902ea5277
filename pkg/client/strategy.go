package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"headsup-poker/internal/rng"
	"headsup-poker/pkg/action"
	"headsup-poker/pkg/deck"
)

// ErrUnknownHand is returned when the strategy response has no line for the client's cards
var ErrUnknownHand = errors.New("hand not found in strategy response")

// ErrUnexpectedStatus is returned when the strategy service does not answer with 200 OK
var ErrUnexpectedStatus = errors.New("unexpected status from strategy service")

// QueryParameter is the name of the query string parameter carrying the hand state
const QueryParameter = "queryString"

// StrategyOptions configures the remote strategy client
type StrategyOptions struct {
	URL     string
	Timeout time.Duration
}

// Strategy queries a remote strategy service and samples an action from its probabilities
type Strategy struct {
	logger   logrus.FieldLogger
	http     *http.Client
	gen      rng.Generator
	url      string
	handCode string
}

// NewStrategyFactory returns a factory of remote strategy clients
// The http client is shared by every client the factory creates
func NewStrategyFactory(logger logrus.FieldLogger, opts StrategyOptions, gen rng.Generator) Factory {
	httpClient := &http.Client{Timeout: opts.Timeout}

	return func(seat string, cards deck.Hand) (Client, error) {
		if len(cards) != 2 {
			return nil, fmt.Errorf("expected two cards for the %s, got %d", seat, len(cards))
		}

		if _, err := url.Parse(opts.URL); err != nil {
			return nil, fmt.Errorf("invalid strategy url: %w", err)
		}

		return &Strategy{
			logger:   logger.WithField("seat", seat),
			http:     httpClient,
			gen:      gen,
			url:      opts.URL,
			handCode: HandCode(cards),
		}, nil
	}
}

// HandCode returns the code a strategy service uses for a pair of private cards
func HandCode(cards deck.Hand) string {
	return cards.SortDescending().WireString()
}

// Name returns the name of the client
func (s *Strategy) Name() string {
	return "Strategy"
}

// GetAction queries the strategy service for the hand state
func (s *Strategy) GetAction(ctx context.Context, handState string) (string, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set(QueryParameter, handState)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	p, err := s.parseResponse(resp.Body)
	if err != nil {
		return "", err
	}

	a := p.sample(s.gen.Float64())
	s.logger.WithFields(logrus.Fields{
		"state":  handState,
		"fold":   p.fold,
		"call":   p.call,
		"raise":  p.raise,
		"action": a,
	}).Debug("sampled strategy")

	return string(a), nil
}

type probabilities struct {
	fold, call, raise float64
}

// sample partitions [0, 1) into fold, call and raise intervals
func (p probabilities) sample(u float64) action.Action {
	if u < p.fold {
		return action.Fold
	}

	u -= p.fold
	if u < p.call {
		return action.Call
	}

	return action.Raise
}

func (s *Strategy) parseResponse(body io.Reader) (probabilities, error) {
	scanner := bufio.NewScanner(body)

	// skip header
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return probabilities{}, err
		}

		return probabilities{}, fmt.Errorf("%w: %s (empty response)", ErrUnknownHand, s.handCode)
	}

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] != s.handCode {
			continue
		}

		var probs [3]float64
		for i := range probs {
			f, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return probabilities{}, fmt.Errorf("could not parse probability for %s: %w", s.handCode, err)
			}

			probs[i] = f
		}

		return probabilities{fold: probs[0], call: probs[1], raise: probs[2]}, nil
	}

	if err := scanner.Err(); err != nil {
		return probabilities{}, err
	}

	return probabilities{}, fmt.Errorf("%w: %s", ErrUnknownHand, s.handCode)
}
