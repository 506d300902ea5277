package room

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"headsup-poker/pkg/action"
	"headsup-poker/pkg/client"
	"headsup-poker/pkg/holdem"
)

// Options configures how the dealer runs a hand
type Options struct {
	// RaiseCap is the number of raises allowed per round, 0 for no limit
	// Once the cap is reached, a raise is played as a call
	RaiseCap int
}

// Dealer drives a single hand by asking the clients for actions
type Dealer struct {
	id          string
	logger      logrus.FieldLogger
	sink        io.Writer
	hand        *holdem.Hand
	clients     [2]client.Client
	options     Options
	logMessages []*LogMessage
}

// NewDealer returns a dealer for the hand
// The clients are created from the factories with the private cards of their seat
func NewDealer(logger logrus.FieldLogger, sink io.Writer, hand *holdem.Hand, sb, bb client.Factory, opts Options) (*Dealer, error) {
	id := uuid.New().String()
	d := &Dealer{
		id:      id,
		logger:  logger.WithField("hand", id),
		sink:    sink,
		hand:    hand,
		options: opts,
	}

	for i, factory := range [2]client.Factory{sb, bb} {
		seat := holdem.Seat(i)
		c, err := factory(seat.Name(), hand.CardsFor(seat))
		if err != nil {
			return nil, fmt.Errorf("could not create the %s client: %w", seat.Name(), err)
		}

		d.clients[seat] = c
	}

	return d, nil
}

// ID returns the unique identifier of the hand
func (d *Dealer) ID() string {
	return d.id
}

// Play runs the hand until a player folds or the showdown is reached
// An error from a client ends the hand without a result
func (d *Dealer) Play(ctx context.Context) (*Result, error) {
	for !d.hand.IsOver() {
		seat := d.hand.ActivePlayer()
		a, err := d.getAction(ctx, seat)
		if err != nil {
			return nil, fmt.Errorf("hand %s: %w", d.id, err)
		}

		if a == action.Fold {
			d.showCards()
			return d.finish(d.foldResult(seat)), nil
		}

		round := d.hand.Round()
		if a == action.Raise {
			d.hand.ApplyRaise()
		} else {
			d.hand.ApplyCall()
		}

		if next := d.hand.Round(); next != round && next != holdem.Showdown {
			d.logger.WithField("round", next).Debug("next round")
			d.logf("Pot: %d", d.hand.Pot())
			d.logf("Table: %s", d.hand.TableCards().Pretty())
		}
	}

	result, err := d.showdown()
	if err != nil {
		return nil, fmt.Errorf("hand %s: %w", d.id, err)
	}

	return d.finish(result), nil
}

// getAction asks the client of the seat until it returns a recognized action
func (d *Dealer) getAction(ctx context.Context, seat holdem.Seat) (action.Action, error) {
	c := d.clients[seat]
	state := d.hand.State()
	log := d.logger.WithFields(logrus.Fields{
		"seat":   seat,
		"client": c.Name(),
	})

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		raw, err := c.GetAction(ctx, state)
		if err != nil {
			return "", err
		}

		a, err := action.FromString(raw)
		if err != nil {
			log.WithError(err).Debug("asking again")
			continue
		}

		if a == action.Raise && d.options.RaiseCap > 0 && d.hand.RaisesThisRound() >= d.options.RaiseCap {
			log.WithField("raiseCap", d.options.RaiseCap).Info("raise cap reached, playing a call")
			a = action.Call
		}

		d.seatLogf(seat, "%s (%s) %s.", seat, c.Name(), a.Verb())
		return a, nil
	}
}

func (d *Dealer) showCards() {
	d.logf("SB: %s", d.hand.SmallBlindCards().Pretty())
	d.logf("BB: %s", d.hand.BigBlindCards().Pretty())
	d.logf("")
}

func (d *Dealer) finish(result *Result) *Result {
	result.Log = d.logMessages
	d.logger.WithField("result", litter.Options{Compact: true, HidePrivateFields: true}.Sdump(result)).Debug("hand finished")

	return result
}

func (d *Dealer) newResult(outcome Outcome) *Result {
	return &Result{
		HandID:  d.id,
		Outcome: outcome,
		Round:   d.hand.Round(),
		Pot:     d.hand.Pot(),
		State:   d.hand.State(),
		Clients: [2]string{d.clients[holdem.SmallBlind].Name(), d.clients[holdem.BigBlind].Name()},
	}
}

func (d *Dealer) foldResult(folder holdem.Seat) *Result {
	r := d.newResult(OutcomeFold)
	r.Folder = folder
	r.Winner = folder.Other()

	return r
}
