package client

import (
	"context"

	"headsup-poker/pkg/deck"
)

// Client decides the actions of a single seat for a single hand
type Client interface {
	// Name identifies the kind of client in the hand log
	Name() string

	// GetAction returns the raw action symbol for the encoded hand state
	// The symbol is not required to be valid, invalid symbols are asked for again
	GetAction(ctx context.Context, handState string) (string, error)
}

// Factory creates the client of a seat once the private cards are dealt
type Factory func(seat string, cards deck.Hand) (Client, error)
