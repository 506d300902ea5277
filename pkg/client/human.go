package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"headsup-poker/pkg/deck"
)

// ErrInputClosed is returned when the console has no more input
var ErrInputClosed = errors.New("input closed")

const humanPrompt = "Your action? (F)old / (C)all / (R)aise "

// Human reads decisions from a console
type Human struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewHumanFactory returns a factory of console clients sharing the same input
func NewHumanFactory(in io.Reader, out io.Writer) Factory {
	reader := bufio.NewReader(in)

	return func(seat string, cards deck.Hand) (Client, error) {
		_, _ = fmt.Fprintf(out, "You are %s.\n", seat)
		_, _ = fmt.Fprintf(out, "Your cards: %s\n", cards.Pretty())

		return &Human{
			reader: reader,
			out:    out,
		}, nil
	}
}

// Name returns the name of the client
func (h *Human) Name() string {
	return "Human"
}

// GetAction prompts for a single line of input
// Blocks until a line is read. The context is only checked before prompting.
func (h *Human) GetAction(ctx context.Context, handState string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	_, _ = fmt.Fprint(h.out, humanPrompt)

	line, err := h.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}

		// a final line without a newline is still a decision
		if line == "" {
			return "", ErrInputClosed
		}
	}

	return strings.ToUpper(strings.TrimSpace(line)), nil
}
