package room

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"headsup-poker/pkg/holdem"
)

const logMessageLimit = 256

// LogMessage is a line of the hand narration
// Seat is nil for general statements
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Seat    *holdem.Seat `json:"seat"`
	Message string       `json:"message"`
	Time    time.Time    `json:"time"`
}

func newLogMessage(seat *holdem.Seat, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Seat:    seat,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}

// addLogMessage writes the message to the sink and keeps it with the hand
func (d *Dealer) addLogMessage(seat *holdem.Seat, format string, a ...interface{}) {
	msg := newLogMessage(seat, format, a...)
	if _, err := fmt.Fprintln(d.sink, msg.Message); err != nil {
		d.logger.WithError(err).Warn("could not write to the hand log")
	}

	m := append(d.logMessages, msg)
	if count := len(m); count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}

func (d *Dealer) logf(format string, a ...interface{}) {
	d.addLogMessage(nil, format, a...)
}

func (d *Dealer) seatLogf(seat holdem.Seat, format string, a ...interface{}) {
	d.addLogMessage(&seat, format, a...)
}
