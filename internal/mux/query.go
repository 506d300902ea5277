package mux

import (
	"errors"
	"fmt"
	"net/http"

	"headsup-poker/pkg/client"
	"headsup-poker/pkg/holdem"
	"headsup-poker/pkg/strategy"
)

var errMissingState = fmt.Errorf("missing %s parameter", client.QueryParameter)

// parseState reads the hand state from the query string
func parseState(r *http.Request) (*holdem.State, error) {
	values, ok := r.URL.Query()[client.QueryParameter]
	if !ok || len(values) == 0 {
		return nil, errMissingState
	}

	return holdem.ParseState(values[0])
}

// getQuery answers in the plain text format the strategy client reads
func (m *Mux) getQuery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := parseState(r)
		if err != nil {
			writeTextError(w, http.StatusBadRequest, err)
			return
		}

		lines, err := m.chart.Lines(state)
		if err != nil {
			m.requestLogger(r).WithError(err).Error("could not compute the strategy")
			writeTextError(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := strategy.WriteLines(w, lines); err != nil {
			m.requestLogger(r).WithError(err).Error("could not write the strategy")
		}
	}
}

type strategyResponse struct {
	State string                            `json:"state"`
	Round holdem.Round                      `json:"round"`
	Hands map[string]strategy.Probabilities `json:"hands"`
}

// getStrategy answers in JSON, optionally for a single hand
func (m *Mux) getStrategy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := parseState(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		lines, err := m.chart.Lines(state)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		hand := r.FormValue("hand")
		resp := strategyResponse{
			State: r.FormValue(client.QueryParameter),
			Round: state.Round,
			Hands: make(map[string]strategy.Probabilities),
		}

		for _, l := range lines {
			if hand == "" || hand == l.Hand {
				resp.Hands[l.Hand] = l.Probabilities
			}
		}

		if len(resp.Hands) == 0 {
			writeJSONError(w, http.StatusNotFound, errors.New("unknown hand"))
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
