package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"headsup-poker/pkg/strategy"
)

type ctxKey int

const (
	ctxLoggerKey ctxKey = iota
)

// RequestIDHeader is set on every response
const RequestIDHeader = "X-Request-ID"

// Mux handles HTTP requests to the strategy service
type Mux struct {
	*gmux.Router
	version string
	chart   strategy.Chart
	logger  logrus.FieldLogger
}

// NewMux returns a new HTTP mux
func NewMux(logger logrus.FieldLogger, version string, chart strategy.Chart) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		chart:   chart,
		logger:  logger,
	}

	r := this.Router
	r.Use(this.requestMiddleware)
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/query").Handler(this.getQuery())
	r.Methods(http.MethodGet).Path("/strategy").Handler(this.getStrategy())

	return this
}

// requestMiddleware tags the request with an id and a logger
func (m *Mux) requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		logger := m.logger.WithFields(logrus.Fields{
			"requestId":  id,
			"remoteAddr": remoteAddr(r),
		})

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxLoggerKey, logger)))
	})
}

func (m *Mux) requestLogger(r *http.Request) logrus.FieldLogger {
	if logger, ok := r.Context().Value(ctxLoggerKey).(logrus.FieldLogger); ok {
		return logger
	}

	return m.logger
}
