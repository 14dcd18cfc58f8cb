// Package api serves scales, chords and progressions over HTTP. Tokens are
// validated in a single strict attempt; a rejection is a 400 naming the
// field.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/notation/metrics"
	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/store"
	"github.com/jsphweid/notation/theory"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// maxBodyBytes bounds POST bodies; a progression with thousands of chords
// still fits.
const maxBodyBytes = 1 << 20

type ctxKey int

const loggerKey ctxKey = iota

type Server struct {
	adapter *theory.Adapter
	store   *store.Store
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func New(adapter *theory.Adapter, st *store.Store, logger *zap.Logger, m *metrics.Metrics) *Server {
	return &Server{adapter: adapter, store: st, logger: logger, metrics: m}
}

// Handler builds the router wrapped in panic recovery, request logging and
// CORS.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.countRequests)

	router.HandleFunc("/", s.handleUsage).Methods(http.MethodGet)
	router.HandleFunc("/scale/{tonic}/{mode}/{direction}", s.handleScale).Methods(http.MethodGet)
	router.HandleFunc("/chord/{root}/{quality}/{extension}", s.handleChord).Methods(http.MethodGet)
	router.HandleFunc("/progression/{name}", s.handleCreateProgression).Methods(http.MethodPost)
	router.HandleFunc("/progression/{name}", s.handleGetProgression).Methods(http.MethodGet)
	if s.metrics != nil {
		router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
	router.NotFoundHandler = http.HandlerFunc(s.handleNotFound)

	return cors.Default().Handler(s.logRequests(s.recoverPanics(router)))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests tags every request with an id and writes one log line when
// it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		logger := s.logger.With(zap.String("request_id", id))
		r = r.WithContext(context.WithValue(r.Context(), loggerKey, logger))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// recoverPanics turns a panicking handler into a 500. It sits inside
// logRequests so the request line still records the status.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.requestLogger(r).Error("panic serving request",
				zap.Any("panic", rec),
				zap.String("path", r.URL.Path),
				zap.Stack("stack"),
			)
			writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		}()
		next.ServeHTTP(w, r)
	})
}

// countRequests runs only for matched routes, so the route label is the
// path template rather than the raw path.
func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		s.metrics.RequestServed(route, rec.status)
	})
}

func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	if l, ok := r.Context().Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return s.logger
}
