package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jsphweid/notation/acquire"
	"github.com/jsphweid/notation/chord"
	"github.com/jsphweid/notation/file"
	"github.com/jsphweid/notation/model"
	"github.com/jsphweid/notation/store"
	"github.com/jsphweid/notation/token"
	"go.uber.org/zap"
)

const usage = `notation

  GET  /scale/{tonic}/{mode}/{direction}      notes of a scale, one per line
  GET  /chord/{root}/{quality}/{extension}    note count, then "note, octave" per line
  POST /progression/{name}                    write a progression from {"chords":[{"root","quality","extension"}]}
  GET  /progression/{name}                    a stored progression file
  GET  /metrics                               prometheus metrics

  e.g. /scale/c/ionian/asc, /chord/a/minor/seventh
`

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, usage)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.metrics.RequestServed("unmatched", http.StatusNotFound)
	writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "no such route: " + r.URL.Path})
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tonic, err := acquire.Strict(vars["tonic"], acquire.Tonic)
	if err != nil {
		s.rejectToken(w, err, nil)
		return
	}
	mode, err := acquire.Strict(vars["mode"], acquire.Mode)
	if err != nil {
		s.rejectToken(w, err, nil)
		return
	}
	direction := acquire.Direction(vars["direction"], s.requestLogger(r))

	notes, err := s.adapter.ExpandScale(tonic, mode, direction)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	var b strings.Builder
	for _, n := range notes {
		fmt.Fprintln(&b, n)
	}
	writeText(w, http.StatusOK, b.String())
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	spec, err := acquire.StrictChord(vars["root"], vars["quality"], vars["extension"])
	if err != nil {
		s.rejectToken(w, err, nil)
		return
	}
	notes, err := s.adapter.ExpandSpec(spec)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", len(notes))
	for _, n := range notes {
		fmt.Fprintf(&b, "%s, %d\n", n, n.Octave)
	}
	writeText(w, http.StatusOK, b.String())
}

func (s *Server) handleCreateProgression(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if err := file.ValidateName(name); err != nil {
		s.metrics.ValidationFailed("name")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Field: "name", Token: name})
		return
	}

	var req model.ProgressionRequestBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body: " + err.Error(), Field: "body"})
		return
	}

	p := chord.New(name)
	for i, c := range req.Chords {
		spec, err := acquire.StrictChord(c.Root, c.Quality, c.Extension)
		if err != nil {
			s.rejectToken(w, err, &i)
			return
		}
		p.Append(spec)
	}

	path, err := s.store.SaveProgression(r.Context(), p)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, model.ProgressionResponse{Name: name, Path: path, Chords: p.Len()})
}

func (s *Server) handleGetProgression(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	body, _, err := s.store.Load(name)
	switch {
	case errors.Is(err, file.ErrInvalidName):
		s.metrics.ValidationFailed("name")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Field: "name", Token: name})
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: err.Error()})
	case err != nil:
		s.internalError(w, r, err)
	default:
		writeText(w, http.StatusOK, body)
	}
}

// rejectToken answers 400 for a token that failed validation. index is the
// chord position for progression bodies.
func (s *Server) rejectToken(w http.ResponseWriter, err error, index *int) {
	resp := model.ErrorResponse{Error: err.Error(), Index: index}
	if e, ok := token.AsEntryError(err); ok {
		s.metrics.ValidationFailed(e.Category.Field())
		resp.Field = e.Category.Field()
		resp.Token = e.Token
	}
	writeJSON(w, http.StatusBadRequest, resp)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.requestLogger(r).Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
