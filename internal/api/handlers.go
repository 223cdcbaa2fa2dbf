package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kumarlokesh/wordtrie/internal/metrics"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// ContainsResponse is returned by GET /v1/contains.
type ContainsResponse struct {
	Word     string `json:"word"`
	Contains bool   `json:"contains"`
}

// PrefixResponse is returned by GET /v1/prefix.
type PrefixResponse struct {
	Prefix         string `json:"prefix"`
	ContainsPrefix bool   `json:"contains_prefix"`
}

// AddRequest is the body of POST /v1/words.
type AddRequest struct {
	Words []string `json:"words"`
}

// AddResponse is returned by POST /v1/words.
type AddResponse struct {
	Added int `json:"added"`
	Size  int `json:"size"`
}

// ErrorResponse carries the message of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, HealthResponse{Status: "ok", Words: s.dict.Size()})
}

// contains handles GET /v1/contains?word=. An empty word is a legal query.
func (s *Server) contains(w http.ResponseWriter, r *http.Request) {
	word, ok := queryParam(r, "word")
	if !ok {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("missing query parameter %q", "word"))
		return
	}

	found := s.dict.Contains(word)
	s.metrics.ObserveLookup(metrics.OpContains, found)
	s.respond(w, http.StatusOK, ContainsResponse{Word: word, Contains: found})
}

// containsPrefix handles GET /v1/prefix?prefix=.
func (s *Server) containsPrefix(w http.ResponseWriter, r *http.Request) {
	prefix, ok := queryParam(r, "prefix")
	if !ok {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("missing query parameter %q", "prefix"))
		return
	}

	found := s.dict.ContainsPrefix(prefix)
	s.metrics.ObserveLookup(metrics.OpPrefix, found)
	s.respond(w, http.StatusOK, PrefixResponse{Prefix: prefix, ContainsPrefix: found})
}

func (s *Server) addWords(w http.ResponseWriter, r *http.Request) {
	var req AddRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	s.dict.Add(req.Words...)
	size := s.dict.Size()

	s.metrics.ObserveAdd(len(req.Words))
	s.metrics.SetWords(size)
	s.logger.Debug().Int("added", len(req.Words)).Int("size", size).Msg("Added words")

	s.respond(w, http.StatusOK, AddResponse{Added: len(req.Words), Size: size})
}

// queryParam distinguishes a missing parameter from a present but empty one.
func queryParam(r *http.Request, key string) (string, bool) {
	values, ok := r.URL.Query()[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
