// Package api is a small net/http façade over the engine's §6 operations,
// for the browser-UI style consumer spec.md names as an external
// collaborator (spec.md §1: "a browser front-end" interacts with the core
// only through the operations in §4/§6). It holds no automaton state of
// its own and performs no core logic beyond decoding requests, calling the
// root automata/approx/pda facade, and encoding internal/jsonenc envelopes.
//
// No HTTP framework appears anywhere in the retrieval pack with enough
// domain fit to justify a dependency here (see DESIGN.md), so this mux is
// built on net/http directly, without a router library.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/projectdiscovery/gologger"

	automata "github.com/kntjspr/automata"
	"github.com/kntjspr/automata/approx"
	"github.com/kntjspr/automata/internal/jsonenc"
	"github.com/kntjspr/automata/pda"
)

// Server bundles the handlers as methods so tests can construct one without
// touching package-level state, following coregex's preference for
// receiver-scoped behavior over globals.
type Server struct{}

// NewServer returns a ready-to-use Server.
func NewServer() *Server { return &Server{} }

// Mux builds the *http.ServeMux routing the five §6 endpoints.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/compile", s.handleCompile)
	mux.HandleFunc("/match", s.handleMatch)
	mux.HandleFunc("/find", s.handleFind)
	mux.HandleFunc("/approx", s.handleApprox)
	mux.HandleFunc("/pda", s.handlePDA)
	return mux
}

// writeJSON encodes v as the response body, logging (but not panicking on)
// encode failures the same way gologger is used elsewhere in this module
// to report non-fatal operational errors.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		gologger.Error().Msgf("api: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	gologger.Error().Msgf("api: %v", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeRequest(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// compileRequest is the body for POST /compile.
type compileRequest struct {
	Pattern string `json:"pattern"`
}

// handleCompile compiles a regex to a minimized DFA and returns its
// canonical JSON envelope, per automata.CompileRegex (spec §6).
func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	var req compileRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	d, err := automata.CompileRegex(req.Pattern)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, jsonenc.EncodeDFA(d))
}

// matchRequest is the body for POST /match.
type matchRequest struct {
	Pattern string `json:"pattern"`
	Text    string `json:"text"`
}

type matchResponse struct {
	Accepted bool `json:"accepted"`
}

// handleMatch reports DFA.Accepts for the compiled pattern against text.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	var req matchRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	d, err := automata.CompileRegex(req.Pattern)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, matchResponse{Accepted: d.Accepts(req.Text)})
}

// handleFind enumerates DFA.FindAll matches, the leftmost-longest contract
// of spec §4.3.
func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	var req matchRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	d, err := automata.CompileRegex(req.Pattern)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, d.FindAll(req.Text))
}

// approxRequest is the body for POST /approx.
type approxRequest struct {
	Pattern string `json:"pattern"`
	Text    string `json:"text"`
	MaxK    int    `json:"maxK"`
	DNA     bool   `json:"dna"`
}

// handleApprox runs the Levenshtein approximate matcher, optionally in DNA
// bothstrands mode, per Matcher.Find / Matcher.FindBothStrands (spec §6).
func (s *Server) handleApprox(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	var req approxRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var m *approx.Matcher
	var err error
	if req.DNA {
		m, err = approx.CompileDNA(req.Pattern, req.MaxK, approx.EditAll)
	} else {
		m, err = approx.Compile(req.Pattern, req.MaxK, approx.EditAll)
	}
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if req.DNA {
		writeJSON(w, http.StatusOK, m.FindBothStrands(req.Text))
		return
	}
	writeJSON(w, http.StatusOK, m.Find(req.Text))
}

// pdaRequest is the body for POST /pda. Name selects a pre-built PDA (spec
// §4.5): parens, anbn, palindrome, rnastemloop.
type pdaRequest struct {
	Name  string `json:"name"`
	Input string `json:"input"`
}

type pdaResponse struct {
	AcceptsFinal bool `json:"acceptsFinal"`
	AcceptsEmpty bool `json:"acceptsEmpty"`
}

// handlePDA simulates a pre-built PDA against input under both acceptance
// modes (spec §4.5).
func (s *Server) handlePDA(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed)
		return
	}
	var req pdaRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := prebuiltByName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bounds := pda.DefaultBounds()
	byFinal, err := p.AcceptsFinal(req.Input, bounds)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	byEmpty, err := p.AcceptsEmpty(req.Input, bounds)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, pdaResponse{AcceptsFinal: byFinal, AcceptsEmpty: byEmpty})
}
