// Package jsonenc implements the canonical JSON envelopes for NFA, DFA, and
// PDA introspection and interchange (spec §6). It is internal because the
// envelope is a transport detail of cmd/automata and api, not part of the
// core automaton types' contract.
//
// Epsilon serializes to the literal string "ε"; the decoder additionally
// accepts "" as epsilon, per spec §6, since some producers elide it.
package jsonenc

import (
	"encoding/json"

	"github.com/kntjspr/automata/dfa"
	"github.com/kntjspr/automata/nfa"
	"github.com/kntjspr/automata/pda"
	"github.com/kntjspr/automata/symbol"
)

// StateEnvelope is one state entry in an NFA/DFA envelope.
type StateEnvelope struct {
	ID        symbol.StateID `json:"id"`
	Label     string         `json:"label,omitempty"`
	Accepting bool           `json:"accepting"`
}

// TransitionEnvelope is one NFA/DFA transition entry. Symbol is "ε" for an
// epsilon move, or a single-character string otherwise.
type TransitionEnvelope struct {
	From   symbol.StateID `json:"from"`
	To     symbol.StateID `json:"to"`
	Symbol string         `json:"symbol"`
}

// AutomatonEnvelope is the canonical NFA/DFA JSON shape from spec §6.
type AutomatonEnvelope struct {
	States      []StateEnvelope      `json:"states"`
	Transitions []TransitionEnvelope `json:"transitions"`
	Start       symbol.StateID       `json:"start"`
	Accept      []symbol.StateID     `json:"accept"`
}

func encodeSymbol(s symbol.Symbol) string {
	if s.IsEpsilon() {
		return "ε"
	}
	return string(rune(s.Byte()))
}

func decodeSymbol(s string) symbol.Symbol {
	if s == "ε" || s == "" {
		return symbol.Epsilon
	}
	return symbol.Char(s[0])
}

// EncodeNFA converts n into its canonical JSON envelope.
func EncodeNFA(n *nfa.NFA) AutomatonEnvelope {
	env := AutomatonEnvelope{Start: n.Start()}
	for _, st := range n.States() {
		env.States = append(env.States, StateEnvelope{ID: st.ID, Label: st.Label, Accepting: st.Accepting})
		if st.Accepting {
			env.Accept = append(env.Accept, st.ID)
		}
	}
	for _, e := range n.Edges() {
		env.Transitions = append(env.Transitions, TransitionEnvelope{From: e.From, To: e.To, Symbol: encodeSymbol(e.Sym)})
	}
	return env
}

// MarshalNFA encodes n as canonical JSON bytes.
func MarshalNFA(n *nfa.NFA) ([]byte, error) {
	return json.Marshal(EncodeNFA(n))
}

// EncodeDFA converts d into its canonical JSON envelope. DFA symbols are
// always concrete bytes; epsilon never appears in a DFA transition.
func EncodeDFA(d *dfa.DFA) AutomatonEnvelope {
	env := AutomatonEnvelope{Start: d.Start()}
	for _, st := range d.States() {
		env.States = append(env.States, StateEnvelope{ID: st.ID, Accepting: st.Accepting})
		if st.Accepting {
			env.Accept = append(env.Accept, st.ID)
		}
	}
	for _, e := range d.Edges() {
		env.Transitions = append(env.Transitions, TransitionEnvelope{From: e.From, To: e.To, Symbol: encodeSymbol(symbol.Char(e.Sym))})
	}
	return env
}

// MarshalDFA encodes d as canonical JSON bytes.
func MarshalDFA(d *dfa.DFA) ([]byte, error) {
	return json.Marshal(EncodeDFA(d))
}

// PDATransitionEnvelope is one PDA transition entry, per spec §6's
// {from,to,input,pop,push} shape.
type PDATransitionEnvelope struct {
	From  symbol.StateID `json:"from"`
	To    symbol.StateID `json:"to"`
	Input string         `json:"input"`
	Pop   string         `json:"pop"`
	Push  string         `json:"push"`
}

// PDAEnvelope is the canonical PDA JSON shape from spec §6.
type PDAEnvelope struct {
	States       []StateEnvelope         `json:"states"`
	Transitions  []PDATransitionEnvelope `json:"transitions"`
	Start        symbol.StateID          `json:"start"`
	Accept       []symbol.StateID        `json:"accept"`
	InitialStack string                  `json:"initialStack"`
}

// EncodePDA converts p into its canonical JSON envelope.
func EncodePDA(p *pda.PDA) PDAEnvelope {
	env := PDAEnvelope{Start: p.Start(), Accept: p.Accepting()}
	if initial, ok := p.InitialStackSymbol(); ok {
		env.InitialStack = encodeSymbol(symbol.Char(initial))
	}
	acceptSet := make(map[symbol.StateID]bool, len(env.Accept))
	for _, id := range env.Accept {
		acceptSet[id] = true
	}
	for i := 0; i < p.Len(); i++ {
		id := symbol.StateID(i)
		env.States = append(env.States, StateEnvelope{ID: id, Accepting: acceptSet[id]})
	}
	for _, t := range p.Transitions() {
		env.Transitions = append(env.Transitions, PDATransitionEnvelope{
			From:  t.From,
			To:    t.To,
			Input: encodeSymbol(t.Input),
			Pop:   encodeSymbol(t.Pop),
			Push:  string(t.Push),
		})
	}
	return env
}

// MarshalPDA encodes p as canonical JSON bytes.
func MarshalPDA(p *pda.PDA) ([]byte, error) {
	return json.Marshal(EncodePDA(p))
}

// DecodeAutomatonSymbol exposes decodeSymbol for callers reconstructing a
// transition relation from an AutomatonEnvelope.
func DecodeAutomatonSymbol(s string) symbol.Symbol { return decodeSymbol(s) }

// DecodeNFA reconstructs an *nfa.NFA from its canonical envelope. State IDs
// in the envelope must be dense (0..len(States)-1); this holds for every
// envelope produced by EncodeNFA.
func DecodeNFA(env AutomatonEnvelope) (*nfa.NFA, error) {
	n := nfa.New()
	byID := make(map[symbol.StateID]symbol.StateID, len(env.States))
	for _, st := range env.States {
		id := n.AddState(st.Label, st.Accepting)
		byID[st.ID] = id
	}
	for _, t := range env.Transitions {
		if err := n.AddTransition(byID[t.From], byID[t.To], decodeSymbol(t.Symbol)); err != nil {
			return nil, err
		}
	}
	if err := n.SetStart(byID[env.Start]); err != nil {
		return nil, err
	}
	return n, nil
}

// UnmarshalNFA parses canonical JSON bytes into an *nfa.NFA.
func UnmarshalNFA(data []byte) (*nfa.NFA, error) {
	var env AutomatonEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return DecodeNFA(env)
}
