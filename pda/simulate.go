package pda

// AcceptMode selects which acceptance convention a simulation run checks.
type AcceptMode uint8

const (
	// ByFinalState accepts configurations with empty remaining input and an
	// accepting state, regardless of stack contents.
	ByFinalState AcceptMode = iota
	// ByEmptyStack accepts configurations with empty remaining input and an
	// empty stack, regardless of state.
	ByEmptyStack
	// ByEither accepts if either criterion holds. Property #9 (spec §8)
	// observes the two coincide for PDAs deliberately built to support
	// both, e.g. the balanced-parentheses PDA augmented with a final ε-pop
	// of the bottom marker.
	ByEither
)

func (p *PDA) accepts(c Config, inputLen int, mode AcceptMode) bool {
	if c.Pos != inputLen {
		return false
	}
	switch mode {
	case ByFinalState:
		return p.IsAccepting(c.State)
	case ByEmptyStack:
		return len(c.Stack) == 0
	default:
		return p.IsAccepting(c.State) || len(c.Stack) == 0
	}
}

// bfsEdge records the parent configuration of a visited configuration, for
// witness-path reconstruction. isStart marks the root of the search.
type bfsEdge struct {
	parent  Config
	isStart bool
}

// run performs the shared BFS over configurations used by both Accepts* and
// Witness. It explores configurations breadth-first by number of
// transitions fired, bounded by bounds, and returns the first accepting configuration found along with
// the parent map needed to reconstruct a witness path, or found=false if
// none was reached (with err set if a resource limit, rather than
// exhaustion, ended the search).
func (p *PDA) run(input string, mode AcceptMode, bounds Bounds) (accepted Config, parents map[string]bfsEdge, found bool, err error) {
	start := p.InitialConfig()
	visited := map[string]bool{start.key(): true}
	queue := []Config{start}
	parents = map[string]bfsEdge{start.key(): {isStart: true}}

	explored := 0
	for depth := 0; len(queue) > 0; depth++ {
		if depth > bounds.MaxDepth {
			return Config{}, nil, false, &ResourceLimitError{Kind: "bfs-depth", Limit: bounds.MaxDepth}
		}
		var next []Config
		for _, c := range queue {
			if p.accepts(c, len(input), mode) {
				return c, parents, true, nil
			}
			for _, nc := range p.Step(c, input) {
				k := nc.key()
				if visited[k] {
					continue
				}
				explored++
				if explored > bounds.MaxConfigurations {
					return Config{}, nil, false, &ResourceLimitError{Kind: "configurations", Limit: bounds.MaxConfigurations}
				}
				visited[k] = true
				parents[k] = bfsEdge{parent: c}
				next = append(next, nc)
			}
		}
		queue = next
	}
	return Config{}, parents, false, nil
}

// AcceptsFinal reports whether input is accepted by final state, within
// bounds. err is non-nil only on a resource-limit abort.
func (p *PDA) AcceptsFinal(input string, bounds Bounds) (bool, error) {
	_, _, ok, err := p.run(input, ByFinalState, bounds)
	return ok, err
}

// AcceptsEmpty reports whether input is accepted by empty stack, within
// bounds.
func (p *PDA) AcceptsEmpty(input string, bounds Bounds) (bool, error) {
	_, _, ok, err := p.run(input, ByEmptyStack, bounds)
	return ok, err
}

// Step documents a single transition in a Witness path: the configuration
// before and after firing a transition.
type Step struct {
	From Config
	To   Config
}

// Witness returns the shortest sequence of steps from the start
// configuration to an accepting one (under mode), per spec §4.5's "shortest
// witness path" operation. ok is false if no accepting configuration is
// reachable within bounds; err is non-nil only on a resource-limit abort.
func (p *PDA) Witness(input string, mode AcceptMode, bounds Bounds) (path []Step, ok bool, err error) {
	accepted, parents, found, err := p.run(input, mode, bounds)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	var reversed []Step
	cur := accepted
	for {
		edge, had := parents[cur.key()]
		if !had || edge.isStart {
			break
		}
		reversed = append(reversed, Step{From: edge.parent, To: cur})
		cur = edge.parent
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed, true, nil
}
