package dfa

import "github.com/kntjspr/automata/symbol"

// Minimize reduces d to its Myhill-Nerode-minimal equivalent via Hopcroft
// partition refinement (spec §4.3). Equivalence classes are numbered by
// their smallest representative state id, so output is stable across runs
// on the same input.
//
// An implicit dead/trap state is folded into the refinement so that
// states which only differ in "has no transition on c" vs "transitions to
// a state with no future toward acceptance" are correctly distinguished or
// merged, then the trap is dropped back out of the emitted DFA (missing
// transitions are implicit per spec §3) unless the start state itself is
// trap-equivalent.
func Minimize(d *DFA) *DFA {
	if len(d.states) == 0 {
		return d
	}

	dead := symbol.StateID(len(d.states))

	totalStep := func(q symbol.StateID, a byte) symbol.StateID {
		if q == dead {
			return dead
		}
		to, ok := d.Step(q, a)
		if !ok {
			return dead
		}
		return to
	}

	// revIndex[c][target] = sources q with totalStep(q, c) == target.
	revIndex := make(map[byte]map[symbol.StateID][]symbol.StateID, len(d.alphabet))
	for _, c := range d.alphabet {
		idx := make(map[symbol.StateID][]symbol.StateID)
		for q := symbol.StateID(0); q <= dead; q++ {
			t := totalStep(q, c)
			idx[t] = append(idx[t], q)
		}
		revIndex[c] = idx
	}

	blocks := make(map[int]map[symbol.StateID]bool)
	blockOf := make(map[symbol.StateID]int)
	nextID := 0

	accepting := make(map[symbol.StateID]bool)
	nonAccepting := make(map[symbol.StateID]bool)
	for _, st := range d.states {
		if st.Accepting {
			accepting[st.ID] = true
		} else {
			nonAccepting[st.ID] = true
		}
	}
	nonAccepting[dead] = true

	if len(accepting) > 0 {
		blocks[nextID] = accepting
		for q := range accepting {
			blockOf[q] = nextID
		}
		nextID++
	}
	if len(nonAccepting) > 0 {
		blocks[nextID] = nonAccepting
		for q := range nonAccepting {
			blockOf[q] = nextID
		}
		nextID++
	}

	var worklist []int
	inWorklist := make(map[int]bool)
	for id := range blocks {
		worklist = append(worklist, id)
		inWorklist[id] = true
	}

	removeFromWorklist := func(id int) {
		inWorklist[id] = false
		for i, v := range worklist {
			if v == id {
				worklist = append(worklist[:i], worklist[i+1:]...)
				break
			}
		}
	}

	for len(worklist) > 0 {
		aID := worklist[0]
		worklist = worklist[1:]
		inWorklist[aID] = false
		A := blocks[aID]

		for _, c := range d.alphabet {
			var xMembers []symbol.StateID
			for q := range A {
				xMembers = append(xMembers, revIndex[c][q]...)
			}
			if len(xMembers) == 0 {
				continue
			}
			X := make(map[symbol.StateID]bool, len(xMembers))
			for _, q := range xMembers {
				X[q] = true
			}

			snapshot := make([]int, 0, len(blocks))
			for id := range blocks {
				snapshot = append(snapshot, id)
			}

			for _, yID := range snapshot {
				Y, ok := blocks[yID]
				if !ok {
					continue
				}
				var inX, notInX map[symbol.StateID]bool
				for q := range Y {
					if X[q] {
						if inX == nil {
							inX = make(map[symbol.StateID]bool)
						}
						inX[q] = true
					} else {
						if notInX == nil {
							notInX = make(map[symbol.StateID]bool)
						}
						notInX[q] = true
					}
				}
				if len(inX) == 0 || len(notInX) == 0 {
					continue
				}

				delete(blocks, yID)
				id1, id2 := nextID, nextID+1
				nextID += 2
				blocks[id1] = inX
				blocks[id2] = notInX
				for q := range inX {
					blockOf[q] = id1
				}
				for q := range notInX {
					blockOf[q] = id2
				}

				if inWorklist[yID] {
					removeFromWorklist(yID)
					worklist = append(worklist, id1, id2)
					inWorklist[id1] = true
					inWorklist[id2] = true
				} else {
					// Classic optimization: push only the smaller half,
					// bounding the algorithm to O(|Q||Σ| log |Q|).
					smaller := id1
					if len(notInX) < len(inX) {
						smaller = id2
					}
					worklist = append(worklist, smaller)
					inWorklist[smaller] = true
				}
			}
		}
	}

	trapBlock := blockOf[dead]

	// Order blocks by their smallest real (non-dead) representative so
	// output numbering is stable regardless of map iteration order.
	var infos []blockInfo
	for id, members := range blocks {
		if id == trapBlock && blockOf[d.start] != trapBlock {
			continue
		}
		repr := symbol.InvalidState
		for q := range members {
			if q == dead {
				continue
			}
			if repr == symbol.InvalidState || q < repr {
				repr = q
			}
		}
		if repr == symbol.InvalidState {
			continue
		}
		infos = append(infos, blockInfo{id: id, repr: repr})
	}
	sortBlockInfos(infos)

	outID := make(map[int]symbol.StateID, len(infos))
	out := &DFA{
		keyed:    make(map[edgeKey]symbol.StateID),
		alphabet: d.alphabet,
	}
	for i, bi := range infos {
		outID[bi.id] = symbol.StateID(i)
		out.states = append(out.states, State{
			ID:        symbol.StateID(i),
			Accepting: accepting[bi.repr],
		})
	}
	out.start = outID[blockOf[d.start]]

	for _, bi := range infos {
		from := outID[bi.id]
		for _, c := range d.alphabet {
			target := totalStep(bi.repr, c)
			tBlock := blockOf[target]
			if tBlock == trapBlock && blockOf[d.start] != trapBlock {
				continue
			}
			to, ok := outID[tBlock]
			if !ok {
				continue
			}
			out.edges = append(out.edges, Edge{From: from, To: to, Sym: c})
			out.keyed[edgeKey{from: from, sym: c}] = to
		}
	}

	return out
}

// blockInfo pairs a block id with its smallest real-state representative,
// used to assign stable output state numbering.
type blockInfo struct {
	id   int
	repr symbol.StateID
}

func sortBlockInfos(infos []blockInfo) {
	for i := 1; i < len(infos); i++ {
		for j := i; j > 0 && infos[j].repr < infos[j-1].repr; j-- {
			infos[j], infos[j-1] = infos[j-1], infos[j]
		}
	}
}
