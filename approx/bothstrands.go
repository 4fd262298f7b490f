package approx

// Strand identifies which strand a StrandMatch was found on.
type Strand uint8

const (
	Forward Strand = iota
	Reverse
)

func (s Strand) String() string {
	if s == Reverse {
		return "reverse"
	}
	return "forward"
}

// StrandMatch is a Match tagged with the strand it was found on. Positions
// are always reported in forward-strand coordinates.
type StrandMatch struct {
	Start    int
	End      int
	Distance int
	Strand   Strand
}

var complementTable = map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N'}

// reverseComplementBytes computes the reverse complement of a DNA
// sequence. It is duplicated here (rather than importing the dna package)
// to avoid a dependency cycle: dna consumes approx and dfa, not the
// reverse.
func reverseComplementBytes(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c, ok := complementTable[seq[i]]
		if !ok {
			c = seq[i]
		}
		out[len(seq)-1-i] = c
	}
	return string(out)
}

// FindBothStrands scans dna on both strands per spec §4.4: once on the
// input, once on its reverse complement, translating reverse-complement
// offsets back into forward coordinates via (n-end, n-start).
func (m *Matcher) FindBothStrands(dna string) []StrandMatch {
	n := len(dna)
	var out []StrandMatch

	for _, fm := range m.Find(dna) {
		out = append(out, StrandMatch{Start: fm.Start, End: fm.End, Distance: fm.Distance, Strand: Forward})
	}

	rc := reverseComplementBytes(dna)
	for _, rmatch := range m.Find(rc) {
		out = append(out, StrandMatch{
			Start:    n - rmatch.End,
			End:      n - rmatch.Start,
			Distance: rmatch.Distance,
			Strand:   Reverse,
		})
	}

	return out
}
