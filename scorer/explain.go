package scorer

import "github.com/coregx/fuzzlane/params"

// Trace is the filled H/E/F matrices for one needle/haystack pair, plus
// the best cell the forward pass selected. It exists only for tests that
// assert reverse-pass agreement and for documentation examples; nothing
// in MatchOne or MatchMany ever constructs one; it is built only by an
// explicit call to Explain.
type Trace struct {
	Rows, Cols int
	H, E, F    []uint16
	BestRow    int
	BestCol    int
	Best       uint16
}

// At returns H[i][j] for 0 <= i <= Rows-1, 0 <= j <= Cols-1.
func (t Trace) At(i, j int) uint16 {
	return t.H[i*t.Cols+j]
}

// Explain re-runs the forward recurrence for a single needle/haystack
// pair and returns the full matrices it produced, so a test can walk the
// same path scorer.Score's reverse pass would and compare typo counts
// independently of walkBack's bookkeeping.
func (s *Scorer) Explain(n params.Needle, haystack []byte) Trace {
	m, w := n.Len(), len(haystack)
	s.ensureCapacity(m, w)
	if m > 0 {
		s.fill(n, haystack)
	}
	bestI, bestJ, best := s.bestCell(m, w)

	h := make([]uint16, len(s.h))
	e := make([]uint16, len(s.e))
	f := make([]uint16, len(s.f))
	copy(h, s.h)
	copy(e, s.e)
	copy(f, s.f)

	return Trace{
		Rows: s.rows, Cols: s.cols,
		H: h, E: e, F: f,
		BestRow: bestI, BestCol: bestJ, Best: best,
	}
}
