package scorer

import "github.com/coregx/fuzzlane/params"

// walkBack counts typos (mismatches, gap opens, and gap extends) along
// the optimal alignment path ending at (i, j), walking back through the
// already-filled H/E/F matrices until a cell value of zero is reached,
// the local-alignment start.
//
// At each cell, the step taken is whichever of diagonal/E/F actually
// produced the cell's H value, checked in that priority order so a tie
// between the three always resolves to the diagonal. This only affects
// which equally-optimal path is reported; it cannot change the score, and
// fixing the order makes the reported typo count reproducible across
// runs.
func (s *Scorer) walkBack(n params.Needle, haystack []byte, i, j int) int {
	p := s.p
	typos := 0
	for i > 0 && j > 0 {
		cur := s.h[s.idx(i, j)]
		if cur == 0 {
			break
		}

		nb := n.Lower[i-1]
		hb := haystack[j-1]
		match := params.ToLower(hb) == nb

		var diag uint16
		if match {
			diag = satAdd(s.h[s.idx(i-1, j-1)], matchBonus(p, n, haystack, i, j))
		} else {
			diag = satSub(s.h[s.idx(i-1, j-1)], p.MismatchPenalty)
		}
		e := s.e[s.idx(i, j)]
		f := s.f[s.idx(i, j)]

		switch {
		case cur == diag:
			if !match {
				typos++
			}
			i--
			j--
		case cur == e:
			typos++
			j--
		case cur == f:
			typos++
			i--
		default:
			// cur is always one of max16(diag, e, f, 0)'s inputs; this
			// branch exists only to terminate defensively if that
			// invariant is ever violated by a future change.
			return typos
		}
	}
	return typos
}
