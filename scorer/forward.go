// Package scorer implements the Smith–Waterman affine-gap local-alignment
// scorer and its typo-counting reverse pass.
//
// A lane's DP recurrence depends only on the needle and that lane's own
// haystack bytes, never on its neighbors, so bucket.Bucket.Lanes() lanes
// are scored independently of one another by construction. The width of
// a real vector register only changes how many lanes a hardware backend
// would process per instruction, never a single lane's result: the same
// needle/haystack pair scores identically no matter which lane it lands
// in or how many lanes its bucket has, since there is no cross-lane state
// for a different width or lane assignment to perturb. See DESIGN.md for
// why this module targets portable Go rather than hand-written vector
// assembly.
package scorer

import (
	"github.com/coregx/fuzzlane/bucket"
	"github.com/coregx/fuzzlane/params"
)

// Scorer holds reusable scratch matrices, grown on demand to the largest
// needle and bucket width seen so far, so once they are large enough
// scoring a bucket does not reallocate them (Score still allocates its
// result slice). A Scorer is not safe for concurrent use; callers running
// multiple shards create one Scorer per shard, matching the core's
// single-threaded, synchronous design.
type Scorer struct {
	p params.Params

	// h, e, f are flat, row-major (m+1)x(w+1) matrices reused across
	// calls to Score. They are grown (never shrunk) on demand.
	h, e, f []uint16
	rows    int
	cols    int
}

// New creates a Scorer that scores against the given parameters.
func New(p params.Params) *Scorer {
	return &Scorer{p: p}
}

// LaneResult is one bucket lane's scoring outcome.
type LaneResult struct {
	ID      uint64
	Score   uint16
	Typos   int
	// OverBudget reports whether the lane's typo count exceeded the
	// caller's budget (only meaningful when typo counting ran).
	OverBudget bool
	Discard    bool
}

// Score computes, for every lane in b, the best local-alignment score
// against needle n. When countTypos is true it also runs the reverse pass
// and reports each lane's typo count, marking lanes whose count exceeds
// maxTypos as OverBudget.
func (s *Scorer) Score(n params.Needle, b *bucket.Bucket, countTypos bool, maxTypos int) []LaneResult {
	out := make([]LaneResult, len(b.Slots))
	for i, slot := range b.Slots {
		score, typos := s.scoreLane(n, slot.Haystack, countTypos)
		out[i] = LaneResult{
			ID:         slot.ID,
			Score:      score,
			Typos:      typos,
			OverBudget: countTypos && typos > maxTypos,
			Discard:    slot.Discard,
		}
	}
	return out
}

// scoreLane runs the forward DP for one haystack and, if requested, the
// reverse typo-counting walk from its best cell.
func (s *Scorer) scoreLane(n params.Needle, haystack []byte, countTypos bool) (score uint16, typos int) {
	m := n.Len()
	w := len(haystack)
	if m == 0 {
		return 0, 0
	}

	s.ensureCapacity(m, w)
	s.fill(n, haystack)

	bestI, bestJ, best := s.bestCell(m, w)

	if isExactMatch(n, haystack) {
		best = satAdd(best, s.p.ExactMatchBonus)
	}

	if countTypos && best > 0 {
		typos = s.walkBack(n, haystack, bestI, bestJ)
	}
	return best, typos
}

// ensureCapacity grows the scratch matrices so they can hold an
// (m+1)x(w+1) grid, preserving the existing backing array when it
// already fits (the common case once the largest needle/bucket width
// seen so far has been reached).
func (s *Scorer) ensureCapacity(m, w int) {
	rows, cols := m+1, w+1
	need := rows * cols
	if cap(s.h) < need {
		s.h = make([]uint16, need)
		s.e = make([]uint16, need)
		s.f = make([]uint16, need)
	} else {
		s.h = s.h[:need]
		s.e = s.e[:need]
		s.f = s.f[:need]
	}
	s.rows, s.cols = rows, cols
	for i := range s.h {
		s.h[i] = 0
		s.e[i] = 0
		s.f[i] = 0
	}
}

func (s *Scorer) idx(i, j int) int {
	return i*s.cols + j
}

// fill populates the H/E/F matrices per the recurrence in row-major
// order: row i (needle position) depends only on row i-1 and on E values
// already computed earlier in row i, so a single left-to-right,
// top-to-bottom pass suffices.
func (s *Scorer) fill(n params.Needle, haystack []byte) {
	p := s.p
	m, w := n.Len(), len(haystack)

	for i := 1; i <= m; i++ {
		nb := n.Lower[i-1]
		for j := 1; j <= w; j++ {
			hb := haystack[j-1]

			var diag uint16
			if params.ToLower(hb) == nb {
				diag = satAdd(s.h[s.idx(i-1, j-1)], matchBonus(p, n, haystack, i, j))
			} else {
				diag = satSub(s.h[s.idx(i-1, j-1)], p.MismatchPenalty)
			}

			eOpen := satSub(s.h[s.idx(i, j-1)], p.GapOpen)
			eExt := satSub(s.e[s.idx(i, j-1)], p.GapExtend)
			e := max16(eOpen, eExt)
			s.e[s.idx(i, j)] = e

			fOpen := satSub(s.h[s.idx(i-1, j)], p.GapOpen)
			fExt := satSub(s.f[s.idx(i-1, j)], p.GapExtend)
			f := max16(fOpen, fExt)
			s.f[s.idx(i, j)] = f

			s.h[s.idx(i, j)] = max16(diag, e, f, 0)
		}
	}
}

// matchBonus returns match_reward plus every positional bonus that
// applies to the diagonal step landing on needle position i (1-indexed)
// and haystack position j (1-indexed).
//
// The matching-case bonus only fires when the needle itself asked for an
// uppercase letter at this position (n.WasUpper(i-1)): a lowercase needle
// byte already matches any haystack case insensitively, so rewarding a
// lowercase-to-lowercase hit here would make plain substring matches
// outscore the deliberate-acronym case this bonus exists for (e.g. "B" in
// "fBr" hitting the "B" in "fooBar").
func matchBonus(p params.Params, n params.Needle, haystack []byte, i, j int) int32 {
	bonus := p.MatchReward
	if j == 1 {
		bonus += p.PrefixBonus
	}
	if j > 1 {
		prev := haystack[j-2]
		cur := haystack[j-1]
		if params.IsDelimiter(prev) {
			bonus += p.DelimiterBonus
		}
		if params.IsUpper(cur) && params.IsLower(prev) {
			bonus += p.CapitalizationBonus
		}
	}
	if n.WasUpper(i-1) && n.Raw[i-1] == haystack[j-1] {
		bonus += p.MatchingCaseBonus
	}
	return bonus
}

// bestCell returns the (row, col) and value of the forward matrix's
// maximum, breaking ties per the design's "latest column, then latest
// row" rule: scanning columns outer (ascending) and rows inner
// (ascending) with a >= comparison means a later column always wins a
// tie, and within a column a later row always wins.
func (s *Scorer) bestCell(m, w int) (bestI, bestJ int, best uint16) {
	for j := 1; j <= w; j++ {
		for i := 1; i <= m; i++ {
			v := s.h[s.idx(i, j)]
			if v >= best {
				best, bestI, bestJ = v, i, j
			}
		}
	}
	return bestI, bestJ, best
}

// isExactMatch reports whether haystack, trimmed of bucket.Sentinel
// padding, is byte-for-byte equal to the needle's original bytes.
func isExactMatch(n params.Needle, haystack []byte) bool {
	trimmed := haystack
	for len(trimmed) > 0 && trimmed[len(trimmed)-1] == bucket.Sentinel {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) != len(n.Raw) {
		return false
	}
	for i := range trimmed {
		if trimmed[i] != n.Raw[i] {
			return false
		}
	}
	return true
}
