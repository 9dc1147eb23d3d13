// Package fuzzlane implements a high-throughput fuzzy string matcher
// core: a prefilter, a length bucketer, a Smith–Waterman affine-gap
// scorer, and a reverse typo-counting pass, dispatched at a SIMD lane
// width chosen once per process.
//
// The core is single-threaded and fully synchronous (see the simd,
// bucket, and scorer packages for the pipeline stages); it exposes no
// cancellation hooks and performs no I/O. A convenience entry point over
// []string, a parallel work-stealing driver, and a non-SIMD scalar
// fallback for haystacks over 512 bytes are all left to a layer above
// this package.
package fuzzlane

import (
	"github.com/coregx/fuzzlane/bucket"
	"github.com/coregx/fuzzlane/internal/conv"
	"github.com/coregx/fuzzlane/params"
	"github.com/coregx/fuzzlane/prefilter"
	"github.com/coregx/fuzzlane/scorer"
	"github.com/coregx/fuzzlane/simd"
)

// Item is one (id, haystack) pair submitted to MatchMany.
type Item struct {
	ID       uint64
	Haystack []byte
}

// Match is one surviving result: a candidate id, its doubled-unit score,
// and (when typo counting ran) its typo count along the optimal
// alignment path.
type Match struct {
	ID       uint64
	Score    uint16
	Typos    int
	HasTypos bool
}

// Matcher holds the scratch state (a scorer) that MatchOne and MatchMany
// reuse call to call (MatchMany builds a fresh bucket table per call), so repeated matching
// against the same needle doesn't reallocate its scoring matrices. A
// Matcher is not safe for concurrent use. Create one per goroutine, the
// same way an external parallel driver would shard work across core
// instances.
type Matcher struct {
	p params.Params
	s *scorer.Scorer
}

// NewMatcher creates a Matcher scoring with the given parameters.
func NewMatcher(p params.Params) *Matcher {
	return &Matcher{p: p, s: scorer.New(p)}
}

// DefaultMatcher creates a Matcher using params.DefaultParams().
func DefaultMatcher() *Matcher {
	return NewMatcher(params.DefaultParams())
}

// MatchOne scores a single haystack against needle. The second return
// value is false when the needle or haystack violates a length bound, or
// when the haystack doesn't clear opts' prefilter, typo budget, or
// min-score thresholds, all "no match", never an error. Use Validate to
// tell a length violation apart from a haystack that was legitimately
// scored and simply didn't clear a threshold.
func (m *Matcher) MatchOne(needle, haystack []byte, opts Options) (Match, bool) {
	n, err := params.NewNeedle(needle)
	if err != nil {
		return Match{}, false
	}
	if len(haystack) > bucket.MaxHaystackLen {
		return Match{}, false
	}

	if opts.Prefilter && !admits(n, haystack, opts) {
		return Match{}, false
	}

	width, ok := bucket.WidthFor(len(haystack))
	if !ok {
		return Match{}, false
	}
	padded := make([]byte, width)
	copy(padded, haystack)
	for i := len(haystack); i < width; i++ {
		padded[i] = bucket.Sentinel
	}
	b := &bucket.Bucket{Width: conv.IntToUint16(width), Slots: []bucket.Slot{{ID: 0, Haystack: padded}}}

	countTypos := opts.MaxTypos != nil
	budget := 0
	if countTypos {
		budget = *opts.MaxTypos
	}
	results := m.s.Score(n, b, countTypos, budget)
	r := results[0]

	if countTypos && r.OverBudget {
		return Match{}, false
	}
	if r.Score < opts.MinScore {
		return Match{}, false
	}
	return Match{ID: 0, Score: r.Score, Typos: r.Typos, HasTypos: countTypos}, true
}

// MatchMany scores every item in items against needle, returning the
// surviving matches. Dispatch order (bucket-full order, not input order)
// determines result order unless opts.Sort is set; the core gives no
// stronger ordering guarantee of its own since bucket dispatch is driven
// by when each width bucket fills, not by item arrival order.
func (m *Matcher) MatchMany(needle []byte, items []Item, opts Options) []Match {
	n, err := params.NewNeedle(needle)
	if err != nil {
		return nil
	}

	lanes := simd.DetectWidth().Lanes()
	tbl := bucket.NewTable(lanes)

	countTypos := opts.MaxTypos != nil
	budget := 0
	if countTypos {
		budget = *opts.MaxTypos
	}

	var out []Match
	emit := func(b *bucket.Bucket) {
		for _, r := range m.s.Score(n, b, countTypos, budget) {
			out = appendSurviving(out, r, countTypos, opts)
		}
	}
	for _, it := range items {
		if len(it.Haystack) > bucket.MaxHaystackLen {
			continue
		}
		if opts.Prefilter && !admits(n, it.Haystack, opts) {
			continue
		}
		if b, ready, _ := tbl.Add(it.ID, it.Haystack); ready {
			emit(b)
		}
	}
	for _, b := range tbl.Flush() {
		emit(b)
	}

	if opts.Sort {
		sortMatches(out, opts.StableTiebreak)
	}
	return out
}

func appendSurviving(out []Match, r scorer.LaneResult, countTypos bool, opts Options) []Match {
	if r.Discard {
		return out
	}
	if countTypos && r.OverBudget {
		return out
	}
	if r.Score < opts.MinScore {
		return out
	}
	return append(out, Match{ID: r.ID, Score: r.Score, Typos: r.Typos, HasTypos: countTypos})
}

// admits reports whether haystack survives the prefilter for needle under
// opts' typo budget. opts.MaxTypos == nil admits only haystacks missing
// zero needle characters, the strictest budget.
func admits(n params.Needle, haystack []byte, opts Options) bool {
	budget := 0
	if opts.MaxTypos != nil {
		budget = *opts.MaxTypos
	}
	return prefilter.Contains(n.Lower, haystack, budget)
}
