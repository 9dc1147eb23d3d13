package fuzzlane

import (
	"errors"

	"github.com/coregx/fuzzlane/bucket"
	"github.com/coregx/fuzzlane/params"
)

// Sentinel errors for the core's caller-programming-error taxonomy. None
// of these ever propagate out of MatchOne or MatchMany: MatchOne returns
// (Match{}, false) and MatchMany simply omits the offending id from its
// results, so a length violation looks the same as a low-scoring,
// legitimately-admitted haystack. Validate exists for callers who want to
// tell the two apart before or after the fact.
var (
	// ErrNeedleTooLong reports that a needle exceeded params.MaxNeedleLen.
	ErrNeedleTooLong = errors.New("fuzzlane: needle exceeds 64 bytes")

	// ErrHaystackTooLong reports that a haystack exceeded
	// bucket.MaxHaystackLen. The core has no scalar fallback for oversized
	// haystacks; it always reports them as absent rather than matching.
	ErrHaystackTooLong = errors.New("fuzzlane: haystack exceeds 512 bytes")
)

// Validate reports which length bound, if any, needle or haystack
// violate, without scoring anything. MatchOne and MatchMany never return
// these errors directly; Validate is for a caller that wants to log or
// count why a particular item never reached the scorer.
func Validate(needle, haystack []byte) error {
	if len(needle) > params.MaxNeedleLen {
		return ErrNeedleTooLong
	}
	if len(haystack) > bucket.MaxHaystackLen {
		return ErrHaystackTooLong
	}
	return nil
}
